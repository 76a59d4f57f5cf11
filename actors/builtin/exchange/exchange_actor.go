package exchange

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/ipfs/go-cid"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin"
	"github.com/vesta-protocol/go-vesta-actors/actors/builtin/token"
	"github.com/vesta-protocol/go-vesta-actors/actors/runtime"
	"github.com/vesta-protocol/go-vesta-actors/actors/util/adt"
)

type Runtime = runtime.Runtime

type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.StopSwaps,
		3:                         a.StartSwaps,
		4:                         a.SwapInboundForToken,
		5:                         a.SwapTokenForInbound,
		6:                         a.SwapViaVenue,
		7:                         a.WithdrawCustodied,
		8:                         a.SetMaxBaseFee,
		9:                         a.ChangeDeadline,
		10:                        a.Status,
		11:                        a.Reschedule,
	}
}

func (a Actor) Code() cid.Cid {
	return builtin.ExchangeActorCodeID
}

func (a Actor) IsSingleton() bool {
	return true
}

func (a Actor) State() cbor.Er { return new(State) }

var _ runtime.VMActor = Actor{}

type ConstructorParams struct {
	Token           addr.Address
	Venue           addr.Address
	VestingStart    abi.ChainEpoch
	DurationDays    uint64
	DiscountInbound bool
	Deadline        abi.ChainEpoch
	MaxBaseFee      abi.TokenAmount
}

func (a Actor) Constructor(rt Runtime, params *ConstructorParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	tokenAddr := params.Token
	if tokenAddr == addr.Undef {
		tokenAddr = builtin.TokenActorAddr
	}
	venueAddr := params.Venue
	if venueAddr == addr.Undef {
		venueAddr = builtin.VenueActorAddr
	}

	durationDays := params.DurationDays
	if durationDays == 0 {
		durationDays = token.DefaultVestingDurationDays
	}

	maxBaseFee := params.MaxBaseFee
	if maxBaseFee.Int == nil {
		maxBaseFee = abi.NewTokenAmount(0)
	}

	st, err := ConstructState(adt.AsStore(rt), tokenAddr, venueAddr, token.Schedule{
		Start:        params.VestingStart,
		DurationDays: durationDays,
	}, params.DiscountInbound, params.Deadline, maxBaseFee)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to construct state")

	rt.StateCreate(st)
	return nil
}

func (a Actor) StopSwaps(rt Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsExchange.StopSwaps)

	var st State
	rt.StateTransaction(&st, func() {
		if st.Stopped {
			rt.Abortf(builtin.ErrBadState, "swaps already stopped")
		}
		st.Stopped = true
	})
	return nil
}

func (a Actor) StartSwaps(rt Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsExchange.StartSwaps)

	var st State
	rt.StateTransaction(&st, func() {
		if !st.Stopped {
			rt.Abortf(builtin.ErrBadState, "swaps not stopped")
		}
		st.Stopped = false
	})
	return nil
}

type SwapReturn struct {
	AmountIn  abi.TokenAmount
	AmountOut abi.TokenAmount
}

// SwapInboundForToken takes the received counter-asset into custody and mints
// token allocation to the caller, vesting-discounted when the engine is
// configured for it. The mint happens before the custody commit so a failure
// on either side unwinds the whole call.
func (a Actor) SwapInboundForToken(rt Runtime, _ *abi.EmptyValue) *SwapReturn {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)

	amountIn := rt.ValueReceived()
	builtin.RequireParam(rt, amountIn.GreaterThan(big.Zero()), "no funds received")

	var st State
	rt.StateReadonly(&st)
	requireSwapsOpen(rt, &st)
	if st.DiscountInbound {
		requireWindowOpen(rt, &st)
	}

	amountOut := amountIn
	if st.DiscountInbound {
		amountOut = st.Schedule.ConvertReverse(amountIn, rt.CurrEpoch())
	}
	if amountOut.LessThan(MinSwapOutput) {
		rt.Abortf(builtin.ErrDustOutput, "output %v below minimum %v", amountOut, MinSwapOutput)
	}

	code := rt.Send(st.Token, builtin.MethodsToken.Mint, &token.MintParams{
		To:     rt.Caller(),
		Amount: amountOut,
	}, big.Zero(), &builtin.Discard{})
	builtin.RequireSuccess(rt, code, "failed to mint %v to %s", amountOut, rt.Caller())

	rt.StateTransaction(&st, func() {
		st.CustodyBalance = big.Add(st.CustodyBalance, amountIn)

		err := st.AppendRecord(adt.AsStore(rt), &SettlementRecord{
			Kind:      KindInboundForToken,
			Party:     rt.Caller(),
			AmountIn:  amountIn,
			AmountOut: amountOut,
			Epoch:     rt.CurrEpoch(),
		})
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to append record")
	})

	return &SwapReturn{AmountIn: amountIn, AmountOut: amountOut}
}

type SwapTokenForInboundParams struct {
	Amount abi.TokenAmount
}

// SwapTokenForInbound burns the caller's tokens and releases the same amount
// of custodied counter-asset to them.
func (a Actor) SwapTokenForInbound(rt Runtime, params *SwapTokenForInboundParams) *SwapReturn {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.RequireParam(rt, params.Amount.GreaterThan(big.Zero()), "non-positive amount %v", params.Amount)

	var st State
	rt.StateReadonly(&st)
	requireSwapsOpen(rt, &st)

	if st.CustodyBalance.LessThan(params.Amount) {
		rt.Abortf(exitcode.ErrInsufficientFunds, "custody %v less than %v", st.CustodyBalance, params.Amount)
	}

	code := rt.Send(st.Token, builtin.MethodsToken.BurnFrom, &token.BurnFromParams{
		From:   rt.Caller(),
		Amount: params.Amount,
	}, big.Zero(), &builtin.Discard{})
	builtin.RequireSuccess(rt, code, "failed to burn %v of %s", params.Amount, rt.Caller())

	rt.StateTransaction(&st, func() {
		st.CustodyBalance = big.Sub(st.CustodyBalance, params.Amount)
		if st.CustodyBalance.LessThan(big.Zero()) {
			rt.Abortf(builtin.ErrBadState, "negative custody balance %v", st.CustodyBalance)
		}

		err := st.AppendRecord(adt.AsStore(rt), &SettlementRecord{
			Kind:      KindTokenForInbound,
			Party:     rt.Caller(),
			AmountIn:  params.Amount,
			AmountOut: params.Amount,
			Epoch:     rt.CurrEpoch(),
		})
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to append record")
	})

	code = rt.Send(rt.Caller(), builtin.MethodSend, nil, params.Amount, &builtin.Discard{})
	builtin.RequireSuccess(rt, code, "failed to release funds")

	return &SwapReturn{AmountIn: params.Amount, AmountOut: params.Amount}
}

type SwapViaVenueParams struct {
	AmountOutMin abi.TokenAmount
	Path         []addr.Address
}

// SwapViaVenue prices the received counter-asset through the external venue
// under the caller's slippage guard. The venue pays the caller directly; this
// engine only journals the realized amounts.
func (a Actor) SwapViaVenue(rt Runtime, params *SwapViaVenueParams) *SwapReturn {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)

	amountIn := rt.ValueReceived()
	builtin.RequireParam(rt, amountIn.GreaterThan(big.Zero()), "no funds received")
	builtin.RequireParam(rt, len(params.Path) >= 2, "path too short")

	var st State
	rt.StateReadonly(&st)
	requireSwapsOpen(rt, &st)

	amounts := builtin.RequestVenueQuote(rt, st.Venue, amountIn, params.Path)
	quoted := amounts[len(amounts)-1]
	if quoted.LessThan(params.AmountOutMin) {
		rt.Abortf(builtin.ErrSlippageExceeded, "quoted output %v below minimum %v", quoted, params.AmountOutMin)
	}

	var out builtin.VenueAmountsReturn
	code := rt.Send(st.Venue, builtin.MethodsVenue.SwapExactInForOut, &builtin.VenueSwapParams{
		AmountIn:     amountIn,
		AmountOutMin: params.AmountOutMin,
		Path:         params.Path,
		Recipient:    rt.Caller(),
		Deadline:     st.Deadline,
	}, amountIn, &out)
	builtin.RequireSuccess(rt, code, "venue swap failed")
	builtin.RequireParam(rt, len(out.Amounts) == len(params.Path), "venue returned %d amounts for path of %d", len(out.Amounts), len(params.Path))

	realized := out.Amounts[len(out.Amounts)-1]
	if realized.LessThan(params.AmountOutMin) {
		rt.Abortf(builtin.ErrSlippageExceeded, "realized output %v below minimum %v", realized, params.AmountOutMin)
	}

	rt.StateTransaction(&st, func() {
		err := st.AppendRecord(adt.AsStore(rt), &SettlementRecord{
			Kind:      KindViaVenue,
			Party:     rt.Caller(),
			AmountIn:  amountIn,
			AmountOut: realized,
			Epoch:     rt.CurrEpoch(),
		})
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to append record")
	})

	return &SwapReturn{AmountIn: amountIn, AmountOut: realized}
}

type WithdrawCustodiedParams struct {
	To     addr.Address
	Amount abi.TokenAmount
}

// WithdrawCustodied moves custodied counter-asset to the recipient. For the
// vesting-discounted variant this is held back until the window has fully
// ended.
func (a Actor) WithdrawCustodied(rt Runtime, params *WithdrawCustodiedParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsExchange.WithdrawCustodied)

	builtin.RequireParam(rt, params.To != addr.Undef, "empty address")
	builtin.RequireParam(rt, params.Amount.GreaterThan(big.Zero()), "non-positive amount %v", params.Amount)

	var st State
	rt.StateTransaction(&st, func() {
		if st.DiscountInbound && rt.CurrEpoch() <= st.Schedule.End() {
			rt.Abortf(builtin.ErrBadState, "swap window not ended until %d", st.Schedule.End())
		}
		if st.CustodyBalance.LessThan(params.Amount) {
			rt.Abortf(exitcode.ErrInsufficientFunds, "custody %v less than %v", st.CustodyBalance, params.Amount)
		}
		st.CustodyBalance = big.Sub(st.CustodyBalance, params.Amount)

		err := st.AppendRecord(adt.AsStore(rt), &SettlementRecord{
			Kind:      KindCustodyWithdraw,
			Party:     params.To,
			AmountIn:  params.Amount,
			AmountOut: params.Amount,
			Epoch:     rt.CurrEpoch(),
		})
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to append record")
	})

	code := rt.Send(params.To, builtin.MethodSend, nil, params.Amount, &builtin.Discard{})
	builtin.RequireSuccess(rt, code, "failed to send funds")
	return nil
}

type SetMaxBaseFeeParams struct {
	MaxBaseFee abi.TokenAmount
}

func (a Actor) SetMaxBaseFee(rt Runtime, params *SetMaxBaseFeeParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsExchange.SetMaxBaseFee)

	builtin.RequireParam(rt, params.MaxBaseFee.Int != nil && params.MaxBaseFee.GreaterThanEqual(big.Zero()), "negative base fee limit")

	var st State
	rt.StateTransaction(&st, func() {
		st.MaxBaseFee = params.MaxBaseFee
	})
	return nil
}

type ChangeDeadlineParams struct {
	NewDeadline abi.ChainEpoch
}

func (a Actor) ChangeDeadline(rt Runtime, params *ChangeDeadlineParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsExchange.ChangeDeadline)

	builtin.RequireParam(rt, params.NewDeadline > rt.CurrEpoch(), "new deadline %d not in the future", params.NewDeadline)

	var st State
	rt.StateTransaction(&st, func() {
		st.Deadline = params.NewDeadline
	})
	return nil
}

// Reschedule follows a vesting start move on the token ledger so the discount
// window and reverse-ratio pricing stay aligned with the schedule the ledger
// actually vests on. Only the ledger itself may call it, as the tail of its
// own reschedule.
func (a Actor) Reschedule(rt Runtime, params *token.RescheduleParams) *abi.EmptyValue {
	var st State
	rt.StateReadonly(&st)
	rt.ValidateImmediateCallerIs(st.Token)

	builtin.RequireParam(rt, params.NewStart > rt.CurrEpoch(), "new start %d not in the future", params.NewStart)

	rt.StateTransaction(&st, func() {
		st.Schedule.Start = params.NewStart
	})
	return nil
}

type StatusReturn struct {
	Stopped        bool
	Deadline       abi.ChainEpoch
	MaxBaseFee     abi.TokenAmount
	CustodyBalance abi.TokenAmount
	RecordCount    uint64
}

func (a Actor) Status(rt Runtime, _ *abi.EmptyValue) *StatusReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.StateReadonly(&st)

	count, err := st.RecordCount(adt.AsStore(rt))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to count records")

	return &StatusReturn{
		Stopped:        st.Stopped,
		Deadline:       st.Deadline,
		MaxBaseFee:     st.MaxBaseFee,
		CustodyBalance: st.CustodyBalance,
		RecordCount:    count,
	}
}

func requireSwapsOpen(rt Runtime, st *State) {
	if st.Stopped {
		rt.Abortf(builtin.ErrPaused, "swaps stopped")
	}
	if st.Deadline != 0 && rt.CurrEpoch() > st.Deadline {
		rt.Abortf(builtin.ErrDeadlineExpired, "deadline %d passed", st.Deadline)
	}
	if st.MaxBaseFee.GreaterThan(big.Zero()) && rt.BaseFee().GreaterThan(st.MaxBaseFee) {
		rt.Abortf(builtin.ErrBaseFeeExceeded, "base fee %v exceeds limit %v", rt.BaseFee(), st.MaxBaseFee)
	}
}

func requireWindowOpen(rt Runtime, st *State) {
	now := rt.CurrEpoch()
	if now < st.Schedule.Start {
		rt.Abortf(builtin.ErrBadState, "swap window not open until %d", st.Schedule.Start)
	}
	if now > st.Schedule.End() {
		rt.Abortf(builtin.ErrDeadlineExpired, "swap window closed at %d", st.Schedule.End())
	}
}
