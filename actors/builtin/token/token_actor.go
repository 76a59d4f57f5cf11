package token

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/ipfs/go-cid"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin"
	"github.com/vesta-protocol/go-vesta-actors/actors/runtime"
	"github.com/vesta-protocol/go-vesta-actors/actors/util/adt"
)

type Runtime = runtime.Runtime

type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.Mint,
		3:                         a.Burn,
		4:                         a.BurnFrom,
		5:                         a.Transfer,
		6:                         a.TransferFrom,
		7:                         a.Approve,
		8:                         a.Allowance,
		9:                         a.Pause,
		10:                        a.Resume,
		11:                        a.Reschedule,
		12:                        a.WithdrawReserve,
		13:                        a.BalanceOf,
		14:                        a.TotalSupply,
		15:                        a.RawTotalSupply,
		16:                        a.ReserveAmount,
		17:                        a.VestingCountdown,
		18:                        a.Paused,
	}
}

func (a Actor) Code() cid.Cid {
	return builtin.TokenActorCodeID
}

func (a Actor) IsSingleton() bool {
	return true
}

func (a Actor) State() cbor.Er { return new(State) }

var _ runtime.VMActor = Actor{}

type ConstructorParams struct {
	MaxSupply    abi.TokenAmount
	VestingStart abi.ChainEpoch
	DurationDays uint64
}

func (a Actor) Constructor(rt Runtime, params *ConstructorParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	maxSupply := params.MaxSupply
	if maxSupply.Int == nil || maxSupply.IsZero() {
		maxSupply = DefaultMaxSupply
	}
	builtin.RequireParam(rt, maxSupply.GreaterThan(big.Zero()), "non-positive supply cap %v", maxSupply)

	durationDays := params.DurationDays
	if durationDays == 0 {
		durationDays = DefaultVestingDurationDays
	}

	st, err := ConstructState(adt.AsStore(rt), maxSupply, Schedule{
		Start:        params.VestingStart,
		DurationDays: durationDays,
	})
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to construct state")

	rt.StateCreate(st)
	return nil
}

type MintParams struct {
	To     addr.Address
	Amount abi.TokenAmount
}

// Mint credits vesting allocation to the recipient. The allocation unlocks
// gradually over the vesting window; nothing is spendable on day zero.
func (a Actor) Mint(rt Runtime, params *MintParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	// The settlement engine mints as part of swaps; anyone else needs a grant.
	if rt.Caller() != builtin.ExchangeActorAddr {
		builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsToken.Mint)
	}

	to := resolveNonNull(rt, params.To)

	var st State
	rt.StateTransaction(&st, func() {
		requireNotPaused(rt, &st)

		code, err := st.Mint(adt.AsStore(rt), to, params.Amount)
		builtin.RequireNoErr(rt, err, code, "failed to mint %v to %s", params.Amount, to)
	})
	return nil
}

type BurnParams struct {
	Amount abi.TokenAmount
}

func (a Actor) Burn(rt Runtime, params *BurnParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)

	var st State
	rt.StateTransaction(&st, func() {
		requireNotPaused(rt, &st)

		code, err := st.Burn(adt.AsStore(rt), rt.Caller(), params.Amount, rt.CurrEpoch())
		builtin.RequireNoErr(rt, err, code, "failed to burn %v of %s", params.Amount, rt.Caller())
	})
	return nil
}

type BurnFromParams struct {
	From   addr.Address
	Amount abi.TokenAmount
}

func (a Actor) BurnFrom(rt Runtime, params *BurnFromParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	if rt.Caller() != builtin.ExchangeActorAddr {
		builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsToken.BurnFrom)
	}

	from := resolveNonNull(rt, params.From)

	var st State
	rt.StateTransaction(&st, func() {
		requireNotPaused(rt, &st)

		code, err := st.Burn(adt.AsStore(rt), from, params.Amount, rt.CurrEpoch())
		builtin.RequireNoErr(rt, err, code, "failed to burn %v of %s", params.Amount, from)
	})
	return nil
}

type TransferParams struct {
	To     addr.Address
	Amount abi.TokenAmount
}

func (a Actor) Transfer(rt Runtime, params *TransferParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)

	to := resolveNonNull(rt, params.To)

	var st State
	rt.StateTransaction(&st, func() {
		requireNotPaused(rt, &st)

		code, err := st.Transfer(adt.AsStore(rt), rt.Caller(), to, params.Amount, rt.CurrEpoch())
		builtin.RequireNoErr(rt, err, code, "failed to transfer %v from %s to %s", params.Amount, rt.Caller(), to)
	})
	return nil
}

type TransferFromParams struct {
	From   addr.Address
	To     addr.Address
	Amount abi.TokenAmount
}

func (a Actor) TransferFrom(rt Runtime, params *TransferFromParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)

	from := resolveNonNull(rt, params.From)
	to := resolveNonNull(rt, params.To)

	var st State
	rt.StateTransaction(&st, func() {
		requireNotPaused(rt, &st)
		store := adt.AsStore(rt)

		code, err := st.DeductAllowance(store, from, rt.Caller(), params.Amount)
		builtin.RequireNoErr(rt, err, code, "failed to deduct allowance of %s from %s", rt.Caller(), from)

		code, err = st.Transfer(store, from, to, params.Amount, rt.CurrEpoch())
		builtin.RequireNoErr(rt, err, code, "failed to transfer %v from %s to %s", params.Amount, from, to)
	})
	return nil
}

type ApproveParams struct {
	Spender addr.Address
	Amount  abi.TokenAmount
}

// Approve sets the spender's allowance to exactly Amount, replacing any
// previous value.
func (a Actor) Approve(rt Runtime, params *ApproveParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)

	spender := resolveNonNull(rt, params.Spender)

	var st State
	rt.StateTransaction(&st, func() {
		err := st.Approve(adt.AsStore(rt), rt.Caller(), spender, params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to approve %v for %s", params.Amount, spender)
	})
	return nil
}

type AllowanceParams struct {
	Owner   addr.Address
	Spender addr.Address
}

func (a Actor) Allowance(rt Runtime, params *AllowanceParams) *abi.TokenAmount {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.StateReadonly(&st)

	amount, err := st.Allowance(adt.AsStore(rt), params.Owner, params.Spender)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get allowance")
	return &amount
}

func (a Actor) Pause(rt Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsToken.Pause)

	var st State
	rt.StateTransaction(&st, func() {
		if st.TransfersStopped {
			rt.Abortf(builtin.ErrBadState, "transfers already stopped")
		}
		st.TransfersStopped = true
	})
	return nil
}

func (a Actor) Resume(rt Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsToken.Resume)

	var st State
	rt.StateTransaction(&st, func() {
		if !st.TransfersStopped {
			rt.Abortf(builtin.ErrBadState, "transfers not stopped")
		}
		st.TransfersStopped = false
	})
	return nil
}

type RescheduleParams struct {
	NewStart abi.ChainEpoch
}

// Reschedule moves the vesting start forward, allowed exactly once and only
// before vesting begins.
func (a Actor) Reschedule(rt Runtime, params *RescheduleParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsToken.Reschedule)

	var st State
	rt.StateTransaction(&st, func() {
		if st.Rescheduled {
			rt.Abortf(builtin.ErrBadState, "schedule already changed once")
		}
		if rt.CurrEpoch() >= st.Schedule.Start {
			rt.Abortf(builtin.ErrBadState, "vesting already began at %d", st.Schedule.Start)
		}
		builtin.RequireParam(rt, params.NewStart > rt.CurrEpoch(), "new start %d not in the future", params.NewStart)

		st.Schedule.Start = params.NewStart
		st.ReserveFreezeUntil = params.NewStart + abi.ChainEpoch(ReserveFreezeOffsetDays)*builtin.EpochsInDay
		st.Rescheduled = true
	})

	// The settlement engine prices and gates against the same schedule, so the
	// move must land there in the same call.
	code := rt.Send(builtin.ExchangeActorAddr, builtin.MethodsExchange.Reschedule, params, big.Zero(), &builtin.Discard{})
	builtin.RequireSuccess(rt, code, "failed to move settlement schedule")
	return nil
}

type WithdrawReserveParams struct {
	To addr.Address
}

// WithdrawReserve mints the unvested remainder of the cap to the recipient,
// through the normal mint path so it stays capped and auditable.
func (a Actor) WithdrawReserve(rt Runtime, params *WithdrawReserveParams) *abi.TokenAmount {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	builtin.ValidateCallerGranted(rt, rt.Caller(), builtin.MethodsToken.WithdrawReserve)

	to := resolveNonNull(rt, params.To)

	reserve := abi.NewTokenAmount(0)
	var st State
	rt.StateTransaction(&st, func() {
		requireNotPaused(rt, &st)

		if rt.CurrEpoch() <= st.ReserveFreezeUntil {
			rt.Abortf(builtin.ErrReserveFrozen, "reserve frozen until %d", st.ReserveFreezeUntil)
		}

		var err error
		reserve, err = st.ReserveAmount(rt.CurrEpoch())
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to compute reserve")
		if reserve.IsZero() {
			return
		}

		code, err := st.Mint(adt.AsStore(rt), to, reserve)
		builtin.RequireNoErr(rt, err, code, "failed to mint reserve %v to %s", reserve, to)
	})
	return &reserve
}

func (a Actor) BalanceOf(rt Runtime, owner *addr.Address) *abi.TokenAmount {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.StateReadonly(&st)

	balance, err := st.EffectiveBalance(adt.AsStore(rt), *owner, rt.CurrEpoch())
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get balance of %s", owner)
	return &balance
}

func (a Actor) TotalSupply(rt Runtime, _ *abi.EmptyValue) *abi.TokenAmount {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.StateReadonly(&st)

	supply := st.TotalSupply(rt.CurrEpoch())
	return &supply
}

func (a Actor) RawTotalSupply(rt Runtime, _ *abi.EmptyValue) *abi.TokenAmount {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.StateReadonly(&st)

	supply := st.RawSupply
	return &supply
}

func (a Actor) ReserveAmount(rt Runtime, _ *abi.EmptyValue) *abi.TokenAmount {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.StateReadonly(&st)

	reserve, err := st.ReserveAmount(rt.CurrEpoch())
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to compute reserve")
	return &reserve
}

type VestingCountdownReturn struct {
	Start          abi.ChainEpoch
	End            abi.ChainEpoch
	DaysSinceStart uint64
	DaysLeft       uint64
}

func (a Actor) VestingCountdown(rt Runtime, _ *abi.EmptyValue) *VestingCountdownReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.StateReadonly(&st)

	return &VestingCountdownReturn{
		Start:          st.Schedule.Start,
		End:            st.Schedule.End(),
		DaysSinceStart: st.Schedule.DaysSinceStart(rt.CurrEpoch()),
		DaysLeft:       st.Schedule.DaysLeft(rt.CurrEpoch()),
	}
}

func (a Actor) Paused(rt Runtime, _ *abi.EmptyValue) *builtin.BoolValue {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.StateReadonly(&st)

	return &builtin.BoolValue{Bool: st.TransfersStopped}
}

func requireNotPaused(rt Runtime, st *State) {
	if st.TransfersStopped {
		rt.Abortf(builtin.ErrPaused, "transfers stopped")
	}
}

func resolveNonNull(rt Runtime, target addr.Address) addr.Address {
	builtin.RequireParam(rt, target != addr.Undef, "empty address")

	resolved, err := builtin.ResolveToIDAddr(rt, target)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "failed to resolve address %s", target)
	return resolved
}
