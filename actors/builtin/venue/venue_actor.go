package venue

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/ipfs/go-cid"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin"
	"github.com/vesta-protocol/go-vesta-actors/actors/runtime"
)

// A fixed-rate price venue. Quotes and fills swaps at RateNum/RateDenom out
// of its own balance.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.Quote,
		3:                         a.SwapExactInForOut,
		4:                         a.SwapInForExactOut,
	}
}

func (a Actor) Code() cid.Cid {
	return builtin.VenueActorCodeID
}

func (a Actor) IsSingleton() bool {
	return true
}

func (a Actor) State() cbor.Er { return new(State) }

var _ runtime.VMActor = Actor{}

type State struct {
	RateNum   big.Int
	RateDenom big.Int
}

func (st *State) quoteOut(amountIn abi.TokenAmount) abi.TokenAmount {
	return big.Div(big.Mul(amountIn, st.RateNum), st.RateDenom)
}

// Smallest input that yields at least amountOut at the fixed rate.
func (st *State) quoteIn(amountOut abi.TokenAmount) abi.TokenAmount {
	num := big.Mul(amountOut, st.RateDenom)
	in := big.Div(num, st.RateNum)
	if big.Mul(in, st.RateNum).LessThan(num) {
		in = big.Add(in, big.NewInt(1))
	}
	return in
}

type ConstructorParams struct {
	RateNum   big.Int
	RateDenom big.Int
}

func (a Actor) Constructor(rt runtime.Runtime, params *ConstructorParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	builtin.RequireParam(rt, params.RateNum.Int != nil && params.RateNum.GreaterThan(big.Zero()), "non-positive rate numerator")
	builtin.RequireParam(rt, params.RateDenom.Int != nil && params.RateDenom.GreaterThan(big.Zero()), "non-positive rate denominator")

	rt.StateCreate(&State{
		RateNum:   params.RateNum,
		RateDenom: params.RateDenom,
	})
	return nil
}

func (a Actor) Quote(rt runtime.Runtime, params *builtin.VenueQuoteParams) *builtin.VenueAmountsReturn {
	rt.ValidateImmediateCallerAcceptAny()
	builtin.RequireParam(rt, len(params.Path) >= 2, "path too short")

	var st State
	rt.StateReadonly(&st)

	return &builtin.VenueAmountsReturn{Amounts: fillAmounts(&st, params.AmountIn, len(params.Path))}
}

func (a Actor) SwapExactInForOut(rt runtime.Runtime, params *builtin.VenueSwapParams) *builtin.VenueAmountsReturn {
	rt.ValidateImmediateCallerAcceptAny()
	builtin.RequireParam(rt, len(params.Path) >= 2, "path too short")

	amountIn := rt.ValueReceived()
	builtin.RequireParam(rt, amountIn.Equals(params.AmountIn), "received funds %v not match expected %v", amountIn, params.AmountIn)
	requireBeforeDeadline(rt, params.Deadline)

	var st State
	rt.StateReadonly(&st)

	amountOut := st.quoteOut(amountIn)
	if amountOut.LessThan(params.AmountOutMin) {
		rt.Abortf(builtin.ErrSlippageExceeded, "output %v below minimum %v", amountOut, params.AmountOutMin)
	}
	requireLiquidity(rt, amountIn, amountOut)

	code := rt.Send(params.Recipient, builtin.MethodSend, nil, amountOut, &builtin.Discard{})
	builtin.RequireSuccess(rt, code, "failed to pay recipient")

	return &builtin.VenueAmountsReturn{Amounts: fillAmounts(&st, amountIn, len(params.Path))}
}

// SwapInForExactOut fills exactly AmountOutMin, refunding any input beyond
// what the rate requires.
func (a Actor) SwapInForExactOut(rt runtime.Runtime, params *builtin.VenueSwapParams) *builtin.VenueAmountsReturn {
	rt.ValidateImmediateCallerAcceptAny()
	builtin.RequireParam(rt, len(params.Path) >= 2, "path too short")
	builtin.RequireParam(rt, params.AmountOutMin.GreaterThan(big.Zero()), "non-positive output %v", params.AmountOutMin)

	amountIn := rt.ValueReceived()
	builtin.RequireParam(rt, amountIn.Equals(params.AmountIn), "received funds %v not match expected %v", amountIn, params.AmountIn)
	requireBeforeDeadline(rt, params.Deadline)

	var st State
	rt.StateReadonly(&st)

	amountOut := params.AmountOutMin
	requiredIn := st.quoteIn(amountOut)
	if requiredIn.GreaterThan(amountIn) {
		rt.Abortf(builtin.ErrSlippageExceeded, "required input %v exceeds provided %v", requiredIn, amountIn)
	}
	requireLiquidity(rt, amountIn, amountOut)

	code := rt.Send(params.Recipient, builtin.MethodSend, nil, amountOut, &builtin.Discard{})
	builtin.RequireSuccess(rt, code, "failed to pay recipient")

	refund := big.Sub(amountIn, requiredIn)
	if refund.GreaterThan(big.Zero()) {
		code := rt.Send(rt.Caller(), builtin.MethodSend, nil, refund, &builtin.Discard{})
		builtin.RequireSuccess(rt, code, "failed to refund")
	}

	amounts := make([]abi.TokenAmount, len(params.Path))
	amounts[0] = requiredIn
	for i := 1; i < len(amounts); i++ {
		amounts[i] = amountOut
	}
	return &builtin.VenueAmountsReturn{Amounts: amounts}
}

func fillAmounts(st *State, amountIn abi.TokenAmount, pathLen int) []abi.TokenAmount {
	amounts := make([]abi.TokenAmount, pathLen)
	amounts[0] = amountIn
	out := st.quoteOut(amountIn)
	for i := 1; i < pathLen; i++ {
		amounts[i] = out
	}
	return amounts
}

func requireBeforeDeadline(rt runtime.Runtime, deadline abi.ChainEpoch) {
	if deadline != 0 && rt.CurrEpoch() > deadline {
		rt.Abortf(builtin.ErrDeadlineExpired, "deadline %d passed", deadline)
	}
}

func requireLiquidity(rt runtime.Runtime, amountIn, amountOut abi.TokenAmount) {
	available := big.Sub(rt.CurrentBalance(), amountIn)
	if available.LessThan(amountOut) {
		rt.Abortf(exitcode.ErrInsufficientFunds, "venue liquidity %v less than %v", available, amountOut)
	}
}
