package venue_test

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin"
	"github.com/vesta-protocol/go-vesta-actors/actors/builtin/venue"
	"github.com/vesta-protocol/go-vesta-actors/support/mock"
	tutil "github.com/vesta-protocol/go-vesta-actors/support/testing"
)

func TestExports(t *testing.T) {
	mock.CheckActorExports(t, venue.Actor{})
}

func TestConstruction(t *testing.T) {
	builder := mock.NewBuilder(context.Background(), builtin.VenueActorAddr).
		WithCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)

	t.Run("simple construction", func(t *testing.T) {
		rt := builder.Build(t)
		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		ret := rt.Call(venue.Actor{}.Constructor, &venue.ConstructorParams{
			RateNum:   big.NewInt(19),
			RateDenom: big.NewInt(20),
		})
		assert.Nil(t, ret)
		rt.Verify()
	})

	t.Run("fail on non-positive rate", func(t *testing.T) {
		rt := builder.Build(t)
		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(venue.Actor{}.Constructor, &venue.ConstructorParams{
				RateNum:   big.Zero(),
				RateDenom: big.NewInt(20),
			})
		})
	})
}

func TestQuote(t *testing.T) {
	assetA := tutil.NewIDAddr(t, 50)
	assetB := tutil.NewIDAddr(t, 51)
	caller := tutil.NewIDAddr(t, 100)

	rt, actor := setupVenue(t, big.NewInt(19), big.NewInt(20))
	rt.SetCaller(caller, builtin.AccountActorCodeID)

	t.Run("quotes at the fixed rate with truncation", func(t *testing.T) {
		rt.ExpectValidateCallerAny()
		ret := rt.Call(actor.Quote, &builtin.VenueQuoteParams{
			AmountIn: big.NewInt(1000),
			Path:     []addr.Address{assetA, assetB},
		}).(*builtin.VenueAmountsReturn)
		rt.Verify()

		require.Len(t, ret.Amounts, 2)
		require.Equal(t, big.NewInt(1000), ret.Amounts[0])
		require.Equal(t, big.NewInt(950), ret.Amounts[1])
	})

	t.Run("fail on short path", func(t *testing.T) {
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(actor.Quote, &builtin.VenueQuoteParams{
				AmountIn: big.NewInt(1000),
				Path:     []addr.Address{assetA},
			})
		})
	})
}

func TestSwapExactInForOut(t *testing.T) {
	assetA := tutil.NewIDAddr(t, 50)
	assetB := tutil.NewIDAddr(t, 51)
	trader := tutil.NewIDAddr(t, 100)
	path := []addr.Address{assetA, assetB}

	t.Run("pays the recipient at the rate", func(t *testing.T) {
		rt, actor := setupVenue(t, big.NewInt(19), big.NewInt(20))

		rt.SetCaller(builtin.ExchangeActorAddr, builtin.ExchangeActorCodeID)
		rt.SetReceived(big.NewInt(1000))
		rt.SetBalance(big.NewInt(10000))
		rt.ExpectValidateCallerAny()
		rt.ExpectSend(trader, builtin.MethodSend, nil, big.NewInt(950), nil, exitcode.Ok)

		ret := rt.Call(actor.SwapExactInForOut, &builtin.VenueSwapParams{
			AmountIn:     big.NewInt(1000),
			AmountOutMin: big.NewInt(900),
			Path:         path,
			Recipient:    trader,
		}).(*builtin.VenueAmountsReturn)
		rt.Verify()

		require.Equal(t, big.NewInt(950), ret.Amounts[len(ret.Amounts)-1])
	})

	t.Run("fail when rate output below the minimum", func(t *testing.T) {
		rt, actor := setupVenue(t, big.NewInt(19), big.NewInt(20))

		rt.SetCaller(builtin.ExchangeActorAddr, builtin.ExchangeActorCodeID)
		rt.SetReceived(big.NewInt(1000))
		rt.SetBalance(big.NewInt(10000))
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(builtin.ErrSlippageExceeded, func() {
			rt.Call(actor.SwapExactInForOut, &builtin.VenueSwapParams{
				AmountIn:     big.NewInt(1000),
				AmountOutMin: big.NewInt(951),
				Path:         path,
				Recipient:    trader,
			})
		})
	})

	t.Run("fail after the deadline", func(t *testing.T) {
		rt, actor := setupVenue(t, big.NewInt(19), big.NewInt(20))
		rt.SetEpoch(1001)

		rt.SetCaller(builtin.ExchangeActorAddr, builtin.ExchangeActorCodeID)
		rt.SetReceived(big.NewInt(1000))
		rt.SetBalance(big.NewInt(10000))
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(builtin.ErrDeadlineExpired, func() {
			rt.Call(actor.SwapExactInForOut, &builtin.VenueSwapParams{
				AmountIn:     big.NewInt(1000),
				AmountOutMin: big.NewInt(900),
				Path:         path,
				Recipient:    trader,
				Deadline:     1000,
			})
		})
	})

	t.Run("fail when the venue cannot cover the output", func(t *testing.T) {
		rt, actor := setupVenue(t, big.NewInt(19), big.NewInt(20))

		rt.SetCaller(builtin.ExchangeActorAddr, builtin.ExchangeActorCodeID)
		rt.SetReceived(big.NewInt(1000))
		// balance is only the incoming funds, nothing of its own
		rt.SetBalance(big.NewInt(1000))
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrInsufficientFunds, func() {
			rt.Call(actor.SwapExactInForOut, &builtin.VenueSwapParams{
				AmountIn:     big.NewInt(1000),
				AmountOutMin: big.NewInt(900),
				Path:         path,
				Recipient:    trader,
			})
		})
	})

	t.Run("fail when received funds mismatch declared input", func(t *testing.T) {
		rt, actor := setupVenue(t, big.NewInt(19), big.NewInt(20))

		rt.SetCaller(builtin.ExchangeActorAddr, builtin.ExchangeActorCodeID)
		rt.SetReceived(big.NewInt(999))
		rt.SetBalance(big.NewInt(10000))
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(actor.SwapExactInForOut, &builtin.VenueSwapParams{
				AmountIn:     big.NewInt(1000),
				AmountOutMin: big.NewInt(900),
				Path:         path,
				Recipient:    trader,
			})
		})
	})
}

func TestSwapInForExactOut(t *testing.T) {
	assetA := tutil.NewIDAddr(t, 50)
	assetB := tutil.NewIDAddr(t, 51)
	trader := tutil.NewIDAddr(t, 100)
	path := []addr.Address{assetA, assetB}

	t.Run("refunds input beyond what the rate requires", func(t *testing.T) {
		rt, actor := setupVenue(t, big.NewInt(19), big.NewInt(20))

		caller := tutil.NewIDAddr(t, 101)
		rt.SetCaller(caller, builtin.AccountActorCodeID)
		rt.SetReceived(big.NewInt(1000))
		rt.SetBalance(big.NewInt(10000))
		rt.ExpectValidateCallerAny()
		// ceil(900 * 20/19) = 948
		rt.ExpectSend(trader, builtin.MethodSend, nil, big.NewInt(900), nil, exitcode.Ok)
		rt.ExpectSend(caller, builtin.MethodSend, nil, big.NewInt(52), nil, exitcode.Ok)

		ret := rt.Call(actor.SwapInForExactOut, &builtin.VenueSwapParams{
			AmountIn:     big.NewInt(1000),
			AmountOutMin: big.NewInt(900),
			Path:         path,
			Recipient:    trader,
		}).(*builtin.VenueAmountsReturn)
		rt.Verify()

		require.Equal(t, big.NewInt(948), ret.Amounts[0])
		require.Equal(t, big.NewInt(900), ret.Amounts[len(ret.Amounts)-1])
	})

	t.Run("fail when input cannot buy the exact output", func(t *testing.T) {
		rt, actor := setupVenue(t, big.NewInt(19), big.NewInt(20))

		caller := tutil.NewIDAddr(t, 101)
		rt.SetCaller(caller, builtin.AccountActorCodeID)
		rt.SetReceived(big.NewInt(900))
		rt.SetBalance(big.NewInt(10000))
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(builtin.ErrSlippageExceeded, func() {
			rt.Call(actor.SwapInForExactOut, &builtin.VenueSwapParams{
				AmountIn:     big.NewInt(900),
				AmountOutMin: big.NewInt(900),
				Path:         path,
				Recipient:    trader,
			})
		})
	})
}

type venueHarness struct {
	venue.Actor
	t *testing.T
}

func setupVenue(t *testing.T, num, denom big.Int) (*mock.Runtime, *venueHarness) {
	builder := mock.NewBuilder(context.Background(), builtin.VenueActorAddr).
		WithCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)
	rt := builder.Build(t)

	h := &venueHarness{Actor: venue.Actor{}, t: t}
	rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
	ret := rt.Call(h.Constructor, &venue.ConstructorParams{RateNum: num, RateDenom: denom})
	assert.Nil(t, ret)
	rt.Verify()
	return rt, h
}
