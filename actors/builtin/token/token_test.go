package token_test

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin"
	"github.com/vesta-protocol/go-vesta-actors/actors/builtin/token"
	"github.com/vesta-protocol/go-vesta-actors/actors/util/adt"
	"github.com/vesta-protocol/go-vesta-actors/support/mock"
	tutil "github.com/vesta-protocol/go-vesta-actors/support/testing"
)

func TestExports(t *testing.T) {
	mock.CheckActorExports(t, token.Actor{})
}

func TestConstruction(t *testing.T) {
	actor := token.Actor{}
	builder := mock.NewBuilder(context.Background(), builtin.TokenActorAddr).
		WithCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)

	t.Run("explicit params", func(t *testing.T) {
		rt := builder.Build(t)
		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		ret := rt.Call(actor.Constructor, &token.ConstructorParams{
			MaxSupply:    big.NewInt(5000),
			VestingStart: 1000,
			DurationDays: 30,
		})
		assert.Nil(t, ret)
		rt.Verify()

		var st token.State
		rt.GetState(&st)
		require.Equal(t, big.NewInt(5000), st.MaxSupply)
		require.True(t, st.RawSupply.IsZero())
		require.Equal(t, abi.ChainEpoch(1000), st.Schedule.Start)
		require.Equal(t, uint64(30), st.Schedule.DurationDays)
		require.Equal(t, abi.ChainEpoch(1000+730*builtin.EpochsInDay), st.ReserveFreezeUntil)
		require.False(t, st.Rescheduled)
		require.False(t, st.TransfersStopped)
	})

	t.Run("zero params take defaults", func(t *testing.T) {
		rt := builder.Build(t)
		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		rt.Call(actor.Constructor, &token.ConstructorParams{})
		rt.Verify()

		var st token.State
		rt.GetState(&st)
		require.Equal(t, token.DefaultMaxSupply, st.MaxSupply)
		require.Equal(t, token.DefaultVestingDurationDays, st.Schedule.DurationDays)
	})

	t.Run("fail when caller not system", func(t *testing.T) {
		rt := builder.Build(t)
		rt.SetCaller(tutil.NewIDAddr(t, 100), builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		rt.ExpectAbort(exitcode.SysErrForbidden, func() {
			rt.Call(actor.Constructor, &token.ConstructorParams{})
		})
	})
}

func TestMint(t *testing.T) {
	alice := tutil.NewIDAddr(t, 100)
	governor := tutil.NewIDAddr(t, 200)

	t.Run("settlement engine mints without a grant", func(t *testing.T) {
		rt, actor := setupToken(t)

		actor.mintAsExchange(rt, alice, big.NewInt(1000))

		sum := actor.checkState(rt)
		require.Equal(t, big.NewInt(1000), sum.Credited[alice])
	})

	t.Run("granted governor mints", func(t *testing.T) {
		rt, actor := setupToken(t)

		rt.SetCaller(governor, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectSend(builtin.GovernActorAddr, builtin.MethodsGovern.ValidateGranted,
			&builtin.ValidateGrantedParams{Caller: governor, Method: builtin.MethodsToken.Mint},
			big.Zero(), nil, exitcode.Ok)
		rt.Call(actor.Mint, &token.MintParams{To: alice, Amount: big.NewInt(500)})
		rt.Verify()

		sum := actor.checkState(rt)
		require.Equal(t, big.NewInt(500), sum.Credited[alice])
	})

	t.Run("fail when caller has no grant", func(t *testing.T) {
		rt, actor := setupToken(t)

		rt.SetCaller(governor, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectSend(builtin.GovernActorAddr, builtin.MethodsGovern.ValidateGranted,
			&builtin.ValidateGrantedParams{Caller: governor, Method: builtin.MethodsToken.Mint},
			big.Zero(), nil, exitcode.ErrForbidden)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(actor.Mint, &token.MintParams{To: alice, Amount: big.NewInt(500)})
		})

		sum := actor.checkState(rt)
		require.Equal(t, 0, sum.AccountsCount)
	})

	t.Run("fail when mint exceeds cap", func(t *testing.T) {
		rt, actor := setupTokenWithCap(t, big.NewInt(1000))

		actor.mintAsExchange(rt, alice, big.NewInt(900))

		rt.SetCaller(builtin.ExchangeActorAddr, builtin.ExchangeActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(builtin.ErrSupplyCapExceeded, func() {
			rt.Call(actor.Mint, &token.MintParams{To: alice, Amount: big.NewInt(200)})
		})

		sum := actor.checkState(rt)
		require.Equal(t, big.NewInt(900), sum.Credited[alice])
	})
}

func TestBurn(t *testing.T) {
	alice := tutil.NewIDAddr(t, 100)

	t.Run("fail on day zero, nothing vested yet", func(t *testing.T) {
		rt, actor := setupToken(t)
		actor.mintAsExchange(rt, alice, big.NewInt(1000))

		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(exitcode.ErrInsufficientFunds, func() {
			rt.Call(actor.Burn, &token.BurnParams{Amount: big.NewInt(1)})
		})
	})

	t.Run("burn whole allocation at vesting end", func(t *testing.T) {
		rt, actor := setupToken(t)
		actor.mintAsExchange(rt, alice, big.NewInt(1000))

		rt.SetEpoch(abi.ChainEpoch(182 * builtin.EpochsInDay))
		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.Call(actor.Burn, &token.BurnParams{Amount: big.NewInt(1000)})
		rt.Verify()

		var st token.State
		rt.GetState(&st)
		require.True(t, st.RawSupply.IsZero())
	})
}

func TestTransfer(t *testing.T) {
	alice := tutil.NewIDAddr(t, 100)
	bob := tutil.NewIDAddr(t, 101)
	halfway := abi.ChainEpoch(91 * builtin.EpochsInDay)

	t.Run("vested portion moves to recipient free balance", func(t *testing.T) {
		rt, actor := setupToken(t)
		actor.mintAsExchange(rt, alice, big.NewInt(1000))

		rt.SetEpoch(halfway)
		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.Call(actor.Transfer, &token.TransferParams{To: bob, Amount: big.NewInt(300)})
		rt.Verify()

		sum := actor.checkState(rt)
		require.Equal(t, big.NewInt(300), sum.Spent[alice])
		require.Equal(t, big.NewInt(300), sum.Free[bob])
	})

	t.Run("fail when paused", func(t *testing.T) {
		rt, actor := setupToken(t)
		actor.mintAsExchange(rt, alice, big.NewInt(1000))
		actor.pause(rt)

		rt.SetEpoch(halfway)
		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(builtin.ErrPaused, func() {
			rt.Call(actor.Transfer, &token.TransferParams{To: bob, Amount: big.NewInt(300)})
		})

		// transfers work again after resume
		actor.resume(rt)
		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.Call(actor.Transfer, &token.TransferParams{To: bob, Amount: big.NewInt(300)})
		rt.Verify()
	})
}

func TestTransferFrom(t *testing.T) {
	alice := tutil.NewIDAddr(t, 100)
	bob := tutil.NewIDAddr(t, 101)
	carol := tutil.NewIDAddr(t, 102)
	halfway := abi.ChainEpoch(91 * builtin.EpochsInDay)

	t.Run("spends within allowance", func(t *testing.T) {
		rt, actor := setupToken(t)
		actor.mintAsExchange(rt, alice, big.NewInt(1000))
		actor.approve(rt, alice, bob, big.NewInt(400))

		rt.SetEpoch(halfway)
		rt.SetCaller(bob, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.Call(actor.TransferFrom, &token.TransferFromParams{From: alice, To: carol, Amount: big.NewInt(300)})
		rt.Verify()

		require.Equal(t, big.NewInt(100), actor.allowance(rt, alice, bob))

		sum := actor.checkState(rt)
		require.Equal(t, big.NewInt(300), sum.Free[carol])
	})

	t.Run("fail when amount exceeds allowance", func(t *testing.T) {
		rt, actor := setupToken(t)
		actor.mintAsExchange(rt, alice, big.NewInt(1000))
		actor.approve(rt, alice, bob, big.NewInt(100))

		rt.SetEpoch(halfway)
		rt.SetCaller(bob, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(builtin.ErrInsufficientAllowance, func() {
			rt.Call(actor.TransferFrom, &token.TransferFromParams{From: alice, To: carol, Amount: big.NewInt(300)})
		})

		// allowance untouched by the failed spend
		require.Equal(t, big.NewInt(100), actor.allowance(rt, alice, bob))
	})
}

func TestReschedule(t *testing.T) {
	governor := tutil.NewIDAddr(t, 200)

	setupAt := func(start abi.ChainEpoch) (*mock.Runtime, *tokenHarness) {
		rt, actor := setupTokenStarting(t, start)
		return rt, actor
	}

	t.Run("moves start and reserve freeze, exactly once", func(t *testing.T) {
		rt, actor := setupAt(1000)

		rt.SetCaller(governor, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		actor.expectGranted(rt, governor, builtin.MethodsToken.Reschedule)
		rt.ExpectSend(builtin.ExchangeActorAddr, builtin.MethodsExchange.Reschedule, &token.RescheduleParams{NewStart: 2000}, big.Zero(), nil, exitcode.Ok)
		rt.Call(actor.Reschedule, &token.RescheduleParams{NewStart: 2000})
		rt.Verify()

		var st token.State
		rt.GetState(&st)
		require.Equal(t, abi.ChainEpoch(2000), st.Schedule.Start)
		require.Equal(t, abi.ChainEpoch(2000+730*builtin.EpochsInDay), st.ReserveFreezeUntil)
		require.True(t, st.Rescheduled)

		// second change rejected
		rt.SetCaller(governor, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		actor.expectGranted(rt, governor, builtin.MethodsToken.Reschedule)
		rt.ExpectAbortContainsMessage(builtin.ErrBadState, "already changed", func() {
			rt.Call(actor.Reschedule, &token.RescheduleParams{NewStart: 3000})
		})
	})

	t.Run("fail once vesting began", func(t *testing.T) {
		rt, actor := setupAt(1000)
		rt.SetEpoch(1000)

		rt.SetCaller(governor, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		actor.expectGranted(rt, governor, builtin.MethodsToken.Reschedule)
		rt.ExpectAbortContainsMessage(builtin.ErrBadState, "already began", func() {
			rt.Call(actor.Reschedule, &token.RescheduleParams{NewStart: 2000})
		})
	})

	t.Run("fail when new start not in the future", func(t *testing.T) {
		rt, actor := setupAt(1000)
		rt.SetEpoch(500)

		rt.SetCaller(governor, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		actor.expectGranted(rt, governor, builtin.MethodsToken.Reschedule)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(actor.Reschedule, &token.RescheduleParams{NewStart: 500})
		})
	})
}

func TestWithdrawReserve(t *testing.T) {
	governor := tutil.NewIDAddr(t, 200)
	treasury := tutil.NewIDAddr(t, 300)

	t.Run("fail while reserve frozen", func(t *testing.T) {
		rt, actor := setupTokenWithCap(t, big.NewInt(2000))

		rt.SetCaller(governor, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		actor.expectGranted(rt, governor, builtin.MethodsToken.WithdrawReserve)
		rt.ExpectAbort(builtin.ErrReserveFrozen, func() {
			rt.Call(actor.WithdrawReserve, &token.WithdrawReserveParams{To: treasury})
		})
	})

	t.Run("mints remaining reserve after the freeze", func(t *testing.T) {
		rt, actor := setupTokenWithCap(t, big.NewInt(2000))
		alice := tutil.NewIDAddr(t, 100)
		actor.mintAsExchange(rt, alice, big.NewInt(500))

		rt.SetEpoch(abi.ChainEpoch(731 * builtin.EpochsInDay))
		rt.SetCaller(governor, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		actor.expectGranted(rt, governor, builtin.MethodsToken.WithdrawReserve)
		ret := rt.Call(actor.WithdrawReserve, &token.WithdrawReserveParams{To: treasury})
		rt.Verify()

		// cap 2000, vested supply 500 (window long over), reserve 1500
		withdrawn := ret.(*abi.TokenAmount)
		require.Equal(t, big.NewInt(1500), *withdrawn)

		var st token.State
		rt.GetState(&st)
		require.Equal(t, big.NewInt(2000), st.RawSupply)

		sum := actor.checkState(rt)
		require.Equal(t, big.NewInt(1500), sum.Credited[treasury])
	})
}

func TestViews(t *testing.T) {
	alice := tutil.NewIDAddr(t, 100)
	caller := tutil.NewIDAddr(t, 999)
	halfway := abi.ChainEpoch(91 * builtin.EpochsInDay)

	rt, actor := setupToken(t)
	actor.mintAsExchange(rt, alice, big.NewInt(1000))
	rt.SetEpoch(halfway)

	rt.SetCaller(caller, builtin.AccountActorCodeID)

	rt.ExpectValidateCallerAny()
	bal := rt.Call(actor.BalanceOf, &alice).(*abi.TokenAmount)
	require.Equal(t, big.NewInt(500), *bal)

	rt.ExpectValidateCallerAny()
	supply := rt.Call(actor.TotalSupply, abi.Empty).(*abi.TokenAmount)
	require.Equal(t, big.NewInt(500), *supply)

	rt.ExpectValidateCallerAny()
	raw := rt.Call(actor.RawTotalSupply, abi.Empty).(*abi.TokenAmount)
	require.Equal(t, big.NewInt(1000), *raw)

	rt.ExpectValidateCallerAny()
	countdown := rt.Call(actor.VestingCountdown, abi.Empty).(*token.VestingCountdownReturn)
	require.Equal(t, uint64(91), countdown.DaysSinceStart)
	require.Equal(t, uint64(91), countdown.DaysLeft)

	rt.ExpectValidateCallerAny()
	paused := rt.Call(actor.Paused, abi.Empty).(*builtin.BoolValue)
	require.False(t, paused.Bool)

	rt.Verify()
}

type tokenHarness struct {
	token.Actor
	t *testing.T
}

func setupToken(t *testing.T) (*mock.Runtime, *tokenHarness) {
	return setupTokenWithParams(t, &token.ConstructorParams{})
}

func setupTokenWithCap(t *testing.T, maxSupply abi.TokenAmount) (*mock.Runtime, *tokenHarness) {
	return setupTokenWithParams(t, &token.ConstructorParams{MaxSupply: maxSupply})
}

func setupTokenStarting(t *testing.T, start abi.ChainEpoch) (*mock.Runtime, *tokenHarness) {
	return setupTokenWithParams(t, &token.ConstructorParams{VestingStart: start})
}

func setupTokenWithParams(t *testing.T, params *token.ConstructorParams) (*mock.Runtime, *tokenHarness) {
	builder := mock.NewBuilder(context.Background(), builtin.TokenActorAddr).
		WithCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)
	rt := builder.Build(t)

	h := &tokenHarness{Actor: token.Actor{}, t: t}
	rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
	ret := rt.Call(h.Constructor, params)
	assert.Nil(t, ret)
	rt.Verify()
	return rt, h
}

func (h *tokenHarness) mintAsExchange(rt *mock.Runtime, to addr.Address, amount abi.TokenAmount) {
	rt.SetCaller(builtin.ExchangeActorAddr, builtin.ExchangeActorCodeID)
	rt.ExpectValidateCallerAny()
	rt.Call(h.Mint, &token.MintParams{To: to, Amount: amount})
	rt.Verify()
}

func (h *tokenHarness) approve(rt *mock.Runtime, owner, spender addr.Address, amount abi.TokenAmount) {
	rt.SetCaller(owner, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	rt.Call(h.Approve, &token.ApproveParams{Spender: spender, Amount: amount})
	rt.Verify()
}

func (h *tokenHarness) allowance(rt *mock.Runtime, owner, spender addr.Address) abi.TokenAmount {
	rt.ExpectValidateCallerAny()
	ret := rt.Call(h.Allowance, &token.AllowanceParams{Owner: owner, Spender: spender}).(*abi.TokenAmount)
	rt.Verify()
	return *ret
}

func (h *tokenHarness) pause(rt *mock.Runtime) {
	governor := tutil.NewIDAddr(h.t, 201)
	rt.SetCaller(governor, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	h.expectGranted(rt, governor, builtin.MethodsToken.Pause)
	rt.Call(h.Pause, abi.Empty)
	rt.Verify()
}

func (h *tokenHarness) resume(rt *mock.Runtime) {
	governor := tutil.NewIDAddr(h.t, 201)
	rt.SetCaller(governor, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	h.expectGranted(rt, governor, builtin.MethodsToken.Resume)
	rt.Call(h.Resume, abi.Empty)
	rt.Verify()
}

func (h *tokenHarness) expectGranted(rt *mock.Runtime, caller addr.Address, method abi.MethodNum) {
	rt.ExpectSend(builtin.GovernActorAddr, builtin.MethodsGovern.ValidateGranted,
		&builtin.ValidateGrantedParams{Caller: caller, Method: method},
		big.Zero(), nil, exitcode.Ok)
}

func (h *tokenHarness) checkState(rt *mock.Runtime) *token.StateSummary {
	var st token.State
	rt.GetState(&st)
	sum, acc := token.CheckStateInvariants(&st, adt.AsStore(rt), rt.CurrEpoch())
	require.True(h.t, acc.IsEmpty(), "%v", acc.Messages())
	return sum
}
