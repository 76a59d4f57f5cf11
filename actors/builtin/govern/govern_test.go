package govern_test

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/ipfs/go-cid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin"
	"github.com/vesta-protocol/go-vesta-actors/actors/builtin/govern"
	"github.com/vesta-protocol/go-vesta-actors/support/mock"
	tutil "github.com/vesta-protocol/go-vesta-actors/support/testing"
)

func TestExports(t *testing.T) {
	mock.CheckActorExports(t, govern.Actor{})
}

func TestConstruction(t *testing.T) {
	supervisor := tutil.NewIDAddr(t, 99)

	builder := mock.NewBuilder(context.Background(), builtin.GovernActorAddr).
		WithCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)

	t.Run("simple construction", func(t *testing.T) {
		rt := builder.Build(t)
		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		ret := rt.Call(govern.Actor{}.Constructor, &supervisor)
		assert.Nil(t, ret)
		rt.Verify()

		var st govern.State
		rt.GetState(&st)
		require.Equal(t, supervisor, st.Supervisor)
	})
}

func TestGrantAndValidate(t *testing.T) {
	supervisor := tutil.NewIDAddr(t, 99)
	governor := tutil.NewIDAddr(t, 100)

	setupFunc := func() (*mock.Runtime, *actorHarness) {
		builder := mock.NewBuilder(context.Background(), builtin.GovernActorAddr).
			WithActorType(governor, builtin.AccountActorCodeID)
		rt := builder.Build(t)

		actor := newHarness(t, supervisor)
		actor.constructAndVerify(rt)
		return rt, actor
	}

	t.Run("fail when caller not supervisor", func(t *testing.T) {
		rt, actor := setupFunc()
		stranger := tutil.NewIDAddr(t, 101)
		rt.SetCaller(stranger, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(supervisor)
		rt.ExpectAbort(exitcode.SysErrForbidden, func() {
			rt.Call(actor.Grant, &govern.GrantOrRevokeParams{
				Governor: governor,
				All:      true,
			})
		})
	})

	t.Run("fail when governor not a principal", func(t *testing.T) {
		rt, actor := setupFunc()
		rt.SetAddressActorType(governor, builtin.TokenActorCodeID)
		rt.SetCaller(supervisor, builtin.AccountActorCodeID)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "failed to check actor code", func() {
			rt.Call(actor.Grant, &govern.GrantOrRevokeParams{
				Governor: governor,
				All:      true,
			})
		})
	})

	t.Run("fail when method not governed", func(t *testing.T) {
		rt, actor := setupFunc()
		rt.SetCaller(supervisor, builtin.AccountActorCodeID)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "not found", func() {
			rt.Call(actor.Grant, &govern.GrantOrRevokeParams{
				Governor: governor,
				Authorities: []govern.Authority{{
					ActorCodeID: builtin.TokenActorCodeID,
					Methods:     []abi.MethodNum{builtin.MethodsToken.Transfer},
				}},
			})
		})
	})

	t.Run("granted method validates, ungranted aborts", func(t *testing.T) {
		rt, actor := setupFunc()
		actor.grant(rt, governor, builtin.TokenActorCodeID, builtin.MethodsToken.Pause)

		// the token actor asks on behalf of the governor
		actor.validateGranted(rt, governor, builtin.TokenActorCodeID, builtin.MethodsToken.Pause, exitcode.Ok)
		actor.validateGranted(rt, governor, builtin.TokenActorCodeID, builtin.MethodsToken.Mint, exitcode.ErrForbidden)

		// a different actor's methods were never granted
		actor.validateGranted(rt, governor, builtin.ExchangeActorCodeID, builtin.MethodsExchange.StopSwaps, exitcode.ErrForbidden)
	})

	t.Run("grant all then revoke one", func(t *testing.T) {
		rt, actor := setupFunc()
		rt.SetCaller(supervisor, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(supervisor)
		rt.Call(actor.Grant, &govern.GrantOrRevokeParams{Governor: governor, All: true})
		rt.Verify()

		actor.validateGranted(rt, governor, builtin.TokenActorCodeID, builtin.MethodsToken.Mint, exitcode.Ok)
		actor.validateGranted(rt, governor, builtin.ExchangeActorCodeID, builtin.MethodsExchange.StopSwaps, exitcode.Ok)

		rt.SetCaller(supervisor, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(supervisor)
		rt.Call(actor.Revoke, &govern.GrantOrRevokeParams{
			Governor: governor,
			Authorities: []govern.Authority{{
				ActorCodeID: builtin.TokenActorCodeID,
				Methods:     []abi.MethodNum{builtin.MethodsToken.Mint},
			}},
		})
		rt.Verify()

		actor.validateGranted(rt, governor, builtin.TokenActorCodeID, builtin.MethodsToken.Mint, exitcode.ErrForbidden)
		actor.validateGranted(rt, governor, builtin.TokenActorCodeID, builtin.MethodsToken.Pause, exitcode.Ok)
	})

	t.Run("revoke all clears the governor", func(t *testing.T) {
		rt, actor := setupFunc()
		actor.grant(rt, governor, builtin.TokenActorCodeID, builtin.MethodsToken.Pause)

		rt.SetCaller(supervisor, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(supervisor)
		rt.Call(actor.Revoke, &govern.GrantOrRevokeParams{Governor: governor, All: true})
		rt.Verify()

		actor.validateGranted(rt, governor, builtin.TokenActorCodeID, builtin.MethodsToken.Pause, exitcode.ErrForbidden)
	})
}

type actorHarness struct {
	govern.Actor
	t *testing.T

	supervisor address.Address
}

func newHarness(t *testing.T, supervisor address.Address) *actorHarness {
	return &actorHarness{
		Actor:      govern.Actor{},
		t:          t,
		supervisor: supervisor,
	}
}

func (h *actorHarness) constructAndVerify(rt *mock.Runtime) {
	rt.SetCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)
	rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
	ret := rt.Call(h.Actor.Constructor, &h.supervisor)
	assert.Nil(h.t, ret)
	rt.Verify()
}

func (h *actorHarness) grant(rt *mock.Runtime, governor address.Address, code cid.Cid, method abi.MethodNum) {
	rt.SetCaller(h.supervisor, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAddr(h.supervisor)
	rt.Call(h.Grant, &govern.GrantOrRevokeParams{
		Governor: governor,
		Authorities: []govern.Authority{{
			ActorCodeID: code,
			Methods:     []abi.MethodNum{method},
		}},
	})
	rt.Verify()
}

func (h *actorHarness) validateGranted(rt *mock.Runtime, governor address.Address, callerCode cid.Cid, method abi.MethodNum, want exitcode.ExitCode) {
	caller := tutil.NewIDAddr(h.t, 900)
	rt.SetCaller(caller, callerCode)
	rt.ExpectValidateCallerType(govern.GovernedCallerTypes...)

	params := &builtin.ValidateGrantedParams{Caller: governor, Method: method}
	if want.IsSuccess() {
		rt.Call(h.ValidateGranted, params)
		rt.Verify()
		return
	}
	rt.ExpectAbort(want, func() {
		rt.Call(h.ValidateGranted, params)
	})
}
