package mock

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	cid "github.com/ipfs/go-cid"
	ipldcbor "github.com/ipfs/go-ipld-cbor"
	"github.com/stretchr/testify/require"

	"github.com/vesta-protocol/go-vesta-actors/actors/runtime"
	"github.com/vesta-protocol/go-vesta-actors/actors/util/adt"
	"github.com/vesta-protocol/go-vesta-actors/support/ipld"
)

// A mock runtime for unit testing of actors in isolation.
// The mock allows direct specification of the runtime context as observable by an actor, supports
// the storage interface, and mocks out side-effect-inducing calls.
type Runtime struct {
	// Execution context
	ctx           context.Context
	epoch         abi.ChainEpoch
	baseFee       abi.TokenAmount
	receiver      addr.Address
	caller        addr.Address
	callerType    cid.Cid
	valueReceived abi.TokenAmount
	actorCodeCIDs map[addr.Address]cid.Cid
	idAddresses   map[addr.Address]addr.Address

	// Actor state
	state   cid.Cid
	balance abi.TokenAmount

	// VM implementation
	inTransaction bool
	store         ipldcbor.IpldStore

	// Expectations
	t                        testing.TB
	expectValidateCallerAny  bool
	expectValidateCallerAddr []addr.Address
	expectValidateCallerType []cid.Cid
	expectSends              []*expectedMessage
}

var _ runtime.Runtime = &Runtime{}

type expectedMessage struct {
	// expectedMessage values
	to     addr.Address
	method abi.MethodNum
	params cbor.Marshaler
	value  abi.TokenAmount

	// returns from applying expectedMessage
	sendReturn cbor.Marshaler
	exitCode   exitcode.ExitCode
}

func (m *expectedMessage) String() string {
	return fmt.Sprintf("to: %v method: %v value: %v params: %v sendReturn: %v exitCode: %v", m.to, m.method, m.value, m.params, m.sendReturn, m.exitCode)
}

type abort struct {
	code exitcode.ExitCode
	msg  string
}

func (a abort) String() string {
	return fmt.Sprintf("abort(%v): %s", a.code, a.msg)
}

func newInMemoryIpldStore() ipldcbor.IpldStore {
	return ipldcbor.NewCborStore(ipld.NewSyncBlockStoreInMemory())
}

///// Implementation of the runtime API /////

func (rt *Runtime) CurrEpoch() abi.ChainEpoch {
	return rt.epoch
}

func (rt *Runtime) BaseFee() abi.TokenAmount {
	return rt.baseFee
}

func (rt *Runtime) Caller() addr.Address {
	return rt.caller
}

func (rt *Runtime) Receiver() addr.Address {
	return rt.receiver
}

func (rt *Runtime) ValueReceived() abi.TokenAmount {
	return rt.valueReceived
}

func (rt *Runtime) CurrentBalance() abi.TokenAmount {
	return rt.balance
}

func (rt *Runtime) ValidateImmediateCallerAcceptAny() {
	rt.requireExpectation(rt.expectValidateCallerAny, "unexpected validate-caller-any")
	rt.expectValidateCallerAny = false
}

func (rt *Runtime) ValidateImmediateCallerIs(addrs ...addr.Address) {
	rt.checkArgument(len(addrs) > 0, "addrs must be non-empty")
	// Check and clear expectations.
	rt.requireExpectation(rt.expectValidateCallerAddr != nil, "unexpected validate caller addrs")
	require.Equal(rt.t, rt.expectValidateCallerAddr, addrs, "unexpected validate caller addrs")
	defer func() {
		rt.expectValidateCallerAddr = nil
	}()

	// Implement method.
	for _, expected := range addrs {
		if rt.caller == expected {
			return
		}
	}
	rt.Abortf(exitcode.SysErrForbidden, "caller address %v forbidden, allowed: %v", rt.caller, addrs)
}

func (rt *Runtime) ValidateImmediateCallerType(types ...cid.Cid) {
	rt.checkArgument(len(types) > 0, "types must be non-empty")

	// Check and clear expectations.
	rt.requireExpectation(rt.expectValidateCallerType != nil, "unexpected validate caller code")
	require.Equal(rt.t, rt.expectValidateCallerType, types, "unexpected validate caller code")
	defer func() {
		rt.expectValidateCallerType = nil
	}()

	// Implement method.
	for _, expected := range types {
		if rt.callerType.Equals(expected) {
			return
		}
	}
	rt.Abortf(exitcode.SysErrForbidden, "caller type %v forbidden, allowed: %v", rt.callerType, types)
}

func (rt *Runtime) ResolveAddress(address addr.Address) (addr.Address, bool) {
	if address.Protocol() == addr.ID {
		return address, true
	}
	resolved, ok := rt.idAddresses[address]
	return resolved, ok
}

func (rt *Runtime) GetActorCodeCID(address addr.Address) (cid.Cid, bool) {
	code, found := rt.actorCodeCIDs[address]
	return code, found
}

func (rt *Runtime) Send(toAddr addr.Address, methodNum abi.MethodNum, params cbor.Marshaler, value abi.TokenAmount, out cbor.Er) exitcode.ExitCode {
	rt.t.Helper()
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "side-effect within transaction")
	}
	if len(rt.expectSends) == 0 {
		rt.failTest("unexpected send to: %v method: %v, value: %v, params: %v", toAddr, methodNum, value, params)
	}
	exp := rt.expectSends[0]

	if exp.to != toAddr || exp.method != methodNum || !paramsEqual(exp.params, params) || !value.Equals(exp.value) {
		rt.failTest("expected send\n"+
			"          to: %v method: %v value: %v params: %v\n"+
			"actual send\n"+
			"          to: %v method: %v value: %v params: %v",
			exp.to, exp.method, exp.value, exp.params,
			toAddr, methodNum, value, params)
	}

	if value.GreaterThan(rt.balance) {
		rt.Abortf(exitcode.SysErrSenderStateInvalid, "cannot send value %v exceeding balance %v", value, rt.balance)
	}

	// Pop the expectation and modify the mocked state.
	defer func() {
		rt.expectSends = rt.expectSends[1:]
		rt.balance = big.Sub(rt.balance, value)
	}()

	// Copy the expected return into the output parameter.
	if exp.sendReturn != nil {
		var buf bytes.Buffer
		err := exp.sendReturn.MarshalCBOR(&buf)
		require.NoError(rt.t, err, "failed to marshal expected send return")
		err = out.UnmarshalCBOR(&buf)
		require.NoError(rt.t, err, "failed to unmarshal send return into output parameter")
	}
	return exp.exitCode
}

func (rt *Runtime) Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	rt.t.Logf("mock runtime abort, exitcode: %v, msg: %v", errExitCode, fmt.Sprintf(msg, args...))
	panic(abort{errExitCode, fmt.Sprintf(msg, args...)})
}

func (rt *Runtime) StateCreate(obj cbor.Marshaler) {
	if rt.state.Defined() {
		rt.Abortf(exitcode.SysErrorIllegalActor, "state already constructed")
	}
	rt.state = rt.StorePut(obj)
}

func (rt *Runtime) StateReadonly(obj cbor.Unmarshaler) {
	found := rt.StoreGet(rt.state, obj)
	if !found {
		panic(fmt.Sprintf("actor state not found: %v", rt.state))
	}
}

func (rt *Runtime) StateTransaction(obj cbor.Er, f func()) {
	if obj == nil {
		rt.Abortf(exitcode.SysErrorIllegalActor, "nil state in transaction")
	}
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "nested transaction")
	}
	rt.StateReadonly(obj)
	rt.inTransaction = true
	defer func() {
		rt.inTransaction = false
	}()
	f()
	rt.state = rt.StorePut(obj)
}

func (rt *Runtime) StoreGet(c cid.Cid, o cbor.Unmarshaler) bool {
	err := rt.store.Get(rt.ctx, c, o)
	return err == nil
}

func (rt *Runtime) StorePut(x cbor.Marshaler) cid.Cid {
	c, err := rt.store.Put(rt.ctx, x)
	if err != nil {
		panic(err)
	}
	return c
}

///// Mocking facilities /////

// Sets the current chain epoch.
func (rt *Runtime) SetEpoch(epoch abi.ChainEpoch) {
	rt.epoch = epoch
}

func (rt *Runtime) SetBaseFee(baseFee abi.TokenAmount) {
	rt.baseFee = baseFee
}

func (rt *Runtime) SetCaller(address addr.Address, actorType cid.Cid) {
	rt.caller = address
	rt.callerType = actorType
	rt.actorCodeCIDs[address] = actorType
}

func (rt *Runtime) SetAddressActorType(address addr.Address, actorType cid.Cid) {
	rt.actorCodeCIDs[address] = actorType
}

func (rt *Runtime) AddIDAddress(src addr.Address, target addr.Address) {
	rt.require(target.Protocol() == addr.ID, "target must use ID address protocol")
	rt.idAddresses[src] = target
}

func (rt *Runtime) SetReceived(amt abi.TokenAmount) {
	rt.valueReceived = amt
}

func (rt *Runtime) SetBalance(amt abi.TokenAmount) {
	rt.balance = amt
}

func (rt *Runtime) Balance() abi.TokenAmount {
	return rt.balance
}

// Installs the actor's state object, bypassing the constructor.
func (rt *Runtime) ReplaceState(obj cbor.Marshaler) {
	rt.state = rt.StorePut(obj)
}

func (rt *Runtime) StateRoot() cid.Cid {
	return rt.state
}

func (rt *Runtime) GetState(o cbor.Unmarshaler) {
	found := rt.StoreGet(rt.state, o)
	if !found {
		rt.t.Fatalf("can't find state at root %v", rt.state)
	}
}

func (rt *Runtime) AdtStore() adt.Store {
	return adt.WrapStore(rt.ctx, rt.store)
}

func (rt *Runtime) ExpectValidateCallerAny() {
	rt.expectValidateCallerAny = true
}

func (rt *Runtime) ExpectValidateCallerAddr(addrs ...addr.Address) {
	rt.require(len(addrs) > 0, "addrs must be non-empty")
	rt.expectValidateCallerAddr = addrs[:]
}

func (rt *Runtime) ExpectValidateCallerType(types ...cid.Cid) {
	rt.require(len(types) > 0, "types must be non-empty")
	rt.expectValidateCallerType = types[:]
}

func (rt *Runtime) ExpectSend(toAddr addr.Address, methodNum abi.MethodNum, params cbor.Marshaler, value abi.TokenAmount, ret cbor.Marshaler, exitCode exitcode.ExitCode) {
	rt.expectSends = append(rt.expectSends, &expectedMessage{
		to:         toAddr,
		method:     methodNum,
		params:     params,
		value:      value,
		sendReturn: ret,
		exitCode:   exitCode,
	})
}

// Calls f() expecting it to invoke Runtime.Abortf() with a specified exit code.
func (rt *Runtime) ExpectAbort(expected exitcode.ExitCode, f func()) {
	rt.t.Helper()
	rt.expectAbort(expected, "", f)
}

// Calls f() expecting it to invoke Runtime.Abortf() with a specified exit code
// and message to contain a specified substring.
func (rt *Runtime) ExpectAbortContainsMessage(expected exitcode.ExitCode, substr string, f func()) {
	rt.t.Helper()
	rt.expectAbort(expected, substr, f)
}

func (rt *Runtime) expectAbort(expected exitcode.ExitCode, substr string, f func()) {
	rt.t.Helper()
	prevState := rt.state

	defer func() {
		rt.t.Helper()
		r := recover()
		if r == nil {
			rt.failTest("expected abort with code %v but none occurred", expected)
			return
		}
		a, ok := r.(abort)
		if !ok {
			panic(r)
		}
		if a.code != expected {
			rt.failTest("abort expected code %v, actual %v %s", expected, a.code, a.msg)
		}
		if substr != "" && !strings.Contains(a.msg, substr) {
			rt.failTest("abort expected message\n'%s'\nto contain\n'%s'\n", a.msg, substr)
		}
		// Roll back state change.
		rt.state = prevState
	}()
	f()
}

// Invokes a method on the actor and returns its result, verifying the actor
// validated its caller.
func (rt *Runtime) Call(method interface{}, params interface{}) interface{} {
	meth := reflect.ValueOf(method)
	rt.verifyExportedMethodType(meth)

	var arg reflect.Value
	if params != nil {
		arg = reflect.ValueOf(params)
	} else {
		arg = reflect.Zero(meth.Type().In(1))
	}

	// There's no panic recovery here. If an abort is expected, this call will be inside an
	// ExpectAbort block. If not expected, the panic will escape and cause the test to fail.

	ret := meth.Call([]reflect.Value{reflect.ValueOf(rt), arg})
	return ret[0].Interface()
}

// Verifies that expected calls were received, and resets all expectations.
func (rt *Runtime) Verify() {
	rt.t.Helper()
	if rt.expectValidateCallerAny {
		rt.failTest("expected ValidateCallerAny, not received")
	}
	if len(rt.expectValidateCallerAddr) > 0 {
		rt.failTest("expected ValidateCallerAddr %v, not received", rt.expectValidateCallerAddr)
	}
	if len(rt.expectValidateCallerType) > 0 {
		rt.failTest("expected ValidateCallerType %v, not received", rt.expectValidateCallerType)
	}
	if len(rt.expectSends) > 0 {
		rt.failTest("expected all message to be send, unsent messages %v", rt.expectSends)
	}

	rt.Reset()
}

// Resets expectations without checking them.
func (rt *Runtime) Reset() {
	rt.expectValidateCallerAny = false
	rt.expectValidateCallerAddr = nil
	rt.expectValidateCallerType = nil
	rt.expectSends = nil
}

func (rt *Runtime) verifyExportedMethodType(meth reflect.Value) {
	rt.t.Helper()
	t := meth.Type()
	rt.require(t.Kind() == reflect.Func, "%v is not a function", meth)
	rt.require(t.NumIn() == 2, "exported method %v must have two parameters, got %v", meth, t.NumIn())
	rt.require(t.In(0) == runtimeType, "exported method first parameter must be runtime, got %v", t.In(0))
	rt.require(t.In(1).Kind() == reflect.Ptr, "exported method second parameter must be pointer to params, got %v", t.In(1))
	rt.require(t.In(1).Implements(cborUnmarshalerType), "exported method second parameter must implement CBOR unmarshal, got %v", t.In(1))
	rt.require(t.NumOut() == 1, "exported method must return a single value")
	rt.require(t.Out(0).Implements(cborMarshalerType), "exported method must return a CBOR marshalable value")
}

func (rt *Runtime) requireExpectation(cond bool, msg string, args ...interface{}) {
	if cond {
		return
	}
	rt.failTest(msg, args...)
}

func (rt *Runtime) require(predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.t.Fatalf(msg, args...)
	}
}

func (rt *Runtime) checkArgument(predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.t.Fatalf(msg, args...)
	}
}

func (rt *Runtime) failTest(msg string, args ...interface{}) {
	rt.t.Helper()
	rt.t.Errorf(msg, args...)
	rt.t.FailNow()
}

func paramsEqual(a, b cbor.Marshaler) bool {
	if a == nil || b == nil {
		return a == b
	}
	var abuf, bbuf bytes.Buffer
	if err := a.MarshalCBOR(&abuf); err != nil {
		return false
	}
	if err := b.MarshalCBOR(&bbuf); err != nil {
		return false
	}
	return bytes.Equal(abuf.Bytes(), bbuf.Bytes())
}

var (
	runtimeType         = reflect.TypeOf((*runtime.Runtime)(nil)).Elem()
	cborMarshalerType   = reflect.TypeOf((*cbor.Marshaler)(nil)).Elem()
	cborUnmarshalerType = reflect.TypeOf((*cbor.Unmarshaler)(nil)).Elem()
)

// Checks that all exported methods are correctly typed, and that the exports
// slice is indexed by method number.
func CheckActorExports(t *testing.T, act interface{ Exports() []interface{} }) {
	for i, m := range act.Exports() {
		if i == 0 { // Send is implicit
			continue
		}
		if m == nil {
			continue
		}

		t.Run(fmt.Sprintf("method%d-type", i), func(t *testing.T) {
			mt := reflect.TypeOf(m)
			require.Equal(t, reflect.Func, mt.Kind())
			require.Equal(t, 2, mt.NumIn())
			require.Equal(t, runtimeType, mt.In(0))
			require.Equal(t, reflect.Ptr, mt.In(1).Kind())
			require.True(t, mt.In(1).Implements(cborUnmarshalerType))
			require.Equal(t, 1, mt.NumOut())
			require.True(t, mt.Out(0).Implements(cborMarshalerType))
		})
	}
}
