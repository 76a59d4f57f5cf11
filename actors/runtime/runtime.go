package runtime

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/filecoin-project/go-state-types/rt"
	"github.com/ipfs/go-cid"
)

// Runtime is the execution environment presented to an actor method. Calls are
// strictly serial: each top-level invocation runs to completion before the next
// one observes any state, and an abort unwinds everything the call staged.
type Runtime interface {
	// The epoch at which the current invocation executes. This is the only
	// time input available to actor code; vesting math takes it explicitly.
	CurrEpoch() abi.ChainEpoch

	// The network base fee at the current epoch, checked by the exchange
	// actor against its configured fee ceiling.
	BaseFee() abi.TokenAmount

	// The address of the immediate calling actor.
	Caller() address.Address
	// The address of the actor receiving the call.
	Receiver() address.Address
	// The value attached to the current call.
	ValueReceived() abi.TokenAmount
	// The balance held by the receiving actor, including ValueReceived.
	CurrentBalance() abi.TokenAmount

	// Validates the immediate caller. Every method must validate its caller
	// exactly once.
	ValidateImmediateCallerAcceptAny()
	ValidateImmediateCallerIs(addrs ...address.Address)
	ValidateImmediateCallerType(types ...cid.Cid)

	// Resolves an address to a canonical ID address, if known.
	ResolveAddress(address.Address) (address.Address, bool)
	// The code CID of the actor at the given address, if any.
	GetActorCodeCID(address.Address) (cid.Cid, bool)

	// Sends a message to another actor. The send is itself atomic: a failure
	// propagated with RequireSuccess aborts the calling invocation too.
	Send(toAddr address.Address, methodNum abi.MethodNum, params cbor.Marshaler, value abi.TokenAmount, out cbor.Er) exitcode.ExitCode

	// Aborts the current invocation with the given exit code, discarding all
	// staged state changes.
	Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{})

	// Initializes the receiver's state object. May be called only once.
	StateCreate(obj cbor.Marshaler)
	// Loads the receiver's state for reading.
	StateReadonly(obj cbor.Unmarshaler)
	// Loads the receiver's state, calls f, and commits the mutated state
	// iff f returns without aborting. Sends are forbidden inside f, so an
	// external call can never observe a half-updated state.
	StateTransaction(obj cbor.Er, f func())

	// Direct access to the underlying IPLD store.
	StoreGet(c cid.Cid, o cbor.Unmarshaler) bool
	StorePut(x cbor.Marshaler) cid.Cid
}

type VMActor = rt.VMActor
