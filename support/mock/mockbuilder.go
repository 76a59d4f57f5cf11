package mock

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"
)

// Build for fluent initialization of a mock runtime.
type RuntimeBuilder struct {
	ctx           context.Context
	epoch         abi.ChainEpoch
	baseFee       abi.TokenAmount
	receiver      addr.Address
	caller        addr.Address
	callerType    cid.Cid
	valueReceived abi.TokenAmount
	balance       abi.TokenAmount
	actorCodeCIDs map[addr.Address]cid.Cid
	idAddresses   map[addr.Address]addr.Address
}

// Initializes a new builder with a receiving actor address.
func NewBuilder(ctx context.Context, receiver addr.Address) *RuntimeBuilder {
	return &RuntimeBuilder{
		ctx:           ctx,
		epoch:         0,
		baseFee:       big.Zero(),
		receiver:      receiver,
		caller:        addr.Undef,
		callerType:    cid.Undef,
		valueReceived: big.Zero(),
		balance:       big.Zero(),
		actorCodeCIDs: make(map[addr.Address]cid.Cid),
		idAddresses:   make(map[addr.Address]addr.Address),
	}
}

// Builds a new runtime object with the configured values.
func (b *RuntimeBuilder) Build(t testing.TB) *Runtime {
	m := &Runtime{
		ctx:           b.ctx,
		epoch:         b.epoch,
		baseFee:       b.baseFee,
		receiver:      b.receiver,
		caller:        b.caller,
		callerType:    b.callerType,
		valueReceived: b.valueReceived,
		balance:       b.balance,
		actorCodeCIDs: make(map[addr.Address]cid.Cid),
		idAddresses:   make(map[addr.Address]addr.Address),
		state:         cid.Undef,
		t:             t,
	}
	for a, c := range b.actorCodeCIDs {
		m.actorCodeCIDs[a] = c
	}
	for a, c := range b.idAddresses {
		m.idAddresses[a] = c
	}
	m.store = newInMemoryIpldStore()
	return m
}

func (b *RuntimeBuilder) WithEpoch(epoch abi.ChainEpoch) *RuntimeBuilder {
	b.epoch = epoch
	return b
}

func (b *RuntimeBuilder) WithBaseFee(baseFee abi.TokenAmount) *RuntimeBuilder {
	b.baseFee = baseFee
	return b
}

func (b *RuntimeBuilder) WithCaller(address addr.Address, code cid.Cid) *RuntimeBuilder {
	b.caller = address
	b.callerType = code
	b.actorCodeCIDs[address] = code
	return b
}

func (b *RuntimeBuilder) WithBalance(balance, received abi.TokenAmount) *RuntimeBuilder {
	b.balance = balance
	b.valueReceived = received
	return b
}

func (b *RuntimeBuilder) WithActorType(address addr.Address, code cid.Cid) *RuntimeBuilder {
	b.actorCodeCIDs[address] = code
	return b
}
