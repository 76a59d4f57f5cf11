package builtin

import (
	addr "github.com/filecoin-project/go-address"
)

// Addresses of singleton actors, instantiated at genesis.
var (
	SystemActorAddr   = mustMakeAddress(0)
	GovernActorAddr   = mustMakeAddress(2)
	TokenActorAddr    = mustMakeAddress(10)
	ExchangeActorAddr = mustMakeAddress(11)
	VenueActorAddr    = mustMakeAddress(12)
)

func mustMakeAddress(id uint64) addr.Address {
	address, err := addr.NewIDAddress(id)
	if err != nil {
		panic(err)
	}
	return address
}
