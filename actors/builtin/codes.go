package builtin

import (
	cid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

// The built-in actor code IDs. These are synthetic CIDs (raw codec, identity
// hash) naming the actor implementations.
var (
	SystemActorCodeID   cid.Cid
	AccountActorCodeID  cid.Cid
	MultisigActorCodeID cid.Cid
	GovernActorCodeID   cid.Cid
	TokenActorCodeID    cid.Cid
	ExchangeActorCodeID cid.Cid
	VenueActorCodeID    cid.Cid

	// CallerTypesSignable are the code IDs of actors able to originally sign
	// a message.
	CallerTypesSignable []cid.Cid
)

func init() {
	builder := cid.V1Builder{Codec: cid.Raw, MhType: mh.IDENTITY}
	makeBuiltin := func(s string) cid.Cid {
		c, err := builder.Sum([]byte(s))
		if err != nil {
			panic(err)
		}
		return c
	}

	SystemActorCodeID = makeBuiltin("vesta/1/system")
	AccountActorCodeID = makeBuiltin("vesta/1/account")
	MultisigActorCodeID = makeBuiltin("vesta/1/multisig")
	GovernActorCodeID = makeBuiltin("vesta/1/govern")
	TokenActorCodeID = makeBuiltin("vesta/1/token")
	ExchangeActorCodeID = makeBuiltin("vesta/1/exchange")
	VenueActorCodeID = makeBuiltin("vesta/1/venue")

	CallerTypesSignable = []cid.Cid{AccountActorCodeID, MultisigActorCodeID}
}

// IsPrincipal reports whether the given code belongs to an actor that may be
// granted administrative authority (i.e. one backed by keys).
func IsPrincipal(code cid.Cid) bool {
	for _, c := range CallerTypesSignable {
		if c.Equals(code) {
			return true
		}
	}
	return false
}
