package govern

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/ipfs/go-cid"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin"
)

// Governed methods of each actor code
var GovernedActors = map[cid.Cid]map[abi.MethodNum]struct{}{
	builtin.TokenActorCodeID: {
		builtin.MethodsToken.Mint:            struct{}{},
		builtin.MethodsToken.BurnFrom:        struct{}{},
		builtin.MethodsToken.Pause:           struct{}{},
		builtin.MethodsToken.Resume:          struct{}{},
		builtin.MethodsToken.Reschedule:      struct{}{},
		builtin.MethodsToken.WithdrawReserve: struct{}{},
	},
	builtin.ExchangeActorCodeID: {
		builtin.MethodsExchange.StopSwaps:         struct{}{},
		builtin.MethodsExchange.StartSwaps:        struct{}{},
		builtin.MethodsExchange.WithdrawCustodied: struct{}{},
		builtin.MethodsExchange.SetMaxBaseFee:     struct{}{},
		builtin.MethodsExchange.ChangeDeadline:    struct{}{},
	},
}

var GovernedCallerTypes = func() []cid.Cid {
	ret := make([]cid.Cid, 0, len(GovernedActors))
	for code := range GovernedActors {
		ret = append(ret, code)
	}
	return ret
}()
