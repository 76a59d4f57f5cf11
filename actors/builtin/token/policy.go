package token

import (
	"github.com/filecoin-project/go-state-types/big"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin"
)

// PARAM_SPEC
// The length of the vesting window, in whole days.
const DefaultVestingDurationDays = uint64(182)

// PARAM_SPEC
// Offset from vesting start after which the unvested reserve may be withdrawn.
const ReserveFreezeOffsetDays = uint64(730)

// PARAM_SPEC
// Hard cap on the raw total supply.
var DefaultMaxSupply = big.Mul(big.NewInt(100_000_000), builtin.TokenPrecision)
