package exchange

import (
	"github.com/filecoin-project/go-state-types/big"
)

// PARAM_SPEC
// Smallest settlement output accepted; computed outputs below this are
// rejected as dust rather than rounded to zero. The token has no
// sub-unit, so one base unit is already the smallest vesting increment
// a schedule can release; deployments with finer denominations should
// raise this toward one unit per vesting day.
var MinSwapOutput = big.NewInt(1)
