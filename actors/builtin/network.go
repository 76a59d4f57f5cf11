package builtin

import (
	"github.com/filecoin-project/go-state-types/big"
)

// PARAM_SPEC
const EpochDurationSeconds = 30
const SecondsInHour = 60 * 60
const SecondsInDay = 24 * SecondsInHour
const EpochsInHour = SecondsInHour / EpochDurationSeconds
const EpochsInDay = SecondsInDay / EpochDurationSeconds

// The smallest schedulable unit of token, as a fraction of a whole token.
var TokenPrecision = big.NewInt(1_000_000_000_000_000_000)

// Default bitwidth for all HAMTs.
const DefaultHamtBitwidth = 5
