package builtin

import (
	"github.com/filecoin-project/go-state-types/exitcode"
)

// Exit codes shared by the vesta actors, beyond the common codes in
// go-state-types.
const (
	ErrPaused exitcode.ExitCode = exitcode.FirstActorSpecificExitCode + iota
	ErrBadState
	ErrSupplyCapExceeded
	ErrInsufficientAllowance
	ErrDeadlineExpired
	ErrSlippageExceeded
	ErrBaseFeeExceeded
	ErrReserveFrozen
	ErrDustOutput
)
