package token

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin"
)

// Schedule fixes the vesting window. All ratio math is a pure function of
// (now, Start, DurationDays), measured in whole elapsed days.
type Schedule struct {
	Start        abi.ChainEpoch
	DurationDays uint64
}

func (s Schedule) End() abi.ChainEpoch {
	return s.Start + abi.ChainEpoch(s.DurationDays)*builtin.EpochsInDay
}

// DaysSinceStart returns the number of whole days elapsed since the window
// opened, zero before it opens.
func (s Schedule) DaysSinceStart(now abi.ChainEpoch) uint64 {
	if now <= s.Start {
		return 0
	}
	return uint64((now - s.Start) / builtin.EpochsInDay)
}

// DaysLeft returns the number of whole days until the window closes, zero
// once it has closed.
func (s Schedule) DaysLeft(now abi.ChainEpoch) uint64 {
	if now >= s.End() {
		return 0
	}
	return s.DurationDays - s.DaysSinceStart(now)
}

// ConvertForward returns the portion of amount unlocked by now:
// floor(amount * daysSinceStart / durationDays), saturating at amount once
// the window has elapsed. Multiplication happens before division so no
// intermediate rounding is lost.
func (s Schedule) ConvertForward(amount abi.TokenAmount, now abi.ChainEpoch) abi.TokenAmount {
	days := s.DaysSinceStart(now)
	if days >= s.DurationDays {
		return amount
	}
	return big.Div(big.Mul(amount, big.NewInt(int64(days))), big.NewInt(int64(s.DurationDays)))
}

// ConvertReverse returns the vesting allocation a unit of swapped-in asset
// currently buys: floor(amount * daysLeft / durationDays), the full amount
// before the window opens, decaying to zero at its close.
func (s Schedule) ConvertReverse(amount abi.TokenAmount, now abi.ChainEpoch) abi.TokenAmount {
	if s.DaysSinceStart(now) == 0 {
		return amount
	}
	return big.Div(big.Mul(amount, big.NewInt(int64(s.DaysLeft(now)))), big.NewInt(int64(s.DurationDays)))
}
