package token_test

import (
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/require"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin"
	"github.com/vesta-protocol/go-vesta-actors/actors/builtin/token"
)

func TestScheduleDays(t *testing.T) {
	s := token.Schedule{Start: 1000, DurationDays: 182}

	require.Equal(t, abi.ChainEpoch(1000+182*builtin.EpochsInDay), s.End())

	t.Run("before start", func(t *testing.T) {
		require.Equal(t, uint64(0), s.DaysSinceStart(0))
		require.Equal(t, uint64(0), s.DaysSinceStart(999))
		require.Equal(t, uint64(182), s.DaysLeft(0))
	})

	t.Run("at start", func(t *testing.T) {
		require.Equal(t, uint64(0), s.DaysSinceStart(1000))
		require.Equal(t, uint64(182), s.DaysLeft(1000))
	})

	t.Run("whole day boundaries", func(t *testing.T) {
		// one epoch short of a whole day
		require.Equal(t, uint64(0), s.DaysSinceStart(1000+builtin.EpochsInDay-1))
		require.Equal(t, uint64(1), s.DaysSinceStart(1000+builtin.EpochsInDay))
		require.Equal(t, uint64(181), s.DaysLeft(1000+builtin.EpochsInDay))

		require.Equal(t, uint64(90), s.DaysSinceStart(1000+90*builtin.EpochsInDay))
		require.Equal(t, uint64(92), s.DaysLeft(1000+90*builtin.EpochsInDay))
	})

	t.Run("at and after end", func(t *testing.T) {
		require.Equal(t, uint64(182), s.DaysSinceStart(s.End()))
		require.Equal(t, uint64(0), s.DaysLeft(s.End()))
		require.Equal(t, uint64(0), s.DaysLeft(s.End()+1e6))
	})
}

func TestConvertForward(t *testing.T) {
	s := token.Schedule{Start: 0, DurationDays: 182}
	amount := big.NewInt(182)

	t.Run("nothing unlocked on day zero", func(t *testing.T) {
		require.Equal(t, big.Zero(), s.ConvertForward(amount, 0))
		require.Equal(t, big.Zero(), s.ConvertForward(amount, builtin.EpochsInDay-1))
	})

	t.Run("linear through the window", func(t *testing.T) {
		require.Equal(t, big.NewInt(1), s.ConvertForward(amount, builtin.EpochsInDay))
		require.Equal(t, big.NewInt(91), s.ConvertForward(amount, 91*builtin.EpochsInDay))
		require.Equal(t, big.NewInt(181), s.ConvertForward(amount, 181*builtin.EpochsInDay))
	})

	t.Run("truncates toward zero", func(t *testing.T) {
		// floor(1000 * 91 / 182) = 500
		require.Equal(t, big.NewInt(500), s.ConvertForward(big.NewInt(1000), 91*builtin.EpochsInDay))
		// floor(1001 * 91 / 182) = 500, remainder discarded
		require.Equal(t, big.NewInt(500), s.ConvertForward(big.NewInt(1001), 91*builtin.EpochsInDay))
	})

	t.Run("saturates at the full amount", func(t *testing.T) {
		require.Equal(t, amount, s.ConvertForward(amount, 182*builtin.EpochsInDay))
		require.Equal(t, amount, s.ConvertForward(amount, 99182*builtin.EpochsInDay))
	})

	t.Run("monotonic in time", func(t *testing.T) {
		prev := big.Zero()
		for d := uint64(0); d <= 182; d++ {
			cur := s.ConvertForward(big.NewInt(1e6), abi.ChainEpoch(d)*builtin.EpochsInDay)
			require.True(t, cur.GreaterThanEqual(prev), "day %d: %v < %v", d, cur, prev)
			prev = cur
		}
		require.Equal(t, big.NewInt(1e6), prev)
	})
}

func TestConvertReverse(t *testing.T) {
	s := token.Schedule{Start: 0, DurationDays: 182}
	amount := big.NewInt(182)

	t.Run("full amount before any day elapses", func(t *testing.T) {
		require.Equal(t, amount, s.ConvertReverse(amount, 0))
		require.Equal(t, amount, s.ConvertReverse(amount, builtin.EpochsInDay-1))
	})

	t.Run("decays through the window", func(t *testing.T) {
		require.Equal(t, big.NewInt(181), s.ConvertReverse(amount, builtin.EpochsInDay))
		require.Equal(t, big.NewInt(91), s.ConvertReverse(amount, 91*builtin.EpochsInDay))
		require.Equal(t, big.NewInt(1), s.ConvertReverse(amount, 181*builtin.EpochsInDay))
	})

	t.Run("zero at and after the end", func(t *testing.T) {
		require.Equal(t, big.Zero(), s.ConvertReverse(amount, s.End()))
		require.Equal(t, big.Zero(), s.ConvertReverse(amount, s.End()+1e6))
	})
}

func TestConvertRoundTripNeverGains(t *testing.T) {
	s := token.Schedule{Start: 0, DurationDays: 182}
	for d := uint64(0); d <= 182; d++ {
		now := abi.ChainEpoch(d) * builtin.EpochsInDay
		minted := s.ConvertReverse(big.NewInt(1e6), now)
		unlocked := s.ConvertForward(minted, now)
		require.True(t, unlocked.LessThanEqual(minted), "day %d: unlocked %v exceeds minted %v", d, unlocked, minted)
	}
}
