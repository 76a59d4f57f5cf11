package exchange

import (
	"github.com/filecoin-project/go-state-types/big"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin"
	"github.com/vesta-protocol/go-vesta-actors/actors/util/adt"
)

type StateSummary struct {
	CustodyBalance big.Int
	RecordCount    uint64

	InboundVolume  big.Int
	OutboundVolume big.Int
}

func CheckStateInvariants(st *State, store adt.Store) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}
	sum := &StateSummary{
		CustodyBalance: st.CustodyBalance,
		InboundVolume:  big.Zero(),
		OutboundVolume: big.Zero(),
	}

	acc.Require(st.CustodyBalance.GreaterThanEqual(big.Zero()), "negative custody balance %v", st.CustodyBalance)
	acc.Require(st.Schedule.DurationDays > 0, "zero vesting duration")

	journal, err := adt.AsArray(store, st.Journal)
	if err != nil {
		acc.Addf("error loading journal: %v", err)
		return sum, acc
	}
	sum.RecordCount = journal.Length()

	var rec SettlementRecord
	err = journal.ForEach(&rec, func(i int64) error {
		acc.Require(rec.Kind >= KindInboundForToken && rec.Kind <= KindCustodyWithdraw, "record %d has unknown kind %d", i, rec.Kind)
		acc.Require(rec.AmountIn.GreaterThan(big.Zero()), "record %d has non-positive input %v", i, rec.AmountIn)
		acc.Require(rec.AmountOut.GreaterThanEqual(big.Zero()), "record %d has negative output %v", i, rec.AmountOut)

		switch rec.Kind {
		case KindInboundForToken:
			sum.InboundVolume = big.Add(sum.InboundVolume, rec.AmountIn)
		case KindTokenForInbound, KindCustodyWithdraw:
			sum.OutboundVolume = big.Add(sum.OutboundVolume, rec.AmountOut)
		}
		return nil
	})
	acc.RequireNoError(err, "error iterating journal")

	// Custody equals inbound minus released plus withdrawn, all journaled.
	expected := big.Sub(sum.InboundVolume, sum.OutboundVolume)
	acc.Require(st.CustodyBalance.Equals(expected), "custody balance %v does not match journal net %v", st.CustodyBalance, expected)

	return sum, acc
}
