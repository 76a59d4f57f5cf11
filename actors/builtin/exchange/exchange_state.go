package exchange

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/ipfs/go-cid"
	xerrors "golang.org/x/xerrors"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin/token"
	"github.com/vesta-protocol/go-vesta-actors/actors/util/adt"
)

// Settlement record kinds.
const (
	KindInboundForToken = uint64(1)
	KindTokenForInbound = uint64(2)
	KindViaVenue        = uint64(3)
	KindCustodyWithdraw = uint64(4)
)

type State struct {
	// Token ledger this engine settles against.
	Token address.Address
	// External price venue for oracled legs.
	Venue address.Address

	// When true, inbound swaps mint a vesting-discounted allocation and are
	// gated to the vesting window.
	DiscountInbound bool
	Schedule        token.Schedule

	Stopped bool
	// Zero means no deadline.
	Deadline abi.ChainEpoch
	// Zero means no limit.
	MaxBaseFee abi.TokenAmount

	// Counter-asset held pending swaps.
	CustodyBalance abi.TokenAmount

	Journal cid.Cid // Array, AMT[]SettlementRecord
}

// SettlementRecord captures one completed settlement for external observers.
type SettlementRecord struct {
	Kind      uint64
	Party     address.Address
	AmountIn  abi.TokenAmount
	AmountOut abi.TokenAmount
	Epoch     abi.ChainEpoch
}

func ConstructState(store adt.Store, tokenAddr, venueAddr address.Address, schedule token.Schedule,
	discountInbound bool, deadline abi.ChainEpoch, maxBaseFee abi.TokenAmount) (*State, error) {

	emptyJournalCid, err := adt.StoreEmptyArray(store)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty array: %w", err)
	}

	return &State{
		Token:           tokenAddr,
		Venue:           venueAddr,
		DiscountInbound: discountInbound,
		Schedule:        schedule,
		Deadline:        deadline,
		MaxBaseFee:      maxBaseFee,
		CustodyBalance:  abi.NewTokenAmount(0),
		Journal:         emptyJournalCid,
	}, nil
}

// AppendRecord adds a settlement record to the journal.
func (st *State) AppendRecord(store adt.Store, rec *SettlementRecord) error {
	journal, err := adt.AsArray(store, st.Journal)
	if err != nil {
		return xerrors.Errorf("failed to load journal: %w", err)
	}

	if err := journal.AppendContinuous(rec); err != nil {
		return xerrors.Errorf("failed to append record: %w", err)
	}

	if st.Journal, err = journal.Root(); err != nil {
		return xerrors.Errorf("failed to flush journal: %w", err)
	}
	return nil
}

func (st *State) RecordCount(store adt.Store) (uint64, error) {
	journal, err := adt.AsArray(store, st.Journal)
	if err != nil {
		return 0, xerrors.Errorf("failed to load journal: %w", err)
	}
	return journal.Length(), nil
}
