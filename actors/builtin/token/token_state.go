package token

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
	xerrors "golang.org/x/xerrors"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin"
	"github.com/vesta-protocol/go-vesta-actors/actors/util/adt"
)

type State struct {
	Accounts   cid.Cid // Map, HAMT[Address]AccountState
	Allowances cid.Cid // Map, HAMT[owner]Cid of Map, HAMT[spender]TokenAmount

	// Sum of all amounts ever minted minus all amounts ever burned. This is
	// the quantity checked against MaxSupply, not the vesting-ratio view.
	RawSupply abi.TokenAmount
	MaxSupply abi.TokenAmount

	Schedule           Schedule
	ReserveFreezeUntil abi.ChainEpoch
	Rescheduled        bool

	TransfersStopped bool
}

type AccountState struct {
	VestingCredited abi.TokenAmount // written only by mint, never decreases
	VestingSpent    abi.TokenAmount // never decreases
	FreeBalance     abi.TokenAmount
}

// UnspentVested returns the vested-to-date portion of the account's
// allocation not yet consumed. Negative indicates corrupted state.
func (a *AccountState) UnspentVested(s Schedule, now abi.ChainEpoch) abi.TokenAmount {
	return big.Sub(s.ConvertForward(a.VestingCredited, now), a.VestingSpent)
}

func ConstructState(store adt.Store, maxSupply abi.TokenAmount, schedule Schedule) (*State, error) {
	emptyAccountsCid, err := adt.StoreEmptyMap(store, builtin.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty map: %w", err)
	}

	emptyAllowancesCid, err := adt.StoreEmptyMap(store, builtin.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty map: %w", err)
	}

	return &State{
		Accounts:           emptyAccountsCid,
		Allowances:         emptyAllowancesCid,
		RawSupply:          abi.NewTokenAmount(0),
		MaxSupply:          maxSupply,
		Schedule:           schedule,
		ReserveFreezeUntil: schedule.Start + abi.ChainEpoch(ReserveFreezeOffsetDays)*builtin.EpochsInDay,
	}, nil
}

// Mint credits amount of vesting allocation to the account, enforcing the
// supply cap against the raw total supply.
func (st *State) Mint(store adt.Store, to address.Address, amount abi.TokenAmount) (exitcode.ExitCode, error) {
	if amount.LessThanEqual(big.Zero()) {
		return exitcode.ErrIllegalArgument, xerrors.Errorf("non-positive amount %v to mint", amount)
	}

	newSupply := big.Add(st.RawSupply, amount)
	if newSupply.GreaterThan(st.MaxSupply) {
		return builtin.ErrSupplyCapExceeded, xerrors.Errorf("minting %v raises raw supply %v above cap %v", amount, st.RawSupply, st.MaxSupply)
	}

	accounts, err := adt.AsMap(store, st.Accounts, builtin.DefaultHamtBitwidth)
	if err != nil {
		return exitcode.ErrIllegalState, xerrors.Errorf("failed to load accounts: %w", err)
	}

	acct, _, err := loadAccount(accounts, to)
	if err != nil {
		return exitcode.ErrIllegalState, err
	}

	acct.VestingCredited = big.Add(acct.VestingCredited, amount)

	if err := accounts.Put(abi.AddrKey(to), acct); err != nil {
		return exitcode.ErrIllegalState, xerrors.Errorf("failed to put account %s: %w", to, err)
	}
	if st.Accounts, err = accounts.Root(); err != nil {
		return exitcode.ErrIllegalState, xerrors.Errorf("failed to flush accounts: %w", err)
	}

	st.RawSupply = newSupply
	return exitcode.Ok, nil
}

// Burn debits amount from the account with vested-first priority and
// decrements the raw total supply.
func (st *State) Burn(store adt.Store, from address.Address, amount abi.TokenAmount, now abi.ChainEpoch) (exitcode.ExitCode, error) {
	if amount.LessThanEqual(big.Zero()) {
		return exitcode.ErrIllegalArgument, xerrors.Errorf("non-positive amount %v to burn", amount)
	}

	accounts, err := adt.AsMap(store, st.Accounts, builtin.DefaultHamtBitwidth)
	if err != nil {
		return exitcode.ErrIllegalState, xerrors.Errorf("failed to load accounts: %w", err)
	}

	acct, found, err := loadAccount(accounts, from)
	if err != nil {
		return exitcode.ErrIllegalState, err
	}
	if !found {
		return exitcode.ErrInsufficientFunds, xerrors.Errorf("no balance for %s", from)
	}

	if code, err := debitAccount(acct, st.Schedule, now, amount); err != nil {
		return code, err
	}

	if err := accounts.Put(abi.AddrKey(from), acct); err != nil {
		return exitcode.ErrIllegalState, xerrors.Errorf("failed to put account %s: %w", from, err)
	}
	if st.Accounts, err = accounts.Root(); err != nil {
		return exitcode.ErrIllegalState, xerrors.Errorf("failed to flush accounts: %w", err)
	}

	st.RawSupply = big.Sub(st.RawSupply, amount)
	if st.RawSupply.LessThan(big.Zero()) {
		return builtin.ErrBadState, xerrors.Errorf("negative raw supply %v after burning %v", st.RawSupply, amount)
	}
	return exitcode.Ok, nil
}

// Transfer debits from with vested-first priority and credits the amount to
// to's free balance. Vesting rights are not transferable, only the
// already-vested value moves.
func (st *State) Transfer(store adt.Store, from, to address.Address, amount abi.TokenAmount, now abi.ChainEpoch) (exitcode.ExitCode, error) {
	if amount.LessThan(big.Zero()) {
		return exitcode.ErrIllegalArgument, xerrors.Errorf("negative amount %v to transfer", amount)
	}

	accounts, err := adt.AsMap(store, st.Accounts, builtin.DefaultHamtBitwidth)
	if err != nil {
		return exitcode.ErrIllegalState, xerrors.Errorf("failed to load accounts: %w", err)
	}

	fromAcct, found, err := loadAccount(accounts, from)
	if err != nil {
		return exitcode.ErrIllegalState, err
	}
	if !found && amount.GreaterThan(big.Zero()) {
		return exitcode.ErrInsufficientFunds, xerrors.Errorf("no balance for %s", from)
	}

	if code, err := debitAccount(fromAcct, st.Schedule, now, amount); err != nil {
		return code, err
	}

	toAcct := fromAcct
	if from != to {
		toAcct, _, err = loadAccount(accounts, to)
		if err != nil {
			return exitcode.ErrIllegalState, err
		}
	}
	toAcct.FreeBalance = big.Add(toAcct.FreeBalance, amount)

	if err := accounts.Put(abi.AddrKey(from), fromAcct); err != nil {
		return exitcode.ErrIllegalState, xerrors.Errorf("failed to put account %s: %w", from, err)
	}
	if from != to {
		if err := accounts.Put(abi.AddrKey(to), toAcct); err != nil {
			return exitcode.ErrIllegalState, xerrors.Errorf("failed to put account %s: %w", to, err)
		}
	}
	if st.Accounts, err = accounts.Root(); err != nil {
		return exitcode.ErrIllegalState, xerrors.Errorf("failed to flush accounts: %w", err)
	}
	return exitcode.Ok, nil
}

// Debits amount from acct, consuming unspent vested allocation before
// touching the free balance.
func debitAccount(acct *AccountState, s Schedule, now abi.ChainEpoch, amount abi.TokenAmount) (exitcode.ExitCode, error) {
	unspent := acct.UnspentVested(s, now)
	if unspent.LessThan(big.Zero()) {
		return builtin.ErrBadState, xerrors.Errorf("vesting spent %v exceeds vested portion of %v", acct.VestingSpent, acct.VestingCredited)
	}

	effective := big.Add(unspent, acct.FreeBalance)
	if effective.LessThan(amount) {
		return exitcode.ErrInsufficientFunds, xerrors.Errorf("effective balance %v less than %v", effective, amount)
	}

	if unspent.GreaterThanEqual(amount) {
		acct.VestingSpent = big.Add(acct.VestingSpent, amount)
		return exitcode.Ok, nil
	}

	acct.VestingSpent = big.Add(acct.VestingSpent, unspent)
	acct.FreeBalance = big.Sub(acct.FreeBalance, big.Sub(amount, unspent))
	if acct.FreeBalance.LessThan(big.Zero()) {
		return builtin.ErrBadState, xerrors.Errorf("negative free balance %v", acct.FreeBalance)
	}
	return exitcode.Ok, nil
}

func (st *State) GetAccount(store adt.Store, owner address.Address) (*AccountState, bool, error) {
	accounts, err := adt.AsMap(store, st.Accounts, builtin.DefaultHamtBitwidth)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load accounts: %w", err)
	}
	return loadAccount(accounts, owner)
}

func loadAccount(accounts *adt.Map, owner address.Address) (*AccountState, bool, error) {
	acct := AccountState{
		VestingCredited: abi.NewTokenAmount(0),
		VestingSpent:    abi.NewTokenAmount(0),
		FreeBalance:     abi.NewTokenAmount(0),
	}
	found, err := accounts.Get(abi.AddrKey(owner), &acct)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to get account %s: %w", owner, err)
	}
	return &acct, found, nil
}

func (st *State) EffectiveBalance(store adt.Store, owner address.Address, now abi.ChainEpoch) (abi.TokenAmount, error) {
	acct, found, err := st.GetAccount(store, owner)
	if err != nil {
		return big.Zero(), err
	}
	if !found {
		return big.Zero(), nil
	}

	unspent := acct.UnspentVested(st.Schedule, now)
	if unspent.LessThan(big.Zero()) {
		return big.Zero(), xerrors.Errorf("vesting spent %v exceeds vested portion of %v", acct.VestingSpent, acct.VestingCredited)
	}
	return big.Add(unspent, acct.FreeBalance), nil
}

// TotalSupply is the vesting-ratio view of the raw total supply.
func (st *State) TotalSupply(now abi.ChainEpoch) abi.TokenAmount {
	return st.Schedule.ConvertForward(st.RawSupply, now)
}

// ReserveAmount is the portion of the cap not yet reflected as vested.
func (st *State) ReserveAmount(now abi.ChainEpoch) (abi.TokenAmount, error) {
	reserve := big.Sub(st.MaxSupply, st.TotalSupply(now))
	if reserve.LessThan(big.Zero()) {
		return big.Zero(), xerrors.Errorf("vested supply exceeds cap %v", st.MaxSupply)
	}
	return reserve, nil
}

func (st *State) Approve(store adt.Store, owner, spender address.Address, amount abi.TokenAmount) error {
	if amount.LessThan(big.Zero()) {
		return xerrors.Errorf("negative allowance %v", amount)
	}

	allowances, err := adt.AsMap(store, st.Allowances, builtin.DefaultHamtBitwidth)
	if err != nil {
		return xerrors.Errorf("failed to load allowances: %w", err)
	}

	granted, err := loadGranted(store, allowances, owner)
	if err != nil {
		return err
	}

	if err := granted.Put(abi.AddrKey(spender), &amount); err != nil {
		return xerrors.Errorf("failed to put allowance for %s: %w", spender, err)
	}

	return st.saveGranted(allowances, owner, granted)
}

func (st *State) Allowance(store adt.Store, owner, spender address.Address) (abi.TokenAmount, error) {
	allowances, err := adt.AsMap(store, st.Allowances, builtin.DefaultHamtBitwidth)
	if err != nil {
		return big.Zero(), xerrors.Errorf("failed to load allowances: %w", err)
	}

	granted, err := loadGranted(store, allowances, owner)
	if err != nil {
		return big.Zero(), err
	}

	out := abi.NewTokenAmount(0)
	if _, err := granted.Get(abi.AddrKey(spender), &out); err != nil {
		return big.Zero(), xerrors.Errorf("failed to get allowance for %s: %w", spender, err)
	}
	return out, nil
}

// DeductAllowance consumes amount of spender's allowance from owner.
func (st *State) DeductAllowance(store adt.Store, owner, spender address.Address, amount abi.TokenAmount) (exitcode.ExitCode, error) {
	allowances, err := adt.AsMap(store, st.Allowances, builtin.DefaultHamtBitwidth)
	if err != nil {
		return exitcode.ErrIllegalState, xerrors.Errorf("failed to load allowances: %w", err)
	}

	granted, err := loadGranted(store, allowances, owner)
	if err != nil {
		return exitcode.ErrIllegalState, err
	}

	old := abi.NewTokenAmount(0)
	if _, err := granted.Get(abi.AddrKey(spender), &old); err != nil {
		return exitcode.ErrIllegalState, xerrors.Errorf("failed to get allowance for %s: %w", spender, err)
	}
	if old.LessThan(amount) {
		return builtin.ErrInsufficientAllowance, xerrors.Errorf("allowance %v of %s less than %v", old, spender, amount)
	}

	remaining := big.Sub(old, amount)
	if err := granted.Put(abi.AddrKey(spender), &remaining); err != nil {
		return exitcode.ErrIllegalState, xerrors.Errorf("failed to put allowance for %s: %w", spender, err)
	}

	if err := st.saveGranted(allowances, owner, granted); err != nil {
		return exitcode.ErrIllegalState, err
	}
	return exitcode.Ok, nil
}

func loadGranted(store adt.Store, allowances *adt.Map, owner address.Address) (*adt.Map, error) {
	var grantedCid cbg.CborCid
	found, err := allowances.Get(abi.AddrKey(owner), &grantedCid)
	if err != nil {
		return nil, xerrors.Errorf("failed to get allowances of %s: %w", owner, err)
	}
	if !found {
		return adt.MakeEmptyMap(store, builtin.DefaultHamtBitwidth)
	}
	return adt.AsMap(store, cid.Cid(grantedCid), builtin.DefaultHamtBitwidth)
}

func (st *State) saveGranted(allowances *adt.Map, owner address.Address, granted *adt.Map) error {
	grantedRoot, err := granted.Root()
	if err != nil {
		return xerrors.Errorf("failed to flush allowances of %s: %w", owner, err)
	}

	grantedCid := cbg.CborCid(grantedRoot)
	if err := allowances.Put(abi.AddrKey(owner), &grantedCid); err != nil {
		return xerrors.Errorf("failed to put allowances of %s: %w", owner, err)
	}

	if st.Allowances, err = allowances.Root(); err != nil {
		return xerrors.Errorf("failed to flush allowances: %w", err)
	}
	return nil
}
