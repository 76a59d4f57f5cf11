package token

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin"
	"github.com/vesta-protocol/go-vesta-actors/actors/util/adt"
)

type StateSummary struct {
	Credited map[address.Address]abi.TokenAmount
	Spent    map[address.Address]abi.TokenAmount
	Free     map[address.Address]abi.TokenAmount

	TotalCredited abi.TokenAmount
	TotalSpent    abi.TokenAmount
	TotalFree     abi.TokenAmount
	AccountsCount int
}

func CheckStateInvariants(st *State, store adt.Store, now abi.ChainEpoch) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}
	sum := &StateSummary{
		Credited: make(map[address.Address]abi.TokenAmount),
		Spent:    make(map[address.Address]abi.TokenAmount),
		Free:     make(map[address.Address]abi.TokenAmount),

		TotalCredited: big.Zero(),
		TotalSpent:    big.Zero(),
		TotalFree:     big.Zero(),
	}

	acc.Require(st.RawSupply.GreaterThanEqual(big.Zero()), "negative raw supply %v", st.RawSupply)
	acc.Require(st.RawSupply.LessThanEqual(st.MaxSupply), "raw supply %v exceeds cap %v", st.RawSupply, st.MaxSupply)
	acc.Require(st.Schedule.DurationDays > 0, "zero vesting duration")

	accounts, err := adt.AsMap(store, st.Accounts, builtin.DefaultHamtBitwidth)
	if err != nil {
		acc.Addf("error loading accounts: %v", err)
	} else {
		var out AccountState
		err = accounts.ForEach(&out, func(k string) error {
			sum.AccountsCount++

			ida, err := address.NewFromBytes([]byte(k))
			acc.RequireNoError(err, "error deserializing account address: %s", k)
			acc.Require(ida.Protocol() == address.ID, "account address not an ID address: %s", k)

			acc.Require(out.VestingCredited.GreaterThanEqual(big.Zero()), "negative vesting credited of %s", ida)
			acc.Require(out.VestingSpent.GreaterThanEqual(big.Zero()), "negative vesting spent of %s", ida)
			acc.Require(out.FreeBalance.GreaterThanEqual(big.Zero()), "negative free balance of %s", ida)

			vested := st.Schedule.ConvertForward(out.VestingCredited, now)
			acc.Require(out.VestingSpent.LessThanEqual(vested), "vesting spent %v of %s exceeds vested portion %v", out.VestingSpent, ida, vested)

			sum.Credited[ida] = out.VestingCredited
			sum.Spent[ida] = out.VestingSpent
			sum.Free[ida] = out.FreeBalance
			sum.TotalCredited = big.Add(sum.TotalCredited, out.VestingCredited)
			sum.TotalSpent = big.Add(sum.TotalSpent, out.VestingSpent)
			sum.TotalFree = big.Add(sum.TotalFree, out.FreeBalance)
			return nil
		})
		acc.RequireNoError(err, "error iterating accounts")
	}

	return sum, acc
}
