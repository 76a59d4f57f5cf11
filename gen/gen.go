package main

import (
	gen "github.com/whyrusleeping/cbor-gen"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin"
	"github.com/vesta-protocol/go-vesta-actors/actors/builtin/exchange"
	"github.com/vesta-protocol/go-vesta-actors/actors/builtin/govern"
	"github.com/vesta-protocol/go-vesta-actors/actors/builtin/system"
	"github.com/vesta-protocol/go-vesta-actors/actors/builtin/token"
	"github.com/vesta-protocol/go-vesta-actors/actors/builtin/venue"
)

func main() {
	// Common types
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/cbor_gen.go", "builtin",
		builtin.BoolValue{},
		builtin.ValidateGrantedParams{},
		builtin.VenueQuoteParams{},
		builtin.VenueAmountsReturn{},
		builtin.VenueSwapParams{},
	); err != nil {
		panic(err)
	}

	// Actors
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/system/cbor_gen.go", "system",
		// actor state
		system.State{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/govern/cbor_gen.go", "govern",
		// actor state
		govern.State{},
		govern.GrantedAuthorities{},
		// method params
		govern.GrantOrRevokeParams{},
		govern.Authority{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/token/cbor_gen.go", "token",
		// actor state
		token.State{},
		token.AccountState{},
		token.Schedule{},
		// method params and returns
		token.ConstructorParams{},
		token.MintParams{},
		token.BurnParams{},
		token.BurnFromParams{},
		token.TransferParams{},
		token.TransferFromParams{},
		token.ApproveParams{},
		token.AllowanceParams{},
		token.RescheduleParams{},
		token.WithdrawReserveParams{},
		token.VestingCountdownReturn{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/exchange/cbor_gen.go", "exchange",
		// actor state
		exchange.State{},
		exchange.SettlementRecord{},
		// method params and returns
		exchange.ConstructorParams{},
		exchange.SwapReturn{},
		exchange.SwapTokenForInboundParams{},
		exchange.SwapViaVenueParams{},
		exchange.WithdrawCustodiedParams{},
		exchange.SetMaxBaseFeeParams{},
		exchange.ChangeDeadlineParams{},
		exchange.StatusReturn{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/venue/cbor_gen.go", "venue",
		// actor state
		venue.State{},
		// method params
		venue.ConstructorParams{},
	); err != nil {
		panic(err)
	}
}
