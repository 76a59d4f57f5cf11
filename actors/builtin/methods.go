package builtin

import (
	"github.com/filecoin-project/go-state-types/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

var MethodsGovern = struct {
	Constructor     abi.MethodNum
	Grant           abi.MethodNum
	Revoke          abi.MethodNum
	ValidateGranted abi.MethodNum
}{MethodConstructor, 2, 3, 4}

var MethodsToken = struct {
	Constructor      abi.MethodNum
	Mint             abi.MethodNum
	Burn             abi.MethodNum
	BurnFrom         abi.MethodNum
	Transfer         abi.MethodNum
	TransferFrom     abi.MethodNum
	Approve          abi.MethodNum
	Allowance        abi.MethodNum
	Pause            abi.MethodNum
	Resume           abi.MethodNum
	Reschedule       abi.MethodNum
	WithdrawReserve  abi.MethodNum
	BalanceOf        abi.MethodNum
	TotalSupply      abi.MethodNum
	RawTotalSupply   abi.MethodNum
	ReserveAmount    abi.MethodNum
	VestingCountdown abi.MethodNum
	Paused           abi.MethodNum
}{MethodConstructor, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}

var MethodsExchange = struct {
	Constructor         abi.MethodNum
	StopSwaps           abi.MethodNum
	StartSwaps          abi.MethodNum
	SwapInboundForToken abi.MethodNum
	SwapTokenForInbound abi.MethodNum
	SwapViaVenue        abi.MethodNum
	WithdrawCustodied   abi.MethodNum
	SetMaxBaseFee       abi.MethodNum
	ChangeDeadline      abi.MethodNum
	Status              abi.MethodNum
	Reschedule          abi.MethodNum
}{MethodConstructor, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

var MethodsVenue = struct {
	Constructor       abi.MethodNum
	Quote             abi.MethodNum
	SwapExactInForOut abi.MethodNum
	SwapInForExactOut abi.MethodNum
}{MethodConstructor, 2, 3, 4}
