package builtin

import (
	"bytes"
	"fmt"
	"io"

	addr "github.com/filecoin-project/go-address"
	address "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/vesta-protocol/go-vesta-actors/actors/runtime"
)

///// Code shared by multiple built-in actors. /////

// Wraps already-serialized bytes as CBOR-marshalable.
type CBORBytes []byte

func (b CBORBytes) MarshalCBOR(w io.Writer) error {
	_, err := w.Write(b)
	return err
}

func (b *CBORBytes) UnmarshalCBOR(r io.Reader) error {
	var c bytes.Buffer
	_, err := c.ReadFrom(r)
	*b = c.Bytes()
	return err
}

// Aborts with an ErrIllegalArgument if predicate is not true.
func RequireParam(rt runtime.Runtime, predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.Abortf(exitcode.ErrIllegalArgument, msg, args...)
	}
}

// Propagates a failed send by aborting the current method with the same exit code.
func RequireSuccess(rt runtime.Runtime, e exitcode.ExitCode, msg string, args ...interface{}) {
	if !e.IsSuccess() {
		rt.Abortf(e, msg, args...)
	}
}

// Aborts with a formatted message if err is not nil.
// The provided message will be suffixed by ": %s" and the provided args suffixed by the err.
func RequireNoErr(rt runtime.Runtime, err error, defaultExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	if err != nil {
		newMsg := msg + ": %s"
		newArgs := append(args, err)
		code := exitcode.Unwrap(err, defaultExitCode)
		rt.Abortf(code, newMsg, newArgs...)
	}
}

// Validates that the caller is granted the method on the govern actor.
func ValidateCallerGranted(rt runtime.Runtime, caller addr.Address, method abi.MethodNum) {
	params := &ValidateGrantedParams{
		Caller: caller,
		Method: method,
	}
	code := rt.Send(GovernActorAddr, MethodsGovern.ValidateGranted, params, abi.NewTokenAmount(0), &Discard{})
	RequireSuccess(rt, code, "failed to validate caller granted")
}

// ResolveToIDAddr resolves the given address to it's ID address form.
// If an ID address for the given address dosen't exist yet, it tries to create one by sending a zero balance to the given address.
func ResolveToIDAddr(rt runtime.Runtime, address addr.Address) (addr.Address, error) {
	// if we are able to resolve it to an ID address, return the resolved address
	idAddr, found := rt.ResolveAddress(address)
	if found {
		return idAddr, nil
	}

	// send 0 balance to the account so an ID address for it is created and then try to resolve
	code := rt.Send(address, MethodSend, nil, abi.NewTokenAmount(0), &Discard{})
	if !code.IsSuccess() {
		return address, code.Wrapf("failed to send zero balance to address %v", address)
	}

	// now try to resolve it to an ID address -> fail if not possible
	idAddr, found = rt.ResolveAddress(address)
	if !found {
		return address, fmt.Errorf("failed to resolve address %v to ID address even after sending zero balance", address)
	}

	return idAddr, nil
}

// Discard is a helper
type Discard struct{}

func (d *Discard) MarshalCBOR(_ io.Writer) error {
	// serialization is a noop
	return nil
}

func (d *Discard) UnmarshalCBOR(_ io.Reader) error {
	// deserialization is a noop
	return nil
}

type BoolValue struct {
	Bool bool
}

type ValidateGrantedParams struct {
	Caller address.Address
	Method abi.MethodNum
}

// Parameters for quoting an output amount from the venue actor for a swap
// along the given path.
type VenueQuoteParams struct {
	AmountIn abi.TokenAmount
	Path     []address.Address
}

type VenueAmountsReturn struct {
	Amounts []abi.TokenAmount
}

// Parameters accepted by the venue actor's swap methods.
type VenueSwapParams struct {
	AmountIn     abi.TokenAmount
	AmountOutMin abi.TokenAmount
	Path         []address.Address
	Recipient    address.Address
	Deadline     abi.ChainEpoch
}

// RequestVenueQuote asks the venue actor for the output amounts along path
// given amountIn of the first asset.
func RequestVenueQuote(rt runtime.Runtime, venue addr.Address, amountIn abi.TokenAmount, path []address.Address) []abi.TokenAmount {
	params := &VenueQuoteParams{
		AmountIn: amountIn,
		Path:     path,
	}
	var out VenueAmountsReturn
	code := rt.Send(venue, MethodsVenue.Quote, params, abi.NewTokenAmount(0), &out)
	RequireSuccess(rt, code, "failed to fetch venue quote")
	RequireParam(rt, len(out.Amounts) == len(path), "venue returned %d amounts for path of %d", len(out.Amounts), len(path))
	return out.Amounts
}
