package testing

import (
	"encoding/binary"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/stretchr/testify/require"
)

func NewIDAddr(t testing.TB, id uint64) addr.Address {
	address, err := addr.NewIDAddress(id)
	require.NoError(t, err)
	return address
}

func NewSECP256K1Addr(t testing.TB, pubkey string) addr.Address {
	// the pubkey of a secp256k1 address is hashed for the payload
	address, err := addr.NewSecp256k1Address([]byte(pubkey))
	require.NoError(t, err)
	return address
}

func NewBLSAddr(t testing.TB, seed int64) addr.Address {
	buf := make([]byte, addr.BlsPublicKeyBytes)
	binary.PutVarint(buf, seed)

	address, err := addr.NewBLSAddress(buf)
	require.NoError(t, err)
	return address
}

func NewActorAddr(t testing.TB, data string) addr.Address {
	address, err := addr.NewActorAddress([]byte(data))
	require.NoError(t, err)
	return address
}
