package adt_test

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/require"

	"github.com/vesta-protocol/go-vesta-actors/actors/util/adt"
	"github.com/vesta-protocol/go-vesta-actors/support/mock"
)

func TestArrayNotFound(t *testing.T) {
	rt := mock.NewBuilder(context.Background(), address.Undef).Build(t)
	store := adt.AsStore(rt)
	arr := adt.MakeEmptyArray(store)

	found, err := arr.Get(7, nil)
	require.NoError(t, err)
	require.False(t, found)
}

func TestArrayAppendContinuous(t *testing.T) {
	rt := mock.NewBuilder(context.Background(), address.Undef).Build(t)
	store := adt.AsStore(rt)
	arr := adt.MakeEmptyArray(store)

	for i := int64(0); i < 5; i++ {
		v := big.NewInt(i)
		require.NoError(t, arr.AppendContinuous(&v))
	}
	require.Equal(t, uint64(5), arr.Length())

	// round-trip through the store
	root, err := arr.Root()
	require.NoError(t, err)
	arr, err = adt.AsArray(store, root)
	require.NoError(t, err)

	var out abi.TokenAmount
	found, err := arr.Get(3, &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, big.NewInt(3), out)

	var sum int64
	var v abi.TokenAmount
	err = arr.ForEach(&v, func(i int64) error {
		sum += v.Int64()
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int64(0+1+2+3+4), sum)
}
