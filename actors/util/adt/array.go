package adt

import (
	"bytes"

	amt "github.com/filecoin-project/go-amt-ipld/v2"
	cid "github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"
)

// Array stores a sparse sequence of values in an AMT.
type Array struct {
	root  *amt.Root
	store Store
}

// AsArray interprets a store as an AMT-based array with root r.
func AsArray(s Store, r cid.Cid) (*Array, error) {
	root, err := amt.LoadAMT(s.Context(), s, r)
	if err != nil {
		return nil, xerrors.Errorf("failed to load amt: %w", err)
	}
	return &Array{
		root:  root,
		store: s,
	}, nil
}

// MakeEmptyArray creates a new array backed by an empty AMT.
func MakeEmptyArray(s Store) *Array {
	return &Array{
		root:  amt.NewAMT(s),
		store: s,
	}
}

// StoreEmptyArray creates and stores a new empty array, returning its CID.
func StoreEmptyArray(s Store) (cid.Cid, error) {
	return MakeEmptyArray(s).Root()
}

// Root flushes the array and returns the root cid of the underlying AMT.
func (a *Array) Root() (cid.Cid, error) {
	return a.root.Flush(a.store.Context())
}

// AppendContinuous appends a value to the end of the array, assuming continuous
// indices from zero.
func (a *Array) AppendContinuous(value cbg.CBORMarshaler) error {
	return a.root.Set(a.store.Context(), a.root.Count, value)
}

// Set sets the value at index i.
func (a *Array) Set(i uint64, value cbg.CBORMarshaler) error {
	return a.root.Set(a.store.Context(), i, value)
}

// Get retrieves the value at index i into out, if it exists.
func (a *Array) Get(i uint64, out cbg.CBORUnmarshaler) (bool, error) {
	err := a.root.Get(a.store.Context(), i, out)
	if err == nil {
		return true, nil
	}
	if _, nf := err.(*amt.ErrNotFound); nf {
		return false, nil
	}
	return false, err
}

// Length returns the number of contiguously-appended entries.
func (a *Array) Length() uint64 {
	return a.root.Count
}

// ForEach iterates all entries in the array, deserializing each value into out
// (if non-nil) before invoking fn with the index.
func (a *Array) ForEach(out cbg.CBORUnmarshaler, fn func(i int64) error) error {
	return a.root.ForEach(a.store.Context(), func(k uint64, val *cbg.Deferred) error {
		if out != nil {
			if err := out.UnmarshalCBOR(bytes.NewReader(val.Raw)); err != nil {
				return err
			}
		}
		return fn(int64(k))
	})
}
