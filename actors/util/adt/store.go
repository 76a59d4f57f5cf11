package adt

import (
	"context"

	"github.com/filecoin-project/go-state-types/cbor"
	cid "github.com/ipfs/go-cid"
	ipldcbor "github.com/ipfs/go-ipld-cbor"
	"github.com/pkg/errors"
)

// Store defines an interface required to back the ADT implementations in this
// package.
type Store interface {
	Context() context.Context
	ipldcbor.IpldStore
}

// Runtime is the subset of the actor runtime that this package needs to adapt
// as a store. The full runtime interface is not referenced here so the package
// can also be used directly by tests.
type Runtime interface {
	StoreGet(c cid.Cid, o cbor.Unmarshaler) bool
	StorePut(x cbor.Marshaler) cid.Cid
}

// AsStore adapts an actor runtime as an ADT store.
func AsStore(rt Runtime) Store {
	return rtStore{rt}
}

type rtStore struct {
	Runtime
}

var _ Store = rtStore{}

func (r rtStore) Context() context.Context {
	return context.TODO()
}

func (r rtStore) Get(_ context.Context, c cid.Cid, out interface{}) error {
	um, ok := out.(cbor.Unmarshaler)
	if !ok {
		return errors.Errorf("object does not implement Unmarshaler: %T", out)
	}
	if !r.StoreGet(c, um) {
		return errors.Errorf("not found: %s", c)
	}
	return nil
}

func (r rtStore) Put(_ context.Context, v interface{}) (cid.Cid, error) {
	m, ok := v.(cbor.Marshaler)
	if !ok {
		return cid.Undef, errors.Errorf("object does not implement Marshaler: %T", v)
	}
	return r.StorePut(m), nil
}

// WrapStore adapts a vanilla IPLD store as an ADT store.
func WrapStore(ctx context.Context, store ipldcbor.IpldStore) Store {
	return &wstore{
		ctx:       ctx,
		IpldStore: store,
	}
}

type wstore struct {
	ctx context.Context
	ipldcbor.IpldStore
}

var _ Store = &wstore{}

func (s *wstore) Context() context.Context {
	return s.ctx
}
