package adt

import (
	"bytes"

	"github.com/filecoin-project/go-state-types/abi"
	cid "github.com/ipfs/go-cid"
	hamt "github.com/ipfs/go-hamt-ipld"
	"github.com/pkg/errors"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"
)

// Map stores key-value pairs in a HAMT.
type Map struct {
	root  *hamt.Node
	store Store
}

// AsMap interprets a store as a HAMT-based map with root r.
func AsMap(s Store, r cid.Cid, bitwidth int) (*Map, error) {
	nd, err := hamt.LoadNode(s.Context(), s, r, hamt.UseTreeBitWidth(bitwidth))
	if err != nil {
		return nil, xerrors.Errorf("failed to load hamt node: %w", err)
	}
	return &Map{
		root:  nd,
		store: s,
	}, nil
}

// MakeEmptyMap creates a new map backed by an empty HAMT.
func MakeEmptyMap(s Store, bitwidth int) (*Map, error) {
	nd := hamt.NewNode(s, hamt.UseTreeBitWidth(bitwidth))
	return &Map{
		root:  nd,
		store: s,
	}, nil
}

// StoreEmptyMap creates and stores a new empty map, returning its CID.
func StoreEmptyMap(s Store, bitwidth int) (cid.Cid, error) {
	m, err := MakeEmptyMap(s, bitwidth)
	if err != nil {
		return cid.Undef, err
	}
	return m.Root()
}

// Root flushes the map and returns the root cid of the underlying HAMT.
func (m *Map) Root() (cid.Cid, error) {
	if err := m.root.Flush(m.store.Context()); err != nil {
		return cid.Undef, xerrors.Errorf("failed to flush map root: %w", err)
	}
	c, err := m.store.Put(m.store.Context(), m.root)
	if err != nil {
		return cid.Undef, xerrors.Errorf("failed to persist map root: %w", err)
	}
	return c, nil
}

// Put adds value v with key k to the hamt store.
func (m *Map) Put(k abi.Keyer, v cbg.CBORMarshaler) error {
	if err := m.root.Set(m.store.Context(), k.Key(), v); err != nil {
		return errors.Wrapf(err, "map put failed set in node %v with key %v value %v", m.root, k.Key(), v)
	}
	return nil
}

// Get retrieves the value at k into out, if the key exists.
func (m *Map) Get(k abi.Keyer, out cbg.CBORUnmarshaler) (bool, error) {
	if err := m.root.Find(m.store.Context(), k.Key(), out); err != nil {
		if err == hamt.ErrNotFound {
			return false, nil
		}
		return false, errors.Wrapf(err, "map get failed find in root %v with key %v", m.root, k.Key())
	}
	return true, nil
}

// PutIfAbsent sets key k to value v iff the key is not already present.
func (m *Map) PutIfAbsent(k abi.Keyer, v cbg.CBORMarshaler) (bool, error) {
	found, err := m.Get(k, nil)
	if err != nil {
		return false, err
	}
	if found {
		return false, nil
	}
	return true, m.Put(k, v)
}

// Delete removes the value at key k from the hamt store, expecting it to exist.
func (m *Map) Delete(k abi.Keyer) error {
	if err := m.root.Delete(m.store.Context(), k.Key()); err != nil {
		return errors.Wrapf(err, "map delete failed in node %v key %v", m.root, k.Key())
	}
	return nil
}

// TryDelete removes the value at key k if present, reporting whether it was.
func (m *Map) TryDelete(k abi.Keyer) (bool, error) {
	if err := m.root.Delete(m.store.Context(), k.Key()); err != nil {
		if err == hamt.ErrNotFound {
			return false, nil
		}
		return false, errors.Wrapf(err, "map delete failed in node %v key %v", m.root, k.Key())
	}
	return true, nil
}

// ForEach iterates all entries in the map, deserializing each value into out
// (if non-nil) before invoking fn with the key.
func (m *Map) ForEach(out cbg.CBORUnmarshaler, fn func(key string) error) error {
	return m.root.ForEach(m.store.Context(), func(k string, val interface{}) error {
		if out != nil {
			deferred := val.(*cbg.Deferred)
			if err := out.UnmarshalCBOR(bytes.NewReader(deferred.Raw)); err != nil {
				return err
			}
		}
		return fn(k)
	})
}

// CollectKeys collects all keys from the map into a slice of strings.
func (m *Map) CollectKeys() (out []string, err error) {
	err = m.ForEach(nil, func(key string) error {
		out = append(out, key)
		return nil
	})
	return
}

// StringKey wraps a string as a map key.
type StringKey string

func (k StringKey) Key() string {
	return string(k)
}
