package ipld

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	block "github.com/ipfs/go-block-format"
	cid "github.com/ipfs/go-cid"
	cbor "github.com/ipfs/go-ipld-cbor"

	"github.com/vesta-protocol/go-vesta-actors/actors/util/adt"
)

// Creates a new, empty IPLD store in memory.
func NewADTStore(ctx context.Context) adt.Store {
	return adt.WrapStore(ctx, cbor.NewCborStore(NewBlockStoreInMemory()))
}

type BlockStoreInMemory struct {
	data map[cid.Cid]block.Block
}

func NewBlockStoreInMemory() *BlockStoreInMemory {
	return &BlockStoreInMemory{make(map[cid.Cid]block.Block)}
}

func (mb *BlockStoreInMemory) Get(c cid.Cid) (block.Block, error) {
	d, ok := mb.data[c]
	if ok {
		return d, nil
	}
	return nil, fmt.Errorf("not found")
}

func (mb *BlockStoreInMemory) Put(b block.Block) error {
	mb.data[b.Cid()] = b
	return nil
}

// Creates a blockstore that tracks which blocks have been read.
type TracingBlockStore struct {
	lk         sync.Mutex
	readCount  int
	writeCount int
	underlying *BlockStoreInMemory
}

func NewTracingBlockStore(underlying *BlockStoreInMemory) *TracingBlockStore {
	return &TracingBlockStore{underlying: underlying}
}

func (ts *TracingBlockStore) ReadCount() int {
	ts.lk.Lock()
	defer ts.lk.Unlock()
	return ts.readCount
}

func (ts *TracingBlockStore) WriteCount() int {
	ts.lk.Lock()
	defer ts.lk.Unlock()
	return ts.writeCount
}

func (ts *TracingBlockStore) Get(c cid.Cid) (block.Block, error) {
	ts.lk.Lock()
	ts.readCount++
	ts.lk.Unlock()
	return ts.underlying.Get(c)
}

func (ts *TracingBlockStore) Put(b block.Block) error {
	ts.lk.Lock()
	ts.writeCount++
	ts.lk.Unlock()
	return ts.underlying.Put(b)
}

// A blockstore that complains when a block is overwritten with different
// content.
type SyncBlockStoreInMemory struct {
	lk sync.Mutex
	bs *BlockStoreInMemory
}

func NewSyncBlockStoreInMemory() *SyncBlockStoreInMemory {
	return &SyncBlockStoreInMemory{bs: NewBlockStoreInMemory()}
}

func (ss *SyncBlockStoreInMemory) Get(c cid.Cid) (block.Block, error) {
	ss.lk.Lock()
	defer ss.lk.Unlock()
	return ss.bs.Get(c)
}

func (ss *SyncBlockStoreInMemory) Put(b block.Block) error {
	ss.lk.Lock()
	defer ss.lk.Unlock()
	if prev, err := ss.bs.Get(b.Cid()); err == nil {
		if !bytes.Equal(prev.RawData(), b.RawData()) {
			return fmt.Errorf("conflicting write for block %v", b.Cid())
		}
	}
	return ss.bs.Put(b)
}
