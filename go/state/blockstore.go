// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import (
	"context"
	"fmt"

	"github.com/Fantom-foundation/fevm/go/fevm"
	block "github.com/ipfs/go-block-format"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"golang.org/x/crypto/blake2b"
)

//go:generate mockgen -source blockstore.go -destination blockstore_mock.go -package state

// Blockstore is a content-addressed store of immutable blocks.
type Blockstore interface {
	// Get returns the block with the given identifier or ErrNotFound.
	Get(cid.Cid) ([]byte, error)
	// Put stores a block under its identifier.
	Put(cid.Cid, []byte) error
	// Has reports whether a block is present.
	Has(cid.Cid) (bool, error)
	// Close releases resources held by the store.
	Close() error
}

// ErrNotFound is returned for blocks missing from a Blockstore.
const ErrNotFound = fevm.ConstError("block not found")

// blockHash is the multihash code of blake2b-256.
const blockHash = multihash.BLAKE2B_MIN + 31

// NewBlockCID computes the identifier of a raw block.
func NewBlockCID(data []byte) (cid.Cid, error) {
	return newBlockCID(cid.Raw, data)
}

func newBlockCID(codec uint64, data []byte) (cid.Cid, error) {
	sum := blake2b.Sum256(data)
	hash, err := multihash.Encode(sum[:], blockHash)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(codec, hash), nil
}

// ipldBlockstore exposes a Blockstore to the IPLD node stores. Blocks are
// checked against their identifier when loaded.
type ipldBlockstore struct {
	store Blockstore
}

func (s ipldBlockstore) Get(_ context.Context, id cid.Cid) (block.Block, error) {
	data, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	want, err := newBlockCID(id.Type(), data)
	if err != nil {
		return nil, err
	}
	if !want.Equals(id) {
		return nil, fmt.Errorf("%w: content of block %v does not match its id", fevm.ErrSerialization, id)
	}
	res, err := block.NewBlockWithCid(data, id)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s ipldBlockstore) Put(_ context.Context, b block.Block) error {
	return s.store.Put(b.Cid(), b.RawData())
}
