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
	"bytes"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ipfs/go-cid"
)

// cachedBlockstore keeps recently used blocks of an underlying store in
// memory. Blocks are immutable, so cached entries never go stale.
type cachedBlockstore struct {
	store Blockstore
	cache *lru.Cache[cid.Cid, []byte]
}

// NewCachedBlockstore wraps the given store with an LRU cache holding up to
// size blocks.
func NewCachedBlockstore(store Blockstore, size int) (Blockstore, error) {
	cache, err := lru.New[cid.Cid, []byte](size)
	if err != nil {
		return nil, err
	}
	return &cachedBlockstore{store: store, cache: cache}, nil
}

func (s *cachedBlockstore) Get(id cid.Cid) ([]byte, error) {
	if data, found := s.cache.Get(id); found {
		return bytes.Clone(data), nil
	}
	data, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	s.cache.Add(id, bytes.Clone(data))
	return data, nil
}

func (s *cachedBlockstore) Put(id cid.Cid, data []byte) error {
	if s.cache.Contains(id) {
		return nil
	}
	if err := s.store.Put(id, data); err != nil {
		return err
	}
	s.cache.Add(id, bytes.Clone(data))
	return nil
}

func (s *cachedBlockstore) Has(id cid.Cid) (bool, error) {
	if s.cache.Contains(id) {
		return true, nil
	}
	return s.store.Has(id)
}

func (s *cachedBlockstore) Close() error {
	s.cache.Purge()
	return s.store.Close()
}
