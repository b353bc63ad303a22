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
	"errors"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

type levelDbBlockstore struct {
	db *leveldb.DB
}

// NewLevelDbBlockstore opens a Blockstore persisted in a LevelDB database at
// the given path. An empty path selects a volatile database kept in memory.
func NewLevelDbBlockstore(path string) (Blockstore, error) {
	var db *leveldb.DB
	var err error
	if path == "" {
		db, err = leveldb.Open(storage.NewMemStorage(), nil)
	} else {
		db, err = leveldb.OpenFile(path, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open block database %q: %w", path, err)
	}
	return &levelDbBlockstore{db: db}, nil
}

func (s *levelDbBlockstore) Get(id cid.Cid) ([]byte, error) {
	data, err := s.db.Get(id.Bytes(), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	return data, err
}

func (s *levelDbBlockstore) Put(id cid.Cid, data []byte) error {
	return s.db.Put(id.Bytes(), data, nil)
}

func (s *levelDbBlockstore) Has(id cid.Cid) (bool, error) {
	return s.db.Has(id.Bytes(), nil)
}

func (s *levelDbBlockstore) Close() error {
	return s.db.Close()
}
