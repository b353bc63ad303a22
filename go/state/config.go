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

// Config defines the backing store of contract state.
type Config struct {
	// Path is the directory of the LevelDB database holding the blocks. If
	// empty, blocks are kept in memory.
	Path string
	// CacheSize is the number of blocks cached in memory. Zero selects
	// DefaultCacheSize, a negative value disables the cache.
	CacheSize int
}

// DefaultCacheSize is the number of cached blocks if not configured.
const DefaultCacheSize = 1024

// OpenBlockstore creates the Blockstore described by the configuration.
func OpenBlockstore(config Config) (Blockstore, error) {
	store, err := NewLevelDbBlockstore(config.Path)
	if err != nil {
		return nil, err
	}

	size := config.CacheSize
	if size == 0 {
		size = DefaultCacheSize
	}
	if size < 0 {
		return store, nil
	}
	cached, err := NewCachedBlockstore(store, size)
	if err != nil {
		store.Close()
		return nil, err
	}
	return cached, nil
}
