// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package fevm

import (
	"fmt"

	"github.com/ipfs/go-cid"
)

//go:generate mockgen -source storage.go -destination storage_mock.go -package fevm

// Storage is the persistent key/value trie of the currently executing
// contract. Absent keys are conceptually zero; a zero value is never stored
// literally but expressed by deleting the key.
//
// Reads must always observe the latest, not yet flushed, writes since a
// contract may be re-entered while one of its calls is in progress.
type Storage interface {
	// Get returns the value stored under the given key and whether the key
	// is present.
	Get(Key) (Word, bool, error)
	// Set stores the given value under the key.
	Set(Key, Word) error
	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(Key) error
	// Flush persists all pending writes and returns the content identifier
	// of the resulting root. The identifier is opaque to its users.
	Flush() (cid.Cid, error)
}

// StorageStatus classifies the effect of a single storage update. It is an
// observation for gas accounting upstream and does not gate the write.
type StorageStatus int

const (
	// The value of a storage item has been left unchanged: 0 -> 0 and X -> X.
	StorageUnchanged StorageStatus = iota
	// The value of a storage item has been modified: X -> Y.
	StorageModified
	// A storage item has been modified after being modified before: X -> Y -> Z.
	// Reserved for an outer accounting layer tracking history across updates.
	StorageModifiedAgain
	// A new storage item has been added: 0 -> X.
	StorageAdded
	// A storage item has been deleted: X -> 0.
	StorageDeleted
)

func (s StorageStatus) String() string {
	switch s {
	case StorageUnchanged:
		return "StorageUnchanged"
	case StorageModified:
		return "StorageModified"
	case StorageModifiedAgain:
		return "StorageModifiedAgain"
	case StorageAdded:
		return "StorageAdded"
	case StorageDeleted:
		return "StorageDeleted"
	}
	return fmt.Sprintf("StorageStatus(%d)", s)
}

// GetStorageStatus classifies the update of a slot holding previous to next,
// where nil denotes an absent (zero) value.
func GetStorageStatus(previous, next *Word) StorageStatus {
	switch {
	case previous == nil && next == nil:
		return StorageUnchanged
	case previous == nil:
		return StorageAdded
	case next == nil:
		return StorageDeleted
	case *previous == *next:
		return StorageUnchanged
	default:
		return StorageModified
	}
}
