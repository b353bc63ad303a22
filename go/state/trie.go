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
	"context"
	"errors"
	"fmt"

	"github.com/Fantom-foundation/fevm/go/fevm"
	"github.com/ethereum/go-ethereum/log"
	hamt "github.com/filecoin-project/go-hamt-ipld/v3"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/ipfs/go-cid"
	ipldcbor "github.com/ipfs/go-ipld-cbor"
	sha256 "github.com/minio/sha256-simd"
	cbg "github.com/whyrusleeping/cbor-gen"
)

// hamtBitWidth is the number of hash bits consumed per level of the trie.
const hamtBitWidth = 5

var _ fevm.Storage = (*Trie)(nil)

// Trie is the storage of a single contract, a HAMT mapping 32-byte keys to
// values encoded as CBOR byte strings without leading zeros. Slots are placed
// by the sha256 hash of their key. All nodes are stored content-addressed in
// a Blockstore.
//
// Nodes are loaded on first access and kept in memory. Updates stay in
// memory until Flush writes the modified nodes and a new root.
//
// A Trie is not thread-safe.
type Trie struct {
	store ipldcbor.IpldStore
	root  *hamt.Node
}

func hamtOptions() []hamt.Option {
	return []hamt.Option{
		hamt.UseTreeBitWidth(hamtBitWidth),
		hamt.UseHashFunction(func(key []byte) []byte {
			sum := sha256.Sum256(key)
			return sum[:]
		}),
	}
}

// NewTrie creates an empty trie storing its nodes in the given store.
func NewTrie(store Blockstore) (*Trie, error) {
	ipld := ipldcbor.NewCborStore(ipldBlockstore{store: store})
	root, err := hamt.NewNode(ipld, hamtOptions()...)
	if err != nil {
		return nil, err
	}
	return &Trie{store: ipld, root: root}, nil
}

// LoadTrie opens the trie with the given root.
func LoadTrie(store Blockstore, root cid.Cid) (*Trie, error) {
	ipld := ipldcbor.NewCborStore(ipldBlockstore{store: store})
	node, err := hamt.LoadNode(context.Background(), ipld, root, hamtOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to load state root %v: %w", root, asSerializationError(err))
	}
	return &Trie{store: ipld, root: node}, nil
}

// asSerializationError marks decoding failures of nodes as ErrSerialization
// and passes on all other errors.
func asSerializationError(err error) error {
	var decodingErr ipldcbor.SerializationError
	if errors.As(err, &decodingErr) || errors.Is(err, hamt.ErrMalformedHamt) {
		return fmt.Errorf("%w: %v", fevm.ErrSerialization, err)
	}
	return err
}

func encodeWord(value fevm.Word) *abi.CborBytes {
	res := abi.CborBytes(bytes.TrimLeft(value[:], "\x00"))
	return &res
}

func decodeWord(raw []byte) (fevm.Word, error) {
	var value abi.CborBytes
	if err := value.UnmarshalCBOR(bytes.NewReader(raw)); err != nil {
		return fevm.Word{}, fmt.Errorf("%w: invalid slot value: %v", fevm.ErrSerialization, err)
	}
	if len(value) > len(fevm.Word{}) {
		return fevm.Word{}, fmt.Errorf("%w: slot value of %d bytes", fevm.ErrSerialization, len(value))
	}
	var res fevm.Word
	copy(res[len(res)-len(value):], value)
	return res, nil
}

// Get returns the value stored under the given key.
func (t *Trie) Get(key fevm.Key) (fevm.Word, bool, error) {
	found, raw, err := t.root.FindRaw(context.Background(), string(key[:]))
	if err != nil {
		return fevm.Word{}, false, asSerializationError(err)
	}
	if !found {
		return fevm.Word{}, false, nil
	}
	value, err := decodeWord(raw)
	if err != nil {
		return fevm.Word{}, false, err
	}
	return value, true, nil
}

// Set stores the given value under the key.
func (t *Trie) Set(key fevm.Key, value fevm.Word) error {
	return asSerializationError(t.root.Set(context.Background(), string(key[:]), encodeWord(value)))
}

// Delete removes the key from the trie.
func (t *Trie) Delete(key fevm.Key) error {
	_, err := t.root.Delete(context.Background(), string(key[:]))
	return asSerializationError(err)
}

// Flush writes all modified nodes and the resulting root to the store and
// returns the identifier of the root.
func (t *Trie) Flush() (cid.Cid, error) {
	ctx := context.Background()
	if err := t.root.Flush(ctx); err != nil {
		return cid.Undef, fmt.Errorf("failed to write state nodes: %w", err)
	}
	root, err := t.store.Put(ctx, t.root)
	if err != nil {
		return cid.Undef, fmt.Errorf("failed to write state root: %w", err)
	}
	log.Debug("Flushed contract state", "root", root)
	return root, nil
}

// errStopIteration ends a walk over the trie early.
const errStopIteration = fevm.ConstError("stop iteration")

// ForEach calls fn for all slots in the trie until fn returns false. Slots
// are visited in the order of their key hashes.
func (t *Trie) ForEach(fn func(fevm.Key, fevm.Word) bool) error {
	err := t.root.ForEach(context.Background(), func(k string, raw *cbg.Deferred) error {
		if len(k) != len(fevm.Key{}) {
			return fmt.Errorf("%w: slot key of %d bytes", fevm.ErrSerialization, len(k))
		}
		value, err := decodeWord(raw.Raw)
		if err != nil {
			return err
		}
		if !fn(fevm.Key([]byte(k)), value) {
			return errStopIteration
		}
		return nil
	})
	if errors.Is(err, errStopIteration) {
		return nil
	}
	return asSerializationError(err)
}

// Stats summarizes the content of a trie.
type Stats struct {
	Slots int
	Bytes int
}

// GetStats counts the slots of the trie and the encoded size of their keys
// and values.
func (t *Trie) GetStats() (Stats, error) {
	res := Stats{}
	err := t.root.ForEach(context.Background(), func(k string, raw *cbg.Deferred) error {
		res.Slots++
		res.Bytes += len(k) + len(raw.Raw)
		return nil
	})
	if err != nil {
		return Stats{}, asSerializationError(err)
	}
	return res, nil
}
