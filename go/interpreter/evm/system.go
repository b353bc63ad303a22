// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package evm

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/fevm/go/fevm"
	"github.com/ethereum/go-ethereum/log"
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/holiman/uint256"
	"github.com/ipfs/go-cid"
)

// System bridges the interpreter to the host VM. It holds the runtime handle
// and the storage trie of the executing contract for the lifetime of one
// actor invocation and is passed by reference to every instruction needing
// them. Nested invocations run in separate actor invocations with their own
// System.
type System struct {
	rt       fevm.Runtime
	storage  fevm.Storage
	readonly bool
	config   Config
}

// NewSystem creates a System for an invocation. If readonly is set, no
// instruction executed under this System may mutate state.
func NewSystem(rt fevm.Runtime, storage fevm.Storage, readonly bool, config Config) *System {
	return &System{
		rt:       rt,
		storage:  storage,
		readonly: readonly,
		config:   config.withDefaults(),
	}
}

// ReadOnly reports whether the invocation runs in static mode.
func (s *System) ReadOnly() bool {
	return s.readonly
}

// ReadOnlyMethod reports whether invocations of the given method run in
// static mode from the start.
func ReadOnlyMethod(method abi.MethodNum) bool {
	return method == fevm.MethodInvokeContractReadOnly
}

// GetStorage returns the value stored under the given key, or nil if the key
// is absent.
func (s *System) GetStorage(key *uint256.Int) (*uint256.Int, error) {
	value, found, err := s.storage.Get(fevm.NewKey(key))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read storage key %v: %v", fevm.ErrInternal, key.Hex(), err)
	}
	if !found {
		return nil, nil
	}
	return value.ToUint256(), nil
}

// SetStorage updates the value stored under the given key. A nil or zero value
// deletes the key. The resulting status classifies the transition.
func (s *System) SetStorage(key *uint256.Int, value *uint256.Int) (fevm.StorageStatus, error) {
	k := fevm.NewKey(key)
	prev, found, err := s.storage.Get(k)
	if err != nil {
		return fevm.StorageUnchanged, fmt.Errorf("%w: failed to read storage key %v: %v", fevm.ErrInternal, k, err)
	}
	var previous, next *fevm.Word
	if found {
		previous = &prev
	}
	if value != nil && !value.IsZero() {
		word := fevm.NewWord(value)
		next = &word
	}
	status := fevm.GetStorageStatus(previous, next)

	if next == nil {
		err = s.storage.Delete(k)
	} else {
		err = s.storage.Set(k, *next)
	}
	if err != nil {
		return fevm.StorageUnchanged, fmt.Errorf("%w: failed to update storage key %v: %v", fevm.ErrInternal, k, err)
	}
	log.Trace("Storage updated", "key", k, "status", status)
	return status, nil
}

// FlushState persists all pending storage updates and returns the new root.
// A failure leaves the state of the actor undefined and is fatal.
func (s *System) FlushState() (cid.Cid, error) {
	root, err := s.storage.Flush()
	if err != nil {
		log.Error("Failed to flush contract state", "err", err)
		return cid.Undef, fmt.Errorf("%w: %v", fevm.ErrIllegalState, err)
	}
	return root, nil
}

// Send invokes a method on another actor through the host.
func (s *System) Send(to address.Address, method abi.MethodNum, params []byte, value abi.TokenAmount) ([]byte, error) {
	log.Debug("Sending message", "to", to, "method", method, "value", value, "params", len(params))
	res, err := s.rt.Send(to, method, params, value)
	if err != nil {
		log.Debug("Message failed", "to", to, "method", method, "err", err)
		return nil, err
	}
	return res, nil
}

// ResolveEthAddress translates a native address into the EVM address
// representing it. Delegated addresses of the EAM namespace are unwrapped
// directly. Other addresses are resolved to their actor, which is
// represented by its registered EVM address or, lacking one, by an address
// derived from its ID.
func (s *System) ResolveEthAddress(addr address.Address) (fevm.EthAddress, error) {
	if eth, ok, err := fevm.DelegatedEthAddress(addr); ok || err != nil {
		return eth, err
	}

	id, found := s.rt.ResolveAddress(addr)
	if !found {
		return fevm.EthAddress{}, fmt.Errorf("%w: non-ethereum address %v cannot be resolved to an ID address", fevm.ErrBadAddress, addr)
	}

	if delegated, found := s.rt.LookupDelegatedAddress(id); found {
		eth, ok, err := fevm.DelegatedEthAddress(delegated)
		if err != nil {
			return fevm.EthAddress{}, err
		}
		if ok {
			return eth, nil
		}
	}
	return fevm.EthAddressFromID(id), nil
}

// isActorError reports whether err is a failure reported by the host for an
// invoked actor and returns its details.
func isActorError(err error) (*fevm.ActorError, bool) {
	var actorErr *fevm.ActorError
	if errors.As(err, &actorErr) {
		return actorErr, true
	}
	return nil, false
}
