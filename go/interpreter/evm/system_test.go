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
	"testing"

	"github.com/Fantom-foundation/fevm/go/fevm"
	"github.com/Fantom-foundation/fevm/go/state"
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/holiman/uint256"
	"github.com/ipfs/go-cid"
	"go.uber.org/mock/gomock"
)

func TestSystem_SetStorageClassifiesTransitions(t *testing.T) {
	sys := newTestSystem(t, nil, false)
	key := u(42)

	steps := []struct {
		value *uint256.Int
		want  fevm.StorageStatus
	}{
		{u(7), fevm.StorageAdded},
		{u(7), fevm.StorageUnchanged},
		{u(8), fevm.StorageModified},
		{nil, fevm.StorageDeleted},
		{nil, fevm.StorageUnchanged},
	}

	for i, step := range steps {
		status, err := sys.SetStorage(key, step.value)
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
		if status != step.want {
			t.Errorf("step %d: unexpected status, want %v, got %v", i, step.want, status)
		}
		got, err := sys.GetStorage(key)
		if err != nil {
			t.Fatalf("step %d: failed to read: %v", i, err)
		}
		if step.value == nil && got != nil {
			t.Errorf("step %d: expected absent value, got %v", i, got)
		}
		if step.value != nil && (got == nil || !got.Eq(step.value)) {
			t.Errorf("step %d: unexpected value, want %v, got %v", i, step.value, got)
		}
	}
}

func TestSystem_ZeroValuesAreNeverStored(t *testing.T) {
	trie, _ := newTestTrie(t)
	sys := NewSystem(nil, trie, false, Config{})
	key := u(7)

	status, err := sys.SetStorage(key, u(0))
	if err != nil {
		t.Fatal(err)
	}
	if status != fevm.StorageUnchanged {
		t.Errorf("storing zero into an absent slot should not change it, got %v", status)
	}
	if _, found, err := trie.Get(fevm.NewKey(key)); err != nil || found {
		t.Errorf("zero value was stored, found: %t, err: %v", found, err)
	}

	if _, err := sys.SetStorage(key, u(3)); err != nil {
		t.Fatal(err)
	}
	status, err = sys.SetStorage(key, u(0))
	if err != nil {
		t.Fatal(err)
	}
	if status != fevm.StorageDeleted {
		t.Errorf("storing zero should delete the slot, got %v", status)
	}
	got, err := sys.GetStorage(key)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expected absent slot, got %v", got)
	}
}

func TestSystem_StorageSurvivesFlush(t *testing.T) {
	trie, store := newTestTrie(t)
	sys := NewSystem(nil, trie, false, Config{})
	if _, err := sys.SetStorage(u(1), u(100)); err != nil {
		t.Fatal(err)
	}
	root, err := sys.FlushState()
	if err != nil {
		t.Fatalf("failed to flush: %v", err)
	}

	trie, err = state.LoadTrie(store, root)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	got, err := NewSystem(nil, trie, true, Config{}).GetStorage(u(1))
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || !got.Eq(u(100)) {
		t.Errorf("unexpected value after reload: %v", got)
	}
}

func TestSystem_StorageErrorsAreInternal(t *testing.T) {
	injected := errors.New("injected")
	tests := map[string]struct {
		setup func(*fevm.MockStorage)
		run   func(*System) error
	}{
		"get": {
			setup: func(s *fevm.MockStorage) {
				s.EXPECT().Get(gomock.Any()).Return(fevm.Word{}, false, injected)
			},
			run: func(sys *System) error {
				_, err := sys.GetStorage(u(1))
				return err
			},
		},
		"set fails to read": {
			setup: func(s *fevm.MockStorage) {
				s.EXPECT().Get(gomock.Any()).Return(fevm.Word{}, false, injected)
			},
			run: func(sys *System) error {
				_, err := sys.SetStorage(u(1), u(2))
				return err
			},
		},
		"set fails to write": {
			setup: func(s *fevm.MockStorage) {
				s.EXPECT().Get(gomock.Any()).Return(fevm.Word{}, false, nil)
				s.EXPECT().Set(gomock.Any(), gomock.Any()).Return(injected)
			},
			run: func(sys *System) error {
				_, err := sys.SetStorage(u(1), u(2))
				return err
			},
		},
		"delete fails": {
			setup: func(s *fevm.MockStorage) {
				s.EXPECT().Get(gomock.Any()).Return(fevm.Word{1}, true, nil)
				s.EXPECT().Delete(gomock.Any()).Return(injected)
			},
			run: func(sys *System) error {
				_, err := sys.SetStorage(u(1), nil)
				return err
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := fevm.NewMockStorage(ctrl)
			test.setup(storage)
			sys := NewSystem(nil, storage, false, Config{})
			if err := test.run(sys); !errors.Is(err, fevm.ErrInternal) {
				t.Errorf("expected %v, got %v", fevm.ErrInternal, err)
			}
		})
	}
}

func TestSystem_FlushFailureIsIllegalState(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := fevm.NewMockStorage(ctrl)
	storage.EXPECT().Flush().Return(cid.Undef, errors.New("disk full"))

	sys := NewSystem(nil, storage, false, Config{})
	if _, err := sys.FlushState(); !errors.Is(err, fevm.ErrIllegalState) {
		t.Errorf("expected %v, got %v", fevm.ErrIllegalState, err)
	}
}

func TestSystem_ResolveEthAddress(t *testing.T) {
	eth := fevm.EthAddress{1, 2, 3}
	delegated := nativeOf(t, eth)
	id, err := address.NewIDAddress(77)
	if err != nil {
		t.Fatal(err)
	}
	badLength, err := address.NewDelegatedAddress(fevm.EAMActorID, make([]byte, 19))
	if err != nil {
		t.Fatal(err)
	}

	tests := map[string]struct {
		addr  address.Address
		setup func(*fevm.MockRuntime)
		want  fevm.EthAddress
		err   error
	}{
		"delegated address is unwrapped": {
			addr: delegated,
			want: eth,
		},
		"delegated address of wrong length": {
			addr: badLength,
			err:  fevm.ErrBadAddress,
		},
		"unresolvable address": {
			addr: id,
			setup: func(rt *fevm.MockRuntime) {
				rt.EXPECT().ResolveAddress(id).Return(abi.ActorID(0), false)
			},
			err: fevm.ErrBadAddress,
		},
		"actor with registered eth address": {
			addr: id,
			setup: func(rt *fevm.MockRuntime) {
				rt.EXPECT().ResolveAddress(id).Return(abi.ActorID(77), true)
				rt.EXPECT().LookupDelegatedAddress(abi.ActorID(77)).Return(delegated, true)
			},
			want: eth,
		},
		"actor without registered address": {
			addr: id,
			setup: func(rt *fevm.MockRuntime) {
				rt.EXPECT().ResolveAddress(id).Return(abi.ActorID(77), true)
				rt.EXPECT().LookupDelegatedAddress(abi.ActorID(77)).Return(address.Undef, false)
			},
			want: fevm.EthAddressFromID(77),
		},
		"actor with non-eth delegated address": {
			addr: id,
			setup: func(rt *fevm.MockRuntime) {
				rt.EXPECT().ResolveAddress(id).Return(abi.ActorID(77), true)
				rt.EXPECT().LookupDelegatedAddress(abi.ActorID(77)).Return(id, true)
			},
			want: fevm.EthAddressFromID(77),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rt := fevm.NewMockRuntime(ctrl)
			if test.setup != nil {
				test.setup(rt)
			}
			sys := newTestSystem(t, rt, false)
			got, err := sys.ResolveEthAddress(test.addr)
			if !errors.Is(err, test.err) {
				t.Fatalf("unexpected error, want %v, got %v", test.err, err)
			}
			if got != test.want {
				t.Errorf("unexpected address, want %v, got %v", test.want, got)
			}
		})
	}
}

func TestReadOnlyMethod(t *testing.T) {
	tests := map[abi.MethodNum]bool{
		fevm.MethodSend:                   false,
		fevm.MethodInvokeContract:         false,
		fevm.MethodInvokeContractReadOnly: true,
		fevm.MethodInvokeContractDelegate: false,
	}
	for method, want := range tests {
		if got := ReadOnlyMethod(method); got != want {
			t.Errorf("method %d: want %t, got %t", method, want, got)
		}
	}
}

func TestStorageInstructions(t *testing.T) {
	sys := newTestSystem(t, nil, false)
	s := newTestState(t, nil, nil)

	pushOperands(s, u(1), u(5))
	if err := Step(SSTORE, s, sys); err != nil {
		t.Fatalf("failed to store: %v", err)
	}
	if want, got := fevm.StorageAdded, s.StorageStatus(); want != got {
		t.Errorf("unexpected status, want %v, got %v", want, got)
	}

	pushOperands(s, u(1))
	if err := Step(SLOAD, s, sys); err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if got := s.stack.pop(); !got.Eq(u(5)) {
		t.Errorf("unexpected value, want 5, got %v", got)
	}

	// storing zero deletes the slot
	pushOperands(s, u(1), u(0))
	if err := Step(SSTORE, s, sys); err != nil {
		t.Fatalf("failed to store: %v", err)
	}
	if want, got := fevm.StorageDeleted, s.StorageStatus(); want != got {
		t.Errorf("unexpected status, want %v, got %v", want, got)
	}
	if value, err := sys.GetStorage(u(1)); err != nil || value != nil {
		t.Errorf("slot not deleted, value %v, err %v", value, err)
	}

	pushOperands(s, u(1))
	if err := Step(SLOAD, s, sys); err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if got := s.stack.pop(); !got.IsZero() {
		t.Errorf("absent slot should read as zero, got %v", got)
	}
}

func TestStorageInstructions_StoreInStaticModeIsRejected(t *testing.T) {
	sys := newTestSystem(t, nil, true)
	s := newTestState(t, nil, nil)
	pushOperands(s, u(1), u(5))
	if err := Step(SSTORE, s, sys); !errors.Is(err, fevm.ErrStaticModeViolation) {
		t.Errorf("expected %v, got %v", fevm.ErrStaticModeViolation, err)
	}
}
