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
)

func TestStep_StackUnderflowIsDetected(t *testing.T) {
	tests := map[OpCode]int{
		CALLDATALOAD:   1,
		CALLDATACOPY:   3,
		CODECOPY:       3,
		RETURNDATACOPY: 3,
		SLOAD:          1,
		SSTORE:         2,
		CALL:           7,
		CALLCODE:       7,
		DELEGATECALL:   6,
		STATICCALL:     6,
		CALLACTOR:      6,
	}

	for op, pops := range tests {
		t.Run(op.String(), func(t *testing.T) {
			s := newTestState(t, nil, nil)
			for i := 0; i < pops-1; i++ {
				s.stack.pushUint64(0)
			}
			if err := Step(op, s, nil); !errors.Is(err, fevm.ErrStackUnderflow) {
				t.Errorf("expected %v, got %v", fevm.ErrStackUnderflow, err)
			}
		})
	}
}

func TestStep_StackOverflowIsDetected(t *testing.T) {
	for _, op := range []OpCode{CALLDATASIZE, CODESIZE, RETURNDATASIZE, METHODNUM} {
		t.Run(op.String(), func(t *testing.T) {
			s := newTestState(t, nil, nil)
			for i := 0; i < maxStackSize; i++ {
				s.stack.pushUint64(0)
			}
			if err := Step(op, s, nil); !errors.Is(err, fevm.ErrStackOverflow) {
				t.Errorf("expected %v, got %v", fevm.ErrStackOverflow, err)
			}
		})
	}
}

func TestStep_UnsupportedOpCodesAreRejected(t *testing.T) {
	s := newTestState(t, nil, nil)
	for _, op := range []OpCode{0x00, 0x01, 0x60, 0xf0, 0xff} {
		if err := Step(op, s, nil); !errors.Is(err, fevm.ErrInvalidOpCode) {
			t.Errorf("%v: expected %v, got %v", op, fevm.ErrInvalidOpCode, err)
		}
	}
}

func TestOpCode_String(t *testing.T) {
	tests := map[OpCode]string{
		CALL:         "CALL",
		DELEGATECALL: "DELEGATECALL",
		SSTORE:       "SSTORE",
		CALLACTOR:    "CALLACTOR",
		METHODNUM:    "METHODNUM",
	}
	for op, want := range tests {
		if got := op.String(); got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}
}

func TestExecutionState_StackAccess(t *testing.T) {
	s := newTestState(t, nil, nil)
	if _, err := s.Pop(); !errors.Is(err, fevm.ErrStackUnderflow) {
		t.Errorf("expected %v, got %v", fevm.ErrStackUnderflow, err)
	}
	if err := s.Push(u(3)); err != nil {
		t.Fatal(err)
	}
	if s.StackLen() != 1 {
		t.Errorf("unexpected stack size %d", s.StackLen())
	}
	v, err := s.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if !v.Eq(u(3)) {
		t.Errorf("unexpected value %v", v)
	}
	for i := 0; i < maxStackSize; i++ {
		if err := s.Push(u(0)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Push(u(0)); !errors.Is(err, fevm.ErrStackOverflow) {
		t.Errorf("expected %v, got %v", fevm.ErrStackOverflow, err)
	}
}
