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
	"bytes"
	"errors"
	"testing"

	"github.com/Fantom-foundation/fevm/go/fevm"
	"github.com/holiman/uint256"
)

// newTestState creates an execution state for the given input and code and
// releases it at the end of the test.
func newTestState(t *testing.T, input, code []byte) *ExecutionState {
	t.Helper()
	s := NewExecutionState(fevm.MethodInvokeContract, input, code, Config{})
	t.Cleanup(s.Release)
	return s
}

// pushOperands places the given operands on the stack such that the first
// operand is on top.
func pushOperands(s *ExecutionState, operands ...*uint256.Int) {
	for i := len(operands) - 1; i >= 0; i-- {
		s.stack.push(operands[i])
	}
}

func u(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

func TestCallDataLoad(t *testing.T) {
	input := make([]byte, 40)
	for i := range input {
		input[i] = byte(i + 1)
	}

	tests := map[string]struct {
		index *uint256.Int
		want  []byte
	}{
		"start": {
			index: u(0),
			want:  input[:32],
		},
		"last five bytes": {
			index: u(uint64(len(input) - 5)),
			want:  append(bytes.Clone(input[35:]), make([]byte, 27)...),
		},
		"at input length": {
			index: u(uint64(len(input))),
			want:  make([]byte, 32),
		},
		"beyond input": {
			index: u(1000),
			want:  make([]byte, 32),
		},
		"beyond 64 bit": {
			index: new(uint256.Int).Lsh(u(1), 100),
			want:  make([]byte, 32),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestState(t, input, nil)
			pushOperands(s, test.index)
			if err := Step(CALLDATALOAD, s, nil); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := s.stack.pop().Bytes32()
			if !bytes.Equal(got[:], test.want) {
				t.Errorf("unexpected result, want %x, got %x", test.want, got)
			}
		})
	}
}

func TestCallDataLoad_EmptyInputYieldsZero(t *testing.T) {
	s := newTestState(t, nil, nil)
	pushOperands(s, u(0))
	if err := Step(CALLDATALOAD, s, nil); err != nil {
		t.Fatal(err)
	}
	if !s.stack.pop().IsZero() {
		t.Errorf("expected zero")
	}
}

func TestSizeInstructions(t *testing.T) {
	s := newTestState(t, make([]byte, 7), make([]byte, 13))
	s.returnData = make([]byte, 3)
	s.method = 42

	tests := map[OpCode]uint64{
		CALLDATASIZE:   7,
		CODESIZE:       13,
		RETURNDATASIZE: 3,
		METHODNUM:      42,
	}
	for op, want := range tests {
		if err := Step(op, s, nil); err != nil {
			t.Fatalf("%v: unexpected error %v", op, err)
		}
		if got := s.stack.pop(); !got.Eq(u(want)) {
			t.Errorf("%v: want %d, got %v", op, want, got)
		}
	}
}

func TestCopyInstructions_ZeroFillBeyondData(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}

	tests := map[string]struct {
		dataOffset *uint256.Int
		size       uint64
		want       []byte
	}{
		"all":             {u(0), 6, data},
		"padded":          {u(4), 5, []byte{5, 6, 0, 0, 0}},
		"beyond":          {u(10), 3, []byte{0, 0, 0}},
		"huge offset":     {new(uint256.Int).SetAllOne(), 2, []byte{0, 0}},
		"zero size":       {u(2), 0, []byte{}},
		"middle of input": {u(1), 2, []byte{2, 3}},
	}

	for _, op := range []OpCode{CALLDATACOPY, CODECOPY} {
		for name, test := range tests {
			t.Run(op.String()+"/"+name, func(t *testing.T) {
				s := newTestState(t, data, data)
				// make sure stale memory content is overwritten
				if _, err := s.memory.resolveRegion(u(0), u(64)); err != nil {
					t.Fatal(err)
				}
				for i := range s.memory.store {
					s.memory.store[i] = 0xee
				}
				pushOperands(s, u(8), test.dataOffset, u(test.size))
				if err := Step(op, s, nil); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				got := s.memory.store[8 : 8+test.size]
				if !bytes.Equal(got, test.want) {
					t.Errorf("unexpected memory content, want %x, got %x", test.want, got)
				}
			})
		}
	}
}

func TestReturnDataCopy(t *testing.T) {
	tests := map[string]struct {
		dataOffset, size *uint256.Int
		want             []byte
		err              error
	}{
		"all":           {u(0), u(4), []byte{1, 2, 3, 4}, nil},
		"tail":          {u(2), u(2), []byte{3, 4}, nil},
		"empty at end":  {u(4), u(0), []byte{}, nil},
		"beyond":        {u(3), u(2), nil, fevm.ErrInvalidMemoryAccess},
		"huge offset":   {new(uint256.Int).SetAllOne(), u(1), nil, fevm.ErrInvalidMemoryAccess},
		"offset beyond": {u(5), u(0), nil, fevm.ErrInvalidMemoryAccess},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestState(t, nil, nil)
			s.returnData = []byte{1, 2, 3, 4}
			pushOperands(s, u(0), test.dataOffset, test.size)
			err := Step(RETURNDATACOPY, s, nil)
			if !errors.Is(err, test.err) {
				t.Fatalf("unexpected error, want %v, got %v", test.err, err)
			}
			if err != nil {
				return
			}
			if got := s.memory.Data()[:len(test.want)]; !bytes.Equal(got, test.want) {
				t.Errorf("unexpected memory content, want %x, got %x", test.want, got)
			}
		})
	}
}
