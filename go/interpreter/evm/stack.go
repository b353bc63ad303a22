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
	"fmt"
	"strings"
	"sync"

	"github.com/holiman/uint256"
)

const maxStackSize = 1024 // Maximum size of VM stack allowed.

// stack is the 1024-element 256-bit word-wide operand stack of a call frame.
// Bounds are not checked by the individual operations; Step validates the
// stack usage of an instruction before executing it.
//
// Stacks are obtained from a pool through NewStack and handed back with
// ReturnStack once the owning frame is done. The stack is not thread-safe.
type stack struct {
	data         [maxStackSize]uint256.Int
	stackPointer int
}

// push adds a copy of the given value to the top of the stack.
func (s *stack) push(d *uint256.Int) {
	s.data[s.stackPointer] = *d
	s.stackPointer++
}

// pushUint64 adds the given small value to the top of the stack.
func (s *stack) pushUint64(v uint64) {
	s.data[s.stackPointer].SetUint64(v)
	s.stackPointer++
}

// pop removes the top element from the stack and returns a pointer to it. The
// obtained pointer is only valid until the next push operation.
func (s *stack) pop() *uint256.Int {
	s.stackPointer--
	return &s.data[s.stackPointer]
}

// peek returns a pointer to the top element of the stack without removing it.
func (s *stack) peek() *uint256.Int {
	return &s.data[s.len()-1]
}

// peekN returns a pointer to the n-th element from the top of the stack. The
// top element is at index 0.
func (s *stack) peekN(n int) *uint256.Int {
	return &s.data[s.len()-n-1]
}

// len returns the number of elements on the stack.
func (s *stack) len() int {
	return s.stackPointer
}

func (s *stack) String() string {
	b := strings.Builder{}
	for i := 0; i < s.len(); i++ {
		b.WriteString(fmt.Sprintf("    [%4d] %v\n", s.len()-i-1, s.peekN(i).Hex()))
	}
	return b.String()
}

// ------------------ Stack Pool ------------------

var stackPool = sync.Pool{
	New: func() interface{} {
		return &stack{}
	},
}

// NewStack returns an empty stack from the reuse pool. This function is
// thread-safe.
func NewStack() *stack {
	return stackPool.Get().(*stack)
}

// ReturnStack returns the stack to the reuse pool. Any stack may only be
// returned once. This function is thread-safe.
func ReturnStack(s *stack) {
	s.stackPointer = 0
	stackPool.Put(s)
}

// ------------------ Stack Usage ------------------

// stackUsage is the number of elements an instruction pops from and pushes
// onto the stack.
type stackUsage struct {
	pops, pushes int
}

// checkStackLimits verifies that the given opcode can be executed on a stack
// of the given size without under- or overflowing it.
func checkStackLimits(op OpCode, stackLen int) error {
	usage, err := computeStackUsage(op)
	if err != nil {
		return err
	}
	if stackLen < usage.pops {
		return fmt.Errorf("%w: %v requires %d elements, got %d", errStackUnderflow, op, usage.pops, stackLen)
	}
	if stackLen-usage.pops+usage.pushes > maxStackSize {
		return fmt.Errorf("%w: %v on stack of size %d", errStackOverflow, op, stackLen)
	}
	return nil
}

func computeStackUsage(op OpCode) (stackUsage, error) {
	switch op {
	case CALLDATASIZE, CODESIZE, RETURNDATASIZE, METHODNUM:
		return stackUsage{0, 1}, nil
	case CALLDATALOAD, SLOAD:
		return stackUsage{1, 1}, nil
	case SSTORE:
		return stackUsage{2, 0}, nil
	case CALLDATACOPY, CODECOPY, RETURNDATACOPY:
		return stackUsage{3, 0}, nil
	case CALL, CALLCODE:
		return stackUsage{7, 1}, nil
	case DELEGATECALL, STATICCALL, CALLACTOR:
		return stackUsage{6, 1}, nil
	}
	return stackUsage{}, fmt.Errorf("%w: %v", errInvalidOpCode, op)
}
