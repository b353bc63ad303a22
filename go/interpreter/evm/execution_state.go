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
	"github.com/Fantom-foundation/fevm/go/fevm"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/holiman/uint256"
)

// ExecutionState is the per-frame state of an interpreter invocation. It is
// created when an actor method enters the interpreter and released once the
// invocation completes. Nested calls never share an ExecutionState.
type ExecutionState struct {
	stack      *stack
	memory     *Memory
	input      []byte
	code       []byte
	returnData []byte
	method     abi.MethodNum

	storageStatus fevm.StorageStatus
}

// NewExecutionState creates the state of a frame running the given code for
// the given method with the given call input. The input is retained and must
// not be modified by the caller afterwards.
func NewExecutionState(method abi.MethodNum, input, code []byte, config Config) *ExecutionState {
	config = config.withDefaults()
	return &ExecutionState{
		stack:  NewStack(),
		memory: NewMemory(config.MaxMemorySize),
		input:  input,
		code:   code,
		method: method,
	}
}

// Release hands resources of the state back to their pools. The state must
// not be used afterwards.
func (s *ExecutionState) Release() {
	if s.stack != nil {
		ReturnStack(s.stack)
		s.stack = nil
	}
}

// Push places a value on top of the operand stack.
func (s *ExecutionState) Push(v *uint256.Int) error {
	if s.stack.len() >= maxStackSize {
		return errStackOverflow
	}
	s.stack.push(v)
	return nil
}

// Pop removes the top element of the operand stack.
func (s *ExecutionState) Pop() (uint256.Int, error) {
	if s.stack.len() == 0 {
		return uint256.Int{}, errStackUnderflow
	}
	return *s.stack.pop(), nil
}

// StackLen returns the number of elements on the operand stack.
func (s *ExecutionState) StackLen() int {
	return s.stack.len()
}

// Memory returns the linear memory of the frame.
func (s *ExecutionState) Memory() *Memory {
	return s.memory
}

// ReturnData is the output of the most recently completed sub-call.
func (s *ExecutionState) ReturnData() []byte {
	return s.returnData
}

// Method is the method number the frame was invoked with.
func (s *ExecutionState) Method() abi.MethodNum {
	return s.method
}

// StorageStatus classifies the most recent storage update of the frame.
func (s *ExecutionState) StorageStatus() fevm.StorageStatus {
	return s.storageStatus
}
