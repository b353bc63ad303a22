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

	"github.com/Fantom-foundation/fevm/go/fevm"
	"github.com/holiman/uint256"
)

func opCallDataLoad(s *ExecutionState) {
	top := s.stack.peek()
	if !top.IsUint64() || top.Uint64() >= uint64(len(s.input)) {
		top.Clear()
		return
	}
	var data [32]byte
	copy(data[:], s.input[top.Uint64():])
	top.SetBytes32(data[:])
}

func opCallDataSize(s *ExecutionState) {
	s.stack.pushUint64(uint64(len(s.input)))
}

func opCallDataCopy(s *ExecutionState) error {
	return copyDataToMemory(s, s.input)
}

func opCodeSize(s *ExecutionState) {
	s.stack.pushUint64(uint64(len(s.code)))
}

func opCodeCopy(s *ExecutionState) error {
	return copyDataToMemory(s, s.code)
}

func opReturnDataSize(s *ExecutionState) {
	s.stack.pushUint64(uint64(len(s.returnData)))
}

// opReturnDataCopy aborts on any attempt to read beyond the return data,
// unlike the copy instructions for input and code.
func opReturnDataCopy(s *ExecutionState) error {
	memOffset := s.stack.pop()
	dataOffset := s.stack.pop()
	size := s.stack.pop()

	available := uint64(len(s.returnData))
	end, overflow := new(uint256.Int).AddOverflow(dataOffset, size)
	if overflow || !end.IsUint64() || end.Uint64() > available {
		return fmt.Errorf("%w: return data copy [%v, %v) of %d bytes",
			fevm.ErrInvalidMemoryAccess, dataOffset.Dec(), end.Dec(), available)
	}
	return s.memory.copyToMemory(memOffset, size, dataOffset.Uint64(), s.returnData)
}

func opMethodNum(s *ExecutionState) {
	s.stack.pushUint64(uint64(s.method))
}

// copyDataToMemory pops a memory offset, a data offset and a size and copies
// the selected range of data to memory. Bytes beyond the end of the data are
// read as zero.
func copyDataToMemory(s *ExecutionState, data []byte) error {
	memOffset := s.stack.pop()
	dataOffset := s.stack.pop()
	size := s.stack.pop()

	skip := uint64(len(data))
	if dataOffset.IsUint64() && dataOffset.Uint64() < skip {
		skip = dataOffset.Uint64()
	}
	return s.memory.copyToMemory(memOffset, size, skip, data)
}
