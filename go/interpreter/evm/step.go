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

import "github.com/Fantom-foundation/fevm/go/fevm"

// Step executes a single instruction of the call-dispatch and storage family
// on the given frame. A non-nil error aborts the instruction; a reverted
// sub-call is reported through the stack and is not an error.
func Step(op OpCode, s *ExecutionState, sys *System) error {
	if err := checkStackLimits(op, s.stack.len()); err != nil {
		return err
	}

	switch op {
	case CALLDATALOAD:
		opCallDataLoad(s)
	case CALLDATASIZE:
		opCallDataSize(s)
	case CALLDATACOPY:
		return opCallDataCopy(s)
	case CODESIZE:
		opCodeSize(s)
	case CODECOPY:
		return opCodeCopy(s)
	case RETURNDATASIZE:
		opReturnDataSize(s)
	case RETURNDATACOPY:
		return opReturnDataCopy(s)
	case METHODNUM:
		opMethodNum(s)
	case SLOAD:
		return opSload(s, sys)
	case SSTORE:
		return opSstore(s, sys)
	case CALL:
		return opCall(s, sys, fevm.Call)
	case CALLCODE:
		return opCall(s, sys, fevm.CallCode)
	case DELEGATECALL:
		return opCall(s, sys, fevm.DelegateCall)
	case STATICCALL:
		return opCall(s, sys, fevm.StaticCall)
	case CALLACTOR:
		return opCallActor(s, sys)
	}
	return nil
}
