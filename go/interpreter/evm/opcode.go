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

import geth "github.com/ethereum/go-ethereum/core/vm"

// OpCode identifies an instruction of the call-dispatch and storage family
// executed by Step.
type OpCode byte

// Standard EVM opcodes, in the numbering of the EVM.
const (
	CALLDATALOAD   = OpCode(geth.CALLDATALOAD)
	CALLDATASIZE   = OpCode(geth.CALLDATASIZE)
	CALLDATACOPY   = OpCode(geth.CALLDATACOPY)
	CODESIZE       = OpCode(geth.CODESIZE)
	CODECOPY       = OpCode(geth.CODECOPY)
	RETURNDATASIZE = OpCode(geth.RETURNDATASIZE)
	RETURNDATACOPY = OpCode(geth.RETURNDATACOPY)
	SLOAD          = OpCode(geth.SLOAD)
	SSTORE         = OpCode(geth.SSTORE)
	CALL           = OpCode(geth.CALL)
	CALLCODE       = OpCode(geth.CALLCODE)
	DELEGATECALL   = OpCode(geth.DELEGATECALL)
	STATICCALL     = OpCode(geth.STATICCALL)
)

// Actor specific opcodes, placed in a range left unassigned by the EVM.
const (
	CALLACTOR OpCode = 0xdb
	METHODNUM OpCode = 0xdc
)

func (op OpCode) String() string {
	switch op {
	case CALLACTOR:
		return "CALLACTOR"
	case METHODNUM:
		return "METHODNUM"
	}
	return geth.OpCode(op).String()
}
