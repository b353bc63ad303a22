// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package fevm

// ConstError is an error type that can be used to define immutable
// error constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// The errors below abort the instruction that produced them. A failing
// sub-call is not an error; it is reported to the calling contract by a zero
// success flag on its stack.
const (
	ErrInvalidMemoryAccess = ConstError("invalid memory access")
	ErrStaticModeViolation = ConstError("static mode violation")
	ErrPrecompileFailure   = ConstError("precompile failure")
	ErrBadAddress          = ConstError("bad address")
	ErrArgumentOutOfRange  = ConstError("argument out of range")
	ErrInternal            = ConstError("internal error")
	ErrIllegalState        = ConstError("illegal state")
	ErrSerialization       = ConstError("serialization failure")
	ErrStackUnderflow      = ConstError("stack underflow")
	ErrStackOverflow       = ConstError("stack overflow")
	ErrInvalidOpCode       = ConstError("invalid opcode")
	ErrCallCodeUnsupported = ConstError("CALLCODE is not supported")
)
