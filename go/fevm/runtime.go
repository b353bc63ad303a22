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

import (
	"fmt"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/builtin"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/ipfs/go-cid"
)

//go:generate mockgen -source runtime.go -destination runtime_mock.go -package fevm

// Method numbers understood by EVM actors. These are protocol constants and
// must match across all contracts on the network.
const (
	MethodSend                   = builtin.MethodSend
	MethodConstructor            = builtin.MethodConstructor
	MethodInvokeContract         = abi.MethodNum(2)
	MethodGetBytecode            = abi.MethodNum(3)
	MethodGetStorageAt           = abi.MethodNum(4)
	MethodInvokeContractReadOnly = abi.MethodNum(5)
	MethodInvokeContractDelegate = abi.MethodNum(6)
)

// Runtime is the handle to the host ledger VM as seen by the executing actor.
// All invocations are synchronous; Send returns once the callee finished.
type Runtime interface {
	// Send invokes the given method on the actor at the given address,
	// transferring value. A non-nil error reports a failed invocation; errors
	// produced by the callee are of type *ActorError.
	Send(to address.Address, method abi.MethodNum, params []byte, value abi.TokenAmount) ([]byte, error)

	// ResolveAddress resolves an address to the ID of the actor it refers to.
	ResolveAddress(address.Address) (abi.ActorID, bool)

	// GetActorCodeCID returns the code identifier of an existing actor.
	GetActorCodeCID(abi.ActorID) (cid.Cid, bool)

	// ResolveBuiltinActorType maps a code identifier to a builtin actor type.
	ResolveBuiltinActorType(cid.Cid) (ActorType, bool)

	// LookupDelegatedAddress returns the predictable (delegated) address an
	// actor was registered with, if any.
	LookupDelegatedAddress(abi.ActorID) (address.Address, bool)

	// Receiver is the address of the currently executing actor.
	Receiver() address.Address
}

// ActorType enumerates the builtin actor types of the host VM.
type ActorType int

const (
	ActorSystem ActorType = iota
	ActorInit
	ActorCron
	ActorAccount
	ActorPower
	ActorMiner
	ActorMarket
	ActorPaymentChannel
	ActorMultisig
	ActorReward
	ActorVerifiedRegistry
	ActorDataCap
	ActorEmbryo
	ActorEVM
	ActorEAM
)

func (t ActorType) String() string {
	switch t {
	case ActorSystem:
		return "system"
	case ActorInit:
		return "init"
	case ActorCron:
		return "cron"
	case ActorAccount:
		return "account"
	case ActorPower:
		return "storagepower"
	case ActorMiner:
		return "storageminer"
	case ActorMarket:
		return "storagemarket"
	case ActorPaymentChannel:
		return "paymentchannel"
	case ActorMultisig:
		return "multisig"
	case ActorReward:
		return "reward"
	case ActorVerifiedRegistry:
		return "verifiedregistry"
	case ActorDataCap:
		return "datacap"
	case ActorEmbryo:
		return "embryo"
	case ActorEVM:
		return "evm"
	case ActorEAM:
		return "eam"
	}
	return fmt.Sprintf("ActorType(%d)", t)
}

// AcceptsOnlySends reports whether actors of this type cannot run a contract
// invocation method and must be addressed through a plain value transfer.
func (t ActorType) AcceptsOnlySends() bool {
	return t == ActorAccount || t == ActorEmbryo
}

// ActorError is the failure of an actor invocation on the host, carrying the
// native exit code.
type ActorError struct {
	Code exitcode.ExitCode
	Msg  string
}

// NewActorError creates an ActorError with a formatted message.
func NewActorError(code exitcode.ExitCode, format string, args ...any) *ActorError {
	return &ActorError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func (e *ActorError) Error() string {
	return fmt.Sprintf("actor error (exit code %d): %s", int64(e.Code), e.Msg)
}
