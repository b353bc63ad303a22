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
	"fmt"

	"github.com/Fantom-foundation/fevm/go/fevm"
	"github.com/ethereum/go-ethereum/log"
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/holiman/uint256"
	"github.com/ipfs/go-cid"
)

// message is an invocation of another actor prepared by a call instruction.
type message struct {
	to     address.Address
	method abi.MethodNum
	params []byte
	value  abi.TokenAmount
}

// opCall executes the call-like instruction of the given kind. Failures of
// the invoked actor are reported by pushing 0 and leave the return data and
// memory untouched. Errors returned by opCall abort the instruction.
func opCall(s *ExecutionState, sys *System, kind fevm.CallKind) error {
	// gas is ignored, the host does not support gas limits for sends
	_ = s.stack.pop()
	dst := *s.stack.pop()
	var value uint256.Int
	if kind.HasValueOperand() {
		value = *s.stack.pop()
	}
	inOffset := *s.stack.pop()
	inSize := *s.stack.pop()
	outOffset := *s.stack.pop()
	outSize := *s.stack.pop()

	if sys.readonly && !value.IsZero() {
		return fmt.Errorf("%w: %v transferring %v", fevm.ErrStaticModeViolation, kind, value.Dec())
	}

	inRegion, err := s.memory.resolveRegion(&inOffset, &inSize)
	if err != nil {
		return err
	}
	// output placement may alias the input, so the input is copied
	input := bytes.Clone(s.memory.slice(inRegion))

	var result []byte
	if sys.config.Precompiles.IsPrecompile(&dst) {
		log.Trace("Calling precompile", "address", dst.Hex(), "input", len(input))
		if result, err = sys.config.Precompiles.Run(&dst, input); err != nil {
			return fmt.Errorf("%w: precompile %v: %v", fevm.ErrPrecompileFailure, dst.Hex(), err)
		}
	} else {
		var msg *message
		switch kind {
		case fevm.Call, fevm.StaticCall:
			msg, err = prepareCall(sys, kind, &dst, &value, input)
		case fevm.DelegateCall:
			msg, err = prepareDelegateCall(sys, &dst, input)
		case fevm.CallCode:
			err = fevm.ErrCallCodeUnsupported
		default:
			err = fmt.Errorf("%w: unknown call kind %v", fevm.ErrInternal, kind)
		}
		if err != nil {
			return err
		}

		if msg != nil {
			raw, err := sys.Send(msg.to, msg.method, msg.params, msg.value)
			if err != nil {
				log.Debug("Call reverted", "kind", kind, "to", msg.to, "err", err)
				s.stack.pushUint64(0)
				return nil
			}
			if result, err = decodeCallResult(raw); err != nil {
				return err
			}
		}
	}

	s.returnData = result
	if err := s.memory.copyToMemory(&outOffset, &outSize, 0, result); err != nil {
		return err
	}
	s.stack.pushUint64(1)
	return nil
}

// prepareCall selects the method used to reach the destination of a CALL or
// STATICCALL. A nil message denotes a call that succeeds without invoking
// anything.
func prepareCall(sys *System, kind fevm.CallKind, dst, value *uint256.Int, input []byte) (*message, error) {
	to, err := nativeAddress(dst)
	if err != nil {
		return nil, err
	}

	exists := false
	actorType, isBuiltin := fevm.ActorType(0), false
	if id, found := sys.rt.ResolveAddress(to); found {
		if code, found := sys.rt.GetActorCodeCID(id); found {
			exists = true
			actorType, isBuiltin = sys.rt.ResolveBuiltinActorType(code)
		}
	}

	// accounts only come into existence by receiving value
	if !exists && value.IsZero() {
		log.Trace("Call to non-existing actor is a no-op", "to", to)
		return nil, nil
	}

	var method abi.MethodNum
	switch {
	case !exists || (isBuiltin && actorType.AcceptsOnlySends()):
		method = fevm.MethodSend
	case sys.readonly || kind == fevm.StaticCall:
		method = fevm.MethodInvokeContractReadOnly
	default:
		method = fevm.MethodInvokeContract
	}

	params, err := fevm.EncodeBytesParams(input)
	if err != nil {
		return nil, err
	}
	log.Trace("Dispatching call", "kind", kind, "to", to, "method", method, "exists", exists)
	return &message{
		to:     to,
		method: method,
		params: params,
		value:  tokenAmount(value),
	}, nil
}

// prepareDelegateCall builds the invocation of the executing actor itself
// running the code of the destination. The read-only mode of the caller is
// inherited.
func prepareDelegateCall(sys *System, dst *uint256.Int, input []byte) (*message, error) {
	code, err := getBytecodeCID(sys, dst)
	if err != nil {
		return nil, err
	}
	params, err := fevm.EncodeDelegateCallParams(fevm.DelegateCallParams{
		Code:     code,
		Input:    input,
		ReadOnly: sys.readonly,
	})
	if err != nil {
		return nil, err
	}
	log.Trace("Dispatching delegate call", "code", code, "readonly", sys.readonly)
	return &message{
		to:     sys.rt.Receiver(),
		method: fevm.MethodInvokeContractDelegate,
		params: params,
		value:  big.Zero(),
	}, nil
}

// getBytecodeCID fetches the identifier of the bytecode of the EVM contract
// at the given destination.
func getBytecodeCID(sys *System, dst *uint256.Int) (cid.Cid, error) {
	to, err := nativeAddress(dst)
	if err != nil {
		return cid.Undef, err
	}
	raw, err := sys.Send(to, fevm.MethodGetBytecode, nil, big.Zero())
	if err != nil {
		return cid.Undef, fmt.Errorf("%w: failed to get bytecode of %v: %v", fevm.ErrInternal, to, err)
	}
	code, err := fevm.DecodeCid(raw)
	if err != nil {
		return cid.Undef, fmt.Errorf("bytecode of %v: %w", to, err)
	}
	return code, nil
}

// decodeCallResult unwraps the output of a successful invocation. An empty
// result is produced by sends and is not enveloped.
func decodeCallResult(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	return fevm.DecodeBytesParams(raw)
}

// opCallActor invokes an arbitrary method of another actor. Unlike opCall,
// a failure of the invoked actor pushes its exit code and a success pushes 0.
// The result is only accessible through the return data.
func opCallActor(s *ExecutionState, sys *System) error {
	// arbitrary methods can not be restricted to read-only behavior
	if sys.readonly {
		return fmt.Errorf("%w: CALLACTOR in static mode", fevm.ErrStaticModeViolation)
	}

	_ = s.stack.pop()
	dst := *s.stack.pop()
	value := *s.stack.pop()
	method := *s.stack.pop()
	inOffset := *s.stack.pop()
	inSize := *s.stack.pop()

	inRegion, err := s.memory.resolveRegion(&inOffset, &inSize)
	if err != nil {
		return err
	}
	to, err := nativeAddress(&dst)
	if err != nil {
		return err
	}
	if !method.IsUint64() {
		return fmt.Errorf("%w: bad method number %v", fevm.ErrArgumentOutOfRange, method.Dec())
	}
	input := bytes.Clone(s.memory.slice(inRegion))

	res, err := sys.Send(to, abi.MethodNum(method.Uint64()), input, tokenAmount(&value))
	if err != nil {
		actorErr, ok := isActorError(err)
		if !ok {
			return fmt.Errorf("%w: %v", fevm.ErrInternal, err)
		}
		s.stack.pushUint64(uint64(actorErr.Code))
		return nil
	}
	s.returnData = res
	s.stack.pushUint64(0)
	return nil
}

// nativeAddress converts a destination word into the host address of the
// EVM account it denotes.
func nativeAddress(dst *uint256.Int) (address.Address, error) {
	eth, err := fevm.EthAddressFromWord(dst)
	if err != nil {
		return address.Undef, err
	}
	return eth.ToNative()
}

func tokenAmount(value *uint256.Int) abi.TokenAmount {
	if value.IsZero() {
		return big.Zero()
	}
	return big.NewFromGo(value.ToBig())
}
