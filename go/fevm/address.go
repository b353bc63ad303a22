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
	"encoding/binary"
	"fmt"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/holiman/uint256"
	"github.com/multiformats/go-varint"
)

// EAMActorID is the ID of the Ethereum Address Manager. Native addresses
// delegated to this namespace carry a raw 20-byte EVM address.
const EAMActorID uint64 = 10

// EthAddress represents the 160-bit (20 bytes) address of an EVM account.
type EthAddress [20]byte

// idAddressPrefix marks EVM addresses synthesized from actor IDs.
const idAddressPrefix = 0xff

func (a EthAddress) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

func (a EthAddress) MarshalText() ([]byte, error) {
	return bytesToText(a[:])
}

func (a *EthAddress) UnmarshalText(data []byte) error {
	return textToBytes(a[:], data)
}

// ToWord returns the address as a right-aligned stack value.
func (a EthAddress) ToWord() *uint256.Int {
	return new(uint256.Int).SetBytes20(a[:])
}

// ToNative wraps the address into a delegated native address under the
// EAM namespace.
func (a EthAddress) ToNative() (address.Address, error) {
	res, err := address.NewDelegatedAddress(EAMActorID, a[:])
	if err != nil {
		return address.Undef, fmt.Errorf("%w: %v", ErrBadAddress, err)
	}
	return res, nil
}

// IsIDAddress reports whether the address was synthesized from an actor ID
// by EthAddressFromID.
func (a EthAddress) IsIDAddress() bool {
	if a[0] != idAddressPrefix {
		return false
	}
	for _, b := range a[1:12] {
		if b != 0 {
			return false
		}
	}
	return true
}

// EthAddressFromID derives the fallback EVM address of an actor without a
// registered EVM address: 0xff, eleven zero bytes, then the big-endian ID.
func EthAddressFromID(id abi.ActorID) EthAddress {
	var res EthAddress
	res[0] = idAddressPrefix
	binary.BigEndian.PutUint64(res[12:], uint64(id))
	return res
}

// EthAddressFromWord interprets a stack value as an EVM address. Values with
// any of the upper 12 bytes set are not addresses.
func EthAddressFromWord(v *uint256.Int) (EthAddress, error) {
	if v.BitLen() > 160 {
		return EthAddress{}, fmt.Errorf("%w: %v exceeds 20 bytes", ErrBadAddress, v.Hex())
	}
	return EthAddress(v.Bytes20()), nil
}

// DelegatedEthAddress extracts the EVM address embedded in a native address
// of the EAM namespace. The boolean result is false if the address is not
// delegated to the EAM. A subaddress of the wrong length is a protocol
// violation and reported as ErrBadAddress.
func DelegatedEthAddress(addr address.Address) (EthAddress, bool, error) {
	if addr.Protocol() != address.Delegated {
		return EthAddress{}, false, nil
	}
	payload := addr.Payload()
	namespace, n, err := varint.FromUvarint(payload)
	if err != nil {
		return EthAddress{}, false, fmt.Errorf("%w: malformed delegated address %v: %v", ErrBadAddress, addr, err)
	}
	if namespace != EAMActorID {
		return EthAddress{}, false, nil
	}
	subaddress := payload[n:]
	if len(subaddress) != len(EthAddress{}) {
		return EthAddress{}, true, fmt.Errorf("%w: invalid ethereum address length %d", ErrBadAddress, len(subaddress))
	}
	return EthAddress(subaddress), true, nil
}
