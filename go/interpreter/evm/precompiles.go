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
	"github.com/ethereum/go-ethereum/common"
	geth "github.com/ethereum/go-ethereum/core/vm"
	"github.com/holiman/uint256"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Precompiles executes calls to reserved addresses implemented natively
// instead of by interpreted bytecode.
type Precompiles interface {
	// IsPrecompile reports whether the given destination word addresses a
	// precompiled contract.
	IsPrecompile(destination *uint256.Int) bool
	// Run executes the precompile at the given destination. An error
	// indicates a failure of the precompile.
	Run(destination *uint256.Int, input []byte) ([]byte, error)
}

// gethPrecompiles serves precompiles from a go-ethereum precompile set.
type gethPrecompiles struct {
	contracts map[common.Address]geth.PrecompiledContract
}

// NewCancunPrecompiles returns the precompiles of the Cancun revision.
func NewCancunPrecompiles() Precompiles {
	return gethPrecompiles{contracts: geth.PrecompiledContractsCancun}
}

func (p gethPrecompiles) lookup(destination *uint256.Int) (geth.PrecompiledContract, bool) {
	if destination.BitLen() > 160 {
		return nil, false
	}
	contract, found := p.contracts[common.Address(destination.Bytes20())]
	return contract, found
}

func (p gethPrecompiles) IsPrecompile(destination *uint256.Int) bool {
	_, found := p.lookup(destination)
	return found
}

func (p gethPrecompiles) Run(destination *uint256.Int, input []byte) ([]byte, error) {
	contract, found := p.lookup(destination)
	if !found {
		return nil, fevm.ErrPrecompileFailure
	}
	return contract.Run(input)
}

// PrecompileAddresses lists the addresses of the precompiles of the Cancun
// revision in ascending order.
func PrecompileAddresses() []fevm.EthAddress {
	addresses := maps.Keys(geth.PrecompiledContractsCancun)
	slices.SortFunc(addresses, func(a, b common.Address) int {
		return a.Cmp(b)
	})
	res := make([]fevm.EthAddress, 0, len(addresses))
	for _, addr := range addresses {
		res = append(res, fevm.EthAddress(addr))
	}
	return res
}
