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

// Config provides a set of user-definable options for the EVM interpreter
// of an actor.
type Config struct {
	// MaxMemorySize is the upper bound of linear memory growth in bytes.
	// Accesses requiring more memory abort with ErrInvalidMemoryAccess.
	MaxMemorySize uint64
	// Precompiles executes calls targeting reserved precompile addresses.
	Precompiles Precompiles
}

// DefaultMaxMemorySize is the memory bound used if no explicit bound is
// configured.
const DefaultMaxMemorySize = 32 << 20

// NewConfig returns the default configuration.
func NewConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.MaxMemorySize == 0 {
		c.MaxMemorySize = DefaultMaxMemorySize
	}
	if c.Precompiles == nil {
		c.Precompiles = NewCancunPrecompiles()
	}
	return c
}
