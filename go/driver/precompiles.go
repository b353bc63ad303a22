// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	"github.com/Fantom-foundation/fevm/go/interpreter/evm"
	"github.com/urfave/cli/v2"
)

var PrecompilesCmd = cli.Command{
	Action: doPrecompiles,
	Name:   "precompiles",
	Usage:  "List the addresses served by precompiled contracts",
}

func doPrecompiles(context *cli.Context) error {
	for _, addr := range evm.PrecompileAddresses() {
		fmt.Fprintln(context.App.Writer, addr)
	}
	return nil
}
