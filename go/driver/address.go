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
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/Fantom-foundation/fevm/go/fevm"
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/urfave/cli/v2"
)

var AddressCmd = cli.Command{
	Action:    doAddress,
	Name:      "address",
	Usage:     "Translate between EVM addresses and native actor addresses",
	ArgsUsage: "<0x-address | native address>",
}

func doAddress(context *cli.Context) error {
	arg := context.Args().First()
	if arg == "" {
		return fmt.Errorf("missing address argument")
	}

	var eth fevm.EthAddress
	if strings.HasPrefix(arg, "0x") {
		if err := eth.UnmarshalText([]byte(arg)); err != nil {
			return fmt.Errorf("invalid EVM address %q: %w", arg, err)
		}
	} else {
		native, err := address.NewFromString(arg)
		if err != nil {
			return fmt.Errorf("invalid native address %q: %w", arg, err)
		}
		if eth, err = ethAddressOf(native); err != nil {
			return err
		}
	}

	native, err := eth.ToNative()
	if err != nil {
		return err
	}
	out := context.App.Writer
	fmt.Fprintf(out, "evm:       %v\n", eth)
	fmt.Fprintf(out, "delegated: %v\n", native)
	if eth.IsIDAddress() {
		id, err := address.NewIDAddress(binary.BigEndian.Uint64(eth[12:]))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "id:        %v\n", id)
	}
	return nil
}

// ethAddressOf translates native addresses which do not require a lookup of
// the actor they refer to.
func ethAddressOf(native address.Address) (fevm.EthAddress, error) {
	eth, ok, err := fevm.DelegatedEthAddress(native)
	if err != nil || ok {
		return eth, err
	}
	if native.Protocol() == address.ID {
		id, err := address.IDFromAddress(native)
		if err != nil {
			return fevm.EthAddress{}, err
		}
		return fevm.EthAddressFromID(abi.ActorID(id)), nil
	}
	return fevm.EthAddress{}, fmt.Errorf("%w: %v can only be translated by resolving its actor", fevm.ErrBadAddress, native)
}
