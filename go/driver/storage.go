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
	"strings"

	cliUtils "github.com/Fantom-foundation/fevm/go/driver/cli"
	"github.com/Fantom-foundation/fevm/go/fevm"
	"github.com/Fantom-foundation/fevm/go/interpreter/evm"
	"github.com/Fantom-foundation/fevm/go/state"
	"github.com/dsnet/golib/unitconv"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"
)

var storageFlags = []cli.Flag{
	cliUtils.DbFlag,
	cliUtils.CacheSizeFlag,
	cliUtils.RootFlag,
}

var StorageCmd = cli.Command{
	Name:  "storage",
	Usage: "Inspect and modify contract state",
	Subcommands: []*cli.Command{
		{
			Action:    doStorageGet,
			Name:      "get",
			Usage:     "Print the value of a storage slot",
			ArgsUsage: "<key>",
			Flags:     storageFlags,
		},
		{
			Action:    doStorageSet,
			Name:      "set",
			Usage:     "Update a storage slot and print the new state root, a zero value deletes the slot",
			ArgsUsage: "<key> <value>",
			Flags:     storageFlags,
		},
		{
			Action: doStorageDump,
			Name:   "dump",
			Usage:  "Print all storage slots",
			Flags:  storageFlags,
		},
		{
			Action: doStorageStats,
			Name:   "stats",
			Usage:  "Print a summary of the contract state",
			Flags:  storageFlags,
		},
	},
}

// parseWord parses a decimal or 0x-prefixed hexadecimal 256-bit value.
func parseWord(arg string) (*uint256.Int, error) {
	if !strings.HasPrefix(arg, "0x") {
		return uint256.FromDecimal(arg)
	}
	data, err := hexutil.Decode(arg)
	if err != nil {
		return nil, err
	}
	if len(data) > 32 {
		return nil, fmt.Errorf("value %q exceeds 32 bytes", arg)
	}
	return new(uint256.Int).SetBytes(data), nil
}

func parseWordArgs(context *cli.Context, names ...string) ([]*uint256.Int, error) {
	if context.NArg() != len(names) {
		return nil, fmt.Errorf("expected arguments %v, got %d arguments", names, context.NArg())
	}
	res := make([]*uint256.Int, 0, len(names))
	for i, name := range names {
		value, err := parseWord(context.Args().Get(i))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		res = append(res, value)
	}
	return res, nil
}

// withSystem runs the given function on a System backed by the contract
// state selected by the flags. A nil runtime is sufficient since storage
// operations never reach the host.
func withSystem(context *cli.Context, readonly bool, fn func(*evm.System, *state.Trie) error) error {
	store, err := state.OpenBlockstore(cliUtils.FetchStateConfig(context))
	if err != nil {
		return err
	}
	defer store.Close()

	root, err := cliUtils.RootFlag.Fetch(context)
	if err != nil {
		return err
	}
	var trie *state.Trie
	if root.Defined() {
		trie, err = state.LoadTrie(store, root)
	} else {
		trie, err = state.NewTrie(store)
	}
	if err != nil {
		return err
	}
	return fn(evm.NewSystem(nil, trie, readonly, evm.NewConfig()), trie)
}

func doStorageGet(context *cli.Context) error {
	args, err := parseWordArgs(context, "key")
	if err != nil {
		return err
	}
	return withSystem(context, true, func(sys *evm.System, _ *state.Trie) error {
		value, err := sys.GetStorage(args[0])
		if err != nil {
			return err
		}
		if value == nil {
			fmt.Fprintln(context.App.Writer, "absent")
			return nil
		}
		fmt.Fprintln(context.App.Writer, fevm.NewWord(value))
		return nil
	})
}

func doStorageSet(context *cli.Context) error {
	args, err := parseWordArgs(context, "key", "value")
	if err != nil {
		return err
	}
	key, value := args[0], args[1]
	return withSystem(context, false, func(sys *evm.System, _ *state.Trie) error {
		status, err := sys.SetStorage(key, value)
		if err != nil {
			return err
		}
		root, err := sys.FlushState()
		if err != nil {
			return err
		}
		fmt.Fprintf(context.App.Writer, "status: %v\nroot:   %v\n", status, root)
		return nil
	})
}

func doStorageDump(context *cli.Context) error {
	return withSystem(context, true, func(_ *evm.System, trie *state.Trie) error {
		return trie.ForEach(func(key fevm.Key, value fevm.Word) bool {
			fmt.Fprintf(context.App.Writer, "%v: %v\n", key, value)
			return true
		})
	})
}

func doStorageStats(context *cli.Context) error {
	return withSystem(context, true, func(_ *evm.System, trie *state.Trie) error {
		stats, err := trie.GetStats()
		if err != nil {
			return err
		}
		out := context.App.Writer
		fmt.Fprintf(out, "slots: %d\n", stats.Slots)
		fmt.Fprintf(out, "size:  %sB\n", unitconv.FormatPrefix(float64(stats.Bytes), unitconv.IEC, 1))
		return nil
	})
}
