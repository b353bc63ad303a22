// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cliUtils

import (
	"fmt"
	"log/slog"

	"github.com/Fantom-foundation/fevm/go/state"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ipfs/go-cid"
	"github.com/urfave/cli/v2"
)

type dbFlagType struct {
	cli.StringFlag
}

var DbFlag = &dbFlagType{
	cli.StringFlag{
		Name:      "db",
		Usage:     "directory of the block database, blocks are kept in memory if empty",
		TakesFile: true,
	},
}

func (f *dbFlagType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}

type cacheSizeFlagType struct {
	cli.IntFlag
}

var CacheSizeFlag = &cacheSizeFlagType{
	cli.IntFlag{
		Name:  "cache-size",
		Usage: "number of blocks cached in memory, negative values disable the cache",
		Value: state.DefaultCacheSize,
	},
}

func (f *cacheSizeFlagType) Fetch(context *cli.Context) int {
	return context.Int(f.Name)
}

// FetchStateConfig collects the block store configuration from the flags.
func FetchStateConfig(context *cli.Context) state.Config {
	return state.Config{
		Path:      DbFlag.Fetch(context),
		CacheSize: CacheSizeFlag.Fetch(context),
	}
}

type rootFlagType struct {
	cli.StringFlag
}

var RootFlag = &rootFlagType{
	cli.StringFlag{
		Name:    "root",
		Aliases: []string{"r"},
		Usage:   "root of the contract state, an empty state is used if not set",
	},
}

// Fetch returns the configured root or cid.Undef if none is set.
func (f *rootFlagType) Fetch(context *cli.Context) (cid.Cid, error) {
	value := context.String(f.Name)
	if value == "" {
		return cid.Undef, nil
	}
	root, err := cid.Decode(value)
	if err != nil {
		return cid.Undef, fmt.Errorf("invalid state root %q: %w", value, err)
	}
	return root, nil
}

type verbosityFlagType struct {
	cli.IntFlag
}

var VerbosityFlag = &verbosityFlagType{
	cli.IntFlag{
		Name:  "verbosity",
		Usage: "log level, 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 3,
	},
}

func (f *verbosityFlagType) Fetch(context *cli.Context) slog.Level {
	return log.FromLegacyLevel(context.Int(f.Name))
}

// SetupLogging installs the root logger at the level selected by the
// verbosity flag.
func SetupLogging(context *cli.Context) error {
	handler := log.NewTerminalHandlerWithLevel(context.App.ErrWriter, VerbosityFlag.Fetch(context), false)
	log.SetDefault(log.NewLogger(handler))
	return nil
}
