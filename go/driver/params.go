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

	"github.com/Fantom-foundation/fevm/go/fevm"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ipfs/go-cid"
	"github.com/urfave/cli/v2"
)

var ParamsCmd = cli.Command{
	Name:  "params",
	Usage: "Encode and decode payloads exchanged between actors",
	Subcommands: []*cli.Command{
		{
			Action:    doWrap,
			Name:      "wrap",
			Usage:     "Wrap call input into the byte envelope",
			ArgsUsage: "<0x-data>",
		},
		{
			Action:    doUnwrap,
			Name:      "unwrap",
			Usage:     "Extract call data from a byte envelope",
			ArgsUsage: "<0x-envelope>",
		},
		{
			Action: doEncodeDelegate,
			Name:   "encode-delegate",
			Usage:  "Encode the parameters of a delegate call",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "code",
					Usage:    "identifier of the code to run",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "input",
					Usage: "hex encoded call input",
					Value: "0x",
				},
				&cli.BoolFlag{
					Name:  "readonly",
					Usage: "run the code in static mode",
				},
			},
		},
		{
			Action:    doDecodeDelegate,
			Name:      "decode-delegate",
			Usage:     "Decode the parameters of a delegate call",
			ArgsUsage: "<0x-params>",
		},
	},
}

func hexArgument(context *cli.Context) ([]byte, error) {
	arg := context.Args().First()
	if arg == "" {
		return nil, fmt.Errorf("missing hex argument")
	}
	data, err := hexutil.Decode(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid hex argument %q: %w", arg, err)
	}
	return data, nil
}

func doWrap(context *cli.Context) error {
	data, err := hexArgument(context)
	if err != nil {
		return err
	}
	res, err := fevm.EncodeBytesParams(data)
	if err != nil {
		return err
	}
	fmt.Fprintln(context.App.Writer, hexutil.Encode(res))
	return nil
}

func doUnwrap(context *cli.Context) error {
	data, err := hexArgument(context)
	if err != nil {
		return err
	}
	res, err := fevm.DecodeBytesParams(data)
	if err != nil {
		return err
	}
	fmt.Fprintln(context.App.Writer, hexutil.Encode(res))
	return nil
}

func doEncodeDelegate(context *cli.Context) error {
	code, err := cid.Decode(context.String("code"))
	if err != nil {
		return fmt.Errorf("invalid code id: %w", err)
	}
	input, err := hexutil.Decode(context.String("input"))
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	res, err := fevm.EncodeDelegateCallParams(fevm.DelegateCallParams{
		Code:     code,
		Input:    input,
		ReadOnly: context.Bool("readonly"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(context.App.Writer, hexutil.Encode(res))
	return nil
}

func doDecodeDelegate(context *cli.Context) error {
	data, err := hexArgument(context)
	if err != nil {
		return err
	}
	params, err := fevm.DecodeDelegateCallParams(data)
	if err != nil {
		return err
	}
	out := context.App.Writer
	fmt.Fprintf(out, "code:     %v\n", params.Code)
	fmt.Fprintf(out, "input:    %v\n", hexutil.Encode(params.Input))
	fmt.Fprintf(out, "readonly: %t\n", params.ReadOnly)
	return nil
}
