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
	"bytes"
	"fmt"
	"io"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
)

// DelegateCallParams is the payload an actor sends to itself to run the code
// of another contract in its own storage context. ReadOnly is inherited from
// the caller and never relaxed. It is encoded as the CBOR tuple
// [code, input, readonly].
type DelegateCallParams struct {
	Code     cid.Cid
	Input    []byte
	ReadOnly bool
}

func (p *DelegateCallParams) MarshalCBOR(w io.Writer) error {
	if len(p.Input) > cbg.ByteArrayMaxLen {
		return fmt.Errorf("input of %d bytes exceeds limit", len(p.Input))
	}
	cw := cbg.NewCborWriter(w)
	if err := cw.WriteMajorTypeHeader(cbg.MajArray, 3); err != nil {
		return err
	}
	if err := cbg.WriteCid(cw, p.Code); err != nil {
		return fmt.Errorf("code: %w", err)
	}
	if err := cbg.WriteByteArray(cw, p.Input); err != nil {
		return err
	}
	return cbg.WriteBool(cw, p.ReadOnly)
}

func (p *DelegateCallParams) UnmarshalCBOR(r io.Reader) error {
	cr := cbg.NewCborReader(r)
	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("expected a tuple, got major type %d", maj)
	}
	if extra != 3 {
		return fmt.Errorf("expected 3 fields, got %d", extra)
	}

	code, err := cbg.ReadCid(cr)
	if err != nil {
		return fmt.Errorf("code: %w", err)
	}
	input, err := cbg.ReadByteArray(cr, cbg.ByteArrayMaxLen)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	var readonly cbg.CborBool
	if err := readonly.UnmarshalCBOR(cr); err != nil {
		return fmt.Errorf("readonly: %w", err)
	}

	*p = DelegateCallParams{Code: code, Input: input, ReadOnly: bool(readonly)}
	return nil
}

// EncodeDelegateCallParams serializes the parameters of a delegate call.
func EncodeDelegateCallParams(params DelegateCallParams) ([]byte, error) {
	return encode(&params)
}

// DecodeDelegateCallParams parses a payload produced by EncodeDelegateCallParams.
func DecodeDelegateCallParams(data []byte) (DelegateCallParams, error) {
	var res DelegateCallParams
	if err := decode(data, &res); err != nil {
		return DelegateCallParams{}, fmt.Errorf("invalid delegate call params: %w", err)
	}
	return res, nil
}

// EncodeBytesParams wraps raw call input into the CBOR byte-string envelope
// used across the actor boundary.
func EncodeBytesParams(data []byte) ([]byte, error) {
	value := abi.CborBytes(data)
	return encode(&value)
}

// DecodeBytesParams unwraps an envelope produced by EncodeBytesParams.
func DecodeBytesParams(raw []byte) ([]byte, error) {
	var res abi.CborBytes
	if err := decode(raw, &res); err != nil {
		return nil, fmt.Errorf("invalid byte envelope: %w", err)
	}
	return res, nil
}

// DecodeCid parses a content identifier returned by another actor, a CBOR
// tagged link.
func DecodeCid(raw []byte) (cid.Cid, error) {
	var res cbg.CborCid
	if err := decode(raw, &res); err != nil {
		return cid.Undef, fmt.Errorf("invalid content id: %w", err)
	}
	return cid.Cid(res), nil
}

func encode(value cbg.CBORMarshaler) ([]byte, error) {
	var buf bytes.Buffer
	if err := value.MarshalCBOR(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return buf.Bytes(), nil
}

// decode parses a single CBOR value filling all of data.
func decode(data []byte, out cbg.CBORUnmarshaler) error {
	r := bytes.NewReader(data)
	if err := out.UnmarshalCBOR(r); err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if r.Len() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrSerialization, r.Len())
	}
	return nil
}
