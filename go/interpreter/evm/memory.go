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
	"fmt"
	"math"

	"github.com/Fantom-foundation/fevm/go/fevm"
	"github.com/holiman/uint256"
)

// Memory is the linear memory of a single call frame. It grows in units of
// 32-byte words up to a configured bound and is never shared across frames.
type Memory struct {
	store []byte
	limit uint64
}

// NewMemory creates an empty memory growing to at most limit bytes. A limit
// of zero selects DefaultMaxMemorySize.
func NewMemory(limit uint64) *Memory {
	if limit == 0 {
		limit = DefaultMaxMemorySize
	}
	return &Memory{limit: limit}
}

// MemoryRegion describes a validated, non-empty range of memory. A nil
// *MemoryRegion denotes a zero-size access touching no memory at all.
type MemoryRegion struct {
	Offset uint64
	Size   uint64
}

func (r *MemoryRegion) String() string {
	if r == nil {
		return "[]"
	}
	return fmt.Sprintf("[%d, %d)", r.Offset, r.Offset+r.Size)
}

func sizeInWords(size uint64) uint64 {
	if size > math.MaxUint64-31 {
		return math.MaxUint64/32 + 1
	}
	return (size + 31) / 32
}

func toValidMemorySize(size uint64) uint64 {
	fullWordsSize := sizeInWords(size) * 32
	if size != 0 && fullWordsSize < size {
		return math.MaxUint64
	}
	return fullWordsSize
}

// Len returns the current size of the memory in bytes.
func (m *Memory) Len() uint64 {
	return uint64(len(m.store))
}

// Data returns the memory content. The result is backed by the memory and
// only valid until the next expansion.
func (m *Memory) Data() []byte {
	return m.store
}

// expand grows the memory to cover needed bytes, rounded up to full words.
func (m *Memory) expand(needed uint64) error {
	needed = toValidMemorySize(needed)
	if needed > m.limit {
		return fmt.Errorf("%w: memory size %d exceeds limit of %d", fevm.ErrInvalidMemoryAccess, needed, m.limit)
	}
	if size := m.Len(); size < needed {
		m.store = append(m.store, make([]byte, needed-size)...)
	}
	return nil
}

// resolveRegion validates the offset/size pair taken from the stack and
// grows the memory to cover it. A zero size resolves to a nil region and is
// valid for any offset.
func (m *Memory) resolveRegion(offset, size *uint256.Int) (*MemoryRegion, error) {
	if size.IsZero() {
		return nil, nil
	}
	if !offset.IsUint64() || !size.IsUint64() {
		return nil, fmt.Errorf("%w: offset %v or size %v exceeds 64 bits", fevm.ErrInvalidMemoryAccess, offset, size)
	}
	start, length := offset.Uint64(), size.Uint64()
	end := start + length
	if end < start {
		return nil, fmt.Errorf("%w: offset %d + size %d overflows", fevm.ErrInvalidMemoryAccess, start, length)
	}
	if err := m.expand(end); err != nil {
		return nil, err
	}
	return &MemoryRegion{Offset: start, Size: length}, nil
}

// slice returns the bytes covered by the given region. The result is backed
// by the memory and must not be retained across expansions.
func (m *Memory) slice(region *MemoryRegion) []byte {
	if region == nil {
		return nil
	}
	return m.store[region.Offset : region.Offset+region.Size]
}

// copyToMemory writes min(destSize, len(source)-sourceSkip) bytes of source,
// starting at sourceSkip, to memory at destOffset and zero-fills the rest of
// the destSize bytes of the destination.
func (m *Memory) copyToMemory(destOffset, destSize *uint256.Int, sourceSkip uint64, source []byte) error {
	region, err := m.resolveRegion(destOffset, destSize)
	if err != nil || region == nil {
		return err
	}
	if sourceSkip > uint64(len(source)) {
		sourceSkip = uint64(len(source))
	}
	target := m.slice(region)
	covered := copy(target, source[sourceSkip:])
	clear(target[covered:])
	return nil
}
