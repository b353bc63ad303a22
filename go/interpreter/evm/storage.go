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

	"github.com/Fantom-foundation/fevm/go/fevm"
)

func opSload(s *ExecutionState, sys *System) error {
	top := s.stack.peek()
	value, err := sys.GetStorage(top)
	if err != nil {
		return err
	}
	if value == nil {
		top.Clear()
	} else {
		top.Set(value)
	}
	return nil
}

// opSstore writes a storage slot. Zero values are stored by deleting the
// slot.
func opSstore(s *ExecutionState, sys *System) error {
	if sys.readonly {
		return fmt.Errorf("%w: SSTORE in static mode", fevm.ErrStaticModeViolation)
	}
	key := *s.stack.pop()
	value := s.stack.pop()
	if value.IsZero() {
		value = nil
	}
	status, err := sys.SetStorage(&key, value)
	if err != nil {
		return err
	}
	s.storageStatus = status
	return nil
}
