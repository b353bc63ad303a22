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
	"encoding/json"
	"fmt"
	"strings"
)

// CallKind is an enum enabling the differentiation of the call-like
// instructions dispatched to other actors.
type CallKind int

const (
	Call CallKind = iota
	DelegateCall
	StaticCall
	CallCode
)

// HasValueOperand reports whether instructions of this kind pop an explicit
// value operand. DELEGATECALL and STATICCALL never transfer value.
func (k CallKind) HasValueOperand() bool {
	return k == Call || k == CallCode
}

func (k CallKind) String() string {
	switch k {
	case Call:
		return "call"
	case StaticCall:
		return "static_call"
	case DelegateCall:
		return "delegate_call"
	case CallCode:
		return "call_code"
	default:
		return "unknown"
	}
}

func (k CallKind) MarshalJSON() ([]byte, error) {
	var res string
	switch k {
	case Call, StaticCall, DelegateCall, CallCode:
		res = k.String()
	default:
		return nil, fmt.Errorf("invalid call kind: %v", k)
	}
	return json.Marshal(res)
}

func (k *CallKind) UnmarshalJSON(data []byte) error {
	var kind string
	if err := json.Unmarshal(data, &kind); err != nil {
		return err
	}
	switch strings.ToLower(kind) {
	case "call":
		*k = Call
	case "static_call":
		*k = StaticCall
	case "delegate_call":
		*k = DelegateCall
	case "call_code":
		*k = CallCode
	default:
		return fmt.Errorf("unknown call kind: %s", kind)
	}
	return nil
}
