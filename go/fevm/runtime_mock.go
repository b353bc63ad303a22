// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package fevm is a generated GoMock package.
package fevm

import (
	reflect "reflect"

	address "github.com/filecoin-project/go-address"
	abi "github.com/filecoin-project/go-state-types/abi"
	cid "github.com/ipfs/go-cid"
	gomock "go.uber.org/mock/gomock"
)

// MockRuntime is a mock of Runtime interface.
type MockRuntime struct {
	ctrl     *gomock.Controller
	recorder *MockRuntimeMockRecorder
}

// MockRuntimeMockRecorder is the mock recorder for MockRuntime.
type MockRuntimeMockRecorder struct {
	mock *MockRuntime
}

// NewMockRuntime creates a new mock instance.
func NewMockRuntime(ctrl *gomock.Controller) *MockRuntime {
	mock := &MockRuntime{ctrl: ctrl}
	mock.recorder = &MockRuntimeMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRuntime) EXPECT() *MockRuntimeMockRecorder {
	return m.recorder
}

// GetActorCodeCID mocks base method.
func (m *MockRuntime) GetActorCodeCID(arg0 abi.ActorID) (cid.Cid, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActorCodeCID", arg0)
	ret0, _ := ret[0].(cid.Cid)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// GetActorCodeCID indicates an expected call of GetActorCodeCID.
func (mr *MockRuntimeMockRecorder) GetActorCodeCID(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActorCodeCID", reflect.TypeOf((*MockRuntime)(nil).GetActorCodeCID), arg0)
}

// LookupDelegatedAddress mocks base method.
func (m *MockRuntime) LookupDelegatedAddress(arg0 abi.ActorID) (address.Address, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LookupDelegatedAddress", arg0)
	ret0, _ := ret[0].(address.Address)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// LookupDelegatedAddress indicates an expected call of LookupDelegatedAddress.
func (mr *MockRuntimeMockRecorder) LookupDelegatedAddress(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LookupDelegatedAddress", reflect.TypeOf((*MockRuntime)(nil).LookupDelegatedAddress), arg0)
}

// Receiver mocks base method.
func (m *MockRuntime) Receiver() address.Address {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Receiver")
	ret0, _ := ret[0].(address.Address)
	return ret0
}

// Receiver indicates an expected call of Receiver.
func (mr *MockRuntimeMockRecorder) Receiver() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Receiver", reflect.TypeOf((*MockRuntime)(nil).Receiver))
}

// ResolveAddress mocks base method.
func (m *MockRuntime) ResolveAddress(arg0 address.Address) (abi.ActorID, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResolveAddress", arg0)
	ret0, _ := ret[0].(abi.ActorID)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// ResolveAddress indicates an expected call of ResolveAddress.
func (mr *MockRuntimeMockRecorder) ResolveAddress(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResolveAddress", reflect.TypeOf((*MockRuntime)(nil).ResolveAddress), arg0)
}

// ResolveBuiltinActorType mocks base method.
func (m *MockRuntime) ResolveBuiltinActorType(arg0 cid.Cid) (ActorType, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResolveBuiltinActorType", arg0)
	ret0, _ := ret[0].(ActorType)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// ResolveBuiltinActorType indicates an expected call of ResolveBuiltinActorType.
func (mr *MockRuntimeMockRecorder) ResolveBuiltinActorType(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResolveBuiltinActorType", reflect.TypeOf((*MockRuntime)(nil).ResolveBuiltinActorType), arg0)
}

// Send mocks base method.
func (m *MockRuntime) Send(to address.Address, method abi.MethodNum, params []byte, value abi.TokenAmount) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", to, method, params, value)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Send indicates an expected call of Send.
func (mr *MockRuntimeMockRecorder) Send(to, method, params, value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*MockRuntime)(nil).Send), to, method, params, value)
}
