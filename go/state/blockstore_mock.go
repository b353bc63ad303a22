// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package state is a generated GoMock package.
package state

import (
	reflect "reflect"

	cid "github.com/ipfs/go-cid"
	gomock "go.uber.org/mock/gomock"
)

// MockBlockstore is a mock of Blockstore interface.
type MockBlockstore struct {
	ctrl     *gomock.Controller
	recorder *MockBlockstoreMockRecorder
}

// MockBlockstoreMockRecorder is the mock recorder for MockBlockstore.
type MockBlockstoreMockRecorder struct {
	mock *MockBlockstore
}

// NewMockBlockstore creates a new mock instance.
func NewMockBlockstore(ctrl *gomock.Controller) *MockBlockstore {
	mock := &MockBlockstore{ctrl: ctrl}
	mock.recorder = &MockBlockstoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBlockstore) EXPECT() *MockBlockstoreMockRecorder {
	return m.recorder
}

// Close mocks base method.
func (m *MockBlockstore) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockBlockstoreMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockBlockstore)(nil).Close))
}

// Get mocks base method.
func (m *MockBlockstore) Get(arg0 cid.Cid) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", arg0)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockBlockstoreMockRecorder) Get(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockBlockstore)(nil).Get), arg0)
}

// Has mocks base method.
func (m *MockBlockstore) Has(arg0 cid.Cid) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Has", arg0)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Has indicates an expected call of Has.
func (mr *MockBlockstoreMockRecorder) Has(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Has", reflect.TypeOf((*MockBlockstore)(nil).Has), arg0)
}

// Put mocks base method.
func (m *MockBlockstore) Put(arg0 cid.Cid, arg1 []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Put", arg0, arg1)
	ret0, _ := ret[0].(error)
	return ret0
}

// Put indicates an expected call of Put.
func (mr *MockBlockstoreMockRecorder) Put(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Put", reflect.TypeOf((*MockBlockstore)(nil).Put), arg0, arg1)
}
