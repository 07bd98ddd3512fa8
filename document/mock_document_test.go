// Copyright 2024 The Corelib Authors
// This file is part of corelib.
//
// corelib is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// corelib is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with corelib. If not, see <http://www.gnu.org/licenses/>.

package document

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/jameo-labs/corelib/undo"
)

// MockDocument is a gomock-style mock of Document, hand-written in the
// shape mockgen produces, used to assert exactly which Document methods
// SetField touches on each branch of the setter protocol.
type MockDocument struct {
	ctrl     *gomock.Controller
	recorder *MockDocumentMockRecorder
}

type MockDocumentMockRecorder struct {
	mock *MockDocument
}

func NewMockDocument(ctrl *gomock.Controller) *MockDocument {
	m := &MockDocument{ctrl: ctrl}
	m.recorder = &MockDocumentMockRecorder{m}
	return m
}

func (m *MockDocument) EXPECT() *MockDocumentMockRecorder {
	return m.recorder
}

func (m *MockDocument) UndoManager() *undo.Manager {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UndoManager")
	ret0, _ := ret[0].(*undo.Manager)
	return ret0
}

func (mr *MockDocumentMockRecorder) UndoManager() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UndoManager", reflect.TypeOf((*MockDocument)(nil).UndoManager))
}

func (m *MockDocument) InitNewDocument(prefs any) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InitNewDocument", prefs)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockDocumentMockRecorder) InitNewDocument(prefs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InitNewDocument", reflect.TypeOf((*MockDocument)(nil).InitNewDocument), prefs)
}

func (m *MockDocument) LoadDocument() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LoadDocument")
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockDocumentMockRecorder) LoadDocument() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LoadDocument", reflect.TypeOf((*MockDocument)(nil).LoadDocument))
}

func (m *MockDocument) SaveDocument() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveDocument")
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockDocumentMockRecorder) SaveDocument() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveDocument", reflect.TypeOf((*MockDocument)(nil).SaveDocument))
}

func (m *MockDocument) OnRegenerate(hook RegenerationHook) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnRegenerate", hook)
}

func (mr *MockDocumentMockRecorder) OnRegenerate(hook any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnRegenerate", reflect.TypeOf((*MockDocument)(nil).OnRegenerate), hook)
}

var _ Document = (*MockDocument)(nil)
