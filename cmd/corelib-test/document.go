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

package main

import (
	"github.com/jameo-labs/corelib/document"
	"github.com/jameo-labs/corelib/undo"
)

// runnerDocument is the minimal concrete Document the TestVector scenarios
// exercise setter-protocol behaviour against; storage is irrelevant here.
type runnerDocument struct {
	*document.Base
}

func newRunnerDocument() *runnerDocument {
	d := &runnerDocument{}
	d.Base = document.NewBase(d, undo.NewManager(nil))
	return d
}

func (d *runnerDocument) InitNewDocument(any) error { return nil }
func (d *runnerDocument) LoadDocument() error        { return nil }
func (d *runnerDocument) SaveDocument() error         { return nil }

var _ document.Document = (*runnerDocument)(nil)

// runnerAddress is the Editable fixture for spec.md §8 scenario 2.
type runnerAddress struct {
	document.Editable
	street      string
	houseNumber int
}

func newRunnerAddress(doc document.Document) *runnerAddress {
	return &runnerAddress{Editable: *document.NewEditable(doc), street: "Unknown", houseNumber: 0}
}

func (a *runnerAddress) SetStreetAddress(street string, houseNumber int) document.Status {
	s1 := document.SetField(&a.Editable, "street",
		func() string { return a.street },
		func(v string) { a.street = v },
		func(x, y string) bool { return x == y },
		nil,
		street,
	)
	if s1 == document.InvalidInput {
		return document.InvalidInput
	}

	s2 := document.SetField(&a.Editable, "houseNumber",
		func() int { return a.houseNumber },
		func(v int) { a.houseNumber = v },
		func(x, y int) bool { return x == y },
		func(v int) bool { return v >= 0 },
		houseNumber,
	)
	if s2 == document.InvalidInput {
		return document.InvalidInput
	}
	if s1 == document.OK || s2 == document.OK {
		return document.OK
	}
	return document.NotChanged
}
