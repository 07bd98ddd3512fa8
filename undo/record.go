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

// Package undo implements the transactional undo/redo manager of spec.md
// §4.2: an open transaction accumulating records, promoted on close to an
// undo step, with undo/redo stacks of such steps.
package undo

// Record is one reversible unit of change (spec.md §3 "Undo record
// (variant)"). Undo applies the inverse of the recorded change; Redo
// reapplies the original change. Concrete record kinds — scalar field
// changes here, list/hash-map structural changes in the container
// packages — all satisfy this same three-method interface rather than a
// tagged union, which is the idiomatic Go rendition of the original's
// variant record type.
type Record interface {
	Undo()
	Redo()
	Describe() string
}

// closureRecord is the common implementation backing ScalarChange and any
// caller-defined ad hoc record.
type closureRecord struct {
	describe string
	undoFn   func()
	redoFn   func()
}

func (r *closureRecord) Undo()          { r.undoFn() }
func (r *closureRecord) Redo()          { r.redoFn() }
func (r *closureRecord) Describe() string { return r.describe }

// NewRecord builds a Record from an undo closure and a redo closure, for
// callers that have both sides in hand already (containers, typically).
func NewRecord(describe string, undoFn, redoFn func()) Record {
	return &closureRecord{describe: describe, undoFn: undoFn, redoFn: redoFn}
}

// NewScalarChange builds the "scalar change" record variant of spec.md §3
// for a setter-protocol mutation: restoreOld sets the field back to its
// prior value (the undo side); applyNew reapplies the new value (the redo
// side, i.e. the mirror operation spec.md §3 requires).
func NewScalarChange(fieldName string, restoreOld, applyNew func()) Record {
	return &closureRecord{describe: "set " + fieldName, undoFn: restoreOld, redoFn: applyNew}
}

// Composite groups several records that must be undone/redone atomically,
// in reverse/forward order respectively (spec.md §3 "composite: ordered
// list of records treated atomically").
type Composite struct {
	label   string
	records []Record
}

// NewComposite wraps records as one atomic unit.
func NewComposite(label string, records []Record) *Composite {
	return &Composite{label: label, records: records}
}

func (c *Composite) Undo() {
	for i := len(c.records) - 1; i >= 0; i-- {
		c.records[i].Undo()
	}
}

func (c *Composite) Redo() {
	for _, r := range c.records {
		r.Redo()
	}
}

func (c *Composite) Describe() string { return c.label }

var _ Record = (*Composite)(nil)
