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
	"github.com/jameo-labs/corelib/object"
	"github.com/jameo-labs/corelib/undo"
)

// Status is the outcome of a setter-protocol mutation (spec.md §4.2, §7).
type Status int

const (
	// OK means the value changed and, if a transaction is open, an undo
	// record was pushed for it.
	OK Status = iota
	// NotChanged means the new value equals the current one under the
	// field's equality relation; no state changed and nothing was pushed.
	NotChanged
	// InvalidInput means the field's validity predicate rejected the
	// value; no state changed.
	InvalidInput
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case NotChanged:
		return "NotChanged"
	case InvalidInput:
		return "InvalidInput"
	default:
		return "unknown"
	}
}

// Editable is the embeddable base for objects whose fields mutate through
// the setter protocol (spec.md §3 "Editable object", §4.2). It holds a weak
// (non-owning, non-refcounted) back-pointer to its owning Document, looked
// up lazily whenever a mutation needs the document's undo manager.
type Editable struct {
	object.Object
	owner Document
}

// NewEditable returns an Editable owned by doc. doc may be nil for
// standalone objects not yet attached to a document; SetField then applies
// the value directly without any undo recording.
func NewEditable(doc Document) *Editable {
	return &Editable{Object: *object.New(), owner: doc}
}

// Owner returns the owning document, or nil if unattached.
func (e *Editable) Owner() Document { return e.owner }

// SetOwner reattaches e to a different document. Used when an object moves
// between documents (e.g. copy/paste); it does not retroactively rewrite
// any undo history already recorded against the previous owner.
func (e *Editable) SetOwner(doc Document) { e.owner = doc }

// SetField implements the three-step setter protocol described in spec.md
// §4.2:
//
//  1. if newValue is equal under the field's equality relation to the
//     current value, return NotChanged without side effects;
//  2. if newValue fails the field's validity predicate, return
//     InvalidInput without side effects;
//  3. otherwise push a scalar-change undo record (if the owner's undo
//     manager is active), apply newValue via apply, and return OK.
//
// equal and valid are field-local closures supplied by the caller;
// current/apply close over the field itself so SetField can read the prior
// value and write the new one without reflection.
func SetField[T any](e *Editable, fieldName string, current func() T, apply func(T), equal func(a, b T) bool, valid func(T) bool, newValue T) Status {
	old := current()
	if equal(old, newValue) {
		return NotChanged
	}
	if valid != nil && !valid(newValue) {
		return InvalidInput
	}

	if e.owner != nil {
		um := e.owner.UndoManager()
		if um != nil && um.IsActive() {
			um.AppendRecord(undo.NewScalarChange(fieldName, func() {
				apply(old)
			}, func() {
				apply(newValue)
			}))
		}
	}
	apply(newValue)
	return OK
}
