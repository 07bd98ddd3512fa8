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

// Package document defines the Document surface editable objects and
// containers consult to find "which undo manager applies here" (spec.md
// §3, §6), plus the Status/setter-protocol vocabulary every mutation on an
// Editable goes through (spec.md §4.2, §7).
package document

import "github.com/jameo-labs/corelib/undo"

// RegenerationHook is invoked after an undo or redo step applies, so a
// UI-shaped observer can refresh itself (spec.md §6: "a regeneration
// notification hook invoked after an undo/redo step applies").
type RegenerationHook func(Document)

// Document owns exactly one undo manager and is the lookup point editable
// objects and containers use to find it (spec.md §3 "Document").
type Document interface {
	// UndoManager returns the document's single undo manager.
	UndoManager() *undo.Manager

	// InitNewDocument resets the document to a fresh, empty state.
	InitNewDocument(prefs any) error

	// LoadDocument populates the document from its backing storage. Callers
	// typically call UndoManager().SetActive(false) first so that load
	// does not record undo history (spec.md §4.2: "setActive(false) turns
	// the manager into a no-op recorder, useful during document load").
	LoadDocument() error

	// SaveDocument persists the document to its backing storage.
	SaveDocument() error

	// OnRegenerate registers a hook invoked after each undo/redo step
	// applies. Multiple hooks may be registered; all are invoked in
	// registration order.
	OnRegenerate(hook RegenerationHook)
}

// Base is an embeddable implementation of the parts of Document that do not
// depend on concrete storage: the undo manager and the regeneration hook
// list. Concrete document types embed Base and implement
// InitNewDocument/LoadDocument/SaveDocument themselves.
type Base struct {
	self  Document
	um    *undo.Manager
	hooks []RegenerationHook
}

// NewBase wires a Base to the given undo manager, registering itself as the
// manager's regeneration callback so that Undo/Redo on um notifies this
// document's hooks. self must be the concrete Document embedding this Base;
// it is passed to each RegenerationHook.
func NewBase(self Document, um *undo.Manager) *Base {
	b := &Base{self: self, um: um}
	um.OnStepApplied(func() {
		b.notify()
	})
	return b
}

func (b *Base) UndoManager() *undo.Manager { return b.um }

func (b *Base) OnRegenerate(hook RegenerationHook) {
	b.hooks = append(b.hooks, hook)
}

func (b *Base) notify() {
	for _, h := range b.hooks {
		h(b.self)
	}
}
