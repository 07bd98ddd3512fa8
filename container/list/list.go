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

// Package list implements the undo-aware doubly linked list of spec.md
// §4.3: head/tail/count, a single forward cursor, and mutation methods that
// push the matching undo.Record when given a non-nil *undo.Manager.
package list

import (
	"errors"

	"github.com/jameo-labs/corelib/object"
	"github.com/jameo-labs/corelib/undo"
)

// ErrNotFound is returned by Remove when the target payload is not an
// element of the list (spec.md §7 "NotFound").
var ErrNotFound = errors.New("list: element not found")

// node is one element of the list. It owns a strong reference to its
// payload: the list retains on insert and releases on remove (spec.md
// §4.3 "Ownership").
type node struct {
	next, prev *node
	data       *object.Object
}

// List is a doubly-linked list of *object.Object, undo-aware per spec.md
// §4.3. The zero value is not usable; use New.
type List struct {
	head, tail *node
	cursor     *node
	count      uint32
	owner      *object.Object // weak; not refcounted (spec.md §5 "Ownership policy")
}

// New returns an empty list owned by owner (typically an Editable object
// that may receive regenerate events during undo steps). owner may be nil.
func New(owner *object.Object) *List {
	return &List{owner: owner}
}

// Size returns the number of elements currently in the list.
func (l *List) Size() uint32 { return l.count }

// Rewind resets the iteration cursor to the head.
func (l *List) Rewind() { l.cursor = l.head }

// HasNext reports whether Next would return an element.
func (l *List) HasNext() bool { return l.cursor != nil }

// Next returns the current cursor element and advances the cursor.
func (l *List) Next() *object.Object {
	if l.cursor == nil {
		return nil
	}
	v := l.cursor.data
	l.cursor = l.cursor.next
	return v
}

// First returns the first element, or nil if the list is empty.
func (l *List) First() *object.Object {
	if l.head == nil {
		return nil
	}
	return l.head.data
}

// Last returns the last element, or nil if the list is empty.
func (l *List) Last() *object.Object {
	if l.tail == nil {
		return nil
	}
	return l.tail.data
}

// ToSlice materializes the list contents in order, for tests and callers
// that want a snapshot rather than cursor-based iteration.
func (l *List) ToSlice() []*object.Object {
	out := make([]*object.Object, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.data)
	}
	return out
}

func (l *List) findNode(data *object.Object) *node {
	for n := l.head; n != nil; n = n.next {
		if n.data == data {
			return n
		}
	}
	return nil
}

// Add appends data at the tail, recording a list-insert undo record against
// um if non-nil and active.
func (l *List) Add(data *object.Object, um *undo.Manager) {
	n := &node{data: data}
	l.linkAtTail(n)
	data.Retain()

	if um != nil {
		um.AppendRecord(undo.NewRecord("list insert",
			func() { l.unlink(n); n.data.Release() },
			func() { l.linkAtTail(n); n.data.Retain() },
		))
	}
}

// AddBefore inserts itemToAdd immediately before addBeforeThis. If
// addBeforeThis is not in the list, itemToAdd is appended at the tail
// instead (mirroring the original's tolerant behaviour for a dangling
// reference).
func (l *List) AddBefore(addBeforeThis, itemToAdd *object.Object, um *undo.Manager) {
	ref := l.findNode(addBeforeThis)
	if ref == nil {
		l.Add(itemToAdd, um)
		return
	}
	n := &node{data: itemToAdd}
	l.linkBefore(ref, n)
	itemToAdd.Retain()

	if um != nil {
		um.AppendRecord(undo.NewRecord("list insert before",
			func() { l.unlink(n); n.data.Release() },
			func() { l.linkBefore(ref, n); n.data.Retain() },
		))
	}
}

// Remove removes the node holding data from the list. Returns ErrNotFound
// if data is not an element.
func (l *List) Remove(data *object.Object, um *undo.Manager) error {
	n := l.findNode(data)
	if n == nil {
		return ErrNotFound
	}
	predecessor, successor := n.prev, n.next

	l.unlink(n)
	n.data.Release()

	if um != nil {
		um.AppendRecord(undo.NewRecord("list remove",
			func() { l.relink(n, predecessor, successor); n.data.Retain() },
			func() { l.unlink(n); n.data.Release() },
		))
	}
	return nil
}

// relink reinserts n between predecessor and successor, both of which must
// still be members of the list (used to undo a Remove).
func (l *List) relink(n, predecessor, successor *node) {
	switch {
	case predecessor == nil && successor == nil:
		n.prev, n.next = nil, nil
		l.head, l.tail = n, n
		l.count++
	case predecessor == nil:
		l.linkBefore(successor, n)
	default:
		l.linkAfter(predecessor, n)
	}
}

// SwapData exchanges the payloads of the nodes holding data1 and data2,
// leaving node identity (and therefore cursor position) untouched.
func (l *List) SwapData(data1, data2 *object.Object, um *undo.Manager) {
	n1 := l.findNode(data1)
	n2 := l.findNode(data2)
	if n1 == nil || n2 == nil {
		return
	}
	swap := func() { n1.data, n2.data = n2.data, n1.data }
	swap()

	if um != nil {
		um.AppendRecord(undo.NewRecord("list swap", swap, swap))
	}
}

// Clear removes every element, tail to head, as one composite undo record
// (spec.md §4.3 "clear()").
func (l *List) Clear(um *undo.Manager) {
	var records []undo.Record
	for l.tail != nil {
		n := l.tail
		predecessor, successor := n.prev, n.next

		l.unlink(n)
		n.data.Release()

		records = append(records, undo.NewRecord("list remove (clear)",
			func() { l.relink(n, predecessor, successor); n.data.Retain() },
			func() { l.unlink(n); n.data.Release() },
		))
	}
	if um != nil && len(records) > 0 {
		um.AppendRecord(undo.NewComposite("list clear", records))
	}
}

func (l *List) linkAtTail(n *node) {
	n.prev = l.tail
	n.next = nil
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.count++
}

func (l *List) linkAtHead(n *node) {
	n.next = l.head
	n.prev = nil
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.count++
}

func (l *List) linkBefore(ref, n *node) {
	if ref == nil {
		l.linkAtTail(n)
		return
	}
	n.prev = ref.prev
	n.next = ref
	if ref.prev != nil {
		ref.prev.next = n
	} else {
		l.head = n
	}
	ref.prev = n
	l.count++
}

func (l *List) linkAfter(ref, n *node) {
	if ref == nil {
		l.linkAtHead(n)
		return
	}
	n.next = ref.next
	n.prev = ref
	if ref.next != nil {
		ref.next.prev = n
	} else {
		l.tail = n
	}
	ref.next = n
	l.count++
}

// unlink detaches n from the list, advancing the cursor to n.next if the
// cursor currently points at n (spec.md §4.3: "cursor, if pointing at x,
// advances to x.next").
func (l *List) unlink(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	if l.cursor == n {
		l.cursor = n.next
	}
	n.prev, n.next = nil, nil
	l.count--
}
