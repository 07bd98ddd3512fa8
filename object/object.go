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

// Package object implements the reference-counted base value every editable
// type in corelib is built on, plus the per-thread autorelease pool that
// defers release of objects handed out by value-returning APIs.
package object

import (
	"fmt"
	"sync/atomic"
)

// modifiedBit is the high bit of the reference counter, reserved by the
// undo subsystem as a transient "modified" flag. Public accessors must never
// leak it as part of ReferenceCount.
const modifiedBit = int32(1) << 31

// Comparable is implemented by values that can be compared for equality by
// the diff engine and by the editable-object setter protocol (spec.md §4.2
// step 1, §4.6).
type Comparable interface {
	Equals(other any) bool
}

// Displayable is implemented by values that have a user-facing name, used
// for diagnostics and by diff reporting.
type Displayable interface {
	DisplayName() string
}

// DiffOperation labels one step of a diff backtrace.
type DiffOperation int

const (
	DiffEqual DiffOperation = iota
	DiffAdd
	DiffDelete
	DiffModified
)

func (op DiffOperation) String() string {
	switch op {
	case DiffEqual:
		return "equal"
	case DiffAdd:
		return "add"
	case DiffDelete:
		return "delete"
	case DiffModified:
		return "modified"
	default:
		return "unknown"
	}
}

// DiffPrintable is implemented by values that know how to report themselves
// as part of a diff result (spec.md §4.6, Object::printDiffInfo).
type DiffPrintable interface {
	PrintDiffInfo(op DiffOperation, other any)
}

// Object is the reference-counted base every editable corelib value embeds.
// retain/release/autorelease are safe for concurrent use on the same
// instance (spec.md §5); everything else about an embedding type is left to
// single-threaded discipline by the caller.
type Object struct {
	refCount int32
	pool     *Pool
}

// New returns an Object with reference count 1, as required by the
// lifecycle in spec.md §3 ("created with refcount 1").
func New() *Object {
	return &Object{refCount: 1}
}

// Retain increments the reference counter by one and returns the receiver,
// matching the C++ API's chainable `retain()`.
func (o *Object) Retain() *Object {
	for {
		old := atomic.LoadInt32(&o.refCount)
		if atomic.CompareAndSwapInt32(&o.refCount, old, old+1) {
			return o
		}
	}
}

// Release decrements the reference counter. The embedding type is
// responsible for destroying itself once ReferenceCount reaches 0; Release
// itself only performs the counter arithmetic, since Go has no destructors
// to hook into the way the original C++ class does.
func (o *Object) Release() {
	for {
		old := atomic.LoadInt32(&o.refCount)
		count := old &^ modifiedBit
		if count <= 0 {
			panic(fmt.Sprintf("corelib/object: release of object with refcount %d", count))
		}
		newCount := (count - 1) | (old & modifiedBit)
		if atomic.CompareAndSwapInt32(&o.refCount, old, newCount) {
			return
		}
	}
}

// Autorelease transfers one reference into the current pool: p if non-nil,
// otherwise the calling goroutine's default pool (spec.md §4.1). The next
// Drain on that pool releases it exactly once.
func (o *Object) Autorelease(p *Pool) *Object {
	if p == nil {
		p = DefaultPool()
	}
	p.enqueue(o)
	o.pool = p
	return o
}

// ReferenceCount returns the public reference count, with the undo
// subsystem's modified bit masked off.
func (o *Object) ReferenceCount() int32 {
	return atomic.LoadInt32(&o.refCount) &^ modifiedBit
}

// SetHighBit sets or clears the transient "modified" flag used by the undo
// manager to mark objects touched since the last save (spec.md §3, §4.1).
func (o *Object) SetHighBit(status bool) {
	for {
		old := atomic.LoadInt32(&o.refCount)
		var next int32
		if status {
			next = old | modifiedBit
		} else {
			next = old &^ modifiedBit
		}
		if atomic.CompareAndSwapInt32(&o.refCount, old, next) {
			return
		}
	}
}

// HighBit reports the transient "modified" flag.
func (o *Object) HighBit() bool {
	return atomic.LoadInt32(&o.refCount)&modifiedBit != 0
}

// Equals is the default identity comparison; embedding types override it to
// implement Comparable with field-wise semantics.
func (o *Object) Equals(other any) bool {
	ov, ok := other.(*Object)
	return ok && ov == o
}

// DisplayName is the default Displayable implementation.
func (o *Object) DisplayName() string {
	return "object.Object"
}

// PrintDiffInfo is the default DiffPrintable implementation: a no-op, since
// most objects are only ever diffed through a wrapping type that overrides
// this method with something meaningful.
func (o *Object) PrintDiffInfo(DiffOperation, any) {}

var _ Comparable = (*Object)(nil)
var _ Displayable = (*Object)(nil)
var _ DiffPrintable = (*Object)(nil)
