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

// Package main implements the TestVector entry point of spec.md §6
// ("CLI / config"): a small assertion-counting harness, distinct from the
// package-level `go test` suites, that drives the scenarios spec.md §8
// enumerates by index. Its exit code equals the number of failed
// assertions, matching the legacy program's own ad hoc test runner rather
// than go test's pass/fail model.
package main

import (
	"bytes"
	"fmt"

	"github.com/jameo-labs/corelib/binary"
	"github.com/jameo-labs/corelib/codec/flate"
	"github.com/jameo-labs/corelib/container/list"
	"github.com/jameo-labs/corelib/diff"
	"github.com/jameo-labs/corelib/document"
	"github.com/jameo-labs/corelib/object"
	"github.com/jameo-labs/corelib/undo"
)

// assertion accumulates pass/fail results for a single scenario.
type assertion struct {
	name    string
	failed  int
	checked int
}

func (a *assertion) True(cond bool, msg string, args ...any) {
	a.checked++
	if !cond {
		a.failed++
		fmt.Printf("  FAIL [%s] %s\n", a.name, fmt.Sprintf(msg, args...))
	}
}

func (a *assertion) Equal(want, got any, msg string) {
	a.True(fmt.Sprint(want) == fmt.Sprint(got), "%s: want %v, got %v", msg, want, got)
}

// testVector is one named, independently runnable scenario.
type testVector struct {
	name string
	run  func(a *assertion)
}

// vectors is the ordered list of scenarios, matching spec.md §8's
// enumeration: 6 concrete scenarios, indices 0 through 5.
var vectors = []testVector{
	{"list-with-undo", scenarioListWithUndo},
	{"editable-setter-invalid-input", scenarioEditableSetter},
	{"dynamic-huffman-inflate-million-zeros", scenarioDynamicHuffmanInflate},
	{"diff-add-delete", scenarioDiffAddDelete},
	{"binary-framing-roundtrip", scenarioBinaryFraming},
	{"object-lifetime", scenarioObjectLifetime},
}

// runVector executes vector index i, printing a summary, and returns the
// number of failed assertions.
func runVector(i int) int {
	v := vectors[i]
	a := &assertion{name: v.name}
	v.run(a)
	fmt.Printf("[%d] %-40s %d/%d passed\n", i, v.name, a.checked-a.failed, a.checked)
	return a.failed
}

// runAll executes every vector in order and returns the total number of
// failed assertions across all of them.
func runAll() int {
	total := 0
	for i := range vectors {
		total += runVector(i)
	}
	return total
}

// scenarioListWithUndo is spec.md §8 scenario 1.
func scenarioListWithUndo(a *assertion) {
	um := undo.NewManager(nil)
	l := list.New(nil)

	objs := make([]*object.Object, 5)
	um.Open()
	for i := range objs {
		objs[i] = object.New()
		l.Add(objs[i], um)
	}
	um.Close(true)
	a.True(l.Size() == 5, "size after insert is %d, want 5", l.Size())

	um.Open()
	l.Clear(um)
	um.Close(true)
	a.True(l.Size() == 0, "size after clear is %d, want 0", l.Size())

	a.True(um.Undo(), "undo of clear should succeed")
	a.True(l.Size() == 5, "size after undo is %d, want 5", l.Size())

	got := l.ToSlice()
	a.True(len(got) == 5, "restored slice length is %d, want 5", len(got))
	for i := range objs {
		if i < len(got) {
			a.True(got[i] == objs[i], "element %d out of order after undo", i)
		}
	}
}

// scenarioEditableSetter is spec.md §8 scenario 2.
func scenarioEditableSetter(a *assertion) {
	doc := newRunnerDocument()
	addr := newRunnerAddress(doc)
	addr.street = "Main Street"
	addr.houseNumber = 5

	doc.UndoManager().Open()
	status := addr.SetStreetAddress("X", -19)
	doc.UndoManager().Close(status != document.InvalidInput)

	a.True(status == document.InvalidInput, "status is %v, want InvalidInput", status)
	a.True(addr.street == "Main Street", "street changed to %q", addr.street)
	a.True(addr.houseNumber == 5, "houseNumber changed to %d", addr.houseNumber)
	a.True(!doc.UndoManager().HasOpenTransaction(), "transaction left open")
	a.True(!doc.UndoManager().HasOpenUndoStep(), "undo step left open")
}

// scenarioDynamicHuffmanInflate is spec.md §8 scenario 3.
func scenarioDynamicHuffmanInflate(a *assertion) {
	const n = 1_000_000
	zeros := make([]byte, n)

	def := flate.NewDeflater(true, flate.DefaultCompression, nil)
	compressed, err := def.Deflate(zeros)
	a.True(err == nil, "deflate failed: %v", err)
	if err != nil {
		return
	}
	a.True(len(compressed) < 1500, "compressed size is %d, want < 1500", len(compressed))

	inf := flate.NewInflater(true, nil)
	out, err := inf.Inflate(compressed)
	a.True(err == nil, "inflate failed: %v", err)
	a.True(len(out) == n, "decompressed length is %d, want %d", len(out), n)
	a.True(bytes.Equal(out, zeros), "decompressed content does not match")
}

// diffItem is a single-rune diff.Item for scenarioDiffAddDelete.
type diffItem struct{ r rune }

func (d diffItem) Equals(other any) bool {
	o, ok := other.(diffItem)
	return ok && o.r == d.r
}
func (d diffItem) DisplayName() string { return string(d.r) }

func diffItems(s string) []diff.Item {
	out := make([]diff.Item, 0, len(s))
	for _, r := range s {
		out = append(out, diffItem{r})
	}
	return out
}

// scenarioDiffAddDelete is spec.md §8 scenario 4.
func scenarioDiffAddDelete(a *assertion) {
	e := diff.New()
	for _, it := range diffItems("ABC") {
		e.AddU(it)
	}
	for _, it := range diffItems("AC") {
		e.AddV(it)
	}

	bt := e.Solve()
	a.True(e.Distance() == 1, "distance is %d, want 1", e.Distance())

	add, del, _ := bt.Counts()
	a.True(add == 0, "add count is %d, want 0", add)
	a.True(del == 1, "delete count is %d, want 1", del)
}

// scenarioBinaryFraming is spec.md §8 scenario 5.
func scenarioBinaryFraming(a *assertion) {
	s := binary.NewSerializer()
	s.PutUint24BE(0x123456)
	got := s.Bytes()
	want := []byte{0x12, 0x34, 0x56}
	a.True(bytes.Equal(got, want), "encoded bytes are % x, want % x", got, want)

	r := binary.NewSerializerFromBytes(got)
	v, err := r.GetUint24BE()
	a.True(err == nil, "decode failed: %v", err)
	a.True(v == 0x123456, "decoded value is %#x, want 0x123456", v)
}

// scenarioObjectLifetime is spec.md §8 scenario 6.
func scenarioObjectLifetime(a *assertion) {
	o := object.New()
	o.Retain()
	o.Retain()
	o.Retain()
	a.True(o.ReferenceCount() == 4, "refcount after 3 retains is %d, want 4", o.ReferenceCount())

	o.Release()
	o.Release()
	o.Release()
	a.True(o.ReferenceCount() == 1, "refcount after 3 releases is %d, want 1", o.ReferenceCount())

	pool := object.NewPool()
	o.Autorelease(pool)
	a.True(pool.Pending() == 1, "pool pending is %d, want 1", pool.Pending())
	pool.Drain()
	a.True(o.ReferenceCount() == 0, "refcount after drain is %d, want 0", o.ReferenceCount())
	a.True(pool.Pending() == 0, "pool pending after drain is %d, want 0", pool.Pending())
}
