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

package diff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agnivade/levenshtein"
	"github.com/stretchr/testify/require"

	"github.com/jameo-labs/corelib/object"
)

// letterItem is a minimal Item over single characters, used to exercise the
// engine the way the original test vectors compare short symbol sequences.
type letterItem struct {
	letter byte
}

func (l letterItem) Equals(other any) bool {
	o, ok := other.(letterItem)
	return ok && o.letter == l.letter
}

func (l letterItem) DisplayName() string { return string(l.letter) }

func letters(s string) []Item {
	out := make([]Item, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = letterItem{s[i]}
	}
	return out
}

func newEngine(u, v string) *Engine {
	e := New()
	for _, it := range letters(u) {
		e.AddU(it)
	}
	for _, it := range letters(v) {
		e.AddV(it)
	}
	return e
}

func TestAddDeleteScenario(t *testing.T) {
	e := newEngine("ABC", "AC")
	bt := e.Solve()
	require.Equal(t, 1, e.Distance())

	add, del, modified := bt.Counts()
	require.Equal(t, 0, add)
	require.Equal(t, 1, del)
	require.Equal(t, 0, modified)

	var ops []object.DiffOperation
	for s := bt.Head(); s != nil; s = s.Next() {
		ops = append(ops, s.Op)
	}
	require.Equal(t, []object.DiffOperation{object.DiffEqual, object.DiffDelete, object.DiffEqual}, ops)
}

func TestDiffSymmetryAtEquality(t *testing.T) {
	e := newEngine("HELLO", "HELLO")
	bt := e.Solve()
	require.Equal(t, 0, e.Distance())
	for s := bt.Head(); s != nil; s = s.Next() {
		require.Equal(t, object.DiffEqual, s.Op)
	}
}

func TestDiffMinimalityMatchesBacktraceLength(t *testing.T) {
	e := newEngine("kitten", "sitting")
	bt := e.Solve()

	add, del, modified := bt.Counts()
	require.Equal(t, e.Distance(), add+del+modified)
}

func TestSubstitutionYieldsModifiedStep(t *testing.T) {
	e := newEngine("cat", "cot")
	bt := e.Solve()
	require.Equal(t, 1, e.Distance())

	add, del, modified := bt.Counts()
	require.Equal(t, 0, add)
	require.Equal(t, 0, del)
	require.Equal(t, 1, modified)

	var ops []object.DiffOperation
	for s := bt.Head(); s != nil; s = s.Next() {
		ops = append(ops, s.Op)
	}
	require.Equal(t, []object.DiffOperation{object.DiffEqual, object.DiffModified, object.DiffEqual}, ops)
}

func TestDistanceCrossCheckedAgainstLevenshteinLibrary(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "abc"},
		{"abc", ""},
		{"flaw", "lawn"},
		{"gumbo", "gambol"},
	}
	for _, p := range pairs {
		e := newEngine(p[0], p[1])
		e.Solve()
		require.Equal(t, levenshtein.ComputeDistance(p[0], p[1]), e.Distance(), "mismatch for %q/%q", p[0], p[1])
	}
}

func TestEmptySequencesYieldEmptyBacktrace(t *testing.T) {
	e := New()
	bt := e.Solve()
	require.Equal(t, 0, e.Distance())
	require.Equal(t, 0, bt.Len())
	require.Nil(t, bt.Head())
}

func TestCellsEvaluatedIsPositiveForNonTrivialInput(t *testing.T) {
	e := newEngine("kitten", "sitting")
	e.Solve()
	require.Greater(t, e.CellsEvaluated(), 0)
}

func TestPrintOnlyRendersNonEqualSteps(t *testing.T) {
	e := newEngine("ABC", "AC")
	bt := e.Solve()

	var buf bytes.Buffer
	bt.Print(&buf)
	out := buf.String()

	require.Equal(t, 1, strings.Count(out, "delete"))
	require.Equal(t, 0, strings.Count(out, "add"))
}
