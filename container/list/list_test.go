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

package list

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jameo-labs/corelib/object"
	"github.com/jameo-labs/corelib/undo"
)

// TestLinkedListWithUndo reproduces spec.md §8 scenario 1.
func TestLinkedListWithUndo(t *testing.T) {
	l := New(nil)
	um := undo.NewManager(nil)

	objs := make([]*object.Object, 5)
	for i := range objs {
		objs[i] = object.New()
	}

	um.Open()
	for _, o := range objs {
		l.Add(o, um)
	}
	um.Close(true)
	require.EqualValues(t, 5, l.Size())

	um.Open()
	l.Clear(um)
	um.Close(true)
	require.EqualValues(t, 0, l.Size())

	require.True(t, um.Undo())
	require.EqualValues(t, 5, l.Size())
	require.Equal(t, objs, l.ToSlice())
}

func TestSizeMatchesTraversalCount(t *testing.T) {
	l := New(nil)
	for i := 0; i < 10; i++ {
		l.Add(object.New(), nil)
	}

	l.Rewind()
	count := uint32(0)
	for l.HasNext() {
		l.Next()
		count++
	}
	require.Equal(t, l.Size(), count)
}

func TestRemoveAdvancesCursorPastRemovedNode(t *testing.T) {
	l := New(nil)
	a, b, c := object.New(), object.New(), object.New()
	l.Add(a, nil)
	l.Add(b, nil)
	l.Add(c, nil)

	l.Rewind()
	require.Same(t, a, l.Next())
	// cursor now points at b; remove b and make sure Next() yields c.
	require.NoError(t, l.Remove(b, nil))
	require.Same(t, c, l.Next())
	require.False(t, l.HasNext())
}

func TestRemoveNotFound(t *testing.T) {
	l := New(nil)
	require.ErrorIs(t, l.Remove(object.New(), nil), ErrNotFound)
}

func TestAddBeforeAndSwapData(t *testing.T) {
	l := New(nil)
	a, b, c := object.New(), object.New(), object.New()
	l.Add(a, nil)
	l.Add(c, nil)
	l.AddBefore(c, b, nil)
	require.Equal(t, []*object.Object{a, b, c}, l.ToSlice())

	l.SwapData(a, c, nil)
	require.Equal(t, []*object.Object{c, b, a}, l.ToSlice())
}

func TestUndoOfRemoveRestoresPosition(t *testing.T) {
	l := New(nil)
	um := undo.NewManager(nil)
	a, b, c := object.New(), object.New(), object.New()
	l.Add(a, nil)
	l.Add(b, nil)
	l.Add(c, nil)

	um.Open()
	require.NoError(t, l.Remove(b, um))
	um.Close(true)
	require.Equal(t, []*object.Object{a, c}, l.ToSlice())

	require.True(t, um.Undo())
	require.Equal(t, []*object.Object{a, b, c}, l.ToSlice())
}
