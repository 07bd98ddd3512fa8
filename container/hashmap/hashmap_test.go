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

package hashmap

import (
	"fmt"
	"sort"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"

	"github.com/jameo-labs/corelib/object"
	"github.com/jameo-labs/corelib/undo"
)

func TestPutGetRemove(t *testing.T) {
	m := New()
	a := object.New()
	m.Put("a", a, nil)

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Same(t, a, v)

	require.True(t, m.Remove("a", nil))
	_, ok = m.Get("a")
	require.False(t, ok)
}

func TestRemoveMissingKey(t *testing.T) {
	m := New()
	require.False(t, m.Remove("nope", nil))
}

func TestOverwriteExistingKey(t *testing.T) {
	m := New()
	a, b := object.New(), object.New()
	m.Put("k", a, nil)
	m.Put("k", b, nil)

	v, ok := m.Get("k")
	require.True(t, ok)
	require.Same(t, b, v)
	require.Equal(t, 1, m.Size())
}

func TestRehashPreservesAllEntries(t *testing.T) {
	m := New()
	values := make(map[string]*object.Object)
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("key-%d", i)
		o := object.New()
		values[key] = o
		m.Put(key, o, nil)
	}
	require.Equal(t, 100, m.Size())
	for key, o := range values {
		v, ok := m.Get(key)
		require.True(t, ok)
		require.Same(t, o, v)
	}
}

func TestKeysMatchExpectedSetAfterPutsAndRemoves(t *testing.T) {
	m := New()
	for i := 0; i < 20; i++ {
		m.Put(fmt.Sprintf("key-%d", i), object.New(), nil)
	}
	for i := 0; i < 20; i += 2 {
		m.Remove(fmt.Sprintf("key-%d", i), nil)
	}

	var want []string
	for i := 1; i < 20; i += 2 {
		want = append(want, fmt.Sprintf("key-%d", i))
	}
	sort.Strings(want)

	got := m.Keys()
	sort.Strings(got)

	if diff := deep.Equal(want, got); diff != nil {
		t.Errorf("surviving keys differ from expected: %v", diff)
	}
}

func TestUndoRedoOfPutAndRemove(t *testing.T) {
	m := New()
	um := undo.NewManager(nil)
	a := object.New()

	um.Open()
	m.Put("a", a, um)
	um.Close(true)
	require.Equal(t, 1, m.Size())

	um.Open()
	m.Remove("a", um)
	um.Close(true)
	require.Equal(t, 0, m.Size())

	require.True(t, um.Undo())
	v, ok := m.Get("a")
	require.True(t, ok)
	require.Same(t, a, v)

	require.True(t, um.Undo())
	_, ok = m.Get("a")
	require.False(t, ok)

	require.True(t, um.Redo())
	require.True(t, um.Redo())
	_, ok = m.Get("a")
	require.False(t, ok)
}

func TestUndoOfOverwriteRestoresPriorValue(t *testing.T) {
	m := New()
	um := undo.NewManager(nil)
	a, b := object.New(), object.New()
	m.Put("k", a, nil)

	um.Open()
	m.Put("k", b, um)
	um.Close(true)

	v, _ := m.Get("k")
	require.Same(t, b, v)

	require.True(t, um.Undo())
	v, _ = m.Get("k")
	require.Same(t, a, v)
}
