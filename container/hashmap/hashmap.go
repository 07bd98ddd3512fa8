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

// Package hashmap implements the undo-aware open-addressing hash map of
// spec.md §4.4: linear probing, tombstones, load factor <= 0.75 before
// rehashing to the next power of two. Keys are strings; values are
// *object.Object, retained on put and released on remove.
package hashmap

import (
	"github.com/cespare/xxhash/v2"

	"github.com/jameo-labs/corelib/object"
	"github.com/jameo-labs/corelib/undo"
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

type bucket struct {
	state slotState
	key   string
	value *object.Object
}

const loadFactorLimit = 0.75

// Map is the open-addressing hash table of spec.md §4.4.
type Map struct {
	buckets []bucket
	count   int // occupied, excludes tombstones
}

// New returns an empty map with an initial capacity of 16 buckets.
func New() *Map {
	return &Map{buckets: make([]bucket, 16)}
}

func hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

func (m *Map) indexOf(key string) (idx int, found bool) {
	n := len(m.buckets)
	start := int(hash(key) % uint64(n))
	for i := 0; i < n; i++ {
		idx = (start + i) % n
		b := &m.buckets[idx]
		switch b.state {
		case slotEmpty:
			return idx, false
		case slotOccupied:
			if b.key == key {
				return idx, true
			}
		case slotTombstone:
			// keep probing; the key may be further along the chain
		}
	}
	return -1, false
}

// firstFreeSlot finds either the occupied bucket holding key, or the first
// empty-or-tombstone slot that would receive it, whichever comes first on
// the probe sequence.
func (m *Map) firstFreeSlot(key string) (idx int, found bool) {
	n := len(m.buckets)
	start := int(hash(key) % uint64(n))
	firstFree := -1
	for i := 0; i < n; i++ {
		idx = (start + i) % n
		b := &m.buckets[idx]
		switch b.state {
		case slotEmpty:
			if firstFree == -1 {
				firstFree = idx
			}
			return firstFree, false
		case slotTombstone:
			if firstFree == -1 {
				firstFree = idx
			}
		case slotOccupied:
			if b.key == key {
				return idx, true
			}
		}
	}
	return firstFree, false
}

// Get returns the value for key and whether it was present.
func (m *Map) Get(key string) (*object.Object, bool) {
	idx, found := m.indexOf(key)
	if !found {
		return nil, false
	}
	return m.buckets[idx].value, true
}

// Size returns the number of live key/value pairs.
func (m *Map) Size() int { return m.count }

// Put inserts or overwrites key -> value. On insert, the undo record is a
// remove of key; on overwrite, it is a restore of the prior value (spec.md
// §4.4 "put either inserts (record: remove on undo) or overwrites (record:
// restore old v)").
func (m *Map) Put(key string, value *object.Object, um *undo.Manager) {
	idx, found := m.firstFreeSlot(key)
	value.Retain()

	if found {
		old := m.buckets[idx].value
		m.buckets[idx].value = value
		old.Release()

		if um != nil {
			um.AppendRecord(undo.NewRecord("hash put (overwrite)",
				func() { m.overwriteValue(key, old) },
				func() { m.overwriteValue(key, value) },
			))
		}
		return
	}

	m.buckets[idx] = bucket{state: slotOccupied, key: key, value: value}
	m.count++
	m.maybeRehash()

	if um != nil {
		um.AppendRecord(undo.NewRecord("hash put (insert)",
			func() { _ = m.removeKey(key) },
			func() { m.insertKey(key, value) },
		))
	}
}

// overwriteValue sets the value stored for an existing key, retaining the
// new reference and releasing the old one; used by Put's undo/redo.
func (m *Map) overwriteValue(key string, value *object.Object) {
	idx, found := m.indexOf(key)
	if !found {
		m.insertKey(key, value)
		return
	}
	old := m.buckets[idx].value
	value.Retain()
	m.buckets[idx].value = value
	old.Release()
}

// insertKey reinserts key -> value as a fresh occupied slot (used by Put's
// undo/redo closures, where the key is known not to currently be present).
func (m *Map) insertKey(key string, value *object.Object) {
	idx, found := m.firstFreeSlot(key)
	value.Retain()
	if found {
		old := m.buckets[idx].value
		m.buckets[idx].value = value
		old.Release()
		return
	}
	m.buckets[idx] = bucket{state: slotOccupied, key: key, value: value}
	m.count++
	m.maybeRehash()
}

// removeKey tombstones the slot holding key, releasing its value. Returns
// the removed value, or nil if key was absent.
func (m *Map) removeKey(key string) *object.Object {
	idx, found := m.indexOf(key)
	if !found {
		return nil
	}
	v := m.buckets[idx].value
	m.buckets[idx] = bucket{state: slotTombstone, key: key}
	m.count--
	v.Release()
	return v
}

// Remove deletes key if present, recording its prior value for
// re-insertion on undo (spec.md §4.4 "remove records the old (k,v) for
// re-insertion").
func (m *Map) Remove(key string, um *undo.Manager) (removed bool) {
	idx, found := m.indexOf(key)
	if !found {
		return false
	}
	old := m.buckets[idx].value
	old.Retain() // keep one reference alive for the undo record's lifetime
	m.buckets[idx] = bucket{state: slotTombstone, key: key}
	m.count--
	old.Release()

	if um != nil {
		um.AppendRecord(undo.NewRecord("hash remove",
			func() { m.insertKey(key, old) },
			func() { _ = m.removeKey(key) },
		))
	}
	return true
}

// maybeRehash doubles capacity and reinserts all live entries once the load
// factor exceeds 0.75. Rehashing is not undo-recorded: it is observationally
// equivalent to the table before it (spec.md §4.4).
func (m *Map) maybeRehash() {
	if float64(m.count)/float64(len(m.buckets)) <= loadFactorLimit {
		return
	}
	old := m.buckets
	m.buckets = make([]bucket, len(old)*2)
	m.count = 0
	for _, b := range old {
		if b.state == slotOccupied {
			idx, _ := m.firstFreeSlot(b.key)
			m.buckets[idx] = bucket{state: slotOccupied, key: b.key, value: b.value}
			m.count++
		}
	}
}

// Keys returns the live keys in unspecified order, for tests and iteration
// helpers built on top of the map.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.count)
	for _, b := range m.buckets {
		if b.state == slotOccupied {
			keys = append(keys, b.key)
		}
	}
	return keys
}
