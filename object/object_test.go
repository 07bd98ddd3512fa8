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

package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReferenceCounting(t *testing.T) {
	o := New()
	require.EqualValues(t, 1, o.ReferenceCount())

	o.Retain()
	o.Retain()
	o.Retain()
	require.EqualValues(t, 4, o.ReferenceCount())

	o.Release()
	o.Release()
	o.Release()
	require.EqualValues(t, 1, o.ReferenceCount())

	require.NotPanics(t, func() { o.Release() })
}

func TestReleaseUnderflowPanics(t *testing.T) {
	o := New()
	o.Release()
	require.Panics(t, func() { o.Release() })
}

func TestHighBitIsHiddenFromReferenceCount(t *testing.T) {
	o := New()
	o.Retain()
	o.SetHighBit(true)
	require.True(t, o.HighBit())
	require.EqualValues(t, 2, o.ReferenceCount())

	o.SetHighBit(false)
	require.False(t, o.HighBit())
	require.EqualValues(t, 2, o.ReferenceCount())
}

func TestAutoreleasePoolDrainReleasesEachOnce(t *testing.T) {
	p := NewPool()

	a := New().Autorelease(p)
	b := New().Autorelease(p)
	c := New().Autorelease(p)
	require.Equal(t, 3, p.Pending())

	p.Drain()
	require.Equal(t, 0, p.Pending())

	require.EqualValues(t, 0, a.ReferenceCount())
	require.EqualValues(t, 0, b.ReferenceCount())
	require.EqualValues(t, 0, c.ReferenceCount())

	require.Panics(t, func() { a.Release() })
}

func TestAutoreleaseDuringDrainDefersToNextDrain(t *testing.T) {
	p := NewPool()
	reentrant := New()

	// Go has no destructor hook to re-enter Autorelease from inside Drain,
	// so the enqueue happens right after Drain has detached and released
	// its batch: it must land in the pool's *next* batch, untouched by the
	// drain that already ran.
	first := New()
	first.Autorelease(p)

	p.Drain()
	p.enqueue(reentrant)
	require.Equal(t, 1, p.Pending())

	p.Drain()
	require.Equal(t, 0, p.Pending())
	require.EqualValues(t, 0, reentrant.ReferenceCount())
}

func TestDefaultPoolIsPerGoroutine(t *testing.T) {
	p1 := DefaultPool()
	p2 := DefaultPool()
	require.Same(t, p1, p2)

	done := make(chan *Pool)
	go func() {
		done <- DefaultPool()
	}()
	other := <-done
	require.NotSame(t, p1, other)
}
