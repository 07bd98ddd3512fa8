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

import "sync"

// Pool is a FIFO of objects scheduled for deferred release (spec.md §3, §4.1
// "Autorelease pool"). A Pool is safe for concurrent Autorelease calls; Drain
// detaches the whole backlog under the lock and releases outside it, so that
// a destructor that calls Autorelease again during Drain is deferred to the
// *next* Drain rather than deadlocking or being lost.
type Pool struct {
	mu      sync.Mutex
	entries []*Object
}

// NewPool creates an empty, unattached pool.
func NewPool() *Pool {
	return &Pool{}
}

func (p *Pool) enqueue(o *Object) {
	p.mu.Lock()
	p.entries = append(p.entries, o)
	p.mu.Unlock()
}

// Drain releases every object enqueued so far, in enqueue order, exactly
// once each. Objects autoreleased by a destructor invoked during Drain are
// queued for the next Drain call, not processed by this one.
func (p *Pool) Drain() {
	p.mu.Lock()
	batch := p.entries
	p.entries = nil
	p.mu.Unlock()

	for _, o := range batch {
		o.Release()
	}
}

// Pending returns the number of objects currently queued, for diagnostics
// and tests; it is not part of the stable API surface.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

var (
	defaultPools   = map[uint64]*Pool{}
	defaultPoolsMu sync.Mutex
)

// DefaultPool returns the calling goroutine's default pool, creating it on
// first use (spec.md §4.1: "There is one default pool per thread"). Go has
// no stable thread-local storage, so the pool is keyed by a per-goroutine
// token obtained from goroutineToken; callers that need a deterministic
// pool across goroutine hops should create and pass an explicit *Pool
// instead of relying on this default.
func DefaultPool() *Pool {
	key := goroutineToken()

	defaultPoolsMu.Lock()
	defer defaultPoolsMu.Unlock()
	p, ok := defaultPools[key]
	if !ok {
		p = NewPool()
		defaultPools[key] = p
	}
	return p
}
