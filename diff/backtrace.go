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

import "github.com/jameo-labs/corelib/object"

// Step is one element of a Backtrace path: a doubly-linked chain node
// labelled with the operation that produced it (spec.md §4.6 "a doubly-
// linked chain of steps, each labelled {equal, add, delete, modified}").
// DiffModified marks a one-step substitution, u[i] replaced by v[j], at
// equal cost to the add/delete alternatives it was chosen over. A caller
// diffing compound items at finer granularity may further reclassify an
// Equal step whose children differ (spec.md §4.6 "Contract when items have
// sub-structure") — that is a separate, additional use of the label, not
// the only one.
type Step struct {
	Op    object.DiffOperation
	Left  Item // set for Equal, Modified and Delete
	Right Item // set for Equal, Modified and Add

	prev, next *Step
}

// Next returns the following step, or nil at the end of the chain.
func (s *Step) Next() *Step { return s.next }

// Prev returns the preceding step, or nil at the start of the chain.
func (s *Step) Prev() *Step { return s.prev }

// Backtrace is the reconstructed edit path from (0,0) to (|U|,|V|).
type Backtrace struct {
	head, tail *Step
	length     int
}

// Head returns the first step of the path, or nil if both sequences were
// empty.
func (b *Backtrace) Head() *Step { return b.head }

// Len returns the total number of steps, equal or not.
func (b *Backtrace) Len() int { return b.length }

func (b *Backtrace) append(s *Step) {
	if b.tail == nil {
		b.head, b.tail = s, s
	} else {
		s.prev = b.tail
		b.tail.next = s
		b.tail = s
	}
	b.length++
}

// Counts returns the number of add, delete and modified steps in the path
// (equal steps are not counted, matching the "printed output" counts in
// spec.md §8 scenario 4).
func (b *Backtrace) Counts() (add, del, modified int) {
	for s := b.head; s != nil; s = s.next {
		switch s.Op {
		case object.DiffAdd:
			add++
		case object.DiffDelete:
			del++
		case object.DiffModified:
			modified++
		}
	}
	return
}

// backtrack walks the filled D table from (|U|,|V|) back to (0,0),
// recovering at each cell which of the recurrence's alternatives produced
// it, then reverses the resulting path into chronological order.
func (e *Engine) backtrack() *Backtrace {
	i, j := len(e.u), len(e.v)

	var reversed []*Step

	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && e.match[i][j]:
			reversed = append(reversed, &Step{Op: object.DiffEqual, Left: e.u[i-1], Right: e.v[j-1]})
			i--
			j--
		case i > 0 && j > 0 && e.dist[i][j] == e.dist[i-1][j-1]+1:
			reversed = append(reversed, &Step{Op: object.DiffModified, Left: e.u[i-1], Right: e.v[j-1]})
			i--
			j--
		case i > 0 && e.dist[i][j] == e.dist[i-1][j]+1:
			reversed = append(reversed, &Step{Op: object.DiffDelete, Left: e.u[i-1]})
			i--
		default: // j > 0 && e.dist[i][j] == e.dist[i][j-1]+1
			reversed = append(reversed, &Step{Op: object.DiffAdd, Right: e.v[j-1]})
			j--
		}
	}

	bt := &Backtrace{}
	for k := len(reversed) - 1; k >= 0; k-- {
		bt.append(reversed[k])
	}
	return bt
}
