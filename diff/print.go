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
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jameo-labs/corelib/object"
)

// Print walks the backtrace and renders every non-equal step, matching
// DiffBacktrace::print's "writes the result of Diff to the standard output
// stream if something is different" (spec.md §4.6 "print walks it and
// prints only non-equal steps"). Each printed item that implements
// object.DiffPrintable also has PrintDiffInfo invoked so it can report its
// own diagnostic detail.
func (b *Backtrace) Print(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Op", "Left", "Right"})

	i := 0
	for s := b.head; s != nil; s = s.next {
		if s.Op == object.DiffEqual {
			continue
		}
		i++

		var left, right string
		if s.Left != nil {
			left = s.Left.DisplayName()
			if dp, ok := s.Left.(object.DiffPrintable); ok {
				dp.PrintDiffInfo(s.Op, s.Right)
			}
		}
		if s.Right != nil {
			right = s.Right.DisplayName()
			if dp, ok := s.Right.(object.DiffPrintable); ok {
				dp.PrintDiffInfo(s.Op, s.Left)
			}
		}
		t.AppendRow(table.Row{i, s.Op.String(), left, right})
	}

	t.Render()
}
