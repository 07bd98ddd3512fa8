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

package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jameo-labs/corelib/codec/bitio"
)

func TestCanonicalConstructionTextbookExample(t *testing.T) {
	// RFC 1951 3.2.2 worked example: symbols A..H with lengths
	// 3,3,3,3,3,2,4,4 give A,B,C,D the codes 010,011,100,101 ... here we use
	// the smaller textbook case: lengths 2,1,3,3 for symbols A,B,C,D => codes
	// 10,0,110,111.
	lengths := []uint16{2, 1, 3, 3}
	tree, err := New(lengths)
	require.NoError(t, err)

	// Manually encode "B A C D" = 0 10 110 111 and decode it back.
	w := []byte{}
	bits := "0" + "10" + "110" + "111"
	var cur byte
	var nbits int
	for _, c := range bits {
		if c == '1' {
			cur |= 1 << nbits
		}
		nbits++
		if nbits == 8 {
			w = append(w, cur)
			cur, nbits = 0, 0
		}
	}
	if nbits > 0 {
		w = append(w, cur)
	}

	r := bitio.NewReader(w)
	for _, want := range []uint16{1, 0, 2, 3} {
		got, err := tree.Decode(r)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestFixedTreesBuild(t *testing.T) {
	litTree, err := New(FixedLiteralLengths())
	require.NoError(t, err)
	distTree, err := New(FixedDistanceLengths())
	require.NoError(t, err)
	require.NotNil(t, litTree)
	require.NotNil(t, distTree)
}

func TestCodeTooLongIsRejected(t *testing.T) {
	// A single one-bit symbol occupies code 0; the sibling branch (bit 1)
	// was never assigned, so a stream that sends bit 1 must be rejected
	// rather than silently decoded as something.
	tree, err := New([]uint16{1})
	require.NoError(t, err)

	r := bitio.NewReader([]byte{0xFF})
	_, err = tree.Decode(r)
	require.ErrorIs(t, err, ErrCodeTooLong)
}
