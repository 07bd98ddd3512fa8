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

package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextBitIsLSBFirst(t *testing.T) {
	r := NewReader([]byte{0b0000_0101})
	bits := make([]uint8, 0, 8)
	for i := 0; i < 8; i++ {
		b, err := r.NextBit()
		require.NoError(t, err)
		bits = append(bits, b)
	}
	require.Equal(t, []uint8{1, 0, 1, 0, 0, 0, 0, 0}, bits)
}

func TestNextBitPastEndReturnsErrUnexpectedEOF(t *testing.T) {
	r := NewReader([]byte{0xff})
	for i := 0; i < 8; i++ {
		_, err := r.NextBit()
		require.NoError(t, err)
	}
	_, err := r.NextBit()
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestNextBitsLowFirstAssemblesLeastSignificantBitFirst(t *testing.T) {
	// 0b0000_0011 read as 3 bits low-first with bits 1,1,0 -> value 0b011 = 3
	r := NewReader([]byte{0b0000_0011})
	v, err := r.NextBitsLowFirst(3)
	require.NoError(t, err)
	require.Equal(t, uint16(3), v)
}

func TestNextBitsHighFirstAssemblesMostSignificantBitFirst(t *testing.T) {
	// same input bits (1,1,0) read high-first -> value 0b110 = 6
	r := NewReader([]byte{0b0000_0011})
	v, err := r.NextBitsHighFirst(3)
	require.NoError(t, err)
	require.Equal(t, uint16(6), v)
}

func TestSkipToByteBoundaryIsNoOpWhenAligned(t *testing.T) {
	r := NewReader([]byte{0xaa, 0xbb})
	require.True(t, r.AtByteBoundary())
	r.SkipToByteBoundary()
	b, err := r.NextAlignedByte()
	require.NoError(t, err)
	require.Equal(t, uint8(0xaa), b)
}

func TestSkipToByteBoundaryAdvancesPastPartialByte(t *testing.T) {
	r := NewReader([]byte{0xaa, 0xbb})
	_, err := r.NextBit()
	require.NoError(t, err)
	require.False(t, r.AtByteBoundary())

	r.SkipToByteBoundary()
	require.True(t, r.AtByteBoundary())
	b, err := r.NextAlignedByte()
	require.NoError(t, err)
	require.Equal(t, uint8(0xbb), b)
}

func TestNextAlignedByteMidByteIsAnError(t *testing.T) {
	r := NewReader([]byte{0xaa})
	_, err := r.NextBit()
	require.NoError(t, err)
	_, err = r.NextAlignedByte()
	require.Error(t, err)
}

func TestNextAlignedUint16LEIsLittleEndian(t *testing.T) {
	r := NewReader([]byte{0x34, 0x12})
	v, err := r.NextAlignedUint16LE()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), v)
}

func TestReadAlignedBytesReturnsRequestedSlice(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})
	got, err := r.ReadAlignedBytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, got)
	require.Equal(t, 2, r.Len())
}

func TestReadAlignedBytesPastEndReturnsErrUnexpectedEOF(t *testing.T) {
	r := NewReader([]byte{1, 2})
	_, err := r.ReadAlignedBytes(3)
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestLenExcludesPartiallyConsumedByte(t *testing.T) {
	r := NewReader([]byte{0xff, 0xff, 0xff})
	require.Equal(t, 3, r.Len())
	_, err := r.NextBit()
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())
}

func TestWriterAccumulatesBytesAndSlices(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteByte(0x01))
	n, err := w.Write([]byte{0x02, 0x03, 0x04})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, w.Bytes())
}
