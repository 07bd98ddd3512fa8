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

package binary

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestUint24BigEndianFraming(t *testing.T) {
	s := NewSerializer()
	s.PutUint24BE(0x123456)
	require.Equal(t, []byte{0x12, 0x34, 0x56}, s.Bytes())

	r := NewSerializerFromBytes(s.Bytes())
	v, err := r.GetUint24BE()
	require.NoError(t, err)
	require.Equal(t, uint32(0x123456), v)
}

func TestIntegerRoundTripBothEndians(t *testing.T) {
	s := NewSerializer()
	s.PutUint16LE(0xABCD)
	s.PutUint16BE(0xABCD)
	s.PutInt32LE(-12345)
	s.PutInt32BE(-12345)
	s.PutUint64LE(0x0102030405060708)

	r := NewSerializerFromBytes(s.Bytes())
	u16le, err := r.GetUint16LE()
	require.NoError(t, err)
	require.Equal(t, uint16(0xABCD), u16le)

	u16be, err := r.GetUint16BE()
	require.NoError(t, err)
	require.Equal(t, uint16(0xABCD), u16be)

	i32le, err := r.GetInt32LE()
	require.NoError(t, err)
	require.Equal(t, int32(-12345), i32le)

	i32be, err := r.GetInt32BE()
	require.NoError(t, err)
	require.Equal(t, int32(-12345), i32be)

	u64le, err := r.GetUint64LE()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), u64le)
}

func TestFloatRoundTrip(t *testing.T) {
	s := NewSerializer()
	s.PutFloat32LE(3.14159)
	s.PutFloat64BE(-2.71828182845)

	r := NewSerializerFromBytes(s.Bytes())
	f32, err := r.GetFloat32LE()
	require.NoError(t, err)
	require.InDelta(t, 3.14159, f32, 1e-5)

	f64, err := r.GetFloat64BE()
	require.NoError(t, err)
	require.InDelta(t, -2.71828182845, f64, 1e-10)
}

func TestLengthPrefixedStringRoundTrip(t *testing.T) {
	s := NewSerializer()
	s.PutString("héllo wörld")

	r := NewSerializerFromBytes(s.Bytes())
	got, err := r.GetString()
	require.NoError(t, err)
	require.Equal(t, "héllo wörld", got)
}

func TestShortBufferIsRejected(t *testing.T) {
	r := NewSerializerFromBytes([]byte{0x01})
	_, err := r.GetUint32LE()
	require.ErrorIs(t, err, ErrShortBuffer)
}

func TestUint256RoundTrip(t *testing.T) {
	want := uint256.NewInt(0).SetAllOne()
	s := NewSerializer()
	s.PutUint256BE(want)

	r := NewSerializerFromBytes(s.Bytes())
	got, err := r.GetUint256BE()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
