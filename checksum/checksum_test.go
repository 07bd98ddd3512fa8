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

package checksum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdler32KnownVector(t *testing.T) {
	// "Wikipedia" -> 0x11E60398, the worked example from the Adler-32 spec.
	require.Equal(t, uint32(0x11E60398), Adler32([]byte("Wikipedia")))
}

func TestAdler32EmptyInput(t *testing.T) {
	require.Equal(t, uint32(1), Adler32(nil))
}

func TestCRC32KnownVector(t *testing.T) {
	require.Equal(t, uint32(0xCBF43926), CRC32([]byte("123456789")))
}

func TestRollingAdler32MatchesWholeBufferChecksum(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	r := NewRollingAdler32()
	for i := 0; i < len(data); i += 7 {
		end := i + 7
		if end > len(data) {
			end = len(data)
		}
		n, err := r.Write(data[i:end])
		require.NoError(t, err)
		require.Equal(t, end-i, n)
	}

	require.Equal(t, Adler32(data), r.Sum32())
}
