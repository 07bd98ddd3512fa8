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

// Package checksum provides the Adler-32 rolling checksum the zlib stream
// trailer uses (spec.md §4.5) and a CRC-32 routine for the ZipFile-style
// collaborators mentioned in spec.md §1 (include/core/CRC.h in the
// original). Both are thin wrappers over the standard library's hash
// implementations: no example in the retrieved pack ships its own
// Adler-32/CRC-32, and stdlib's hash/adler32 and hash/crc32 are exactly
// the RFC-1950 and zip-compatible algorithms this spec calls for, so
// reimplementing them by hand would add risk without adding fidelity.
package checksum

import (
	"hash"
	"hash/adler32"
	"hash/crc32"
)

// Adler32 computes the Adler-32 checksum of data, as used in the zlib
// stream trailer (spec.md §4.5).
func Adler32(data []byte) uint32 {
	return adler32.Checksum(data)
}

// CRC32 computes the standard (IEEE) CRC-32 of data.
func CRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// RollingAdler32 accumulates an Adler-32 checksum across successive Write
// calls, for streaming producers that do not buffer the whole payload.
type RollingAdler32 struct {
	h hash.Hash32
}

// NewRollingAdler32 returns a fresh streaming Adler-32 accumulator.
func NewRollingAdler32() *RollingAdler32 {
	return &RollingAdler32{h: adler32.New()}
}

// Write feeds more bytes into the checksum.
func (r *RollingAdler32) Write(p []byte) (int, error) {
	return r.h.Write(p)
}

// Sum32 returns the checksum of all bytes written so far.
func (r *RollingAdler32) Sum32() uint32 {
	return r.h.Sum32()
}
