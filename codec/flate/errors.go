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

package flate

import "github.com/pkg/errors"

// Sentinel errors for the inflate failure taxonomy (spec.md §4.5/§7): each
// one is a hard, non-recoverable decode error that moves the Inflater into
// its sticky error state.
var (
	ErrCorruptHeader     = errors.New("flate: corrupt zlib header")
	ErrUnsupportedMethod = errors.New("flate: unsupported compression method")
	ErrFDictSet          = errors.New("flate: preset dictionary not supported")
	ErrChecksumMismatch  = errors.New("flate: adler-32 checksum mismatch")
	ErrBadBlockType      = errors.New("flate: reserved block type 3")
	ErrStoredLenMismatch = errors.New("flate: stored block length/complement mismatch")
	ErrBadDistance       = errors.New("flate: back-reference predates start of output")
	ErrBadSymbol         = errors.New("flate: decoded symbol outside [0..285]")
	ErrSticky            = errors.New("flate: inflater already in a failed state")
)
