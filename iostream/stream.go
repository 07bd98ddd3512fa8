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

// Package iostream provides the Stream abstraction consumed by the codec
// and object model (spec.md §6 "Stream surface"), grounded in
// _examples/original_source/include/core/Stream.h and MemoryStream.h.
package iostream

import "github.com/pkg/errors"

// Mode selects how a Stream is opened (spec.md §6 "Modes: Read, Write,
// ReadWrite").
type Mode int

const (
	ModeRead Mode = iota
	ModeWrite
	ModeReadWrite
)

// ErrNotOpen is returned by any operation attempted on a closed stream.
var ErrNotOpen = errors.New("iostream: stream is not open")

// ErrAlreadyOpen is returned by Open on a stream that is already open.
var ErrAlreadyOpen = errors.New("iostream: stream is already open")

// Stream is the minimal I/O contract the codec and object model build on
// (spec.md §6): open/close/isOpen, read/readFully, write, and a seekable
// position/size surface.
type Stream interface {
	Open(mode Mode) error
	Close() error
	IsOpen() bool

	Read(buf []byte) (int, error)
	ReadFully(buf []byte) error
	Write(buf []byte) (int, error)

	Seek(position int64) error
	Move(offset int64) error
	Position() (int64, error)
	Size() (int64, error)
}

// ReadFullyFrom is shared by Stream implementations whose Read already
// follows io.Reader short-read semantics: it loops Read until buf is full
// or a read returns an error.
func ReadFullyFrom(s Stream, buf []byte) error {
	total := 0
	for total < len(buf) {
		n, err := s.Read(buf[total:])
		total += n
		if err != nil {
			return err
		}
		if n == 0 {
			return errors.New("iostream: read returned no data before buffer was full")
		}
	}
	return nil
}
