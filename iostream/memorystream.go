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

package iostream

import (
	"io"

	"github.com/pkg/errors"
)

// MemoryStream is an in-memory Stream, grounded on original_source/include/
// core/MemoryStream.h; it serves any caller that needs a Stream without
// touching the filesystem.
type MemoryStream struct {
	buf  []byte
	pos  int64
	mode Mode
	open bool
}

// NewMemoryStream wraps an existing buffer for reading/writing. A nil or
// empty initial slice is valid for a fresh write-only buffer.
func NewMemoryStream(initial []byte) *MemoryStream {
	return &MemoryStream{buf: initial}
}

func (m *MemoryStream) Open(mode Mode) error {
	if m.open {
		return ErrAlreadyOpen
	}
	m.mode = mode
	m.pos = 0
	m.open = true
	return nil
}

func (m *MemoryStream) Close() error {
	m.open = false
	return nil
}

func (m *MemoryStream) IsOpen() bool { return m.open }

func (m *MemoryStream) Read(buf []byte) (int, error) {
	if !m.open {
		return 0, ErrNotOpen
	}
	if m.mode == ModeWrite {
		return 0, errors.New("iostream: stream not opened for reading")
	}
	if m.pos >= int64(len(m.buf)) {
		return 0, io.EOF
	}
	n := copy(buf, m.buf[m.pos:])
	m.pos += int64(n)
	return n, nil
}

func (m *MemoryStream) ReadFully(buf []byte) error {
	return ReadFullyFrom(m, buf)
}

func (m *MemoryStream) Write(buf []byte) (int, error) {
	if !m.open {
		return 0, ErrNotOpen
	}
	if m.mode == ModeRead {
		return 0, errors.New("iostream: stream not opened for writing")
	}
	end := m.pos + int64(len(buf))
	if end > int64(len(m.buf)) {
		grown := make([]byte, end)
		copy(grown, m.buf)
		m.buf = grown
	}
	copy(m.buf[m.pos:end], buf)
	m.pos = end
	return len(buf), nil
}

func (m *MemoryStream) Seek(position int64) error {
	if !m.open {
		return ErrNotOpen
	}
	if position < 0 {
		return errors.New("iostream: negative seek position")
	}
	m.pos = position
	return nil
}

func (m *MemoryStream) Move(offset int64) error {
	return m.Seek(m.pos + offset)
}

func (m *MemoryStream) Position() (int64, error) {
	if !m.open {
		return 0, ErrNotOpen
	}
	return m.pos, nil
}

func (m *MemoryStream) Size() (int64, error) {
	return int64(len(m.buf)), nil
}

// Bytes returns the current contents, valid whether or not the stream is
// open.
func (m *MemoryStream) Bytes() []byte { return m.buf }

var _ Stream = (*MemoryStream)(nil)
