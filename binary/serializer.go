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

// Package binary (de)serializes integers, IEEE-754 floats, length-prefixed
// byte strings and wide (256-bit) integers to/from a byte buffer in either
// endianness, grounded in _examples/original_source/include/core/Serializer.h.
package binary

import (
	"encoding/binary"
	"math"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// ErrShortBuffer is returned when a deserialize call needs more bytes than
// remain in the source buffer.
var ErrShortBuffer = errors.New("binary: buffer too short")

// Serializer accumulates bytes written by the Put* family and tracks a
// read cursor consumed by the Get* family, mirroring the original's
// offset-parameterised free functions as stateful stream-like methods.
type Serializer struct {
	buf []byte
	pos int
}

// NewSerializer returns an empty serializer ready for writing.
func NewSerializer() *Serializer { return &Serializer{} }

// NewSerializerFromBytes wraps an existing buffer for reading.
func NewSerializerFromBytes(buf []byte) *Serializer { return &Serializer{buf: buf} }

// Bytes returns the accumulated buffer.
func (s *Serializer) Bytes() []byte { return s.buf }

// Remaining returns the number of unread bytes.
func (s *Serializer) Remaining() int { return len(s.buf) - s.pos }

func (s *Serializer) need(n int) error {
	if s.Remaining() < n {
		return ErrShortBuffer
	}
	return nil
}

// --- unsigned, little-endian ---

func (s *Serializer) PutUint8(v uint8)   { s.buf = append(s.buf, v) }
func (s *Serializer) PutUint16LE(v uint16) {
	s.buf = binary.LittleEndian.AppendUint16(s.buf, v)
}
func (s *Serializer) PutUint32LE(v uint32) {
	s.buf = binary.LittleEndian.AppendUint32(s.buf, v)
}
func (s *Serializer) PutUint64LE(v uint64) {
	s.buf = binary.LittleEndian.AppendUint64(s.buf, v)
}

// --- unsigned, big-endian ---

func (s *Serializer) PutUint16BE(v uint16) {
	s.buf = binary.BigEndian.AppendUint16(s.buf, v)
}
func (s *Serializer) PutUint32BE(v uint32) {
	s.buf = binary.BigEndian.AppendUint32(s.buf, v)
}
func (s *Serializer) PutUint64BE(v uint64) {
	s.buf = binary.BigEndian.AppendUint64(s.buf, v)
}

// PutUint24BE writes the low 24 bits of v, big-endian, matching the
// original's serializeBEInt24/serializeLEInt24 (spec.md scenario 5:
// 0x123456 big-endian -> {0x12, 0x34, 0x56}).
func (s *Serializer) PutUint24BE(v uint32) {
	s.buf = append(s.buf, byte(v>>16), byte(v>>8), byte(v))
}

func (s *Serializer) PutUint24LE(v uint32) {
	s.buf = append(s.buf, byte(v), byte(v>>8), byte(v>>16))
}

// --- signed integers, reusing the unsigned bit patterns ---

func (s *Serializer) PutInt8(v int8)       { s.PutUint8(uint8(v)) }
func (s *Serializer) PutInt16LE(v int16)   { s.PutUint16LE(uint16(v)) }
func (s *Serializer) PutInt32LE(v int32)   { s.PutUint32LE(uint32(v)) }
func (s *Serializer) PutInt64LE(v int64)   { s.PutUint64LE(uint64(v)) }
func (s *Serializer) PutInt16BE(v int16)   { s.PutUint16BE(uint16(v)) }
func (s *Serializer) PutInt32BE(v int32)   { s.PutUint32BE(uint32(v)) }
func (s *Serializer) PutInt64BE(v int64)   { s.PutUint64BE(uint64(v)) }

// --- IEEE-754 floats ---

func (s *Serializer) PutFloat32LE(v float32) { s.PutUint32LE(math.Float32bits(v)) }
func (s *Serializer) PutFloat64LE(v float64) { s.PutUint64LE(math.Float64bits(v)) }
func (s *Serializer) PutFloat32BE(v float32) { s.PutUint32BE(math.Float32bits(v)) }
func (s *Serializer) PutFloat64BE(v float64) { s.PutUint64BE(math.Float64bits(v)) }

// --- length-prefixed byte strings ---

// PutBytes writes a uint32 little-endian length prefix followed by data.
func (s *Serializer) PutBytes(data []byte) {
	s.PutUint32LE(uint32(len(data)))
	s.buf = append(s.buf, data...)
}

// PutString writes a length-prefixed UTF-8 string.
func (s *Serializer) PutString(str string) { s.PutBytes([]byte(str)) }

// --- wide (256-bit) integers, for collaborators that need more than 64 bits ---

// PutUint256BE writes v as a fixed 32-byte big-endian field.
func (s *Serializer) PutUint256BE(v *uint256.Int) {
	b := v.Bytes32()
	s.buf = append(s.buf, b[:]...)
}

// --- reads ---

func (s *Serializer) GetUint8() (uint8, error) {
	if err := s.need(1); err != nil {
		return 0, err
	}
	v := s.buf[s.pos]
	s.pos++
	return v, nil
}

func (s *Serializer) GetUint16LE() (uint16, error) {
	if err := s.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(s.buf[s.pos:])
	s.pos += 2
	return v, nil
}

func (s *Serializer) GetUint32LE() (uint32, error) {
	if err := s.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(s.buf[s.pos:])
	s.pos += 4
	return v, nil
}

func (s *Serializer) GetUint64LE() (uint64, error) {
	if err := s.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v, nil
}

func (s *Serializer) GetUint16BE() (uint16, error) {
	if err := s.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(s.buf[s.pos:])
	s.pos += 2
	return v, nil
}

func (s *Serializer) GetUint32BE() (uint32, error) {
	if err := s.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(s.buf[s.pos:])
	s.pos += 4
	return v, nil
}

func (s *Serializer) GetUint64BE() (uint64, error) {
	if err := s.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v, nil
}

func (s *Serializer) GetUint24BE() (uint32, error) {
	if err := s.need(3); err != nil {
		return 0, err
	}
	v := uint32(s.buf[s.pos])<<16 | uint32(s.buf[s.pos+1])<<8 | uint32(s.buf[s.pos+2])
	s.pos += 3
	return v, nil
}

func (s *Serializer) GetUint24LE() (uint32, error) {
	if err := s.need(3); err != nil {
		return 0, err
	}
	v := uint32(s.buf[s.pos]) | uint32(s.buf[s.pos+1])<<8 | uint32(s.buf[s.pos+2])<<16
	s.pos += 3
	return v, nil
}

func (s *Serializer) GetInt8() (int8, error) {
	v, err := s.GetUint8()
	return int8(v), err
}
func (s *Serializer) GetInt16LE() (int16, error) {
	v, err := s.GetUint16LE()
	return int16(v), err
}
func (s *Serializer) GetInt32LE() (int32, error) {
	v, err := s.GetUint32LE()
	return int32(v), err
}
func (s *Serializer) GetInt64LE() (int64, error) {
	v, err := s.GetUint64LE()
	return int64(v), err
}
func (s *Serializer) GetInt16BE() (int16, error) {
	v, err := s.GetUint16BE()
	return int16(v), err
}
func (s *Serializer) GetInt32BE() (int32, error) {
	v, err := s.GetUint32BE()
	return int32(v), err
}
func (s *Serializer) GetInt64BE() (int64, error) {
	v, err := s.GetUint64BE()
	return int64(v), err
}

func (s *Serializer) GetFloat32LE() (float32, error) {
	v, err := s.GetUint32LE()
	return math.Float32frombits(v), err
}
func (s *Serializer) GetFloat64LE() (float64, error) {
	v, err := s.GetUint64LE()
	return math.Float64frombits(v), err
}
func (s *Serializer) GetFloat32BE() (float32, error) {
	v, err := s.GetUint32BE()
	return math.Float32frombits(v), err
}
func (s *Serializer) GetFloat64BE() (float64, error) {
	v, err := s.GetUint64BE()
	return math.Float64frombits(v), err
}

func (s *Serializer) GetBytes() ([]byte, error) {
	n, err := s.GetUint32LE()
	if err != nil {
		return nil, err
	}
	if err := s.need(int(n)); err != nil {
		return nil, err
	}
	v := s.buf[s.pos : s.pos+int(n)]
	s.pos += int(n)
	return v, nil
}

func (s *Serializer) GetString() (string, error) {
	b, err := s.GetBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *Serializer) GetUint256BE() (*uint256.Int, error) {
	if err := s.need(32); err != nil {
		return nil, err
	}
	v := new(uint256.Int).SetBytes(s.buf[s.pos : s.pos+32])
	s.pos += 32
	return v, nil
}
