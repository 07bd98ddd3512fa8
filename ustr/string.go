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

// Package ustr is minimal Unicode string collaborator glue, grounded in
// _examples/original_source/String.cpp: a value implementing
// object.Comparable, object.Displayable and object.DiffPrintable so strings
// can sit inside undo-aware containers and be diffed like any other Item.
//
// The original backs String with a manually-grown uint16 (UTF-16) buffer
// and a CharArray helper for encode/decode. Go strings are already
// immutable UTF-8 byte sequences, so the buffer management has no
// counterpart here; what is kept is the original's character-level
// operation surface (CharAt, Substring, IndexOf, trimming, case
// conversion, ...), re-expressed over []rune so indices count Unicode code
// points rather than UTF-8 bytes.
package ustr

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/jameo-labs/corelib/object"
)

// ErrIndexOutOfBounds mirrors the original's "Index out of Bounds" exception.
var ErrIndexOutOfBounds = errors.New("ustr: index out of bounds")

// String is an immutable Unicode string (original_source/String.cpp).
type String struct {
	r []rune
}

// New wraps a Go string as a String.
func New(s string) String {
	return String{r: []rune(s)}
}

// Empty is the zero-length String (original's kEmptyString).
var Empty = String{}

// String returns the UTF-8 Go string form.
func (s String) String() string {
	return string(s.r)
}

// Length returns the number of Unicode code points (original's Length()).
func (s String) Length() int {
	return len(s.r)
}

// CharAt returns the code point at index, or ErrIndexOutOfBounds.
func (s String) CharAt(index int) (rune, error) {
	if index < 0 || index >= len(s.r) {
		return 0, errors.Wrapf(ErrIndexOutOfBounds, "index %d", index)
	}
	return s.r[index], nil
}

// StartsWith reports whether s begins with prefix.
func (s String) StartsWith(prefix String) bool {
	if len(prefix.r) > len(s.r) {
		return false
	}
	for i := range prefix.r {
		if s.r[i] != prefix.r[i] {
			return false
		}
	}
	return true
}

// EndsWith reports whether s ends with suffix.
func (s String) EndsWith(suffix String) bool {
	if len(suffix.r) > len(s.r) {
		return false
	}
	offset := len(s.r) - len(suffix.r)
	for i := range suffix.r {
		if s.r[offset+i] != suffix.r[i] {
			return false
		}
	}
	return true
}

// ToLowerCase returns a lower-cased copy.
func (s String) ToLowerCase() String {
	out := make([]rune, len(s.r))
	for i, c := range s.r {
		out[i] = unicode.ToLower(c)
	}
	return String{r: out}
}

// ToUpperCase returns an upper-cased copy.
func (s String) ToUpperCase() String {
	out := make([]rune, len(s.r))
	for i, c := range s.r {
		out[i] = unicode.ToUpper(c)
	}
	return String{r: out}
}

// Trim strips leading and trailing whitespace (original's Trim()).
func (s String) Trim() String {
	begin := 0
	end := len(s.r)
	for begin < end && unicode.IsSpace(s.r[begin]) {
		begin++
	}
	for end > begin && unicode.IsSpace(s.r[end-1]) {
		end--
	}
	if end <= begin {
		return Empty
	}
	return s.Substring(begin, end)
}

// IndexOf returns the index of the first occurrence of needle at or after
// fromIndex, or -1.
func (s String) IndexOf(needle String, fromIndex int) int {
	if fromIndex < 0 {
		fromIndex = 0
	}
	n := len(needle.r)
	for a := fromIndex; a+n <= len(s.r); a++ {
		if runesEqual(s.r[a:a+n], needle.r) {
			return a
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of needle at or
// before fromIndex, or -1.
func (s String) LastIndexOf(needle String, fromIndex int) int {
	n := len(needle.r)
	begin := len(s.r) - n
	if fromIndex < begin {
		begin = fromIndex
	}
	for a := begin; a >= 0; a-- {
		if a+n <= len(s.r) && runesEqual(s.r[a:a+n], needle.r) {
			return a
		}
	}
	return -1
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Replace substitutes every occurrence of oldChar with newChar.
func (s String) Replace(oldChar, newChar rune) String {
	out := make([]rune, len(s.r))
	for i, c := range s.r {
		if c == oldChar {
			out[i] = newChar
		} else {
			out[i] = c
		}
	}
	return String{r: out}
}

// ReplaceAll substitutes every occurrence of oldStr with newStr (original's
// ReplaceAll, which appends greedily left-to-right without overlap).
func (s String) ReplaceAll(oldStr, newStr String) String {
	if len(oldStr.r) == 0 {
		return s
	}
	var out strings.Builder
	pos1 := 0
	pos2 := s.IndexOf(oldStr, 0)
	if pos2 < 0 {
		return s
	}
	for pos2 >= pos1 {
		out.WriteString(string(s.r[pos1:pos2]))
		out.WriteString(newStr.String())
		pos1 = pos2 + len(oldStr.r)
		pos2 = s.IndexOf(oldStr, pos1)
	}
	out.WriteString(string(s.r[pos1:]))
	return New(out.String())
}

// Reverse returns s with its code points in reverse order.
func (s String) Reverse() String {
	out := make([]rune, len(s.r))
	last := len(s.r) - 1
	for i, c := range s.r {
		out[last-i] = c
	}
	return String{r: out}
}

// Append returns s with other appended.
func (s String) Append(other String) String {
	out := make([]rune, 0, len(s.r)+len(other.r))
	out = append(out, s.r...)
	out = append(out, other.r...)
	return String{r: out}
}

// Insert returns s with other inserted at index.
func (s String) Insert(index int, other String) (String, error) {
	if index < 0 || index > len(s.r) {
		return String{}, errors.Wrapf(ErrIndexOutOfBounds, "index %d", index)
	}
	out := make([]rune, 0, len(s.r)+len(other.r))
	out = append(out, s.r[:index]...)
	out = append(out, other.r...)
	out = append(out, s.r[index:]...)
	return String{r: out}, nil
}

// DeleteCharRangeAt returns s with the [index, index+length) range removed.
func (s String) DeleteCharRangeAt(index, length int) (String, error) {
	if index < 0 || index+length > len(s.r) {
		return String{}, errors.Wrapf(ErrIndexOutOfBounds, "index %d", index)
	}
	out := make([]rune, 0, len(s.r)-length)
	out = append(out, s.r[:index]...)
	out = append(out, s.r[index+length:]...)
	return String{r: out}, nil
}

// Substring returns the [beginIndex, endIndex) code point range.
func (s String) Substring(beginIndex, endIndex int) String {
	if endIndex < beginIndex || beginIndex < 0 || endIndex > len(s.r) {
		return Empty
	}
	out := make([]rune, endIndex-beginIndex)
	copy(out, s.r[beginIndex:endIndex])
	return String{r: out}
}

// SubstringFrom returns the [beginIndex, Length()) code point range.
func (s String) SubstringFrom(beginIndex int) String {
	return s.Substring(beginIndex, len(s.r))
}

// Equals implements object.Comparable.
func (s String) Equals(other any) bool {
	o, ok := other.(String)
	if !ok {
		return false
	}
	return runesEqual(s.r, o.r)
}

// EqualsIgnoreCase reports case-insensitive equality.
func (s String) EqualsIgnoreCase(other String) bool {
	return s.ToLowerCase().Equals(other.ToLowerCase())
}

// CompareTo returns -1, 0 or 1 by lexicographic code point order.
func (s String) CompareTo(other String) int {
	smallest := len(s.r)
	if len(other.r) < smallest {
		smallest = len(other.r)
	}
	for i := 0; i < smallest; i++ {
		if s.r[i] < other.r[i] {
			return -1
		}
		if s.r[i] > other.r[i] {
			return 1
		}
	}
	switch {
	case len(s.r) < len(other.r):
		return -1
	case len(s.r) > len(other.r):
		return 1
	default:
		return 0
	}
}

// DisplayName implements object.Displayable.
func (s String) DisplayName() string {
	return s.String()
}

// PrintDiffInfo implements object.DiffPrintable as a no-op: it prints
// nothing for any diff operation.
func (s String) PrintDiffInfo(object.DiffOperation, any) {}

var _ object.Comparable = String{}
var _ object.Displayable = String{}
var _ object.DiffPrintable = String{}

// ValueOf formats an integer as a String (original's String::ValueOf).
func ValueOf(number int64) String {
	return New(fmt.Sprintf("%d", number))
}
