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

// Package huffman builds and decodes canonical Huffman codes per the RFC
// 1951 procedure described in spec.md §4.5, grounded in the original
// Inflater::HuffmanTree (Inflater.cpp/Inflater.h in
// _examples/original_source/).
package huffman

import (
	"errors"

	"github.com/jameo-labs/corelib/codec/bitio"
)

// MaxBits is the longest code length this package accepts; a deflate
// stream whose codes exceed it is corrupt (spec.md §4.5 "the tree must
// reject codes longer than 15 bits").
const MaxBits = 15

// ErrCodeTooLong is returned by Decode when more than MaxBits bits are
// consumed without reaching a leaf (spec.md §4.5 failure taxonomy).
var ErrCodeTooLong = errors.New("huffman: code exceeds 15 bits without a matching leaf")

// ErrBadLength is returned by New when a code length exceeds MaxBits.
var ErrBadLength = errors.New("huffman: code length exceeds 15 bits")

type node struct {
	// leaf fields
	isLeaf bool
	symbol uint16
	// internal fields: child[0] for bit 0, child[1] for bit 1
	child [2]*node
}

// Tree is a canonical Huffman decode tree built from per-symbol code
// lengths via the three-step RFC 1951 procedure (spec.md §4.5 "Canonical
// Huffman construction").
type Tree struct {
	root *node
}

// New builds a Tree from lengths, where lengths[symbol] is that symbol's
// code length in bits, or 0 if the symbol is unused.
func New(lengths []uint16) (*Tree, error) {
	var blCount [MaxBits + 1]int
	for _, l := range lengths {
		if l == 0 {
			continue
		}
		if int(l) > MaxBits {
			return nil, ErrBadLength
		}
		blCount[l]++
	}

	var nextCode [MaxBits + 2]uint16
	code := uint16(0)
	for bits := 1; bits <= MaxBits; bits++ {
		code = (code + uint16(blCount[bits-1])) << 1
		nextCode[bits] = code
	}

	root := &node{}
	for symbol, l := range lengths {
		if l == 0 {
			continue
		}
		c := nextCode[l]
		nextCode[l]++
		insert(root, c, l, uint16(symbol))
	}

	return &Tree{root: root}, nil
}

// insert walks/extends the tree along the MSB-first bits of code (length
// bits long) and places symbol at the resulting leaf.
func insert(root *node, code uint16, length uint16, symbol uint16) {
	n := root
	for i := int(length) - 1; i >= 0; i-- {
		bit := (code >> uint(i)) & 1
		if n.child[bit] == nil {
			n.child[bit] = &node{}
		}
		n = n.child[bit]
	}
	n.isLeaf = true
	n.symbol = symbol
}

// Decode reads bits MSB-first from r until a leaf is reached, per spec.md
// §4.5 ("Decoding reads bits MSB-first along the tree until a leaf is
// reached").
func (t *Tree) Decode(r *bitio.Reader) (uint16, error) {
	n := t.root
	for depth := 0; depth <= MaxBits; depth++ {
		if n.isLeaf {
			return n.symbol, nil
		}
		bit, err := r.NextBit()
		if err != nil {
			return 0, err
		}
		next := n.child[bit]
		if next == nil {
			return 0, ErrCodeTooLong
		}
		n = next
	}
	return 0, ErrCodeTooLong
}

// FixedLiteralLengths returns the RFC 1951 §3.2.6 fixed literal/length code
// lengths: 8 bits for 0-143, 9 bits for 144-255, 7 bits for 256-279, 8 bits
// for 280-287.
func FixedLiteralLengths() []uint16 {
	lengths := make([]uint16, 288)
	for i := 0; i <= 143; i++ {
		lengths[i] = 8
	}
	for i := 144; i <= 255; i++ {
		lengths[i] = 9
	}
	for i := 256; i <= 279; i++ {
		lengths[i] = 7
	}
	for i := 280; i <= 287; i++ {
		lengths[i] = 8
	}
	return lengths
}

// FixedDistanceLengths returns the RFC 1951 fixed distance code lengths:
// 5 bits for all 30 distance codes.
func FixedDistanceLengths() []uint16 {
	lengths := make([]uint16, 30)
	for i := range lengths {
		lengths[i] = 5
	}
	return lengths
}

// CodeLengthOrder is the canonical permutation RFC 1951 uses to order the
// HCLEN code-length-alphabet lengths read from a dynamic Huffman block
// header (spec.md §4.5).
var CodeLengthOrder = [19]int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}
