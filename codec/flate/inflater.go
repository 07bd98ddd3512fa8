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

// Package flate is a from-scratch RFC 1950/1951 DEFLATE codec, grounded in
// _examples/original_source/Inflater.cpp and Deflater.h. The inflate side is
// hand-written (spec.md §4.5 "Inflate engine"); the deflate side wraps
// klauspost/compress/flate and adds the RFC 1950 zlib framing by hand
// (spec.md §9 "Open question": wrapping an existing encoder is compliant
// as long as output round-trips through the in-repo inflater).
package flate

import (
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jameo-labs/corelib/checksum"
	"github.com/jameo-labs/corelib/codec/bitio"
	"github.com/jameo-labs/corelib/codec/huffman"
	"github.com/jameo-labs/corelib/metrics"
)

const initialUncompressedCapacity = 1024

// Inflater decodes a DEFLATE stream. It mirrors the legacy Inflater's
// cursor/buffer fields (spec.md §3 "DEFLATE state") but surfaces failures as
// a sticky error rather than throwing (spec.md §9 "Exceptions for control
// flow"): once Inflate returns an error, every subsequent call returns
// ErrSticky, annotated with that original error, until Reset.
type Inflater struct {
	log  *zap.Logger
	wrap bool

	compressed []byte
	r          *bitio.Reader

	out      []byte
	totalIn  int
	totalOut int

	lastBlock bool
	eof       bool
	err       error
}

// NewInflater returns an Inflater. When wrap is true, the input is expected
// to carry the RFC 1950 zlib header and Adler-32 trailer (spec.md §4.5
// "Stream framing"); when false, the input is a raw RFC 1951 body.
func NewInflater(wrap bool, log *zap.Logger) *Inflater {
	if log == nil {
		log = zap.NewNop()
	}
	return &Inflater{wrap: wrap, log: log, out: make([]byte, 0, initialUncompressedCapacity)}
}

// SetInput supplies the full compressed buffer. The implementation does not
// support incremental feeding of partial blocks; callers must hand over the
// entire compressed stream.
func (inf *Inflater) SetInput(buf []byte) {
	inf.compressed = buf
	inf.r = bitio.NewReader(buf)
}

// NeedsInput reports whether decoding has not yet reached the end of stream.
func (inf *Inflater) NeedsInput() bool { return !inf.eof }

// Finished reports whether the last block has been consumed.
func (inf *Inflater) Finished() bool { return inf.eof }

// TotalIn returns the number of compressed bytes consumed so far.
func (inf *Inflater) TotalIn() int { return inf.totalIn }

// TotalOut returns the number of decompressed bytes produced so far.
func (inf *Inflater) TotalOut() int { return inf.totalOut }

// Reset clears all state so the Inflater can be reused for a new stream.
func (inf *Inflater) Reset() {
	inf.compressed = nil
	inf.r = nil
	inf.out = make([]byte, 0, initialUncompressedCapacity)
	inf.totalIn = 0
	inf.totalOut = 0
	inf.lastBlock = false
	inf.eof = false
	inf.err = nil
}

// Inflate decompresses compressed in full and returns the decompressed
// bytes. Once an error occurs the Inflater is permanently failed: every
// further call, even with a fresh buffer, returns ErrSticky until Reset.
func (inf *Inflater) Inflate(compressed []byte) ([]byte, error) {
	if inf.err != nil {
		return nil, errors.Wrap(ErrSticky, inf.err.Error())
	}

	inf.SetInput(compressed)

	if inf.wrap {
		if err := inf.readZlibHeader(); err != nil {
			inf.err = err
			return nil, err
		}
	}

	for !inf.lastBlock {
		if err := inf.readBlock(); err != nil {
			inf.err = err
			return nil, err
		}
	}
	inf.eof = true

	if inf.wrap {
		if err := inf.checkTrailer(); err != nil {
			inf.err = err
			return nil, err
		}
	}
	inf.totalIn = len(compressed) - inf.r.Len()

	metrics.CodecBytesIn.WithLabelValues("inflate").Add(float64(len(compressed)))
	metrics.CodecBytesOut.WithLabelValues("inflate").Add(float64(len(inf.out)))
	return inf.out, nil
}

func (inf *Inflater) readZlibHeader() error {
	cmf, err := inf.r.NextAlignedByte()
	if err != nil {
		return errors.Wrap(ErrCorruptHeader, err.Error())
	}
	flg, err := inf.r.NextAlignedByte()
	if err != nil {
		return errors.Wrap(ErrCorruptHeader, err.Error())
	}
	inf.totalIn += 2

	compressionMethod := cmf & 0x0F
	compressionInfo := (cmf >> 4) & 0x0F
	if compressionMethod != 8 {
		return ErrUnsupportedMethod
	}
	if compressionInfo > 7 {
		return errors.Wrap(ErrUnsupportedMethod, "window size over 32k is not implemented")
	}
	fdict := (flg >> 5) & 0x01
	if fdict != 0 {
		return ErrFDictSet
	}
	if (uint16(cmf)*256+uint16(flg))%31 != 0 {
		return ErrCorruptHeader
	}
	return nil
}

func (inf *Inflater) checkTrailer() error {
	inf.r.SkipToByteBoundary()
	trailer, err := inf.r.ReadAlignedBytes(4)
	if err != nil {
		return errors.Wrap(ErrChecksumMismatch, "truncated trailer")
	}
	want := uint32(trailer[0])<<24 | uint32(trailer[1])<<16 | uint32(trailer[2])<<8 | uint32(trailer[3])
	got := checksum.Adler32(inf.out)
	if want != got {
		return ErrChecksumMismatch
	}
	return nil
}

func (inf *Inflater) readBlock() error {
	bfinal, err := inf.r.NextBitsLowFirst(1)
	if err != nil {
		return err
	}
	btype, err := inf.r.NextBitsLowFirst(2)
	if err != nil {
		return err
	}
	if bfinal == 1 {
		inf.lastBlock = true
	}

	switch btype {
	case 0:
		return inf.readStoredBlock()
	case 1:
		litTree, distTree, err := fixedTrees()
		if err != nil {
			return err
		}
		return inf.readHuffmanBlock(litTree, distTree)
	case 2:
		litTree, distTree, err := inf.readDynamicTrees()
		if err != nil {
			return err
		}
		return inf.readHuffmanBlock(litTree, distTree)
	default:
		return ErrBadBlockType
	}
}

func (inf *Inflater) readStoredBlock() error {
	inf.r.SkipToByteBoundary()
	length, err := inf.r.NextAlignedUint16LE()
	if err != nil {
		return err
	}
	complement, err := inf.r.NextAlignedUint16LE()
	if err != nil {
		return err
	}
	if length != ^complement {
		return ErrStoredLenMismatch
	}
	data, err := inf.r.ReadAlignedBytes(int(length))
	if err != nil {
		return err
	}
	inf.write(data...)
	return nil
}

var (
	cachedFixedLit  *huffman.Tree
	cachedFixedDist *huffman.Tree
)

func fixedTrees() (*huffman.Tree, *huffman.Tree, error) {
	if cachedFixedLit == nil {
		lit, err := huffman.New(huffman.FixedLiteralLengths())
		if err != nil {
			return nil, nil, err
		}
		dist, err := huffman.New(huffman.FixedDistanceLengths())
		if err != nil {
			return nil, nil, err
		}
		cachedFixedLit, cachedFixedDist = lit, dist
	}
	return cachedFixedLit, cachedFixedDist, nil
}

func (inf *Inflater) readDynamicTrees() (*huffman.Tree, *huffman.Tree, error) {
	hlit, err := inf.r.NextBitsLowFirst(5)
	if err != nil {
		return nil, nil, err
	}
	hlit += 257
	hdist, err := inf.r.NextBitsLowFirst(5)
	if err != nil {
		return nil, nil, err
	}
	hdist += 1
	hclen, err := inf.r.NextBitsLowFirst(4)
	if err != nil {
		return nil, nil, err
	}
	hclen += 4

	clLengths := make([]uint16, 19)
	for i := 0; i < int(hclen); i++ {
		l, err := inf.r.NextBitsLowFirst(3)
		if err != nil {
			return nil, nil, err
		}
		clLengths[huffman.CodeLengthOrder[i]] = l
	}
	clTree, err := huffman.New(clLengths)
	if err != nil {
		return nil, nil, err
	}

	allLengths, err := inf.readCodeLengths(clTree, int(hlit)+int(hdist))
	if err != nil {
		return nil, nil, err
	}
	litTree, err := huffman.New(allLengths[:hlit])
	if err != nil {
		return nil, nil, err
	}
	distTree, err := huffman.New(allLengths[hlit:])
	if err != nil {
		return nil, nil, err
	}
	return litTree, distTree, nil
}

// readCodeLengths decodes count code lengths from tree, expanding escape
// symbols 16 (repeat previous), 17 (short zero run), 18 (long zero run) per
// spec.md §4.5.
func (inf *Inflater) readCodeLengths(tree *huffman.Tree, count int) ([]uint16, error) {
	out := make([]uint16, count)
	n := 0
	for n < count {
		sym, err := tree.Decode(inf.r)
		if err != nil {
			return nil, err
		}
		switch sym {
		case 16:
			if n == 0 {
				return nil, errors.New("flate: repeat code length with no predecessor")
			}
			repeat, err := inf.r.NextBitsLowFirst(2)
			if err != nil {
				return nil, err
			}
			repeat += 3
			prev := out[n-1]
			for i := uint16(0); i < repeat && n < count; i++ {
				out[n] = prev
				n++
			}
		case 17:
			repeat, err := inf.r.NextBitsLowFirst(3)
			if err != nil {
				return nil, err
			}
			repeat += 3
			for i := uint16(0); i < repeat && n < count; i++ {
				out[n] = 0
				n++
			}
		case 18:
			repeat, err := inf.r.NextBitsLowFirst(7)
			if err != nil {
				return nil, err
			}
			repeat += 11
			for i := uint16(0); i < repeat && n < count; i++ {
				out[n] = 0
				n++
			}
		default:
			out[n] = sym
			n++
		}
	}
	return out, nil
}

// readHuffmanBlock decodes symbols against litTree/distTree until the
// end-of-block symbol (256), handling literals and length/distance
// back-references (spec.md §4.5 "Fixed/Dynamic Huffman block").
func (inf *Inflater) readHuffmanBlock(litTree, distTree *huffman.Tree) error {
	for {
		sym, err := litTree.Decode(inf.r)
		if err != nil {
			return err
		}
		switch {
		case sym < 256:
			inf.write(byte(sym))
		case sym == 256:
			return nil
		case sym <= 285:
			idx := sym - 257
			extra, err := inf.r.NextBitsLowFirst(lengthExtra[idx])
			if err != nil {
				return err
			}
			length := int(lengthBase[idx]) + int(extra)

			distSym, err := distTree.Decode(inf.r)
			if err != nil {
				return err
			}
			if int(distSym) >= len(distBase) {
				return ErrBadSymbol
			}
			distExtraBits, err := inf.r.NextBitsLowFirst(distExtra[distSym])
			if err != nil {
				return err
			}
			distance := int(distBase[distSym]) + int(distExtraBits)

			src := len(inf.out) - distance
			if src < 0 {
				return ErrBadDistance
			}
			for i := 0; i < length; i++ {
				inf.write(inf.out[src+i])
			}
		default:
			return ErrBadSymbol
		}
	}
}

// write appends bytes to the output buffer, growing it geometrically per
// spec.md §4.5 "Buffer growth": the growth heuristic uses the current
// input/output ratio so pathological low-ratio streams do not trigger many
// small reallocations.
func (inf *Inflater) write(bs ...byte) {
	if len(inf.out)+len(bs) > cap(inf.out) {
		ratio := 1.0
		if len(inf.compressed) > 0 && inf.r != nil {
			consumed := len(inf.compressed) - inf.r.Len()
			if consumed > 0 {
				ratio = float64(consumed) / float64(len(inf.out)+1)
			}
		}
		grow := int(float64(cap(inf.out)) / ratio)
		if grow < 4096 {
			grow = 4096
		}
		newCap := cap(inf.out) + grow
		for newCap < len(inf.out)+len(bs) {
			newCap += grow
		}
		grown := make([]byte, len(inf.out), newCap)
		copy(grown, inf.out)
		inf.log.Debug("inflate buffer grown",
			zap.String("from", humanize.IBytes(uint64(cap(inf.out)))),
			zap.String("to", humanize.IBytes(uint64(newCap))))
		inf.out = grown
	}
	inf.out = append(inf.out, bs...)
	inf.totalOut += len(bs)
}
