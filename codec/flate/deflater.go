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

import (
	"bytes"

	kflate "github.com/klauspost/compress/flate"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jameo-labs/corelib/checksum"
	"github.com/jameo-labs/corelib/codec/bitio"
	"github.com/jameo-labs/corelib/metrics"
)

// Deflater produces a DEFLATE stream. The legacy implementation delegated
// its compressor to an external reference library with no from-scratch
// encoder in the repository (spec.md §9 "Open question"); this keeps that
// delegation, using klauspost/compress/flate for the RFC 1951 body, and adds
// the RFC 1950 zlib framing by hand so the output round-trips through
// Inflater.
type Deflater struct {
	log   *zap.Logger
	wrap  bool
	level int

	totalIn  int
	totalOut int
	err      error
}

// DefaultCompression requests the backing library's default trade-off.
const DefaultCompression = kflate.DefaultCompression

// NewDeflater returns a Deflater at the given compression level (see
// compress/flate level constants). When wrap is true the output carries the
// RFC 1950 zlib header and Adler-32 trailer.
func NewDeflater(wrap bool, level int, log *zap.Logger) *Deflater {
	if log == nil {
		log = zap.NewNop()
	}
	return &Deflater{wrap: wrap, level: level, log: log}
}

// TotalIn returns the number of uncompressed bytes fed to the most recent
// Deflate call.
func (d *Deflater) TotalIn() int { return d.totalIn }

// TotalOut returns the number of compressed bytes produced by the most
// recent Deflate call.
func (d *Deflater) TotalOut() int { return d.totalOut }

// Deflate compresses data in full, returning a stream Inflater can decode.
func (d *Deflater) Deflate(data []byte) ([]byte, error) {
	if d.err != nil {
		return nil, errors.Wrap(ErrSticky, d.err.Error())
	}

	var body bytes.Buffer
	w, err := kflate.NewWriter(&body, d.level)
	if err != nil {
		d.err = err
		return nil, errors.Wrap(err, "flate: could not construct deflate writer")
	}
	if _, err := w.Write(data); err != nil {
		d.err = err
		return nil, errors.Wrap(err, "flate: deflate write failed")
	}
	if err := w.Close(); err != nil {
		d.err = err
		return nil, errors.Wrap(err, "flate: deflate flush failed")
	}

	d.totalIn = len(data)

	if !d.wrap {
		d.totalOut = body.Len()
		metrics.CodecBytesIn.WithLabelValues("deflate").Add(float64(d.totalIn))
		metrics.CodecBytesOut.WithLabelValues("deflate").Add(float64(d.totalOut))
		d.log.Debug("deflate complete", zap.Int("in", d.totalIn), zap.Int("out", d.totalOut))
		return body.Bytes(), nil
	}

	bw := bitio.NewWriter()
	for _, b := range zlibHeaderBytes(d.level) {
		bw.WriteByte(b)
	}
	bw.Write(body.Bytes())
	sum := checksum.Adler32(data)
	bw.WriteByte(byte(sum >> 24))
	bw.WriteByte(byte(sum >> 16))
	bw.WriteByte(byte(sum >> 8))
	bw.WriteByte(byte(sum))
	out := bw.Bytes()

	d.totalOut = len(out)
	metrics.CodecBytesIn.WithLabelValues("deflate").Add(float64(d.totalIn))
	metrics.CodecBytesOut.WithLabelValues("deflate").Add(float64(d.totalOut))
	d.log.Debug("deflate complete", zap.Int("in", d.totalIn), zap.Int("out", d.totalOut))
	return out, nil
}

// zlibHeaderBytes builds a valid RFC 1950 {CMF, FLG} pair for a deflate
// body (window size fixed at 32k, no preset dictionary), choosing FLEVEL
// from the requested compression level purely for informational purposes
// (spec.md §4.5: FLEVEL "has no decode-time meaning").
func zlibHeaderBytes(level int) []byte {
	const cmf = 0x78 // CM=8 (deflate), CINFO=7 (32k window)
	var flevel byte
	switch {
	case level >= kflate.BestCompression:
		flevel = 3
	case level <= kflate.BestSpeed && level != kflate.DefaultCompression:
		flevel = 0
	default:
		flevel = 2
	}
	flg := flevel << 6
	check := (uint16(cmf)*256 + uint16(flg)) % 31
	if check != 0 {
		flg += byte(31 - check)
	}
	return []byte{cmf, flg}
}
