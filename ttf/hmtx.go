// seehuhn.de/go/emofont - build color emoji fonts from PNG images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ttf

import (
	"bytes"
	"encoding/binary"
)

// https://docs.microsoft.com/en-us/typography/opentype/spec/hhea
type binaryHhea struct {
	Version             uint32
	Ascent              int16
	Descent             int16
	LineGap             int16
	AdvanceWidthMax     uint16
	MinLeftSideBearing  int16
	MinRightSideBearing int16
	XMaxExtent          int16
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	CaretOffset         int16
	_                   int16
	_                   int16
	_                   int16
	_                   int16
	MetricDataFormat    int16
	NumOfLongHorMetrics uint16
}

// encodeHmtx creates the "hhea" and "hmtx" tables.
// All left side bearings are zero; the bitmaps are centered within
// the advance width by the strike origin offsets instead.
func (f *Font) encodeHmtx() (hheaData, hmtxData []byte) {
	numGlyphs := len(f.Widths)

	// Trailing glyphs with equal advance widths can share a single
	// long metric record.
	numLong := numGlyphs
	for numLong > 1 && f.Widths[numLong-1] == f.Widths[numLong-2] {
		numLong--
	}

	hhea := &binaryHhea{
		Version: 0x00010000,
		Ascent:  f.Ascent,
		Descent: f.Descent,

		CaretSlopeRise: 1, // vertical caret

		NumOfLongHorMetrics: uint16(numLong),
	}
	for _, w := range f.Widths {
		if w > hhea.AdvanceWidthMax {
			hhea.AdvanceWidthMax = w
		}
	}

	buf := bytes.NewBuffer(make([]byte, 0, 36))
	_ = binary.Write(buf, binary.BigEndian, hhea)
	hheaData = buf.Bytes()

	buf = bytes.NewBuffer(make([]byte, 0, 4*numLong+2*(numGlyphs-numLong)))
	for i := 0; i < numGlyphs; i++ {
		if i < numLong {
			buf.Write([]byte{byte(f.Widths[i] >> 8), byte(f.Widths[i])})
		}
		buf.Write([]byte{0, 0}) // left side bearing
	}
	hmtxData = buf.Bytes()

	return hheaData, hmtxData
}
