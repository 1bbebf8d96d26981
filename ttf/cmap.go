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
	"golang.org/x/exp/slices"
)

// encodeCmap encodes the "cmap" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap
//
// A format 4 subtable for the Windows Unicode BMP encoding (3, 1) is
// always present.  If the font maps code points outside the BMP, a
// format 12 subtable covering the full repertoire is added under the
// Windows full-Unicode encoding (3, 10).
func (f *Font) encodeCmap() []byte {
	runes := make([]rune, 0, len(f.CMap))
	hasSupplementary := false
	for r := range f.CMap {
		runes = append(runes, r)
		if r > 0xFFFF {
			hasSupplementary = true
		}
	}
	slices.Sort(runes)

	type record struct {
		platformID uint16
		encodingID uint16
		data       []byte
	}
	var records []record

	var bmp []rune
	for _, r := range runes {
		if r <= 0xFFFF {
			bmp = append(bmp, r)
		}
	}
	records = append(records, record{3, 1, f.encodeCmapFormat4(bmp)})
	if hasSupplementary {
		records = append(records, record{3, 10, f.encodeCmapFormat12(runes)})
	}

	numTables := len(records)
	endOfHeader := 4 + 8*numTables
	res := make([]byte, endOfHeader)
	// res[0:2] is the table version, 0
	res[2] = byte(numTables >> 8)
	res[3] = byte(numTables)
	offs := uint32(endOfHeader)
	for i, rec := range records {
		res[4+i*8] = byte(rec.platformID >> 8)
		res[5+i*8] = byte(rec.platformID)
		res[6+i*8] = byte(rec.encodingID >> 8)
		res[7+i*8] = byte(rec.encodingID)
		res[8+i*8] = byte(offs >> 24)
		res[9+i*8] = byte(offs >> 16)
		res[10+i*8] = byte(offs >> 8)
		res[11+i*8] = byte(offs)
		offs += uint32(len(rec.data))
	}
	for _, rec := range records {
		res = append(res, rec.data...)
	}
	return res
}

// cmapRange is a run of consecutive code points mapped to consecutive
// glyph IDs.
type cmapRange struct {
	startCode  rune
	endCode    rune
	startGlyph GlyphID
}

// ranges splits the sorted code points into runs where both the code
// points and the glyph IDs are consecutive.
func (f *Font) ranges(runes []rune) []cmapRange {
	var rr []cmapRange
	for _, r := range runes {
		gid := f.CMap[r]
		n := len(rr)
		if n > 0 && r == rr[n-1].endCode+1 &&
			gid == rr[n-1].startGlyph+GlyphID(r-rr[n-1].startCode) {
			rr[n-1].endCode = r
			continue
		}
		rr = append(rr, cmapRange{startCode: r, endCode: r, startGlyph: gid})
	}
	return rr
}

// encodeCmapFormat4 encodes a "segment mapping to delta values"
// subtable for the given sorted BMP code points.
func (f *Font) encodeCmapFormat4(bmp []rune) []byte {
	rr := f.ranges(bmp)

	// The last segment must end at 0xFFFF.  If no real segment does,
	// a sentinel is added whose idDelta sends 0xFFFF to .notdef.
	if n := len(rr); n == 0 || rr[n-1].endCode != 0xFFFF {
		rr = append(rr, cmapRange{startCode: 0xFFFF, endCode: 0xFFFF, startGlyph: 0})
	}

	segCount := len(rr)
	sel := 0
	for 1<<(sel+1) <= segCount {
		sel++
	}
	searchRange := 1 << (sel + 1)

	length := 16 + 8*segCount
	res := make([]byte, length)
	put16 := func(pos, val int) {
		res[pos] = byte(val >> 8)
		res[pos+1] = byte(val)
	}
	put16(0, 4) // format
	put16(2, length)
	// language is 0
	put16(6, 2*segCount)
	put16(8, searchRange)
	put16(10, sel)
	put16(12, 2*segCount-searchRange)

	endBase := 14
	startBase := endBase + 2*segCount + 2 // skip reservedPad
	deltaBase := startBase + 2*segCount
	// idRangeOffset values are all zero
	for i, seg := range rr {
		put16(endBase+2*i, int(seg.endCode))
		put16(startBase+2*i, int(seg.startCode))
		delta := int(seg.startGlyph) - int(seg.startCode)
		put16(deltaBase+2*i, delta&0xFFFF)
	}
	return res
}

// encodeCmapFormat12 encodes a "segmented coverage" subtable for the
// given sorted code points.
func (f *Font) encodeCmapFormat12(runes []rune) []byte {
	rr := f.ranges(runes)

	length := 16 + 12*len(rr)
	res := make([]byte, length)
	put32 := func(pos int, val uint32) {
		res[pos] = byte(val >> 24)
		res[pos+1] = byte(val >> 16)
		res[pos+2] = byte(val >> 8)
		res[pos+3] = byte(val)
	}
	res[1] = 12 // format
	put32(4, uint32(length))
	// language is 0
	put32(12, uint32(len(rr)))
	for i, seg := range rr {
		base := 16 + 12*i
		put32(base, uint32(seg.startCode))
		put32(base+4, uint32(seg.endCode))
		put32(base+8, uint32(seg.startGlyph))
	}
	return res
}
