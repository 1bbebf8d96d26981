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

// https://docs.microsoft.com/en-us/typography/opentype/spec/os2
type binaryOS2 struct {
	Version            uint16
	AvgCharWidth       int16
	WeightClass        uint16
	WidthClass         uint16
	Type               uint16
	SubscriptXSize     int16
	SubscriptYSize     int16
	SubscriptXOffset   int16
	SubscriptYOffset   int16
	SuperscriptXSize   int16
	SuperscriptYSize   int16
	SuperscriptXOffset int16
	SuperscriptYOffset int16
	StrikeoutSize      int16
	StrikeoutPosition  int16
	FamilyClass        int16
	Panose             [10]byte
	UnicodeRange       [4]uint32
	VendID             [4]byte
	Selection          uint16
	FirstCharIndex     uint16
	LastCharIndex      uint16

	TypoAscender  int16
	TypoDescender int16
	TypoLineGap   int16
	WinAscent     uint16
	WinDescent    uint16

	CodePageRange [2]uint32

	XHeight     int16
	CapHeight   int16
	DefaultChar uint16
	BreakChar   uint16
	MaxContext  uint16
}

// encodeOS2 encodes a version 4 "OS/2" table.
//
// WinAscent and WinDescent are taken from the Font structure without
// adjustment.  Bitmap-only emoji fonts set both to zero so that
// renderers position the strikes using the typographic metrics
// instead of adding outline-based vertical padding.
func (f *Font) encodeOS2() []byte {
	var unicodeRange [4]uint32
	setUniBit := func(b int) {
		unicodeRange[b/32] |= 1 << (b % 32)
	}

	var firstCharIndex, lastCharIndex uint16
	first := true
	for r := range f.CMap {
		c := uint16(r)
		if r > 0xFFFF {
			c = 0xFFFF
			setUniBit(57) // Non-Plane 0
		}
		if first || c < firstCharIndex {
			firstCharIndex = c
		}
		if first || c > lastCharIndex {
			lastCharIndex = c
		}
		first = false
	}

	enc := &binaryOS2{
		Version:      4,
		AvgCharWidth: avgWidth(f.Widths),
		WeightClass:  400, // normal
		WidthClass:   5,   // medium
		Type:         0,   // installable embedding
		VendID:       [4]byte{' ', ' ', ' ', ' '},

		Selection:      0x0040, // regular
		UnicodeRange:   unicodeRange,
		FirstCharIndex: firstCharIndex,
		LastCharIndex:  lastCharIndex,

		TypoAscender:  f.TypoAscender,
		TypoDescender: f.TypoDescender,
		WinAscent:     f.WinAscent,
		WinDescent:    f.WinDescent,

		XHeight:   f.XHeight,
		CapHeight: f.CapHeight,
	}

	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, enc)
	return buf.Bytes()
}

// avgWidth is the arithmetic average of all non-zero advance widths.
func avgWidth(widths []uint16) int16 {
	var sum, n int
	for _, w := range widths {
		if w == 0 {
			continue
		}
		sum += int(w)
		n++
	}
	if n == 0 {
		return 0
	}
	return int16(sum / n)
}
