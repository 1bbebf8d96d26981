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
	"time"
)

// https://docs.microsoft.com/en-us/typography/opentype/spec/head
type binaryHead struct {
	Version            uint32
	FontRevision       uint32
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            int64
	Modified           int64

	XMin int16
	YMin int16
	XMax int16
	YMax int16

	MacStyle uint16

	LowestRecPPEM     uint16
	FontDirectionHint int16

	IndexToLocFormat int16
	GlyphDataFormat  int16
}

// encodeHead returns the binary representation of the "head" table.
// The CheckSumAdjustment field is filled in later, when the whole
// file is written.
func (f *Font) encodeHead() []byte {
	enc := &binaryHead{
		Version:      0x00010000,
		FontRevision: 0x00010000,
		MagicNumber:  0x5F0F3CF5,

		// bit 0: baseline for font at y=0
		// bit 1: left sidebearing point at x=0
		Flags: 0x0003,

		UnitsPerEm: f.UnitsPerEm,
		Created:    encodeTime(f.Created),
		Modified:   encodeTime(f.Modified),

		// The font has no outlines, so the bounding box is empty.

		LowestRecPPEM:     f.LowestRecPPEM,
		FontDirectionHint: 2,

		IndexToLocFormat: 0, // short loca offsets
	}

	buf := bytes.NewBuffer(make([]byte, 0, 54))
	_ = binary.Write(buf, binary.BigEndian, enc)
	return buf.Bytes()
}

var zeroTime int64 = -2082844800 // start of January 1904 in GMT/UTC time zone

func encodeTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix() - zeroTime
}

func decodeTime(t int64) time.Time {
	if t == 0 {
		return time.Time{}
	}
	return time.Unix(zeroTime+t, 0)
}
