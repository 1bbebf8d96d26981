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
	"encoding/binary"
	"testing"
)

func TestHmtxCompression(t *testing.T) {
	cases := []struct {
		widths  []uint16
		numLong int
	}{
		{[]uint16{500, 800, 800, 800}, 2},
		{[]uint16{500, 800, 800, 600}, 4},
		{[]uint16{800, 800, 800}, 1},
		{[]uint16{500}, 1},
	}
	for _, c := range cases {
		f := &Font{Widths: c.widths}
		hheaData, hmtxData := f.encodeHmtx()

		if len(hheaData) != 36 {
			t.Fatalf("hhea table is %d bytes, expected 36", len(hheaData))
		}
		numLong := int(binary.BigEndian.Uint16(hheaData[34:]))
		if numLong != c.numLong {
			t.Errorf("widths %v: %d long metrics, expected %d",
				c.widths, numLong, c.numLong)
		}

		expectedLen := 4*numLong + 2*(len(c.widths)-numLong)
		if len(hmtxData) != expectedLen {
			t.Fatalf("hmtx table is %d bytes, expected %d",
				len(hmtxData), expectedLen)
		}

		// decode the metrics back
		for i, want := range c.widths {
			var got uint16
			if i < numLong {
				got = binary.BigEndian.Uint16(hmtxData[4*i:])
				if lsb := binary.BigEndian.Uint16(hmtxData[4*i+2:]); lsb != 0 {
					t.Errorf("glyph %d has left side bearing %d", i, lsb)
				}
			} else {
				got = c.widths[numLong-1]
				base := 4*numLong + 2*(i-numLong)
				if lsb := binary.BigEndian.Uint16(hmtxData[base:]); lsb != 0 {
					t.Errorf("glyph %d has left side bearing %d", i, lsb)
				}
			}
			if got != want {
				t.Errorf("glyph %d has width %d, expected %d", i, got, want)
			}
		}
	}
}

func TestHheaMetrics(t *testing.T) {
	f := &Font{
		Widths:  []uint16{500, 800, 800},
		Ascent:  800,
		Descent: -250,
	}
	hheaData, _ := f.encodeHmtx()

	if v := binary.BigEndian.Uint32(hheaData); v != 0x00010000 {
		t.Errorf("hhea version is 0x%08X", v)
	}
	if asc := int16(binary.BigEndian.Uint16(hheaData[4:])); asc != 800 {
		t.Errorf("ascent is %d, expected 800", asc)
	}
	if desc := int16(binary.BigEndian.Uint16(hheaData[6:])); desc != -250 {
		t.Errorf("descent is %d, expected -250", desc)
	}
	if max := binary.BigEndian.Uint16(hheaData[10:]); max != 800 {
		t.Errorf("advanceWidthMax is %d, expected 800", max)
	}
	if rise := int16(binary.BigEndian.Uint16(hheaData[16:])); rise != 1 {
		t.Errorf("caretSlopeRise is %d, expected 1", rise)
	}
}
