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

// encodeMaxp encodes a version 1.0 "maxp" table.
// All glyph outlines are empty, so every maximum except the glyph
// count is zero.
// https://docs.microsoft.com/en-us/typography/opentype/spec/maxp
func encodeMaxp(numGlyphs int) []byte {
	if numGlyphs < 1 || numGlyphs >= 1<<16 {
		panic("ttf: numGlyphs out of range")
	}
	buf := make([]byte, 32)
	buf[1] = 0x01 // version 1.0
	buf[4] = byte(numGlyphs >> 8)
	buf[5] = byte(numGlyphs)
	buf[15] = 1 // maxZones
	return buf
}
