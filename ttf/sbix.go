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

// A Strike is a complete set of bitmap glyphs rendered at one fixed
// pixel size.
type Strike struct {
	// PPEM is the pixel size of the strike, in pixels per em.
	PPEM uint16

	// PPI is the device resolution the strike was designed for,
	// in pixels per inch.
	PPI uint16

	// Glyphs contains one bitmap per glyph, indexed by glyph ID.
	// The length must equal the number of glyphs in the font, so
	// that every glyph has an entry in every strike.
	Glyphs []BitmapGlyph
}

// A BitmapGlyph is the bitmap data for one glyph in one strike.
type BitmapGlyph struct {
	// OriginOffsetX and OriginOffsetY position the lower-left corner
	// of the bitmap relative to the glyph origin, in pixels of this
	// strike.
	OriginOffsetX int16
	OriginOffsetY int16

	// Data is the encoded PNG payload.  It may be empty, e.g. for the
	// .notdef glyph.
	Data []byte
}

// graphicTypePNG is the data type tag for PNG glyph payloads.
const graphicTypePNG = "png "

// encodeSbix encodes the "sbix" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/sbix
func (f *Font) encodeSbix() []byte {
	numStrikes := len(f.Strikes)
	if numStrikes == 0 {
		return nil
	}
	numGlyphs := len(f.GlyphNames)

	headerLen := 8 + 4*numStrikes
	res := make([]byte, headerLen)
	res[1] = 1 // version
	res[3] = 1 // flags, bit 0 is always set
	res[4] = byte(numStrikes >> 24)
	res[5] = byte(numStrikes >> 16)
	res[6] = byte(numStrikes >> 8)
	res[7] = byte(numStrikes)

	for i, s := range f.Strikes {
		offs := uint32(len(res))
		res[8+4*i] = byte(offs >> 24)
		res[9+4*i] = byte(offs >> 16)
		res[10+4*i] = byte(offs >> 8)
		res[11+4*i] = byte(offs)
		res = append(res, s.encode(numGlyphs)...)
	}
	return res
}

// encode returns the binary representation of one strike.  Every
// glyph gets a data record, so consumers never see a missing glyph;
// records with an empty payload still carry their origin offsets and
// graphic type.
func (s *Strike) encode(numGlyphs int) []byte {
	offsetsLen := 4 * (numGlyphs + 1)
	res := make([]byte, 4+offsetsLen)
	res[0] = byte(s.PPEM >> 8)
	res[1] = byte(s.PPEM)
	res[2] = byte(s.PPI >> 8)
	res[3] = byte(s.PPI)

	putOffset := func(i int, offs uint32) {
		res[4+4*i] = byte(offs >> 24)
		res[5+4*i] = byte(offs >> 16)
		res[6+4*i] = byte(offs >> 8)
		res[7+4*i] = byte(offs)
	}

	for i, g := range s.Glyphs {
		putOffset(i, uint32(len(res)))
		res = append(res,
			byte(uint16(g.OriginOffsetX)>>8), byte(g.OriginOffsetX),
			byte(uint16(g.OriginOffsetY)>>8), byte(g.OriginOffsetY))
		res = append(res, graphicTypePNG...)
		res = append(res, g.Data...)
	}
	putOffset(numGlyphs, uint32(len(res)))

	return res
}
