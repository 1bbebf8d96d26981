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

// encodePost encodes a version 2.0 "post" table holding the glyph
// names.
// https://docs.microsoft.com/en-us/typography/opentype/spec/post
func (f *Font) encodePost() []byte {
	header := &postEnc{
		Version: 0x00020000,
	}
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, header)

	numGlyphs := len(f.GlyphNames)
	buf.Write([]byte{byte(numGlyphs >> 8), byte(numGlyphs)})

	var stringData []byte
	numStrings := 0
	for _, name := range f.GlyphNames {
		idx, ok := macGlyphIndex[name]
		if !ok {
			idx = numMacGlyphs + numStrings
			stringData = append(stringData, byte(len(name)))
			stringData = append(stringData, name...)
			numStrings++
		}
		buf.Write([]byte{byte(idx >> 8), byte(idx)})
	}
	buf.Write(stringData)

	return buf.Bytes()
}

type postEnc struct {
	Version            uint32
	ItalicAngle        int32
	UnderlinePosition  int16
	UnderlineThickness int16
	IsFixedPitch       uint32
	MinMemType42       uint32
	MaxMemType42       uint32
	MinMemType1        uint32
	MaxMemType1        uint32
}

// numMacGlyphs is the number of entries in the standard Macintosh
// glyph name set; custom names are indexed starting there.
const numMacGlyphs = 258

// macGlyphIndex lists the standard Macintosh glyph names which can
// occur in this font's glyph order.  Emoji glyphs always use custom
// uniXXXX names, so only the leading entries of the standard set are
// needed here.
var macGlyphIndex = map[string]int{
	".notdef":          0,
	".null":            1,
	"nonmarkingreturn": 2,
	"space":            3,
}
