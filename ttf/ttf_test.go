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
	"errors"
	"testing"
	"time"
)

func makeTestFont() *Font {
	strike := &Strike{
		PPEM: 32,
		PPI:  72,
		Glyphs: []BitmapGlyph{
			{},
			{OriginOffsetY: -10, Data: []byte("payload one")},
			{OriginOffsetY: -10, Data: []byte("payload two")},
		},
	}
	return &Font{
		FamilyName: "Test",
		StyleName:  "Regular",
		Version:    "Version 1.0",

		UnitsPerEm: 800,
		Created:    time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC),
		Modified:   time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC),

		GlyphNames: []string{".notdef", "uniE001", "uniE002"},
		CMap:       map[rune]GlyphID{0xE001: 1, 0xE002: 2},
		Widths:     []uint16{500, 800, 800},

		Ascent:  800,
		Descent: -250,

		TypoAscender:  750,
		TypoDescender: -250,
		XHeight:       500,
		CapHeight:     800,

		LowestRecPPEM: 32,
		Strikes:       []*Strike{strike},
	}
}

// parseTableDir reads the sfnt table directory and returns the table
// bodies by tag.
func parseTableDir(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	if len(data) < 12 {
		t.Fatalf("file too short: %d bytes", len(data))
	}
	if v := binary.BigEndian.Uint32(data); v != 0x00010000 {
		t.Fatalf("wrong sfnt version 0x%08X", v)
	}
	numTables := int(binary.BigEndian.Uint16(data[4:]))

	res := make(map[string][]byte, numTables)
	prevTag := ""
	for i := 0; i < numTables; i++ {
		base := 12 + 16*i
		tag := string(data[base : base+4])
		offset := binary.BigEndian.Uint32(data[base+8:])
		length := binary.BigEndian.Uint32(data[base+12:])

		if tag <= prevTag {
			t.Errorf("table directory not sorted: %q after %q", tag, prevTag)
		}
		prevTag = tag
		if offset%4 != 0 {
			t.Errorf("table %q not aligned: offset %d", tag, offset)
		}
		if int(offset)+int(length) > len(data) {
			t.Fatalf("table %q extends past end of file", tag)
		}
		res[tag] = data[offset : offset+length]
	}
	return res
}

func TestWriteTableSet(t *testing.T) {
	f := makeTestFont()
	buf := &bytes.Buffer{}
	n, err := f.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("Write returned %d, wrote %d bytes", n, buf.Len())
	}
	if n%4 != 0 {
		t.Errorf("file length %d not a multiple of 4", n)
	}

	tables := parseTableDir(t, buf.Bytes())
	for _, tag := range []string{
		"head", "hhea", "maxp", "OS/2", "hmtx", "cmap",
		"loca", "glyf", "name", "post", "sbix",
	} {
		if _, ok := tables[tag]; !ok {
			t.Errorf("table %q missing", tag)
		}
	}
	if len(tables) != 11 {
		t.Errorf("found %d tables, expected 11", len(tables))
	}

	if len(tables["glyf"]) != 0 {
		t.Errorf("glyf table has %d bytes, expected 0", len(tables["glyf"]))
	}
	// short loca format: numGlyphs+1 uint16 offsets, all zero
	loca := tables["loca"]
	if len(loca) != 2*(len(f.GlyphNames)+1) {
		t.Errorf("loca table has %d bytes, expected %d",
			len(loca), 2*(len(f.GlyphNames)+1))
	}
	for _, b := range loca {
		if b != 0 {
			t.Error("loca table contains non-zero offsets")
			break
		}
	}

	maxp := tables["maxp"]
	if got := binary.BigEndian.Uint16(maxp[4:]); got != uint16(len(f.GlyphNames)) {
		t.Errorf("maxp numGlyphs is %d, expected %d", got, len(f.GlyphNames))
	}
}

func TestWriteNoStrikes(t *testing.T) {
	f := makeTestFont()
	f.Strikes = nil
	buf := &bytes.Buffer{}
	if _, err := f.Write(buf); err != nil {
		t.Fatal(err)
	}

	tables := parseTableDir(t, buf.Bytes())
	if _, ok := tables["sbix"]; ok {
		t.Error("font without strikes carries an sbix table")
	}
	if len(tables) != 10 {
		t.Errorf("found %d tables, expected 10", len(tables))
	}
	if sum := checksum(buf.Bytes()); sum != 0xB1B0AFBA {
		t.Errorf("whole-file checksum is 0x%08X, expected 0xB1B0AFBA", sum)
	}
}

func TestWriteChecksum(t *testing.T) {
	f := makeTestFont()
	buf := &bytes.Buffer{}
	_, err := f.Write(buf)
	if err != nil {
		t.Fatal(err)
	}

	// With checkSumAdjustment in place, the whole file must sum to the
	// magic constant.
	if sum := checksum(buf.Bytes()); sum != 0xB1B0AFBA {
		t.Errorf("whole-file checksum is 0x%08X, expected 0xB1B0AFBA", sum)
	}

	tables := parseTableDir(t, buf.Bytes())
	head := tables["head"]
	if magic := binary.BigEndian.Uint32(head[12:]); magic != 0x5F0F3CF5 {
		t.Errorf("head magic number is 0x%08X", magic)
	}
	if upem := binary.BigEndian.Uint16(head[18:]); upem != f.UnitsPerEm {
		t.Errorf("head unitsPerEm is %d, expected %d", upem, f.UnitsPerEm)
	}
}

func TestWriteDeterministic(t *testing.T) {
	f := makeTestFont()
	buf1 := &bytes.Buffer{}
	if _, err := f.Write(buf1); err != nil {
		t.Fatal(err)
	}
	buf2 := &bytes.Buffer{}
	if _, err := f.Write(buf2); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
		t.Error("two writes of the same font differ")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		desc    string
		corrupt func(f *Font)
	}{
		{"no glyphs", func(f *Font) { f.GlyphNames = nil; f.Widths = nil }},
		{"missing notdef", func(f *Font) { f.GlyphNames[0] = "smiley" }},
		{"duplicate name", func(f *Font) { f.GlyphNames[2] = "uniE001" }},
		{"wrong width count", func(f *Font) { f.Widths = f.Widths[:2] }},
		{"cmap out of range", func(f *Font) { f.CMap[0xE003] = 7 }},
		{"zero unitsPerEm", func(f *Font) { f.UnitsPerEm = 0 }},
		{"zero ppem strike", func(f *Font) { f.Strikes[0].PPEM = 0 }},
		{"incomplete strike", func(f *Font) {
			f.Strikes[0].Glyphs = f.Strikes[0].Glyphs[:2]
		}},
		{"unordered strikes", func(f *Font) {
			second := &Strike{PPEM: 16, PPI: 72, Glyphs: make([]BitmapGlyph, 3)}
			f.Strikes = append(f.Strikes, second)
		}},
	}
	for _, c := range cases {
		f := makeTestFont()
		c.corrupt(f)
		_, err := f.Write(&bytes.Buffer{})
		var invalid *InvalidFontError
		if !errors.As(err, &invalid) {
			t.Errorf("%s: expected InvalidFontError, got %v", c.desc, err)
		}
	}

	f := makeTestFont()
	if err := f.validate(); err != nil {
		t.Errorf("valid font rejected: %v", err)
	}
}

func TestPostScriptName(t *testing.T) {
	cases := []struct {
		family, style, expected string
	}{
		{"Test", "Regular", "Test-Regular"},
		{"Test", "", "Test-Regular"},
		{"My Emoji Font", "Regular", "MyEmojiFont-Regular"},
		{"Fonta[ku]", "Regular", "Fontaku-Regular"},
	}
	for _, c := range cases {
		f := &Font{FamilyName: c.family, StyleName: c.style}
		if got := f.PostScriptName(); got != c.expected {
			t.Errorf("PostScriptName(%q, %q) = %q, expected %q",
				c.family, c.style, got, c.expected)
		}
	}
}
