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

// Package ttf writes TrueType fonts which carry their glyphs as PNG
// bitmap strikes in an "sbix" table.
//
// The Font structure is an aggregate of already-validated sub-parts:
// callers fill in all fields and then call Write or WriteFile once.
// All tables are derived from the aggregate in one pass, so there is
// no required call order and no half-written state.
package ttf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"
)

// GlyphID identifies a glyph by its position in the glyph order.
type GlyphID uint16

// Font holds all the information needed to write the font file.
type Font struct {
	FamilyName string
	StyleName  string // usually "Regular"
	Version    string // e.g. "Version 1.0"

	UnitsPerEm uint16
	Created    time.Time
	Modified   time.Time

	// GlyphNames is the glyph order.  GlyphNames[0] must be ".notdef".
	GlyphNames []string

	// CMap maps unicode code points to glyphs.
	CMap map[rune]GlyphID

	// Widths contains the advance widths, indexed by glyph ID.
	// Left side bearings are zero for all glyphs.
	Widths []uint16

	Ascent  int16 // hhea ascent
	Descent int16 // hhea descent (negative)

	TypoAscender  int16
	TypoDescender int16 // negative
	WinAscent     uint16
	WinDescent    uint16
	XHeight       int16
	CapHeight     int16

	LowestRecPPEM uint16

	// Strikes contains the bitmap strikes, in order of increasing PPEM.
	Strikes []*Strike
}

const scalerTypeTrueType = 0x00010000

// Write writes the binary representation of the font to w.
func (f *Font) Write(w io.Writer) (int64, error) {
	if err := f.validate(); err != nil {
		return 0, err
	}

	numGlyphs := len(f.GlyphNames)

	hheaData, hmtxData := f.encodeHmtx()
	glyfData, locaData := emptyOutlines(numGlyphs)

	// physical table order, following the recommended layout for
	// TrueType outlines
	tables := []table{
		{"head", f.encodeHead()},
		{"hhea", hheaData},
		{"maxp", encodeMaxp(numGlyphs)},
		{"OS/2", f.encodeOS2()},
		{"hmtx", hmtxData},
		{"cmap", f.encodeCmap()},
		{"loca", locaData},
		{"glyf", glyfData},
		{"name", f.encodeName()},
		{"post", f.encodePost()},
	}
	if sbixData := f.encodeSbix(); sbixData != nil {
		tables = append(tables, table{"sbix", sbixData})
	}
	return writeFont(w, tables)
}

// WriteFile writes the font to the named file.  The file is only
// created after the whole font has been assembled in memory, so a
// failed build does not leave a truncated font behind.
func (f *Font) WriteFile(name string) error {
	buf := &bytes.Buffer{}
	_, err := f.Write(buf)
	if err != nil {
		return err
	}
	return os.WriteFile(name, buf.Bytes(), 0o644)
}

func (f *Font) validate() error {
	numGlyphs := len(f.GlyphNames)
	if numGlyphs < 1 || numGlyphs > 65535 {
		return &InvalidFontError{Reason: fmt.Sprintf("invalid number of glyphs %d", numGlyphs)}
	}
	if f.GlyphNames[0] != ".notdef" {
		return &InvalidFontError{Reason: "glyph 0 must be .notdef"}
	}
	seen := make(map[string]bool, numGlyphs)
	for _, name := range f.GlyphNames {
		if seen[name] {
			return &InvalidFontError{Reason: "duplicate glyph name " + name}
		}
		seen[name] = true
	}
	if len(f.Widths) != numGlyphs {
		return &InvalidFontError{Reason: "wrong number of glyph widths"}
	}
	for r, gid := range f.CMap {
		if int(gid) >= numGlyphs {
			return &InvalidFontError{
				Reason: fmt.Sprintf("cmap entry U+%04X points beyond glyph order", r),
			}
		}
	}
	if f.UnitsPerEm == 0 {
		return &InvalidFontError{Reason: "unitsPerEm is zero"}
	}

	prev := uint16(0)
	for _, s := range f.Strikes {
		if s.PPEM == 0 {
			return &InvalidFontError{Reason: "strike with ppem 0"}
		}
		if s.PPEM <= prev {
			return &InvalidFontError{Reason: "strikes not in increasing ppem order"}
		}
		prev = s.PPEM
		if len(s.Glyphs) != numGlyphs {
			return &InvalidFontError{
				Reason: fmt.Sprintf("strike %d does not cover all glyphs", s.PPEM),
			}
		}
	}
	return nil
}

// InvalidFontError indicates that the Font aggregate is inconsistent
// and cannot be serialized.
type InvalidFontError struct {
	Reason string
}

func (err *InvalidFontError) Error() string {
	return "ttf: " + err.Reason
}
