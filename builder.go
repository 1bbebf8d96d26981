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

package emofont

import (
	"fmt"
	"time"

	"seehuhn.de/go/emofont/ttf"
)

// The font metrics follow Apple Color Emoji.  In particular the
// advance width equals the design units per em, so that the square
// strike bitmaps are centered within the advance, and the Windows
// ascent/descent are zero so that renderers do not add outline-based
// vertical padding on top of the strike placement.
const (
	unitsPerEm   = 800
	advanceWidth = 800
	notdefWidth  = 500

	hheaAscent  = 800
	hheaDescent = -250

	typoAscender  = 750
	typoDescender = -250

	xHeight   = 500
	capHeight = 800
)

// An Event reports progress of a font build.
type Event struct {
	Kind EventKind

	Name string // glyph name, for EventAssign
	Rune rune   // code point, for EventAssign
	PPEM int    // strike size, for EventStrike
}

// EventKind describes what an Event reports.
type EventKind int

// The possible event kinds.
const (
	EventAssign EventKind = iota // a code point was assigned to a glyph
	EventStrike                  // a strike build started
)

// A Builder assembles emoji fonts from source images.  The zero value
// is usable; all fields are optional.
type Builder struct {
	// FamilyName is the font family name.  The default is "Emofont".
	FamilyName string

	// Strikes lists the bitmap sizes to generate, in increasing
	// order.  If nil, DefaultStrikes is used.
	Strikes []StrikeSpec

	// Allocate maps the images to code points.  If nil,
	// AllocateStandard is used.
	Allocate Allocator

	// Now is used for the font creation and modification timestamps.
	// If nil, time.Now is used.  Fixing the clock makes builds
	// reproducible.
	Now func() time.Time

	// Progress, if non-nil, is called to report build progress.
	Progress func(Event)
}

// Build assembles the font for the given images.
//
// Build either returns a complete font or an error; there is no
// partial output.  The returned font still has to be written out
// using its Write or WriteFile method.
func (b *Builder) Build(images []*SourceImage) (*ttf.Font, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	strikes := b.Strikes
	if strikes == nil {
		strikes = DefaultStrikes
	}
	err := checkStrikes(strikes)
	if err != nil {
		return nil, err
	}

	allocate := b.Allocate
	if allocate == nil {
		allocate = AllocateStandard
	}
	ids, err := allocate(images)
	if err != nil {
		return nil, err
	}

	glyphNames := make([]string, len(ids))
	widths := make([]uint16, len(ids))
	cmap := make(map[rune]ttf.GlyphID, len(images))
	for i, id := range ids {
		glyphNames[i] = id.Name
		widths[i] = advanceWidth
		if id.Rune >= 0 {
			cmap[id.Rune] = ttf.GlyphID(i)
			b.emit(Event{Kind: EventAssign, Name: id.Name, Rune: id.Rune})
		}
	}
	widths[0] = notdefWidth

	family := b.FamilyName
	if family == "" {
		family = "Emofont"
	}
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	t := now()

	font := &ttf.Font{
		FamilyName: family,
		StyleName:  "Regular",
		Version:    "Version 1.0",

		UnitsPerEm: unitsPerEm,
		Created:    t,
		Modified:   t,

		GlyphNames: glyphNames,
		CMap:       cmap,
		Widths:     widths,

		Ascent:  hheaAscent,
		Descent: hheaDescent,

		TypoAscender:  typoAscender,
		TypoDescender: typoDescender,
		WinAscent:     0,
		WinDescent:    0,
		XHeight:       xHeight,
		CapHeight:     capHeight,

		LowestRecPPEM: uint16(strikes[0].PPEM),
	}

	for _, spec := range strikes {
		b.emit(Event{Kind: EventStrike, PPEM: spec.PPEM})
		strike, err := b.buildStrike(images, spec)
		if err != nil {
			return nil, err
		}
		font.Strikes = append(font.Strikes, strike)
	}

	return font, nil
}

func (b *Builder) emit(ev Event) {
	if b.Progress != nil {
		b.Progress(ev)
	}
}

// checkStrikes verifies the strike configuration before any image
// work is started.
func checkStrikes(strikes []StrikeSpec) error {
	if len(strikes) == 0 {
		return fmt.Errorf("emofont: no strike sizes given")
	}
	prev := 0
	for _, s := range strikes {
		if s.PPEM <= 0 || s.PPEM > 0xFFFF {
			return &InvalidSizeError{Size: s.PPEM}
		}
		if s.PPEM <= prev {
			return fmt.Errorf("emofont: strike sizes must be strictly increasing")
		}
		if s.PPI <= 0 || s.PPI > 0xFFFF {
			return &InvalidSizeError{Size: s.PPI}
		}
		prev = s.PPEM
	}
	return nil
}
