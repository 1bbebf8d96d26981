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
	"math"

	"seehuhn.de/go/emofont/ttf"
)

// A StrikeSpec describes one bitmap strike to generate.
type StrikeSpec struct {
	// PPEM is the strike size in pixels per em.
	PPEM int

	// PPI is the device resolution the strike targets, in pixels
	// per inch.
	PPI int
}

// DefaultStrikes covers the common display densities.
var DefaultStrikes = []StrikeSpec{
	{PPEM: 32, PPI: 72},
	{PPEM: 64, PPI: 72},
	{PPEM: 128, PPI: 72},
	{PPEM: 256, PPI: 72},
}

// buildStrike renders every source image at the strike's pixel size
// and assembles the bitmap glyph table for the strike.  Glyph 0 is
// the reserved .notdef entry with an empty payload, so the strike
// covers the complete glyph order.
//
// Any render failure aborts the strike: a font with bitmap data
// missing for some glyphs would be invalid output.
func (b *Builder) buildStrike(images []*SourceImage, spec StrikeSpec) (*ttf.Strike, error) {
	// The bitmap fills the whole em square, while the glyph origin
	// sits on the baseline.  Shifting the bitmap down by the
	// descender, converted from design units to strike pixels, makes
	// the baselines of all strikes coincide.
	originY := int16(math.Round(float64(hheaDescent) * float64(spec.PPEM) / unitsPerEm))

	glyphs := make([]ttf.BitmapGlyph, len(images)+1)
	for i, img := range images {
		data, err := renderBitmap(img, spec.PPEM)
		if err != nil {
			return nil, err
		}
		glyphs[i+1] = ttf.BitmapGlyph{
			OriginOffsetY: originY,
			Data:          data,
		}
	}

	return &ttf.Strike{
		PPEM:   uint16(spec.PPEM),
		PPI:    uint16(spec.PPI),
		Glyphs: glyphs,
	}, nil
}
