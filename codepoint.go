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
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/slices"
)

// emojiBase is the first code point used by AllocateStandard.
// U+1F600 is "grinning face", the start of the Emoticons block.
const emojiBase rune = 0x1F600

// A GlyphIdentity pairs a glyph name with the code point the glyph is
// mapped to.  Identities are created once per font and shared by all
// strikes.
type GlyphIdentity struct {
	Name string

	// Rune is the code point, or -1 for the .notdef glyph.
	Rune rune
}

// An Allocator maps source images to glyph identities.  The returned
// slice has one more entry than images: index 0 is the reserved
// .notdef glyph, and entry i+1 belongs to images[i].  Code points are
// strictly increasing in image order.
type Allocator func(images []*SourceImage) ([]GlyphIdentity, error)

// AllocateStandard assigns consecutive code points starting at
// U+1F600, in the order the images were discovered.
func AllocateStandard(images []*SourceImage) ([]GlyphIdentity, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	ids := make([]GlyphIdentity, len(images)+1)
	ids[0] = GlyphIdentity{Name: ".notdef", Rune: -1}
	for i := range images {
		r := emojiBase + rune(i)
		ids[i+1] = GlyphIdentity{Name: glyphName(r), Rune: r}
	}
	return ids, nil
}

// AllocateLegacy takes the code point for each image from its file
// name, which must have the form "U+<hex>.png".  The images slice is
// re-ordered by increasing code point, so that the glyph order does
// not depend on how the file system enumerated the directory.
func AllocateLegacy(images []*SourceImage) ([]GlyphIdentity, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	runes := make(map[*SourceImage]rune, len(images))
	for _, img := range images {
		r, err := parseCodepoint(img.Path)
		if err != nil {
			return nil, err
		}
		runes[img] = r
	}
	slices.SortFunc(images, func(a, b *SourceImage) int {
		return int(runes[a]) - int(runes[b])
	})

	ids := make([]GlyphIdentity, len(images)+1)
	ids[0] = GlyphIdentity{Name: ".notdef", Rune: -1}
	for i, img := range images {
		r := runes[img]
		if i > 0 && r == ids[i].Rune {
			return nil, fmt.Errorf("emofont: duplicate code point U+%04X in %q",
				r, filepath.Base(img.Path))
		}
		ids[i+1] = GlyphIdentity{Name: glyphName(r), Rune: r}
	}
	return ids, nil
}

// parseCodepoint extracts the code point from a file name like
// "U+1F600.png".  The hexadecimal digits are case-insensitive.
func parseCodepoint(path string) (rune, error) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	hex, ok := strings.CutPrefix(stem, "U+")
	if !ok {
		hex, ok = strings.CutPrefix(stem, "u+")
	}
	if !ok {
		return 0, &InvalidCodepointError{Filename: base}
	}
	x, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || x > unicode.MaxRune {
		return 0, &InvalidCodepointError{Filename: base}
	}
	return rune(x), nil
}

// glyphName derives the glyph name for a code point, e.g. "uni1F600".
func glyphName(r rune) string {
	return fmt.Sprintf("uni%04X", r)
}
