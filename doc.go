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

// Package emofont converts a directory of PNG images into a TrueType
// font which shows the images as color emoji.
//
// Each image becomes one glyph, rendered into a set of bitmap strikes
// at several pixel sizes and stored in an "sbix" table.  The font uses
// the vertical metrics of Apple Color Emoji, so that the bitmaps are
// positioned consistently across renderers.
//
// The usual entry point is the Builder:
//
//	images, err := emofont.ScanImages("images")
//	...
//	b := &emofont.Builder{FamilyName: "MyEmoji"}
//	font, err := b.Build(images)
//	...
//	err = font.WriteFile("MyEmoji.ttf")
package emofont
