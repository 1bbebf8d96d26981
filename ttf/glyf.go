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

// emptyOutlines creates "glyf" and "loca" tables for a font where
// every glyph has an empty outline.  TrueType fonts must carry the
// two tables even when all glyphs are drawn from bitmap strikes.
//
// With no outline data at all, every loca offset is zero and the
// "glyf" table itself has length zero.  Short loca offsets are used.
func emptyOutlines(numGlyphs int) (glyfData, locaData []byte) {
	return []byte{}, make([]byte, 2*(numGlyphs+1))
}
