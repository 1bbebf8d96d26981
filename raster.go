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
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"
)

// renderBitmap scales the source image to fit a targetSize by
// targetSize pixel square and returns the result as encoded PNG data.
//
// The aspect ratio is preserved: the longer edge of the image exactly
// fills targetSize and the shorter edge is scaled proportionally.  The
// scaled image is centered on a fully transparent canvas; when the
// remaining padding is odd, the extra pixel goes to the right or
// bottom edge.
func renderBitmap(src *SourceImage, targetSize int) ([]byte, error) {
	if targetSize <= 0 {
		return nil, &InvalidSizeError{Size: targetSize}
	}

	f, err := os.Open(src.Path)
	if err != nil {
		return nil, &UnreadableImageError{Path: src.Path, Err: err}
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, &UnreadableImageError{Path: src.Path, Err: err}
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, &UnreadableImageError{
			Path: src.Path,
			Err:  fmt.Errorf("image has empty bounds %v", b),
		}
	}

	longEdge := w
	if h > longEdge {
		longEdge = h
	}
	scale := float64(targetSize) / float64(longEdge)
	newW := int(math.Round(float64(w) * scale))
	newH := int(math.Round(float64(h) * scale))

	canvas := image.NewNRGBA(image.Rect(0, 0, targetSize, targetSize))
	x0 := (targetSize - newW) / 2
	y0 := (targetSize - newH) / 2
	dest := image.Rect(x0, y0, x0+newW, y0+newH)

	// CatmullRom is the slowest but highest-quality kernel in
	// x/image/draw.  This runs once per glyph and strike at build
	// time, so quality wins over speed.
	draw.CatmullRom.Scale(canvas, dest, img, b, draw.Src, nil)

	buf := &bytes.Buffer{}
	err = png.Encode(buf, canvas)
	if err != nil {
		return nil, fmt.Errorf("emofont: encoding bitmap for %q: %w", src.Path, err)
	}
	return buf.Bytes(), nil
}
