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
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// A SourceImage is a handle to one PNG file which will become a glyph.
type SourceImage struct {
	// Path is the location of the PNG file.
	Path string

	width, height int
	haveSize      bool
}

// Size returns the intrinsic pixel dimensions of the image.  The file
// is only opened on the first call; the result is cached.
func (img *SourceImage) Size() (width, height int, err error) {
	if !img.haveSize {
		f, err := os.Open(img.Path)
		if err != nil {
			return 0, 0, &UnreadableImageError{Path: img.Path, Err: err}
		}
		defer f.Close()
		cfg, err := png.DecodeConfig(f)
		if err != nil {
			return 0, 0, &UnreadableImageError{Path: img.Path, Err: err}
		}
		img.width = cfg.Width
		img.height = cfg.Height
		img.haveSize = true
	}
	return img.width, img.height, nil
}

// ScanImages returns all PNG files in the given directory, sorted by
// file name.  An empty directory gives an empty slice; the allocators
// report this as an error.
func ScanImages(dir string) ([]*SourceImage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var images []*SourceImage
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			continue
		}
		images = append(images, &SourceImage{
			Path: filepath.Join(dir, e.Name()),
		})
	}
	return images, nil
}
