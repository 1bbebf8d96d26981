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
	"errors"
	"strconv"
)

// ErrNoImages indicates that no source images were found.
var ErrNoImages = errors.New("emofont: no source images found")

// InvalidCodepointError indicates a source file whose name does not
// encode a valid Unicode code point.
type InvalidCodepointError struct {
	Filename string
}

func (err *InvalidCodepointError) Error() string {
	return "emofont: cannot parse code point from filename " +
		strconv.Quote(err.Filename)
}

// UnreadableImageError indicates a source image which could not be
// opened or decoded.
type UnreadableImageError struct {
	Path string
	Err  error
}

func (err *UnreadableImageError) Error() string {
	return "emofont: cannot read image " + strconv.Quote(err.Path) +
		": " + err.Err.Error()
}

func (err *UnreadableImageError) Unwrap() error {
	return err.Err
}

// InvalidSizeError indicates a non-positive strike size.
type InvalidSizeError struct {
	Size int
}

func (err *InvalidSizeError) Error() string {
	return "emofont: invalid strike size " + strconv.Itoa(err.Size)
}
