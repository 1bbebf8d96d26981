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
	"testing"
	"time"
)

func TestTimeRoundTrip(t *testing.T) {
	cases := []time.Time{
		{},
		time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.August, 25, 12, 30, 45, 0, time.UTC),
	}
	for _, in := range cases {
		out := decodeTime(encodeTime(in))
		if !in.Equal(out) {
			t.Errorf("time %s round-trips to %s", in, out)
		}
	}

	if enc := encodeTime(time.Date(1904, time.January, 1, 0, 0, 1, 0, time.UTC)); enc != 1 {
		t.Errorf("one second after the epoch encodes as %d", enc)
	}
}

func TestHeadEncode(t *testing.T) {
	f := &Font{
		UnitsPerEm:    800,
		Created:       time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC),
		Modified:      time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC),
		LowestRecPPEM: 32,
	}
	data := f.encodeHead()
	if len(data) != 54 {
		t.Fatalf("head table is %d bytes, expected 54", len(data))
	}
	// checkSumAdjustment starts out as zero
	for _, b := range data[8:12] {
		if b != 0 {
			t.Error("checkSumAdjustment not zero before file assembly")
			break
		}
	}
	// the bounding box is empty: no outlines
	for _, b := range data[36:44] {
		if b != 0 {
			t.Error("bounding box not empty")
			break
		}
	}
}
