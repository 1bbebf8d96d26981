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

// Emofont builds a color emoji font from a directory of PNG images.
//
// Usage:
//
//	emofont [options] imagedir
//
// By default the images are mapped to consecutive code points
// starting at U+1F600, in file name order.  With the -legacy option,
// each code point is taken from the file name instead, which must
// have the form "U+<hex>.png".
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/emofont"
)

func main() {
	out := flag.String("o", "emoji.ttf", "output file name")
	force := flag.Bool("f", false, "overwrite output file if it exists")
	family := flag.String("family", "Emofont", "font family name")
	sizes := flag.String("sizes", "32,64,128,256", "strike sizes in pixels per em")
	legacy := flag.Bool("legacy", false, "take code points from file names (U+xxxx.png)")
	quiet := flag.Bool("q", false, "suppress progress output")
	flag.Parse()

	if len(flag.Args()) != 1 {
		fmt.Fprintln(os.Stderr, "error: no image directory given")
		flag.Usage()
		os.Exit(1)
	}

	if !*force {
		if _, err := os.Stat(*out); !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "error: output file %q already exists\n", *out)
			os.Exit(1)
		}
	}

	strikes, err := parseSizes(*sizes)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	err = buildFont(flag.Arg(0), *out, *family, strikes, *legacy, *quiet)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func buildFont(dir, out, family string, strikes []emofont.StrikeSpec, legacy, quiet bool) error {
	images, err := emofont.ScanImages(dir)
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Printf("found %d image files in %q\n", len(images), dir)
	}

	b := &emofont.Builder{
		FamilyName: family,
		Strikes:    strikes,
	}
	if legacy {
		b.Allocate = emofont.AllocateLegacy
	}
	if !quiet {
		b.Progress = showProgress
	}

	font, err := b.Build(images)
	if err != nil {
		return err
	}

	err = font.WriteFile(out)
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Printf("wrote %q\n", out)
	}
	return nil
}

func showProgress(ev emofont.Event) {
	switch ev.Kind {
	case emofont.EventAssign:
		fmt.Printf("  mapping U+%04X to %s\n", ev.Rune, ev.Name)
	case emofont.EventStrike:
		fmt.Printf("  strike %d ppem\n", ev.PPEM)
	}
}

func parseSizes(s string) ([]emofont.StrikeSpec, error) {
	var strikes []emofont.StrikeSpec
	for _, field := range strings.Split(s, ",") {
		ppem, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid strike size %q", field)
		}
		strikes = append(strikes, emofont.StrikeSpec{PPEM: ppem, PPI: 72})
	}
	return strikes, nil
}
