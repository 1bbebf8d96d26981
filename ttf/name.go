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
	"regexp"
	"unicode/utf16"
)

// Name IDs used in the "name" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#name-ids
const (
	nameIDFamily     = 1
	nameIDSubfamily  = 2
	nameIDUniqueID   = 3
	nameIDFullName   = 4
	nameIDVersion    = 5
	nameIDPostScript = 6
)

// encodeName encodes the "name" table.  All strings are stored as
// UTF-16 records for the Windows platform, language "en-US".
func (f *Font) encodeName() []byte {
	style := f.StyleName
	if style == "" {
		style = "Regular"
	}
	version := f.Version
	if version == "" {
		version = "Version 1.0"
	}
	psName := f.PostScriptName()

	entries := []struct {
		nameID uint16
		value  string
	}{
		{nameIDFamily, f.FamilyName},
		{nameIDSubfamily, style},
		{nameIDUniqueID, psName},
		{nameIDFullName, f.FamilyName + " " + style},
		{nameIDVersion, version},
		{nameIDPostScript, psName},
	}

	b := &nameBuilder{idx: make(map[string]uint16)}

	type recInfo struct {
		nameID uint16
		offset uint16
		length uint16
	}
	var records []recInfo
	for _, e := range entries {
		if e.value == "" {
			continue
		}
		offset, length := b.add(utf16Encode(e.value))
		records = append(records, recInfo{e.nameID, offset, length})
	}

	numRec := len(records)
	startOfStrings := 6 + numRec*12
	res := make([]byte, startOfStrings+len(b.data))

	// res[0:2] is the table format, 0
	res[2] = byte(numRec >> 8)
	res[3] = byte(numRec)
	res[4] = byte(startOfStrings >> 8)
	res[5] = byte(startOfStrings)
	for i, rec := range records {
		base := 6 + i*12
		res[base+1] = 3 // platform ID: Windows
		res[base+3] = 1 // encoding ID: Unicode BMP
		res[base+4] = 0x04
		res[base+5] = 0x09 // language ID: en-US
		res[base+6] = byte(rec.nameID >> 8)
		res[base+7] = byte(rec.nameID)
		res[base+8] = byte(rec.length >> 8)
		res[base+9] = byte(rec.length)
		res[base+10] = byte(rec.offset >> 8)
		res[base+11] = byte(rec.offset)
	}
	copy(res[startOfStrings:], b.data)

	return res
}

// PostScriptName derives the PostScript font name from the family and
// style names, removing all characters which are not allowed in
// PostScript names.
func (f *Font) PostScriptName() string {
	style := f.StyleName
	if style == "" {
		style = "Regular"
	}
	name := f.FamilyName + "-" + style
	return psNameInvalid.ReplaceAllString(name, "")
}

var psNameInvalid = regexp.MustCompile(`[^!-$&-'*-.0-;=?-Z\\^-z|~]+`)

// nameBuilder accumulates the string storage area, de-duplicating
// repeated strings.
type nameBuilder struct {
	data []byte
	idx  map[string]uint16
}

func (nb *nameBuilder) add(b []byte) (offset, length uint16) {
	key := string(b)
	if idx, ok := nb.idx[key]; ok {
		return idx, uint16(len(b))
	}
	idx := uint16(len(nb.data))
	nb.idx[key] = idx
	nb.data = append(nb.data, b...)
	return idx, uint16(len(b))
}

func utf16Encode(s string) []byte {
	rr := utf16.Encode([]rune(s))
	res := make([]byte, len(rr)*2)
	for i, r := range rr {
		res[i*2] = byte(r >> 8)
		res[i*2+1] = byte(r)
	}
	return res
}
