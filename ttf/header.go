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
	"encoding/binary"
	"io"
	"math/bits"
	"sort"
)

// A table is one encoded sfnt table, ready to be written.  Write
// assembles the tables in their final file order, so writeFont keeps
// the physical order it is given.
type table struct {
	tag  string
	data []byte
}

// writeFont writes the complete font file: the offset table and table
// directory, followed by the table data, each table padded to a
// four-byte boundary.  The directory entries are sorted by tag as the
// format requires, while the table bodies stay in the given order.
//
// The checkSumAdjustment field of the "head" table is patched in
// place, so that the finished file sums to 0xB1B0AFBA.
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff
func writeFont(w io.Writer, tables []table) (int64, error) {
	numTables := len(tables)

	var head []byte
	for _, t := range tables {
		if t.tag == "head" {
			head = t.data
			binary.BigEndian.PutUint32(head[8:12], 0)
		}
	}

	type record struct {
		tag      string
		checkSum uint32
		offset   uint32
		length   uint32
	}
	records := make([]record, numTables)
	offset := uint32(12 + 16*numTables)
	var totalSum uint32
	for i, t := range tables {
		sum := checksum(t.data)
		records[i] = record{
			tag:      t.tag,
			checkSum: sum,
			offset:   offset,
			length:   uint32(len(t.data)),
		}
		totalSum += sum
		offset += (uint32(len(t.data)) + 3) &^ 3
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].tag < records[j].tag
	})

	entrySelector := bits.Len(uint(numTables)) - 1
	searchRange := 1 << (entrySelector + 4)

	dir := make([]byte, 12+16*numTables)
	binary.BigEndian.PutUint32(dir, scalerTypeTrueType)
	binary.BigEndian.PutUint16(dir[4:], uint16(numTables))
	binary.BigEndian.PutUint16(dir[6:], uint16(searchRange))
	binary.BigEndian.PutUint16(dir[8:], uint16(entrySelector))
	binary.BigEndian.PutUint16(dir[10:], uint16(16*numTables-searchRange))
	for i, r := range records {
		base := 12 + 16*i
		copy(dir[base:], r.tag)
		binary.BigEndian.PutUint32(dir[base+4:], r.checkSum)
		binary.BigEndian.PutUint32(dir[base+8:], r.offset)
		binary.BigEndian.PutUint32(dir[base+12:], r.length)
	}
	totalSum += checksum(dir)

	if head != nil {
		binary.BigEndian.PutUint32(head[8:12], 0xB1B0AFBA-totalSum)
	}

	var totalSize int64
	n, err := w.Write(dir)
	totalSize += int64(n)
	if err != nil {
		return totalSize, err
	}
	var pad [3]byte
	for _, t := range tables {
		n, err := w.Write(t.data)
		totalSize += int64(n)
		if err != nil {
			return totalSize, err
		}
		if k := n % 4; k != 0 {
			l, err := w.Write(pad[:4-k])
			totalSize += int64(l)
			if err != nil {
				return totalSize, err
			}
		}
	}
	return totalSize, nil
}

// checksum computes the sfnt table checksum, i.e. the sum of the table
// data interpreted as big-endian uint32 values, with zero padding at
// the end.
func checksum(data []byte) uint32 {
	var sum uint32
	for len(data) >= 4 {
		sum += binary.BigEndian.Uint32(data)
		data = data[4:]
	}
	if len(data) > 0 {
		var last [4]byte
		copy(last[:], data)
		sum += binary.BigEndian.Uint32(last[:])
	}
	return sum
}
