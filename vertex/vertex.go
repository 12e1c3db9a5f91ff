// seehuhn.de/go/pssg - read and write PSSG font asset libraries
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

// Package vertex packs and unpacks glyph vertex records.
//
// A record is one corner of a glyph quad: a three-component position
// followed by a two-component texture coordinate, stored as five
// big-endian IEEE-754 32-bit floats (20 bytes per record).
package vertex

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Record is a single vertex: position (x, y, z) and texture
// coordinates (u, v).  For glyph quads z is always zero.
type Record struct {
	Pos [3]float32
	UV  [2]float32
}

// The fixed layout written by the library assembler.
const (
	Stride    = 20 // bytes per record
	PosOffset = 0  // byte offset of the position within a record
	UVOffset  = 12 // byte offset of the texture coordinates
)

// Pack encodes the records back to back in the fixed layout.
func Pack(records []Record) []byte {
	buf := make([]byte, 0, len(records)*Stride)
	for _, rec := range records {
		for _, x := range rec.Pos {
			buf = binary.BigEndian.AppendUint32(buf, math.Float32bits(x))
		}
		for _, x := range rec.UV {
			buf = binary.BigEndian.AppendUint32(buf, math.Float32bits(x))
		}
	}
	return buf
}

// Layout describes how records are stored in a data block.  Position and
// texture coordinates may use independent offsets, so decoded documents
// with unusual interleaving still read correctly.
type Layout struct {
	ElementCount int
	Stride       int
	PosOffset    int
	UVOffset     int
}

// FixedLayout returns the layout the assembler writes for n records.
func FixedLayout(n int) Layout {
	return Layout{
		ElementCount: n,
		Stride:       Stride,
		PosOffset:    PosOffset,
		UVOffset:     UVOffset,
	}
}

// Unpack decodes l.ElementCount records from data.  Record i reads its
// position at i*Stride+PosOffset and its texture coordinates at
// i*Stride+UVOffset.
//
// If the buffer ends before all requested records are read, Unpack
// returns the records recovered so far together with a
// [*TruncatedBufferError]; the partial result is usable.
func Unpack(data []byte, l Layout) ([]Record, error) {
	if l.Stride <= 0 {
		return nil, fmt.Errorf("invalid stride %d", l.Stride)
	}
	if l.PosOffset < 0 || l.UVOffset < 0 {
		return nil, fmt.Errorf("invalid offsets %d, %d", l.PosOffset, l.UVOffset)
	}

	records := make([]Record, 0, l.ElementCount)
	for i := 0; i < l.ElementCount; i++ {
		base := i * l.Stride
		posEnd := base + l.PosOffset + 12
		uvEnd := base + l.UVOffset + 8
		if posEnd > len(data) || uvEnd > len(data) {
			return records, &TruncatedBufferError{
				Got:  i,
				Want: l.ElementCount,
				Need: max(posEnd, uvEnd),
				Len:  len(data),
			}
		}

		var rec Record
		for j := range rec.Pos {
			bits := binary.BigEndian.Uint32(data[base+l.PosOffset+4*j:])
			rec.Pos[j] = math.Float32frombits(bits)
		}
		for j := range rec.UV {
			bits := binary.BigEndian.Uint32(data[base+l.UVOffset+4*j:])
			rec.UV[j] = math.Float32frombits(bits)
		}
		records = append(records, rec)
	}
	return records, nil
}

// TruncatedBufferError indicates that a data block is too short for its
// declared element count.  Got records were recovered out of Want.
type TruncatedBufferError struct {
	Got, Want int
	Need, Len int // required vs available buffer length, in bytes
}

func (err *TruncatedBufferError) Error() string {
	return fmt.Sprintf("vertex buffer truncated: %d of %d records recovered (need %d bytes, have %d)",
		err.Got, err.Want, err.Need, err.Len)
}
