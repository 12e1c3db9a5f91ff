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

package vertex

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testRecords = []Record{
	{Pos: [3]float32{0.05, 0, 0}, UV: [2]float32{0.10, 0.95}},
	{Pos: [3]float32{0.05, -0.7, 0}, UV: [2]float32{0.10, 0.25}},
	{Pos: [3]float32{0.55, -0.7, 0}, UV: [2]float32{0.60, 0.25}},
	{Pos: [3]float32{0.55, 0, 0}, UV: [2]float32{0.60, 0.95}},
}

func TestPackLayout(t *testing.T) {
	buf := Pack(testRecords)
	if len(buf) != 4*Stride {
		t.Fatalf("packed %d bytes, want %d", len(buf), 4*Stride)
	}
	// 1.0f is 3F 80 00 00 big-endian
	one := Pack([]Record{{Pos: [3]float32{1, 0, 0}}})
	if one[0] != 0x3f || one[1] != 0x80 || one[2] != 0 || one[3] != 0 {
		t.Errorf("unexpected byte order: % x", one[:4])
	}
}

func TestRoundTrip(t *testing.T) {
	buf := Pack(testRecords)
	got, err := Unpack(buf, FixedLayout(len(testRecords)))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(testRecords, got); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}
}

func TestUnpackOffsets(t *testing.T) {
	// swap the streams: UV first, position second
	buf := make([]byte, 0, len(testRecords)*Stride)
	for _, rec := range testRecords {
		buf = append(buf, Pack([]Record{{Pos: [3]float32{rec.UV[0], rec.UV[1], 0}}})[:8]...)
		buf = append(buf, Pack([]Record{rec})[:12]...)
	}
	got, err := Unpack(buf, Layout{
		ElementCount: len(testRecords),
		Stride:       Stride,
		PosOffset:    8,
		UVOffset:     0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(testRecords, got); d != "" {
		t.Errorf("unexpected records (-want +got):\n%s", d)
	}
}

func TestUnpackTruncated(t *testing.T) {
	buf := Pack(testRecords)

	// cutting one byte loses the last record
	got, err := Unpack(buf[:len(buf)-1], FixedLayout(4))
	var trunc *TruncatedBufferError
	if !errors.As(err, &trunc) {
		t.Fatalf("expected TruncatedBufferError, got %v", err)
	}
	if trunc.Got != 3 || trunc.Want != 4 {
		t.Errorf("recovered %d of %d, want 3 of 4", trunc.Got, trunc.Want)
	}
	if d := cmp.Diff(testRecords[:3], got); d != "" {
		t.Errorf("partial result mismatch (-want +got):\n%s", d)
	}

	// an empty buffer recovers nothing
	got, err = Unpack(nil, FixedLayout(4))
	if !errors.As(err, &trunc) {
		t.Fatalf("expected TruncatedBufferError, got %v", err)
	}
	if len(got) != 0 || trunc.Got != 0 {
		t.Errorf("expected no records, got %d", len(got))
	}
}

func TestUnpackZeroCount(t *testing.T) {
	got, err := Unpack(nil, FixedLayout(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected no records, got %d", len(got))
	}
}

func TestUnpackBadStride(t *testing.T) {
	if _, err := Unpack(make([]byte, 80), Layout{ElementCount: 4}); err == nil {
		t.Error("expected error for zero stride")
	}
}

func TestUnpackNegativeOffset(t *testing.T) {
	buf := Pack(testRecords)

	cases := []Layout{
		{ElementCount: 4, Stride: Stride, PosOffset: -4, UVOffset: UVOffset},
		{ElementCount: 4, Stride: Stride, PosOffset: PosOffset, UVOffset: -8},
	}
	for _, l := range cases {
		if _, err := Unpack(buf, l); err == nil {
			t.Errorf("layout %+v: expected error for negative offset", l)
		}
	}
}
