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

package atlas

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
)

const sampleJSON = `{
  "atlas": {"width": 100, "height": 100},
  "metrics": {"emSize": 1, "lineHeight": 1.2, "ascender": 0.75, "descender": -0.25},
  "glyphs": [
    {"unicode": 32, "advance": 0.25},
    {
      "unicode": 65,
      "advance": 0.6,
      "planeBounds": {"left": 0.05, "bottom": 0.0, "right": 0.55, "top": 0.7},
      "atlasBounds": {"left": 10, "bottom": 5, "right": 60, "top": 75}
    }
  ]
}`

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}

	want := &Document{
		Width:  100,
		Height: 100,
		Metrics: Metrics{
			EmSize:     1,
			LineHeight: 1.2,
			Ascender:   0.75,
			Descender:  -0.25,
		},
		Glyphs: []Glyph{
			{CodePoint: ' ', Advance: 0.25},
			{
				CodePoint: 'A',
				Advance:   0.6,
				Bounds: &Bounds{
					Plane: rect.Rect{LLx: 0.05, LLy: 0, URx: 0.55, URy: 0.7},
					Atlas: rect.Rect{LLx: 10, LLy: 5, URx: 60, URy: 75},
				},
			},
		},
	}
	if d := cmp.Diff(want, doc); d != "" {
		t.Errorf("unexpected document (-want +got):\n%s", d)
	}

	if doc.Glyphs[0].Renderable() {
		t.Error("space must not be renderable")
	}
	if !doc.Glyphs[1].Renderable() {
		t.Error("A must be renderable")
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"not json", "<xml/>"},
		{"missing atlas", `{"glyphs": []}`},
		{"zero width", `{"atlas": {"width": 0, "height": 100}, "glyphs": []}`},
		{"negative height", `{"atlas": {"width": 100, "height": -1}, "glyphs": []}`},
		{"missing glyphs", `{"atlas": {"width": 100, "height": 100}}`},
		{
			"plane bounds without atlas bounds",
			`{"atlas": {"width": 100, "height": 100}, "glyphs": [
				{"unicode": 65, "advance": 0.6,
				 "planeBounds": {"left": 0, "bottom": 0, "right": 1, "top": 1}}]}`,
		},
		{
			"atlas bounds without plane bounds",
			`{"atlas": {"width": 100, "height": 100}, "glyphs": [
				{"unicode": 65, "advance": 0.6,
				 "atlasBounds": {"left": 0, "bottom": 0, "right": 1, "top": 1}}]}`,
		},
		{
			"duplicate code point",
			`{"atlas": {"width": 100, "height": 100}, "glyphs": [
				{"unicode": 65, "advance": 0.6},
				{"unicode": 65, "advance": 0.7}]}`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(c.in))
			var malformed *MalformedInputError
			if !errors.As(err, &malformed) {
				t.Errorf("expected MalformedInputError, got %v", err)
			}
		})
	}
}

func TestDecodeEmptyGlyphList(t *testing.T) {
	doc, err := Decode(strings.NewReader(
		`{"atlas": {"width": 64, "height": 64}, "glyphs": []}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Glyphs) != 0 {
		t.Errorf("expected no glyphs, got %d", len(doc.Glyphs))
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "font-atlas.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o666); err != nil {
		t.Fatal(err)
	}

	doc, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Glyphs) != 2 {
		t.Errorf("expected 2 glyphs, got %d", len(doc.Glyphs))
	}

	// error carries the file path
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"glyphs": []}`), 0o666); err != nil {
		t.Fatal(err)
	}
	_, err = Read(bad)
	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedInputError, got %v", err)
	}
	if malformed.Path != bad {
		t.Errorf("Path = %q, want %q", malformed.Path, bad)
	}
}
