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

// Package atlas reads the glyph-atlas JSON produced by the atlas
// generation tool (msdf-atlas-gen).
//
// The document describes one font: the atlas texture dimensions, global
// font metrics, and one record per glyph.  Rendering glyphs carry two
// rectangles, the plane bounds (baseline-relative font units) and the
// atlas bounds (texture pixels); non-rendering glyphs such as space
// carry neither.
package atlas

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/geom/rect"
)

// Bounds holds the two rectangles of a rendering glyph.  Both are always
// present together.
//
// Plane is in font units relative to the baseline: LLy is the bottom
// (usually negative for descenders), URy the top.  Atlas is in texture
// pixels with the origin at the bottom of the image, as produced by the
// generator's "-yorigin bottom" mode.
type Bounds struct {
	Plane rect.Rect
	Atlas rect.Rect
}

// Glyph is one glyph record.  CodePoint is unique within a document.
// Bounds is nil for non-rendering glyphs; such glyphs still receive
// metrics and a zero-size quad downstream.
type Glyph struct {
	CodePoint rune
	Advance   float64
	Bounds    *Bounds
}

// Renderable reports whether the glyph has bounds and therefore leaves
// marks on screen.
func (g *Glyph) Renderable() bool {
	return g.Bounds != nil
}

// Metrics holds the font-global metrics of the atlas document.
type Metrics struct {
	EmSize     float64
	LineHeight float64
	Ascender   float64
	Descender  float64
}

// Document is a parsed glyph-atlas description.
type Document struct {
	Width, Height int // atlas texture dimensions in pixels
	Metrics       Metrics
	Glyphs        []Glyph
}

// jsonBounds mirrors the bounds objects of the input file.
type jsonBounds struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

func (b *jsonBounds) rect() rect.Rect {
	return rect.Rect{LLx: b.Left, LLy: b.Bottom, URx: b.Right, URy: b.Top}
}

type jsonGlyph struct {
	Unicode     int32       `json:"unicode"`
	Advance     float64     `json:"advance"`
	PlaneBounds *jsonBounds `json:"planeBounds"`
	AtlasBounds *jsonBounds `json:"atlasBounds"`
}

type jsonDocument struct {
	Atlas *struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"atlas"`
	Metrics *struct {
		EmSize     float64 `json:"emSize"`
		LineHeight float64 `json:"lineHeight"`
		Ascender   float64 `json:"ascender"`
		Descender  float64 `json:"descender"`
	} `json:"metrics"`
	Glyphs []jsonGlyph `json:"glyphs"`
}

// Read parses and validates an atlas document from a file.
func Read(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		if m, ok := err.(*MalformedInputError); ok {
			m.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Decode parses and validates an atlas document.
func Decode(r io.Reader) (*Document, error) {
	var raw jsonDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, &MalformedInputError{Err: err}
	}

	if raw.Atlas == nil {
		return nil, malformed(`missing "atlas" object`)
	}
	if raw.Atlas.Width <= 0 || raw.Atlas.Height <= 0 {
		return nil, malformed(fmt.Sprintf("invalid atlas dimensions %dx%d",
			raw.Atlas.Width, raw.Atlas.Height))
	}
	if raw.Glyphs == nil {
		return nil, malformed(`missing "glyphs" array`)
	}

	doc := &Document{
		Width:  raw.Atlas.Width,
		Height: raw.Atlas.Height,
		Glyphs: make([]Glyph, 0, len(raw.Glyphs)),
	}
	if raw.Metrics != nil {
		doc.Metrics = Metrics{
			EmSize:     raw.Metrics.EmSize,
			LineHeight: raw.Metrics.LineHeight,
			Ascender:   raw.Metrics.Ascender,
			Descender:  raw.Metrics.Descender,
		}
	}

	seen := make(map[rune]bool, len(raw.Glyphs))
	for i, rg := range raw.Glyphs {
		cp := rune(rg.Unicode)
		if seen[cp] {
			return nil, malformed(fmt.Sprintf("glyph %d: duplicate code point U+%04X", i, rg.Unicode))
		}
		seen[cp] = true

		g := Glyph{CodePoint: cp, Advance: rg.Advance}
		switch {
		case rg.PlaneBounds != nil && rg.AtlasBounds != nil:
			g.Bounds = &Bounds{
				Plane: rg.PlaneBounds.rect(),
				Atlas: rg.AtlasBounds.rect(),
			}
		case rg.PlaneBounds != nil || rg.AtlasBounds != nil:
			// Plane and atlas bounds are only meaningful as a pair.
			return nil, malformed(fmt.Sprintf(
				"glyph U+%04X: planeBounds and atlasBounds must be present together", rg.Unicode))
		}
		doc.Glyphs = append(doc.Glyphs, g)
	}
	return doc, nil
}

func malformed(reason string) error {
	return &MalformedInputError{Reason: reason}
}

// MalformedInputError indicates that the atlas JSON cannot be used.
// This is fatal for the whole conversion; nothing is written.
type MalformedInputError struct {
	Path   string
	Reason string
	Err    error
}

func (err *MalformedInputError) Error() string {
	msg := "malformed atlas document"
	if err.Path != "" {
		msg += " " + err.Path
	}
	if err.Reason != "" {
		msg += ": " + err.Reason
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *MalformedInputError) Unwrap() error {
	return err.Err
}
