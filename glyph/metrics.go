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

package glyph

import (
	"math"

	"seehuhn.de/go/pssg/atlas"
)

// Scale is the fixed-point denominator of all metrics values.  The
// asset format stores metrics as integers in units of 1/Scale em.
const Scale = 1000

// Metrics are the per-glyph metrics of one glyph, in fixed-point units
// of 1/[Scale] em.  For non-rendering glyphs all fields except
// AdvanceWidth are zero.
type Metrics struct {
	CodePoint         rune
	AdvanceWidth      int
	HorizontalBearing int
	VerticalBearing   int // baseline to glyph top
	PhysicalWidth     int
	PhysicalHeight    int
}

// FontMetrics are the font-global metrics, in the same fixed-point
// units.
type FontMetrics struct {
	Scale               int
	Ascender            int
	Descender           int
	MaximumAdvanceWidth int
	NumCharacters       int
}

// NewMetrics derives the metrics record for one glyph.
func NewMetrics(g *atlas.Glyph) Metrics {
	m := Metrics{
		CodePoint:    g.CodePoint,
		AdvanceWidth: scaled(g.Advance),
	}
	if g.Renderable() {
		pb := g.Bounds.Plane
		m.HorizontalBearing = scaled(pb.LLx)
		m.VerticalBearing = scaled(pb.URy)
		m.PhysicalWidth = scaled(pb.URx - pb.LLx)
		m.PhysicalHeight = scaled(pb.URy - pb.LLy)
	}
	return m
}

// NewFontMetrics derives the font-global metrics from an atlas
// document.  For an empty glyph set the maximum advance width defaults
// to one em; this does not happen with real atlas files.
func NewFontMetrics(doc *atlas.Document) FontMetrics {
	maxAdvance := 1.0
	if len(doc.Glyphs) > 0 {
		maxAdvance = doc.Glyphs[0].Advance
		for _, g := range doc.Glyphs[1:] {
			if g.Advance > maxAdvance {
				maxAdvance = g.Advance
			}
		}
	}
	return FontMetrics{
		Scale:               Scale,
		Ascender:            scaled(doc.Metrics.Ascender),
		Descender:           scaled(doc.Metrics.Descender),
		MaximumAdvanceWidth: scaled(maxAdvance),
		NumCharacters:       len(doc.Glyphs),
	}
}

func scaled(x float64) int {
	return int(math.Round(x * Scale))
}
