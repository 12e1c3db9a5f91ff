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

package inspect

import (
	"fmt"
	"math"
	"strconv"

	"github.com/beevik/etree"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pssg/glyph"
	"seehuhn.de/go/pssg/vertex"
)

// GlyphMetrics reads the metrics record of one glyph.
func (l *Libraries) GlyphMetrics(cp rune) (glyph.Metrics, error) {
	el, ok := l.glyphMetrics[cp]
	if !ok {
		return glyph.Metrics{}, &GlyphNotFoundError{CodePoint: cp}
	}

	m := glyph.Metrics{CodePoint: cp}
	for _, field := range []struct {
		attr string
		dst  *int
	}{
		{"advanceWidth", &m.AdvanceWidth},
		{"horizontalBearing", &m.HorizontalBearing},
		{"verticalBearing", &m.VerticalBearing},
		{"physicalWidth", &m.PhysicalWidth},
		{"physicalHeight", &m.PhysicalHeight},
	} {
		var err error
		*field.dst, err = intAttr(el, field.attr)
		if err != nil {
			return glyph.Metrics{}, fmt.Errorf("glyph U+%04X metrics: %w", cp, err)
		}
	}
	return m, nil
}

// FontMetrics reads the font-global metrics record.
func (l *Libraries) FontMetrics() (glyph.FontMetrics, error) {
	var fm glyph.FontMetrics
	if l.fontMetrics == nil {
		return fm, fmt.Errorf("no font metrics record loaded")
	}
	for _, field := range []struct {
		attr string
		dst  *int
	}{
		{"scale", &fm.Scale},
		{"ascender", &fm.Ascender},
		{"descender", &fm.Descender},
		{"maximumAdvanceWidth", &fm.MaximumAdvanceWidth},
		{"numCharacters", &fm.NumCharacters},
	} {
		var err error
		*field.dst, err = intAttr(l.fontMetrics, field.attr)
		if err != nil {
			return glyph.FontMetrics{}, fmt.Errorf("font metrics: %w", err)
		}
	}
	if fm.Scale <= 0 {
		return glyph.FontMetrics{}, fmt.Errorf("font metrics: bad scale %d", fm.Scale)
	}
	return fm, nil
}

func intAttr(el *etree.Element, name string) (int, error) {
	n, err := strconv.Atoi(el.SelectAttrValue(name, ""))
	if err != nil {
		return 0, fmt.Errorf("bad %s attribute", name)
	}
	return n, nil
}

// QuadFromMetrics reconstructs the quad corner positions a glyph's
// metrics record implies, in the same top-anchored coordinates and
// corner order the geometry decoder yields.  Comparing this against the
// decoded positions verifies that metrics and vertex data agree.
func QuadFromMetrics(m glyph.Metrics, fm glyph.FontMetrics) [4]vec.Vec2 {
	s := float64(fm.Scale)
	left := float64(m.HorizontalBearing) / s
	right := float64(m.HorizontalBearing+m.PhysicalWidth) / s
	bottom := -float64(m.PhysicalHeight) / s

	var quad [4]vec.Vec2
	quad[glyph.TopLeft] = vec.Vec2{X: left, Y: 0}
	quad[glyph.BottomLeft] = vec.Vec2{X: left, Y: bottom}
	quad[glyph.BottomRight] = vec.Vec2{X: right, Y: bottom}
	quad[glyph.TopRight] = vec.Vec2{X: right, Y: 0}
	return quad
}

// NormalizeBaseline shifts decoded vertex positions from top-anchored to
// baseline-relative coordinates: the glyph's top edge moves to the
// vertical bearing and the baseline to y=0.  This puts geometry from
// differently anchored toolchains into one comparable frame.
func NormalizeBaseline(records []vertex.Record, m glyph.Metrics, fm glyph.FontMetrics) []vertex.Record {
	if len(records) == 0 {
		return nil
	}

	topY := records[0].Pos[1]
	for _, rec := range records[1:] {
		if rec.Pos[1] > topY {
			topY = rec.Pos[1]
		}
	}
	shift := topY - float32(float64(m.VerticalBearing)/float64(fm.Scale))

	out := make([]vertex.Record, len(records))
	for i, rec := range records {
		rec.Pos[1] -= shift
		out[i] = rec
	}
	return out
}

// MaxDeviation returns the largest per-component position and texture
// coordinate difference between two vertex sets.  Extra records in the
// longer set are ignored.
func MaxDeviation(a, b []vertex.Record) (pos, uv float64) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		for j := range a[i].Pos {
			pos = math.Max(pos, math.Abs(float64(a[i].Pos[j]-b[i].Pos[j])))
		}
		for j := range a[i].UV {
			uv = math.Max(uv, math.Abs(float64(a[i].UV[j]-b[i].UV[j])))
		}
	}
	return pos, uv
}
