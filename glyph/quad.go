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

// Package glyph derives per-glyph quad geometry and metrics from atlas
// glyph records.
package glyph

import (
	"seehuhn.de/go/pssg/atlas"
	"seehuhn.de/go/pssg/vertex"
)

// Corner indices of the quad returned by [Quad].  All consumers rely on
// this order positionally; it is a hard contract of the asset format.
const (
	TopLeft = iota
	BottomLeft
	BottomRight
	TopRight
)

// Indices describes how the four corners form two triangles.
var Indices = [6]uint16{0, 1, 2, 0, 2, 3}

// Quad returns the four corner vertices of the glyph's quad, wound
// top-left, bottom-left, bottom-right, top-right.
//
// Texture coordinates are normalized from the atlas pixel bounds.  The
// atlas image is generated with its origin at the bottom, so the V axis
// is flipped to the engine's top-to-bottom convention.
//
// Positions are the plane bounds re-based so that the glyph's top edge
// sits at local y=0: the vertical bearing (distance from baseline to
// glyph top) is subtracted from both top and bottom, while left and
// right pass through unchanged.  The scene graph anchors glyphs by
// their top edge, not their baseline.
//
// Non-rendering glyphs yield four all-zero vertices, never an error, so
// every glyph gets a data block of identical shape.
func Quad(g *atlas.Glyph, atlasWidth, atlasHeight float64) [4]vertex.Record {
	if !g.Renderable() {
		return [4]vertex.Record{}
	}

	uLeft := g.Bounds.Atlas.LLx / atlasWidth
	uRight := g.Bounds.Atlas.URx / atlasWidth
	vTop := 1 - g.Bounds.Atlas.LLy/atlasHeight
	vBottom := 1 - g.Bounds.Atlas.URy/atlasHeight

	bearing := g.Bounds.Plane.URy
	pLeft := g.Bounds.Plane.LLx
	pRight := g.Bounds.Plane.URx
	pTop := g.Bounds.Plane.URy - bearing // = 0
	pBottom := g.Bounds.Plane.LLy - bearing

	return [4]vertex.Record{
		TopLeft:     rec(pLeft, pTop, uLeft, vTop),
		BottomLeft:  rec(pLeft, pBottom, uLeft, vBottom),
		BottomRight: rec(pRight, pBottom, uRight, vBottom),
		TopRight:    rec(pRight, pTop, uRight, vTop),
	}
}

func rec(x, y, u, v float64) vertex.Record {
	return vertex.Record{
		Pos: [3]float32{float32(x), float32(y), 0},
		UV:  [2]float32{float32(u), float32(v)},
	}
}
