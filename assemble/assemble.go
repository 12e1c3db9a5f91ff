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

// Package assemble builds the seven font asset libraries from a
// glyph-atlas document.
//
// Every glyph receives one data block holding its packed quad vertices,
// one segment set describing how the block is drawn, one render node in
// the scene graph, and one metrics record.  A single shader instance,
// shader group and placeholder texture are shared by all glyphs.  The
// libraries cross-reference each other by generated IDs; ID allocation
// is deterministic, so two runs over the same atlas produce identical
// documents.
package assemble

import (
	"strconv"

	"github.com/beevik/etree"

	"seehuhn.de/go/pssg"
	"seehuhn.de/go/pssg/atlas"
	"seehuhn.de/go/pssg/glyph"
	"seehuhn.de/go/pssg/hexblob"
	"seehuhn.de/go/pssg/vertex"
)

// An Assembler converts atlas documents into library fragments.
// FontName doubles as the shader instance ID; TextureName must match
// the texture file the external transcoder will produce.
type Assembler struct {
	FontName    string
	TextureName string
}

// Result holds the assembled library fragments, keyed by kind, and the
// code points that had no bounds and therefore render as zero-size
// quads.
type Result struct {
	Fragments map[pssg.Kind]*etree.Document
	Skipped   []rune
}

// The fixed 16-float identity transform and the bounding box texts, as
// they appear in the reference documents.
const (
	identityTransform = "\n1.000000000e+000 0.000000000e+000 -0.000000000e+000 0.000000000e+000 0.000000000e+000 1.000000000e+000 -0.000000000e+000 0.000000000e+000 \n-0.000000000e+000 -0.000000000e+000 1.000000000e+000 -0.000000000e+000 0.000000000e+000 0.000000000e+000 -0.000000000e+000 1.000000000e+000 "
	rootBoundingBox   = "\n0.000000000e+000 0.000000000e+000 0.000000000e+000 0.000000000e+000 0.000000000e+000 0.000000000e+000 "
	zeroBoundingBox   = "\n0.000000000e+000 0.000000000e+000 -0.000000000e+000 0.000000000e+000 0.000000000e+000 -0.000000000e+000 "

	indexData = "\n0 1 2 0 2 3 "
)

// Assemble builds the seven libraries for one atlas document.
func (a *Assembler) Assemble(doc *atlas.Document) *Result {
	res := &Result{
		Fragments: make(map[pssg.Kind]*etree.Document, len(pssg.CanonicalOrder)),
	}

	libs := make(map[pssg.Kind]*etree.Element, len(pssg.CanonicalOrder))
	for _, kind := range pssg.CanonicalOrder {
		frag, lib := pssg.NewFragment(kind)
		res.Fragments[kind] = frag
		libs[kind] = lib
	}

	libs[pssg.KindShaderGroup].AddChild(newShaderGroup())
	libs[pssg.KindShaderInstance].AddChild(newShaderInstance(a.FontName, a.TextureName))

	root := newRootNode()
	libs[pssg.KindNode].AddChild(root)

	// One ID sequence for data blocks, one shared by segment sets,
	// data sources and index sources.  Both count up in atlas glyph
	// order, which keeps the output deterministic.
	var dbSeq, genSeq pssg.Sequence

	for i := range doc.Glyphs {
		g := &doc.Glyphs[i]
		if !g.Renderable() {
			res.Skipped = append(res.Skipped, g.CodePoint)
		}

		dbID := dbSeq.Next("DB")
		segID := genSeq.Next("SEG")
		dsID := genSeq.Next("DS")
		isID := genSeq.Next("IS")

		quad := glyph.Quad(g, float64(doc.Width), float64(doc.Height))
		libs[pssg.KindRenderInterfaceBound].AddChild(newDataBlock(dbID, quad[:]))
		libs[pssg.KindSegmentSet].AddChild(newSegmentSet(segID, dsID, isID, dbID))
		root.AddChild(newRenderNode(g, dsID, a.FontName))
		libs[pssg.KindGlyphMetrics].AddChild(newGlyphMetrics(glyph.NewMetrics(g)))
	}

	libs[pssg.KindRenderInterfaceBound].AddChild(newTexture(a.TextureName))
	libs[pssg.KindFontMetrics].AddChild(newFontMetrics(doc))

	return res
}

// newDataBlock builds the DATABLOCK element holding the packed quad.
// All blocks have the same shape, whether the glyph renders or not.
func newDataBlock(id string, quad []vertex.Record) *etree.Element {
	data := vertex.Pack(quad)

	db := etree.NewElement("DATABLOCK")
	db.CreateAttr("streamCount", "2")
	db.CreateAttr("size", strconv.Itoa(len(data)))
	db.CreateAttr("elementCount", strconv.Itoa(len(quad)))
	db.CreateAttr("id", id)

	pos := db.CreateElement("DATABLOCKSTREAM")
	pos.CreateAttr("renderType", "Vertex")
	pos.CreateAttr("dataType", "float3")
	pos.CreateAttr("offset", strconv.Itoa(vertex.PosOffset))
	pos.CreateAttr("stride", strconv.Itoa(vertex.Stride))

	uv := db.CreateElement("DATABLOCKSTREAM")
	uv.CreateAttr("renderType", "ST")
	uv.CreateAttr("dataType", "float2")
	uv.CreateAttr("offset", strconv.Itoa(vertex.UVOffset))
	uv.CreateAttr("stride", strconv.Itoa(vertex.Stride))

	payload := db.CreateElement("DATABLOCKDATA")
	payload.SetText("\n" + hexblob.Encode(data) + " ")

	return db
}

// newSegmentSet builds the SEGMENTSET wiring one data block into a
// drawable pair of triangles.
func newSegmentSet(segID, dsID, isID, dbID string) *etree.Element {
	seg := etree.NewElement("SEGMENTSET")
	seg.CreateAttr("segmentCount", "1")
	seg.CreateAttr("id", segID)

	ds := seg.CreateElement("RENDERDATASOURCE")
	ds.CreateAttr("streamCount", "2")
	ds.CreateAttr("primitive", "triangles")
	ds.CreateAttr("id", dsID)

	is := ds.CreateElement("RENDERINDEXSOURCE")
	is.CreateAttr("primitive", "triangles")
	is.CreateAttr("maximumIndex", "3")
	is.CreateAttr("format", "ushort")
	is.CreateAttr("count", "6")
	is.CreateAttr("id", isID)
	is.CreateElement("INDEXSOURCEDATA").SetText(indexData)

	dbRef := pssg.Reference(dbID)
	for sub := 0; sub < 2; sub++ {
		stream := ds.CreateElement("RENDERSTREAM")
		stream.CreateAttr("dataBlock", dbRef.String())
		stream.CreateAttr("subStream", strconv.Itoa(sub))
		stream.CreateAttr("id", dsID+"_"+strconv.Itoa(sub))
	}

	return seg
}

// newRenderNode builds the scene graph node for one glyph.  The node ID
// is the decimal code point, which doubles as the lookup key for the
// geometry decoder.
func newRenderNode(g *atlas.Glyph, dsID, shaderID string) *etree.Element {
	cp := strconv.Itoa(int(g.CodePoint))

	node := etree.NewElement("RENDERNODE")
	node.CreateAttr("stopTraversal", "0")
	node.CreateAttr("nickname", cp)
	node.CreateAttr("id", cp)

	node.CreateElement("TRANSFORM").SetText(identityTransform)

	bbox := node.CreateElement("BOUNDINGBOX")
	if g.Renderable() {
		pb := g.Bounds.Plane
		bbox.SetText("\n" +
			pssg.FormatFloat(pb.LLx) + " " + pssg.FormatFloat(pb.LLy) + " -0.000000000e+000 " +
			pssg.FormatFloat(pb.URx) + " " + pssg.FormatFloat(pb.URy) + " -0.000000000e+000 ")
	} else {
		bbox.SetText(zeroBoundingBox)
	}

	dsRef := pssg.Reference(dsID)
	inst := node.CreateElement("RENDERSTREAMINSTANCE")
	inst.CreateAttr("sourceCount", "1")
	inst.CreateAttr("indices", dsRef.String())
	inst.CreateAttr("streamCount", "0")
	inst.CreateAttr("shader", pssg.Reference(shaderID).String())
	inst.CreateAttr("id", cp+"_SI")
	inst.CreateElement("RENDERINSTANCESOURCE").CreateAttr("source", dsRef.String())

	return node
}

func newRootNode() *etree.Element {
	root := etree.NewElement("ROOTNODE")
	root.CreateAttr("stopTraversal", "0")
	root.CreateAttr("nickname", "Root")
	root.CreateAttr("id", "Root")
	root.CreateElement("TRANSFORM").SetText(identityTransform)
	root.CreateElement("BOUNDINGBOX").SetText(rootBoundingBox)
	return root
}

// GlyphMetricsID returns the element ID of a glyph's metrics record.
func GlyphMetricsID(cp rune) string {
	return "glyphMetrics" + strconv.Itoa(int(cp))
}

// FontMetricsID is the element ID of the single font metrics record.
const FontMetricsID = "NeFontMetricsObj"

func newGlyphMetrics(m glyph.Metrics) *etree.Element {
	el := etree.NewElement("NEGLYPHMETRICS")
	el.CreateAttr("advanceWidth", strconv.Itoa(m.AdvanceWidth))
	el.CreateAttr("horizontalBearing", strconv.Itoa(m.HorizontalBearing))
	el.CreateAttr("verticalBearing", strconv.Itoa(m.VerticalBearing))
	el.CreateAttr("physicalWidth", strconv.Itoa(m.PhysicalWidth))
	el.CreateAttr("physicalHeight", strconv.Itoa(m.PhysicalHeight))
	el.CreateAttr("codePoint", strconv.Itoa(int(m.CodePoint)))
	el.CreateAttr("id", GlyphMetricsID(m.CodePoint))
	return el
}

func newFontMetrics(doc *atlas.Document) *etree.Element {
	fm := glyph.NewFontMetrics(doc)

	el := etree.NewElement("NEFONTMETRICS")
	el.CreateAttr("scale", strconv.Itoa(fm.Scale))
	el.CreateAttr("ascender", strconv.Itoa(fm.Ascender))
	el.CreateAttr("descender", strconv.Itoa(fm.Descender))
	el.CreateAttr("maximumAdvanceWidth", strconv.Itoa(fm.MaximumAdvanceWidth))
	el.CreateAttr("numCharacters", strconv.Itoa(fm.NumCharacters))
	el.CreateAttr("hasKerningData", "0")
	el.CreateAttr("id", FontMetricsID)

	// Glyph metrics are referenced by ID, not nested.
	for _, g := range doc.Glyphs {
		ref := el.CreateElement("NEGLYPHMETRICSREF")
		ref.CreateAttr("glyphMetricsRef",
			pssg.Reference(GlyphMetricsID(g.CodePoint)).String())
	}
	return el
}
