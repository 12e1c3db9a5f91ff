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
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"seehuhn.de/go/pssg"
	"seehuhn.de/go/pssg/hexblob"
	"seehuhn.de/go/pssg/vertex"
)

// Geometry decodes the vertex records of one glyph.
//
// The walk follows the same chain of references the renderer resolves:
// the render node named after the code point, its data source, the data
// block the position stream points at, and finally the hex payload.
// Truncated payloads return the records decoded so far together with a
// *vertex.TruncatedBufferError.
func (l *Libraries) Geometry(cp rune) ([]vertex.Record, error) {
	node, ok := l.nodes[strconv.Itoa(int(cp))]
	if !ok {
		return nil, &GlyphNotFoundError{CodePoint: cp}
	}

	block, err := l.dataBlock(node)
	if err != nil {
		return nil, fmt.Errorf("glyph U+%04X: %w", cp, err)
	}

	layout, err := blockLayout(block)
	if err != nil {
		return nil, fmt.Errorf("glyph U+%04X: %w", cp, err)
	}

	payload := block.SelectElement("DATABLOCKDATA")
	if payload == nil {
		return nil, fmt.Errorf("glyph U+%04X: data block %s has no payload",
			cp, block.SelectAttrValue("id", "?"))
	}
	data, err := hexblob.Decode(payload.Text())
	if err != nil {
		return nil, fmt.Errorf("glyph U+%04X: %w", cp, err)
	}

	records, err := vertex.Unpack(data, layout)
	if err != nil {
		return records, fmt.Errorf("glyph U+%04X: %w", cp, err)
	}
	return records, nil
}

// dataBlock resolves a render node down to its data block element.
func (l *Libraries) dataBlock(node *etree.Element) (*etree.Element, error) {
	nodeID := node.SelectAttrValue("id", "?")

	inst := node.SelectElement("RENDERSTREAMINSTANCE")
	if inst == nil {
		return nil, &StreamNotFoundError{SubStream: -1, RenderType: "instance", In: nodeID}
	}
	dsRef, err := pssg.ParseReference(inst.SelectAttrValue("indices", ""))
	if err != nil {
		return nil, &ReferenceUnresolvedError{From: nodeID}
	}
	ds, ok := l.sources[dsRef.ID()]
	if !ok {
		return nil, &ReferenceUnresolvedError{Ref: dsRef, From: nodeID}
	}
	dsID := ds.SelectAttrValue("id", "?")

	if err := checkIndexSource(ds); err != nil {
		return nil, err
	}

	// Substream 0 carries positions, substream 1 the texture
	// coordinates.  Both must exist; the block reference is taken from
	// the position stream.
	streams := make(map[string]*etree.Element)
	for _, s := range ds.SelectElements("RENDERSTREAM") {
		streams[s.SelectAttrValue("subStream", "")] = s
	}
	for _, sub := range []int{0, 1} {
		if streams[strconv.Itoa(sub)] == nil {
			return nil, &StreamNotFoundError{SubStream: sub, In: dsID}
		}
	}

	dbRef, err := pssg.ParseReference(streams["0"].SelectAttrValue("dataBlock", ""))
	if err != nil {
		return nil, &ReferenceUnresolvedError{From: dsID}
	}
	block, ok := l.blocks[dbRef.ID()]
	if !ok {
		return nil, &ReferenceUnresolvedError{Ref: dbRef, From: dsID}
	}
	return block, nil
}

// checkIndexSource verifies that the index source's declared count
// matches its payload.  Data sources without an index source pass.
func checkIndexSource(ds *etree.Element) error {
	is := ds.SelectElement("RENDERINDEXSOURCE")
	if is == nil {
		return nil
	}
	isID := is.SelectAttrValue("id", "?")

	count, err := strconv.Atoi(is.SelectAttrValue("count", ""))
	if err != nil {
		return fmt.Errorf("index source %s: bad count attribute", isID)
	}
	payload := is.SelectElement("INDEXSOURCEDATA")
	if payload == nil {
		return fmt.Errorf("index source %s: no payload", isID)
	}
	if got := len(strings.Fields(payload.Text())); got != count {
		return fmt.Errorf("index source %s: %d indices declared, %d present",
			isID, count, got)
	}
	return nil
}

// blockLayout derives the vertex layout from a data block.  A stride
// attribute on the block itself overrides the per-stream strides; the
// byte offsets always come from the streams, matched by render type.
func blockLayout(block *etree.Element) (vertex.Layout, error) {
	blockID := block.SelectAttrValue("id", "?")

	var layout vertex.Layout
	n, err := strconv.Atoi(block.SelectAttrValue("elementCount", ""))
	if err != nil || n < 0 {
		return layout, fmt.Errorf("data block %s: bad element count", blockID)
	}
	layout.ElementCount = n

	var posStream, uvStream *etree.Element
	for _, s := range block.SelectElements("DATABLOCKSTREAM") {
		switch s.SelectAttrValue("renderType", "") {
		case "Vertex":
			posStream = s
		case "ST":
			uvStream = s
		}
	}
	if posStream == nil {
		return layout, &StreamNotFoundError{SubStream: -1, RenderType: "Vertex", In: blockID}
	}
	if uvStream == nil {
		return layout, &StreamNotFoundError{SubStream: -1, RenderType: "ST", In: blockID}
	}

	stride := block.SelectAttrValue("stride", "")
	if stride == "" {
		stride = posStream.SelectAttrValue("stride", "")
	}
	layout.Stride, err = strconv.Atoi(stride)
	if err != nil || layout.Stride <= 0 {
		return layout, fmt.Errorf("data block %s: bad stride", blockID)
	}

	layout.PosOffset, err = strconv.Atoi(posStream.SelectAttrValue("offset", ""))
	if err != nil || layout.PosOffset < 0 {
		return layout, fmt.Errorf("data block %s: bad position offset", blockID)
	}
	layout.UVOffset, err = strconv.Atoi(uvStream.SelectAttrValue("offset", ""))
	if err != nil || layout.UVOffset < 0 {
		return layout, fmt.Errorf("data block %s: bad texture offset", blockID)
	}
	return layout, nil
}
