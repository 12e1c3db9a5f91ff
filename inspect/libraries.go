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

// Package inspect decodes glyph geometry and metrics back out of asset
// documents.
//
// This is the verification path: freshly generated libraries are decoded
// and compared against a reference asset produced by an earlier version
// of the toolchain.  The decoder walks the same cross-references the
// engine follows: render node, render data source, data block, byte
// stream.
package inspect

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/beevik/etree"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/pssg"
)

// Libraries is an indexed set of asset libraries.  All cross-references
// are resolved against these indexes, built once after parse, instead of
// re-scanning the documents per lookup.
type Libraries struct {
	nodes        map[string]*etree.Element // RENDERNODE by id
	sources      map[string]*etree.Element // RENDERDATASOURCE by id
	blocks       map[string]*etree.Element // DATABLOCK by id
	glyphMetrics map[rune]*etree.Element   // NEGLYPHMETRICS by code point
	fontMetrics  *etree.Element
}

// New indexes the given documents.  Each document may be a single
// fragment or a merged asset; later documents win on ID collisions.
func New(docs ...*etree.Document) *Libraries {
	l := &Libraries{
		nodes:        make(map[string]*etree.Element),
		sources:      make(map[string]*etree.Element),
		blocks:       make(map[string]*etree.Element),
		glyphMetrics: make(map[rune]*etree.Element),
	}
	for _, doc := range docs {
		l.index(doc)
	}
	return l
}

func (l *Libraries) index(doc *etree.Document) {
	for _, el := range doc.FindElements("//RENDERNODE") {
		if id := el.SelectAttrValue("id", ""); id != "" {
			l.nodes[id] = el
		}
	}
	for _, el := range doc.FindElements("//RENDERDATASOURCE") {
		if id := el.SelectAttrValue("id", ""); id != "" {
			l.sources[id] = el
		}
	}
	for _, el := range doc.FindElements("//DATABLOCK") {
		if id := el.SelectAttrValue("id", ""); id != "" {
			l.blocks[id] = el
		}
	}
	for _, el := range doc.FindElements("//NEGLYPHMETRICS") {
		cp, err := strconv.Atoi(el.SelectAttrValue("codePoint", ""))
		if err == nil {
			l.glyphMetrics[rune(cp)] = el
		}
	}
	if el := doc.FindElement("//NEFONTMETRICS"); el != nil {
		l.fontMetrics = el
	}
}

// LoadDir loads the fragment files of a generated library directory.
// Missing fragment files are allowed; lookups needing them fail later
// with the corresponding typed error.
func LoadDir(dir string) (*Libraries, error) {
	var docs []*etree.Document
	for _, kind := range pssg.CanonicalOrder {
		doc, err := pssg.ReadDocument(filepath.Join(dir, kind.FileName()))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return New(docs...), nil
}

// LoadFile loads a merged asset document.
func LoadFile(path string) (*Libraries, error) {
	doc, err := pssg.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return New(doc), nil
}

// Load loads either a merged asset file or a fragment directory.
func Load(path string) (*Libraries, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}

// CodePoints lists the code points of all render nodes, sorted.
// Non-glyph nodes (the root node) are excluded.
func (l *Libraries) CodePoints() []rune {
	var cps []rune
	for _, id := range maps.Keys(l.nodes) {
		cp, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		cps = append(cps, rune(cp))
	}
	slices.Sort(cps)
	return cps
}
