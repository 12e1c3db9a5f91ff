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

package pssg

import (
	"os"

	"github.com/beevik/etree"
)

// Kind identifies one of the logical libraries of a font asset document.
type Kind string

// The seven library kinds of a font asset.
const (
	KindFontMetrics          Kind = "NEFONTMETRICS"
	KindGlyphMetrics         Kind = "NEGLYPHMETRICS"
	KindShaderInstance       Kind = "SHADERINSTANCE"
	KindShaderGroup          Kind = "SHADERGROUP"
	KindSegmentSet           Kind = "SEGMENTSET"
	KindRenderInterfaceBound Kind = "RENDERINTERFACEBOUND"
	KindNode                 Kind = "NODE"
)

// CanonicalOrder is the library order of the reference asset documents.
// Merged documents list their libraries in this order.
var CanonicalOrder = []Kind{
	KindFontMetrics,
	KindGlyphMetrics,
	KindShaderInstance,
	KindShaderGroup,
	KindSegmentSet,
	KindRenderInterfaceBound,
	KindNode,
}

// FileName returns the fragment file name used for this library kind.
func (k Kind) FileName() string {
	return "LIBRARY_" + string(k) + ".xml"
}

// Mandatory reports whether a merged document is structurally incomplete
// without this library.  The glyph geometry decoder needs all three
// mandatory libraries.
func (k Kind) Mandatory() bool {
	switch k {
	case KindNode, KindSegmentSet, KindRenderInterfaceBound:
		return true
	}
	return false
}

// Element names used throughout the document tree.
const (
	elemFile     = "PSSGFILE"
	elemDatabase = "PSSGDATABASE"
	elemLibrary  = "LIBRARY"

	fileVersion = "1.0.0.0"
)

// NewFragment creates a document holding a single empty library of the
// given kind, wrapped in the usual PSSGFILE/PSSGDATABASE framing.
// The returned element is the LIBRARY element.
func NewFragment(kind Kind) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version='1.0' encoding='utf-8'`)
	file := doc.CreateElement(elemFile)
	file.CreateAttr("version", fileVersion)
	db := file.CreateElement(elemDatabase)
	lib := db.CreateElement(elemLibrary)
	lib.CreateAttr("type", string(kind))
	return doc, lib
}

// Database returns the PSSGDATABASE element of a document, or nil if the
// document does not have the expected framing.
func Database(doc *etree.Document) *etree.Element {
	root := doc.Root()
	if root == nil {
		return nil
	}
	if root.Tag == elemDatabase {
		return root
	}
	return root.SelectElement(elemDatabase)
}

// FindLibrary returns the LIBRARY element of the given kind, or nil.
// It accepts both fragments and merged documents.
func FindLibrary(doc *etree.Document, kind Kind) *etree.Element {
	for _, lib := range doc.FindElements("//" + elemLibrary) {
		if lib.SelectAttrValue("type", "") == string(kind) {
			return lib
		}
	}
	return nil
}

// ReadDocument parses an asset document or fragment from a file.
func ReadDocument(path string) (*etree.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(f); err != nil {
		return nil, err
	}
	return doc, nil
}

// WriteDocument writes an asset document to a file.  Elements are
// separated by newlines without indentation, matching the reference
// documents.
func WriteDocument(doc *etree.Document, path string) error {
	doc.Indent(0)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
