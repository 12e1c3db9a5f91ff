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

// Package merge combines per-kind library fragments into one asset
// document.
//
// The library order of the output is taken from a reference document
// ("order template") when it lists all libraries, and is the canonical
// order otherwise; glyph order within each library is never changed.
// Missing or unusable fragments are skipped with a warning rather than
// aborting the merge, so a partial fragment set still yields a
// well-formed document.
package merge

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"

	"seehuhn.de/go/pssg"
)

// Options control the merge behavior.
type Options struct {
	// Strict makes the merge fail if a mandatory library (node graph,
	// segment sets, interface-bound data) cannot be included.  The
	// default mirrors the reference tooling: every skip is a warning
	// and the merge succeeds with whatever libraries were found, even
	// if the result is degenerate.
	Strict bool
}

// Merge reads the fragment files for all library kinds from dir and
// combines them into one document, ordered like the libraries of the
// template document.  An empty template path uses the standard framing
// and the canonical order.  The returned warnings describe every
// skipped fragment.
func Merge(dir, templatePath string, opts Options) (*etree.Document, []Warning, error) {
	var template *etree.Document
	if templatePath == "" {
		template = defaultTemplate()
	} else {
		var err error
		template, err = pssg.ReadDocument(templatePath)
		if err != nil {
			return nil, nil, fmt.Errorf("order template %s: %w", templatePath, err)
		}
	}

	merged, err := newMergedDocument(template)
	if err != nil {
		return nil, nil, fmt.Errorf("order template %s: %w", templatePath, err)
	}
	db := pssg.Database(merged)

	var warnings []Warning
	for _, kind := range libraryOrder(template) {
		path := filepath.Join(dir, kind.FileName())
		lib, warn := loadLibrary(path, kind)
		if warn != nil {
			warnings = append(warnings, *warn)
			if opts.Strict && kind.Mandatory() {
				return nil, warnings, &MissingLibraryError{Kind: kind, Warning: *warn}
			}
			continue
		}
		db.AddChild(lib)
	}
	return merged, warnings, nil
}

// defaultTemplate provides the standard document framing for merges
// without an order template.
func defaultTemplate() *etree.Document {
	doc := etree.NewDocument()
	file := doc.CreateElement("PSSGFILE")
	file.CreateAttr("version", "1.0.0.0")
	file.CreateElement("PSSGDATABASE")
	return doc
}

// newMergedDocument builds the output framing, copying the root and
// database attributes of the template.
func newMergedDocument(template *etree.Document) (*etree.Document, error) {
	root := template.Root()
	if root == nil {
		return nil, fmt.Errorf("no root element")
	}
	tdb := pssg.Database(template)
	if tdb == nil {
		return nil, fmt.Errorf("no PSSGDATABASE element")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8" standalone="yes"`)
	out := doc.CreateElement(root.Tag)
	for _, a := range root.Attr {
		out.CreateAttr(a.Key, a.Value)
	}
	db := out.CreateElement(tdb.Tag)
	for _, a := range tdb.Attr {
		db.CreateAttr(a.Key, a.Value)
	}
	return doc, nil
}

// libraryOrder extracts the library order from the template document.
// The template's order is used only when it covers all seven kinds.  A
// partial template, such as the single-library fragment the reference
// workflow passes in, provides framing attributes only and the merge
// uses the canonical order.
func libraryOrder(template *etree.Document) []pssg.Kind {
	var order []pssg.Kind
	seen := make(map[pssg.Kind]bool)
	for _, lib := range template.FindElements("//LIBRARY") {
		kind := pssg.Kind(lib.SelectAttrValue("type", ""))
		if kind == "" || seen[kind] {
			continue
		}
		seen[kind] = true
		order = append(order, kind)
	}
	for _, kind := range pssg.CanonicalOrder {
		if !seen[kind] {
			return pssg.CanonicalOrder
		}
	}
	return order
}

// loadLibrary reads one fragment file and extracts its library element.
// Any failure is reported as a warning, never an error.
func loadLibrary(path string, kind pssg.Kind) (*etree.Element, *Warning) {
	if _, err := os.Stat(path); err != nil {
		return nil, &Warning{Kind: kind, Path: path, Reason: MissingFragment, Err: err}
	}
	doc, err := pssg.ReadDocument(path)
	if err != nil {
		return nil, &Warning{Kind: kind, Path: path, Reason: UnparsableFragment, Err: err}
	}
	lib := pssg.FindLibrary(doc, kind)
	if lib == nil {
		// fall back to any library element, as the reference tooling does
		lib = doc.FindElement("//LIBRARY")
	}
	if lib == nil {
		return nil, &Warning{Kind: kind, Path: path, Reason: NoLibraryElement}
	}
	return lib.Copy(), nil
}

// WriteFile writes the merged document to path.
func WriteFile(doc *etree.Document, path string) error {
	return pssg.WriteDocument(doc, path)
}
