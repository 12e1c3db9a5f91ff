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

package merge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pssg"
	"seehuhn.de/go/pssg/assemble"
	"seehuhn.de/go/pssg/atlas"
)

// writeFragments assembles a small font and writes its fragments into a
// fresh directory.
func writeFragments(t *testing.T) string {
	t.Helper()

	doc := &atlas.Document{
		Width: 100, Height: 100,
		Glyphs: []atlas.Glyph{
			{CodePoint: ' ', Advance: 0.25},
			{
				CodePoint: 'A',
				Advance:   0.6,
				Bounds: &atlas.Bounds{
					Plane: rect.Rect{LLx: 0.05, LLy: 0, URx: 0.55, URy: 0.7},
					Atlas: rect.Rect{LLx: 10, LLy: 5, URx: 60, URy: 75},
				},
			},
		},
	}
	a := &assemble.Assembler{FontName: "test_font", TextureName: "test_font.png"}
	dir := filepath.Join(t.TempDir(), "generated_library")
	if err := a.Assemble(doc).WriteDir(dir); err != nil {
		t.Fatal(err)
	}
	return dir
}

// writeTemplate writes an order template holding empty libraries in the
// given order.
func writeTemplate(t *testing.T, kinds []pssg.Kind) string {
	t.Helper()

	doc := etree.NewDocument()
	file := doc.CreateElement("PSSGFILE")
	file.CreateAttr("version", "1.0.0.0")
	db := file.CreateElement("PSSGDATABASE")
	for _, k := range kinds {
		db.CreateElement("LIBRARY").CreateAttr("type", string(k))
	}

	path := filepath.Join(t.TempDir(), "node.xml")
	if err := pssg.WriteDocument(doc, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func mergedKinds(doc *etree.Document) []pssg.Kind {
	var kinds []pssg.Kind
	for _, lib := range pssg.Database(doc).SelectElements("LIBRARY") {
		kinds = append(kinds, pssg.Kind(lib.SelectAttrValue("type", "")))
	}
	return kinds
}

func TestMergeAll(t *testing.T) {
	dir := writeFragments(t)
	template := writeTemplate(t, pssg.CanonicalOrder)

	doc, warnings, err := Merge(dir, template, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	if d := cmp.Diff(pssg.CanonicalOrder, mergedKinds(doc)); d != "" {
		t.Errorf("unexpected library order (-want +got):\n%s", d)
	}

	// content survives the merge
	if doc.FindElement("//RENDERNODE[@id='65']") == nil {
		t.Error("render node lost in merge")
	}
	if doc.FindElement("//NEFONTMETRICS") == nil {
		t.Error("font metrics lost in merge")
	}

	// the merged file carries the standalone declaration
	out := filepath.Join(t.TempDir(), "node.xml")
	if err := WriteFile(doc, out); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	decl := `<?xml version="1.0" encoding="utf-8" standalone="yes"?>`
	if got := string(raw[:len(decl)]); got != decl {
		t.Errorf("declaration = %q", got)
	}
}

func TestMergeTemplateOrderWins(t *testing.T) {
	dir := writeFragments(t)

	// reversed order in the template
	reversed := make([]pssg.Kind, len(pssg.CanonicalOrder))
	for i, k := range pssg.CanonicalOrder {
		reversed[len(reversed)-1-i] = k
	}
	template := writeTemplate(t, reversed)

	doc, _, err := Merge(dir, template, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(reversed, mergedKinds(doc)); d != "" {
		t.Errorf("template order not honored (-want +got):\n%s", d)
	}
}

func TestMergeTemplateIncomplete(t *testing.T) {
	dir := writeFragments(t)

	// a single-library template (the usual node-graph fragment) only
	// contributes framing; the merge keeps the canonical order, with
	// the node graph last
	template := writeTemplate(t, []pssg.Kind{pssg.KindNode})
	doc, warnings, err := Merge(dir, template, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if d := cmp.Diff(pssg.CanonicalOrder, mergedKinds(doc)); d != "" {
		t.Errorf("unexpected library order (-want +got):\n%s", d)
	}
}

func TestMergeDefaultTemplate(t *testing.T) {
	dir := writeFragments(t)

	doc, warnings, err := Merge(dir, "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if d := cmp.Diff(pssg.CanonicalOrder, mergedKinds(doc)); d != "" {
		t.Errorf("unexpected library order (-want +got):\n%s", d)
	}
	if got := doc.Root().SelectAttrValue("version", ""); got != "1.0.0.0" {
		t.Errorf("version = %q", got)
	}
}

func TestMergeMissingFragment(t *testing.T) {
	dir := writeFragments(t)
	template := writeTemplate(t, pssg.CanonicalOrder)

	if err := os.Remove(filepath.Join(dir, pssg.KindShaderGroup.FileName())); err != nil {
		t.Fatal(err)
	}

	doc, warnings, err := Merge(dir, template, Options{})
	if err != nil {
		t.Fatal(err)
	}

	// six libraries, no placeholder for the missing one
	kinds := mergedKinds(doc)
	if len(kinds) != 6 {
		t.Fatalf("expected 6 libraries, got %v", kinds)
	}
	for _, k := range kinds {
		if k == pssg.KindShaderGroup {
			t.Error("shader group should be absent")
		}
	}

	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
	w := warnings[0]
	if w.Kind != pssg.KindShaderGroup || w.Reason != MissingFragment {
		t.Errorf("unexpected warning %v", w)
	}
}

func TestMergeUnparsableFragment(t *testing.T) {
	dir := writeFragments(t)
	template := writeTemplate(t, pssg.CanonicalOrder)

	path := filepath.Join(dir, pssg.KindShaderInstance.FileName())
	if err := os.WriteFile(path, []byte("<LIBRARY"), 0o666); err != nil {
		t.Fatal(err)
	}

	_, warnings, err := Merge(dir, template, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 || warnings[0].Reason != UnparsableFragment {
		t.Errorf("unexpected warnings %v", warnings)
	}
}

func TestMergeNoLibraryElement(t *testing.T) {
	dir := writeFragments(t)
	template := writeTemplate(t, pssg.CanonicalOrder)

	path := filepath.Join(dir, pssg.KindGlyphMetrics.FileName())
	if err := os.WriteFile(path, []byte("<PSSGFILE><PSSGDATABASE/></PSSGFILE>"), 0o666); err != nil {
		t.Fatal(err)
	}

	_, warnings, err := Merge(dir, template, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 || warnings[0].Reason != NoLibraryElement {
		t.Errorf("unexpected warnings %v", warnings)
	}
}

func TestMergeStrict(t *testing.T) {
	dir := writeFragments(t)
	template := writeTemplate(t, pssg.CanonicalOrder)

	if err := os.Remove(filepath.Join(dir, pssg.KindNode.FileName())); err != nil {
		t.Fatal(err)
	}

	// lenient mode merges anyway
	doc, warnings, err := Merge(dir, template, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(mergedKinds(doc)) != 6 || len(warnings) != 1 {
		t.Errorf("unexpected lenient result: %v, %v", mergedKinds(doc), warnings)
	}

	// strict mode fails on the missing node graph
	_, _, err = Merge(dir, template, Options{Strict: true})
	var missing *MissingLibraryError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingLibraryError, got %v", err)
	}
	if missing.Kind != pssg.KindNode {
		t.Errorf("Kind = %q", missing.Kind)
	}

	// strict mode tolerates missing optional libraries
	dir2 := writeFragments(t)
	if err := os.Remove(filepath.Join(dir2, pssg.KindShaderGroup.FileName())); err != nil {
		t.Fatal(err)
	}
	_, warnings, err = Merge(dir2, template, Options{Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 {
		t.Errorf("unexpected warnings %v", warnings)
	}
}

func TestMergeBadTemplate(t *testing.T) {
	dir := writeFragments(t)

	if _, _, err := Merge(dir, filepath.Join(dir, "nonexistent.xml"), Options{}); err == nil {
		t.Error("expected error for missing template")
	}

	bad := filepath.Join(t.TempDir(), "bad.xml")
	if err := os.WriteFile(bad, []byte("<PSSGFILE/>"), 0o666); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Merge(dir, bad, Options{}); err == nil {
		t.Error("expected error for template without database")
	}
}
