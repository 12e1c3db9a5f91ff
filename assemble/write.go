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

package assemble

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/pssg"
)

// SkippedReportName is the name of the report file listing glyphs
// without bounds.
const SkippedReportName = "skipped_glyphs.txt"

// WriteDir writes the seven fragment files into dir, creating it if
// needed, plus the skipped-glyph report if any glyph had no bounds.
func (r *Result) WriteDir(dir string) error {
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return err
	}

	for _, kind := range pssg.CanonicalOrder {
		frag, ok := r.Fragments[kind]
		if !ok {
			continue
		}
		path := filepath.Join(dir, kind.FileName())
		if err := pssg.WriteDocument(frag, path); err != nil {
			return err
		}
	}

	if len(r.Skipped) > 0 {
		path := filepath.Join(dir, SkippedReportName)
		if err := os.WriteFile(path, []byte(r.SkippedReport()), 0o666); err != nil {
			return err
		}
	}
	return nil
}

// SkippedReport renders the report of glyphs that had no plane/atlas
// bounds: one line of concatenated characters, followed by one line per
// code point with its Unicode name, for operator inspection.
func (r *Result) SkippedReport() string {
	var b strings.Builder
	for _, cp := range r.Skipped {
		if utf8.ValidRune(cp) {
			b.WriteRune(cp)
		} else {
			fmt.Fprintf(&b, "[U+%04X]", cp)
		}
	}
	b.WriteByte('\n')

	for _, cp := range r.Skipped {
		name := runenames.Name(cp)
		fmt.Fprintf(&b, "U+%04X %s\n", cp, name)
	}
	return b.String()
}
