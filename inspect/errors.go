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

	"seehuhn.de/go/pssg"
)

// GlyphNotFoundError indicates that the libraries hold no entry for the
// requested code point.  The caller may retry with a different library
// set.
type GlyphNotFoundError struct {
	CodePoint rune
}

func (err *GlyphNotFoundError) Error() string {
	return fmt.Sprintf("glyph U+%04X not found", err.CodePoint)
}

// ReferenceUnresolvedError indicates a cross-reference pointing at an
// element not present in the loaded libraries.
type ReferenceUnresolvedError struct {
	Ref  pssg.Reference
	From string // the element holding the dangling reference
}

func (err *ReferenceUnresolvedError) Error() string {
	return fmt.Sprintf("reference %s from %s cannot be resolved", err.Ref, err.From)
}

// StreamNotFoundError indicates that a data source or data block lacks
// an expected stream.
type StreamNotFoundError struct {
	SubStream  int    // -1 when the lookup was by render type
	RenderType string // empty when the lookup was by substream index
	In         string // ID of the element searched
}

func (err *StreamNotFoundError) Error() string {
	if err.RenderType != "" {
		return fmt.Sprintf("no %s stream in %s", err.RenderType, err.In)
	}
	return fmt.Sprintf("no substream %d in %s", err.SubStream, err.In)
}
