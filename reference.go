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
	"errors"
	"fmt"
	"strings"
)

// Reference is a cross-reference to another element in the same document
// set, stored without the leading "#" sigil.  The zero value is invalid.
type Reference string

// ParseReference interprets an attribute value as a cross-reference.
// A leading "#" is stripped; an empty value is an error.
func ParseReference(s string) (Reference, error) {
	s = strings.TrimPrefix(s, "#")
	if s == "" {
		return "", errEmptyReference
	}
	return Reference(s), nil
}

var errEmptyReference = errors.New("empty cross-reference")

// String returns the attribute form of the reference, with the "#" sigil.
func (r Reference) String() string {
	return "#" + string(r)
}

// ID returns the target element ID.
func (r Reference) ID() string {
	return string(r)
}

// A Sequence deterministically allocates IDs for generated elements.
// IDs have the form "!GEN<prefix><counter>" with a four-digit
// hexadecimal counter starting at zero.  A Sequence must not be shared
// between concurrent runs; to assemble glyphs in parallel, derive the
// counter values from each glyph's position in the input list instead.
type Sequence struct {
	next int
}

// Next returns the next ID in the sequence, using the given prefix.
func (s *Sequence) Next(prefix string) string {
	id := At(prefix, s.next)
	s.next++
	return id
}

// At returns the ID a fresh Sequence would hand out as its n-th value.
func At(prefix string, n int) string {
	return fmt.Sprintf("!GEN%s%04X", prefix, n)
}
