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
	"strconv"
	"strings"
)

// FormatFloat renders x in the scientific notation used by the asset
// format: nine digits after the decimal point and a three-digit
// exponent, e.g. "1.000000000e+000".
func FormatFloat(x float64) string {
	s := strconv.FormatFloat(x, 'e', 9, 64)

	// Pad the exponent to three digits.
	i := strings.LastIndexByte(s, 'e')
	mant, exp := s[:i+2], s[i+2:] // split after the exponent sign
	for len(exp) < 3 {
		exp = "0" + exp
	}
	return mant + exp
}
