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

// Package hexblob converts between binary payloads and the hex text
// stored inside PSSG data elements.
//
// The wire form is uppercase hex byte pairs separated by single spaces,
// broken into newline-separated lines of at most 16 pairs.  This is a
// presentation rule only: decoding accepts arbitrary whitespace between
// hex digits.
package hexblob

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// BytesPerLine is the maximum number of byte pairs per encoded line.
const BytesPerLine = 16

// Encode renders data as space-separated uppercase hex pairs in lines of
// at most [BytesPerLine] bytes.  The result has no leading or trailing
// newline.
func Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(3 * len(data))
	for i, c := range data {
		if i > 0 {
			if i%BytesPerLine == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0f])
	}
	return b.String()
}

const hexDigits = "0123456789ABCDEF"

// Decode parses hex text into bytes.  All whitespace (spaces, tabs,
// newlines, carriage returns) is ignored.  Odd-length input or non-hex
// characters yield a [*MalformedHexError].
func Decode(text string) ([]byte, error) {
	compact := strings.Map(dropSpace, text)
	data, err := hex.DecodeString(compact)
	if err != nil {
		// hex.DecodeString returns the bytes decoded before the error,
		// which pins down the offending digit pair; check whether the
		// first or the second digit of the pair is at fault.
		pos := len(data) * 2
		if _, ok := err.(hex.InvalidByteError); ok &&
			pos < len(compact) && isHexDigit(compact[pos]) {
			pos++
		}
		return nil, &MalformedHexError{Pos: pos, Err: err}
	}
	return data, nil
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		return true
	}
	return false
}

func dropSpace(r rune) rune {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return -1
	}
	return r
}

// MalformedHexError indicates that a data element does not contain valid
// hex text.  Pos is the offset of the offending digit within the input
// after whitespace removal, or -1 if unknown.
type MalformedHexError struct {
	Pos int
	Err error
}

func (err *MalformedHexError) Error() string {
	tail := ""
	if err.Pos >= 0 {
		tail = " (at digit " + strconv.Itoa(err.Pos) + ")"
	}
	return "malformed hex data: " + err.Err.Error() + tail
}

func (err *MalformedHexError) Unwrap() error {
	return err.Err
}
