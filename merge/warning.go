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

import "seehuhn.de/go/pssg"

// Reason classifies why a fragment was skipped.
type Reason int

const (
	// MissingFragment means the fragment file does not exist.
	MissingFragment Reason = iota + 1

	// UnparsableFragment means the fragment file exists but is not
	// well-formed XML.
	UnparsableFragment

	// NoLibraryElement means the fragment parsed but contains no
	// LIBRARY element.
	NoLibraryElement
)

func (r Reason) String() string {
	switch r {
	case MissingFragment:
		return "fragment file missing"
	case UnparsableFragment:
		return "fragment not parseable"
	case NoLibraryElement:
		return "no library element in fragment"
	default:
		return "unknown"
	}
}

// A Warning records one skipped fragment.  Warnings are collected and
// returned to the caller; the merge itself continues.
type Warning struct {
	Kind   pssg.Kind
	Path   string
	Reason Reason
	Err    error
}

func (w *Warning) String() string {
	msg := string(w.Kind) + ": " + w.Reason.String() + " (" + w.Path + ")"
	if w.Err != nil {
		msg += ": " + w.Err.Error()
	}
	return msg
}

// MissingLibraryError is returned in strict mode when a mandatory
// library cannot be included in the merge.
type MissingLibraryError struct {
	Kind    pssg.Kind
	Warning Warning
}

func (err *MissingLibraryError) Error() string {
	return "mandatory library " + string(err.Kind) + " not merged: " + err.Warning.Reason.String()
}

func (err *MissingLibraryError) Unwrap() error {
	return err.Warning.Err
}
