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

// Package pssg provides the shared vocabulary for PSSG font asset documents.
//
// A PSSG font asset is an XML document of the form
//
//	<PSSGFILE version="1.0.0.0">
//	  <PSSGDATABASE>
//	    <LIBRARY type="...">...</LIBRARY>
//	    ...
//	  </PSSGDATABASE>
//	</PSSGFILE>
//
// holding up to seven libraries which cross-reference each other by ID.
// Libraries can be stored together in one merged document, or as one
// single-library fragment file per kind.
//
// This package defines the library kinds and their canonical order, the
// "#id" cross-reference convention, deterministic ID sequences for
// generated elements, the numeric formatting used by the asset format,
// and helpers for reading and writing the XML framing.  The subpackages
// build on this: atlas parses the glyph-atlas JSON input, glyph derives
// quad geometry and metrics, assemble emits library fragments, merge
// combines fragments into one document, inspect decodes glyph geometry
// back out of a document for verification, and pipeline chains the
// external tools with the conversion steps.
package pssg
