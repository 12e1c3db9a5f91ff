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

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"seehuhn.de/go/pssg/inspect"
)

var (
	compareArg   = flag.String("compare", "", "second asset to compare against")
	normalizeArg = flag.Bool("normalize", false, "shift positions to baseline-relative coordinates")
	metricsArg   = flag.Bool("metrics", false, "check geometry against the metrics records")
)

func main() {
	flag.CommandLine.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [options] <asset> [<glyph>...]\n",
			filepath.Base(os.Args[0]))
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), "The asset is a merged document or a fragment directory.")
		fmt.Fprintln(flag.CommandLine.Output(), "Glyphs are given as characters, U+XXXX, or decimal code")
		fmt.Fprintln(flag.CommandLine.Output(), "points; without arguments all glyphs are inspected.")
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.CommandLine.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(assetPath string, glyphArgs []string) error {
	libs, err := inspect.Load(assetPath)
	if err != nil {
		return err
	}

	var other *inspect.Libraries
	if *compareArg != "" {
		other, err = inspect.Load(*compareArg)
		if err != nil {
			return err
		}
	}

	cps, err := codePoints(libs, glyphArgs)
	if err != nil {
		return err
	}

	failures := 0
	for _, cp := range cps {
		if err := showGlyph(libs, other, cp); err != nil {
			fmt.Printf("U+%04X: %v\n", cp, err)
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d glyphs failed", failures, len(cps))
	}
	return nil
}

func codePoints(libs *inspect.Libraries, args []string) ([]rune, error) {
	if len(args) == 0 {
		return libs.CodePoints(), nil
	}
	var cps []rune
	for _, arg := range args {
		cp, err := parseCodePoint(arg)
		if err != nil {
			return nil, err
		}
		cps = append(cps, cp)
	}
	return cps, nil
}

func parseCodePoint(arg string) (rune, error) {
	if hex, ok := strings.CutPrefix(arg, "U+"); ok {
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid code point %q", arg)
		}
		return rune(n), nil
	}
	if n, err := strconv.Atoi(arg); err == nil {
		return rune(n), nil
	}
	if utf8.RuneCountInString(arg) == 1 {
		cp, _ := utf8.DecodeRuneInString(arg)
		return cp, nil
	}
	return 0, fmt.Errorf("invalid code point %q", arg)
}

func showGlyph(libs, other *inspect.Libraries, cp rune) error {
	records, err := libs.Geometry(cp)
	if err != nil {
		return err
	}
	m, err := libs.GlyphMetrics(cp)
	if err != nil {
		return err
	}
	fm, err := libs.FontMetrics()
	if err != nil {
		return err
	}
	if *normalizeArg {
		records = inspect.NormalizeBaseline(records, m, fm)
	}

	fmt.Printf("U+%04X: advance %d/%d\n", cp, m.AdvanceWidth, fm.Scale)
	for i, rec := range records {
		fmt.Printf("  [%d] pos (%g, %g, %g)  uv (%g, %g)\n",
			i, rec.Pos[0], rec.Pos[1], rec.Pos[2], rec.UV[0], rec.UV[1])
	}

	if *metricsArg {
		quad := inspect.QuadFromMetrics(m, fm)
		worst := 0.0
		for i, corner := range quad {
			dx := corner.X - float64(records[i].Pos[0])
			dy := corner.Y - float64(records[i].Pos[1])
			if d := max(abs(dx), abs(dy)); d > worst {
				worst = d
			}
		}
		fmt.Printf("  metrics deviation %g\n", worst)
		if worst > 1.0/float64(fm.Scale) {
			return fmt.Errorf("geometry disagrees with metrics by %g", worst)
		}
	}

	if other != nil {
		theirs, err := other.Geometry(cp)
		if err != nil {
			return err
		}
		if *normalizeArg {
			tm, err := other.GlyphMetrics(cp)
			if err != nil {
				return err
			}
			tfm, err := other.FontMetrics()
			if err != nil {
				return err
			}
			theirs = inspect.NormalizeBaseline(theirs, tm, tfm)
		}
		pos, uv := inspect.MaxDeviation(records, theirs)
		fmt.Printf("  compare: pos deviation %g, uv deviation %g\n", pos, uv)
		if len(records) != len(theirs) {
			return fmt.Errorf("record counts differ: %d vs %d", len(records), len(theirs))
		}
	}
	return nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
