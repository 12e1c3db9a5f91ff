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
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/pssg/assemble"
	"seehuhn.de/go/pssg/pipeline"
)

var (
	outArg      = flag.String("out", "out", "output directory")
	nameArg     = flag.String("name", "", "font name (default: input file name without extension)")
	sizeArg     = flag.Int("size", 32, "glyph size in pixels per em")
	pxRangeArg  = flag.Int("pxrange", 4, "signed distance range in pixels")
	charsetArg  = flag.String("charset", "", "charset file for the atlas generator")
	templateArg = flag.String("template", "", "document providing the library order (default: standard framing)")
	atlasGenArg = flag.String("atlas-gen", "msdf-atlas-gen", "atlas generator executable (empty to skip)")
	texConvArg  = flag.String("texconv", "", "texture transcoder executable (empty to skip)")
	strictArg   = flag.Bool("strict", false, "fail if a mandatory library cannot be merged")
)

func main() {
	flag.CommandLine.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [options] <font file>\n",
			filepath.Base(os.Args[0]))
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), "Converts a font into a PSSG font asset:")
		fmt.Fprintln(flag.CommandLine.Output(), "atlas generation, library assembly, merging,")
		fmt.Fprintln(flag.CommandLine.Output(), "and optional texture transcoding.")
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.CommandLine.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(fontPath string) error {
	name := *nameArg
	if name == "" {
		base := filepath.Base(fontPath)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	cfg := pipeline.Config{
		FontPath:      fontPath,
		OutDir:        *outArg,
		FontName:      name,
		Size:          *sizeArg,
		PxRange:       *pxRangeArg,
		CharsetPath:   *charsetArg,
		MergeTemplate: *templateArg,
		AtlasGen:      *atlasGenArg,
		TexConv:       *texConvArg,
		Strict:        *strictArg,
	}

	res, err := pipeline.Run(context.Background(), cfg)
	if err != nil {
		return err
	}

	for _, w := range res.MergeWarnings {
		fmt.Println("warning:", w.String())
	}
	if len(res.Skipped) > 0 {
		fmt.Printf("%d glyphs without geometry, see %s\n",
			len(res.Skipped), filepath.Join(res.FragmentDir, assemble.SkippedReportName))
	}
	if res.TextureErr != nil {
		fmt.Println("warning: texture transcoding failed:", res.TextureErr)
	}
	fmt.Println("wrote", res.MergedPath)
	return nil
}
