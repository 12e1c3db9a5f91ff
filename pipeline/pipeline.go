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

// Package pipeline runs the full font conversion: atlas generation,
// library assembly, merging, and texture transcoding.
//
// Atlas generation and texture transcoding shell out to external tools
// (msdf-atlas-gen and texconv); assembly and merging run in process.
// The first three steps must succeed; a texture transcoding failure is
// reported in the result but does not fail the run, since the merged
// document is already usable and the texture can be rebuilt separately.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"seehuhn.de/go/pssg/assemble"
	"seehuhn.de/go/pssg/atlas"
	"seehuhn.de/go/pssg/merge"
)

// Config holds the pipeline parameters.  AtlasGen and TexConv name the
// external executables; leaving one empty skips that step, in which
// case the caller must provide (or does not need) its output.
type Config struct {
	FontPath string // input font file
	OutDir   string // all outputs are written here
	FontName string // base name for generated files, doubles as shader ID

	Size    int // glyph size in pixels per em (default 32)
	PxRange int // signed distance range in pixels (default 4)

	CharsetPath   string // optional charset file for the atlas generator
	MergeTemplate string // document providing the library order, empty for the standard framing

	AtlasGen string // path to msdf-atlas-gen, empty to skip
	TexConv  string // path to texconv, empty to skip

	Strict bool // fail the merge on missing mandatory libraries
}

// Result describes the outputs of one pipeline run.
type Result struct {
	AtlasJSON   string
	AtlasPNG    string
	FragmentDir string
	MergedPath  string

	MergeWarnings []merge.Warning
	Skipped       []rune // glyphs without geometry

	// TextureErr records a texture transcoding failure.  It is
	// deliberately not returned as the run error.
	TextureErr error
}

// A StepError wraps a failure of one pipeline step.
type StepError struct {
	Step string
	Err  error
}

func (err *StepError) Error() string {
	return err.Step + ": " + err.Err.Error()
}

func (err *StepError) Unwrap() error {
	return err.Err
}

// Run executes the pipeline.  On error the returned result still
// describes the outputs produced so far.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.FontName == "" {
		return nil, fmt.Errorf("no font name given")
	}
	if err := os.MkdirAll(cfg.OutDir, 0o777); err != nil {
		return nil, err
	}

	res := &Result{
		AtlasJSON:   filepath.Join(cfg.OutDir, cfg.FontName+".json"),
		AtlasPNG:    filepath.Join(cfg.OutDir, cfg.FontName+".png"),
		FragmentDir: filepath.Join(cfg.OutDir, "generated_library"),
		MergedPath:  filepath.Join(cfg.OutDir, cfg.FontName+".xml"),
	}

	if cfg.AtlasGen != "" {
		if err := runAtlasGen(ctx, cfg, res); err != nil {
			return res, &StepError{Step: "atlas generation", Err: err}
		}
	}

	doc, err := atlas.Read(res.AtlasJSON)
	if err != nil {
		return res, &StepError{Step: "library assembly", Err: err}
	}
	a := &assemble.Assembler{
		FontName:    cfg.FontName,
		TextureName: filepath.Base(res.AtlasPNG),
	}
	assembled := a.Assemble(doc)
	res.Skipped = assembled.Skipped
	if err := assembled.WriteDir(res.FragmentDir); err != nil {
		return res, &StepError{Step: "library assembly", Err: err}
	}

	merged, warnings, err := merge.Merge(res.FragmentDir, cfg.MergeTemplate,
		merge.Options{Strict: cfg.Strict})
	res.MergeWarnings = warnings
	if err != nil {
		return res, &StepError{Step: "merge", Err: err}
	}
	if err := merge.WriteFile(merged, res.MergedPath); err != nil {
		return res, &StepError{Step: "merge", Err: err}
	}

	if cfg.TexConv != "" {
		res.TextureErr = runTexConv(ctx, cfg, res)
	}
	return res, nil
}

func runAtlasGen(ctx context.Context, cfg Config, res *Result) error {
	size := cfg.Size
	if size <= 0 {
		size = 32
	}
	pxRange := cfg.PxRange
	if pxRange <= 0 {
		pxRange = 4
	}

	args := []string{
		"-font", cfg.FontPath,
		"-type", "mtsdf",
		"-format", "png",
		"-imageout", res.AtlasPNG,
		"-json", res.AtlasJSON,
		"-size", strconv.Itoa(size),
		"-pxrange", strconv.Itoa(pxRange),
		"-yorigin", "bottom",
	}
	if cfg.CharsetPath != "" {
		args = append(args, "-charset", cfg.CharsetPath)
	}
	return runTool(ctx, cfg.AtlasGen, args)
}

func runTexConv(ctx context.Context, cfg Config, res *Result) error {
	args := []string{
		"-f", "DXT5",
		"-y",
		"-o", cfg.OutDir,
		res.AtlasPNG,
	}
	return runTool(ctx, cfg.TexConv, args)
}

func runTool(ctx context.Context, exe string, args []string) error {
	cmd := exec.CommandContext(ctx, exe, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w\n%s", exe, err, out)
	}
	return nil
}
