// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gogame/benchplot/scaling"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Options controls how charts are written.
type Options struct {
	// Dir is the directory to write chart files into. It is
	// created if necessary.
	Dir string

	// Formats lists the file formats to write, each one of "png",
	// "svg" or "pdf".
	Formats []string

	Width, Height vg.Length

	// DPI is the resolution of raster formats.
	DPI int
}

// DefaultOptions returns options for 12x6 inch PNG charts in the
// current directory.
func DefaultOptions() Options {
	return Options{
		Dir:     ".",
		Formats: []string{"png"},
		Width:   12 * vg.Inch,
		Height:  6 * vg.Inch,
		DPI:     96,
	}
}

var knownFormats = map[string]bool{"png": true, "svg": true, "pdf": true}

// ParseFormats parses a comma-separated list of chart formats.
func ParseFormats(list string) ([]string, error) {
	var out []string
	for _, f := range strings.Split(list, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if !knownFormats[f] {
			return nil, fmt.Errorf("unknown chart format %q (want png, svg or pdf)", f)
		}
		out = append(out, f)
	}
	return out, nil
}

// Write saves c in each of opts.Formats and returns the paths of the
// files written. Files are named after c's metric.
func (c *Chart) Write(opts Options) ([]string, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if err := os.MkdirAll(opts.Dir, 0777); err != nil {
		return nil, err
	}
	var paths []string
	for _, format := range opts.Formats {
		path := filepath.Join(opts.Dir, c.Metric.Name()+"."+format)
		if err := c.writeFile(path, format, opts); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (c *Chart) writeFile(path, format string, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if format == "png" {
		dpi := opts.DPI
		if dpi <= 0 {
			dpi = 96
		}
		can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
			vgimg.UseWH(opts.Width, opts.Height),
			vgimg.UseDPI(dpi),
			vgimg.UseBackgroundColor(color.White))}
		c.Plot.Draw(draw.New(can))
		_, err = can.WriteTo(f)
		return err
	}

	w, err := c.Plot.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return err
	}
	_, err = w.WriteTo(f)
	return err
}

// WriteAll draws one chart per metric across series and writes them
// according to opts. It returns the paths of all files written.
func WriteAll(series []*scaling.Series, opts Options) ([]string, error) {
	var paths []string
	for _, m := range Metrics() {
		c, err := New(m, series)
		if err != nil {
			return paths, err
		}
		ps, err := c.Write(opts)
		paths = append(paths, ps...)
		if err != nil {
			return paths, fmt.Errorf("writing %s chart: %w", m, err)
		}
	}
	return paths, nil
}

// viewerCommand returns the command that opens a file in the
// platform's default viewer.
var viewerCommand = func() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open", "-W"}
	case "windows":
		return []string{"cmd", "/c", "start", "/wait", ""}
	}
	return []string{"xdg-open"}
}

// Show opens each file in the system viewer and waits for the viewer
// to exit.
func Show(ctx context.Context, files []string) error {
	argv := viewerCommand()
	for _, file := range files {
		args := append(append([]string(nil), argv[1:]...), file)
		cmd := exec.CommandContext(ctx, argv[0], args...)
		cmd.Stdout, cmd.Stderr = os.Stderr, os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("showing %s: %w", file, err)
		}
	}
	return nil
}
