// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders scaling series as text, CSV or HTML tables.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogame/benchplot/internal/texttab"
	"github.com/gogame/benchplot/scaling"
)

// A Format is a report output format.
type Format int

const (
	None Format = iota
	Text
	CSV
	HTML
)

var formatNames = map[string]Format{
	"none": None,
	"text": Text,
	"csv":  CSV,
	"html": HTML,
}

// ParseFormat parses a report format name.
func ParseFormat(s string) (Format, error) {
	f, ok := formatNames[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown report format %q (want none, text, csv or html)", s)
	}
	return f, nil
}

// Write writes series to w in format f. images lists chart files to
// reference from HTML reports; other formats ignore it.
func Write(w io.Writer, f Format, series []*scaling.Series, images []string) error {
	switch f {
	case None:
		return nil
	case Text:
		return WriteText(w, series)
	case CSV:
		return WriteCSV(w, series)
	case HTML:
		return WriteHTML(w, series, images)
	}
	return fmt.Errorf("unknown report format %d", int(f))
}

// A row is one run of one technology.
type row struct {
	Tech       scaling.Tech
	Count      int
	X          float64
	Games      float64
	Speedup    float64
	Efficiency float64
}

func rows(s *scaling.Series) []row {
	out := make([]row, len(s.Counts))
	for i := range out {
		out[i] = row{s.Tech, s.Counts[i], s.X[i], s.Perf[i], s.Scal[i], s.Eff[i]}
	}
	return out
}

func fmtFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// WriteText writes one aligned table row per run, followed by a
// one-line summary per technology.
func WriteText(w io.Writer, series []*scaling.Series) error {
	var tab texttab.Table
	tab.Row().Cell("tech").Cell("count").Cell("x").Cell("games", texttab.Right).
		Cell("speedup", texttab.Right).Cell("efficiency", texttab.Right)
	for _, s := range series {
		for _, r := range rows(s) {
			tab.Row().Cell(string(r.Tech)).Cell(strconv.Itoa(r.Count)).Cell(fmtFloat(r.X, -1)).
				Cell(fmtFloat(r.Games, 0), texttab.Right).
				Cell(fmtFloat(r.Speedup, 2), texttab.Right).
				Cell(fmtFloat(r.Efficiency, 3), texttab.Right)
		}
	}
	if err := tab.Format(w); err != nil {
		return err
	}

	if len(series) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	var sum texttab.Table
	for _, s := range series {
		peak, at := s.PeakSpeedup()
		sum.Row().Cell(string(s.Tech)).
			Cell("peak speedup").Cell(fmtFloat(peak, 2), texttab.Right).Cell(fmt.Sprintf("at %d", at)).
			Cell("geomean efficiency").Cell(fmtFloat(s.GeoMeanEfficiency(), 3), texttab.Right)
	}
	return sum.Format(w)
}

// WriteCSV writes one record per run with full-precision values.
func WriteCSV(w io.Writer, series []*scaling.Series) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"tech", "count", "x", "games", "speedup", "efficiency"})
	for _, s := range series {
		for _, r := range rows(s) {
			cw.Write([]string{
				string(r.Tech),
				strconv.Itoa(r.Count),
				fmtFloat(r.X, -1),
				fmtFloat(r.Games, -1),
				fmtFloat(r.Speedup, -1),
				fmtFloat(r.Efficiency, -1),
			})
		}
	}
	cw.Flush()
	return cw.Error()
}
