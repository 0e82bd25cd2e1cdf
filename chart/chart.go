// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws performance, scalability and efficiency charts
// of scaling series.
package chart

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/gogame/benchplot/scaling"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Metric is one family of derived values in a scaling.Series.
type Metric int

const (
	Performance Metric = iota
	Scalability
	Efficiency
)

// Metrics returns all metrics in chart order.
func Metrics() []Metric {
	return []Metric{Performance, Scalability, Efficiency}
}

var metricInfo = []struct {
	name, title, yLabel string
}{
	Performance: {"performance", "Performance", "Number of games simulated"},
	Scalability: {"scalability", "Scalability (weak scaling)", "Speedup"},
	Efficiency:  {"efficiency", "Efficiency", "Efficiency"},
}

// XLabel is the x-axis title of every chart.
const XLabel = "Number of threads"

// Name returns the lower-case name of m, used for file names.
func (m Metric) Name() string { return metricInfo[m].name }

// Title returns the chart title of m.
func (m Metric) Title() string { return metricInfo[m].title }

// YLabel returns the y-axis title of m.
func (m Metric) YLabel() string { return metricInfo[m].yLabel }

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricInfo) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return m.Name()
}

// Values returns the values of m in s.
func (m Metric) Values(s *scaling.Series) []float64 {
	switch m {
	case Performance:
		return s.Perf
	case Scalability:
		return s.Scal
	case Efficiency:
		return s.Eff
	}
	panic(fmt.Sprintf("unknown metric %d", int(m)))
}

// A Chart is a plot of one Metric with one line per series.
type Chart struct {
	Metric Metric
	Plot   *plot.Plot

	// Lines and Points hold the line and marker plotters of each
	// series, in series order.
	Lines  []*plotter.Line
	Points []*plotter.Scatter
}

const glyphRadius = 3

// New returns a chart of metric m across series. The x axis is
// logarithmic, with a tick at every integer in the range of the
// series' x values.
func New(m Metric, series []*scaling.Series) (*Chart, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("%s chart: no series", m)
	}

	p := plot.New()
	p.Title.Text = m.Title()
	p.X.Label.Text = XLabel
	p.Y.Label.Text = m.YLabel()
	p.X.Scale = plot.LogScale{}
	p.Legend.Top = true
	p.Legend.Left = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	colors := palette(len(series))
	c := &Chart{Metric: m, Plot: p}
	for i, s := range series {
		ys := m.Values(s)
		if len(ys) != len(s.X) {
			return nil, fmt.Errorf("%s chart: %s has %d x values and %d y values", m, s.Tech, len(s.X), len(ys))
		}
		pts := make(plotter.XYs, len(ys))
		for j := range ys {
			pts[j].X, pts[j].Y = s.X[j], ys[j]
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("%s chart: %s: %w", m, s.Tech, err)
		}
		clr := colors[i%len(colors)]
		line.LineStyle.Color = clr
		line.LineStyle.Width = vg.Points(1.5)
		points.GlyphStyle.Color = clr
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		points.GlyphStyle.Radius = vg.Points(glyphRadius)

		p.Add(line, points)
		p.Legend.Add(string(s.Tech), line, points)
		c.Lines = append(c.Lines, line)
		c.Points = append(c.Points, points)
	}
	p.X.Tick.Marker = newIntegerTicks(series)
	return c, nil
}

// palette returns n distinguishable colors.
func palette(n int) []color.Color {
	// Set1 is defined for 3 to 9 colors.
	k := n
	if k < 3 {
		k = 3
	} else if k > 9 {
		k = 9
	}
	pal, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", k)
	if err != nil {
		return []color.Color{color.Black}
	}
	return pal.Colors()
}

// integerTicks places minor ticks at d×10^k for d in 1..9 between the
// smallest and largest x value of any series, plus a labelled tick at
// every integer x where some series has a point.
type integerTicks struct {
	ticks []plot.Tick
}

func newIntegerTicks(series []*scaling.Series) integerTicks {
	lo, hi := math.Inf(1), math.Inf(-1)
	labelled := make(map[int]bool)
	for _, s := range series {
		if len(s.X) == 0 {
			continue
		}
		min, max := stats.Bounds(s.X)
		lo, hi = math.Min(lo, min), math.Max(hi, max)
		for _, x := range s.X {
			// Values <= 0 are not representable on a log axis.
			if x > 0 && x == math.Trunc(x) {
				labelled[int(x)] = true
			}
		}
	}
	if lo > hi {
		return integerTicks{}
	}

	first, last := int(math.Floor(lo)), int(math.Ceil(hi))
	values := make(map[int]bool)
	for v := range labelled {
		values[v] = true
	}
	for step := 1; step <= last && step > 0; step *= 10 {
		for d := 1; d <= 9; d++ {
			if v := d * step; v >= first && v <= last {
				values[v] = true
			}
		}
	}

	sorted := make([]int, 0, len(values))
	for v := range values {
		sorted = append(sorted, v)
	}
	sort.Ints(sorted)
	ticks := make([]plot.Tick, len(sorted))
	for i, v := range sorted {
		ticks[i] = plot.Tick{Value: float64(v)}
		if labelled[v] {
			ticks[i].Label = fmt.Sprint(v)
		}
	}
	return integerTicks{ticks}
}

func (t integerTicks) Ticks(min, max float64) []plot.Tick {
	return t.ticks
}
