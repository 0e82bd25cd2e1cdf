// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaling turns per-run benchmark logs into performance,
// scalability and efficiency series, one per technology.
//
// Scalability at count N is the number of games simulated at N
// divided by the number simulated by the serial run (count 1).
// Efficiency is scalability divided by N.
package scaling

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/gogame/benchplot/gamelog"
)

var (
	// ErrZeroBaseline is returned when the serial run of a
	// technology simulated no games, so no speedup can be computed.
	ErrZeroBaseline = errors.New("serial run simulated zero games")

	// ErrLengthMismatch is returned when the runs or axis values of
	// a series do not line up with the configured counts.
	ErrLengthMismatch = errors.New("series length mismatch")
)

// serialCount is the run size used as the speedup denominator.
const serialCount = 1

// Config configures a Builder.
type Config struct {
	// Techs is the list of technologies to load, in report order.
	Techs []Tech

	// Counts is the list of thread or process counts to load for
	// each technology. The serial run is always loaded separately.
	Counts []int

	// Axis selects the x values of each series.
	Axis AxisMode

	// Warn, if non-nil, is called with a printf-style message for
	// non-fatal problems in the input, such as missing fields.
	Warn func(format string, args ...interface{})
}

// DefaultConfig returns the configuration of the published
// experiments: all four technologies at 1, 2, 4, 8 and 16.
func DefaultConfig() Config {
	return Config{
		Techs:  Techs(),
		Counts: []int{1, 2, 4, 8, 16},
		Axis:   AxisFixed,
	}
}

// ParseCounts parses a comma-separated list of positive counts.
func ParseCounts(list string) ([]int, error) {
	var out []int
	for _, s := range strings.Split(list, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("bad count %q", s)
		}
		out = append(out, n)
	}
	return out, nil
}

// A Source supplies the log record of one benchmark run.
type Source interface {
	Load(tech Tech, count int) (*gamelog.Record, error)
}

// DirSource loads records from files named out_<tech>_<count> in
// directory Dir.
type DirSource struct {
	Dir string
}

func (s DirSource) Load(tech Tech, count int) (*gamelog.Record, error) {
	return gamelog.ReadFile(filepath.Join(s.Dir, gamelog.FileName(string(tech.canonical()), count)))
}

// A Series holds the derived metrics of one technology, index-aligned
// with Counts.
type Series struct {
	Tech Tech

	// Counts are the run sizes whose logs were read.
	Counts []int

	// X are the values to plot against, which depend on the
	// AxisMode and may differ from Counts.
	X []float64

	// Perf is the number of games simulated by each run.
	Perf []float64
	// Scal is Perf divided by the serial run's games.
	Scal []float64
	// Eff is Scal divided by the run's count.
	Eff []float64

	Serial *gamelog.Record
	Runs   []*gamelog.Record
}

// GeoMeanEfficiency returns the geometric mean of s.Eff.
func (s *Series) GeoMeanEfficiency() float64 {
	return stats.GeoMean(s.Eff)
}

// PeakSpeedup returns the largest scalability value of s and the
// count at which it was reached.
func (s *Series) PeakSpeedup() (speedup float64, count int) {
	_, max := stats.Bounds(s.Scal)
	for i, v := range s.Scal {
		if v == max {
			return v, s.Counts[i]
		}
	}
	return 0, 0
}

// A Builder accumulates one Series per technology.
type Builder struct {
	config Config
	series []*Series
}

// NewBuilder returns a Builder for config.
func NewBuilder(config Config) (*Builder, error) {
	if len(config.Counts) == 0 {
		return nil, errors.New("no counts configured")
	}
	for _, c := range config.Counts {
		if c <= 0 {
			return nil, fmt.Errorf("count %d must be positive", c)
		}
	}
	if config.Axis == AxisFixed {
		for _, t := range config.Techs {
			if n := len(FixedAxis(t)); n != len(config.Counts) {
				return nil, fmt.Errorf("%w: fixed axis of %s has %d values, have %d counts", ErrLengthMismatch, t, n, len(config.Counts))
			}
		}
	}
	return &Builder{config: config}, nil
}

// Config returns the configuration of b.
func (b *Builder) Config() Config {
	return b.config
}

func (b *Builder) warn(format string, args ...interface{}) {
	if b.config.Warn != nil {
		b.config.Warn(format, args...)
	}
}

// LoadAll loads every configured technology from src, in order.
func (b *Builder) LoadAll(src Source) error {
	if len(b.config.Techs) == 0 {
		return errors.New("no technologies configured")
	}
	for _, t := range b.config.Techs {
		if err := b.Load(src, t); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the serial run and one run per configured count of tech
// from src and adds the resulting series. tech is case-folded.
func (b *Builder) Load(src Source, tech Tech) error {
	tech = tech.canonical()
	serial, err := src.Load(tech, serialCount)
	if err != nil {
		return fmt.Errorf("loading %s serial run: %w", tech, err)
	}
	b.checkFields(tech, serialCount, serial)

	runs := make([]*gamelog.Record, 0, len(b.config.Counts))
	for _, c := range b.config.Counts {
		rec, err := src.Load(tech, c)
		if err != nil {
			return fmt.Errorf("loading %s run at %d: %w", tech, c, err)
		}
		if c != serialCount {
			b.checkFields(tech, c, rec)
		}
		runs = append(runs, rec)
	}

	_, err = b.Add(tech, serial, runs)
	return err
}

func (b *Builder) checkFields(tech Tech, count int, rec *gamelog.Record) {
	if missing := rec.Missing(); len(missing) > 0 {
		b.warn("%s: missing %v", gamelog.FileName(string(tech), count), missing)
	}
}

// Add computes the series of tech from its serial record and one
// record per configured count, appends it to b and returns it. tech
// is case-folded.
func (b *Builder) Add(tech Tech, serial *gamelog.Record, runs []*gamelog.Record) (*Series, error) {
	tech = tech.canonical()
	counts := b.config.Counts
	if len(runs) != len(counts) {
		return nil, fmt.Errorf("%s: %w: %d runs for %d counts", tech, ErrLengthMismatch, len(runs), len(counts))
	}
	if serial.SimGames == 0 {
		return nil, fmt.Errorf("%s: %w", tech, ErrZeroBaseline)
	}

	xs := b.config.Axis.axis(tech, counts)
	if len(xs) != len(counts) {
		return nil, fmt.Errorf("%s: %w: %d axis values for %d counts", tech, ErrLengthMismatch, len(xs), len(counts))
	}

	base := float64(serial.SimGames)
	s := &Series{
		Tech:   tech,
		Counts: append([]int(nil), counts...),
		X:      xs,
		Perf:   make([]float64, len(runs)),
		Scal:   make([]float64, len(runs)),
		Eff:    make([]float64, len(runs)),
		Serial: serial,
		Runs:   runs,
	}
	for i, r := range runs {
		s.Perf[i] = float64(r.SimGames)
		s.Scal[i] = s.Perf[i] / base
		s.Eff[i] = s.Scal[i] / float64(counts[i])
	}
	b.series = append(b.series, s)
	return s, nil
}

// Series returns the accumulated series in the order they were added.
func (b *Builder) Series() []*Series {
	return b.series
}
