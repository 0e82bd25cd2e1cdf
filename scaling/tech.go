// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaling

import (
	"fmt"
	"strings"
)

// A Tech is a parallelization approach under benchmark.
type Tech string

const (
	OMP      Tech = "omp"
	Pthreads Tech = "pthreads"
	MPI      Tech = "mpi"
	Hybrid   Tech = "hybrid"
)

// Techs returns the known technologies in report order.
func Techs() []Tech {
	return []Tech{OMP, Pthreads, MPI, Hybrid}
}

// ParseTech returns the Tech named by s, ignoring case.
func ParseTech(s string) (Tech, error) {
	t := Tech(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Techs() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown technology %q", s)
}

// ParseTechs parses a comma-separated list of technologies.
func ParseTechs(list string) ([]Tech, error) {
	var out []Tech
	for _, s := range strings.Split(list, ",") {
		t, err := ParseTech(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// An AxisMode selects the x-axis values of a Series.
type AxisMode int

const (
	// AxisFixed uses the historical axis values: [2 4 8 16 32] for
	// hybrid runs and [1 2 4 8 16] for everything else, whatever
	// counts were actually fetched.
	AxisFixed AxisMode = iota
	// AxisCounts uses the fetched counts, doubled for hybrid runs,
	// which start two threads per process.
	AxisCounts
)

func (m AxisMode) String() string {
	switch m {
	case AxisFixed:
		return "fixed"
	case AxisCounts:
		return "counts"
	}
	return fmt.Sprintf("AxisMode(%d)", int(m))
}

// ParseAxisMode parses "fixed" or "counts".
func ParseAxisMode(s string) (AxisMode, error) {
	switch strings.ToLower(s) {
	case "fixed":
		return AxisFixed, nil
	case "counts":
		return AxisCounts, nil
	}
	return 0, fmt.Errorf("unknown axis mode %q (want fixed or counts)", s)
}

// canonical returns t in the lower-case form used in log file names.
func (t Tech) canonical() Tech {
	return Tech(strings.ToLower(string(t)))
}

// FixedAxis returns the AxisFixed x values for tech.
func FixedAxis(tech Tech) []float64 {
	if tech.canonical() == Hybrid {
		return []float64{2, 4, 8, 16, 32}
	}
	return []float64{1, 2, 4, 8, 16}
}

func (m AxisMode) axis(tech Tech, counts []int) []float64 {
	if m == AxisFixed {
		return FixedAxis(tech)
	}
	mul := 1.0
	if tech.canonical() == Hybrid {
		mul = 2
	}
	xs := make([]float64, len(counts))
	for i, c := range counts {
		xs[i] = mul * float64(c)
	}
	return xs
}
