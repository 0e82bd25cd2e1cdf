// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gamelog reads the summary logs written by the Go-game
// Monte Carlo benchmark runs.
//
// A run writes a handful of "label: value" lines at exit, for example
//
//	Number of rounds played: 81
//	Total number of simulated games: 1224000
//	Total time (seconds): 37.25
//
// Any other lines (board dumps, per-player banners) are ignored.
package gamelog

import "fmt"

// A Field identifies one of the summary values in a log.
type Field int

const (
	RoundsPlayed Field = iota
	SimGames
	SimRounds
	SimSteps
	TotalTime
	AvgRoundTime

	numFields
)

// fieldInfo is in match order: when a line contains more than one
// label, the earliest entry wins.
var fieldInfo = [numFields]struct {
	label   string
	name    string
	isFloat bool
}{
	RoundsPlayed: {"Number of rounds played", "rounds", false},
	SimGames:     {"Total number of simulated games", "games", false},
	SimRounds:    {"Total number of simulated rounds", "sim-rounds", false},
	SimSteps:     {"Total number of simulated steps", "sim-steps", false},
	TotalTime:    {"Total time (seconds)", "total-time", true},
	AvgRoundTime: {"Average time for one round (seconds)", "round-time", true},
}

// Fields returns all fields in match order.
func Fields() []Field {
	fs := make([]Field, numFields)
	for i := range fs {
		fs[i] = Field(i)
	}
	return fs
}

// Label returns the exact text that identifies f on a log line.
func (f Field) Label() string {
	return fieldInfo[f].label
}

// IsFloat reports whether f holds a floating-point number of seconds
// rather than a count.
func (f Field) IsFloat() bool {
	return fieldInfo[f].isFloat
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldInfo[f].name
}

// A FieldSet is a set of Fields.
type FieldSet uint8

func (s FieldSet) Has(f Field) bool {
	return s&(1<<f) != 0
}

func (s *FieldSet) add(f Field) {
	*s |= 1 << f
}

// A Record holds the summary values of one benchmark run.
//
// Fields whose label never appears in the log are zero. Use Has to
// tell a zero value from an absent one.
type Record struct {
	RoundsPlayed int64
	SimGames     int64
	SimRounds    int64
	SimSteps     int64
	TotalTime    float64 // seconds
	AvgRoundTime float64 // seconds

	// Found records which labels appeared in the log.
	Found FieldSet
}

// Has reports whether the label for f appeared in the log.
func (r *Record) Has(f Field) bool {
	return r.Found.Has(f)
}

// Missing returns the fields whose labels did not appear in the log,
// in match order.
func (r *Record) Missing() []Field {
	var out []Field
	for _, f := range Fields() {
		if !r.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Int returns the value of integer field f.
func (r *Record) Int(f Field) int64 {
	switch f {
	case RoundsPlayed:
		return r.RoundsPlayed
	case SimGames:
		return r.SimGames
	case SimRounds:
		return r.SimRounds
	case SimSteps:
		return r.SimSteps
	}
	panic(fmt.Sprintf("field %s is not an integer field", f))
}

// Float returns the value of f as a float64. It accepts any field.
func (r *Record) Float(f Field) float64 {
	switch f {
	case TotalTime:
		return r.TotalTime
	case AvgRoundTime:
		return r.AvgRoundTime
	}
	return float64(r.Int(f))
}

func (r *Record) setInt(f Field, v int64) {
	switch f {
	case RoundsPlayed:
		r.RoundsPlayed = v
	case SimGames:
		r.SimGames = v
	case SimRounds:
		r.SimRounds = v
	case SimSteps:
		r.SimSteps = v
	}
	r.Found.add(f)
}

func (r *Record) setFloat(f Field, v float64) {
	switch f {
	case TotalTime:
		r.TotalTime = v
	case AvgRoundTime:
		r.AvgRoundTime = v
	}
	r.Found.add(f)
}
