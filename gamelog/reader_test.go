// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamelog

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func found(fields ...Field) FieldSet {
	var s FieldSet
	for _, f := range fields {
		s.add(f)
	}
	return s
}

func TestParse(t *testing.T) {
	type testCase struct {
		name, input string
		want        *Record
	}
	for _, test := range []testCase{
		{
			"partial",
			"Total number of simulated games: 250\nTotal time (seconds): 12.5\n",
			&Record{SimGames: 250, TotalTime: 12.5, Found: found(SimGames, TotalTime)},
		},
		{
			"empty",
			"",
			&Record{},
		},
		{
			"noise",
			"final\n  0 1 2 3\n 0. . # .\nAverage time of one step: 3s.\n",
			&Record{},
		},
		{
			"trailing space",
			"Total number of simulated rounds: 326400 \r\n",
			&Record{SimRounds: 326400, Found: found(SimRounds)},
		},
		{
			"prefix text",
			"[rank 0] Number of rounds played: 81\n",
			&Record{RoundsPlayed: 81, Found: found(RoundsPlayed)},
		},
		{
			"last wins",
			"Total number of simulated games: 1\nTotal number of simulated games: 2\n",
			&Record{SimGames: 2, Found: found(SimGames)},
		},
		{
			"first label wins",
			"Total number of simulated games (Number of rounds played): 3\n",
			&Record{RoundsPlayed: 3, Found: found(RoundsPlayed)},
		},
		{
			"float exponent",
			"Average time for one round (seconds): 1.5e-01\n",
			&Record{AvgRoundTime: 0.15, Found: found(AvgRoundTime)},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(test.input), "test")
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	check := func(input, want string) {
		t.Helper()
		_, err := Parse(strings.NewReader(input), "test")
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q: got error %v, want *SyntaxError", input, err)
			return
		}
		if err.Error() != want {
			t.Errorf("%q: got error %q, want %q", input, err, want)
		}
	}

	check("Total number of simulated games: many\n",
		`test:1: games: bad value "many"`)
	check("\nTotal time (seconds): 1.5.5\n",
		`test:2: total-time: bad value "1.5.5"`)
	check("Number of rounds played 81\n",
		`test:1: rounds: missing ':'`)
	// Integer fields do not accept fractions.
	check("Total number of simulated steps: 12.0\n",
		`test:1: sim-steps: bad value "12.0"`)
	check("Total number of simulated steps:\n",
		`test:1: sim-steps: bad value ""`)
	check("Total number of simulated games: -5\n",
		`test:1: games: bad value "-5"`)
}

func TestReadFile(t *testing.T) {
	got, err := ReadFile("testdata/out_hybrid_4")
	if err != nil {
		t.Fatal(err)
	}
	want := &Record{
		RoundsPlayed: 81,
		SimGames:     4896000,
		SimRounds:    326400,
		SimSteps:     198455120,
		TotalTime:    152.75,
		AvgRoundTime: 1.88580,
		Found:        found(Fields()...),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadFile mismatch (-want +got):\n%s", diff)
	}
	if m := got.Missing(); len(m) != 0 {
		t.Errorf("got missing fields %v, want none", m)
	}

	// Parsing is idempotent.
	again, err := ReadFile("testdata/out_hybrid_4")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("second parse differs (-first +second):\n%s", diff)
	}
}

func TestMissingSteps(t *testing.T) {
	got, err := ReadFile("testdata/short")
	if err != nil {
		t.Fatal(err)
	}
	if got.SimSteps != 0 || got.Has(SimSteps) {
		t.Errorf("got SimSteps=%d Has=%v, want 0 false", got.SimSteps, got.Has(SimSteps))
	}
	want := []Field{RoundsPlayed, SimRounds, SimSteps, AvgRoundTime}
	if diff := cmp.Diff(want, got.Missing()); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFileNotExist(t *testing.T) {
	_, err := ReadFile("testdata/out_omp_3")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got error %v, want fs.ErrNotExist", err)
	}
}

func TestRecordAccessors(t *testing.T) {
	r := &Record{RoundsPlayed: 1, SimGames: 2, SimRounds: 3, SimSteps: 4, TotalTime: 5.5, AvgRoundTime: 6.5}
	want := []float64{1, 2, 3, 4, 5.5, 6.5}
	for i, f := range Fields() {
		if got := r.Float(f); got != want[i] {
			t.Errorf("Float(%s) = %v, want %v", f, got, want[i])
		}
	}
	if got := r.Int(SimSteps); got != 4 {
		t.Errorf("Int(sim-steps) = %d, want 4", got)
	}
	if got := Field(17).String(); got != "Field(17)" {
		t.Errorf("String of bad field = %q", got)
	}
}

func TestFileName(t *testing.T) {
	if got, want := FileName("pthreads", 16), "out_pthreads_16"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
