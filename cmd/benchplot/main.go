// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot charts the scaling of the Go-game benchmark runs.
//
// Usage:
//
//	benchplot [flags]
//
// Benchplot reads the summary logs out_<tech>_<count> written by the
// OpenMP, pthreads, MPI and hybrid runs, and computes for each
// technology the number of games simulated at each count
// (performance), the speedup over the serial run out_<tech>_1
// (scalability), and speedup divided by count (efficiency). It writes
// one chart per metric, with one line per technology, and prints a
// summary table.
//
// The flags are:
//
//	-dir dir
//		read logs from dir (default ".")
//	-techs list
//		comma-separated technologies (default "omp,pthreads,mpi,hybrid")
//	-counts list
//		comma-separated thread or process counts (default "1,2,4,8,16")
//	-axis mode
//		x axis values: "fixed" plots hybrid runs at 2..32 and the rest
//		at 1..16 whatever the counts; "counts" plots the counts
//		themselves, doubled for hybrid runs (default "fixed")
//	-o dir
//		write charts into dir (default ".")
//	-format list
//		comma-separated chart formats: png, svg, pdf (default "png")
//	-report format
//		print a report as none, text, csv or html (default "text")
//	-show
//		open the charts in the system viewer and wait for it to exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gogame/benchplot/chart"
	"github.com/gogame/benchplot/report"
	"github.com/gogame/benchplot/scaling"
)

// errUsage reports a bad command line. The usage message has already
// been printed.
var errUsage = errors.New("usage")

func main() {
	log.SetPrefix("benchplot: ")
	log.SetFlags(0)
	if err := benchplot(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err == errUsage {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func benchplot(ctx context.Context, w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchplot", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: benchplot [flags]\n")
		fmt.Fprintf(wErr, "flags:\n")
		flags.PrintDefaults()
	}
	var (
		flagDir    = flags.String("dir", ".", "read out_<tech>_<count> logs from `dir`")
		flagTechs  = flags.String("techs", "omp,pthreads,mpi,hybrid", "comma-separated `technologies` to chart")
		flagCounts = flags.String("counts", "1,2,4,8,16", "comma-separated thread or process `counts`")
		flagAxis   = flags.String("axis", "fixed", "x axis `mode`: fixed or counts")
		flagOut    = flags.String("o", ".", "write charts into `dir`")
		flagFormat = flags.String("format", "png", "comma-separated chart `formats`: png, svg, pdf")
		flagReport = flags.String("report", "text", "report `format`: none, text, csv or html")
		flagShow   = flags.Bool("show", false, "open the charts in the system viewer")
	)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return errUsage
	}
	if flags.NArg() != 0 {
		flags.Usage()
		return errUsage
	}

	config := scaling.DefaultConfig()
	var err error
	if config.Techs, err = scaling.ParseTechs(*flagTechs); err != nil {
		return err
	}
	if config.Counts, err = scaling.ParseCounts(*flagCounts); err != nil {
		return err
	}
	if config.Axis, err = scaling.ParseAxisMode(*flagAxis); err != nil {
		return err
	}
	config.Warn = func(format string, args ...interface{}) {
		fmt.Fprintf(wErr, "warning: "+format+"\n", args...)
	}

	opts := chart.DefaultOptions()
	opts.Dir = *flagOut
	if opts.Formats, err = chart.ParseFormats(*flagFormat); err != nil {
		return err
	}
	reportFormat, err := report.ParseFormat(*flagReport)
	if err != nil {
		return err
	}

	// Load everything before writing anything, so a bad log leaves
	// no partial output behind.
	b, err := scaling.NewBuilder(config)
	if err != nil {
		return err
	}
	if err := b.LoadAll(scaling.DirSource{Dir: *flagDir}); err != nil {
		return err
	}
	series := b.Series()

	files, err := chart.WriteAll(series, opts)
	if err != nil {
		return err
	}
	if err := report.Write(w, reportFormat, series, files); err != nil {
		return err
	}
	if *flagShow {
		return chart.Show(ctx, files)
	}
	return nil
}
