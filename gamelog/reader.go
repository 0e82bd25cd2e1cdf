// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamelog

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
)

// A SyntaxError reports a labelled line whose value could not be
// parsed.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

var labels = func() [numFields][]byte {
	var ls [numFields][]byte
	for f := range ls {
		ls[f] = []byte(Field(f).Label())
	}
	return ls
}()

// Parse reads a benchmark log from r and returns the summary values
// it contains. fileName is used in error messages; it is purely
// diagnostic.
//
// Each line is matched against the field labels in match order, and
// the value is the text after the first colon on the line. If a label
// appears on several lines, the last one wins.
func Parse(r io.Reader, fileName string) (*Record, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	rec := new(Record)
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		if err := rec.parseLine(s.Bytes()); err != nil {
			return nil, &SyntaxError{fileName, line, err.Error()}
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s:%d: %w", fileName, line, err)
	}
	return rec, nil
}

func (rec *Record) parseLine(line []byte) error {
	f, ok := matchLabel(line)
	if !ok {
		return nil
	}
	i := bytes.IndexByte(line, ':')
	if i < 0 {
		return fmt.Errorf("%s: missing ':'", f)
	}
	val := string(bytes.TrimSpace(line[i+1:]))
	if f.IsFloat() {
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("%s: bad value %q", f, val)
		}
		rec.setFloat(f, v)
		return nil
	}
	// Integer fields are counts.
	v, err := strconv.ParseInt(val, 10, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("%s: bad value %q", f, val)
	}
	rec.setInt(f, v)
	return nil
}

func matchLabel(line []byte) (Field, bool) {
	for f, label := range labels {
		if bytes.Contains(line, label) {
			return Field(f), true
		}
	}
	return 0, false
}

// ReadFile parses the log at path.
func ReadFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

// FileName returns the conventional log name for a run of technology
// tech at the given thread or process count.
func FileName(tech string, count int) string {
	return fmt.Sprintf("out_%s_%d", tech, count)
}
