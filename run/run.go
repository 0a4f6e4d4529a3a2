// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for keypad's line mode.
// It is factored out of main so it can be used for tests.
// This layout also helps out keypad/mobile.
//
// In line mode each input line is a sequence of button labels, pressed
// in order. After each line the display is printed. Lines starting with
// ')' are special commands; blank lines and lines starting with '#' are
// ignored.
package run // import "robpike.io/keypad/run"

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/sjson"

	"robpike.io/keypad/exec"
	"robpike.io/keypad/pad"
)

// Run runs the session on the lines read from r until EOF.
// The return value says whether every line was understood.
// Error details are reported to the configured error output stream.
func Run(c *exec.Context, r io.Reader, interactive bool) (success bool) {
	conf := c.Config()
	writer := conf.Output()
	scanner := bufio.NewScanner(r)
	success = true
	for {
		if interactive {
			fmt.Fprint(writer, conf.Prompt())
		}
		if !scanner.Scan() {
			break
		}
		if !Line(c, scanner.Text()) {
			success = false
		}
	}
	if interactive {
		fmt.Fprintln(writer)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(conf.ErrOutput(), err)
		return false
	}
	return success
}

// Keypad runs the input text through the session, printing to stdout
// and stderr. It reports whether the run succeeded.
func Keypad(c *exec.Context, input string, stdout, stderr io.Writer) bool {
	conf := c.Config()
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	return Run(c, strings.NewReader(input), false)
}

// Line runs a single line of input and reports whether it was
// understood. A line holding a label that is not on the keypad is
// rejected whole and the display is not printed.
func Line(c *exec.Context, line string) bool {
	conf := c.Config()
	line = strings.TrimSpace(line)
	switch {
	case line == "", strings.HasPrefix(line, "#"):
		return true
	case strings.HasPrefix(line, ")"):
		return special(c, line[1:])
	}
	actions, bad := pad.Split(conf.Keys(), line)
	if len(bad) > 0 {
		fmt.Fprintf(conf.ErrOutput(), "unknown symbol %q in %q\n", bad[0], line)
		return false
	}
	for _, a := range actions {
		c.HandleAction(a)
	}
	return printDisplay(c)
}

// printDisplay prints the display, or the snapshot if JSON output is
// enabled.
func printDisplay(c *exec.Context) bool {
	conf := c.Config()
	if !conf.JSON() {
		fmt.Fprintln(conf.Output(), c.Display())
		return true
	}
	s, err := Snapshot(c)
	if err != nil {
		fmt.Fprintln(conf.ErrOutput(), err)
		return false
	}
	fmt.Fprintln(conf.Output(), s)
	return true
}

// Snapshot returns the state of the session as a JSON object:
//
//	{"display":"4","error":false,"history":["2+2 = 4"]}
func Snapshot(c *exec.Context) (string, error) {
	s, err := sjson.Set("", "display", c.Display())
	if err != nil {
		return "", err
	}
	s, err = sjson.Set(s, "error", c.IsError())
	if err != nil {
		return "", err
	}
	return sjson.Set(s, "history", c.History())
}

// LineWriter returns a Writer that runs each complete line written to
// it through the session. It is used to deliver the demo.
func LineWriter(c *exec.Context) io.Writer {
	return &lineWriter{context: c}
}

type lineWriter struct {
	context *exec.Context
	buf     []byte
}

func (w *lineWriter) Write(b []byte) (int, error) {
	w.buf = append(w.buf, b...)
	for {
		nl := bytes.IndexByte(w.buf, '\n')
		if nl < 0 {
			break
		}
		line := string(w.buf[:nl])
		w.buf = w.buf[nl+1:]
		Line(w.context, line)
	}
	return len(b), nil
}
