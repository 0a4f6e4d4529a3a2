// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The mobile package provides a very narrow interface to the keypad,
// suitable for wrapping in a UI for mobile applications.
// It is designed to work well with the gomobile tool by exposing
// only primitive types. It's also handy for testing.
//
// This package has global state, so only one session (Press, Run or
// Demo) can be active at a time.
package mobile // import "robpike.io/keypad/mobile"

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"robpike.io/keypad/config"
	"robpike.io/keypad/exec"
	"robpike.io/keypad/pad"
	"robpike.io/keypad/run"
)

var (
	conf    config.Config
	context *exec.Context
)

func init() {
	Reset()
}

// Press presses the buttons labeled in symbols, in order, and returns
// the display. Labels that are not on the keypad are ignored.
func Press(symbols string) string {
	actions, _ := pad.Split(conf.Keys(), symbols)
	for _, a := range actions {
		context.HandleAction(a)
	}
	return context.Display()
}

// History returns the history entries, newest first, one per line.
func History() string {
	return strings.Join(context.History(), "\n")
}

// Eval evaluates the arithmetic expression, which may use parentheses,
// and returns the result. It does not touch the display or history.
func Eval(expr string) (string, error) {
	return exec.Eval(&conf, strings.TrimSpace(expr))
}

// Run runs the input as lines of button labels and special commands
// and returns the output. If execution caused errors, they will be
// returned concatenated together in the error value returned.
func Run(input string) (result string, errors error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	run.Keypad(context, input, stdout, stderr)
	var err error
	if stderr.Len() > 0 {
		err = fmt.Errorf("%s", stderr)
	}
	return stdout.String(), err
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	scanner *bufio.Scanner
}

// NewDemo returns a new Demo that will scan the input text line by line.
func NewDemo(input string) *Demo {
	Reset()
	return &Demo{
		scanner: bufio.NewScanner(strings.NewReader(input)),
	}
}

// Next returns the result (and error) produced by the next line of
// input. It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return Run(d.scanner.Text())
}

// Reset clears all state to the initial value.
func Reset() {
	conf = config.Config{}
	context = exec.NewContext(&conf, nil)
}

// Help returns the list of special commands.
func Help() string {
	return run.Help()
}
