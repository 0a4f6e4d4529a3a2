// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings for a keypad session. The zero
// Config is ready to use and holds the defaults.
package config // import "robpike.io/keypad/config"

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// DefaultHistory is the number of results kept in the history log.
const DefaultHistory = 10

// Keys holds the button labels for the control actions.
// Every other button appends its own label to the display.
type Keys struct {
	Clear     string
	Backspace string
	Evaluate  string
}

// DefaultKeys are the labels on the keypad itself.
var DefaultKeys = Keys{
	Clear:     "C",
	Backspace: "⌫",
	Evaluate:  "=",
}

type Config struct {
	prompt    string
	format    string
	history   int
	keys      Keys
	json      bool
	debug     map[string]bool
	output    io.Writer
	errOutput io.Writer
}

// Format returns the fmt verb used to print results. The empty
// string selects the default, shortest representation.
func (c *Config) Format() string {
	return c.format
}

func (c *Config) SetFormat(s string) {
	c.format = s
}

// CheckFormat reports an error if format, when not empty, does not
// print a float64 with a single fmt verb.
func CheckFormat(format string) error {
	if format == "" {
		return nil
	}
	if s := fmt.Sprintf(format, 1.5); strings.Contains(s, "%!") {
		return fmt.Errorf("bad format %q: %s", format, s)
	}
	return nil
}

// History returns the capacity of the history log.
func (c *Config) History() int {
	if c.history <= 0 {
		return DefaultHistory
	}
	return c.history
}

func (c *Config) SetHistory(n int) {
	c.history = n
}

// Keys returns the control labels, with defaults filled in.
func (c *Config) Keys() Keys {
	k := c.keys
	if k.Clear == "" {
		k.Clear = DefaultKeys.Clear
	}
	if k.Backspace == "" {
		k.Backspace = DefaultKeys.Backspace
	}
	if k.Evaluate == "" {
		k.Evaluate = DefaultKeys.Evaluate
	}
	return k
}

func (c *Config) SetKeys(k Keys) {
	c.keys = k
}

// JSON reports whether line mode prints a JSON snapshot of the
// session instead of the display.
func (c *Config) JSON() bool {
	return c.json
}

func (c *Config) SetJSON(b bool) {
	c.json = b
}

// Debug reports the state of the named debugging flag.
func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
}

// DebugFlags returns the names of the known debugging flags, sorted.
func (c *Config) DebugFlags() []string {
	names := []string{"panic", "parse", "tokens"}
	for name := range c.debug {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Output returns the writer to be used for program output.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

// SetOutput sets the writer to which program output is printed; default is os.Stdout.
func (c *Config) SetOutput(output io.Writer) {
	c.output = output
}

// ErrOutput returns the writer to be used for error output.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer to which error output is printed; default is os.Stderr.
func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
}
