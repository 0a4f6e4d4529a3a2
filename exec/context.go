// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec drives the keypad: it applies actions to the display
// and evaluates it, keeping the history of results.
package exec // import "robpike.io/keypad/exec"

import (
	"log/slog"

	"robpike.io/keypad/config"
	"robpike.io/keypad/history"
	"robpike.io/keypad/pad"
)

// Context holds the state of a keypad session: the display and the
// history log. It is not safe for concurrent use; every action runs
// to completion before the next.
type Context struct {
	// config is the configuration used for evaluation and printing.
	config *config.Config
	log    *slog.Logger

	buf     pad.Buffer
	history *history.Log
}

// NewContext returns a new session with an empty display and history.
// A nil logger discards log output.
func NewContext(conf *config.Config, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Context{
		config:  conf,
		log:     logger,
		history: history.New(conf.History()),
	}
}

func (c *Context) Config() *config.Config {
	return c.config
}

// Reconfigure applies changes to the configuration that affect the
// session's state, such as the history capacity.
func (c *Context) Reconfigure() {
	c.history.SetCapacity(c.config.History())
	c.log.Debug("reconfigured", "history", c.history.Capacity())
}

// Display returns the text on the display.
func (c *Context) Display() string {
	return c.buf.String()
}

// IsError reports whether the last evaluation failed.
func (c *Context) IsError() bool {
	return c.buf.IsError()
}

// History returns the history entries, newest first.
func (c *Context) History() []string {
	return c.history.Entries()
}

// HandleAction applies the action and returns the new display and
// history.
func (c *Context) HandleAction(a pad.Action) (display string, entries []string) {
	switch a.Kind {
	case pad.Append:
		if !c.buf.Append(a.Char) {
			c.log.Debug("rejected", "char", string(a.Char), "display", c.buf.String())
		}
	case pad.Clear:
		c.buf.Clear()
	case pad.Backspace:
		c.buf.Backspace()
	case pad.Evaluate:
		c.Evaluate()
	}
	c.log.Debug("action", "action", a.String(), "display", c.buf.String())
	return c.Display(), c.History()
}

// Press applies the action for the button labeled symbol and reports
// whether the label was recognized.
func (c *Context) Press(symbol string) bool {
	a, ok := pad.ParseAction(c.config.Keys(), symbol)
	if !ok {
		return false
	}
	c.HandleAction(a)
	return true
}

// Evaluate computes the display. An empty display is left alone. On
// success the calculation is recorded in the history and the display
// shows the result; on failure the display shows the error marker, the
// history is untouched and the error is returned.
func (c *Context) Evaluate() error {
	text := c.buf.String()
	if text == "" {
		return nil
	}
	result, err := Eval(c.config, text)
	if err != nil {
		c.log.Debug("evaluation failed", "expr", text, "err", err)
		c.buf.Set(pad.ErrorMarker)
		return err
	}
	if c.history.Add(text, result) {
		c.log.Debug("recorded", "expr", text, "result", result)
	}
	c.buf.Set(result)
	return nil
}
