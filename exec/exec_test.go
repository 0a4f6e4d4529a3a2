// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"robpike.io/keypad/config"
	"robpike.io/keypad/pad"
	"robpike.io/keypad/value"
)

// press types the symbols one at a time.
func press(c *Context, symbols string) {
	for _, r := range symbols {
		if !c.Press(string(r)) {
			panic(fmt.Sprintf("unknown symbol %q", r))
		}
	}
}

func TestEvaluate(t *testing.T) {
	var tests = []struct {
		keys    string
		display string
	}{
		{"2+2=", "4"},
		{"50%=", "0.5"},
		{"2^3=", "8"},
		{"2^3^2=", "512"},
		{"200x10%=", "20"},
		{"1+2x3=", "7"},
		{"7/2=", "3.5"},
		{"5--3=", "8"},
		{"-2^2=", "-4"},
		{"2^-1=", "0.5"},
		{"0.1+0.2=", "0.30000000000000004"},
		{"1/3=", "0.3333333333333333"},
		{"10^21=", "1e+21"},
		{"10^-7=", "1e-7"},
		{"0x-1=", "0"},
		{"5/0=", "Error"},
		{"0/0=", "Error"},
		{"10^400=", "Error"},
		{"3+=", "Error"},
		{"3.=", "Error"},
		{"3-=", "Error"},
		{"10%3=", "Error"},
		{"5.%=", "Error"},
		{".5%=", "Error"},
		{"1.2.3=", "Error"},
		{".=", "Error"},
		{"=", ""},
		{"2+2=+3=", "7"},
		{"2+2=5", "45"},
	}
	var conf config.Config
	for _, test := range tests {
		c := NewContext(&conf, nil)
		press(c, test.keys)
		if got := c.Display(); got != test.display {
			t.Errorf("%q: display %q; want %q", test.keys, got, test.display)
		}
	}
}

func TestHandleAction(t *testing.T) {
	var conf config.Config
	c := NewContext(&conf, nil)
	for _, r := range "2+2" {
		c.HandleAction(pad.AppendAction(r))
	}
	display, hist := c.HandleAction(pad.Action{Kind: pad.Evaluate})
	if display != "4" {
		t.Errorf("display %q; want %q", display, "4")
	}
	want := []string{"2+2 = 4"}
	if !reflect.DeepEqual(hist, want) {
		t.Errorf("history %q; want %q", hist, want)
	}
	display, _ = c.HandleAction(pad.Action{Kind: pad.Backspace})
	if display != "" {
		t.Errorf("after backspace display %q; want empty", display)
	}
	c.HandleAction(pad.AppendAction('9'))
	display, _ = c.HandleAction(pad.Action{Kind: pad.Clear})
	if display != "" {
		t.Errorf("after clear display %q; want empty", display)
	}
}

func TestErrorLeavesHistory(t *testing.T) {
	var conf config.Config
	c := NewContext(&conf, nil)
	press(c, "2+2=")
	press(c, "5/0=")
	if !c.IsError() {
		t.Fatalf("display %q; want error", c.Display())
	}
	want := []string{"2+2 = 4"}
	if got := c.History(); !reflect.DeepEqual(got, want) {
		t.Errorf("history %q; want %q", got, want)
	}
	// Typing clears the error.
	press(c, "7")
	if c.Display() != "7" {
		t.Errorf("display %q after error; want %q", c.Display(), "7")
	}
}

func TestHistoryDedup(t *testing.T) {
	var conf config.Config
	c := NewContext(&conf, nil)
	press(c, "2+2=C3+1=C")
	want := []string{"2+2 = 4"}
	if got := c.History(); !reflect.DeepEqual(got, want) {
		t.Errorf("history %q; want %q", got, want)
	}
}

func TestHistoryCapacity(t *testing.T) {
	var conf config.Config
	c := NewContext(&conf, nil)
	for i := 1; i <= 11; i++ {
		press(c, fmt.Sprintf("C%d+0=", i))
	}
	hist := c.History()
	if len(hist) != 10 {
		t.Fatalf("history has %d entries; want 10", len(hist))
	}
	if hist[0] != "11+0 = 11" || hist[9] != "2+0 = 2" {
		t.Errorf("history %q", hist)
	}
}

func TestReconfigure(t *testing.T) {
	var conf config.Config
	c := NewContext(&conf, nil)
	for i := 1; i <= 5; i++ {
		press(c, fmt.Sprintf("C%d=", i))
	}
	conf.SetHistory(3)
	c.Reconfigure()
	want := []string{"5 = 5", "4 = 4", "3 = 3"}
	if got := c.History(); !reflect.DeepEqual(got, want) {
		t.Errorf("history %q; want %q", got, want)
	}
}

func TestPressCustomKeys(t *testing.T) {
	var conf config.Config
	conf.SetKeys(config.Keys{Clear: "AC", Evaluate: "enter"})
	c := NewContext(&conf, nil)
	for _, s := range []string{"6", "x", "7", "enter"} {
		if !c.Press(s) {
			t.Fatalf("Press(%q) not recognized", s)
		}
	}
	if c.Display() != "42" {
		t.Errorf("display %q; want %q", c.Display(), "42")
	}
	if c.Press("=") {
		t.Error("Press(\"=\") recognized with custom keys")
	}
	c.Press("AC")
	if c.Display() != "" {
		t.Errorf("display %q after clear", c.Display())
	}
}

func TestEvalErrorKinds(t *testing.T) {
	var tests = []struct {
		text string
		kind value.Kind
	}{
		{"3+", value.Malformed},
		{"3^", value.Malformed},
		{"1.", value.Malformed},
		{"2+a", value.Malformed},
		{"(1", value.Malformed},
		{"1/0", value.NonFinite},
		{"0/0", value.NonFinite},
		{"1e999", value.NonFinite},
	}
	var conf config.Config
	for _, test := range tests {
		_, err := Eval(&conf, test.text)
		var verr value.Error
		if !errors.As(err, &verr) {
			t.Errorf("Eval(%q): error %v; want value.Error", test.text, err)
			continue
		}
		if verr.Kind != test.kind {
			t.Errorf("Eval(%q): %s; want %s", test.text, verr.Kind, test.kind)
		}
	}
}

func TestEvalParens(t *testing.T) {
	var conf config.Config
	got, err := Eval(&conf, "(1+2)*(3+4)")
	if err != nil || got != "21" {
		t.Errorf("Eval = %q, %v; want 21", got, err)
	}
}

func TestEvalFormat(t *testing.T) {
	var conf config.Config
	conf.SetFormat("%.2f")
	got, err := Eval(&conf, "1/3")
	if err != nil || got != "0.33" {
		t.Errorf("Eval = %q, %v; want 0.33", got, err)
	}
}

func TestLogging(t *testing.T) {
	var conf config.Config
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := NewContext(&conf, logger)
	press(c, "1/0=")
	if !strings.Contains(buf.String(), "evaluation failed") {
		t.Errorf("log does not report failure:\n%s", buf.String())
	}
}
