// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaults(t *testing.T) {
	var c Config
	if got := c.History(); got != DefaultHistory {
		t.Errorf("History() = %d; want %d", got, DefaultHistory)
	}
	if got := c.Keys(); got != DefaultKeys {
		t.Errorf("Keys() = %+v; want %+v", got, DefaultKeys)
	}
	if c.Format() != "" || c.Prompt() != "" {
		t.Errorf("format %q prompt %q; want empty", c.Format(), c.Prompt())
	}
	if c.Output() != os.Stdout || c.ErrOutput() != os.Stderr {
		t.Error("default output streams are not stdout and stderr")
	}
	c.SetKeys(Keys{Backspace: "<"})
	want := Keys{Clear: "C", Backspace: "<", Evaluate: "="}
	if got := c.Keys(); got != want {
		t.Errorf("partial Keys() = %+v; want %+v", got, want)
	}
}

func TestDebugFlags(t *testing.T) {
	var c Config
	c.SetDebug("parse", true)
	c.SetDebug("extra", false)
	if !c.Debug("parse") || c.Debug("tokens") {
		t.Errorf("parse=%t tokens=%t", c.Debug("parse"), c.Debug("tokens"))
	}
	want := []string{"extra", "panic", "parse", "tokens"}
	if got := c.DebugFlags(); !reflect.DeepEqual(got, want) {
		t.Errorf("DebugFlags() = %q; want %q", got, want)
	}
}

const tomlText = `
prompt = "> "
format = "%.2f"
history = 5
debug = ["parse"]

[keys]
backspace = "<"
`

const yamlText = `
prompt: "> "
format: "%.2f"
history: 5
debug: [parse]
keys:
  backspace: "<"
`

func TestDecode(t *testing.T) {
	for _, test := range []struct {
		name, text string
	}{
		{"keypad.toml", tomlText},
		{"keypad.yaml", yamlText},
		{"keypad.YML", yamlText},
	} {
		f, err := Decode(test.name, []byte(test.text))
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		var c Config
		f.Apply(&c)
		if c.Prompt() != "> " || c.Format() != "%.2f" || c.History() != 5 || !c.Debug("parse") {
			t.Errorf("%s: prompt %q format %q history %d parse %t", test.name, c.Prompt(), c.Format(), c.History(), c.Debug("parse"))
		}
		want := Keys{Clear: "C", Backspace: "<", Evaluate: "="}
		if got := c.Keys(); got != want {
			t.Errorf("%s: Keys() = %+v; want %+v", test.name, got, want)
		}
	}
}

func TestApplyKeepsUnsetValues(t *testing.T) {
	var c Config
	c.SetPrompt("$ ")
	c.SetHistory(3)
	f, err := Decode("x.toml", []byte(`format = "%g"`))
	if err != nil {
		t.Fatal(err)
	}
	f.Apply(&c)
	if c.Prompt() != "$ " || c.History() != 3 || c.Format() != "%g" {
		t.Errorf("prompt %q history %d format %q", c.Prompt(), c.History(), c.Format())
	}
	var nilFile *File
	nilFile.Apply(&c) // Must not panic.
}

func TestDecodeErrors(t *testing.T) {
	var tests = []struct {
		name, text string
		parseError bool
	}{
		{"bad.toml", "history = [", true},
		{"bad.yaml", "history: [", true},
		{"neg.toml", "history = -1", true},
		{"verb.toml", `format = "%d"`, true},
		{"verb.yaml", `format: "%s and %s"`, true},
		{"keypad.ini", "history=1", false},
	}
	for _, test := range tests {
		_, err := Decode(test.name, []byte(test.text))
		if err == nil {
			t.Errorf("%s: expected error", test.name)
			continue
		}
		var pe *ParseError
		if errors.As(err, &pe) != test.parseError {
			t.Errorf("%s: ParseError %t; got %v", test.name, test.parseError, err)
		}
		if test.parseError && pe.Path != test.name {
			t.Errorf("%s: error path %q", test.name, pe.Path)
		}
	}
}

func TestCheckFormat(t *testing.T) {
	var tests = []struct {
		format string
		ok     bool
	}{
		{"", true},
		{"%.2f", true},
		{"%g", true},
		{"%8.3e", true},
		{"%d", false},
		{"%s", false},
		{"%f %f", false},
		{"plain", false},
	}
	for _, test := range tests {
		err := CheckFormat(test.format)
		if (err == nil) != test.ok {
			t.Errorf("CheckFormat(%q) = %v; want ok %t", test.format, err, test.ok)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	f, err := Load(filepath.Join(dir, "missing.toml"))
	if f != nil || err != nil {
		t.Errorf("missing file: got %v, %v; want nil, nil", f, err)
	}
	path := filepath.Join(dir, "keypad.toml")
	if err := os.WriteFile(path, []byte(tomlText), 0666); err != nil {
		t.Fatal(err)
	}
	f, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.History == nil || *f.History != 5 {
		t.Errorf("history = %v; want 5", f.History)
	}
}
