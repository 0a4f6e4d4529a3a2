// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"robpike.io/keypad/config"
	"robpike.io/keypad/exec"
	"robpike.io/keypad/run"
)

const verbose = false

// Each file in testdata holds examples: lines of input, then the
// expected output indented by a tab. Files named *_fail.keys must
// report an error on every example.
func TestAll(t *testing.T) {
	var err error
	check := func() {
		if err != nil {
			t.Fatal(err)
		}
	}
	names, err := filepath.Glob(filepath.Join("testdata", "*.keys"))
	check()
	if len(names) == 0 {
		t.Fatal("no test files")
	}
	for _, path := range names {
		t.Log(path)
		var data []byte
		data, err = os.ReadFile(path)
		check()
		lines := strings.Split(string(data), "\n")
		// Will have a trailing empty string.
		if len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		lineNum := 1
		errCount := 0
		for len(lines) > 0 {
			// Assemble the input to one example.
			input, output, length := getText(lines)
			if input == nil {
				break
			}
			if verbose {
				fmt.Printf("%s:%d: %s\n", path, lineNum, input)
			}
			if !runTest(t, path, lineNum, input, output) {
				errCount++
				if errCount > 3 {
					t.Fatal("too many errors")
				}
			}
			lines = lines[length:]
			lineNum += length
		}
	}
}

func runTest(t *testing.T, name string, lineNum int, input, output []string) bool {
	shouldFail := strings.HasSuffix(name, "_fail.keys")
	var conf config.Config
	in := strings.Join(input, "\n")
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	ok := run.Keypad(exec.NewContext(&conf, nil), in, stdout, stderr)
	if shouldFail {
		if ok || stderr.Len() == 0 {
			t.Errorf("\nexpected execution failure at %s:%d:\n%s", name, lineNum, in)
			return false
		}
		return true
	}
	if !ok || stderr.Len() != 0 {
		t.Errorf("\nexecution failure (%s) at %s:%d:\n%s", stderr, name, lineNum, in)
		return false
	}
	result := strings.Split(stdout.String(), "\n")
	if !equal(result, output) {
		t.Errorf("\n%s:%d:\n\t%s\ngot:\n\t%s\nwant:\n\t%s",
			name, lineNum,
			strings.Join(input, "\n\t"),
			strings.Join(result, "\n\t"),
			strings.Join(output, "\n\t"))
		return false
	}
	return true
}

func equal(a, b []string) bool {
	// Split leaves an empty trailing line.
	if len(a) > 0 && a[len(a)-1] == "" {
		a = a[:len(a)-1]
	}
	if len(a) != len(b) {
		return false
	}
	for i, s := range a {
		if strings.TrimSpace(s) != strings.TrimSpace(b[i]) {
			return false
		}
	}
	return true
}

func getText(lines []string) (input, output []string, length int) {
	// Skip blank and initial comment lines.
	for _, line := range lines {
		if len(line) > 0 && !strings.HasPrefix(line, "#") {
			break
		}
		length++
	}

	// Input ends at tab-indented line.
	for _, line := range lines[length:] {
		line = strings.TrimRight(line, " \t")
		if strings.HasPrefix(line, "\t") {
			break
		}
		input = append(input, line)
		length++
	}

	// Output ends at non-blank, non-tab-indented line.
	// Indented "#" is expected blank line in output.
	for _, line := range lines[length:] {
		line = strings.TrimRight(line, " \t")
		if line != "" && !strings.HasPrefix(line, "\t") {
			break
		}
		output = append(output, strings.TrimPrefix(line, "\t"))
		length++
	}
	for len(output) > 0 && output[len(output)-1] == "" {
		output = output[:len(output)-1]
	}
	for i, line := range output {
		if line == "#" {
			output[i] = ""
		}
	}

	return // Will return nil if no more tests exist.
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"debug", "info", "warn", "error"} {
		if _, err := parseLevel(s); err != nil {
			t.Errorf("parseLevel(%q): %v", s, err)
		}
	}
	if _, err := parseLevel("loud"); err == nil {
		t.Error("parseLevel accepted \"loud\"")
	}
}

func TestApplyFlagsFormat(t *testing.T) {
	defer flag.Set("format", "")
	var c config.Config
	flag.Set("format", "%d")
	if err := applyFlags(&c); err == nil {
		t.Errorf("-format %%d accepted")
	}
	if c.Format() != "" {
		t.Errorf("format %q after bad flag; want empty", c.Format())
	}
	flag.Set("format", "%.3f")
	if err := applyFlags(&c); err != nil {
		t.Fatal(err)
	}
	if c.Format() != "%.3f" {
		t.Errorf("format %q; want %%.3f", c.Format())
	}
}
