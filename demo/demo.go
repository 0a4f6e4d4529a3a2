// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo implements the I/O for running the -demo flag.
// The script for the demo is in demo.keys in this directory.
// Its content is embedded in this source file.
package demo // import "robpike.io/keypad/demo"

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	_ "embed"
)

//go:embed demo.keys
var demoText []byte

// Text returns the input text for the standard demo.
func Text() string {
	return string(demoText)
}

// Run runs the demo. The arguments are the user's input, a Writer used
// to deliver button presses to the keypad, and a Writer for the output.
// It assumes that the keypad is writing to the same output. Comment
// lines of the script are shown to the user; other lines are shown and
// delivered. When the user hits a blank line, the script advances to the
// next row of presses. If the user's input line has text, that is
// delivered instead and the script does not advance.
// A nil userInput ignores the user and just runs the script.
func Run(userInput io.Reader, toPad io.Writer, output io.Writer) error {
	text := demoText // Don't overwrite the global!
	var scan *bufio.Scanner
	if userInput != nil {
		scan = bufio.NewScanner(userInput)
	}
	nextLine := func() (line []byte) {
		nl := bytes.IndexByte(text, '\n')
		if nl < 0 { // EOF or incomplete line.
			return nil
		}
		line, text = text[:nl+1], text[nl+1:]
		return line
	}
	// Show the comments leading to the first row, with instructions,
	// before accepting user input.
	pending := nextRow(nextLine, output)
	for userInput == nil || scan.Scan() {
		if userInput != nil && strings.TrimSpace(scan.Text()) != "" {
			// User typed a non-empty line; send that.
			line := strings.TrimSpace(scan.Text())
			if line == "quit" {
				break
			}
			if _, err := io.WriteString(toPad, line+"\n"); err != nil {
				return err
			}
			continue
		}
		if pending == nil {
			break
		}
		output.Write(pending)
		if _, err := toPad.Write(pending); err != nil {
			return err
		}
		pending = nextRow(nextLine, output)
	}
	if scan == nil {
		return nil
	}
	return scan.Err()
}

// nextRow prints the comment lines of the script up to the next row of
// presses, which it returns. It returns nil at the end of the script.
func nextRow(nextLine func() []byte, output io.Writer) []byte {
	for {
		line := nextLine()
		if line == nil || !bytes.HasPrefix(line, []byte("#")) {
			return line
		}
		output.Write(line)
	}
}
