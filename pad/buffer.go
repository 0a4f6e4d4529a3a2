// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pad implements the display of the keypad: the text being
// typed and the editing actions that change it.
package pad // import "robpike.io/keypad/pad"

import (
	"strings"
	"unicode/utf8"
)

// ErrorMarker is the display after a failed evaluation.
const ErrorMarker = "Error"

const (
	// Symbols lists every character that may be appended to the display.
	Symbols = "0123456789.+-x/*^%"
	// operators may not be followed by a binaryOp.
	operators = "+-x/*^"
	// binaryOps may not start the display or follow an operator.
	// Minus is absent so that negative numbers can be typed.
	binaryOps = "+x/*^"
)

// Buffer is the text on the display. The zero Buffer is empty.
//
// Buffer maintains these properties as characters are appended:
// the text never starts with an operator other than '-', and an
// operator other than '-' never follows another operator.
type Buffer struct {
	text string
}

func (b *Buffer) String() string {
	return b.text
}

// Set replaces the display wholesale, as after an evaluation.
func (b *Buffer) Set(s string) {
	b.text = s
}

// IsError reports whether the display shows the error marker.
func (b *Buffer) IsError() bool {
	return b.text == ErrorMarker
}

// Append adds the character to the display and reports whether the
// display changed. The character is rejected if it is not in Symbols,
// or if it is an operator other than '-' and the display is empty or
// ends with an operator. A rejected character leaves the display
// unchanged, except that a displayed error is cleared by any symbol.
func (b *Buffer) Append(r rune) bool {
	if !strings.ContainsRune(Symbols, r) {
		return false
	}
	cleared := b.IsError()
	if cleared {
		b.text = ""
	}
	if strings.ContainsRune(binaryOps, r) {
		if b.text == "" {
			return cleared
		}
		last, _ := utf8.DecodeLastRuneInString(b.text)
		if strings.ContainsRune(operators, last) {
			return false
		}
	}
	b.text += string(r)
	return true
}

// Clear empties the display.
func (b *Buffer) Clear() {
	b.text = ""
}

// Backspace removes the last character, if any.
func (b *Buffer) Backspace() {
	_, size := utf8.DecodeLastRuneInString(b.text)
	b.text = b.text[:len(b.text)-size]
}
