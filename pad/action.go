// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pad

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"robpike.io/keypad/config"
)

// Kind identifies what an Action does.
type Kind int

const (
	Append    Kind = iota // Append Char to the display.
	Clear                 // Empty the display.
	Backspace             // Delete the last character.
	Evaluate              // Compute the display.
)

func (k Kind) String() string {
	switch k {
	case Append:
		return "Append"
	case Clear:
		return "Clear"
	case Backspace:
		return "Backspace"
	case Evaluate:
		return "Evaluate"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Action is a single press of a button or key.
type Action struct {
	Kind Kind
	Char rune // For Append.
}

func (a Action) String() string {
	if a.Kind == Append {
		return fmt.Sprintf("Append(%q)", a.Char)
	}
	return a.Kind.String()
}

// AppendAction returns the action that appends r.
func AppendAction(r rune) Action {
	return Action{Kind: Append, Char: r}
}

// ParseAction returns the action for the button labeled symbol.
// The control labels come from keys; any other label must be a
// single character from Symbols.
func ParseAction(keys config.Keys, symbol string) (Action, bool) {
	switch symbol {
	case keys.Clear:
		return Action{Kind: Clear}, true
	case keys.Backspace:
		return Action{Kind: Backspace}, true
	case keys.Evaluate:
		return Action{Kind: Evaluate}, true
	}
	r, size := utf8.DecodeRuneInString(symbol)
	if size == 0 || size != len(symbol) || !strings.ContainsRune(Symbols, r) {
		return Action{}, false
	}
	return AppendAction(r), true
}

// Key identifies a key on the keyboard, as opposed to a button on the pad.
type Key int

const (
	KeyNone Key = iota
	KeyRune // A printable character.
	KeyEnter
	KeyBackspace
)

// typed lists the characters that append when typed on the keyboard.
// The multiplication key is '*'; 'x' is only on the pad.
const typed = "0123456789+-*/.^%"

// KeyAction returns the action for a keyboard key: Enter evaluates,
// Backspace deletes, c or C clears and the arithmetic characters
// append themselves.
func KeyAction(key Key, r rune) (Action, bool) {
	switch key {
	case KeyEnter:
		return Action{Kind: Evaluate}, true
	case KeyBackspace:
		return Action{Kind: Backspace}, true
	case KeyRune:
		switch {
		case strings.ContainsRune(typed, r):
			return AppendAction(r), true
		case r == 'c' || r == 'C':
			return Action{Kind: Clear}, true
		}
	}
	return Action{}, false
}

// Split breaks a line of button labels into actions, matching the
// control labels in keys before single characters. Spaces are ignored.
// Characters that are not labels are returned in bad.
func Split(keys config.Keys, line string) (actions []Action, bad []rune) {
	controls := []struct {
		label string
		kind  Kind
	}{
		{keys.Clear, Clear},
		{keys.Backspace, Backspace},
		{keys.Evaluate, Evaluate},
	}
Loop:
	for line != "" {
		for _, c := range controls {
			if c.label != "" && strings.HasPrefix(line, c.label) {
				actions = append(actions, Action{Kind: c.kind})
				line = line[len(c.label):]
				continue Loop
			}
		}
		r, size := utf8.DecodeRuneInString(line)
		line = line[size:]
		switch {
		case r == ' ' || r == '\t':
		case strings.ContainsRune(Symbols, r):
			actions = append(actions, AppendAction(r))
		default:
			bad = append(bad, r)
		}
	}
	return actions, bad
}
