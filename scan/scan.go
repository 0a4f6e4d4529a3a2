// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan // import "robpike.io/keypad/scan"

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"robpike.io/keypad/config"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type   Type   // The type of this item.
	Offset int    // The byte offset of the token in the input.
	Text   string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF        Type = iota // zero value so an empty Token is EOF
	Error                  // error occurred; value is text of error
	Number                 // simple number, possibly with exponent
	Operator               // + - * x / ^
	Percent                // '%'
	LeftParen              // '('
	RightParen             // ')'
)

var typeNames = [...]string{
	EOF:        "EOF",
	Error:      "Error",
	Number:     "Number",
	Operator:   "Operator",
	Percent:    "Percent",
	LeftParen:  "LeftParen",
	RightParen: "RightParen",
}

func (t Type) String() string {
	if 0 <= t && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	conf      *config.Config
	input     string // the expression being scanned.
	lastRune  rune   // most recent return from next()
	lastWidth int    // size of that rune
	pos       int    // current position in the input
	start     int    // start position of this item
	token     Token
}

// New creates and returns a new scanner for the expression.
func New(conf *config.Config, input string) *Scanner {
	return &Scanner{
		conf:  conf,
		input: input,
	}
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	if l.pos >= len(l.input) {
		l.lastRune, l.lastWidth = eof, 0
		return eof
	}
	l.lastRune, l.lastWidth = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.lastWidth
	return l.lastRune
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	l.pos -= l.lastWidth
	l.lastWidth = 0
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	text := l.input[l.start:l.pos]
	l.token = Token{t, l.start, text}
	if l.conf.Debug("tokens") {
		fmt.Fprintf(l.conf.Output(), "%d: emit %s\n", l.start, l.token)
	}
	l.start = l.pos
	return nil
}

// accept consumes the next rune if it's from the valid set.
func (l *Scanner) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

// acceptRun consumes a run of runes from the valid set.
// It reports whether it consumed any.
func (l *Scanner) acceptRun(valid string) bool {
	n := 0
	for strings.ContainsRune(valid, l.next()) {
		n++
	}
	l.backup()
	return n > 0
}

// errorf returns an error token and empties the input.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Error, l.start, fmt.Sprintf(format, args...)}
	l.start = len(l.input)
	l.pos = len(l.input)
	return nil
}

// Next returns the next token.
func (l *Scanner) Next() Token {
	l.lastRune = eof
	l.lastWidth = 0
	l.token = Token{EOF, l.pos, "EOF"}
	state := lexAny
	for {
		state = state(l)
		if state == nil {
			return l.token
		}
	}
}

// state functions

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case isSpace(r):
		return lexSpace
	case r == '.' || isDigit(r):
		l.backup()
		return lexNumber
	case isOperator(r):
		return l.emit(Operator)
	case r == '%':
		return l.emit(Percent)
	case r == '(':
		return l.emit(LeftParen)
	case r == ')':
		return l.emit(RightParen)
	default:
		return l.errorf("unrecognized character: %#U", r)
	}
}

// lexSpace scans a run of space characters.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	// Skips over the pending input.
	l.start = l.pos
	return lexAny
}

// lexNumber scans a decimal number with optional fraction and exponent.
// Results too large or small for positional notation print with an
// exponent (1e+21), and such a result may be the start of the next
// expression, so exponents must scan too. Signs are handled by the parser.
func lexNumber(l *Scanner) stateFn {
	digits := l.acceptRun(decimal)
	if l.accept(".") {
		if l.acceptRun(decimal) {
			digits = true
		}
	}
	if !digits {
		return l.errorf("bad number syntax: %s", l.input[l.start:l.pos])
	}
	if l.accept("eE") {
		l.accept("+-")
		if !l.acceptRun(decimal) {
			return l.errorf("bad number syntax: %s", l.input[l.start:l.pos])
		}
	}
	// Next thing mustn't be part of a number.
	if r := l.peek(); r == '.' || isDigit(r) || r == 'e' || r == 'E' {
		l.next()
		return l.errorf("bad number syntax: %s", l.input[l.start:l.pos])
	}
	return l.emit(Number)
}

const decimal = "0123456789"

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isOperator reports whether r is one of the arithmetic operators.
// The letter x is multiplication, as on the keypad.
func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', 'x', '/', '^':
		return true
	}
	return false
}
