// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value holds the parsed form of a calculator expression and
// knows how to evaluate and print it.
package value // import "robpike.io/keypad/value"

import (
	"fmt"
	"math"
	"strconv"
)

// Expr is the interface for a parsed expression.
type Expr interface {
	// ProgString returns the unambiguous representation of the
	// expression. It is used for )debug parse.
	ProgString() string

	Eval() float64
}

// Kind says what sort of failure an Error reports.
type Kind int

const (
	Malformed  Kind = iota // Trailing operator or point, or text outside the grammar.
	NonFinite              // Division by zero, overflow, NaN.
	Evaluation             // Anything else.
)

var kindNames = [...]string{
	Malformed:  "malformed expression",
	NonFinite:  "non-finite result",
	Evaluation: "evaluation error",
}

func (k Kind) String() string {
	if 0 <= k && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Error is the type of the panics raised while parsing or evaluating.
// They are recovered by exec.Eval.
type Error struct {
	Kind Kind
	Msg  string
}

func (err Error) Error() string {
	return err.Kind.String() + ": " + err.Msg
}

// Errorf panics with an Error of the given kind.
func Errorf(kind Kind, format string, args ...interface{}) {
	panic(Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
	})
}

// Parse converts the text of a number literal into an expression.
func Parse(text string) (Number, error) {
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// The scanner is lenient; strconv has the final word.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			if !math.IsInf(x, 0) { // Underflow rounds to zero, which is fine.
				return Number{Text: text, X: x}, nil
			}
			return Number{}, Error{NonFinite, fmt.Sprintf("number out of range: %s", text)}
		}
		return Number{}, Error{Malformed, fmt.Sprintf("bad number syntax: %s", text)}
	}
	return Number{Text: text, X: x}, nil
}
