// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math"

type unaryFn func(float64) float64

type binaryFn func(float64, float64) float64

// UnaryOps and BinaryOps hold the operators the grammar admits,
// indexed by the text that spells them.
var (
	UnaryOps  map[string]unaryFn
	BinaryOps map[string]binaryFn
)

func Unary(opName string, v float64) float64 {
	fn := UnaryOps[opName]
	if fn == nil {
		Errorf(Malformed, "unary operator %q not implemented", opName)
	}
	return fn(v)
}

func Binary(u float64, opName string, v float64) float64 {
	fn := BinaryOps[opName]
	if fn == nil {
		Errorf(Malformed, "binary operator %q not implemented", opName)
	}
	return fn(u, v)
}

func init() {
	UnaryOps = map[string]unaryFn{
		"+": func(v float64) float64 { return v },
		"-": func(v float64) float64 { return -v },
	}

	mul := func(u, v float64) float64 { return u * v }
	BinaryOps = map[string]binaryFn{
		"+": func(u, v float64) float64 { return u + v },
		"-": func(u, v float64) float64 { return u - v },
		"*": mul,
		"x": mul,
		// Division by zero yields an infinity, caught as a non-finite result.
		"/": func(u, v float64) float64 { return u / v },
		"^": math.Pow,
	}
}
