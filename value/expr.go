// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "fmt"

// Number is a numeric literal. Text is kept for printing.
type Number struct {
	Text string
	X    float64
}

func (n Number) ProgString() string {
	return n.Text
}

func (n Number) Eval() float64 {
	return n.X
}

// Percent is a number literal followed by %. It evaluates to the number
// divided by 100.
type Percent struct {
	Number Number
}

func (p Percent) ProgString() string {
	return fmt.Sprintf("(%s/100)", p.Number.Text)
}

func (p Percent) Eval() float64 {
	return p.Number.X / 100
}

type UnaryExpr struct {
	Op    string
	Right Expr
}

func (u *UnaryExpr) ProgString() string {
	return fmt.Sprintf("%s%s", u.Op, u.Right.ProgString())
}

func (u *UnaryExpr) Eval() float64 {
	return Unary(u.Op, u.Right.Eval())
}

type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (b *BinaryExpr) ProgString() string {
	var left string
	if IsCompound(b.Left) {
		left = fmt.Sprintf("(%s)", b.Left.ProgString())
	} else {
		left = b.Left.ProgString()
	}
	return fmt.Sprintf("%s %s %s", left, b.Op, b.Right.ProgString())
}

func (b *BinaryExpr) Eval() float64 {
	// Evaluate left to right.
	u := b.Left.Eval()
	return Binary(u, b.Op, b.Right.Eval())
}

// IsCompound reports whether the item is a non-trivial expression tree,
// one that may require parentheses around it when printed to maintain
// correct evaluation order.
func IsCompound(x interface{}) bool {
	switch x.(type) {
	case Number, Percent:
		return false
	case *BinaryExpr, *UnaryExpr:
		return true
	default:
		Errorf(Evaluation, "unknown type in IsCompound: %T", x)
	}
	return false
}
