// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns the tokens of an arithmetic expression into a
// value.Expr. The grammar admits numbers, the operators + - * x / ^,
// postfix % on numbers and parentheses; anything else is malformed.
package parse // import "robpike.io/keypad/parse"

import (
	"fmt"
	"strings"

	"robpike.io/keypad/config"
	"robpike.io/keypad/scan"
	"robpike.io/keypad/value"
)

// tree formats an expression in an unambiguous form for debugging.
// It generates the output for )debug parse.
func tree(e interface{}) string {
	switch e := e.(type) {
	case value.Number:
		return fmt.Sprintf("<num %s>", e.Text)
	case value.Percent:
		return fmt.Sprintf("<pct %s>", e.Number.Text)
	case *value.UnaryExpr:
		return fmt.Sprintf("(%s %s)", e.Op, tree(e.Right))
	case *value.BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", tree(e.Left), e.Op, tree(e.Right))
	default:
		return fmt.Sprintf("%T", e)
	}
}

// Parser stores the state for the parser.
type Parser struct {
	conf     *config.Config
	scanner  *scan.Scanner
	tokens   []scan.Token    // Points to tokenBuf.
	tokenBuf [100]scan.Token // Reusable.
}

// NewParser returns a new parser that will read from the scanner.
func NewParser(conf *config.Config, scanner *scan.Scanner) *Parser {
	return &Parser{
		conf:    conf,
		scanner: scanner,
	}
}

// Parse is a convenience wrapper that scans and parses the text.
// Like the Parser methods, it panics with a value.Error on bad input.
func Parse(conf *config.Config, text string) value.Expr {
	return NewParser(conf, scan.New(conf, text)).Expr()
}

func (p *Parser) next() scan.Token {
	tok := p.peek()
	if tok.Type != scan.EOF {
		p.tokens = p.tokens[1:]
	}
	return tok
}

func (p *Parser) peek() scan.Token {
	if len(p.tokens) == 0 {
		return scan.Token{Type: scan.EOF, Text: "EOF"}
	}
	return p.tokens[0]
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.tokens = p.tokenBuf[:0]
	value.Errorf(value.Malformed, format, args...)
}

// readTokens reads all the tokens of the input before parsing.
// A scanning error stops everything.
func (p *Parser) readTokens() {
	p.tokens = p.tokenBuf[:0]
	for {
		tok := p.scanner.Next()
		switch tok.Type {
		case scan.Error:
			p.errorf("%s", tok.Text)
		case scan.EOF:
			return
		}
		p.tokens = append(p.tokens, tok)
	}
}

// Expr parses the whole input as a single expression.
// An empty input is an error; callers that want to treat it as a
// no-op must check first.
func (p *Parser) Expr() value.Expr {
	p.readTokens()
	if len(p.tokens) == 0 {
		p.errorf("empty expression")
	}
	expr := p.expr()
	if tok := p.peek(); tok.Type != scan.EOF {
		p.errorf("unexpected %q at offset %d", tok.Text, tok.Offset)
	}
	if p.conf.Debug("parse") {
		fmt.Fprintln(p.conf.Output(), tree(expr))
	}
	return expr
}

// expr
//
//	term
//	expr ("+" | "-") term
func (p *Parser) expr() value.Expr {
	expr := p.term()
	for {
		tok := p.peek()
		if tok.Type != scan.Operator || tok.Text != "+" && tok.Text != "-" {
			return expr
		}
		p.next()
		expr = &value.BinaryExpr{
			Op:    tok.Text,
			Left:  expr,
			Right: p.term(),
		}
	}
}

// term
//
//	unary
//	term ("*" | "x" | "/") unary
func (p *Parser) term() value.Expr {
	expr := p.unary()
	for {
		tok := p.peek()
		if tok.Type != scan.Operator || tok.Text != "*" && tok.Text != "x" && tok.Text != "/" {
			return expr
		}
		p.next()
		expr = &value.BinaryExpr{
			Op:    tok.Text,
			Left:  expr,
			Right: p.unary(),
		}
	}
}

// unary
//
//	("+" | "-") unary
//	power
func (p *Parser) unary() value.Expr {
	tok := p.peek()
	if tok.Type == scan.Operator && (tok.Text == "+" || tok.Text == "-") {
		p.next()
		return &value.UnaryExpr{
			Op:    tok.Text,
			Right: p.unary(),
		}
	}
	return p.power()
}

// power
//
//	postfix
//	postfix "^" unary
//
// Exponentiation is right associative: 2^3^2 is 2^9. The exponent may
// carry a sign, as in 2^-1.
func (p *Parser) power() value.Expr {
	expr := p.postfix()
	tok := p.peek()
	if tok.Type != scan.Operator || tok.Text != "^" {
		return expr
	}
	p.next()
	return &value.BinaryExpr{
		Op:    tok.Text,
		Left:  expr,
		Right: p.unary(),
	}
}

// postfix
//
//	number
//	number "%"
//	"(" expr ")"
func (p *Parser) postfix() value.Expr {
	tok := p.next()
	switch tok.Type {
	case scan.Number:
		num, err := value.Parse(tok.Text)
		if err != nil {
			panic(err)
		}
		if p.peek().Type == scan.Percent {
			// Both sides of a decimal point need digits: not 5.% or .5%.
			if strings.HasPrefix(tok.Text, ".") || strings.HasSuffix(tok.Text, ".") {
				p.errorf("%% needs digits around the point in %q", tok.Text)
			}
			p.next()
			return value.Percent{Number: num}
		}
		return num
	case scan.LeftParen:
		expr := p.expr()
		if tok := p.next(); tok.Type != scan.RightParen {
			p.errorf("missing right parenthesis; got %q", tok.Text)
		}
		if p.peek().Type == scan.Percent {
			p.errorf("%% must follow a number")
		}
		return expr
	case scan.EOF:
		p.errorf("unexpected end of expression")
	case scan.Percent:
		p.errorf("%% must follow a number")
	}
	p.errorf("expected operand; found %q", tok.Text)
	panic("not reached")
}
