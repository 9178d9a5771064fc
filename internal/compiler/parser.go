// Package compiler turns infix arithmetic source text into a traced
// computation. Expressions support the four operators with the usual
// precedence, parentheses, and reason annotations attached with @:
//
//	1 + 2@"offset"            annotates the leaf 2
//	(1 + 2)@"subtotal" * 3    annotates the sum before it feeds the product
//
// The source is first parsed into a small expression tree, then built
// against a trace.Session; annotations on operators map to the WithReason
// application forms so the reason lands on the node before it escapes.
package compiler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/aretw0/tally/pkg/trace"
)

// Expr is a parsed expression ready to be built into a derivation graph.
type Expr interface {
	// Build allocates the traced computation in the given session and
	// returns the root node.
	Build(s *trace.Session) *trace.Operation
}

type numberExpr struct {
	value  float64
	reason string
}

func (e numberExpr) Build(s *trace.Session) *trace.Operation {
	if e.reason != "" {
		return s.SourceWithReason(e.value, e.reason)
	}
	return s.Source(e.value)
}

type binaryExpr struct {
	op       byte // one of + - * /
	lhs, rhs Expr
	reason   string
}

func (e binaryExpr) Build(s *trace.Session) *trace.Operation {
	lhs := e.lhs.Build(s)
	rhs := e.rhs.Build(s)
	if e.reason != "" {
		switch e.op {
		case '+':
			return lhs.AddWithReason(rhs, e.reason)
		case '-':
			return lhs.SubWithReason(rhs, e.reason)
		case '*':
			return lhs.MulWithReason(rhs, e.reason)
		default:
			return lhs.DivWithReason(rhs, e.reason)
		}
	}
	switch e.op {
	case '+':
		return lhs.Add(rhs)
	case '-':
		return lhs.Sub(rhs)
	case '*':
		return lhs.Mul(rhs)
	default:
		return lhs.Div(rhs)
	}
}

// Parse compiles source text into an expression tree.
func Parse(src string) (Expr, error) {
	p := &parser{src: src}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, fmt.Errorf("unexpected %q at offset %d", p.src[p.pos], p.pos)
	}
	return expr, nil
}

type parser struct {
	src string
	pos int
}

// expr := term (('+'|'-') term)*
func (p *parser) parseExpr() (Expr, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		op, ok := p.peek()
		if !ok || (op != '+' && op != '-') {
			return lhs, nil
		}
		p.pos++
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		lhs = binaryExpr{op: op, lhs: lhs, rhs: rhs}
	}
}

// term := factor (('*'|'/') factor)*
func (p *parser) parseTerm() (Expr, error) {
	lhs, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		op, ok := p.peek()
		if !ok || (op != '*' && op != '/') {
			return lhs, nil
		}
		p.pos++
		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		lhs = binaryExpr{op: op, lhs: lhs, rhs: rhs}
	}
}

// factor := primary ('@' string)?
func (p *parser) parseFactor() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if c, ok := p.peek(); !ok || c != '@' {
		return expr, nil
	}
	p.pos++
	reason, err := p.parseString()
	if err != nil {
		return nil, err
	}
	switch e := expr.(type) {
	case numberExpr:
		e.reason = reason
		return e, nil
	case binaryExpr:
		e.reason = reason
		return e, nil
	}
	return nil, fmt.Errorf("cannot annotate expression at offset %d", p.pos)
}

// primary := '-'? number | '(' expr ')'
func (p *parser) parsePrimary() (Expr, error) {
	p.skipSpace()
	c, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	if c == '-' {
		p.pos++
		expr, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		num := expr.(numberExpr)
		num.value = -num.value
		return num, nil
	}
	if c == '(' {
		p.pos++
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if c, ok := p.peek(); !ok || c != ')' {
			return nil, fmt.Errorf("missing ')' at offset %d", p.pos)
		}
		p.pos++
		return expr, nil
	}
	return p.parseNumber()
}

func (p *parser) parseNumber() (Expr, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' ||
			((c == '+' || c == '-') && p.pos > start && (p.src[p.pos-1] == 'e' || p.src[p.pos-1] == 'E')) {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return nil, fmt.Errorf("expected a number at offset %d", start)
	}
	value, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", p.src[start:p.pos], err)
	}
	return numberExpr{value: value}, nil
}

// parseString reads a double-quoted annotation. Escapes are limited to \"
// and \\.
func (p *parser) parseString() (string, error) {
	p.skipSpace()
	if c, ok := p.peek(); !ok || c != '"' {
		return "", fmt.Errorf(`expected '"' after @ at offset %d`, p.pos)
	}
	p.pos++
	var sb strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '"':
			p.pos++
			return sb.String(), nil
		case '\\':
			if p.pos+1 >= len(p.src) {
				return "", fmt.Errorf("unterminated escape at offset %d", p.pos)
			}
			p.pos++
			sb.WriteByte(p.src[p.pos])
			p.pos++
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return "", fmt.Errorf("unterminated annotation string")
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}
