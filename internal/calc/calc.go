// Package calc parses and evaluates the arithmetic expressions the
// calculator provider feeds it: + - * / with parentheses, decimal
// literals, standard precedence, and unary minus.
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Eval evaluates expr and returns its value. It returns an error for
// malformed syntax, division by zero, and results that overflow to
// non-finite values. A bare numeric literal is a valid expression that
// evaluates to itself.
func Eval(expr string) (float64, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return 0, fmt.Errorf("empty expression")
	}

	p := &parser{input: []rune(trimmed)}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("unexpected %q at offset %d", string(p.input[p.pos]), p.pos)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("result is not finite")
	}
	return v, nil
}

// Format renders a result the way it should appear as a candidate label:
// no exponent for everyday magnitudes, no trailing zeros.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parser is a recursive-descent evaluator over a rune slice.
//
//	expr   = term { ("+" | "-") term }
//	term   = factor { ("*" | "/") factor }
//	factor = number | "(" expr ")" | "-" factor
type parser struct {
	input []rune
	pos   int
}

func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += rhs
		case '-':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case '/':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseFactor() (float64, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	default:
		return p.parseNumber()
	}
}

func (p *parser) parseNumber() (float64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && (unicode.IsDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
		p.pos++
	}
	if p.pos == start {
		if p.pos < len(p.input) {
			return 0, fmt.Errorf("unexpected %q at offset %d", string(p.input[p.pos]), p.pos)
		}
		return 0, fmt.Errorf("unexpected end of expression")
	}
	v, err := strconv.ParseFloat(string(p.input[start:p.pos]), 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", string(p.input[start:p.pos]))
	}
	return v, nil
}

// peek returns the next non-space rune without consuming it, or zero at
// end of input.
func (p *parser) peek() rune {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(p.input[p.pos]) {
		p.pos++
	}
}
