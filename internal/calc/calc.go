// Package calc evaluates the restricted arithmetic grammar of the scratch
// calculator: numbers, + - * /, right-associative ^, parentheses, prefix √,
// postfix % (divide by 100) and unary minus. Comma is accepted as decimal
// separator and adjacency like 2(3+1) or (1+2)(3) multiplies implicitly.
//
// This is a plain recursive-descent parser; user input is never handed to
// any dynamic evaluation facility.
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokPercent
	tokSqrt
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind  tokenKind
	value float64
	pos   int
}

// Eval parses and evaluates the expression.
func Eval(expr string) (float64, error) {
	tokens, err := lex(expr)
	if err != nil {
		return 0, err
	}
	p := &parser{tokens: tokens}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.peek().kind != tokEOF {
		return 0, fmt.Errorf("unexpected symbol at position %d", p.peek().pos)
	}
	return v, nil
}

func lex(expr string) ([]token, error) {
	var tokens []token
	runes := []rune(expr)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case isSpace(r):
			i++
		case r >= '0' && r <= '9' || r == '.' || r == ',':
			start := i
			var digits strings.Builder
			for {
				for i < len(runes) && (runes[i] >= '0' && runes[i] <= '9' || runes[i] == '.' || runes[i] == ',') {
					digits.WriteRune(runes[i])
					i++
				}
				// Spaces between digit runs are grouping separators, so
				// "12 345,50" is one number, as in quiz.ParseNumber.
				j := i
				for j < len(runes) && isSpace(runes[j]) {
					j++
				}
				if j == i || j >= len(runes) || runes[j] < '0' || runes[j] > '9' {
					break
				}
				i = j
			}
			text := strings.ReplaceAll(digits.String(), ",", ".")
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q at position %d", text, start)
			}
			tokens = append(tokens, token{kind: tokNumber, value: v, pos: start})
		case r == '+':
			tokens = append(tokens, token{kind: tokPlus, pos: i})
			i++
		case r == '-' || r == '−':
			tokens = append(tokens, token{kind: tokMinus, pos: i})
			i++
		case r == '*' || r == '×':
			tokens = append(tokens, token{kind: tokStar, pos: i})
			i++
		case r == '/' || r == '÷':
			tokens = append(tokens, token{kind: tokSlash, pos: i})
			i++
		case r == '^':
			tokens = append(tokens, token{kind: tokCaret, pos: i})
			i++
		case r == '%':
			tokens = append(tokens, token{kind: tokPercent, pos: i})
			i++
		case r == '√':
			tokens = append(tokens, token{kind: tokSqrt, pos: i})
			i++
		case r == '(':
			tokens = append(tokens, token{kind: tokLParen, pos: i})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokRParen, pos: i})
			i++
		default:
			return nil, fmt.Errorf("unknown symbol %q at position %d", string(r), i)
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(runes)})
	return tokens, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == ' ' || r == ' '
}

type parser struct {
	tokens []token
	idx    int
}

func (p *parser) peek() token {
	return p.tokens[p.idx]
}

func (p *parser) advance() token {
	t := p.tokens[p.idx]
	if t.kind != tokEOF {
		p.idx++
	}
	return t
}

// parseExpr handles + and -.
func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.advance()
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left += right
		case tokMinus:
			p.advance()
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

// parseTerm handles * and /, plus implicit multiplication when a value is
// directly followed by a parenthesis, a √ or a number.
func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			left *= right
		case tokSlash:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			left /= right
		case tokLParen, tokSqrt, tokNumber:
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			left *= right
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	if p.peek().kind == tokMinus {
		p.advance()
		v, err := p.parseUnary()
		return -v, err
	}
	return p.parsePower()
}

// parsePower handles right-associative ^.
func (p *parser) parsePower() (float64, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return 0, err
	}
	if p.peek().kind == tokCaret {
		p.advance()
		exp, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	}
	return base, nil
}

// parsePostfix applies any number of trailing % operators.
func (p *parser) parsePostfix() (float64, error) {
	v, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	for p.peek().kind == tokPercent {
		p.advance()
		v /= 100
	}
	return v, nil
}

func (p *parser) parsePrimary() (float64, error) {
	t := p.peek()
	switch t.kind {
	case tokNumber:
		p.advance()
		return t.value, nil
	case tokSqrt:
		p.advance()
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return math.Sqrt(v), nil
	case tokLParen:
		p.advance()
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek().kind != tokRParen {
			return 0, fmt.Errorf("missing closing parenthesis at position %d", p.peek().pos)
		}
		p.advance()
		return v, nil
	case tokEOF:
		return 0, fmt.Errorf("unexpected end of expression")
	default:
		return 0, fmt.Errorf("unexpected symbol at position %d", t.pos)
	}
}
