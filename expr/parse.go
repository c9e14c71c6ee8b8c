// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse reads a rational expression.
//
// Grammar (whitespace ignored):
//
//	expr   := term (('+' | '-') term)*
//	term   := unary (('*' | '/') unary)*
//	unary  := ('+' | '-') unary | power
//	power  := atom ('^' unary)?        exponent must evaluate to an integer constant
//	atom   := number | symbol | '(' expr ')'
//	symbol := letter (letter | digit | '_' | '{' | '}' | '\'' | '\\')*
//
// Numbers accept decimal and scientific notation and are converted exactly:
// "0.15" is 3/20 and "4.9e11" is 490000000000.
func Parse(src string) (Rat, error) {
	p := &parser{src: src}
	p.next()
	r, err := p.expr()
	if err != nil {
		return Rat{}, err
	}
	if p.tok.kind != tokEOF {
		return Rat{}, p.errorf("unexpected %q", p.tok.text)
	}

	return r, nil
}

// MustParse is Parse for trusted literals; it panics on error.
func MustParse(src string) Rat {
	r, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseSubst parses a symbol→expression table into a Subst.
func ParseSubst(table map[string]string) (Subst, error) {
	out := make(Subst, len(table))
	for k, v := range table {
		if !isSymbol(k) {
			return nil, fmt.Errorf("%w: %q is not a symbol", ErrSyntax, k)
		}
		r, err := Parse(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out[Symbol(k)] = r
	}

	return out, nil
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokNum
	tokSym
	tokOp
)

type token struct {
	kind tokKind
	text string
	pos  int
}

type parser struct {
	src string
	off int
	tok token
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at %d: %s", ErrSyntax, p.tok.pos, fmt.Sprintf(format, args...))
}

func isSymbolStart(r rune) bool { return unicode.IsLetter(r) || r == '\\' }

func isSymbolRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("_{}'\\", r)
}

func isSymbol(s string) bool {
	for i, r := range s {
		if (i == 0 && !isSymbolStart(r)) || !isSymbolRune(r) {
			return false
		}
	}
	return s != ""
}

// next scans the following token into p.tok.
func (p *parser) next() {
	for p.off < len(p.src) && unicode.IsSpace(rune(p.src[p.off])) {
		p.off++
	}
	start := p.off
	if p.off >= len(p.src) {
		p.tok = token{kind: tokEOF, pos: start}
		return
	}
	c, size := utf8.DecodeRuneInString(p.src[p.off:])
	switch {
	case unicode.IsDigit(c) || c == '.':
		for p.off < len(p.src) && (unicode.IsDigit(rune(p.src[p.off])) || p.src[p.off] == '.') {
			p.off++
		}
		// Exponent part: e/E, optional sign, digits.
		if p.off < len(p.src) && (p.src[p.off] == 'e' || p.src[p.off] == 'E') {
			j := p.off + 1
			if j < len(p.src) && (p.src[j] == '+' || p.src[j] == '-') {
				j++
			}
			if j < len(p.src) && unicode.IsDigit(rune(p.src[j])) {
				for j < len(p.src) && unicode.IsDigit(rune(p.src[j])) {
					j++
				}
				p.off = j
			}
		}
		p.tok = token{kind: tokNum, text: p.src[start:p.off], pos: start}
	case isSymbolStart(c):
		for _, r := range p.src[p.off:] {
			if !isSymbolRune(r) {
				break
			}
			p.off += len(string(r))
		}
		p.tok = token{kind: tokSym, text: p.src[start:p.off], pos: start}
	default:
		// Operators and foreign runes alike; the grammar rejects the latter.
		p.off += size
		p.tok = token{kind: tokOp, text: string(c), pos: start}
	}
}

func (p *parser) isOp(op string) bool { return p.tok.kind == tokOp && p.tok.text == op }

func (p *parser) expr() (Rat, error) {
	left, err := p.term()
	if err != nil {
		return Rat{}, err
	}
	for p.isOp("+") || p.isOp("-") {
		op := p.tok.text
		p.next()
		right, err := p.term()
		if err != nil {
			return Rat{}, err
		}
		if op == "+" {
			left = left.Add(right)
		} else {
			left = left.Sub(right)
		}
	}

	return left, nil
}

func (p *parser) term() (Rat, error) {
	left, err := p.unary()
	if err != nil {
		return Rat{}, err
	}
	for p.isOp("*") || p.isOp("/") {
		op := p.tok.text
		pos := p.tok.pos
		p.next()
		right, err := p.unary()
		if err != nil {
			return Rat{}, err
		}
		if op == "*" {
			left = left.Mul(right)
			continue
		}
		if left, err = left.Quo(right); err != nil {
			return Rat{}, fmt.Errorf("at %d: %w", pos, err)
		}
	}

	return left, nil
}

func (p *parser) unary() (Rat, error) {
	switch {
	case p.isOp("-"):
		p.next()
		r, err := p.unary()
		return r.Neg(), err
	case p.isOp("+"):
		p.next()
		return p.unary()
	}

	return p.power()
}

func (p *parser) power() (Rat, error) {
	base, err := p.atom()
	if err != nil {
		return Rat{}, err
	}
	if !p.isOp("^") {
		return base, nil
	}
	pos := p.tok.pos
	p.next()
	e, err := p.unary()
	if err != nil {
		return Rat{}, err
	}
	c, ok := e.IsConst()
	if !ok || !c.IsInt() || !c.Num().IsInt64() {
		return Rat{}, fmt.Errorf("%w at %d: %s", ErrExponent, pos, e)
	}
	out, err := base.Pow(int(c.Num().Int64()))
	if err != nil {
		return Rat{}, fmt.Errorf("at %d: %w", pos, err)
	}

	return out, nil
}

func (p *parser) atom() (Rat, error) {
	switch p.tok.kind {
	case tokNum:
		c, err := parseDecimal(p.tok.text)
		if err != nil {
			return Rat{}, p.errorf("bad number %q", p.tok.text)
		}
		p.next()
		return RatConst(c), nil
	case tokSym:
		s := Symbol(p.tok.text)
		p.next()
		return Sym(s), nil
	case tokOp:
		if p.tok.text == "(" {
			p.next()
			r, err := p.expr()
			if err != nil {
				return Rat{}, err
			}
			if !p.isOp(")") {
				return Rat{}, p.errorf("missing )")
			}
			p.next()
			return r, nil
		}
		return Rat{}, p.errorf("unexpected %q", p.tok.text)
	}

	return Rat{}, p.errorf("unexpected end of input")
}

// parseDecimal converts a decimal/scientific literal into an exact rational.
func parseDecimal(s string) (*big.Rat, error) {
	mant, exp := s, 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.Atoi(s[i+1:])
		if err != nil || e > maxExponent || e < -maxExponent {
			return nil, ErrSyntax
		}
		mant, exp = s[:i], e
	}
	r, ok := new(big.Rat).SetString(mant)
	if !ok {
		return nil, ErrSyntax
	}
	if exp != 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs(exp))), nil)
		if exp > 0 {
			r.Mul(r, new(big.Rat).SetInt(scale))
		} else {
			r.Quo(r, new(big.Rat).SetInt(scale))
		}
	}

	return r, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
