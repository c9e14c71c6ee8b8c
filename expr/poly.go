// SPDX-License-Identifier: MIT

package expr

import (
	"math/big"
	"sort"
	"strings"
)

// term is a single coefficient*monomial; coef is never zero and never mutated.
type term struct {
	mono monomial
	coef *big.Rat
}

// Poly is a sparse multivariate polynomial over ℚ.
// The zero value is the zero polynomial.
type Poly struct {
	terms map[string]term
}

// acc accumulates terms; it owns its big.Rat values until poly() hands them out.
type acc map[string]term

func (a acc) add(m monomial, c *big.Rat) {
	if c.Sign() == 0 {
		return
	}
	k := m.key()
	if t, ok := a[k]; ok {
		sum := new(big.Rat).Add(t.coef, c)
		if sum.Sign() == 0 {
			delete(a, k)
			return
		}
		a[k] = term{mono: t.mono, coef: sum}
		return
	}
	a[k] = term{mono: m, coef: new(big.Rat).Set(c)}
}

func (a acc) poly() Poly {
	if len(a) == 0 {
		return Poly{}
	}
	return Poly{terms: a}
}

// Const returns the constant polynomial c.
func Const(c *big.Rat) Poly {
	a := acc{}
	a.add(nil, c)
	return a.poly()
}

// Int returns the constant polynomial n.
func Int(n int64) Poly {
	return Const(new(big.Rat).SetInt64(n))
}

// Var returns the polynomial consisting of the single symbol s.
func Var(s Symbol) Poly {
	m := monomial{{sym: s, exp: 1}}
	return Poly{terms: map[string]term{
		m.key(): {mono: m, coef: big.NewRat(1, 1)},
	}}
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// Len returns the number of non-zero terms.
func (p Poly) Len() int { return len(p.terms) }

// IsConst reports whether p is a constant and returns its value (zero included).
func (p Poly) IsConst() (*big.Rat, bool) {
	switch len(p.terms) {
	case 0:
		return new(big.Rat), true
	case 1:
		if t, ok := p.terms[""]; ok {
			return new(big.Rat).Set(t.coef), true
		}
	}

	return nil, false
}

// Add returns p+o.
func (p Poly) Add(o Poly) Poly {
	if p.IsZero() {
		return o
	}
	if o.IsZero() {
		return p
	}
	a := make(acc, len(p.terms)+len(o.terms))
	for _, t := range p.terms {
		a.add(t.mono, t.coef)
	}
	for _, t := range o.terms {
		a.add(t.mono, t.coef)
	}

	return a.poly()
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	return p.Scale(big.NewRat(-1, 1))
}

// Sub returns p-o.
func (p Poly) Sub(o Poly) Poly {
	return p.Add(o.Neg())
}

// Scale returns c*p.
func (p Poly) Scale(c *big.Rat) Poly {
	if c.Sign() == 0 || p.IsZero() {
		return Poly{}
	}
	a := make(acc, len(p.terms))
	for k, t := range p.terms {
		a[k] = term{mono: t.mono, coef: new(big.Rat).Mul(t.coef, c)}
	}

	return a.poly()
}

// Mul returns p*o.
func (p Poly) Mul(o Poly) Poly {
	if p.IsZero() || o.IsZero() {
		return Poly{}
	}
	a := make(acc, len(p.terms)*len(o.terms))
	c := new(big.Rat)
	for _, x := range p.terms {
		for _, y := range o.terms {
			c.Mul(x.coef, y.coef)
			a.add(x.mono.mul(y.mono), c)
		}
	}

	return a.poly()
}

// mulTerm returns p*(c*m).
func (p Poly) mulTerm(m monomial, c *big.Rat) Poly {
	if c.Sign() == 0 || p.IsZero() {
		return Poly{}
	}
	a := make(acc, len(p.terms))
	for _, t := range p.terms {
		// Distinct monomials stay distinct after multiplication by m.
		nm := t.mono.mul(m)
		a[nm.key()] = term{mono: nm, coef: new(big.Rat).Mul(t.coef, c)}
	}

	return a.poly()
}

// Pow returns p^n for n >= 0. Negative n yields the constant 1.
func (p Poly) Pow(n int) Poly {
	out := Int(1)
	base := p
	for n > 0 {
		if n&1 == 1 {
			out = out.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}

	return out
}

// Equal reports whether p and o have identical terms.
func (p Poly) Equal(o Poly) bool {
	if len(p.terms) != len(o.terms) {
		return false
	}
	for k, t := range p.terms {
		u, ok := o.terms[k]
		if !ok || t.coef.Cmp(u.coef) != 0 {
			return false
		}
	}

	return true
}

// Vars returns the symbols occurring in p, sorted by name.
func (p Poly) Vars() []Symbol {
	seen := make(map[Symbol]struct{})
	for _, t := range p.terms {
		for _, f := range t.mono {
			seen[f.sym] = struct{}{}
		}
	}
	out := make([]Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Degree returns the degree of p in s; the zero polynomial has degree -1.
func (p Poly) Degree(s Symbol) int {
	if p.IsZero() {
		return -1
	}
	d := 0
	for _, t := range p.terms {
		if e := t.mono.degree(s); e > d {
			d = e
		}
	}

	return d
}

// Coeffs splits p = Σ_k c_k·s^k and returns c indexed by k (len Degree(s)+1).
// The coefficients do not contain s.
func (p Poly) Coeffs(s Symbol) []Poly {
	d := p.Degree(s)
	if d < 0 {
		return nil
	}
	accs := make([]acc, d+1)
	for _, t := range p.terms {
		k := t.mono.degree(s)
		if accs[k] == nil {
			accs[k] = acc{}
		}
		accs[k].add(t.mono.without(s), t.coef)
	}
	out := make([]Poly, d+1)
	for k, a := range accs {
		out[k] = a.poly()
	}

	return out
}

// lead returns the lexicographically leading term; p must be non-zero.
func (p Poly) lead() term {
	var best term
	first := true
	for _, t := range p.terms {
		if first || compareLex(t.mono, best.mono) > 0 {
			best = t
			first = false
		}
	}

	return best
}

// LeadCoeff returns the coefficient of the lex-leading term (0 for the zero polynomial).
func (p Poly) LeadCoeff() *big.Rat {
	if p.IsZero() {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.lead().coef)
}

// Monic returns p scaled so that its leading coefficient is 1.
func (p Poly) Monic() Poly {
	if p.IsZero() {
		return p
	}
	lc := p.lead().coef
	if lc.Cmp(big.NewRat(1, 1)) == 0 {
		return p
	}

	return p.Scale(new(big.Rat).Inv(lc))
}

// DivExact returns p/d when d divides p exactly; ok is false otherwise.
// It runs the multivariate division algorithm in lex order and stops at the
// first leading term d cannot divide.
func (p Poly) DivExact(d Poly) (Poly, bool) {
	if d.IsZero() {
		return Poly{}, false
	}
	if p.IsZero() {
		return Poly{}, true
	}
	if c, ok := d.IsConst(); ok {
		return p.Scale(new(big.Rat).Inv(c)), true
	}
	ld := d.lead()
	inv := new(big.Rat).Inv(ld.coef)
	q := acc{}
	r := p
	for !r.IsZero() {
		lr := r.lead()
		if !ld.mono.divides(lr.mono) {
			return Poly{}, false
		}
		m := ld.mono.quo(lr.mono)
		c := new(big.Rat).Mul(lr.coef, inv)
		q.add(m, c)
		r = r.Sub(d.mulTerm(m, c))
	}

	return q.poly(), true
}

// sorted returns the terms in descending lex order.
func (p Poly) sorted() []term {
	out := make([]term, 0, len(p.terms))
	for _, t := range p.terms {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if di, dj := out[i].mono.totalDegree(), out[j].mono.totalDegree(); di != dj {
			return di > dj
		}
		return compareLex(out[i].mono, out[j].mono) > 0
	})

	return out
}

// String renders p deterministically, highest total degree first, e.g. "2*a^2*b - 3/4*c + 1".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, t := range p.sorted() {
		c := new(big.Rat).Set(t.coef)
		neg := c.Sign() < 0
		if neg {
			c.Neg(c)
		}
		switch {
		case i == 0 && neg:
			sb.WriteByte('-')
		case i > 0 && neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		one := c.Cmp(big.NewRat(1, 1)) == 0
		switch {
		case len(t.mono) == 0:
			sb.WriteString(c.RatString())
		case one:
			t.mono.render(&sb)
		default:
			sb.WriteString(c.RatString())
			sb.WriteByte('*')
			t.mono.render(&sb)
		}
	}

	return sb.String()
}

// Eval evaluates p exactly at the given point.
func (p Poly) Eval(vals map[Symbol]*big.Rat) (*big.Rat, error) {
	sum := new(big.Rat)
	for _, t := range p.terms {
		v := new(big.Rat).Set(t.coef)
		for _, f := range t.mono {
			x, ok := vals[f.sym]
			if !ok {
				return nil, unbound(f.sym)
			}
			for e := 0; e < f.exp; e++ {
				v.Mul(v, x)
			}
		}
		sum.Add(sum, v)
	}

	return sum, nil
}

// Float evaluates p in float64 arithmetic.
func (p Poly) Float(vals map[Symbol]float64) (float64, error) {
	sum := 0.0
	for _, t := range p.sorted() {
		v, _ := t.coef.Float64()
		for _, f := range t.mono {
			x, ok := vals[f.sym]
			if !ok {
				return 0, unbound(f.sym)
			}
			for e := 0; e < f.exp; e++ {
				v *= x
			}
		}
		sum += v
	}

	return sum, nil
}
