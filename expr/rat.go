// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math/big"
)

// Rat is a rational function num/den over ℚ.
// The zero value is 0. The denominator is never the zero polynomial.
//
// Arithmetic normalizes cheaply: zero numerators collapse to 0/1, constant
// denominators are folded into the numerator, equal denominators are added
// without cross-multiplication and the denominator is kept monic. Common
// factors are removed only by Cancel.
type Rat struct {
	num, den Poly
}

// NewRat returns num/den, or ErrDivisionByZero when den is zero.
func NewRat(num, den Poly) (Rat, error) {
	if den.IsZero() {
		return Rat{}, ErrDivisionByZero
	}
	return light(num, den), nil
}

// FromPoly lifts p to the rational function p/1.
func FromPoly(p Poly) Rat { return Rat{num: p, den: Int(1)} }

// RatInt returns the constant n.
func RatInt(n int64) Rat { return FromPoly(Int(n)) }

// RatFrac returns the constant a/b; b must be non-zero.
func RatFrac(a, b int64) Rat { return FromPoly(Const(big.NewRat(a, b))) }

// RatConst returns the constant c.
func RatConst(c *big.Rat) Rat { return FromPoly(Const(c)) }

// Sym returns the rational function consisting of the symbol s.
func Sym(s Symbol) Rat { return FromPoly(Var(s)) }

// parts returns numerator and denominator, mapping the zero value to 0/1.
func (r Rat) parts() (Poly, Poly) {
	if r.den.IsZero() {
		return r.num, Int(1)
	}
	return r.num, r.den
}

// Num returns the numerator.
func (r Rat) Num() Poly { n, _ := r.parts(); return n }

// Den returns the denominator.
func (r Rat) Den() Poly { _, d := r.parts(); return d }

// light applies the cheap normalizations; den must be non-zero.
func light(num, den Poly) Rat {
	if num.IsZero() {
		return Rat{num: Poly{}, den: Int(1)}
	}
	if c, ok := den.IsConst(); ok {
		return Rat{num: num.Scale(new(big.Rat).Inv(c)), den: Int(1)}
	}
	lc := den.lead().coef
	if lc.Cmp(big.NewRat(1, 1)) != 0 {
		inv := new(big.Rat).Inv(lc)
		return Rat{num: num.Scale(inv), den: den.Scale(inv)}
	}

	return Rat{num: num, den: den}
}

// IsZero reports whether r is 0.
func (r Rat) IsZero() bool { return r.num.IsZero() }

// IsConst reports whether r is a constant and returns its value.
func (r Rat) IsConst() (*big.Rat, bool) {
	n, d := r.parts()
	cn, ok := n.IsConst()
	if !ok {
		return nil, false
	}
	cd, ok := d.IsConst()
	if !ok {
		return nil, false
	}

	return cn.Quo(cn, cd), true
}

// Add returns r+o.
func (r Rat) Add(o Rat) Rat {
	rn, rd := r.parts()
	on, od := o.parts()
	switch {
	case rn.IsZero():
		return light(on, od)
	case on.IsZero():
		return light(rn, rd)
	case rd.Equal(od):
		return light(rn.Add(on), rd)
	}

	return light(rn.Mul(od).Add(on.Mul(rd)), rd.Mul(od))
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	n, d := r.parts()
	return Rat{num: n.Neg(), den: d}
}

// Sub returns r-o.
func (r Rat) Sub(o Rat) Rat { return r.Add(o.Neg()) }

// Mul returns r*o.
func (r Rat) Mul(o Rat) Rat {
	rn, rd := r.parts()
	on, od := o.parts()
	if rn.IsZero() || on.IsZero() {
		return Rat{}
	}
	// Cross-cancel identical factors, the common case for a*(b/a).
	if rn.Equal(od) {
		return light(on, rd)
	}
	if on.Equal(rd) {
		return light(rn, od)
	}

	return light(rn.Mul(on), rd.Mul(od))
}

// Scale returns c*r.
func (r Rat) Scale(c *big.Rat) Rat {
	n, d := r.parts()
	return light(n.Scale(c), d)
}

// Inv returns 1/r, or ErrDivisionByZero when r is 0.
func (r Rat) Inv() (Rat, error) {
	n, d := r.parts()
	if n.IsZero() {
		return Rat{}, ErrDivisionByZero
	}
	return light(d, n), nil
}

// Quo returns r/o, or ErrDivisionByZero when o is 0.
func (r Rat) Quo(o Rat) (Rat, error) {
	inv, err := o.Inv()
	if err != nil {
		return Rat{}, err
	}
	return r.Mul(inv), nil
}

// Pow returns r^n; negative n inverts first.
func (r Rat) Pow(n int) (Rat, error) {
	if n < -maxExponent || n > maxExponent {
		return Rat{}, fmt.Errorf("%w: %d", ErrExponent, n)
	}
	base := r
	if n < 0 {
		inv, err := r.Inv()
		if err != nil {
			return Rat{}, err
		}
		base, n = inv, -n
	}
	bn, bd := base.parts()

	return light(bn.Pow(n), bd.Pow(n)), nil
}

// Cancel divides out gcd(num, den) and returns the reduced fraction with a
// monic denominator. Two cancelled values are equal iff their parts are equal.
func (r Rat) Cancel() Rat {
	n, d := r.parts()
	if n.IsZero() {
		return Rat{num: Poly{}, den: Int(1)}
	}
	g := GCD(n, d)
	if _, ok := g.IsConst(); !ok {
		n, _ = n.DivExact(g)
		d, _ = d.DivExact(g)
	}

	return light(n, d)
}

// Equal reports whether r and o are the same rational function,
// by exact cross-multiplication (no simplification needed).
func (r Rat) Equal(o Rat) bool {
	rn, rd := r.parts()
	on, od := o.parts()
	if rd.Equal(od) {
		return rn.Equal(on)
	}

	return rn.Mul(od).Equal(on.Mul(rd))
}

// Vars returns the symbols of numerator and denominator, sorted.
func (r Rat) Vars() []Symbol {
	n, d := r.parts()
	seen := make(map[Symbol]struct{})
	var out []Symbol
	for _, s := range append(n.Vars(), d.Vars()...) {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sortSymbols(out)

	return out
}

// String renders r as "num" or "(num)/(den)".
func (r Rat) String() string {
	n, d := r.parts()
	if _, ok := d.IsConst(); ok {
		return n.String()
	}
	return "(" + n.String() + ")/(" + d.String() + ")"
}

// Eval evaluates r exactly.
func (r Rat) Eval(vals map[Symbol]*big.Rat) (*big.Rat, error) {
	n, d := r.parts()
	nv, err := n.Eval(vals)
	if err != nil {
		return nil, err
	}
	dv, err := d.Eval(vals)
	if err != nil {
		return nil, err
	}
	if dv.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return nv.Quo(nv, dv), nil
}

// Float evaluates r in float64 arithmetic.
func (r Rat) Float(vals map[Symbol]float64) (float64, error) {
	n, d := r.parts()
	nv, err := n.Float(vals)
	if err != nil {
		return 0, err
	}
	dv, err := d.Float(vals)
	if err != nil {
		return 0, err
	}
	if dv == 0 {
		return 0, ErrDivisionByZero
	}

	return nv / dv, nil
}

func unbound(s Symbol) error {
	return fmt.Errorf("%w: %s", ErrUnboundSymbol, s)
}
