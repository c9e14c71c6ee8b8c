// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Subst maps symbols to the rational functions that replace them.
// All symbols are replaced simultaneously, so {a: b, b: a} swaps a and b.
// A nil or empty Subst is the identity.
type Subst map[Symbol]Rat

// Keys returns the substituted symbols sorted by name.
func (s Subst) Keys() []Symbol {
	out := make([]Symbol, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sortSymbols(out)

	return out
}

// String renders s as "{a -> x, b -> y}" in key order.
func (s Subst) String() string {
	parts := make([]string, 0, len(s))
	for _, k := range s.Keys() {
		parts = append(parts, fmt.Sprintf("%s -> %s", k, s[k]))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Merge returns a new Subst holding s overlaid by o.
func (s Subst) Merge(o Subst) Subst {
	out := make(Subst, len(s)+len(o))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range o {
		out[k] = v
	}

	return out
}

// Subst applies s to r. The result is num(s)/den(s) with the cheap
// normalization of Rat; it is ErrDivisionByZero when the substituted
// denominator vanishes.
func (r Rat) Subst(s Subst) (Rat, error) {
	if len(s) == 0 {
		return r, nil
	}
	n, d := r.parts()
	nn, nd := n.subst(s)
	dn, dd := d.subst(s)
	if dn.IsZero() {
		return Rat{}, fmt.Errorf("subst %s: %w", s, ErrDivisionByZero)
	}

	// (nn/nd) / (dn/dd) = nn*dd / (nd*dn)
	return light(nn.Mul(dd), nd.Mul(dn)), nil
}

// subst substitutes s into p over a common denominator: for every symbol x
// with s[x] = a/b and degree D in p, each term's x^e becomes a^e·b^(D−e) and
// the shared denominator is Π b^D. Only polynomial arithmetic is used.
func (p Poly) subst(s Subst) (Poly, Poly) {
	type powers struct {
		num, den []Poly // num[e] = a^e, den[e] = b^e for e = 0..D
		deg      int
	}
	table := make(map[Symbol]*powers)
	den := Int(1)
	for _, x := range p.Vars() {
		v, ok := s[x]
		if !ok {
			continue
		}
		a, b := v.parts()
		D := p.Degree(x)
		pw := &powers{num: make([]Poly, D+1), den: make([]Poly, D+1), deg: D}
		pw.num[0], pw.den[0] = Int(1), Int(1)
		for e := 1; e <= D; e++ {
			pw.num[e] = pw.num[e-1].Mul(a)
			pw.den[e] = pw.den[e-1].Mul(b)
		}
		table[x] = pw
		den = den.Mul(pw.den[D])
	}
	if len(table) == 0 {
		return p, Int(1)
	}

	num := Poly{}
	for _, t := range p.sorted() {
		kept := monomial(nil)
		factorPoly := Const(t.coef)
		for _, f := range t.mono {
			pw, ok := table[f.sym]
			if !ok {
				kept = append(kept, f)
				continue
			}
			factorPoly = factorPoly.Mul(pw.num[f.exp])
		}
		// Symbols absent from this term still contribute b^D to the common denominator.
		for x, pw := range table {
			factorPoly = factorPoly.Mul(pw.den[pw.deg-t.mono.degree(x)])
		}
		num = num.Add(factorPoly.mulTerm(kept, big.NewRat(1, 1)))
	}

	return num, den
}

func sortSymbols(s []Symbol) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
