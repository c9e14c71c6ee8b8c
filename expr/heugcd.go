// SPDX-License-Identifier: MIT

package expr

import "math/big"

// heuristicTries bounds the evaluation points tried per variable before the
// heuristic gives up and GCD falls back to pseudo-remainder sequences.
const heuristicTries = 6

// heuristicGCD returns the gcd of the integer polynomials f and g, content
// included, with a positive leading coefficient. vars must list every
// symbol of f and g; the first one is evaluated away.
//
// Implementation (GCDHEU of Char, Geddes and Gonnet):
//   - Stage 1: divide out the common integer content.
//   - Stage 2: evaluate the main variable at an integer ξ larger than twice
//     the smaller coefficient norm and recurse on the remaining variables.
//   - Stage 3: read the gcd of the images back as a polynomial in the main
//     variable from its balanced base-ξ digits and keep it if it divides
//     both operands; otherwise try the interpolated cofactors.
//   - Stage 4: on failure grow ξ and retry, at most heuristicTries times.
//
// ok is false when no tried point succeeded.
//
// Complexity:
//   - Integer sizes grow with the product of (degree+1) over the variables;
//     the polynomial work is a handful of evaluations and trial divisions.
func heuristicGCD(f, g Poly, vars []Symbol) (Poly, bool) {
	switch {
	case f.IsZero():
		return positive(g), true
	case g.IsZero():
		return positive(f), true
	}
	_, fc := f.IsConst()
	_, gc := g.IsConst()
	if fc || gc || len(vars) == 0 {
		return Const(new(big.Rat).SetInt(new(big.Int).GCD(nil, nil, intContent(f), intContent(g)))), true
	}

	cont := new(big.Int).GCD(nil, nil, intContent(f), intContent(g))
	inv := new(big.Rat).SetFrac(big.NewInt(1), cont)
	f, g = f.Scale(inv), g.Scale(inv)

	x, rest := vars[0], vars[1:]
	xi := evaluationPoint(f, g)
	for try := 0; try < heuristicTries; try++ {
		if h, ok := heuristicStep(f, g, x, rest, xi); ok {
			return h.Scale(new(big.Rat).SetInt(cont)), true
		}
		xi = nextEvaluationPoint(xi)
	}

	return Poly{}, false
}

// heuristicStep runs stages 2 and 3 at the point x = xi.
func heuristicStep(f, g Poly, x Symbol, rest []Symbol, xi *big.Int) (Poly, bool) {
	ff, gg := f.evalAt(x, xi), g.evalAt(x, xi)
	if ff.IsZero() || gg.IsZero() {
		return Poly{}, false
	}
	hh, ok := heuristicGCD(ff, gg, rest)
	if !ok {
		return Poly{}, false
	}

	h := intPrimitive(interpolate(hh, xi, x))
	if divides(h, f) && divides(h, g) {
		return h, true
	}

	// The cofactor images interpolate to f/h and g/h when h itself did not.
	for _, side := range [...]struct{ a, b, image Poly }{{f, g, ff}, {g, f, gg}} {
		cof, ok := side.image.DivExact(hh)
		if !ok || !cof.isIntegral() {
			continue
		}
		cf := interpolate(cof, xi, x)
		if cf.IsZero() {
			continue
		}
		h, ok := side.a.DivExact(cf)
		if !ok || h.IsZero() {
			continue
		}
		h = intPrimitive(clearDenominators(h))
		if divides(h, side.b) {
			return h, true
		}
	}

	return Poly{}, false
}

// evaluationPoint returns max(min(B, 99·√B), 2·min(|f|/|lc f|, |g|/|lc g|) + 2)
// with B = 2·min(|f|, |g|) + 29, |·| the largest coefficient magnitude.
func evaluationPoint(f, g Poly) *big.Int {
	fn, gn := maxNorm(f), maxNorm(g)
	b := new(big.Int).Lsh(minInt(fn, gn), 1)
	b.Add(b, big.NewInt(29))
	if s := new(big.Int).Sqrt(b); s.Mul(s, big.NewInt(99)).Cmp(b) < 0 {
		b = s
	}
	lf := new(big.Int).Quo(fn, new(big.Int).Abs(f.lead().coef.Num()))
	lg := new(big.Int).Quo(gn, new(big.Int).Abs(g.lead().coef.Num()))
	l := new(big.Int).Lsh(minInt(lf, lg), 1)
	l.Add(l, big.NewInt(2))
	if l.Cmp(b) > 0 {
		return l
	}

	return b
}

// nextEvaluationPoint grows ξ by roughly ξ^(1/4).
func nextEvaluationPoint(xi *big.Int) *big.Int {
	r := new(big.Int).Sqrt(new(big.Int).Sqrt(xi))
	out := new(big.Int).Mul(xi, big.NewInt(73794))
	out.Mul(out, r)

	return out.Quo(out, big.NewInt(27011))
}

// interpolate reads h, an integer polynomial without x, as the value at
// x = xi of a polynomial whose coefficients are the balanced base-xi digits
// of h, and returns that polynomial with a positive leading coefficient.
func interpolate(h Poly, xi *big.Int, x Symbol) Poly {
	half := new(big.Int).Rsh(xi, 1)
	out := acc{}
	for i := 0; !h.IsZero(); i++ {
		next := make(acc, len(h.terms))
		for _, t := range h.terms {
			c := t.coef.Num()
			r := new(big.Int).Mod(c, xi)
			if r.Cmp(half) > 0 {
				r.Sub(r, xi)
			}
			if r.Sign() != 0 {
				m := t.mono
				if i > 0 {
					m = m.mul(monomial{{sym: x, exp: i}})
				}
				out.add(m, new(big.Rat).SetInt(r))
			}
			q := new(big.Int).Sub(c, r)
			next.add(t.mono, new(big.Rat).SetInt(q.Quo(q, xi)))
		}
		h = next.poly()
	}

	return positive(out.poly())
}

// evalAt substitutes the integer xi for x.
func (p Poly) evalAt(x Symbol, xi *big.Int) Poly {
	d := p.Degree(x)
	if d <= 0 {
		return p
	}
	pows := make([]*big.Rat, d+1)
	pows[0] = big.NewRat(1, 1)
	step := new(big.Rat).SetInt(xi)
	for e := 1; e <= d; e++ {
		pows[e] = new(big.Rat).Mul(pows[e-1], step)
	}
	a := make(acc, len(p.terms))
	c := new(big.Rat)
	for _, t := range p.terms {
		c.Mul(t.coef, pows[t.mono.degree(x)])
		a.add(t.mono.without(x), c)
	}

	return a.poly()
}

// isIntegral reports whether every coefficient of p is an integer.
func (p Poly) isIntegral() bool {
	for _, t := range p.terms {
		if !t.coef.IsInt() {
			return false
		}
	}

	return true
}

// divides reports whether d divides p over ℚ.
func divides(d, p Poly) bool {
	_, ok := p.DivExact(d)
	return ok
}

// clearDenominators scales p by the lcm of its coefficient denominators.
func clearDenominators(p Poly) Poly {
	l := big.NewInt(1)
	g := new(big.Int)
	for _, t := range p.terms {
		d := t.coef.Denom()
		g.GCD(nil, nil, l, d)
		l.Mul(l, new(big.Int).Quo(d, g))
	}
	if l.Cmp(big.NewInt(1)) == 0 {
		return p
	}

	return p.Scale(new(big.Rat).SetInt(l))
}

// intContent returns the gcd of the coefficients of the integer polynomial p.
func intContent(p Poly) *big.Int {
	g := new(big.Int)
	for _, t := range p.terms {
		g.GCD(nil, nil, g, t.coef.Num())
	}

	return g
}

// intPrimitive divides p by its integer content and makes the leading
// coefficient positive.
func intPrimitive(p Poly) Poly {
	if p.IsZero() {
		return p
	}
	c := intContent(p)
	if c.Cmp(big.NewInt(1)) != 0 {
		p = p.Scale(new(big.Rat).SetFrac(big.NewInt(1), c))
	}

	return positive(p)
}

// positive negates p when its leading coefficient is negative.
func positive(p Poly) Poly {
	if !p.IsZero() && p.lead().coef.Sign() < 0 {
		return p.Neg()
	}
	return p
}

func maxNorm(p Poly) *big.Int {
	n := new(big.Int)
	for _, t := range p.terms {
		if a := new(big.Int).Abs(t.coef.Num()); a.Cmp(n) > 0 {
			n = a
		}
	}

	return n
}

func minInt(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// unionVars returns the symbols of a and b, sorted.
func unionVars(a, b Poly) []Symbol {
	seen := make(map[Symbol]struct{})
	var out []Symbol
	for _, s := range append(a.Vars(), b.Vars()...) {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sortSymbols(out)

	return out
}
