// SPDX-License-Identifier: MIT

package expr

import "math/big"

// GCD returns the greatest common divisor of a and b over ℚ[symbols],
// normalized to a monic lex-leading term. GCD(0, 0) is 0; the gcd of two
// non-zero constants is 1.
//
// Implementation:
//   - Stage 1: settle zero, constant, equal and exactly dividing operands.
//   - Stage 2: clear denominators and run the evaluate-and-interpolate
//     heuristic (see heuristicGCD).
//   - Stage 3: if the heuristic fails, fall back to primitive
//     pseudo-remainder sequences in the variable of lowest degree.
//
// Complexity:
//   - Stage 2 is polynomial in the operand sizes and settles the rational
//     functions of the cumulant engine; stage 3 is exponential in the number
//     of symbols in the worst case.
func GCD(a, b Poly) Poly {
	switch {
	case a.IsZero():
		return b.Monic()
	case b.IsZero():
		return a.Monic()
	}
	_, ca := a.IsConst()
	_, cb := b.IsConst()
	if ca || cb {
		return Int(1)
	}
	if g, ok := quickGCD(a, b); ok {
		return g
	}
	if h, ok := heuristicGCD(clearDenominators(a), clearDenominators(b), unionVars(a, b)); ok {
		return h.Monic()
	}

	return prsGCD(a, b)
}

// prsGCD is the primitive pseudo-remainder-sequence gcd of two
// non-constant polynomials:
//   - split both into content (gcd of their x-coefficients, found
//     recursively) and primitive part;
//   - run the primitive PRS on the primitive parts; the last non-zero
//     remainder of positive degree is the primitive gcd.
func prsGCD(a, b Poly) Poly {
	x := mainSymbol(a, b)
	if a.Degree(x) == 0 {
		return GCD(a, content(b, x))
	}
	if b.Degree(x) == 0 {
		return GCD(content(a, x), b)
	}

	contA, contB := content(a, x), content(b, x)
	ppA, _ := a.DivExact(contA)
	ppB, _ := b.DivExact(contB)
	c := GCD(contA, contB)

	// Primitive PRS: keep the higher-degree operand first.
	if ppA.Degree(x) < ppB.Degree(x) {
		ppA, ppB = ppB, ppA
	}
	for {
		r := prem(ppA, ppB, x)
		if r.IsZero() {
			break
		}
		if r.Degree(x) == 0 {
			// Coprime in x: the primitive gcd is a unit.
			return c.Monic()
		}
		ppA, ppB = ppB, primitive(r, x)
	}

	return c.Mul(primitive(ppB, x)).Monic()
}

// quickGCD handles the cheap cases: equal operands and exact division.
func quickGCD(a, b Poly) (Poly, bool) {
	if a.Equal(b) {
		return a.Monic(), true
	}
	if a.Len() <= b.Len() {
		if _, ok := b.DivExact(a); ok {
			return a.Monic(), true
		}
	} else if _, ok := a.DivExact(b); ok {
		return b.Monic(), true
	}

	return Poly{}, false
}

// mainSymbol returns the symbol of a or b with the lowest degree, the
// larger of its degrees in a and b; ties go to the alphabetically first.
func mainSymbol(a, b Poly) Symbol {
	var best Symbol
	bestDeg := -1
	for _, x := range unionVars(a, b) {
		d := a.Degree(x)
		if e := b.Degree(x); e > d {
			d = e
		}
		if bestDeg < 0 || d < bestDeg {
			best, bestDeg = x, d
		}
	}

	return best
}

// content returns the gcd of the coefficients of p viewed as a polynomial in x.
func content(p Poly, x Symbol) Poly {
	var g Poly
	for _, c := range p.Coeffs(x) {
		if c.IsZero() {
			continue
		}
		g = GCD(g, c)
		if _, ok := g.IsConst(); ok && !g.IsZero() {
			return Int(1)
		}
	}

	return g
}

// primitive divides p by its content in x.
func primitive(p Poly, x Symbol) Poly {
	q, ok := p.DivExact(content(p, x))
	if !ok {
		// content always divides p; reaching here means a broken invariant.
		panic("expr: content does not divide polynomial")
	}

	return q
}

// prem returns a pseudo-remainder of a by b with respect to x: a polynomial
// r = λ·a − q·b with deg_x r < deg_x b and λ a product of leading
// coefficients of b. Only its primitive part matters to GCD.
func prem(a, b Poly, x Symbol) Poly {
	db := b.Degree(x)
	lb := b.Coeffs(x)[db]
	r := a
	for !r.IsZero() {
		dr := r.Degree(x)
		if dr < db {
			break
		}
		lr := r.Coeffs(x)[dr]
		shift := monomial(nil)
		if dr > db {
			shift = monomial{{sym: x, exp: dr - db}}
		}
		r = r.Mul(lb).Sub(b.Mul(lr).mulTerm(shift, big.NewRat(1, 1)))
	}

	return r
}
