// Package expr is the exact-arithmetic substrate of lvlath-scgf.
//
// It provides just enough symbolic machinery to run the cumulant engine over
// exact rational arithmetic:
//
//   - Poly: sparse multivariate polynomials over ℚ (math/big.Rat coefficients)
//     in named symbols, with lexicographic term order (symbols sorted by name).
//   - GCD: multivariate greatest common divisor by heuristic evaluation and
//     interpolation, with recursive primitive pseudo-remainder sequences as
//     the fallback.
//   - Rat: rational functions num/den. Arithmetic keeps results cheap; Cancel
//     performs the full rational simplification (divide out the gcd, monic
//     denominator).
//   - Subst: simultaneous substitution of symbols by rational functions.
//   - Series: second-order Taylor germs in the counting variables q_0..q_{B-1}
//     with Rat coefficients. exp(±q_k) is carried by its exact second-order
//     germ, which is all the first and second cumulants need.
//   - Parse: a small recursive-descent parser for rate expressions such as
//     "2*k/(1+u^3)" or "4.9e11*v". Decimal literals are converted exactly.
//
// expr is not a computer-algebra system: there are no transcendental
// functions, no solver and no pattern matching. Physical parametrizations
// involving exponentials are expressed in rational variables (u = e^{f/20},
// v = e^{Δμ}, ...), which is also the space where simplification is cheap.
//
// All values are immutable; every operation returns a fresh value, so Poly,
// Rat and Series may be shared freely between goroutines.
package expr
