// Package matrix holds the linear-algebra layer of the cumulant engine:
// a generic dense matrix over exact element types, the Markov generator of a
// Model, its tilted form, and a division-free characteristic polynomial.
//
// What & Why
//
//   - Dense[T] is a row-major matrix over any ring element type T (expr.Rat
//     for plain generators, expr.Series for tilted ones). At/Set return
//     ErrOutOfRange instead of panicking.
//   - Generator builds W from a Model: W[i,j] is the rate of i→j and the
//     diagonal is the negated row sum, so every row sums to zero. The
//     invariant is re-checked after construction (ErrRowSum).
//   - Tilt multiplies the entry of chord k by exp(q_k) and the entry of its
//     reverse by exp(−q_k). Entries are second-order germs in the tilts,
//     which is all the cumulant differentiator ever looks at.
//   - CharPoly runs the Samuelson–Berkowitz algorithm: only ring operations,
//     no pivots and no division, so it works on symbolic entries.
//
// Complexity:
//
//   - Generator: O(N² + E); Tilt: O(N² + B).
//   - CharPoly: O(N⁴) ring operations.
package matrix
