// Package cumulant extracts the steady-state current vector and the
// covariance (diffusion) matrix of a Markov motor model from the
// characteristic polynomial of its tilted generator.
//
// What & Why
//
//   - The dominant eigenvalue λ(q) of the tilted generator Wq is the scaled
//     cumulant generating function of the chord currents. It is never
//     computed; instead the characteristic polynomial Σ a_k(q)·λ^k = 0 is
//     differentiated implicitly at q = 0, where λ = 0:
//
//     c_i    = −∂_i a0 / a1
//     C_ij   = −(∂_i∂_j a0 + ∂_i a1·c_j + ∂_j a1·c_i + 2·a2·c_i·c_j) / a1
//
//   - Coefficients are second-order germs in the tilts (expr.Series), so the
//     partial derivatives at zero are read off directly.
//
// Simplification
//
//   - SkipSimplification: terms are combined raw; the rate parametrization
//     is substituted late.
//   - ApplyTransform(simp, unsimp): every covariance term is parametrized,
//     moved into the transformed variables by simp and cancelled before it
//     is combined, and the results are mapped back by unsimp. simp and unsimp
//     must be mutually inverse; this is not verified.
//
// SCGF computes λ(q) in closed form for 2×2 tilted generators only; it is
// a separate utility and is not used by Compute.
package cumulant
