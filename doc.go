// Package scgf computes, exactly and symbolically, the first two scaled
// cumulants of the chord currents of continuous-time Markov jump processes:
// the mean current vector c and the covariance matrix C.
//
// 🚀 What is lvlath-scgf?
//
//	A thread-safe exact-arithmetic engine that brings together:
//		• Exact substrate: multivariate polynomials and rational functions over ℚ
//		• Models: reversible rate graphs with symbolic rates
//		• Cycle bases: Kruskal spanning trees, chords, fundamental cycles
//		• Validation: structured diagnostics for model/chord consistency
//		• Tilted generators and Berkowitz characteristic polynomials
//		• Cumulants: c and C from the characteristic polynomial, no eigenvalues
//
// ✨ Why the characteristic polynomial?
//
//   - The SCGF is the Perron root λ(q) of the tilted generator W(q);
//     its derivatives at q = 0 follow from implicit differentiation of
//     det(λ − W(q)) = 0, so only polynomial coefficients are ever needed.
//   - Division-free Berkowitz keeps every intermediate a polynomial in
//     the rates, and cancellation happens once per coefficient.
//
// Under the hood the module is organized in packages:
//
//	expr/      Poly, Rat, GCD, Subst, second-order Series, Parse
//	core/      Edge, Model: thread-safe symbolic rate graphs
//	spanning/  Betti number, Kruskal, canonical chords, fundamental cycles
//	validate/  Validate, IsConsistent and the Diagnostic of the first failure
//	matrix/    Dense[T], Generator, Tilt, CharPoly, Coefficients
//	cumulant/  Compute, FromTilted, SCGF, Result, Simplification
//	models/    rings, complete graphs, kinesin presets, Lau 2×2
//	modelfile/ YAML model files
//	metrics/   Prometheus phase timings
//	cmd/scgf   command line
//
// Quick ASCII example, a driven three-state ring with chord 1→2:
//
//	    0
//	   ╱ ╲
//	  1 ─ 2
//
//	c = (k − w)/3 for forward rate k and backward rate w.
//
//	go get github.com/katalvlaran/lvlath-scgf
package scgf
