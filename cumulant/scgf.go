// SPDX-License-Identifier: MIT

package cumulant

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlath-scgf/expr"
	"github.com/katalvlaran/lvlath-scgf/matrix"
)

// SCGF returns the larger eigenvalue tr/2 + sqrt(tr²/4 − det) of a 2×2
// tilted generator as a second-order germ in its tilts, every coefficient
// cancelled. Its derivatives at zero are the scaled cumulants.
//
// Implementation:
//   - At zero tilt det = 0 and tr < 0, so sqrt(tr²/4 − det) starts at
//     σ = −tr/2. With δ = (tr²/4 − det − σ²)/σ², which has no constant term,
//     sqrt = σ·(1 + δ/2 − δ²/8) to second order.
//
// Errors:
//   - ErrNotTwoByTwo for any other shape.
//   - ErrNotGenerator if det does not vanish or tr vanishes at zero tilt.
//
// This utility does not generalize to more states and is not used by Compute.
func SCGF(wq *matrix.Dense[expr.Series]) (expr.Series, error) {
	if wq == nil || wq.Rows() != 2 || wq.Cols() != 2 {
		return expr.Series{}, ErrNotTwoByTwo
	}
	w00, _ := wq.At(0, 0)
	w01, _ := wq.At(0, 1)
	w10, _ := wq.At(1, 0)
	w11, _ := wq.At(1, 1)

	tr := w00.Add(w11)
	det := w00.Mul(w11).Sub(w01.Mul(w10))
	if !det.At0().Cancel().IsZero() {
		return expr.Series{}, fmt.Errorf("det at zero tilt is %s: %w", det.At0().Cancel(), ErrNotGenerator)
	}
	half := big.NewRat(1, 2)
	sigma := tr.At0().Scale(half).Neg()
	if sigma.IsZero() {
		return expr.Series{}, fmt.Errorf("trace vanishes: %w", ErrNotGenerator)
	}
	inv, err := sigma.Mul(sigma).Inv()
	if err != nil {
		return expr.Series{}, err
	}

	disc := tr.Mul(tr).Scale(expr.RatFrac(1, 4)).Sub(det)
	delta := disc.Sub(expr.Scalar(sigma.Mul(sigma))).Scale(inv)
	root := expr.Scalar(expr.RatInt(1)).
		Add(delta.Scale(expr.RatFrac(1, 2))).
		Sub(delta.Mul(delta).Scale(expr.RatFrac(1, 8))).
		Scale(sigma)

	return tr.Scale(expr.RatFrac(1, 2)).Add(root).Cancel(), nil
}
