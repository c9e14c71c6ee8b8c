// SPDX-License-Identifier: MIT

package models

import (
	"github.com/katalvlaran/lvlath-scgf/expr"
	"github.com/katalvlaran/lvlath-scgf/matrix"
)

// Tilt indices of the Lau two-state generator.
const (
	LauDisplacement = 0 // λ, counts half steps of the motor
	LauHydrolysis   = 1 // γ, counts consumed ATP
)

// Rate symbols of the Lau model: l/r is the step direction, A/B the head
// state, m/p marks ATP-driven channels and n the passive ones.
const (
	LauWlBm expr.Symbol = "wlBm"
	LauWlBn expr.Symbol = "wlBn"
	LauWrAp expr.Symbol = "wrAp"
	LauWrAn expr.Symbol = "wrAn"
	LauWlAp expr.Symbol = "wlAp"
	LauWlAn expr.Symbol = "wlAn"
	LauWrBm expr.Symbol = "wrBm"
	LauWrBn expr.Symbol = "wrBn"
)

// Lau returns the two-state tilted generator of Lau, Lacoste and Mallick in
// the tilts λ (LauDisplacement) and γ (LauHydrolysis). Each transition
// between the two head states runs through four channels; the displacement
// tilt is ±1 by direction and the hydrolysis tilt marks ATP channels.
//
// The matrix follows the paper's column convention: columns, not rows, sum
// to zero at zero tilt. Eigenvalues and the characteristic polynomial are
// those of the transpose.
//
// Counting here is per channel, not per chord, so the model has no chord
// description; use cumulant.SCGF or cumulant.FromTilted on it.
func Lau() (*matrix.Dense[expr.Series], error) {
	const b = 2
	sym := func(s expr.Symbol) expr.Series { return expr.Constant(b, expr.Sym(s)) }
	exp := func(i, sign int) expr.Series {
		e, _ := expr.Exp(b, i, sign) // indices are constants below b
		return e
	}
	l, lInv := exp(LauDisplacement, 1), exp(LauDisplacement, -1)
	g, gInv := exp(LauHydrolysis, 1), exp(LauHydrolysis, -1)

	wrA := sym(LauWrAp).Add(sym(LauWrAn))
	wlA := sym(LauWlAp).Add(sym(LauWlAn))
	wrB := sym(LauWrBm).Add(sym(LauWrBn))
	wlB := sym(LauWlBm).Add(sym(LauWlBn))

	wq, err := matrix.NewDense(2, 2, expr.Constant(b, expr.Rat{}))
	if err != nil {
		return nil, err
	}
	cells := [2][2]expr.Series{
		{
			wrA.Add(wlA).Neg(),
			l.Mul(sym(LauWlBm).Mul(g).Add(sym(LauWlBn))).Add(lInv.Mul(sym(LauWrBm).Mul(g).Add(sym(LauWrBn)))),
		},
		{
			l.Mul(sym(LauWlAp).Mul(gInv).Add(sym(LauWlAn))).Add(lInv.Mul(sym(LauWrAp).Mul(gInv).Add(sym(LauWrAn)))),
			wrB.Add(wlB).Neg(),
		},
	}
	for i := range cells {
		for j := range cells[i] {
			if err = wq.Set(i, j, cells[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return wq, nil
}
