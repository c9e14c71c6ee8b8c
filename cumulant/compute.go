// SPDX-License-Identifier: MIT

package cumulant

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-scgf/core"
	"github.com/katalvlaran/lvlath-scgf/expr"
	"github.com/katalvlaran/lvlath-scgf/matrix"
	"github.com/katalvlaran/lvlath-scgf/validate"
)

// Compute returns the current vector and covariance matrix of m for the
// given chords, one entry per chord in chord order.
//
// Steps:
//  1. Validate m and chords; a failure returns the *validate.Error before
//     any algebra is done.
//  2. Build W, tilt it along the chords.
//  3. Extract the cancelled characteristic-polynomial coefficients a.
//  4. c_i = −∂_i a0 / a1 at zero tilt, cancelled.
//  5. With simplification: parametrize c, apply simp, cancel.
//  6. Lower triangle of C; with simplification every term is parametrized,
//     transformed and cancelled on its own before combining.
//  7. Without simplification: parametrize c now.
//  8. Cancel c.
//  9. Parametrize C; with simplification cancel it.
//  10. (Zero tilt is implicit: germ coefficients are already evaluated at q = 0.)
//  11. Mirror the lower triangle.
//  12. Apply unsimp to both results.
//
// m is only read. Substitution failures are returned wrapped.
func Compute(m *core.Model, chords []core.Edge, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)
	vopts := append([]validate.Option{validate.WithLogger(o.logger)}, o.validation...)
	if err := validate.Validate(m, chords, vopts...); err != nil {
		o.logger.Warn("model rejected", zap.Error(err))
		return nil, fmt.Errorf("Compute: %w", err)
	}
	clk := newClock(&o)

	w, err := matrix.Generator(m)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	wq, tilts, err := matrix.Tilt(w, chords)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	clk.phase(PhaseGenerator)

	res, err := fromTilted(wq, tilts, &o, clk)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	res.Chords = append([]core.Edge(nil), chords...)

	return res, nil
}

// FromTilted runs the cumulant extraction (steps 3 to 12 of Compute) on an
// already tilted generator in b tilt variables. No validation is done; use it
// for models whose counting is not a chord tilt, such as two-state rings
// with several channels. Every non-scalar entry must be a germ in exactly b
// variables and, for b > 0, at least one entry must be; otherwise
// expr.ErrTiltIndex is returned.
func FromTilted(wq *matrix.Dense[expr.Series], b int, opts ...Option) (*Result, error) {
	if wq == nil {
		return nil, fmt.Errorf("FromTilted: %w", matrix.ErrNilMatrix)
	}
	if err := checkTilts(wq, b); err != nil {
		return nil, fmt.Errorf("FromTilted: %w", err)
	}
	o := gatherOptions(opts)
	res, err := fromTilted(wq, matrix.TiltSymbols(b), &o, newClock(&o))
	if err != nil {
		return nil, fmt.Errorf("FromTilted: %w", err)
	}

	return res, nil
}

// checkTilts verifies that wq is tilted in exactly b variables.
func checkTilts(wq *matrix.Dense[expr.Series], b int) error {
	seen := 0
	for i := 0; i < wq.Rows(); i++ {
		for j := 0; j < wq.Cols(); j++ {
			s, err := wq.At(i, j)
			if err != nil {
				return err
			}
			switch n := s.Vars(); {
			case n == 0:
			case n != b:
				return fmt.Errorf("entry (%d,%d) has %d tilts, want %d: %w", i, j, n, b, expr.ErrTiltIndex)
			default:
				seen = n
			}
		}
	}
	if b > 0 && seen == 0 {
		return fmt.Errorf("no entry has %d tilts: %w", b, expr.ErrTiltIndex)
	}

	return nil
}

// engine carries the per-call state of one extraction.
type engine struct {
	o          *Options
	a0, a1, a2 expr.Series
	den        expr.Rat // a1 at zero tilt
}

// stage parametrizes r, applies the forward transform and cancels.
func (e *engine) stage(r expr.Rat) (expr.Rat, error) {
	r, err := r.Subst(e.o.param)
	if err != nil {
		return expr.Rat{}, err
	}
	if r, err = r.Subst(e.o.simp.Simp()); err != nil {
		return expr.Rat{}, err
	}

	return r.Cancel(), nil
}

func fromTilted(wq *matrix.Dense[expr.Series], tilts []expr.Symbol, o *Options, clk *clock) (*Result, error) {
	b := len(tilts)
	simplify := o.simp.Enabled()

	// 3. Coefficients, ascending; N >= 1 gives at least a0 and a1.
	a, err := matrix.Coefficients(wq, true)
	if err != nil {
		return nil, err
	}
	e := &engine{o: o, a0: a[0], a1: a[1]}
	if len(a) > 2 {
		e.a2 = a[2]
	}
	e.den = e.a1.At0()
	if e.den.IsZero() {
		return nil, ErrDegenerate
	}
	clk.phase(PhaseCharPoly)

	// 4. Current vector.
	c := make([]expr.Rat, b)
	for i := range c {
		d, err := e.a0.D(i)
		if err != nil {
			return nil, err
		}
		q, err := d.Neg().Quo(e.den)
		if err != nil {
			return nil, err
		}
		c[i] = q.Cancel()
	}
	clk.phase(PhaseCurrent)

	// 5. Current in the transformed space.
	if simplify {
		for i := range c {
			if c[i], err = e.stage(c[i]); err != nil {
				return nil, fmt.Errorf("current %d: %w", i, err)
			}
		}
		clk.phase(PhaseSimplifyCurrent)
	}

	// 6. Covariance, lower triangle.
	cov := make([][]expr.Rat, b)
	for i := range cov {
		cov[i] = make([]expr.Rat, b)
		for j := 0; j <= i; j++ {
			if cov[i][j], err = e.covariance(i, j, c, simplify); err != nil {
				return nil, fmt.Errorf("covariance %d,%d: %w", i, j, err)
			}
		}
	}
	clk.phase(PhaseCovariance)

	// 7./8. Deferred parametrization, then the always-safe cancel of c.
	for i := range c {
		if !simplify {
			if c[i], err = c[i].Subst(o.param); err != nil {
				return nil, fmt.Errorf("current %d: %w", i, err)
			}
		}
		c[i] = c[i].Cancel()
	}

	// 9. Parametrize C and, when asked, simplify the whole matrix.
	for i := range cov {
		for j := 0; j <= i; j++ {
			if cov[i][j], err = cov[i][j].Subst(o.param); err != nil {
				return nil, fmt.Errorf("covariance %d,%d: %w", i, j, err)
			}
			if simplify {
				cov[i][j] = cov[i][j].Cancel()
			}
		}
	}
	if simplify {
		clk.phase(PhaseSimplifyCovariance)
	}

	// 11. Symmetrize.
	for i := range cov {
		for j := 0; j < i; j++ {
			cov[j][i] = cov[i][j]
		}
	}

	// 12. Back to the caller's variables.
	unsimp := o.simp.Unsimp()
	for i := range c {
		if c[i], err = c[i].Subst(unsimp); err != nil {
			return nil, fmt.Errorf("current %d: %w", i, err)
		}
		for j := range cov[i] {
			if cov[i][j], err = cov[i][j].Subst(unsimp); err != nil {
				return nil, fmt.Errorf("covariance %d,%d: %w", i, j, err)
			}
		}
	}
	clk.phase(PhaseDone)

	return &Result{Current: c, Covariance: cov, Tilts: tilts}, nil
}

// covariance combines the four numerator terms of C[i][j].
func (e *engine) covariance(i, j int, c []expr.Rat, simplify bool) (expr.Rat, error) {
	d2, err := e.a0.D2(i, j)
	if err != nil {
		return expr.Rat{}, err
	}
	dI, err := e.a1.D(i)
	if err != nil {
		return expr.Rat{}, err
	}
	dJ, err := e.a1.D(j)
	if err != nil {
		return expr.Rat{}, err
	}
	// a2·c_i·c_j is reduced one factor at a time so that the squared
	// normalization never appears uncancelled.
	quad := e.a2.At0().Mul(c[i])
	if simplify {
		quad = quad.Cancel()
	}
	quad = quad.Mul(c[j])
	if simplify {
		quad = quad.Cancel()
	}
	terms := []expr.Rat{
		d2,
		dI.Mul(c[j]),
		dJ.Mul(c[i]),
		quad.Scale(big.NewRat(2, 1)),
	}
	den := e.den
	if simplify {
		for k := range terms {
			if terms[k], err = e.stage(terms[k]); err != nil {
				return expr.Rat{}, err
			}
		}
		if den, err = e.stage(den); err != nil {
			return expr.Rat{}, err
		}
	}
	num := expr.Rat{}
	for _, t := range terms {
		num = num.Add(t)
	}

	return num.Neg().Quo(den)
}
