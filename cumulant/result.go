// SPDX-License-Identifier: MIT

package cumulant

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/lvlath-scgf/core"
	"github.com/katalvlaran/lvlath-scgf/expr"
)

// Result holds the first two scaled cumulants of the chord currents.
// Covariance is symmetric; Tilts and Chords are aligned with its indices.
// Chords is nil for results of FromTilted.
type Result struct {
	Current    []expr.Rat
	Covariance [][]expr.Rat
	Tilts      []expr.Symbol
	Chords     []core.Edge
}

// Len returns the number of independent currents.
func (r *Result) Len() int { return len(r.Current) }

func (r *Result) check(i int) error {
	if i < 0 || i >= len(r.Current) {
		return fmt.Errorf("chord %d of %d: %w", i, len(r.Current), ErrIndex)
	}
	return nil
}

// Diffusion returns the diffusion coefficient C[i][i]/2 of current i.
func (r *Result) Diffusion(i int) (expr.Rat, error) {
	if err := r.check(i); err != nil {
		return expr.Rat{}, err
	}
	return r.Covariance[i][i].Scale(big.NewRat(1, 2)).Cancel(), nil
}

// Fano returns the Fano factor C[i][i]/c[i] of current i.
func (r *Result) Fano(i int) (expr.Rat, error) {
	if err := r.check(i); err != nil {
		return expr.Rat{}, err
	}
	f, err := r.Covariance[i][i].Quo(r.Current[i])
	if err != nil {
		return expr.Rat{}, fmt.Errorf("fano %d: %w", i, err)
	}

	return f.Cancel(), nil
}

// Cancel returns a copy with every entry fully cancelled.
func (r *Result) Cancel() *Result {
	out := &Result{
		Current:    make([]expr.Rat, len(r.Current)),
		Covariance: make([][]expr.Rat, len(r.Covariance)),
		Tilts:      r.Tilts,
		Chords:     r.Chords,
	}
	for i, c := range r.Current {
		out.Current[i] = c.Cancel()
	}
	for i, row := range r.Covariance {
		out.Covariance[i] = make([]expr.Rat, len(row))
		for j, v := range row {
			out.Covariance[i][j] = v.Cancel()
		}
	}

	return out
}

// Subst substitutes s into every entry.
func (r *Result) Subst(s expr.Subst) (*Result, error) {
	out := &Result{
		Current:    make([]expr.Rat, len(r.Current)),
		Covariance: make([][]expr.Rat, len(r.Covariance)),
		Tilts:      r.Tilts,
		Chords:     r.Chords,
	}
	var err error
	for i, c := range r.Current {
		if out.Current[i], err = c.Subst(s); err != nil {
			return nil, err
		}
	}
	for i, row := range r.Covariance {
		out.Covariance[i] = make([]expr.Rat, len(row))
		for j, v := range row {
			if out.Covariance[i][j], err = v.Subst(s); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Float evaluates current and covariance at a numeric point.
func (r *Result) Float(vals map[expr.Symbol]float64) ([]float64, [][]float64, error) {
	c := make([]float64, len(r.Current))
	cov := make([][]float64, len(r.Covariance))
	var err error
	for i, v := range r.Current {
		if c[i], err = v.Float(vals); err != nil {
			return nil, nil, fmt.Errorf("current %d: %w", i, err)
		}
	}
	for i, row := range r.Covariance {
		cov[i] = make([]float64, len(row))
		for j, v := range row {
			if cov[i][j], err = v.Float(vals); err != nil {
				return nil, nil, fmt.Errorf("covariance %d,%d: %w", i, j, err)
			}
		}
	}

	return c, cov, nil
}

// Equal reports whether both results hold the same rational functions.
func (r *Result) Equal(o *Result) bool {
	if len(r.Current) != len(o.Current) || len(r.Covariance) != len(o.Covariance) {
		return false
	}
	for i := range r.Current {
		if !r.Current[i].Equal(o.Current[i]) {
			return false
		}
		for j := range r.Covariance[i] {
			if !r.Covariance[i][j].Equal(o.Covariance[i][j]) {
				return false
			}
		}
	}

	return true
}

// String renders "c = [...]" followed by one covariance row per line.
func (r *Result) String() string {
	var b strings.Builder
	b.WriteString("c = [")
	for i, c := range r.Current {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteString("]\nC =\n")
	for _, row := range r.Covariance {
		b.WriteString("  [")
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(v.String())
		}
		b.WriteString("]\n")
	}

	return b.String()
}
