// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlath-scgf/core"
	"github.com/katalvlaran/lvlath-scgf/expr"
	"github.com/katalvlaran/lvlath-scgf/validate"
)

// Generator builds the N×N Markov generator of m.
//
// Implementation:
//   - Stage 1: require an indexed model (states 0..N-1), else ErrNotIndexed.
//   - Stage 2: copy every rate into W[from, to]; rates are not checked for sign.
//   - Stage 3: set W[j,j] = −Σ_{i≠j} W[j,i].
//   - Stage 4: re-check that every row sums to zero (ErrRowSum).
//
// The model is only read.
func Generator(m *core.Model) (*Dense[expr.Rat], error) {
	if m == nil {
		return nil, fmt.Errorf("Generator: %w", core.ErrNilModel)
	}
	if !validate.IsIndexed(m) {
		return nil, fmt.Errorf("Generator(%v): %w", m.States(), ErrNotIndexed)
	}
	n := m.StateCount()
	w, err := NewDense(n, n, expr.Rat{})
	if err != nil {
		return nil, fmt.Errorf("Generator: %w", err)
	}
	for e, rate := range m.Rates() {
		if err = w.Set(e.From, e.To, rate); err != nil {
			return nil, fmt.Errorf("Generator: %w", err)
		}
	}
	for j := 0; j < n; j++ {
		out := expr.Rat{}
		for i := 0; i < n; i++ {
			if i != j {
				out = out.Add(w.at(j, i))
			}
		}
		w.data[j*n+j] = out.Neg()
	}
	if err = CheckRowSums(w); err != nil {
		return nil, fmt.Errorf("Generator: %w", err)
	}

	return w, nil
}

// CheckRowSums returns ErrRowSum for the first row of w not summing to zero.
func CheckRowSums[T Element[T]](w *Dense[T]) error {
	if w == nil {
		return ErrNilMatrix
	}
	for i := 0; i < w.r; i++ {
		s, _ := w.RowSum(i)
		if !s.IsZero() {
			return fmt.Errorf("row %d sums to %v: %w", i, s, ErrRowSum)
		}
	}

	return nil
}

// TiltSymbols returns the tilt variables q_{0}..q_{b-1}.
func TiltSymbols(b int) []expr.Symbol {
	out := make([]expr.Symbol, b)
	for k := range out {
		out[k] = expr.Symbol(fmt.Sprintf("q_{%d}", k))
	}
	return out
}

// Lift embeds w as germs in b tilt variables with no tilt applied.
func Lift(w *Dense[expr.Rat], b int) *Dense[expr.Series] {
	return Map(w, expr.Constant(b, expr.Rat{}), func(r expr.Rat) expr.Series {
		return expr.Constant(b, r)
	})
}

// AtZeroTilt evaluates every germ of wq at q = 0.
func AtZeroTilt(wq *Dense[expr.Series]) *Dense[expr.Rat] {
	return Map(wq, expr.Rat{}, expr.Series.At0)
}

// Tilt returns the tilted generator of w for the given chords, together
// with the tilt variables aligned with the chord order.
//
// For chord k = (i → j), Wq[i,j] = W[i,j]·exp(q_k) and Wq[j,i] = W[j,i]·exp(−q_k);
// every other entry, the diagonal included, is copied. Chords must touch
// disjoint coordinates, so their processing order is irrelevant.
//
// Errors:
//   - ErrNonSquare for a non-square w.
//   - ErrChordOutOfRange if a chord endpoint is not a row of w.
//   - ErrChordOverlap if two chords share a coordinate or a chord is a loop.
func Tilt(w *Dense[expr.Rat], chords []core.Edge) (*Dense[expr.Series], []expr.Symbol, error) {
	if w == nil {
		return nil, nil, fmt.Errorf("Tilt: %w", ErrNilMatrix)
	}
	if w.r != w.c {
		return nil, nil, fmt.Errorf("Tilt(%dx%d): %w", w.r, w.c, ErrNonSquare)
	}
	b := len(chords)
	wq := Lift(w, b)
	touched := make(map[core.Edge]int, 2*b)
	for k, ch := range chords {
		if !w.inRange(ch.From, ch.To) {
			return nil, nil, fmt.Errorf("Tilt(chord %d %s): %w", k, ch, ErrChordOutOfRange)
		}
		if ch.From == ch.To {
			return nil, nil, fmt.Errorf("Tilt(chord %d %s): %w", k, ch, ErrChordOverlap)
		}
		for _, e := range []core.Edge{ch, ch.Reverse()} {
			if prev, dup := touched[e]; dup {
				return nil, nil, fmt.Errorf("Tilt(chords %d and %d at %s): %w", prev, k, e, ErrChordOverlap)
			}
			touched[e] = k
		}
		fwd, err := expr.Exp(b, k, 1)
		if err != nil {
			return nil, nil, fmt.Errorf("Tilt: %w", err)
		}
		rev, err := expr.Exp(b, k, -1)
		if err != nil {
			return nil, nil, fmt.Errorf("Tilt: %w", err)
		}
		i, j := ch.From, ch.To
		wq.data[i*wq.c+j] = wq.at(i, j).Mul(fwd)
		wq.data[j*wq.c+i] = wq.at(j, i).Mul(rev)
	}

	return wq, TiltSymbols(b), nil
}
