// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlath-scgf/core"
	"github.com/katalvlaran/lvlath-scgf/expr"
	"github.com/katalvlaran/lvlath-scgf/matrix"
	"github.com/katalvlaran/lvlath-scgf/spanning"
)

// benchRing builds a symbolic ring of n states.
func benchRing(b *testing.B, n int) *core.Model {
	b.Helper()
	in := make(map[core.Edge]expr.Rat, 2*n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		in[core.Edge{From: i, To: j}] = expr.Sym(expr.Symbol(fmt.Sprintf("k%d", i)))
		in[core.Edge{From: j, To: i}] = expr.Sym(expr.Symbol(fmt.Sprintf("r%d", i)))
	}
	m, err := core.FromRates(in)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkCoefficientsRing(b *testing.B) {
	for _, n := range []int{3, 4, 5} {
		m := benchRing(b, n)
		w, err := matrix.Generator(m)
		if err != nil {
			b.Fatal(err)
		}
		chords, err := spanning.Chords(m)
		if err != nil {
			b.Fatal(err)
		}
		wq, _, err := matrix.Tilt(w, chords)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := matrix.Coefficients(wq, true); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
