// SPDX-License-Identifier: MIT

package cumulant_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lvlath-scgf/core"
	"github.com/katalvlaran/lvlath-scgf/cumulant"
	"github.com/katalvlaran/lvlath-scgf/expr"
	"github.com/katalvlaran/lvlath-scgf/spanning"
)

// TestCovarianceProperties runs the engine on a 4-ring with a diagonal and
// random integer rates.
func TestCovarianceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 15
	properties := gopter.NewProperties(parameters)

	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}}
	build := func(rs []int) (*core.Model, []core.Edge, error) {
		in := make(map[core.Edge]expr.Rat, 2*len(pairs))
		for k, p := range pairs {
			in[core.Edge{From: p[0], To: p[1]}] = expr.RatInt(int64(rs[2*k]))
			in[core.Edge{From: p[1], To: p[0]}] = expr.RatInt(int64(rs[2*k+1]))
		}
		m, err := core.FromRates(in)
		if err != nil {
			return nil, nil, err
		}
		chords, err := spanning.Chords(m)

		return m, chords, err
	}

	properties.Property("covariance is symmetric with a non-negative diagonal", prop.ForAll(
		func(rs []int) bool {
			m, chords, err := build(rs)
			if err != nil {
				return false
			}
			res, err := cumulant.Compute(m, chords)
			if err != nil || res.Len() != 2 {
				return false
			}
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					if !res.Covariance[i][j].Equal(res.Covariance[j][i]) {
						return false
					}
				}
				v, ok := res.Covariance[i][i].IsConst()
				if !ok || v.Sign() < 0 {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(10, gen.IntRange(1, 6)),
	))

	properties.Property("reversing the chord flips the current", prop.ForAll(
		func(rs []int) bool {
			m, chords, err := build(rs)
			if err != nil {
				return false
			}
			flipped := []core.Edge{chords[0].Reverse(), chords[1]}
			a, err := cumulant.Compute(m, chords)
			if err != nil {
				return false
			}
			b, err := cumulant.Compute(m, flipped)
			if err != nil {
				return false
			}
			return a.Current[0].Equal(b.Current[0].Neg()) &&
				a.Current[1].Equal(b.Current[1]) &&
				a.Covariance[0][0].Equal(b.Covariance[0][0])
		},
		gen.SliceOfN(10, gen.IntRange(1, 6)),
	))

	properties.TestingRun(t)
}
