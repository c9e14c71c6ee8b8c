// SPDX-License-Identifier: MIT

package models

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-scgf/core"
	"github.com/katalvlaran/lvlath-scgf/expr"
)

// ErrTooFewStates is returned for topologies that need more states.
var ErrTooFewStates = errors.New("models: too few states")

// Rate returns the conventional rate symbol of the edge i→j, with 1-based
// state numbers: Rate(0, 1) is w_{12}. Indices above 9 are comma separated.
func Rate(i, j int) expr.Symbol {
	if i >= 9 || j >= 9 {
		return expr.Symbol(fmt.Sprintf("w_{%d,%d}", i+1, j+1))
	}
	return expr.Symbol(fmt.Sprintf("w_{%d%d}", i+1, j+1))
}

// FromPairs builds the reversible model with both orientations of every
// pair, each rate being its Rate symbol.
func FromPairs(pairs [][2]int, opts ...core.ModelOption) (*core.Model, error) {
	rates := make(map[core.Edge]expr.Rat, 2*len(pairs))
	for _, p := range pairs {
		rates[core.Edge{From: p[0], To: p[1]}] = expr.Sym(Rate(p[0], p[1]))
		rates[core.Edge{From: p[1], To: p[0]}] = expr.Sym(Rate(p[1], p[0]))
	}

	return core.FromRates(rates, opts...)
}

// Ring returns the reversible ring 0–1–…–(n−1)–0.
func Ring(n int) (*core.Model, error) {
	if n < 2 {
		return nil, fmt.Errorf("Ring(%d): %w", n, ErrTooFewStates)
	}
	pairs := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, [2]int{i, (i + 1) % n})
	}

	return FromPairs(pairs, core.WithName(fmt.Sprintf("ring%d", n)))
}

// Complete returns the reversible model with an edge between every pair of
// its n states.
func Complete(n int) (*core.Model, error) {
	if n < 2 {
		return nil, fmt.Errorf("Complete(%d): %w", n, ErrTooFewStates)
	}
	var pairs [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	return FromPairs(pairs, core.WithName(fmt.Sprintf("complete%d", n)))
}
