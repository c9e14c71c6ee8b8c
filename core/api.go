// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: thin public facade: FromRates constructor and the Stats snapshot.

package core

import (
	"fmt"

	"github.com/katalvlaran/lvlath-scgf/expr"
)

// FromRates builds a Model from an edge→rate table, the shape in which model
// providers usually write their topologies.
//
// Errors:
//   - whatever SetRate reports for the first offending edge, in sorted edge order.
//
// Complexity: O(E log E).
func FromRates(rates map[Edge]expr.Rat, opts ...ModelOption) (*Model, error) {
	m := NewModel(opts...)
	edges := make([]Edge, 0, len(rates))
	for e := range rates {
		edges = append(edges, e)
	}
	sortEdges(edges)
	for _, e := range edges {
		if err := m.SetRate(e.From, e.To, rates[e]); err != nil {
			return nil, fmt.Errorf("FromRates: %w", err)
		}
	}

	return m, nil
}

// ModelStats is a read-only summary of a Model.
type ModelStats struct {
	Name            string
	StateCount      int // N
	EdgeCount       int // directed edges |Model|
	UndirectedCount int // edges after collapsing reverse pairs
	Symbols         int // distinct symbols across all rates
}

// Stats returns a deterministic summary, for logs and admission checks.
// Complexity: O(E·size(rate)).
func (m *Model) Stats() ModelStats {
	syms := make(map[expr.Symbol]struct{})
	for _, r := range m.Rates() {
		for _, s := range r.Vars() {
			syms[s] = struct{}{}
		}
	}

	return ModelStats{
		Name:            m.name,
		StateCount:      m.StateCount(),
		EdgeCount:       m.EdgeCount(),
		UndirectedCount: len(m.UndirectedEdges()),
		Symbols:         len(syms),
	}
}
