// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: snapshots of a Model (Clone, Rates).
// Concurrency:
//   - Read lock for the snapshot; the source is never mutated.

package core

import "github.com/katalvlaran/lvlath-scgf/expr"

// Clone returns an independent copy with the same name and rates.
// Rate values are immutable and shared.
// Complexity: O(E).
func (m *Model) Clone() *Model {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c := NewModel(WithName(m.name))
	for e, r := range m.rates {
		c.rates[e] = r
	}

	return c
}

// Rates returns a snapshot of the rate catalog.
func (m *Model) Rates() map[Edge]expr.Rat {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[Edge]expr.Rat, len(m.rates))
	for e, r := range m.rates {
		out[e] = r
	}

	return out
}

// MapRates returns a copy of m whose every rate is replaced by f(edge, rate).
// The first error aborts the copy.
func (m *Model) MapRates(f func(Edge, expr.Rat) (expr.Rat, error)) (*Model, error) {
	c := NewModel(WithName(m.name))
	for _, e := range m.Edges() {
		r, _ := m.Rate(e)
		v, err := f(e, r)
		if err != nil {
			return nil, err
		}
		c.rates[e] = v
	}

	return c, nil
}
