// SPDX-License-Identifier: MIT
//
// File: methods_rates.go
// Role: rate catalog lifecycle and queries: SetRate/RemoveRate/Rate/HasEdge/
//       Edges/EdgeCount/UndirectedEdges.
// Determinism:
//   - Edges() and UndirectedEdges() are sorted by (From, To).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath-scgf/expr"
)

// SetRate sets the rate of the transition from → to, replacing any previous rate.
//
// Errors:
//   - ErrNegativeState if from < 0 or to < 0.
//   - ErrLoopNotAllowed if from == to.
//
// Complexity: O(1).
func (m *Model) SetRate(from, to int, rate expr.Rat) error {
	if from < 0 || to < 0 {
		return fmt.Errorf("SetRate(%d,%d): %w", from, to, ErrNegativeState)
	}
	if from == to {
		return fmt.Errorf("SetRate(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rates[Edge{From: from, To: to}] = rate

	return nil
}

// RemoveRate deletes the transition from → to.
// Returns ErrEdgeNotFound when it does not exist.
func (m *Model) RemoveRate(from, to int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := Edge{From: from, To: to}
	if _, ok := m.rates[e]; !ok {
		return fmt.Errorf("RemoveRate(%d,%d): %w", from, to, ErrEdgeNotFound)
	}
	delete(m.rates, e)

	return nil
}

// Rate returns the rate of e and whether e exists.
func (m *Model) Rate(e Edge) (expr.Rat, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rates[e]

	return r, ok
}

// HasEdge reports whether the transition from → to exists.
func (m *Model) HasEdge(from, to int) bool {
	_, ok := m.Rate(Edge{From: from, To: to})
	return ok
}

// Edges returns all directed edges sorted by (From, To).
// Complexity: O(E log E).
func (m *Model) Edges() []Edge {
	m.mu.RLock()
	out := make([]Edge, 0, len(m.rates))
	for e := range m.rates {
		out = append(out, e)
	}
	m.mu.RUnlock()
	sortEdges(out)

	return out
}

// EdgeCount returns the number of directed edges |Model|.
func (m *Model) EdgeCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.rates)
}

// UndirectedEdges collapses every edge with its reverse and returns the
// distinct representatives (min, max), sorted.
func (m *Model) UndirectedEdges() []Edge {
	m.mu.RLock()
	seen := make(map[Edge]struct{}, len(m.rates))
	for e := range m.rates {
		seen[e.Undirected()] = struct{}{}
	}
	m.mu.RUnlock()
	out := make([]Edge, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// sortEdges sorts in place by (From, To).
func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].Less(es[j]) })
}
