// SPDX-License-Identifier: MIT

package spanning

import (
	"fmt"

	"github.com/katalvlaran/lvlath-scgf/core"
)

// BettiNumber returns |Model|/2 − N + 1, the number of chords a consistent
// chord set must have. The value assumes a reversible, connected model.
func BettiNumber(m *core.Model) int {
	if m == nil {
		return 0
	}
	return m.EdgeCount()/2 - m.StateCount() + 1
}

// Kruskal returns a spanning tree of the undirected collapse of m that uses
// none of the excluded edges (orientation is ignored for exclusion).
//
// Steps:
//  1. Validate: m non-nil with at least one state, else ErrEmptyModel.
//  2. Map states to dense indices (states need not be 0..N-1 here).
//  3. Walk UndirectedEdges() in sorted order, skipping excluded ones; keep an
//     edge whenever its endpoints lie in different union-find components.
//  4. Stop at N−1 tree edges; fewer means ErrDisconnected.
//
// Returns the tree edges as (min, max) representatives in insertion order.
// Complexity: O(E log E + α(N)·E).
func Kruskal(m *core.Model, excluded []core.Edge) ([]core.Edge, error) {
	if m == nil {
		return nil, ErrEmptyModel
	}
	states := m.States()
	if len(states) == 0 {
		return nil, ErrEmptyModel
	}
	index := make(map[int]int, len(states))
	for i, s := range states {
		index[s] = i
	}
	skip := make(map[core.Edge]struct{}, len(excluded))
	for _, e := range excluded {
		skip[e.Undirected()] = struct{}{}
	}

	uf := newUnionFind(len(states))
	tree := make([]core.Edge, 0, len(states)-1)
	for _, e := range m.UndirectedEdges() {
		if len(tree) == len(states)-1 {
			break
		}
		if _, ok := skip[e]; ok {
			continue
		}
		if uf.union(index[e.From], index[e.To]) {
			tree = append(tree, e)
		}
	}
	if len(tree) < len(states)-1 {
		return nil, fmt.Errorf("Kruskal: %d of %d tree edges: %w", len(tree), len(states)-1, ErrDisconnected)
	}

	return tree, nil
}

// IsSpanningTreeComplement reports whether removing the chords (with their
// reverses) from m leaves exactly a spanning tree: N−1 undirected edges that
// connect every state.
func IsSpanningTreeComplement(m *core.Model, chords []core.Edge) bool {
	if m == nil {
		return false
	}
	removed := make(map[core.Edge]struct{}, len(chords))
	for _, c := range chords {
		removed[c.Undirected()] = struct{}{}
	}
	rest := 0
	for _, e := range m.UndirectedEdges() {
		if _, ok := removed[e]; !ok {
			rest++
		}
	}
	if rest != m.StateCount()-1 {
		return false
	}
	_, err := Kruskal(m, chords)

	return err == nil
}
