// SPDX-License-Identifier: MIT

package spanning

import "errors"

// ErrEmptyModel indicates a nil model or a model without any state.
var ErrEmptyModel = errors.New("spanning: empty model")

// ErrDisconnected indicates that no spanning tree exists for the allowed edges.
var ErrDisconnected = errors.New("spanning: graph is disconnected")

// ErrNotChord indicates a chord that is absent from the model or part of the tree.
var ErrNotChord = errors.New("spanning: edge is not a chord")

// unionFind is a disjoint-set forest over dense state indices.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// find returns the root of u, compressing the path on the way (iteratively).
func (uf *unionFind) find(u int) int {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}

	return u
}

// union merges the sets of u and v; it reports false when they were already joined.
func (uf *unionFind) union(u, v int) bool {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return false
	}
	// Attach the lower-rank tree under the higher-rank root.
	switch {
	case uf.rank[ru] < uf.rank[rv]:
		uf.parent[ru] = rv
	case uf.rank[ru] > uf.rank[rv]:
		uf.parent[rv] = ru
	default:
		uf.parent[rv] = ru
		uf.rank[ru]++
	}

	return true
}
