// SPDX-License-Identifier: MIT

package spanning

import (
	"fmt"

	"github.com/katalvlaran/lvlath-scgf/core"
)

// Chords returns a canonical chord set of m: every undirected edge outside
// the Kruskal tree, oriented from the lower to the higher state, in sorted order.
// The result always passes IsSpanningTreeComplement.
func Chords(m *core.Model) ([]core.Edge, error) {
	tree, err := Kruskal(m, nil)
	if err != nil {
		return nil, fmt.Errorf("Chords: %w", err)
	}
	inTree := make(map[core.Edge]struct{}, len(tree))
	for _, e := range tree {
		inTree[e] = struct{}{}
	}
	var chords []core.Edge
	for _, e := range m.UndirectedEdges() {
		if _, ok := inTree[e]; !ok {
			chords = append(chords, e)
		}
	}

	return chords, nil
}

// FundamentalCycles returns, for every chord c = (i → j), the state sequence
// of its fundamental cycle: i, j, then the tree path from j back to i
// (the final i is not repeated). The tree is the complement of the chords.
//
// Errors:
//   - ErrNotChord if a chord is missing from m.
//   - ErrDisconnected if the complement of the chords does not span m.
func FundamentalCycles(m *core.Model, chords []core.Edge) ([][]int, error) {
	tree, err := Kruskal(m, chords)
	if err != nil {
		return nil, fmt.Errorf("FundamentalCycles: %w", err)
	}
	adj := make(map[int][]int, len(tree)+1)
	for _, e := range tree {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	cycles := make([][]int, 0, len(chords))
	for _, c := range chords {
		if !m.HasEdge(c.From, c.To) && !m.HasEdge(c.To, c.From) {
			return nil, fmt.Errorf("FundamentalCycles(%s): %w", c, ErrNotChord)
		}
		path := treePath(adj, c.To, c.From)
		if path == nil {
			return nil, fmt.Errorf("FundamentalCycles(%s): %w", c, ErrDisconnected)
		}
		// path runs j … i; the cycle is i, then j … (excluding the closing i).
		cycle := append([]int{c.From}, path[:len(path)-1]...)
		cycles = append(cycles, cycle)
	}

	return cycles, nil
}

// treePath runs a breadth-first search from src over adj and returns the
// states from src to dst inclusive, or nil when dst is unreachable.
func treePath(adj map[int][]int, src, dst int) []int {
	parent := map[int]int{src: src}
	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == dst {
			break
		}
		for _, v := range adj[u] {
			if _, seen := parent[v]; !seen {
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}
	if _, ok := parent[dst]; !ok {
		return nil
	}
	var rev []int
	for v := dst; v != src; v = parent[v] {
		rev = append(rev, v)
	}
	rev = append(rev, src)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
