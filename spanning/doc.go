// Package spanning provides the cycle-space bookkeeping of a Model: its
// first Betti number, spanning trees of its undirected collapse, canonical
// chord sets and the fundamental cycle of every chord.
//
// What & Why
//
//   - A reversible Model collapses to an undirected simple graph with
//     |Model|/2 edges on N states. Its cycle space has dimension
//     B = |Model|/2 − N + 1 (connected case), the first Betti number.
//   - Removing a spanning tree T leaves exactly B edges, the chords. Each
//     chord closes one fundamental cycle with the tree path between its
//     endpoints; the B fundamental cycles form a basis of the cycle space and
//     the chord currents are the independent steady-state currents.
//
// Algorithms
//
//   - Kruskal: union-find (path compression, union by rank) over the
//     undirected edges in sorted order, skipping excluded edges. Without
//     weights the sorted order plays the role of the weight order, which
//     makes the resulting tree deterministic.
//   - FundamentalCycles: breadth-first search over the tree from the chord's
//     head; the parent links give the unique tree path back to its tail.
//
// Complexity:
//
//   - Kruskal: O(E log E + α(N)·E).
//   - FundamentalCycles: O(B·(N + E)).
package spanning
