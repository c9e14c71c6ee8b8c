// SPDX-License-Identifier: MIT
//
// File: methods_states.go
// Role: state-space queries derived from the edge catalog.

package core

import "sort"

// States returns the state space, the sorted union of all edge endpoints.
// Complexity: O(E + N log N).
func (m *Model) States() []int {
	m.mu.RLock()
	seen := make(map[int]struct{}, 2*len(m.rates))
	for e := range m.rates {
		seen[e.From] = struct{}{}
		seen[e.To] = struct{}{}
	}
	m.mu.RUnlock()
	out := make([]int, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Ints(out)

	return out
}

// StateCount returns N, the size of the state space.
func (m *Model) StateCount() int { return len(m.States()) }

// Neighbors returns the states reachable from s in one transition, sorted.
func (m *Model) Neighbors(s int) []int {
	m.mu.RLock()
	var out []int
	for e := range m.rates {
		if e.From == s {
			out = append(out, e.To)
		}
	}
	m.mu.RUnlock()
	sort.Ints(out)

	return out
}
