// SPDX-License-Identifier: MIT

package validate

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-scgf/core"
	"github.com/katalvlaran/lvlath-scgf/spanning"
)

// Validate runs the checks in order and returns the first failure as *Error,
// or nil when m and chords are consistent. A nil model is core.ErrNilModel.
func Validate(m *core.Model, chords []core.Edge, opts ...Option) error {
	if m == nil {
		return core.ErrNilModel
	}
	o := gatherOptions(opts)
	edges := m.Edges()

	// 1. Reversibility: collapse, rebuild both orientations, compare sets.
	if e, ok := missingReverse(m, edges); !ok {
		return fail(CheckReversible, ReasonNone, "edge %s has no reverse %s", e, e.Reverse())
	}
	// 2. Even edge count.
	if len(edges)%2 != 0 {
		return fail(CheckEvenEdges, ReasonNone, "%d directed edges", len(edges))
	}
	// 3. Betti number.
	if want := spanning.BettiNumber(m); len(chords) != want {
		r := ReasonTooSmall
		if len(chords) > want {
			r = ReasonTooLarge
		}
		return fail(CheckBetti, r, "chord set %s: %d chords, want %d", r, len(chords), want)
	}
	// 4. Indexing.
	if !IsIndexed(m) {
		return fail(CheckIndexed, ReasonNone, "states %v are not 0..%d", m.States(), m.StateCount()-1)
	}
	// 5. Containment, exact orientation.
	for _, c := range chords {
		if !m.HasEdge(c.From, c.To) {
			return fail(CheckChordsContained, ReasonNone, "chord %s is not an edge", c)
		}
	}
	// 6. Distinctness of undirected representatives.
	seen := make(map[core.Edge]core.Edge, len(chords))
	for _, c := range chords {
		if prev, dup := seen[c.Undirected()]; dup {
			return fail(CheckChordsDistinct, ReasonNone, "chords %s and %s share an edge", prev, c)
		}
		seen[c.Undirected()] = c
	}
	// 7. Spanning-tree complement.
	if o.spanningTree && !spanning.IsSpanningTreeComplement(m, chords) {
		return fail(CheckSpanningTree, ReasonNone, "removing chords %v does not leave a spanning tree", chords)
	}

	return nil
}

// IsConsistent reports whether Validate succeeds. On failure the diagnostic
// is logged at Warn level.
func IsConsistent(m *core.Model, chords []core.Edge, opts ...Option) bool {
	err := Validate(m, chords, opts...)
	if err == nil {
		return true
	}
	o := gatherOptions(opts)
	var ve *Error
	if errors.As(err, &ve) {
		o.logger.Warn("inconsistent model",
			zap.String("check", ve.Check.String()),
			zap.String("reason", ve.Reason.String()),
			zap.String("message", ve.Message),
			zap.Int("chords", len(chords)),
		)
	} else {
		o.logger.Warn("invalid model", zap.Error(err))
	}

	return false
}

// IsReversible reports whether every edge of m has its reverse.
func IsReversible(m *core.Model) bool {
	if m == nil {
		return false
	}
	_, ok := missingReverse(m, m.Edges())

	return ok
}

// IsIndexed reports whether the states of m are exactly 0..N-1.
// States() is sorted and distinct, so position must equal label.
func IsIndexed(m *core.Model) bool {
	if m == nil {
		return false
	}
	for i, s := range m.States() {
		if s != i {
			return false
		}
	}

	return true
}

// StateSpace returns the sorted state labels of m.
func StateSpace(m *core.Model) []int {
	if m == nil {
		return nil
	}
	return m.States()
}

// missingReverse rebuilds both orientations from the undirected collapse and
// returns the first edge whose reverse is absent.
func missingReverse(m *core.Model, edges []core.Edge) (core.Edge, bool) {
	rebuilt := make(map[core.Edge]struct{}, 2*len(edges))
	for _, u := range m.UndirectedEdges() {
		rebuilt[u] = struct{}{}
		rebuilt[u.Reverse()] = struct{}{}
	}
	if len(rebuilt) == len(edges) {
		return core.Edge{}, true
	}
	for _, e := range edges {
		if !m.HasEdge(e.To, e.From) {
			return e, false
		}
	}

	return core.Edge{}, false
}
