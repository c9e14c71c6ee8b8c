// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge and Model types, sentinel errors, ModelOption and NewModel.

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/lvlath-scgf/expr"
)

// Sentinel errors for core model operations.
var (
	// ErrNilModel indicates that a nil *Model was passed.
	ErrNilModel = errors.New("core: model is nil")

	// ErrLoopNotAllowed indicates a self-loop (i → i); the generator diagonal
	// is derived from the off-diagonal rates and cannot carry one.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeState indicates a state label below zero.
	ErrNegativeState = errors.New("core: negative state")

	// ErrEdgeNotFound indicates an operation referenced a missing edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is a directed transition From → To between two states.
// Edge is a comparable value and serves as the key of a Model.
type Edge struct {
	From int
	To   int
}

// Reverse returns the edge To → From.
func (e Edge) Reverse() Edge { return Edge{From: e.To, To: e.From} }

// Undirected returns the orientation-free representative (min, max) of e.
// e and e.Reverse() share the same representative.
func (e Edge) Undirected() Edge {
	if e.From > e.To {
		return e.Reverse()
	}
	return e
}

// Less orders edges by From, then To.
func (e Edge) Less(o Edge) bool {
	if e.From != o.From {
		return e.From < o.From
	}
	return e.To < o.To
}

// String renders e as "from→to".
func (e Edge) String() string { return fmt.Sprintf("%d→%d", e.From, e.To) }

// ModelOption configures a Model before creation.
type ModelOption func(m *Model)

// WithName attaches a human-readable name used in diagnostics and logs.
func WithName(name string) ModelOption {
	return func(m *Model) { m.name = name }
}

// Model is a directed transition-rate graph.
//
// mu guards rates; name is fixed at construction.
type Model struct {
	mu    sync.RWMutex
	name  string
	rates map[Edge]expr.Rat
}

// NewModel creates an empty Model.
// Complexity: O(len(opts)).
func NewModel(opts ...ModelOption) *Model {
	m := &Model{rates: make(map[Edge]expr.Rat)}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Name returns the name given by WithName (may be empty).
func (m *Model) Name() string { return m.name }
