// SPDX-License-Identifier: MIT

// Package modelfile reads Markov jump models from YAML files.
//
// A model file names its transitions as {from, to, rate} triples whose rates
// are rational expressions in the grammar of expr.Parse, optionally pins the
// chords, and carries the substitutions a cumulant computation applies:
//
//	name: ring3
//	states: 3
//	rates:
//	  - {from: 0, to: 1, rate: a}
//	  - {from: 1, to: 0, rate: b}
//	  - {from: 1, to: 2, rate: c}
//	  - {from: 2, to: 1, rate: d}
//	  - {from: 2, to: 0, rate: e}
//	  - {from: 0, to: 2, rate: f}
//	chords: [[2, 0]]
//	param:
//	  a: 2*k
//	simplify:
//	  simp: {u: 1/s}
//	  unsimp: {s: 1/u}
//	spanning_tree_check: true
//
// Structural checks (non-negative states, non-empty rates, two-element
// chords) run through struct tags before any expression is parsed; the
// consistency of model and chords is left to package validate.
package modelfile
