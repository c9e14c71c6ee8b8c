// SPDX-License-Identifier: MIT

package cumulant

import "github.com/katalvlaran/lvlath-scgf/expr"

// Simplification selects whether intermediate results are moved into a
// more tractable variable space. The zero value skips simplification.
type Simplification struct {
	apply  bool
	simp   expr.Subst
	unsimp expr.Subst
}

// SkipSimplification combines terms without intermediate simplification.
func SkipSimplification() Simplification { return Simplification{} }

// ApplyTransform simplifies in the variables introduced by simp and maps
// results back with unsimp. Empty maps are allowed; they make the transform
// the identity while keeping the staged simplification.
func ApplyTransform(simp, unsimp expr.Subst) Simplification {
	return Simplification{apply: true, simp: simp, unsimp: unsimp}
}

// Enabled reports whether staged simplification runs.
func (s Simplification) Enabled() bool { return s.apply }

// Simp returns the forward transform (nil when skipped).
func (s Simplification) Simp() expr.Subst { return s.simp }

// Unsimp returns the inverse transform (nil when skipped).
func (s Simplification) Unsimp() expr.Subst { return s.unsimp }

// String names the mode for logs.
func (s Simplification) String() string {
	if !s.apply {
		return "skip"
	}
	return "transform " + s.simp.String()
}
