// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape has a non-positive side.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	// At and Set return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of incompatible shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotIndexed indicates a model whose states are not 0..N-1.
	ErrNotIndexed = errors.New("matrix: states are not indexed 0..N-1")

	// ErrRowSum indicates a generator row that does not sum to zero.
	ErrRowSum = errors.New("matrix: generator row sum is not zero")

	// ErrChordOutOfRange indicates a chord endpoint outside the generator.
	ErrChordOutOfRange = errors.New("matrix: chord out of range")

	// ErrChordOverlap indicates two chords tilting the same entry.
	ErrChordOverlap = errors.New("matrix: chords overlap")
)
