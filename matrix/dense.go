// SPDX-License-Identifier: MIT

// Package matrix - generic Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Row-major buffer with the index formula i*cols + j, over any exact ring type.
//   - At/Set return errors instead of panicking.
//   - Deterministic traversal (fixed loop order, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone/Map/Equal: O(r*c); Trace: O(n).

package matrix

import (
	"fmt"
	"strings"
)

// Element is the ring interface the matrix layer needs from its entries.
// expr.Rat and expr.Series satisfy it.
type Element[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	IsZero() bool
	Equal(T) bool
}

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf attaches method context and coordinates to a sentinel error.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major r×c matrix over T.
//   - zero is the additive identity used for fresh cells and accumulations.
//   - data has length r*c (offset = i*c + j).
type Dense[T Element[T]] struct {
	r, c int
	zero T
	data []T
}

// NewDense creates an r×c matrix with every cell set to zero.
//
// Errors:
//   - ErrBadShape if rows or cols is not positive.
func NewDense[T Element[T]](rows, cols int, zero T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	data := make([]T, rows*cols)
	for k := range data {
		data[k] = zero
	}

	return &Dense[T]{r: rows, c: cols, zero: zero, data: data}, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Zero returns the additive identity m was created with.
func (m *Dense[T]) Zero() T { return m.zero }

func (m *Dense[T]) inRange(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// At returns the entry at (i, j).
func (m *Dense[T]) At(i, j int) (T, error) {
	if !m.inRange(i, j) {
		var none T
		return none, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}
	return m.data[i*m.c+j], nil
}

// Set writes v at (i, j).
func (m *Dense[T]) Set(i, j int, v T) error {
	if !m.inRange(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[i*m.c+j] = v

	return nil
}

// at is the unchecked accessor for package internals with validated indices.
func (m *Dense[T]) at(i, j int) T { return m.data[i*m.c+j] }

// Clone returns a deep copy of the cell buffer. Element values are immutable.
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{r: m.r, c: m.c, zero: m.zero, data: data}
}

// Map returns a new matrix with f applied to every cell, in row-major order.
func Map[T Element[T], U Element[U]](m *Dense[T], zero U, f func(T) U) *Dense[U] {
	out := &Dense[U]{r: m.r, c: m.c, zero: zero, data: make([]U, len(m.data))}
	for k, v := range m.data {
		out.data[k] = f(v)
	}

	return out
}

// Apply replaces every cell v at (i, j) with f(i, j, v).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			m.data[i*m.c+j] = f(i, j, m.data[i*m.c+j])
		}
	}
}

// Trace returns the sum of the diagonal.
func (m *Dense[T]) Trace() (T, error) {
	if m.r != m.c {
		var none T
		return none, fmt.Errorf("Trace(%dx%d): %w", m.r, m.c, ErrNonSquare)
	}
	sum := m.zero
	for i := 0; i < m.r; i++ {
		sum = sum.Add(m.at(i, i))
	}

	return sum, nil
}

// RowSum returns the sum of row i.
func (m *Dense[T]) RowSum(i int) (T, error) {
	if i < 0 || i >= m.r {
		var none T
		return none, fmt.Errorf("RowSum(%d): %w", i, ErrOutOfRange)
	}
	sum := m.zero
	for j := 0; j < m.c; j++ {
		sum = sum.Add(m.at(i, j))
	}

	return sum, nil
}

// Equal reports whether o has the same shape and equal cells.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if !m.data[k].Equal(o.data[k]) {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m *Dense[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			fmt.Fprint(&b, m.at(i, j))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
