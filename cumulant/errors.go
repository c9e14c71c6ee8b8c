// SPDX-License-Identifier: MIT

package cumulant

import "errors"

var (
	// ErrNotTwoByTwo is returned by SCGF for any matrix that is not 2×2.
	ErrNotTwoByTwo = errors.New("cumulant: SCGF needs a 2x2 tilted generator")

	// ErrNotGenerator is returned by SCGF when the matrix at zero tilt has a
	// non-zero determinant or a zero trace.
	ErrNotGenerator = errors.New("cumulant: not a tilted generator")

	// ErrDegenerate indicates a vanishing linear coefficient a1 at zero tilt,
	// i.e. a non-simple zero eigenvalue.
	ErrDegenerate = errors.New("cumulant: degenerate zero eigenvalue")

	// ErrIndex indicates a chord index outside the result.
	ErrIndex = errors.New("cumulant: index out of range")
)
