// SPDX-License-Identifier: MIT

package expr

import "errors"

// Sentinel errors of the expr package. Callers match them with errors.Is.
var (
	// ErrDivisionByZero is returned when a rational function would get a zero denominator.
	ErrDivisionByZero = errors.New("expr: division by zero")

	// ErrSyntax reports a malformed expression in Parse.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrExponent reports a non-integer or out-of-range exponent.
	ErrExponent = errors.New("expr: invalid exponent")

	// ErrUnboundSymbol is returned by evaluation when a symbol has no value.
	ErrUnboundSymbol = errors.New("expr: unbound symbol")

	// ErrTiltIndex is returned when a tilt index is outside 0..n-1 of a Series.
	ErrTiltIndex = errors.New("expr: tilt index out of range")
)

// maxExponent bounds exponents accepted by Parse and Pow to keep expressions finite.
const maxExponent = 1 << 12
