// SPDX-License-Identifier: MIT

package validate

import (
	"errors"
	"fmt"
)

// ErrInconsistent is matched by every validation failure.
var ErrInconsistent = errors.New("validate: inconsistent model")

// Check identifies one validation step.
type Check int

const (
	CheckReversible Check = iota + 1
	CheckEvenEdges
	CheckBetti
	CheckIndexed
	CheckChordsContained
	CheckChordsDistinct
	CheckSpanningTree
)

var checkNames = map[Check]string{
	CheckReversible:      "reversible",
	CheckEvenEdges:       "even-edges",
	CheckBetti:           "betti",
	CheckIndexed:         "indexed",
	CheckChordsContained: "chords-contained",
	CheckChordsDistinct:  "chords-distinct",
	CheckSpanningTree:    "spanning-tree",
}

// String returns the short name used in logs.
func (c Check) String() string {
	if s, ok := checkNames[c]; ok {
		return s
	}
	return fmt.Sprintf("check(%d)", int(c))
}

// Reason refines a failed check where the direction of the mismatch matters.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonTooLarge
	ReasonTooSmall
)

// String renders the reason as it appears in diagnostics.
func (r Reason) String() string {
	switch r {
	case ReasonTooLarge:
		return "too large"
	case ReasonTooSmall:
		return "too small"
	}
	return ""
}

// Diagnostic describes the first failed check.
type Diagnostic struct {
	Check   Check
	Reason  Reason
	Message string
}

// Error is the error form of a Diagnostic.
type Error struct {
	Diagnostic
}

func (e *Error) Error() string {
	return fmt.Sprintf("validate: %s: %s", e.Check, e.Message)
}

// Is makes errors.Is(err, ErrInconsistent) hold for every *Error.
func (e *Error) Is(target error) bool { return target == ErrInconsistent }

func fail(c Check, r Reason, format string, args ...any) *Error {
	return &Error{Diagnostic{Check: c, Reason: r, Message: fmt.Sprintf(format, args...)}}
}
