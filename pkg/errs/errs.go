// Package errs holds the error types shared by the waveform compiler.
//
// Values are created and wrapped with github.com/pkg/errors; use errors.As
// (or errors.Cause) to recover the concrete type.
package errs

import (
	"fmt"
)

// ParseError reports malformed numeric or unit text.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Input, e.Reason)
}

// Parse returns a *ParseError.
func Parse(input, reason string) error {
	return &ParseError{Input: input, Reason: reason}
}

// ShapeError reports a table with the wrong number of rows or columns.
type ShapeError struct {
	What string
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: want %d, got %d", e.What, e.Want, e.Got)
}

// Shape returns a *ShapeError.
func Shape(what string, want, got int) error {
	return &ShapeError{What: what, Want: want, Got: got}
}

// DegenerateTimingError reports a non-positive pulse period. It is advisory:
// the frequency of such a timing is clamped to 1.
type DegenerateTimingError struct {
	Period float64
}

func (e *DegenerateTimingError) Error() string {
	return fmt.Sprintf("degenerate timing: period %g <= 0, frequency clamped to 1", e.Period)
}
