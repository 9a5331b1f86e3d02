package arith

import (
	"errors"
	"fmt"
)

var ErrContentNil = errors.New("formula content is nil")
var ErrValidationFailed = errors.New("formula validation error")
var ErrBytecodeNil = errors.New("formula program is nil")
var ErrExecCreationFailed = errors.New("unable to create formula executable")
var ErrExecutionFailed = errors.New("formula execution error")

// ErrDivisionByZero is returned by Evaluate when a divisor evaluates to
// zero. Division never silently produces an infinity or NaN.
var ErrDivisionByZero = errors.New("division by zero")

// InputError is implemented by construction errors that point at a
// location in the formula source.
type InputError interface {
	error

	// Pos returns the 1-based rune column of the offending input.
	Pos() int
}

// LexError reports source text that cannot be tokenized.
type LexError struct {
	Text string // the offending text
	Col  int    // 1-based rune column
}

func (e *LexError) Error() string {
	return fmt.Sprintf("invalid token %q at column %d", e.Text, e.Col)
}

func (e *LexError) Pos() int {
	return e.Col
}

// ParseError reports a structurally invalid token sequence.
type ParseError struct {
	Want string // what the parser needed
	Got  string // what it found
	Col  int    // 1-based rune column
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s, found %s at column %d", e.Want, e.Got, e.Col)
}

func (e *ParseError) Pos() int {
	return e.Col
}

// MissingComponentError reports a component reference with no reading
// in the values passed to Evaluate.
type MissingComponentError struct {
	ID int64
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("no reading for component #%d", e.ID)
}

var _ InputError = (*LexError)(nil)
var _ InputError = (*ParseError)(nil)
