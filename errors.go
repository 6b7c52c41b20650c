package main

import (
	"errors"
	"fmt"
)

// These errors are recoverable: ReadLine reports them as its response and
// the interpreter carries on with the next line.
var (
	ErrStackUnderflow = errors.New("Stack underflow")
	ErrEndOfInput     = errors.New("nextToken called with no more tokens")
	ErrDivisionByZero = errors.New("Division by zero")
	ErrTooManySpaces  = errors.New("Too many spaces")
)

// MissingWordError is returned when a token is neither a known word, a number,
// nor a string literal.
type MissingWordError struct{ Word string }

func (err MissingWordError) Error() string { return err.Word + " ? " }

// CompileOnlyError is returned when a control word like "if" is used outside
// of a definition.
type CompileOnlyError struct{ Word string }

func (err CompileOnlyError) Error() string { return fmt.Sprintf("%v is compile-only", err.Word) }

// recoverable returns true if err should be reported back as a line
// response, rather than being treated as an interpreter fault.
func recoverable(err error) bool {
	var missing MissingWordError
	var compileOnly CompileOnlyError
	return errors.Is(err, ErrStackUnderflow) ||
		errors.Is(err, ErrEndOfInput) ||
		errors.Is(err, ErrDivisionByZero) ||
		errors.Is(err, ErrTooManySpaces) ||
		errors.As(err, &missing) ||
		errors.As(err, &compileOnly)
}

// controlError is raised (as a panic) when replaying a definition whose
// if/else/then markers do not balance.
type controlError struct {
	word string
	op   string
}

func (err controlError) Error() string {
	return fmt.Sprintf("unbalanced control flow in %q at %v", err.word, err.op)
}
