// Package errors provides structured error types for planegraph.
//
// The geometric kernel is closed over its inputs, so the taxonomy is small:
//   - INVALID_ARGUMENT: a precondition on an argument does not hold
//     (non-positive radius, self-loop, parallel edge)
//   - STRUCTURAL_VIOLATION: the graph's internal invariants are broken,
//     which always indicates a caller bug
//   - NOT_FOUND: an id does not name a vertex or edge of the graph
//   - INVALID_INPUT: a file handed to the command-line tool is malformed
//   - INTERNAL_ERROR: anything unexpected
//
// Degenerate inputs (duplicate points, fewer than two points, collinear point
// sets) are not errors anywhere in this module.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidArgument, "radius must be positive, got %g", r)
//	if errors.Is(err, errors.ErrCodeInvalidArgument) {
//	    // Handle bad argument
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Argument and input errors
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	ErrCodeInvalidInput    Code = "INVALID_INPUT"

	// Graph integrity errors
	ErrCodeStructuralViolation Code = "STRUCTURAL_VIOLATION"
	ErrCodeNotFound            Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
