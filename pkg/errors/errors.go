// Package errors provides structured error types for the beurling engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library packages and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The three failure conditions of a build are:
//   - STRUCTURAL_INCONSISTENCY: the candidate rule produced nothing while a
//     budget still allowed growth
//   - ORACLE_INDETERMINATE: the feasibility oracle neither proved nor refuted a
//     linear extension
//   - MALFORMED_SNAPSHOT: a snapshot line could not be parsed
//
// Domain packages define typed errors carrying diagnostic payloads (a table
// dump, solver flags, a line number). Those types implement Code so that
// [GetCode] and [Is] recognise them without importing the domain package.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "height must be positive, got %d", h)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open snapshot %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidPolicy Code = "INVALID_POLICY"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Engine failures
	ErrCodeStructuralInconsistency Code = "STRUCTURAL_INCONSISTENCY"
	ErrCodeOracleIndeterminate     Code = "ORACLE_INDETERMINATE"
	ErrCodeMalformedSnapshot       Code = "MALFORMED_SNAPSHOT"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Coder is implemented by typed domain errors that carry their own payload
// but still belong to one of the codes above.
type Coder interface {
	error
	Code() Code
}

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
// The outermost coded error in the chain decides.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Both *Error values and typed errors implementing [Coder] are recognised;
// the first one found while unwrapping wins.
// Returns empty string if no coded error is in the chain.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case Coder:
			return e.Code()
		}
		err = errors.Unwrap(err)
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
