// Package errors provides structured error types for ontodot.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the HTTP API and the pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Transformation failures are fatal and carry one of two codes:
//   - MISSING_EDGE_COMPONENT: a diagram edge has an empty or "null" member
//   - UNRESOLVED_DEREFERENCE: a bare URI could not be turned into a named node
//
// Collaborators (loader, configuration, renderer) use the remaining codes.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingEdgeComponent, "edge %d has no target", i)
//	if errors.Is(err, errors.ErrCodeMissingEdgeComponent) {
//	    // no document was produced
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "parse %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Transformation errors (fatal, abort document generation)
	ErrCodeMissingEdgeComponent  Code = "MISSING_EDGE_COMPONENT"
	ErrCodeUnresolvedDereference Code = "UNRESOLVED_DEREFERENCE"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Renderer errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"
	ErrCodeTimeout      Code = "TIMEOUT"

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
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
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

// IsFatal reports whether err aborts a transformation. Fatal errors never come
// with a partial document.
func IsFatal(err error) bool {
	switch GetCode(err) {
	case ErrCodeMissingEdgeComponent, ErrCodeUnresolvedDereference:
		return true
	}
	return false
}
