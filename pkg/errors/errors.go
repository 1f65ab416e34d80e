// Package errors provides structured error types for echotab.
//
// Errors carry a machine-readable [Code] so the CLI and the HTTP API can
// react to the category of a failure without string matching.
//
// # Error Codes
//
//   - INVALID_*: input, configuration or layout validation failures
//   - *_NOT_FOUND: unknown widget types, items, profiles or interactions
//   - INTERACTION_ACTIVE: a drag or resize is already in progress
//   - STORAGE: persistence backend failures
//   - INTERNAL / UNSUPPORTED: everything else
//
// The grid engine itself never returns errors; these codes appear only at
// the edges where data enters or leaves the process.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "cols must be positive, got %d", cols)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle validation error
//	}
//
//	err := errors.Wrap(errors.ErrCodeStorage, origErr, "save profile %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidLayout Code = "INVALID_LAYOUT"
	ErrCodeInvalidSize   Code = "INVALID_SIZE"

	// Resource not found errors
	ErrCodeNotFound            Code = "NOT_FOUND"
	ErrCodeWidgetNotFound      Code = "WIDGET_NOT_FOUND"
	ErrCodeItemNotFound        Code = "ITEM_NOT_FOUND"
	ErrCodeInteractionNotFound Code = "INTERACTION_NOT_FOUND"

	// State conflicts
	ErrCodeInteractionActive Code = "INTERACTION_ACTIVE"

	// Backend errors
	ErrCodeStorage Code = "STORAGE"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// IsNotFound reports whether err carries any of the not-found codes.
func IsNotFound(err error) bool {
	switch GetCode(err) {
	case ErrCodeNotFound, ErrCodeWidgetNotFound, ErrCodeItemNotFound, ErrCodeInteractionNotFound:
		return true
	}
	return false
}

// IsInvalid reports whether err carries any of the validation codes.
func IsInvalid(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidConfig, ErrCodeInvalidLayout, ErrCodeInvalidSize:
		return true
	}
	return false
}
