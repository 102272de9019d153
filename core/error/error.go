// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type used across cmdkit.
//              Errors carry a classification code and an optional wrapped
//              cause while staying fully compatible with Go's standard
//              errors.Is / errors.As / errors.Unwrap machinery.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package error

import (
	"errors"
	"fmt"
)

// Error represents a structured error with a classification code and an
// optional wrapped cause.
type Error struct {
	message string
	cause   error
	code    Code
}

// New creates a new Error with the given message and CodeInternal.
func New(message string) *Error {
	return &Error{
		message: message,
		code:    CodeInternal,
	}
}

// Newf creates a new Error with a formatted message.
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context. The cause remains
// reachable through errors.Unwrap, so callers never lose the original
// failure. Wrapping nil returns nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	code := CodeInternal
	var ce *Error
	if errors.As(err, &ce) {
		code = ce.code
	}

	return &Error{
		message: message,
		cause:   err,
		code:    code,
	}
}

// Wrapf wraps an existing error with formatted context.
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode sets the classification code and returns the error for chaining.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// Code returns the classification code of the error.
func (e *Error) Code() Code {
	return e.code
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether the target matches this error. Two cmdkit errors match
// when their codes are equal, which lets callers compare against code-only
// sentinels without caring about message text.
func (e *Error) Is(target error) bool {
	var te *Error
	if !errors.As(target, &te) {
		return false
	}
	return e.code == te.code
}

// GetCode extracts the classification code from any error. Errors that do
// not originate from this package report CodeUnknown.
func GetCode(err error) Code {
	if err == nil {
		return CodeUnknown
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce.code
	}
	return CodeUnknown
}
