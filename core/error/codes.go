// File: codes.go
// Title: Error Code Definitions
// Description: Defines the standardized error codes used for classifying
//              cmdkit errors. Codes enable structured handling at call
//              sites without string matching on messages.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package error

// Code represents a structured error code for categorizing errors.
type Code string

// Error codes used across cmdkit.
const (
	// CodeUnknown marks errors of unknown origin, typically errors that
	// did not come from this package.
	CodeUnknown Code = "UNKNOWN"

	// CodeInternal marks unexpected internal failures.
	CodeInternal Code = "INTERNAL"

	// CodeValidation marks rejected input such as blank command names or
	// nil handlers.
	CodeValidation Code = "VALIDATION"

	// CodeNotFound marks lookups that matched nothing.
	CodeNotFound Code = "NOT_FOUND"

	// CodeExists marks insertions that collided with an existing entry.
	CodeExists Code = "EXISTS"

	// CodeIO marks failures while reading from an input source or writing
	// to an output sink.
	CodeIO Code = "IO"
)

// String returns the string representation of the code.
func (c Code) String() string {
	return string(c)
}

// IsValid returns true if the code is one of the defined cmdkit codes.
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeValidation, CodeNotFound, CodeExists, CodeIO:
		return true
	default:
		return false
	}
}
