// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides structured, coded errors for cmdkit
//              while remaining fully interoperable with the standard
//              library errors package.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

/*
Package error provides structured error handling for cmdkit.

Errors created here carry a classification Code alongside the message and
an optional wrapped cause. Codes allow call sites to branch on failure
categories (validation, not found, exists, I/O) without parsing message
text, and wrapped causes stay reachable through errors.Unwrap so no
underlying failure is ever lost.

The package is intentionally a thin layer: raw I/O errors from input
sources and output sinks are propagated by cmdkit untouched, and this
package is only used where cmdkit itself originates an error.

Usage:

	err := ckerror.New("command name cannot be empty").
		WithCode(ckerror.CodeValidation)

	if ckerror.GetCode(err) == ckerror.CodeValidation {
		// reject input
	}
*/
package error
