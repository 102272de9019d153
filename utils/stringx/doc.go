// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the string utilities shared across
//              the cmdkit packages, extending the Go standard library with
//              Unicode-safe emptiness checks and truncation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

/*
Package stringx provides extended string operations for cmdkit.

The package deliberately stays small: it carries only the helpers that more
than one cmdkit package needs, rather than a general-purpose string library.
It provides:

  • IsEmpty / IsBlank emptiness checks (IsBlank treats whitespace-only
    strings as empty, which is the validation rule for command names and
    configuration values)
  • FirstNonBlank for layered default resolution
  • Truncate for Unicode-safe shortening of log and diagnostic output

All operations are pure functions and safe for concurrent use.
*/
package stringx
