// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the small set of string operations cmdkit needs
//              on top of the Go standard library, with Unicode-safe
//              whitespace and truncation handling.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package stringx

import (
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string has length 0.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is the canonical emptiness check for command names and configuration
// values, where "   " is as invalid as "".
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FirstNonBlank returns the first argument that is not blank, or the empty
// string if all are blank. Useful for layered defaults (flag, config file,
// built-in).
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}

// Truncate shortens s to at most maxRunes runes, appending an ellipsis when
// truncation happened. maxRunes counts the ellipsis, so Truncate("abcdef", 4)
// returns "abc…". Rune-based so multi-byte input is never split mid-character.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}

	runes := []rune(s)
	if maxRunes == 1 {
		return "…"
	}
	return string(runes[:maxRunes-1]) + "…"
}
