// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry structure that holds all information
//              about a single log message including metadata, custom
//              fields, and attached errors.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Entry represents a single log entry with all its metadata.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
	Error     error
}

// Fields represents custom key-value pairs for structured logging.
type Fields map[string]interface{}

// NewEntry creates a new entry with the current timestamp.
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// Err creates an error field for logging.
func Err(err error) Fields {
	return Fields{"error": err}
}

// Field creates a single field for logging.
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Merge combines multiple Fields into one. Later values win on key
// collisions. The receiver is not modified.
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// With adds a field to the existing Fields, allocating if needed.
func (f Fields) With(key string, value interface{}) Fields {
	if f == nil {
		return Fields{key: value}
	}
	f[key] = value
	return f
}
