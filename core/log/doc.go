// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides structured, leveled logging for cmdkit
//              with contextual fields and pluggable JSON, text, and
//              console output formats.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

/*
Package log provides structured logging for cmdkit.

Loggers are immutable in use: the With* methods derive new logger
instances carrying extra context fields, a different level, format, or
output destination, so a component can safely specialize the logger it
was given without affecting anyone else:

	logger := log.GetDefault().
		WithName("interp").
		WithField("session", sessionID)

	logger.Info("interpreter started", log.Fields{"commands": 4})

Three formats are available: JSON for machine consumption, text for log
files, and colored console output for development. The default logger
writes JSON to stdout; binaries typically replace it at startup based on
configuration.

Log output is always separate from an interpreter's output sink. The
dispatch loop writes prompts and diagnostics to its sink only, so
transcripts remain byte-exact regardless of log level.
*/
package log
