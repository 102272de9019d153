// File: handler.go
// Title: Command Handler Capability
// Description: Defines the Handler interface every command implements, the
//              Signal type handlers return to control the dispatch loop,
//              and the Func adapter that lets plain functions act as
//              handlers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package handler

import (
	"io"
)

// Signal is the value a handler returns to control the dispatch loop.
type Signal int

const (
	// Continue instructs the dispatch loop to iterate again.
	Continue Signal = iota

	// Stop instructs the dispatch loop to terminate cleanly. Returning
	// Stop is the only sanctioned way a handler ends the loop; handlers
	// must never terminate the process themselves, so interpreters stay
	// embeddable in tests and other programs.
	Stop
)

// String returns the string representation of the signal.
func (s Signal) String() string {
	switch s {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Handler is the capability every registered command implements.
//
// Execute receives the interpreter's output sink and the argument tokens of
// the current invocation (possibly empty, never nil for a dispatched
// command). Output written to out becomes part of the interpreter
// transcript. A non-nil error reports a failed write to the sink; the
// dispatch loop treats it as fatal and propagates it unchanged.
//
// Handlers may carry their own state (a counter, an open resource), but
// must not depend on hidden globals: every interpreter instance owns its
// handlers exclusively, and independent instances must not interfere.
type Handler interface {
	Execute(out io.Writer, args []string) (Signal, error)
}

// Func adapts a plain function to the Handler interface, so closures can be
// registered as commands without declaring a type.
type Func func(out io.Writer, args []string) (Signal, error)

// Execute implements Handler.
func (f Func) Execute(out io.Writer, args []string) (Signal, error) {
	return f(out, args)
}
