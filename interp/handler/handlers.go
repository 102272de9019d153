// File: handlers.go
// Title: Ready-to-Use Command Handlers
// Description: Provides the stock handlers shipped with cmdkit: Quit to
//              end a session, Help for static usage text, Greet for a
//              greeting, and Touch to create files. They double as
//              reference implementations of the Handler capability.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package handler

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Quit is a ready-to-use handler that ends the dispatch loop. It writes
// nothing and returns Stop for any arguments. Conventionally registered
// under the name "quit".
type Quit struct{}

// Execute implements Handler.
func (Quit) Execute(_ io.Writer, _ []string) (Signal, error) {
	return Stop, nil
}

// Help writes a fixed help text followed by a newline and continues the
// loop. The text is set at construction time by the composition root,
// which knows the full command set.
type Help struct {
	Text string
}

// Execute implements Handler.
func (h Help) Execute(out io.Writer, _ []string) (Signal, error) {
	if _, err := fmt.Fprintln(out, h.Text); err != nil {
		return Continue, err
	}
	return Continue, nil
}

// Greet writes a greeting. Without arguments it greets generically; with
// arguments it greets them by name, comma-separated.
type Greet struct{}

// Execute implements Handler.
func (Greet) Execute(out io.Writer, args []string) (Signal, error) {
	var err error
	if len(args) == 0 {
		_, err = fmt.Fprint(out, "Hello there!")
	} else {
		_, err = fmt.Fprintf(out, "Hello, %s!", strings.Join(args, ", "))
	}
	if err != nil {
		return Continue, err
	}
	return Continue, nil
}

// Touch creates the file named by the first argument, emulating the basic
// shell touch command. Filesystem failures are reported on the output sink
// and do not end the session; only a sink write failure is returned.
type Touch struct{}

// Execute implements Handler.
func (Touch) Execute(out io.Writer, args []string) (Signal, error) {
	if len(args) == 0 {
		if _, err := fmt.Fprintln(out, "Need to specify a filename"); err != nil {
			return Continue, err
		}
		return Continue, nil
	}

	filename := args[0]
	f, createErr := os.Create(filename)
	if createErr != nil {
		if _, err := fmt.Fprintf(out, "Could not create file: %s\n", filename); err != nil {
			return Continue, err
		}
		return Continue, nil
	}
	f.Close()

	if _, err := fmt.Fprintf(out, "Created file: %s\n", filename); err != nil {
		return Continue, err
	}
	return Continue, nil
}
