// File: doc.go
// Title: Package Documentation for handler
// Description: Package handler defines the command handler capability, the
//              Continue/Stop loop-control signal, and the stock handlers
//              shipped with cmdkit.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

/*
Package handler defines the capability every interpreter command implements.

A command is anything satisfying the single-method Handler interface:

	Execute(out io.Writer, args []string) (Signal, error)

The returned Signal decides whether the dispatch loop continues or stops;
the error reports a failed write to the output sink and is always fatal to
the loop. Func adapts closures to the interface:

	interp.AddCommandFunc("echo", func(out io.Writer, args []string) (handler.Signal, error) {
		_, err := fmt.Fprintln(out, strings.Join(args, " "))
		return handler.Continue, err
	})

The package also ships ready-to-use handlers: Quit (returns Stop, writes
nothing), Help (static usage text), Greet, and Touch. Handlers hold any
state they need themselves, which keeps multiple independent interpreter
instances from interfering with each other.
*/
package handler
