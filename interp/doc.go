// File: doc.go
// Title: Package Documentation for interp
// Description: Package interp implements the line-oriented command
//              interpreter: a dispatch loop over an input source and
//              output sink backed by a per-instance command registry.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

/*
Package interp provides a toolkit for building REPL-style command-line
tools. An interpreter reads whitespace-delimited lines from its input
source, resolves the first token against a registry of named handlers,
and dispatches the remaining tokens to the matched handler:

	it, err := interp.New(os.Stdin, out, interp.Options{})
	if err != nil {
		// ...
	}
	it.AddCommand("greet", handler.Greet{})
	it.AddCommand("quit", handler.Quit{})
	if err := it.Run(); err != nil {
		// fatal I/O failure
	}

The loop writes the prompt "(cmd) " before every read, re-prompts
silently on empty lines, reports unknown commands with "No command
{name}", and terminates when a handler returns handler.Stop or the input
source is exhausted. All I/O failures — prompt writes, sink flushes,
reads, diagnostic writes, handler writes — are fatal and returned to the
caller unchanged.

Because input source and output sink are plain io.Reader/io.Writer
values, interpreters run equally well against a terminal, a file, or
in-memory buffers, which makes sessions fully scriptable in tests. The
three subpackages hold the parts: parser (tokenization), registry
(name-to-handler mapping), and handler (the command capability and stock
handlers).
*/
package interp
