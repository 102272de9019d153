// File: doc.go
// Title: Package Documentation for parser
// Description: Package parser tokenizes raw input lines into a command
//              name and argument tokens for the dispatch loop.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

/*
Package parser provides line tokenization for the cmdkit interpreter.

The grammar is deliberately minimal: a line is split on runs of
whitespace into a command name (first token) and argument tokens (the
rest). There is no quoting, escaping, piping, or redirection — a token is
exactly a maximal run of non-whitespace characters. Tokenization is a
total, pure function: it cannot fail and has no side effects, which keeps
the dispatch loop's error surface confined to I/O.
*/
package parser
