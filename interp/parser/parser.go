// File: parser.go
// Title: Input Line Tokenizer
// Description: Implements the tokenization of raw input lines into a
//              command name and argument tokens. The grammar is plain
//              whitespace splitting: no quoting, no escaping, no pipes.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package parser

import (
	"strings"
)

// Split tokenizes a raw input line into a command name and its argument
// tokens. A token is a maximal run of non-whitespace characters; runs of
// whitespace collapse, and leading/trailing whitespace is ignored:
//
//	Split("  foo   bar  baz ")  =>  ("foo", ["bar", "baz"])
//
// Empty or all-whitespace input yields an empty command and no arguments.
// Split is a pure function and succeeds for every input string; callers
// must treat an empty command as "nothing to dispatch".
func Split(line string) (command string, args []string) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", nil
	}
	return tokens[0], tokens[1:]
}
