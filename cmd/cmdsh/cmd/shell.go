package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/msto63/cmdkit/interp"
	"github.com/msto63/cmdkit/interp/handler"
)

// echoHandler prints its arguments back on a single line.
func echoHandler(out io.Writer, args []string) (handler.Signal, error) {
	_, err := fmt.Fprintln(out, strings.Join(args, " "))
	return handler.Continue, err
}

var commandSummaries = map[string]string{
	"help":  "show the available commands",
	"greet": "greet by name, or generically without arguments",
	"echo":  "print the arguments back",
	"touch": "create an empty file",
	"quit":  "leave the shell",
}

// helpText renders the help listing from the commands registered so far.
func helpText(it *interp.Interp) string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range it.Registry().Names() {
		summary, ok := commandSummaries[name]
		if !ok {
			summary = "(no description)"
		}
		fmt.Fprintf(&b, "  %-8s %s\n", name, summary)
	}
	return strings.TrimRight(b.String(), "\n")
}
