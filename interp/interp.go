// File: interp.go
// Title: Command Interpreter Dispatch Loop
// Description: Implements the Interp type that drives the read-parse-
//              dispatch cycle over an input source and output sink.
//              Integrates the parser, registry, and handler components
//              into the line-oriented command interpreter.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package interp

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/uuid"

	ckerror "github.com/msto63/cmdkit/core/error"
	"github.com/msto63/cmdkit/core/log"
	"github.com/msto63/cmdkit/interp/handler"
	"github.com/msto63/cmdkit/interp/parser"
	"github.com/msto63/cmdkit/interp/registry"
)

// DefaultPrompt is the prompt literal written before every read.
const DefaultPrompt = "(cmd) "

// DefaultMaxLineLength limits how long a single input line may be.
const DefaultMaxLineLength = 4096

// Options configures an interpreter instance.
type Options struct {
	// Logger for interpreter lifecycle events (optional, defaults to the
	// package default logger). Log output never goes to the output sink.
	Logger *log.Logger

	// Prompt overrides the prompt literal (default: DefaultPrompt).
	Prompt string

	// MaxLineLength limits input line length in bytes (default:
	// DefaultMaxLineLength). Longer lines fail the read.
	MaxLineLength int

	// Registry supplies a pre-populated command registry (optional; an
	// empty one is created otherwise).
	Registry *registry.Registry
}

// Interp is a line-oriented command interpreter. It owns its input source
// and output sink exclusively for its lifetime and dispatches each input
// line against its command registry.
//
// An Interp is single-threaded: Run blocks its calling goroutine and
// processes lines strictly in order. Independent Interp instances, each
// with their own registry and streams, may run concurrently.
type Interp struct {
	in        *bufio.Scanner
	out       io.Writer
	registry  *registry.Registry
	logger    *log.Logger
	options   Options
	sessionID string
}

// flusher is satisfied by buffered sinks such as *bufio.Writer. Sinks
// without a Flush method are assumed unbuffered.
type flusher interface {
	Flush() error
}

// New creates a new interpreter reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) (*Interp, error) {
	if in == nil {
		return nil, ckerror.New("input source cannot be nil").
			WithCode(ckerror.CodeValidation)
	}
	if out == nil {
		return nil, ckerror.New("output sink cannot be nil").
			WithCode(ckerror.CodeValidation)
	}

	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.MaxLineLength <= 0 {
		opts.MaxLineLength = DefaultMaxLineLength
	}

	sessionID := uuid.NewString()
	logger := opts.Logger.WithFields(log.Fields{
		"component": "interp",
		"session":   sessionID,
	})

	if opts.Registry == nil {
		opts.Registry = registry.New(registry.Options{Logger: logger})
	}

	// The scanner's limit is the larger of max and the initial capacity,
	// so the capacity must not exceed MaxLineLength.
	initial := 256
	if opts.MaxLineLength < initial {
		initial = opts.MaxLineLength
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, initial), opts.MaxLineLength)

	return &Interp{
		in:        scanner,
		out:       out,
		registry:  opts.Registry,
		logger:    logger,
		options:   opts,
		sessionID: sessionID,
	}, nil
}

// SessionID returns the unique identifier of this interpreter instance,
// as used in its log entries.
func (i *Interp) SessionID() string {
	return i.sessionID
}

// Registry returns the interpreter's command registry.
func (i *Interp) Registry() *registry.Registry {
	return i.registry
}

// AddCommand registers a handler under the given name. When the name is
// already taken, the existing handler stays active and the diagnostic
//
//	Warning: Command with handle {name} already exists.
//
// is written to the output sink; AddCommand still returns nil in that case
// unless writing the diagnostic itself fails. Validation failures (blank
// name, nil handler) are returned as errors.
func (i *Interp) AddCommand(name string, h handler.Handler) error {
	err := i.registry.Register(name, h)
	if err == nil {
		return nil
	}

	if ckerror.GetCode(err) == ckerror.CodeExists {
		if _, werr := fmt.Fprintf(i.out, "Warning: Command with handle %s already exists.", name); werr != nil {
			return werr
		}
		return nil
	}

	return err
}

// AddCommandFunc registers a function as a command handler.
func (i *Interp) AddCommandFunc(name string, fn handler.Func) error {
	return i.AddCommand(name, fn)
}

// Run drives the dispatch loop until a handler returns Stop, the input
// source is exhausted, or an I/O failure occurs.
//
// Each iteration writes the prompt, flushes the sink if it is buffered,
// reads one line, tokenizes it, and dispatches the command. Empty lines
// re-prompt silently; unknown commands produce the "No command {name}"
// diagnostic and the loop continues. Every read, write, or flush failure
// is fatal and returned unchanged.
//
// End-of-input with no error is treated as an implicit Stop: Run returns
// nil rather than re-prompting forever against a closed source.
func (i *Interp) Run() error {
	i.logger.Debug("Dispatch loop started", log.Fields{
		"commands": i.registry.Len(),
	})

	for {
		if _, err := io.WriteString(i.out, i.options.Prompt); err != nil {
			return err
		}
		if f, ok := i.out.(flusher); ok {
			if err := f.Flush(); err != nil {
				return err
			}
		}

		if !i.in.Scan() {
			if err := i.in.Err(); err != nil {
				i.logger.ErrorWithErr("Input source failed", err)
				return err
			}
			// EOF: implicit stop.
			i.logger.Debug("Input exhausted, stopping")
			return nil
		}

		command, args := parser.Split(i.in.Text())
		if command == "" {
			continue
		}

		h, found := i.registry.Lookup(command)
		if !found {
			if _, err := fmt.Fprintf(i.out, "No command %s\n", command); err != nil {
				return err
			}
			continue
		}

		signal, err := h.Execute(i.out, args)
		if err != nil {
			i.logger.ErrorWithErr("Handler write failed", err, log.Fields{
				"command": command,
			})
			return err
		}

		if signal == handler.Stop {
			i.logger.Debug("Stop signal received", log.Fields{
				"command": command,
			})
			return nil
		}
	}
}
