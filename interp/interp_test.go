// File: interp_test.go
// Title: Dispatch Loop Unit Tests
// Description: Unit tests for the interpreter dispatch loop using
//              in-memory input sources and output sinks, including exact
//              transcript checks and failing stream doubles for read,
//              write, and flush errors.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test suite

package interp

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/msto63/cmdkit/core/log"
	"github.com/msto63/cmdkit/interp/handler"
)

var (
	errRead  = errors.New("failed on read")
	errWrite = errors.New("failed on write")
	errFlush = errors.New("failed on flush")
)

// failReader always fails on read.
type failReader struct{}

func (failReader) Read(_ []byte) (int, error) {
	return 0, errRead
}

// failWriter always fails on write.
type failWriter struct{}

func (failWriter) Write(_ []byte) (int, error) {
	return 0, errWrite
}

// failFlusher accepts writes but fails on flush.
type failFlusher struct {
	buf bytes.Buffer
}

func (f *failFlusher) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

func (f *failFlusher) Flush() error {
	return errFlush
}

// countingFlusher records how often it is flushed.
type countingFlusher struct {
	buf     bytes.Buffer
	flushes int
}

func (f *countingFlusher) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

func (f *countingFlusher) Flush() error {
	f.flushes++
	return nil
}

func quietLogger() *log.Logger {
	return log.NewWithConfig(log.Config{
		Level:  log.LevelError,
		Output: io.Discard,
	})
}

func greetHandler() handler.Handler {
	return handler.Func(func(out io.Writer, _ []string) (handler.Signal, error) {
		_, err := fmt.Fprint(out, "Hello there!")
		return handler.Continue, err
	})
}

// newTestInterp builds an interpreter over the given input with greet and
// quit registered.
func newTestInterp(t *testing.T, input string, out io.Writer) *Interp {
	t.Helper()

	it, err := New(strings.NewReader(input), out, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := it.AddCommand("greet", greetHandler()); err != nil {
		t.Fatalf("AddCommand(greet) error: %v", err)
	}
	if err := it.AddCommand("quit", handler.Quit{}); err != nil {
		t.Fatalf("AddCommand(quit) error: %v", err)
	}
	return it
}

func TestNew_Validation(t *testing.T) {
	t.Run("Nil input source", func(t *testing.T) {
		if _, err := New(nil, &bytes.Buffer{}, Options{Logger: quietLogger()}); err == nil {
			t.Errorf("Expected error for nil input source")
		}
	})

	t.Run("Nil output sink", func(t *testing.T) {
		if _, err := New(strings.NewReader(""), nil, Options{Logger: quietLogger()}); err == nil {
			t.Errorf("Expected error for nil output sink")
		}
	})
}

func TestRun_Transcript(t *testing.T) {
	var out bytes.Buffer
	it := newTestInterp(t, "greet\nbogus\nquit\n", &out)

	if err := it.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := "(cmd) Hello there!(cmd) No command bogus\n(cmd) "
	if got := out.String(); got != want {
		t.Errorf("transcript = %q, want %q", got, want)
	}
}

func TestRun_EmptyLinesReprompt(t *testing.T) {
	var out bytes.Buffer
	it := newTestInterp(t, "\n   \n\t\nquit\n", &out)

	if err := it.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// Empty and whitespace-only lines re-prompt with no diagnostic.
	want := "(cmd) (cmd) (cmd) (cmd) "
	if got := out.String(); got != want {
		t.Errorf("transcript = %q, want %q", got, want)
	}
}

func TestRun_ArgumentsReachHandler(t *testing.T) {
	var out bytes.Buffer
	var captured []string

	it, err := New(strings.NewReader("  echo   a   b  \nquit\n"), &out, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	it.AddCommandFunc("echo", func(_ io.Writer, args []string) (handler.Signal, error) {
		captured = args
		return handler.Continue, nil
	})
	it.AddCommand("quit", handler.Quit{})

	if err := it.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(captured) != 2 || captured[0] != "a" || captured[1] != "b" {
		t.Errorf("args = %v, want [a b]", captured)
	}
	if captured == nil {
		t.Errorf("dispatched args must not be nil")
	}
}

func TestRun_EOFStopsCleanly(t *testing.T) {
	var out bytes.Buffer
	it := newTestInterp(t, "greet\n", &out)

	if err := it.Run(); err != nil {
		t.Fatalf("Run() on exhausted input = %v, want nil", err)
	}

	// One dispatched command, then a final prompt before EOF ends the loop.
	want := "(cmd) Hello there!(cmd) "
	if got := out.String(); got != want {
		t.Errorf("transcript = %q, want %q", got, want)
	}
}

func TestRun_ReadErrorIsFatal(t *testing.T) {
	var out bytes.Buffer
	it, err := New(failReader{}, &out, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	runErr := it.Run()
	if !errors.Is(runErr, errRead) {
		t.Fatalf("Run() error = %v, want %v", runErr, errRead)
	}

	// Nothing beyond the initial prompt may have been written.
	if got := out.String(); got != "(cmd) " {
		t.Errorf("output = %q, want just the prompt", got)
	}
}

func TestRun_WriteErrorIsFatal(t *testing.T) {
	it, err := New(strings.NewReader("greet\n"), failWriter{}, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// The very first prompt write fails.
	if runErr := it.Run(); !errors.Is(runErr, errWrite) {
		t.Errorf("Run() error = %v, want %v", runErr, errWrite)
	}
}

func TestRun_FlushErrorIsFatal(t *testing.T) {
	sink := &failFlusher{}
	it, err := New(strings.NewReader("quit\n"), sink, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if runErr := it.Run(); !errors.Is(runErr, errFlush) {
		t.Errorf("Run() error = %v, want %v", runErr, errFlush)
	}
	// The prompt itself was written before the failing flush.
	if got := sink.buf.String(); got != "(cmd) " {
		t.Errorf("output = %q, want just the prompt", got)
	}
}

func TestRun_FlushesBufferedSink(t *testing.T) {
	sink := &countingFlusher{}
	it, err := New(strings.NewReader("quit\n"), sink, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	it.AddCommand("quit", handler.Quit{})

	if err := it.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if sink.flushes == 0 {
		t.Errorf("buffered sink was never flushed")
	}
}

func TestRun_HandlerErrorIsFatal(t *testing.T) {
	handlerErr := errors.New("handler sink write failed")

	var out bytes.Buffer
	it, err := New(strings.NewReader("boom\n"), &out, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	it.AddCommandFunc("boom", func(_ io.Writer, _ []string) (handler.Signal, error) {
		return handler.Continue, handlerErr
	})

	if runErr := it.Run(); !errors.Is(runErr, handlerErr) {
		t.Errorf("Run() error = %v, want %v", runErr, handlerErr)
	}
}

func TestRun_LineTooLong(t *testing.T) {
	var out bytes.Buffer
	longLine := strings.Repeat("x", 64) + "\n"

	it, err := New(strings.NewReader(longLine), &out, Options{
		Logger:        quietLogger(),
		MaxLineLength: 16,
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if runErr := it.Run(); !errors.Is(runErr, bufio.ErrTooLong) {
		t.Errorf("Run() error = %v, want %v", runErr, bufio.ErrTooLong)
	}
}

func TestRun_CustomPrompt(t *testing.T) {
	var out bytes.Buffer
	it, err := New(strings.NewReader("quit\n"), &out, Options{
		Logger: quietLogger(),
		Prompt: ">> ",
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	it.AddCommand("quit", handler.Quit{})

	if err := it.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := out.String(); got != ">> " {
		t.Errorf("transcript = %q, want %q", got, ">> ")
	}
}

func TestRun_BufferedWriterEndToEnd(t *testing.T) {
	// The usual production wiring: a bufio.Writer around the real sink.
	var raw bytes.Buffer
	buffered := bufio.NewWriter(&raw)

	it := newTestInterp(t, "greet\nquit\n", buffered)

	if err := it.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	buffered.Flush()

	want := "(cmd) Hello there!(cmd) "
	if got := raw.String(); got != want {
		t.Errorf("transcript = %q, want %q", got, want)
	}
}

func TestAddCommand_DuplicateWritesWarning(t *testing.T) {
	var out bytes.Buffer
	it, err := New(strings.NewReader(""), &out, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	original := greetHandler()
	if err := it.AddCommand("greet", original); err != nil {
		t.Fatalf("AddCommand() error: %v", err)
	}

	// The duplicate is rejected with a diagnostic, not an error.
	if err := it.AddCommand("greet", handler.Quit{}); err != nil {
		t.Fatalf("duplicate AddCommand() error = %v, want nil", err)
	}

	want := "Warning: Command with handle greet already exists."
	if got := out.String(); got != want {
		t.Errorf("diagnostic = %q, want %q", got, want)
	}

	// The original handler must remain active.
	h, ok := it.Registry().Lookup("greet")
	if !ok {
		t.Fatalf("Lookup() failed after duplicate registration")
	}
	var probe bytes.Buffer
	if _, err := h.Execute(&probe, nil); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if probe.String() != "Hello there!" {
		t.Errorf("duplicate registration replaced the handler")
	}
}

func TestAddCommand_DuplicateDiagnosticWriteFailure(t *testing.T) {
	it, err := New(strings.NewReader(""), failWriter{}, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// First registration performs no writes and must succeed.
	if err := it.AddCommand("greet", greetHandler()); err != nil {
		t.Fatalf("AddCommand() error: %v", err)
	}

	// The duplicate's diagnostic write fails, and that failure surfaces.
	if dupErr := it.AddCommand("greet", greetHandler()); !errors.Is(dupErr, errWrite) {
		t.Errorf("AddCommand() error = %v, want %v", dupErr, errWrite)
	}
}

func TestAddCommand_ValidationErrors(t *testing.T) {
	var out bytes.Buffer
	it, err := New(strings.NewReader(""), &out, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if err := it.AddCommand("  ", greetHandler()); err == nil {
		t.Errorf("Expected error for blank command name")
	}
	if err := it.AddCommand("greet", nil); err == nil {
		t.Errorf("Expected error for nil handler")
	}
	if out.Len() != 0 {
		t.Errorf("validation failures must not write diagnostics: %q", out.String())
	}
}

func TestIndependentInterpreters(t *testing.T) {
	// Two interpreters with the same command names must not interfere.
	var out1, out2 bytes.Buffer
	it1 := newTestInterp(t, "greet\nquit\n", &out1)
	it2 := newTestInterp(t, "quit\n", &out2)

	if it1.SessionID() == it2.SessionID() {
		t.Errorf("interpreter instances share a session ID")
	}

	if err := it1.Run(); err != nil {
		t.Fatalf("first Run() error: %v", err)
	}
	if err := it2.Run(); err != nil {
		t.Fatalf("second Run() error: %v", err)
	}

	if got := out1.String(); got != "(cmd) Hello there!(cmd) " {
		t.Errorf("first transcript = %q", got)
	}
	if got := out2.String(); got != "(cmd) " {
		t.Errorf("second transcript = %q", got)
	}
}

func TestStatefulHandler(t *testing.T) {
	// Handlers may carry their own state across invocations.
	var out bytes.Buffer
	it, err := New(strings.NewReader("count\ncount\ncount\nquit\n"), &out, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	count := 0
	it.AddCommandFunc("count", func(out io.Writer, _ []string) (handler.Signal, error) {
		count++
		_, werr := fmt.Fprintf(out, "%d", count)
		return handler.Continue, werr
	})
	it.AddCommand("quit", handler.Quit{})

	if err := it.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := "(cmd) 1(cmd) 2(cmd) 3(cmd) "
	if got := out.String(); got != want {
		t.Errorf("transcript = %q, want %q", got, want)
	}
}
