// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the main Logger type that provides structured,
//              leveled logging with contextual fields and pluggable output
//              formats. Loggers are cheap to derive and safe for
//              concurrent use.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package log

import (
	"io"
	"os"
	"sync"
)

// Logger represents a structured logger with contextual information.
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	// Context fields added to all log entries.
	contextFields Fields

	mutex sync.RWMutex
}

// Config represents logger configuration.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a new logger with default configuration: info level, JSON
// format, writing to stdout.
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewJSONFormatter(),
		output:        os.Stdout,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration.
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:         config.Level,
		output:        config.Output,
		name:          config.Name,
		formatter:     GetFormatter(config.Format),
		contextFields: make(Fields),
	}

	if config.Output == nil {
		logger.output = os.Stdout
	}

	return logger
}

// clone creates a copy of the logger sharing the output writer. The caller
// must hold the mutex.
func (l *Logger) clone() *Logger {
	fields := make(Fields, len(l.contextFields))
	for k, v := range l.contextFields {
		fields[k] = v
	}

	return &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: fields,
	}
}

// WithLevel returns a derived logger with the given minimum level.
func (l *Logger) WithLevel(level Level) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat returns a derived logger with the given output format.
func (l *Logger) WithFormat(format Format) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := l.clone()
	clone.formatter = GetFormatter(format)
	return clone
}

// WithOutput returns a derived logger writing to the given destination.
func (l *Logger) WithOutput(output io.Writer) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := l.clone()
	clone.output = output
	return clone
}

// WithName returns a derived logger with the given name.
func (l *Logger) WithName(name string) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a derived logger with a persistent field added to all
// entries.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields returns a derived logger with persistent fields added to all
// entries.
func (l *Logger) WithFields(fields Fields) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// Trace logs a trace level message.
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message.
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message.
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message.
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message.
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs a fatal level message and exits the program.
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// ErrorWithErr logs an error message with an attached error object.
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning message with an attached error object.
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// IsLevelEnabled returns true if the given level is enabled.
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return level.ShouldLog(l.level)
}

// GetLevel returns the current minimum log level.
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.level
}

// SetLevel sets the minimum log level on this logger instance.
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.level = level
}

// log is the internal logging method.
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.RLock()

	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.Error = err

	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, fieldSet := range fields {
		for k, v := range fieldSet {
			entry.Fields[k] = v
		}
	}

	formatter := l.formatter
	output := l.output
	l.mutex.RUnlock()

	if formatted, formatErr := formatter.Format(entry); formatErr == nil {
		output.Write(formatted)
	}
}

var (
	defaultLogger   = New()
	defaultLoggerMu sync.RWMutex
)

// GetDefault returns the default logger instance.
func GetDefault() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()

	return defaultLogger
}

// SetDefault replaces the default logger instance.
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}

	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()

	defaultLogger = logger
}

// Debug logs a debug level message to the default logger.
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs an info level message to the default logger.
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs a warning level message to the default logger.
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs an error level message to the default logger.
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
