// Package logger provides logging functionality for the eureka application.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes to a writer.
type defaultLogger struct {
	mu     sync.Mutex
	out    io.Writer
	prefix string
}

// NewDefaultLogger creates a new default logger writing to stdout.
func NewDefaultLogger() Logger {
	return &defaultLogger{out: os.Stdout}
}

// NewVerboseLogger creates a logger writing prefixed messages to stderr,
// keeping stdout free for prompts and the editor.
func NewVerboseLogger() Logger {
	return NewWriterLogger(os.Stderr, "[eureka] ")
}

// NewWriterLogger creates a logger writing prefixed messages to the given writer.
func NewWriterLogger(out io.Writer, prefix string) Logger {
	return &defaultLogger{out: out, prefix: prefix}
}

// Logf writes a formatted message with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, d.prefix+format+"\n", args...)
}
