// Package logger builds the charmbracelet/log loggers used across the engine and the benchmark.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a text logger on stderr that respects the global log level.
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix)
}

// NewWithWriter creates a text logger writing to w.
func NewWithWriter(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// Discard returns a logger that drops everything. Used by tests and quiet callers.
func Discard() *log.Logger {
	l := log.NewWithOptions(io.Discard, log.Options{})
	l.SetLevel(log.FatalLevel)
	return l
}
