// Package logger provides the structured logger used across rosterpass.
// Loggers are injected, not ambient: each pipeline run receives its own
// instance scoped to that run, so tests and callers control the output.
package logger

import (
	"io"

	charmlog "github.com/charmbracelet/log"
)

// Logger wraps the charm logger behind a small structured interface.
type Logger struct {
	l *charmlog.Logger
}

// New creates a logger writing to w. Verbose lowers the level to debug;
// otherwise info and above are reported.
func New(w io.Writer, verbose bool) *Logger {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	l := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
	return &Logger{l: l}
}

// Nop returns a logger that discards everything. Useful for tests.
func Nop() *Logger {
	return &Logger{l: charmlog.New(io.Discard)}
}

// With returns a logger that adds the given key-value pairs to every
// message.
func (lg *Logger) With(keyvals ...any) *Logger {
	return &Logger{l: lg.l.With(keyvals...)}
}

// Debug logs a message at debug level.
func (lg *Logger) Debug(msg string, keyvals ...any) {
	lg.l.Debug(msg, keyvals...)
}

// Info logs a message at info level.
func (lg *Logger) Info(msg string, keyvals ...any) {
	lg.l.Info(msg, keyvals...)
}

// Warn logs a message at warn level.
func (lg *Logger) Warn(msg string, keyvals ...any) {
	lg.l.Warn(msg, keyvals...)
}

// Error logs a message at error level.
func (lg *Logger) Error(msg string, keyvals ...any) {
	lg.l.Error(msg, keyvals...)
}
