package logger

import (
	"fmt"
	"io"
)

// Logger emits diagnostics outside the primary output stream. Debug
// messages are verbose-only; warnings are always written.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

// Nop returns a logger that discards everything.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Warnf(string, ...any)  {}

// New returns a logger writing to w, one message per line. Debug output
// is suppressed unless verbose is set.
func New(w io.Writer, verbose bool) Logger {
	return writerLogger{w: w, verbose: verbose}
}

type writerLogger struct {
	w       io.Writer
	verbose bool
}

func (l writerLogger) Debugf(format string, args ...any) {
	if !l.verbose || l.w == nil {
		return
	}
	_, _ = fmt.Fprintf(l.w, "[verbose] "+format+"\n", args...)
}

func (l writerLogger) Warnf(format string, args ...any) {
	if l.w == nil {
		return
	}
	_, _ = fmt.Fprintf(l.w, "Warning: "+format+"\n", args...)
}
