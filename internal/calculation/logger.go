package calculation

import (
	"io"
	"log"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// WriterLogger writes leveled lines to an io.Writer. Debug lines are dropped
// unless Verbose is set.
type WriterLogger struct {
	l       *log.Logger
	Verbose bool
}

// NewWriterLogger creates a logger writing to w.
func NewWriterLogger(w io.Writer, verbose bool) *WriterLogger {
	return &WriterLogger{l: log.New(w, "", 0), Verbose: verbose}
}

func (w *WriterLogger) Debugf(format string, args ...any) {
	if w.Verbose {
		w.l.Printf("DEBUG "+format, args...)
	}
}
func (w *WriterLogger) Infof(format string, args ...any)  { w.l.Printf("INFO  "+format, args...) }
func (w *WriterLogger) Warnf(format string, args ...any)  { w.l.Printf("WARN  "+format, args...) }
func (w *WriterLogger) Errorf(format string, args ...any) { w.l.Printf("ERROR "+format, args...) }
