package errors

import (
	"os"

	"github.com/charmbracelet/log"
)

// LogHandler is an ErrorHandler that logs errors through a charm logger.
type LogHandler struct {
	// Logger receives the records. Nil logs to stderr.
	Logger *log.Logger
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

func (h *LogHandler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return log.NewWithOptions(os.Stderr, log.Options{Prefix: "neumorph"})
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	l := h.logger()
	if h.Verbose {
		l.Error(err.Op, "kind", err.Kind, "err", err.Err)
		if err.StackTrace != "" {
			l.Error("stack trace", "stack", err.StackTrace)
		}
		return
	}
	l.Error(err.Op, "err", err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	l := h.logger()
	if err.Op != "" {
		l.Error("panic", "op", err.Op, "value", err.Value)
	} else {
		l.Error("panic", "value", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		l.Error("stack trace", "stack", err.StackTrace)
	}
}
