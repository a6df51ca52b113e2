package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that writes errors to a stream.
type LogHandler struct {
	// Verbose adds the error kind, its source and panic stack traces.
	Verbose bool
	// Out receives the log lines. Nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a TimerError.
func (h *LogHandler) HandleError(err *TimerError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(h.out(), "[circletimer error] %v\n", err)
		return
	}
	fmt.Fprintf(h.out(), "[circletimer error] %s: %v\n", err.Op, err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[circletimer panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[circletimer panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
