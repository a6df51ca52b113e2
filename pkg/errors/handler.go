package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	handler ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the process-wide handler and returns the one it
// replaced. A nil h restores a quiet LogHandler writing to stderr.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	mu.Lock()
	defer mu.Unlock()
	prev := handler
	handler = h
	return prev
}

// Handler returns the installed handler.
func Handler() ErrorHandler {
	mu.RLock()
	defer mu.RUnlock()
	return handler
}

// Report stamps err with the current time, unless it already carries one,
// and passes it to the installed handler.
func Report(err *TimerError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// Recover reports a panic raised by the surrounding function as a
// PanicError for op and then runs onPanic, if set, so the caller can leave
// its state ready for the next attempt. It must be deferred directly:
//
//	defer errors.Recover("screen.Frame", timer.Redraw)
func Recover(op string, onPanic func()) {
	r := recover()
	if r == nil {
		return
	}
	Handler().HandlePanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: stack(3),
		Timestamp:  time.Now(),
	})
	if onPanic != nil {
		onPanic()
	}
}

// stack formats up to 32 frames of the calling goroutine, skipping the
// innermost skip frames.
func stack(skip int) string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(skip, pcs)]
	if len(pcs) == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs)
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}
