// Package errors provides structured error reporting for circletimer.
//
// Nothing in the widget is fatal: rejected input and unreadable style
// descriptions are reported here and otherwise ignored.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindParsing indicates rejected user input, such as a duration.
	KindParsing
	// KindConfig indicates an unreadable style or host configuration.
	KindConfig
	// KindRender indicates a rendering or snapshot error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindParsing:
		return "parsing"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// TimerError is a failure reported by the widget, its host screen or the
// command line. Op names the operation ("screen.Submit") and Source the
// input that caused it, such as a file path or "text field".
type TimerError struct {
	Op        string
	Kind      ErrorKind
	Err       error
	Source    string
	Timestamp time.Time
}

func (e *TimerError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s [%s] source=%s: %v", e.Op, e.Kind, e.Source, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TimerError) Unwrap() error {
	return e.Err
}

// PanicError is a panic caught by Recover.
type PanicError struct {
	Op         string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents input text that could not be parsed.
type ParseError struct {
	// Input is the rejected text.
	Input string
	// Want describes the expected value (e.g., "non-negative seconds").
	Want string
	// Err is the underlying parse failure, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q as %s: %v", e.Input, e.Want, e.Err)
	}
	return fmt.Sprintf("cannot parse %q as %s", e.Input, e.Want)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives everything passed to Report and caught by Recover.
// Calls arrive on the goroutine that failed.
type ErrorHandler interface {
	HandleError(err *TimerError)
	HandlePanic(err *PanicError)
}
