// Package screen hosts a CircleTimer below a single-line text field.
//
// Returning from the text field starts the timer for the number of seconds
// typed. Anything that is not a non-negative number is ignored; the user
// gets no feedback beyond the timer not starting.
package screen

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/circletimer/pkg/animation"
	"github.com/go-drift/circletimer/pkg/circletimer"
	"github.com/go-drift/circletimer/pkg/errors"
	"github.com/go-drift/circletimer/pkg/graphics"
)

// Screen owns the text field contents and drives the timer's frames. Like
// the widget it is single-threaded.
type Screen struct {
	// Timer is the hosted widget.
	Timer *circletimer.CircleTimer
	// Scheduler is stepped once per Frame. It must be the scheduler the
	// timer was created with.
	Scheduler *animation.Scheduler
	// Verbose echoes submissions and reports rejected input to the error
	// handler.
	Verbose bool

	text string
}

// New creates a screen for timer driven by scheduler. A nil scheduler
// means animation.DefaultScheduler.
func New(timer *circletimer.CircleTimer, scheduler *animation.Scheduler) *Screen {
	if scheduler == nil {
		scheduler = animation.DefaultScheduler
	}
	return &Screen{Timer: timer, Scheduler: scheduler}
}

// SetText replaces the text field contents.
func (s *Screen) SetText(text string) {
	s.text = text
}

// Text returns the text field contents.
func (s *Screen) Text() string {
	return s.text
}

// Return handles the return key: it submits the current text field
// contents.
func (s *Screen) Return() bool {
	return s.Submit(s.text)
}

// Submit parses text as seconds and starts the timer. It reports whether
// the timer was started.
func (s *Screen) Submit(text string) bool {
	s.text = text
	if s.Verbose {
		log.Printf("submit %q", text)
	}
	d, err := ParseSeconds(text)
	if err != nil {
		if s.Verbose {
			errors.Report(&errors.TimerError{
				Op:     "screen.Submit",
				Kind:   errors.KindParsing,
				Err:    err,
				Source: "text field",
			})
		}
		return false
	}
	s.Timer.StartTimer(d)
	return true
}

// Frame advances running animations and repaints the timer onto canvas if
// anything changed. It reports whether it painted. A panic is reported
// instead of ending the host loop, and the timer is marked for a full
// repaint since the canvas may hold half a frame.
func (s *Screen) Frame(canvas graphics.Canvas) (painted bool) {
	defer errors.Recover("screen.Frame", s.Timer.Redraw)

	s.Scheduler.Step()
	if !s.Timer.NeedsPaint() {
		return false
	}
	canvas.Clear(graphics.ColorTransparent)
	s.Timer.Paint(canvas)
	return true
}

// ParseSeconds converts text to a duration. Surrounding whitespace is
// ignored; the value must be a finite, non-negative decimal number of
// seconds.
func ParseSeconds(text string) (time.Duration, error) {
	trimmed := strings.TrimSpace(text)
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &errors.ParseError{Input: text, Want: "seconds", Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &errors.ParseError{Input: text, Want: "seconds", Err: fmt.Errorf("not a finite number")}
	}
	if v < 0 {
		return 0, &errors.ParseError{Input: text, Want: "non-negative seconds"}
	}
	// MaxInt64 nanoseconds rounds up to 2^63 as a float64, so the bound is
	// exclusive.
	d := time.Duration(v * float64(time.Second))
	if v >= math.MaxInt64/float64(time.Second) || d < 0 {
		return 0, &errors.ParseError{Input: text, Want: "seconds", Err: fmt.Errorf("out of range")}
	}
	return d, nil
}
