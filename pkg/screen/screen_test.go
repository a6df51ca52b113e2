package screen

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/go-drift/circletimer/pkg/animation"
	"github.com/go-drift/circletimer/pkg/circletimer"
	"github.com/go-drift/circletimer/pkg/errors"
	"github.com/go-drift/circletimer/pkg/graphics"
	"github.com/go-drift/circletimer/pkg/graphics/raster"
	timertest "github.com/go-drift/circletimer/pkg/testing"
)

type recordingHandler struct {
	errs   []*errors.TimerError
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.TimerError) { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func captureErrors(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func newTestScreen() (*Screen, *timertest.FakeClock) {
	clk := timertest.NewFakeClock()
	scheduler := animation.NewScheduler(clk)
	timer := circletimer.New(
		circletimer.WithBounds(graphics.Size{Width: 100, Height: 100}),
		circletimer.WithScheduler(scheduler),
	)
	return New(timer, scheduler), clk
}

func TestSubmit_StartsTimer(t *testing.T) {
	s, clk := newTestScreen()

	if !s.Submit("5") {
		t.Fatal("Submit(\"5\") = false")
	}
	if !s.Timer.Running() || s.Timer.FillLayer() == nil {
		t.Fatal("expected a running timer with a fill")
	}

	clk.Advance(4 * time.Second)
	s.Scheduler.Step()
	if !s.Timer.Running() {
		t.Error("timer finished early")
	}
	clk.Advance(time.Second)
	s.Scheduler.Step()
	if s.Timer.Running() {
		t.Error("timer should finish after 5s")
	}
}

func TestSubmit_RejectsInvalidInput(t *testing.T) {
	h := captureErrors(t)
	for _, text := range []string{"abc", "", "-1", "NaN", "inf", "5s", "1e400"} {
		s, _ := newTestScreen()
		if s.Submit(text) {
			t.Errorf("Submit(%q) = true", text)
		}
		if s.Timer.FillLayer() != nil || s.Timer.Running() {
			t.Errorf("Submit(%q) changed the timer", text)
		}
	}
	if len(h.errs) != 0 {
		t.Errorf("quiet screen reported %d errors", len(h.errs))
	}
}

func TestSubmit_VerboseReportsRejection(t *testing.T) {
	h := captureErrors(t)
	s, _ := newTestScreen()
	s.Verbose = true

	s.Submit("abc")

	if len(h.errs) != 1 {
		t.Fatalf("got %d reports, want 1", len(h.errs))
	}
	err := h.errs[0]
	if err.Kind != errors.KindParsing || err.Op != "screen.Submit" {
		t.Errorf("unexpected report %v", err)
	}
	var pe *errors.ParseError
	if !stderrors.As(err, &pe) || pe.Input != "abc" {
		t.Errorf("report does not wrap a ParseError: %v", err)
	}
}

func TestSubmit_KeepsRunningTimerOnBadInput(t *testing.T) {
	s, _ := newTestScreen()
	s.Submit("3")
	fill := s.Timer.FillLayer()

	s.Submit("later")

	if s.Timer.FillLayer() != fill || !s.Timer.Running() {
		t.Error("rejected input must not disturb a running timer")
	}
}

func TestReturn_SubmitsText(t *testing.T) {
	s, _ := newTestScreen()
	s.SetText(" 2.5 ")

	if !s.Return() {
		t.Fatal("Return() = false")
	}
	if s.Text() != " 2.5 " {
		t.Errorf("text = %q", s.Text())
	}
	if !s.Timer.Running() {
		t.Error("expected running timer")
	}
}

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		text string
		want time.Duration
	}{
		{"5", 5 * time.Second},
		{" 0.25\n", 250 * time.Millisecond},
		{"0", 0},
		{"1e1", 10 * time.Second},
	}
	for _, tt := range tests {
		got, err := ParseSeconds(tt.text)
		if err != nil || got != tt.want {
			t.Errorf("ParseSeconds(%q) = %v, %v; want %v", tt.text, got, err, tt.want)
		}
	}
}

func TestParseSeconds_Rejects(t *testing.T) {
	for _, text := range []string{
		"abc", "", "-1", "NaN", "inf", "5s", "1e400",
		"9223372036.854776",
		"9223372036.854775807",
		"1e10",
	} {
		d, err := ParseSeconds(text)
		if err == nil {
			t.Errorf("ParseSeconds(%q) = %v, want an error", text, d)
			continue
		}
		var pe *errors.ParseError
		if !stderrors.As(err, &pe) || pe.Input != text {
			t.Errorf("ParseSeconds(%q) error %v is not a ParseError", text, err)
		}
	}

	// The largest whole second count still fits.
	if d, err := ParseSeconds("9223372036"); err != nil || d != 9223372036*time.Second {
		t.Errorf("ParseSeconds(max) = %v, %v", d, err)
	}
}

func TestFrame_PaintsOnlyWhenDirty(t *testing.T) {
	s, clk := newTestScreen()
	canvas := raster.NewCanvas(100, 100)

	if !s.Frame(canvas) {
		t.Fatal("first frame should paint")
	}
	if s.Frame(canvas) {
		t.Error("idle frame should not paint")
	}

	s.Submit("1")
	clk.Advance(500 * time.Millisecond)
	if !s.Frame(canvas) {
		t.Error("animating frame should paint")
	}
	got := timertest.ColorAt(canvas.Image(), 32, 68)
	if !timertest.ColorsClose(got, graphics.ColorBlue, 3) {
		t.Errorf("bottom-left of the fill = %v, want blue", got)
	}
	// Corners lie outside the circle and must be cleared between frames.
	if got := timertest.ColorAt(canvas.Image(), 99, 99); got.Alpha() > 0.5 {
		t.Errorf("corner = %v, want mostly transparent", got)
	}
}

func TestFrame_RecoversPanics(t *testing.T) {
	h := captureErrors(t)
	s, _ := newTestScreen()

	if s.Frame(panicCanvas{}) {
		t.Error("panicking frame should report no paint")
	}
	if len(h.panics) != 1 || h.panics[0].Op != "screen.Frame" {
		t.Errorf("panics = %v", h.panics)
	}
	if !s.Timer.NeedsPaint() {
		t.Error("a failed frame must leave the timer marked for repaint")
	}
	canvas := raster.NewCanvas(100, 100)
	if !s.Frame(canvas) {
		t.Error("the frame after a panic should repaint")
	}
}

// panicCanvas fails on the first draw call.
type panicCanvas struct{ graphics.Canvas }

func (panicCanvas) Clear(graphics.Color) { panic("canvas lost") }
