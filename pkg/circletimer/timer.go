// Package circletimer implements a circular countdown widget.
//
// A CircleTimer draws a round base (background, border and shadow) and,
// on demand, a solid fill circle representing the time remaining. Starting
// a timer shows the full fill and then removes it over the requested
// duration with one of two strategies selected by Style.UseMask.
//
// The widget is single-threaded: every method must be called from the
// goroutine that steps its animation.Scheduler and paints it.
package circletimer

import (
	"fmt"
	"time"

	"github.com/go-drift/circletimer/pkg/animation"
	"github.com/go-drift/circletimer/pkg/graphics"
)

// Layer names, as reported by graphics.Layer.Name.
const (
	LayerBase    = "base"
	LayerFill    = "fill"
	LayerMask    = "mask"
	LayerOverlay = "overlay"
)

// FillState records whether the fill circle is present.
type FillState int

const (
	// FillEmpty means no fill layer exists.
	FillEmpty FillState = iota
	// FillFilled means a fill layer exists, possibly with a removal
	// animation attached.
	FillFilled
)

// String returns a human-readable representation of the fill state.
func (s FillState) String() string {
	switch s {
	case FillEmpty:
		return "empty"
	case FillFilled:
		return "filled"
	default:
		return fmt.Sprintf("FillState(%d)", int(s))
	}
}

// Option configures a CircleTimer at construction.
type Option func(*CircleTimer)

// WithStyle sets the initial style. The default is DefaultStyle().
func WithStyle(style Style) Option {
	return func(t *CircleTimer) { t.style = style }
}

// WithBounds sets the initial layout size.
func WithBounds(size graphics.Size) Option {
	return func(t *CircleTimer) { t.bounds = size }
}

// WithScheduler sets the scheduler that drives removal animations. The
// default is animation.DefaultScheduler.
func WithScheduler(s *animation.Scheduler) Option {
	return func(t *CircleTimer) { t.scheduler = s }
}

// CircleTimer is a circular countdown widget.
type CircleTimer struct {
	style     Style
	bounds    graphics.Size
	scheduler *animation.Scheduler

	base    *graphics.Layer
	fill    *graphics.Layer
	mask    *graphics.Layer
	overlay *graphics.Layer

	state        FillState
	fillDiameter float64
	task         *animation.AnimationTask
	onComplete   func()
	dirty        bool
}

// New creates a timer and builds its base layer.
func New(opts ...Option) *CircleTimer {
	t := &CircleTimer{
		style:     DefaultStyle(),
		scheduler: animation.DefaultScheduler,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.scheduler == nil {
		t.scheduler = animation.DefaultScheduler
	}
	t.setUpBaseLayer()
	return t
}

// Style returns the current style.
func (t *CircleTimer) Style() Style {
	return t.style
}

// SetStyle replaces the whole style and rebuilds.
func (t *CircleTimer) SetStyle(style Style) {
	t.style = style
	t.Update()
}

// SetUseMask selects the removal strategy and rebuilds.
func (t *CircleTimer) SetUseMask(useMask bool) {
	t.style.UseMask = useMask
	t.Update()
}

// SetBorderColor sets the border color and rebuilds.
func (t *CircleTimer) SetBorderColor(c graphics.Color) {
	t.style.BorderColor = c
	t.Update()
}

// SetBackgroundColor sets the background color and rebuilds.
func (t *CircleTimer) SetBackgroundColor(c graphics.Color) {
	t.style.BackgroundColor = c
	t.Update()
}

// SetFillColor sets the fill color and rebuilds.
func (t *CircleTimer) SetFillColor(c graphics.Color) {
	t.style.FillColor = c
	t.Update()
}

// SetShadowOpacity sets the shadow opacity and rebuilds.
func (t *CircleTimer) SetShadowOpacity(opacity float64) {
	t.style.ShadowOpacity = opacity
	t.Update()
}

// SetShadowWidthRatio sets the shadow width ratio and rebuilds.
func (t *CircleTimer) SetShadowWidthRatio(ratio float64) {
	t.style.ShadowWidthRatio = ratio
	t.Update()
}

// SetBorderWidthRatio sets the border width ratio and rebuilds.
func (t *CircleTimer) SetBorderWidthRatio(ratio float64) {
	t.style.BorderWidthRatio = ratio
	t.Update()
}

// SetFillDiameterRatio sets the fill diameter ratio and rebuilds.
func (t *CircleTimer) SetFillDiameterRatio(ratio float64) {
	t.style.FillDiameterRatio = ratio
	t.Update()
}

// Bounds returns the current layout size.
func (t *CircleTimer) Bounds() graphics.Size {
	return t.bounds
}

// SetBounds is the layout hook: it stores the new size and rebuilds so
// every ratio is recomputed against it.
func (t *CircleTimer) SetBounds(size graphics.Size) {
	t.bounds = size
	t.Update()
}

// FillDiameter returns the fill diameter in pixels for the current bounds.
func (t *CircleTimer) FillDiameter() float64 {
	return t.fillDiameter
}

// State returns whether the fill is present.
func (t *CircleTimer) State() FillState {
	return t.state
}

// Running reports whether a removal animation is in flight.
func (t *CircleTimer) Running() bool {
	return t.task != nil && t.task.IsRunning()
}

// Progress returns the fraction of time remaining: 1 while the fill is
// complete, falling linearly to 0 as the removal animation runs. An empty
// timer reports 0.
func (t *CircleTimer) Progress() float64 {
	if t.state == FillEmpty {
		return 0
	}
	if t.task == nil {
		return 1
	}
	return 1 - t.task.Progress()
}

// OnComplete registers fn to run when a timer cycle finishes. It does not
// run when a cycle is cleared or superseded.
func (t *CircleTimer) OnComplete(fn func()) {
	t.onComplete = fn
}

// BaseLayer returns the always-present base layer.
func (t *CircleTimer) BaseLayer() *graphics.Layer {
	return t.base
}

// FillLayer returns the fill layer, or nil when empty.
func (t *CircleTimer) FillLayer() *graphics.Layer {
	return t.fill
}

// MaskLayer returns the mask of the running (or finished) mask strategy,
// or nil.
func (t *CircleTimer) MaskLayer() *graphics.Layer {
	return t.mask
}

// OverlayLayer returns the overdraw layer of the stroke strategy, or nil.
func (t *CircleTimer) OverlayLayer() *graphics.Layer {
	return t.overlay
}

// NeedsPaint reports whether anything changed since the last Paint.
func (t *CircleTimer) NeedsPaint() bool {
	return t.dirty
}

// Update rebuilds the base layer from the current style and bounds. A fill
// present before the call is drawn again, without replaying any removal
// animation that was attached to it.
func (t *CircleTimer) Update() {
	wasFilled := t.state == FillFilled
	t.Clear()
	t.setUpBaseLayer()
	if wasFilled {
		t.DrawFilled()
	}
}

func (t *CircleTimer) setUpBaseLayer() {
	s := t.style
	width := t.bounds.Width

	base := graphics.NewLayer(LayerBase)
	base.Bounds = graphics.RectFromLTWH(0, 0, t.bounds.Width, t.bounds.Height)
	base.BackgroundColor = s.BackgroundColor
	base.BorderWidth = width * s.BorderWidthRatio
	base.BorderColor = s.BorderColor
	base.CornerRadius = width / 2
	shadow := graphics.NewLayerShadow(s.ShadowOpacity, width*s.ShadowWidthRatio)
	base.Shadow = &shadow

	t.base = base
	t.fillDiameter = width * s.FillDiameterRatio
	t.dirty = true
}

// center returns the middle of the widget bounds.
func (t *CircleTimer) center() graphics.Offset {
	return graphics.Offset{X: t.bounds.Width / 2, Y: t.bounds.Height / 2}
}

// DrawFilled shows the full fill circle. It does nothing if a fill already
// exists; otherwise it clears and creates a circle of FillDiameter centered
// in the bounds.
func (t *CircleTimer) DrawFilled() {
	if t.state == FillFilled {
		return
	}
	t.Clear()

	path := graphics.NewPath()
	path.AddOval(graphics.RectFromCenter(t.center(), t.fillDiameter, t.fillDiameter))
	fill := graphics.NewShapeLayer(LayerFill, path)
	fill.FillColor = t.style.FillColor

	t.base.AddSublayer(fill)
	t.fill = fill
	t.state = FillFilled
	t.dirty = true
}

// StartTimer shows the full fill and removes it over duration using the
// strategy selected by the style. Any cycle already in flight is cleared
// first. A zero or negative duration completes immediately.
func (t *CircleTimer) StartTimer(duration time.Duration) {
	if t.mask != nil || t.overlay != nil || t.task != nil {
		t.Clear()
	}
	t.DrawFilled()

	var task *animation.AnimationTask
	switch t.style.Strategy() {
	case StrategyMask:
		task = t.runMaskAnimation(duration)
	default:
		task = t.runDrawAnimation(duration)
	}
	task.OnDone = func() {
		t.dirty = true
		if t.onComplete != nil {
			t.onComplete()
		}
	}
	t.task = task
	t.scheduler.Start(task)
}

// Clear removes the removal layers and the fill and cancels any running
// animation. Calling it on an empty timer does nothing.
func (t *CircleTimer) Clear() {
	if t.task != nil {
		t.task.Cancel()
		t.task = nil
	}
	if t.overlay != nil {
		t.overlay.RemoveFromSuperlayer()
		t.overlay = nil
		t.dirty = true
	}
	if t.mask != nil {
		if t.fill != nil {
			t.fill.Mask = nil
		}
		t.mask = nil
		t.dirty = true
	}
	if t.fill != nil {
		t.fill.RemoveFromSuperlayer()
		t.fill = nil
		t.dirty = true
	}
	t.state = FillEmpty
}

// Redraw requests a repaint of every present layer without recomputing
// geometry. Use Update to re-derive sizes.
func (t *CircleTimer) Redraw() {
	for _, l := range []*graphics.Layer{t.base, t.fill, t.mask, t.overlay} {
		if l != nil {
			l.SetNeedsDisplay()
		}
	}
	t.dirty = true
}

// Paint composites the timer onto canvas.
func (t *CircleTimer) Paint(canvas graphics.Canvas) {
	t.base.Paint(canvas)
	t.dirty = false
}
