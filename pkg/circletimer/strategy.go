package circletimer

import (
	"time"

	"github.com/go-drift/circletimer/pkg/animation"
	"github.com/go-drift/circletimer/pkg/graphics"
)

// removalRing returns a circle of half the fill radius, traced as a rounded
// rectangle whose corner radius is half its side. Stroked with a width of
// the fill radius it covers the whole fill disc.
func (t *CircleTimer) removalRing() (*graphics.Path, float64) {
	radius := t.fillDiameter * 0.5
	side := radius
	rect := graphics.RectFromCenter(t.center(), side, side)
	path := graphics.NewPath()
	path.AddRRect(graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(side*0.5)))
	return path, radius
}

// runMaskAnimation masks the fill with a reversed ring whose stroked
// fraction shrinks from 1 to 0, uncovering less of the fill each frame.
func (t *CircleTimer) runMaskAnimation(duration time.Duration) *animation.AnimationTask {
	ring, radius := t.removalRing()

	mask := graphics.NewShapeLayer(LayerMask, ring.Reversed())
	mask.FillColor = graphics.ColorTransparent
	mask.StrokeColor = graphics.ColorBlack
	mask.LineWidth = radius
	mask.StrokeEnd = 0

	t.fill.Mask = mask
	t.mask = mask

	strokeEnd := animation.TweenFloat64(1, 0)
	return animation.NewTask(duration, func(progress float64) {
		mask.StrokeEnd = strokeEnd.Evaluate(progress)
		t.dirty = true
	})
}

// runDrawAnimation adds a background-colored ring above the fill whose
// stroked fraction grows from 0 to 1, painting the fill over.
func (t *CircleTimer) runDrawAnimation(duration time.Duration) *animation.AnimationTask {
	ring, radius := t.removalRing()

	overlay := graphics.NewShapeLayer(LayerOverlay, ring)
	overlay.StrokeColor = t.style.BackgroundColor
	overlay.FillColor = graphics.ColorTransparent
	// One extra pixel makes sure the stroke covers the fill's edge.
	overlay.LineWidth = radius + 1
	overlay.StrokeStart = 0
	overlay.StrokeEnd = 1

	t.fill.AddSublayer(overlay)
	t.overlay = overlay

	strokeEnd := animation.TweenFloat64(0, 1)
	return animation.NewTask(duration, func(progress float64) {
		overlay.StrokeEnd = strokeEnd.Evaluate(progress)
		overlay.SetNeedsDisplay()
		t.dirty = true
	})
}
