package graphics

// Layer is a node in a retained compositing tree, modelled on platform
// shape layers. A layer draws, in order: its shadow, its background box,
// its shape path (fill, then the trimmed stroke), its sublayers and last
// its border, which stays on top of the sublayers. An attached Mask
// restricts all of that to the mask's coverage.
//
// All layers of a tree share one coordinate space. Each layer caches its
// own drawing as a DisplayList that is re-recorded after SetNeedsDisplay.
type Layer struct {
	// Name identifies the layer in diagnostics and tests.
	Name string

	// Bounds is the box drawn for BackgroundColor, Border and Shadow.
	Bounds Rect

	BackgroundColor Color
	CornerRadius    float64
	BorderWidth     float64
	BorderColor     Color
	Shadow          *BoxShadow

	// Path is the layer's shape. Nil means the layer has no shape.
	Path        *Path
	FillColor   Color
	StrokeColor Color
	LineWidth   float64

	// StrokeStart and StrokeEnd select the stroked fraction of Path.
	StrokeStart float64
	StrokeEnd   float64

	// Mask, when set, clips this layer (and its sublayers) to the area the
	// mask layer would paint.
	Mask *Layer

	parent    *Layer
	sublayers []*Layer

	content      *DisplayList
	border       *DisplayList
	needsDisplay bool
	displayCount int
}

// NewLayer creates an empty layer with the default stroke range [0, 1].
func NewLayer(name string) *Layer {
	return &Layer{
		Name:         name,
		StrokeEnd:    1,
		needsDisplay: true,
	}
}

// NewShapeLayer creates a layer that draws path.
func NewShapeLayer(name string, path *Path) *Layer {
	l := NewLayer(name)
	l.Path = path
	return l
}

// AddSublayer appends child on top of the existing sublayers, detaching it
// from any previous parent.
func (l *Layer) AddSublayer(child *Layer) {
	if child == nil || child == l {
		return
	}
	child.RemoveFromSuperlayer()
	child.parent = l
	l.sublayers = append(l.sublayers, child)
}

// RemoveFromSuperlayer detaches the layer from its parent. No-op if the
// layer has no parent.
func (l *Layer) RemoveFromSuperlayer() {
	p := l.parent
	if p == nil {
		return
	}
	for i, s := range p.sublayers {
		if s == l {
			p.sublayers = append(p.sublayers[:i], p.sublayers[i+1:]...)
			break
		}
	}
	l.parent = nil
}

// Superlayer returns the parent layer, or nil.
func (l *Layer) Superlayer() *Layer {
	return l.parent
}

// Sublayers returns a copy of the child list, bottom-most first.
func (l *Layer) Sublayers() []*Layer {
	out := make([]*Layer, len(l.sublayers))
	copy(out, l.sublayers)
	return out
}

// SetNeedsDisplay invalidates the cached drawing so the next Paint records
// it again.
func (l *Layer) SetNeedsDisplay() {
	l.needsDisplay = true
}

// NeedsDisplay reports whether the cached drawing is stale.
func (l *Layer) NeedsDisplay() bool {
	return l.needsDisplay
}

// DisplayCount returns how many times the layer's drawing has been
// recorded.
func (l *Layer) DisplayCount() int {
	return l.displayCount
}

// Paint composites the layer tree rooted at l onto canvas.
func (l *Layer) Paint(canvas Canvas) {
	if l.needsDisplay || l.content == nil {
		var rec PictureRecorder
		l.draw(rec.BeginRecording(canvas.Size()))
		l.content = rec.EndRecording()
		l.drawBorder(rec.BeginRecording(canvas.Size()))
		l.border = rec.EndRecording()
		l.needsDisplay = false
		l.displayCount++
	}

	if l.Mask != nil {
		canvas.Save()
		canvas.ClipShape(l.Mask.Coverage())
	}
	l.content.Paint(canvas)
	for _, child := range l.sublayers {
		child.Paint(canvas)
	}
	l.border.Paint(canvas)
	if l.Mask != nil {
		canvas.Restore()
	}
}

func (l *Layer) box() RRect {
	return RRectFromRectAndRadius(l.Bounds, CircularRadius(l.CornerRadius))
}

// draw records this layer's own content, excluding sublayers.
func (l *Layer) draw(canvas Canvas) {
	hasBox := !l.Bounds.IsEmpty()
	if hasBox && l.Shadow != nil && l.Shadow.IsVisible() {
		canvas.DrawRRectShadow(l.box(), *l.Shadow)
	}
	if hasBox && l.BackgroundColor.Alpha() > 0 {
		canvas.DrawRRect(l.box(), FillPaint(l.BackgroundColor))
	}
	if l.Path != nil {
		if l.FillColor.Alpha() > 0 {
			canvas.DrawPath(l.Path, FillPaint(l.FillColor))
		}
		if l.StrokeColor.Alpha() > 0 && l.LineWidth > 0 {
			if stroke := l.strokedPath(); !stroke.IsEmpty() {
				canvas.DrawPath(stroke, StrokePaint(l.StrokeColor, l.LineWidth))
			}
		}
	}
}

// drawBorder records the border inside the layer bounds.
func (l *Layer) drawBorder(canvas Canvas) {
	if l.Bounds.IsEmpty() || l.BorderWidth <= 0 || l.BorderColor.Alpha() == 0 {
		return
	}
	border := NewPath()
	border.AddRRect(l.box().Inflate(-l.BorderWidth / 2))
	canvas.DrawPath(border, StrokePaint(l.BorderColor, l.BorderWidth))
}

func (l *Layer) strokedPath() *Path {
	if l.StrokeStart <= 0 && l.StrokeEnd >= 1 {
		return l.Path
	}
	return l.Path.Trim(l.StrokeStart, l.StrokeEnd)
}

// Coverage returns the area the layer itself would paint: its box when
// BackgroundColor is visible, the path interior when FillColor is visible
// and the trimmed stroke when StrokeColor is visible.
func (l *Layer) Coverage() Shape {
	var out Shape
	if !l.Bounds.IsEmpty() && l.BackgroundColor.Alpha() > 0 {
		box := NewPath()
		box.AddRRect(l.box())
		out.Fills = append(out.Fills, box)
	}
	if l.Path == nil {
		return out
	}
	if l.FillColor.Alpha() > 0 {
		out.Fills = append(out.Fills, l.Path.Clone())
	}
	if l.StrokeColor.Alpha() > 0 && l.LineWidth > 0 {
		if stroke := l.strokedPath(); !stroke.IsEmpty() {
			out.Strokes = append(out.Strokes, Stroke{Path: stroke.Clone(), Width: l.LineWidth})
		}
	}
	return out
}
