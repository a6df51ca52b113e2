package graphics

import "math"

// epsilon is the distance below which two path points are the same point.
const epsilon = 0.0001

// Offset is a point in pixel coordinates, y growing downwards.
type Offset struct {
	X float64
	Y float64
}

// Distance returns the euclidean distance between o and other.
func (o Offset) Distance(other Offset) float64 {
	return math.Hypot(other.X-o.X, other.Y-o.Y)
}

// Size is a width and height in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned box given by its edges.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH returns the rect with the given top-left corner and size.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// RectFromCenter returns the width by height rect centred on center.
func RectFromCenter(center Offset, width, height float64) Rect {
	return RectFromLTWH(center.X-width/2, center.Y-height/2, width, height)
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the middle of r.
func (r Rect) Center() Offset {
	return Offset{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Inflate returns r grown by delta on every side. A negative delta shrinks
// it.
func (r Rect) Inflate(delta float64) Rect {
	return Rect{Left: r.Left - delta, Top: r.Top - delta, Right: r.Right + delta, Bottom: r.Bottom + delta}
}

// Union returns the smallest rect containing r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Radius is an elliptical corner radius.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius returns a radius with equal axes.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// RRect is a rectangle whose four corners share one radius. Layers only
// ever round their box uniformly, so per-corner radii are not modelled.
type RRect struct {
	Rect   Rect
	Radius Radius
}

// RRectFromRectAndRadius returns rect with every corner rounded by radius.
func RRectFromRectAndRadius(rect Rect, radius Radius) RRect {
	return RRect{Rect: rect, Radius: radius}
}

// Inflate grows the box by delta on every side and the radius by the same
// amount, so an inflated circle stays a circle.
func (r RRect) Inflate(delta float64) RRect {
	return RRect{
		Rect: r.Rect.Inflate(delta),
		Radius: Radius{
			X: math.Max(0, r.Radius.X+delta),
			Y: math.Max(0, r.Radius.Y+delta),
		},
	}
}
