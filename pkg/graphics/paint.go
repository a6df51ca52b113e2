package graphics

import "fmt"

// PaintStyle selects whether a shape's interior or its outline is drawn.
type PaintStyle int

const (
	PaintStyleFill PaintStyle = iota
	PaintStyleStroke
)

func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	}
	return fmt.Sprintf("PaintStyle(%d)", int(s))
}

// Paint is the color and style a canvas draws a shape with. StrokeWidth
// only matters for PaintStyleStroke. Strokes always have butt caps: the
// paths drawn here are closed, or trimmed arcs whose ends must stop
// exactly at the trim.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
}

// FillPaint fills with color.
func FillPaint(color Color) Paint {
	return Paint{Color: color, Style: PaintStyleFill}
}

// StrokePaint strokes width pixels wide with color.
func StrokePaint(color Color, width float64) Paint {
	return Paint{Color: color, Style: PaintStyleStroke, StrokeWidth: width}
}
