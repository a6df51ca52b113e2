package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo               // Draw line to point (x, y)
	PathOpArcTo                // Draw elliptical arc (cx, cy, rx, ry, start, sweep)
	PathOpClose                // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpArcTo:
		return "arc_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // MoveTo/LineTo=[x,y], ArcTo=[cx,cy,rx,ry,start,sweep]
}

// Path represents a vector path for drawing, stroking or clipping.
//
// Angles are in radians, measured clockwise from the positive X axis in
// y-down screen coordinates, so a positive sweep runs clockwise on screen.
type Path struct {
	Commands []PathCommand
}

// Contour is a flattened subpath.
type Contour struct {
	Points []Offset
	Closed bool
}

// arcStepRadians bounds the angle covered by a single flattened arc segment.
const arcStepRadians = math.Pi / 90

// NewPath creates a new empty path. Paths are filled with the nonzero
// winding rule.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
}

// ArcTo adds an elliptical arc around (cx, cy). If the current point is not
// the arc's start point a connecting line is implied.
func (p *Path) ArcTo(cx, cy, rx, ry, startAngle, sweepAngle float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpArcTo,
		Args: []float64{cx, cy, rx, ry, startAngle, sweepAngle},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	out := &Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		args := make([]float64, len(cmd.Args))
		copy(args, cmd.Args)
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: args}
	}
	return out
}

// AddOval adds a closed ellipse inscribed in rect, starting at the top
// center and running clockwise.
func (p *Path) AddOval(rect Rect) {
	c := rect.Center()
	rx, ry := rect.Width()/2, rect.Height()/2
	p.MoveTo(c.X, rect.Top)
	p.ArcTo(c.X, c.Y, rx, ry, -math.Pi/2, 2*math.Pi)
	p.Close()
}

// AddRRect adds a closed rounded rectangle running clockwise from the end of
// the top-left corner. A corner radius of half the side length yields a
// circle. The radius is clamped to half the shorter side.
func (p *Path) AddRRect(rrect RRect) {
	rect := rrect.Rect
	r := math.Max(0, rrect.Radius.X)
	r = math.Min(r, math.Min(math.Abs(rect.Width()), math.Abs(rect.Height()))/2)
	l, t, rt, b := rect.Left, rect.Top, rect.Right, rect.Bottom
	half := math.Pi / 2

	p.MoveTo(l+r, t)
	p.LineTo(rt-r, t)
	p.ArcTo(rt-r, t+r, r, r, -half, half)
	p.LineTo(rt, b-r)
	p.ArcTo(rt-r, b-r, r, r, 0, half)
	p.LineTo(l+r, b)
	p.ArcTo(l+r, b-r, r, r, half, half)
	p.LineTo(l, t+r)
	p.ArcTo(l+r, t+r, r, r, math.Pi, half)
	p.Close()
}

// pathSegment is a single drawable piece of a subpath used for reversal.
type pathSegment struct {
	op   PathOp
	from Offset
	to   Offset
	args []float64
}

type subpath struct {
	start    Offset
	segments []pathSegment
	closed   bool
}

func arcPoint(cx, cy, rx, ry, angle float64) Offset {
	return Offset{X: cx + rx*math.Cos(angle), Y: cy + ry*math.Sin(angle)}
}

// subpaths splits the path into explicit segments.
func (p *Path) subpaths() []subpath {
	var out []subpath
	var cur Offset
	open := false
	begin := func(pt Offset) {
		out = append(out, subpath{start: pt})
		cur = pt
		open = true
	}
	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			begin(Offset{X: cmd.Args[0], Y: cmd.Args[1]})
		case PathOpLineTo:
			pt := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			if !open {
				begin(cur)
			}
			sp := &out[len(out)-1]
			sp.segments = append(sp.segments, pathSegment{op: PathOpLineTo, from: cur, to: pt})
			cur = pt
		case PathOpArcTo:
			a := cmd.Args
			start := arcPoint(a[0], a[1], a[2], a[3], a[4])
			end := arcPoint(a[0], a[1], a[2], a[3], a[4]+a[5])
			if !open {
				begin(start)
			}
			sp := &out[len(out)-1]
			if cur.Distance(start) > epsilon {
				sp.segments = append(sp.segments, pathSegment{op: PathOpLineTo, from: cur, to: start})
			}
			sp.segments = append(sp.segments, pathSegment{op: PathOpArcTo, from: start, to: end, args: a})
			cur = end
		case PathOpClose:
			if open {
				sp := &out[len(out)-1]
				sp.closed = true
				cur = sp.start
				open = false
			}
		}
	}
	return out
}

// Reversed returns a path tracing the same geometry in the opposite
// direction. Closed subpaths stay closed and keep their start point.
func (p *Path) Reversed() *Path {
	out := NewPath()
	for _, sp := range p.subpaths() {
		if len(sp.segments) == 0 {
			out.MoveTo(sp.start.X, sp.start.Y)
			continue
		}
		last := sp.segments[len(sp.segments)-1].to
		if sp.closed {
			out.MoveTo(sp.start.X, sp.start.Y)
			if last.Distance(sp.start) > epsilon {
				out.LineTo(last.X, last.Y)
			}
		} else {
			out.MoveTo(last.X, last.Y)
		}
		for i := len(sp.segments) - 1; i >= 0; i-- {
			seg := sp.segments[i]
			switch seg.op {
			case PathOpLineTo:
				out.LineTo(seg.from.X, seg.from.Y)
			case PathOpArcTo:
				a := seg.args
				out.ArcTo(a[0], a[1], a[2], a[3], a[4]+a[5], -a[5])
			}
		}
		if sp.closed {
			out.Close()
		}
	}
	return out
}

// Flatten converts the path to polylines. Arcs are subdivided so that no
// segment spans more than two degrees. Consecutive duplicate points are
// dropped; closed contours repeat their first point at the end.
func (p *Path) Flatten() []Contour {
	var out []Contour
	appendPoint := func(c *Contour, pt Offset) {
		if n := len(c.Points); n > 0 && c.Points[n-1].Distance(pt) < 1e-9 {
			return
		}
		c.Points = append(c.Points, pt)
	}
	for _, sp := range p.subpaths() {
		c := Contour{Closed: sp.closed}
		appendPoint(&c, sp.start)
		for _, seg := range sp.segments {
			switch seg.op {
			case PathOpLineTo:
				appendPoint(&c, seg.to)
			case PathOpArcTo:
				a := seg.args
				steps := int(math.Ceil(math.Abs(a[5]) / arcStepRadians))
				if steps < 1 {
					steps = 1
				}
				for i := 1; i <= steps; i++ {
					angle := a[4] + a[5]*float64(i)/float64(steps)
					appendPoint(&c, arcPoint(a[0], a[1], a[2], a[3], angle))
				}
			}
		}
		if sp.closed {
			// Always repeat the start so the closing edge is explicit.
			if n := len(c.Points); n > 0 && c.Points[n-1].Distance(sp.start) >= 1e-9 {
				c.Points = append(c.Points, sp.start)
			} else if n > 1 {
				c.Points[n-1] = sp.start
			}
		}
		out = append(out, c)
	}
	return out
}

func contourLength(c Contour) float64 {
	total := 0.0
	for i := 1; i < len(c.Points); i++ {
		total += c.Points[i-1].Distance(c.Points[i])
	}
	return total
}

// Length returns the total length of all subpaths, including closing edges.
func (p *Path) Length() float64 {
	total := 0.0
	for _, c := range p.Flatten() {
		total += contourLength(c)
	}
	return total
}

// Bounds returns the bounding box of the flattened path.
func (p *Path) Bounds() Rect {
	first := true
	var r Rect
	for _, c := range p.Flatten() {
		for _, pt := range c.Points {
			if first {
				r = Rect{Left: pt.X, Top: pt.Y, Right: pt.X, Bottom: pt.Y}
				first = false
				continue
			}
			r.Left = math.Min(r.Left, pt.X)
			r.Top = math.Min(r.Top, pt.Y)
			r.Right = math.Max(r.Right, pt.X)
			r.Bottom = math.Max(r.Bottom, pt.Y)
		}
	}
	return r
}

// Trim returns the open polyline covering the fractions [start, end] of
// the path's total length, the way a shape layer's strokeStart and
// strokeEnd select the stroked portion. Fractions are clamped to [0, 1];
// an empty path is returned when end <= start.
func (p *Path) Trim(start, end float64) *Path {
	out := NewPath()
	start, end = clamp01(start), clamp01(end)
	if end <= start {
		return out
	}
	contours := p.Flatten()
	total := 0.0
	for _, c := range contours {
		total += contourLength(c)
	}
	if total <= 0 {
		return out
	}
	from, to := start*total, end*total

	offset := 0.0
	for _, c := range contours {
		length := contourLength(c)
		lo := math.Max(from, offset)
		hi := math.Min(to, offset+length)
		if hi > lo {
			pts := slicePolyline(c.Points, lo-offset, hi-offset)
			if len(pts) > 1 {
				out.MoveTo(pts[0].X, pts[0].Y)
				for _, pt := range pts[1:] {
					out.LineTo(pt.X, pt.Y)
				}
			}
		}
		offset += length
	}
	return out
}

// slicePolyline returns the points of pts between arc lengths a and b.
func slicePolyline(pts []Offset, a, b float64) []Offset {
	var out []Offset
	walked := 0.0
	for i := 1; i < len(pts); i++ {
		p0, p1 := pts[i-1], pts[i]
		seg := p0.Distance(p1)
		if seg == 0 {
			continue
		}
		segStart, segEnd := walked, walked+seg
		walked = segEnd
		if segEnd < a {
			continue
		}
		if segStart > b {
			break
		}
		lerp := func(d float64) Offset {
			t := (d - segStart) / seg
			return Offset{X: p0.X + (p1.X-p0.X)*t, Y: p0.Y + (p1.Y-p0.Y)*t}
		}
		if len(out) == 0 {
			out = append(out, lerp(math.Max(a, segStart)))
		}
		out = append(out, lerp(math.Min(b, segEnd)))
	}
	return out
}
