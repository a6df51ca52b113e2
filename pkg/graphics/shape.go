package graphics

// Shape is an area of the canvas: the union of the interiors of Fills and
// of every Stroke. Layers describe their mask coverage as a Shape so a
// canvas can clip to a stroked path without converting it to an outline.
type Shape struct {
	Fills   []*Path
	Strokes []Stroke
}

// Stroke is a path stroked Width wide with butt caps.
type Stroke struct {
	Path  *Path
	Width float64
}

// FillShape returns the shape covering the interior of path.
func FillShape(path *Path) Shape {
	return Shape{Fills: []*Path{path}}
}

// IsEmpty reports whether the shape covers nothing.
func (s Shape) IsEmpty() bool {
	for _, p := range s.Fills {
		if !p.IsEmpty() {
			return false
		}
	}
	for _, st := range s.Strokes {
		if !st.Path.IsEmpty() && st.Width > 0 {
			return false
		}
	}
	return true
}

// Bounds returns a box containing the shape. Strokes are inflated by half
// their width.
func (s Shape) Bounds() Rect {
	var out Rect
	first := true
	add := func(r Rect) {
		if first {
			out, first = r, false
			return
		}
		out = out.Union(r)
	}
	for _, p := range s.Fills {
		if !p.IsEmpty() {
			add(p.Bounds())
		}
	}
	for _, st := range s.Strokes {
		if !st.Path.IsEmpty() && st.Width > 0 {
			add(st.Path.Bounds().Inflate(st.Width / 2))
		}
	}
	return out
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := Shape{}
	for _, p := range s.Fills {
		out.Fills = append(out.Fills, p.Clone())
	}
	for _, st := range s.Strokes {
		out.Strokes = append(out.Strokes, Stroke{Path: st.Path.Clone(), Width: st.Width})
	}
	return out
}
