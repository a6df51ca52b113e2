package raster

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/circletimer/pkg/graphics"
)

// coverage scan-converts shape into an alpha mask the size of the canvas.
// Each fill and each stroke is rasterized in its own pass and the passes
// are merged with Over, so oppositely wound parts never cancel.
func (c *Canvas) coverage(shape graphics.Shape) *image.Alpha {
	bounds := c.img.Bounds()
	mask := image.NewAlpha(bounds)
	if shape.IsEmpty() || bounds.Empty() {
		return mask
	}
	w, h := bounds.Dx(), bounds.Dy()
	scanner := rasterx.NewScannerGV(w, h, mask, bounds)
	scanner.SetColor(color.Opaque)
	filler := rasterx.NewFiller(w, h, scanner)
	stroker := rasterx.NewStroker(w, h, scanner)

	for _, path := range shape.Fills {
		if fillPath(filler, path) {
			filler.Draw()
		}
		filler.Clear()
	}
	for _, s := range shape.Strokes {
		if s.Width <= 0 {
			continue
		}
		stroker.SetStroke(fixed.Int26_6(s.Width*64), 4<<6, rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Bevel)
		if strokePath(stroker, filler, s.Path, s.Width/2) {
			filler.Draw()
		}
		filler.Clear()
	}
	return mask
}

func fixedPoint(p graphics.Offset) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X, p.Y)
}

// fillPath adds every closed-off contour of path to f. Contours with fewer
// than three points enclose nothing and are skipped.
func fillPath(f *rasterx.Filler, path *graphics.Path) bool {
	added := false
	for _, contour := range path.Flatten() {
		if len(contour.Points) < 3 {
			continue
		}
		f.Start(fixedPoint(contour.Points[0]))
		for _, pt := range contour.Points[1:] {
			f.Line(fixedPoint(pt))
		}
		f.Stop(true)
		added = true
	}
	return added
}

// strokePath adds the stroke of path to the shared scanner as one
// butt-capped quad per segment, then fills the gap each join leaves on its
// outer side with a triangle. Every piece has the same orientation, so the
// absolute winding count turns their overlaps into a plain union. Stroking
// the contour as a whole would fold the inner offset back over itself once
// the half width exceeds the radius of curvature and cut a hole there.
func strokePath(s *rasterx.Stroker, f *rasterx.Filler, path *graphics.Path, half float64) bool {
	added := false
	for _, contour := range path.Flatten() {
		pts := contour.Points
		if len(pts) < 2 {
			continue
		}
		for i := 1; i < len(pts); i++ {
			s.Start(fixedPoint(pts[i-1]))
			s.Line(fixedPoint(pts[i]))
			s.Stop(false)
			added = true
		}
		for i := 1; i < len(pts)-1; i++ {
			addJoin(f, pts[i-1], pts[i], pts[i+1], half)
		}
		if contour.Closed && len(pts) > 2 {
			n := len(pts)
			addJoin(f, pts[n-2], pts[0], pts[1], half)
		}
	}
	return added
}

// addJoin fills the wedge between the ends of the quads meeting at b.
func addJoin(f *rasterx.Filler, a, b, c graphics.Offset, half float64) {
	n1, ok1 := normal(a, b)
	n2, ok2 := normal(b, c)
	if !ok1 || !ok2 {
		return
	}
	turn := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
	if turn == 0 {
		return
	}
	// A clockwise turn on screen opens the gap on the normal side.
	side := half
	if turn < 0 {
		side = -half
	}
	p1 := graphics.Offset{X: b.X + n1.X*side, Y: b.Y + n1.Y*side}
	p2 := graphics.Offset{X: b.X + n2.X*side, Y: b.Y + n2.Y*side}
	// Match the orientation of the stroker's quads.
	if (p1.X-b.X)*(p2.Y-b.Y)-(p1.Y-b.Y)*(p2.X-b.X) < 0 {
		p1, p2 = p2, p1
	}
	f.Start(fixedPoint(b))
	f.Line(fixedPoint(p1))
	f.Line(fixedPoint(p2))
	f.Stop(true)
}

// normal returns the unit normal to the left of the direction a to b, the
// side the stroker offsets first.
func normal(a, b graphics.Offset) (graphics.Offset, bool) {
	d := a.Distance(b)
	if d == 0 {
		return graphics.Offset{}, false
	}
	return graphics.Offset{X: (b.Y - a.Y) / d, Y: -(b.X - a.X) / d}, true
}
