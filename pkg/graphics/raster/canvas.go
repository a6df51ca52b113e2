// Package raster implements graphics.Canvas in software on an *image.RGBA.
//
// Shapes are scan-converted with github.com/srwiley/rasterx on top of the
// golang.org/x/image/vector rasterizer. Every draw call produces an alpha
// coverage mask which is intersected with the active clip and composited
// with golang.org/x/image/draw.
//
// Fills use the nonzero winding rule. Strokes are built as the union of one
// butt-capped quad per flattened segment plus the join wedges, so a stroke
// wider than its own curvature still covers its centre.
package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/go-drift/circletimer/pkg/graphics"
)

// Canvas is a software graphics.Canvas.
type Canvas struct {
	img   *image.RGBA
	clip  *image.Alpha
	stack []*image.Alpha
}

// NewCanvas returns a transparent canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the backing image. It is updated in place by draw calls.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Save pushes the current clip.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.clip)
}

// Restore pops the most recently saved clip. Unbalanced calls are ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.clip = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// ClipShape intersects the current clip with the area covered by shape.
func (c *Canvas) ClipShape(shape graphics.Shape) {
	mask := c.coverage(shape)
	if c.clip != nil {
		mask = intersect(mask, c.clip)
	}
	c.clip = mask
}

// Clear replaces every pixel inside the clip with color.
func (c *Canvas) Clear(color graphics.Color) {
	src := image.NewUniform(color.NRGBA())
	if c.clip == nil {
		draw.Draw(c.img, c.img.Bounds(), src, image.Point{}, draw.Src)
		return
	}
	draw.DrawMask(c.img, c.img.Bounds(), src, image.Point{}, c.clip, image.Point{}, draw.Src)
}

// DrawRRect draws a rounded rectangle.
func (c *Canvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	path := graphics.NewPath()
	path.AddRRect(rrect)
	c.DrawPath(path, paint)
}

// DrawPath fills or strokes path according to paint.Style.
func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	if path.IsEmpty() || paint.Color.Alpha() == 0 {
		return
	}
	shape := graphics.FillShape(path)
	if paint.Style == graphics.PaintStyleStroke {
		shape = graphics.Shape{Strokes: []graphics.Stroke{{Path: path, Width: paint.StrokeWidth}}}
	}
	c.composite(c.coverage(shape), paint.Color)
}

// DrawRRectShadow draws a blurred shadow of rrect. The shadow shape is
// offset and spread before an approximate gaussian (three box blurs) is
// applied to its coverage.
func (c *Canvas) DrawRRectShadow(rrect graphics.RRect, shadow graphics.BoxShadow) {
	if !shadow.IsVisible() {
		return
	}
	shape := rrect.Inflate(shadow.Spread)
	shape.Rect = shape.Rect.Translate(shadow.Offset.X, shadow.Offset.Y)
	path := graphics.NewPath()
	path.AddRRect(shape)
	mask := c.coverage(graphics.FillShape(path))
	if sigma := shadow.Sigma(); sigma > 0 {
		radius := int(math.Round(sigma * math.Sqrt(3)))
		for range 3 {
			mask = boxBlur(mask, radius)
		}
	}
	c.composite(mask, shadow.Color)
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() graphics.Size {
	b := c.img.Bounds()
	return graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *Canvas) composite(mask *image.Alpha, color graphics.Color) {
	if c.clip != nil {
		mask = intersect(mask, c.clip)
	}
	src := image.NewUniform(color.NRGBA())
	draw.DrawMask(c.img, c.img.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

// intersect multiplies two masks of equal bounds.
func intersect(a, b *image.Alpha) *image.Alpha {
	out := image.NewAlpha(a.Bounds())
	for i := range out.Pix {
		out.Pix[i] = uint8((uint16(a.Pix[i]) * uint16(b.Pix[i]) + 127) / 255)
	}
	return out
}

// boxBlur applies a separable box blur of the given radius.
func boxBlur(src *image.Alpha, radius int) *image.Alpha {
	if radius <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	tmp := make([]int, w*h)
	window := 2*radius + 1

	for y := 0; y < h; y++ {
		sum := 0
		for x := -radius; x <= radius; x++ {
			sum += alphaAt(src, x, y, w, h)
		}
		for x := 0; x < w; x++ {
			tmp[y*w+x] = sum / window
			sum += alphaAt(src, x+radius+1, y, w, h) - alphaAt(src, x-radius, y, w, h)
		}
	}

	out := image.NewAlpha(b)
	for x := 0; x < w; x++ {
		sum := 0
		for y := -radius; y <= radius; y++ {
			sum += tmpAt(tmp, x, y, w, h)
		}
		for y := 0; y < h; y++ {
			out.Pix[y*out.Stride+x] = uint8(sum / window)
			sum += tmpAt(tmp, x, y+radius+1, w, h) - tmpAt(tmp, x, y-radius, w, h)
		}
	}
	return out
}

func alphaAt(img *image.Alpha, x, y, w, h int) int {
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0
	}
	return int(img.Pix[y*img.Stride+x])
}

func tmpAt(buf []int, x, y, w, h int) int {
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0
	}
	return buf[y*w+x]
}

var _ graphics.Canvas = (*Canvas)(nil)
