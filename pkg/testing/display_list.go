package testing

import (
	"fmt"
	"image"
	"math"

	"github.com/go-drift/circletimer/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// RecordOps runs paint against a serializing canvas of the given size and
// returns the operations it issued.
func RecordOps(size graphics.Size, paint func(graphics.Canvas)) []DisplayOp {
	canvas := &serializingCanvas{size: size}
	paint(canvas)
	return canvas.ops
}

// OpsNamed returns the operations whose Op equals name.
func OpsNamed(ops []DisplayOp, name string) []DisplayOp {
	var out []DisplayOp
	for _, op := range ops {
		if op.Op == name {
			out = append(out, op)
		}
	}
	return out
}

// ColorAt returns the pixel at (x, y) as a graphics.Color, un-premultiplied.
func ColorAt(img *image.RGBA, x, y int) graphics.Color {
	c := img.RGBAAt(x, y)
	if c.A == 0 {
		return graphics.ColorTransparent
	}
	un := func(v uint8) uint8 {
		return uint8(math.Min(255, math.Round(float64(v)*255/float64(c.A))))
	}
	return graphics.RGBA8(un(c.R), un(c.G), un(c.B), c.A)
}

// ColorsClose reports whether every channel of a and b differs by at most
// tolerance.
func ColorsClose(a, b graphics.Color, tolerance uint8) bool {
	for shift := 0; shift < 32; shift += 8 {
		ca := int((uint32(a) >> shift) & 0xFF)
		cb := int((uint32(b) >> shift) & 0xFF)
		d := ca - cb
		if d < 0 {
			d = -d
		}
		if d > int(tolerance) {
			return false
		}
	}
	return true
}

// serializingCanvas implements graphics.Canvas by appending one DisplayOp
// per call. Coordinates are rounded to two decimals so tests can compare
// them directly.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) emit(op string, kvs ...any) {
	var params map[string]any
	if len(kvs) > 0 {
		params = make(map[string]any, len(kvs)/2)
		for i := 0; i+1 < len(kvs); i += 2 {
			params[kvs[i].(string)] = kvs[i+1]
		}
	}
	c.ops = append(c.ops, DisplayOp{Op: op, Params: params})
}

func (c *serializingCanvas) Save()    { c.emit("save") }
func (c *serializingCanvas) Restore() { c.emit("restore") }

func (c *serializingCanvas) ClipShape(shape graphics.Shape) {
	if shape.IsEmpty() {
		c.emit("clipShape", "empty", true)
		return
	}
	c.emit("clipShape",
		"empty", false,
		"bounds", rect(shape.Bounds()),
		"fills", len(shape.Fills),
		"strokes", len(shape.Strokes),
	)
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.emit("clear", "color", hex(color))
}

func (c *serializingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	c.emit("drawRRect",
		"rect", rect(rrect.Rect),
		"radius", round2(rrect.Radius.X),
		"color", hex(paint.Color),
	)
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	c.emit("drawPath",
		"bounds", rect(path.Bounds()),
		"style", paint.Style.String(),
		"strokeWidth", round2(paint.StrokeWidth),
		"color", hex(paint.Color),
	)
}

func (c *serializingCanvas) DrawRRectShadow(rrect graphics.RRect, shadow graphics.BoxShadow) {
	c.emit("drawRRectShadow",
		"rect", rect(rrect.Rect),
		"color", hex(shadow.Color),
		"blur", round2(shadow.BlurRadius),
	)
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

func rect(r graphics.Rect) map[string]any {
	return map[string]any{
		"left":   round2(r.Left),
		"top":    round2(r.Top),
		"right":  round2(r.Right),
		"bottom": round2(r.Bottom),
	}
}

func hex(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

var _ graphics.Canvas = (*serializingCanvas)(nil)
