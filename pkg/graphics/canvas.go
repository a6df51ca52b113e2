package graphics

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current clip state.
	Save()

	// Restore pops the most recent clip state.
	Restore()

	// ClipShape restricts future drawing to the area covered by shape.
	ClipShape(shape Shape)

	// Clear replaces every pixel inside the current clip with color.
	Clear(color Color)

	DrawRRect(rrect RRect, paint Paint)

	// DrawPath fills or strokes path. Strokes use butt caps.
	DrawPath(path *Path, paint Paint)

	// DrawRRectShadow draws a blurred shadow behind a rounded rectangle.
	DrawRRectShadow(rrect RRect, shadow BoxShadow)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
