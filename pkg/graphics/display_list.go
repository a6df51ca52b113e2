package graphics

// DisplayList is an immutable recording of canvas calls that can be
// replayed onto any Canvas.
type DisplayList struct {
	calls []func(Canvas)
	size  Size
}

// Paint replays the recording onto canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, call := range d.calls {
		call(canvas)
	}
}

// Size returns the canvas size the list was recorded against.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded calls.
func (d *DisplayList) Len() int {
	return len(d.calls)
}

// PictureRecorder captures canvas calls into a DisplayList. Calls made
// outside a BeginRecording/EndRecording pair are dropped.
type PictureRecorder struct {
	calls     []func(Canvas)
	recording bool
	size      Size
}

// BeginRecording discards any previous recording and returns the canvas
// to draw into.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.calls = r.calls[:0]
	r.recording = true
	r.size = size
	return recordingCanvas{r}
}

// EndRecording returns the calls captured since BeginRecording.
func (r *PictureRecorder) EndRecording() *DisplayList {
	list := &DisplayList{size: r.size}
	if r.recording {
		list.calls = append([]func(Canvas){}, r.calls...)
		r.recording = false
	}
	return list
}

func (r *PictureRecorder) record(call func(Canvas)) {
	if r.recording {
		r.calls = append(r.calls, call)
	}
}

// recordingCanvas defers every call to replay time. Paths and shapes are
// cloned so later edits by the caller do not leak into the recording.
type recordingCanvas struct {
	r *PictureRecorder
}

func (c recordingCanvas) Save()    { c.r.record(Canvas.Save) }
func (c recordingCanvas) Restore() { c.r.record(Canvas.Restore) }

func (c recordingCanvas) ClipShape(shape Shape) {
	shape = shape.Clone()
	c.r.record(func(dst Canvas) { dst.ClipShape(shape) })
}

func (c recordingCanvas) Clear(color Color) {
	c.r.record(func(dst Canvas) { dst.Clear(color) })
}

func (c recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.r.record(func(dst Canvas) { dst.DrawRRect(rrect, paint) })
}

func (c recordingCanvas) DrawPath(path *Path, paint Paint) {
	path = path.Clone()
	c.r.record(func(dst Canvas) { dst.DrawPath(path, paint) })
}

func (c recordingCanvas) DrawRRectShadow(rrect RRect, shadow BoxShadow) {
	c.r.record(func(dst Canvas) { dst.DrawRRectShadow(rrect, shadow) })
}

func (c recordingCanvas) Size() Size {
	return c.r.size
}
