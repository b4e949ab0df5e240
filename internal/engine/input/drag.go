package input

// DragTracker turns raw mouse events into the gesture the cube core
// samples once per tick: cumulative pixel deltas since the left button
// went down, plus whether a drag is live. Deltas reset to zero on every
// new press.
type DragTracker struct {
	dragging bool
	originX  int
	originY  int
	deltaX   float32
	deltaY   float32
}

func (d *DragTracker) press(x, y int) {
	d.dragging = true
	d.originX = x
	d.originY = y
	d.deltaX = 0
	d.deltaY = 0
}

func (d *DragTracker) motion(x, y int) {
	if !d.dragging {
		return
	}
	d.deltaX = float32(x - d.originX)
	d.deltaY = float32(y - d.originY)
}

func (d *DragTracker) release() {
	d.dragging = false
}

func (d *DragTracker) sample() (deltaX, deltaY float32, dragging bool) {
	return d.deltaX, d.deltaY, d.dragging
}
