package carousel

import "math"

// DragState tracks a press/drag/release gesture on the strip.
type DragState struct {
	dragging     bool
	startX       float64
	startY       float64
	lastX, lastY float64
}

func (d *DragState) Dragging() bool { return d.dragging }

// Start returns the coordinates the current gesture began at.
func (d *DragState) Start() (x, y float64) { return d.startX, d.startY }

func (d *DragState) begin(x, y float64) {
	d.dragging = true
	d.startX, d.startY = x, y
	d.lastX, d.lastY = x, y
}

// sample returns the movement since the previous sample.
func (d *DragState) sample(x, y float64) (dx, dy float64) {
	dx, dy = x-d.lastX, y-d.lastY
	d.lastX, d.lastY = x, y
	return dx, dy
}

func (d *DragState) end() {
	d.dragging = false
}

// ClampDrag keeps a dragged offset inside [-loop+1, 0]. Without a measured
// loop only the upper bound applies.
func ClampDrag(offset, loop float64) float64 {
	if offset > 0 {
		return 0
	}
	if loop > 0 {
		return math.Max(offset, -loop+1)
	}
	return offset
}

// TapGuard tells a tap from the end of a drag by comparing the click
// position with where the pointer went down.
type TapGuard struct {
	Threshold float64

	armed        bool
	downX, downY float64
}

func (g *TapGuard) Down(x, y float64) {
	g.armed = true
	g.downX, g.downY = x, y
}

// Click reports whether a click at (x, y) is a tap. Clicks without a recorded
// pointer-down are treated as taps (keyboard activation, synthetic clicks).
func (g *TapGuard) Click(x, y float64) bool {
	if !g.armed {
		return true
	}
	g.armed = false
	return math.Abs(x-g.downX) <= g.Threshold && math.Abs(y-g.downY) <= g.Threshold
}
