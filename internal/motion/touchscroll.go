package motion

import "math"

// TouchScroll turns a vertical finger drag into page scrolling. A touch only
// becomes a scroll once it has moved more than Slop, and a touch that some
// other gesture claimed stays claimed until the finger lifts.
type TouchScroll struct {
	Slop float64

	lastY     float64
	scrolling bool
	claimed   bool
}

// Press starts a new touch at y.
func (ts *TouchScroll) Press(y float64) {
	ts.lastY = y
	ts.scrolling = false
	ts.claimed = false
}

// Claim hands the current touch to another gesture. The anchor follows the
// finger so movement made while claimed is never replayed as a scroll.
func (ts *TouchScroll) Claim(y float64) {
	ts.lastY = y
	ts.claimed = true
}

// Move returns how far the page should follow the finger at y.
func (ts *TouchScroll) Move(y float64) float64 {
	if ts.claimed {
		ts.lastY = y
		return 0
	}
	dy := y - ts.lastY
	if !ts.scrolling && math.Abs(dy) > ts.Slop {
		ts.scrolling = true
	}
	if !ts.scrolling {
		return 0
	}
	ts.lastY = y
	return dy
}

// Scrolling reports whether the current touch is scrolling the page.
func (ts *TouchScroll) Scrolling() bool { return ts.scrolling }

// Reset forgets the touch once it has ended.
func (ts *TouchScroll) Reset() {
	ts.scrolling = false
	ts.claimed = false
}
