package carousel

import (
	"math"
	"time"
)

// DriverState is the animation driver's state.
type DriverState int

const (
	Suspended DriverState = iota
	Running
)

func (s DriverState) String() string {
	if s == Running {
		return "running"
	}
	return "suspended"
}

// Driver advances the scroll offset at a constant rate while running.
type Driver struct {
	speed     float64 // px per millisecond
	state     DriverState
	lastFrame time.Time
}

// NewDriver returns a suspended driver moving at speed px/ms once running.
func NewDriver(speed float64) *Driver {
	return &Driver{speed: speed}
}

func (d *Driver) State() DriverState { return d.state }

// Step returns the offset delta for the frame at now. A suspended frame
// yields 0. The first running frame after a suspension also yields 0 and
// restarts the frame clock, so the gap spent suspended never turns into a jump.
func (d *Driver) Step(now time.Time, suspended bool) float64 {
	if suspended {
		d.state = Suspended
		return 0
	}
	if d.state != Running {
		d.state = Running
		d.lastFrame = now
		return 0
	}
	elapsed := float64(now.Sub(d.lastFrame)) / float64(time.Millisecond)
	d.lastFrame = now
	if elapsed <= 0 {
		return 0
	}
	return -d.speed * elapsed
}

// Normalize wraps offset into (-loop, 0]. A loop of zero or less means the
// track is not measured yet and offset is returned unchanged.
func Normalize(offset, loop float64) float64 {
	if loop <= 0 || math.IsNaN(offset) || math.IsInf(offset, 0) {
		return offset
	}
	if offset <= -loop {
		offset = math.Mod(offset, loop)
		if offset <= -loop {
			offset += loop
		}
	}
	if offset > 0 {
		offset = math.Mod(offset, loop)
		if offset > 0 {
			offset -= loop
		}
	}
	if offset == 0 {
		// collapse -0
		return 0
	}
	return offset
}
