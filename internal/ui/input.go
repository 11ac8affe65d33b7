package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

func inputRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	frames, held := keyHoldFrames[key]
	if !held || frames == 0 {
		return true
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}

// Pointer merges the mouse and the first active touch into one pointer.
// A touch takes over while it lasts; the mouse is used otherwise.
type Pointer struct {
	X, Y         float64
	Pressed      bool
	JustPressed  bool
	JustReleased bool
	// Touch is set while the pointer came from a touch, and on the frame the
	// touch ended. Touches do not hover.
	Touch bool

	touching bool
	touchID  ebiten.TouchID
	touchIDs []ebiten.TouchID
}

// Update samples input for this frame. Call once at the start of Update.
func (p *Pointer) Update() {
	p.JustPressed, p.JustReleased = false, false
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])

	if p.touching {
		if p.hasTouch(p.touchID) {
			tx, ty := ebiten.TouchPosition(p.touchID)
			p.X, p.Y = float64(tx), float64(ty)
			p.Pressed = true
			return
		}
		// Released: keep the last position for this frame's click test.
		p.touching = false
		p.Pressed = false
		p.JustReleased = true
		return
	}

	if len(p.touchIDs) > 0 {
		p.touching = true
		p.touchID = p.touchIDs[0]
		tx, ty := ebiten.TouchPosition(p.touchID)
		p.X, p.Y = float64(tx), float64(ty)
		p.Touch = true
		p.Pressed = true
		p.JustPressed = true
		return
	}

	mx, my := ebiten.CursorPosition()
	if p.Touch && float64(mx) == p.X && float64(my) == p.Y &&
		!ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) &&
		!inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		// Synthesised cursor from the last touch: still not a hover.
		return
	}
	p.Touch = false
	p.X, p.Y = float64(mx), float64(my)
	p.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	p.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	p.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (p *Pointer) hasTouch(id ebiten.TouchID) bool {
	for _, t := range p.touchIDs {
		if t == id {
			return true
		}
	}
	return false
}

// Hovering reports whether the pointer can hover: a mouse, not a finger.
func (p *Pointer) Hovering() bool {
	return !p.Touch
}

// Clicked reports a press-and-release finished this frame.
func (p *Pointer) Clicked() bool {
	return p.JustReleased
}
