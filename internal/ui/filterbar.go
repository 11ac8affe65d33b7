package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/shutterfolio/internal/motion"
)

// FilterBar is a horizontal row of category pills. Exactly one is selected.
type FilterBar struct {
	Options  []string
	Selected int
	// OnChanged receives the newly selected option.
	OnChanged func(option string)

	pillRects []motion.Rect
	hovered   int
}

func NewFilterBar(options []string) *FilterBar {
	return &FilterBar{Options: options, hovered: -1}
}

// Value returns the currently selected option string.
func (fb *FilterBar) Value() string {
	if fb.Selected < 0 || fb.Selected >= len(fb.Options) {
		return ""
	}
	return fb.Options[fb.Selected]
}

// SetOptions replaces the pills, keeping the selection when it still exists.
func (fb *FilterBar) SetOptions(options []string) {
	current := fb.Value()
	fb.Options = options
	fb.Selected = 0
	for i, o := range options {
		if o == current {
			fb.Selected = i
		}
	}
}

// Select changes the selection and fires OnChanged.
func (fb *FilterBar) Select(i int) {
	if i < 0 || i >= len(fb.Options) || i == fb.Selected {
		return
	}
	fb.Selected = i
	if fb.OnChanged != nil {
		fb.OnChanged(fb.Value())
	}
}

// Update tracks hover and handles clicks. It returns true if the click
// landed on a pill.
func (fb *FilterBar) Update(p *Pointer) bool {
	fb.hovered = -1
	for i, r := range fb.pillRects {
		if r.Contains(p.X, p.Y) {
			if p.Hovering() {
				fb.hovered = i
			}
			if p.Clicked() {
				fb.Select(i)
				return true
			}
		}
	}
	return false
}

// Cycle moves the selection by delta, wrapping.
func (fb *FilterBar) Cycle(delta int) {
	n := len(fb.Options)
	if n == 0 {
		return
	}
	fb.Select(((fb.Selected+delta)%n + n) % n)
}

const (
	filterBarHeight = 40.0
	filterPillGap   = 12.0
	filterPillPadX  = 20.0
)

// Draw renders the bar at the given position and returns its height.
func (fb *FilterBar) Draw(dst *ebiten.Image, pal Palette, x, y float64) float64 {
	if len(fb.pillRects) != len(fb.Options) {
		fb.pillRects = make([]motion.Rect, len(fb.Options))
	}
	curX := x
	for i, label := range fb.Options {
		tw, _ := MeasureText(label, FontSizeBody)
		r := motion.Rect{X: curX, Y: y, W: tw + filterPillPadX*2, H: filterBarHeight}
		fb.pillRects[i] = r

		switch {
		case i == fb.Selected:
			fillRect(dst, r, pal.Primary)
			DrawTextCentered(dst, label, r.X+r.W/2, r.Y+r.H/2, FontSizeBody, pal.Background)
		case i == fb.hovered:
			fillRect(dst, r, pal.SurfaceHover)
			strokeRect(dst, r, 1, pal.Primary)
			DrawTextCentered(dst, label, r.X+r.W/2, r.Y+r.H/2, FontSizeBody, pal.Text)
		default:
			strokeRect(dst, r, 1, pal.TextMuted)
			DrawTextCentered(dst, label, r.X+r.W/2, r.Y+r.H/2, FontSizeBody, pal.TextSecondary)
		}
		curX += r.W + filterPillGap
	}
	return filterBarHeight
}
