// Package motion holds the small amount of math behind the UI's
// animations: easing curves, rectangle interpolation, the grow-from-card
// modal transition and the preloader counter.
package motion

import "math"

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

func EaseInOutCubic(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Lerp interpolates every edge of r towards to.
func (r Rect) Lerp(to Rect, t float64) Rect {
	return Rect{
		X: Lerp(r.X, to.X, t),
		Y: Lerp(r.Y, to.Y, t),
		W: Lerp(r.W, to.W, t),
		H: Lerp(r.H, to.H, t),
	}
}

func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// CenteredRect returns a w×h rectangle centred on a screen of sw×sh.
func CenteredRect(sw, sh, w, h float64) Rect {
	return Rect{X: (sw - w) / 2, Y: (sh - h) / 2, W: w, H: h}
}

// FitRect scales an aspect ratio (width / height) to the largest rectangle
// that fits inside maxW×maxH, centred on a screen of sw×sh.
func FitRect(sw, sh, maxW, maxH, aspect float64) Rect {
	if aspect <= 0 {
		aspect = 1
	}
	w := maxW
	h := w / aspect
	if h > maxH {
		h = maxH
		w = h * aspect
	}
	return CenteredRect(sw, sh, w, h)
}
