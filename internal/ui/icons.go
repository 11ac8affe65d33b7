package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawSunIcon draws a sun at (cx, cy) with given radius.
func drawSunIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, r*0.45, clr, true)
	rays := 8
	for i := 0; i < rays; i++ {
		angle := float64(i) * 2 * math.Pi / float64(rays)
		cos, sin := float32(math.Cos(angle)), float32(math.Sin(angle))
		vector.StrokeLine(dst, cx+r*0.65*cos, cy+r*0.65*sin, cx+r*cos, cy+r*sin, 1.8, clr, true)
	}
}

// drawMoonIcon draws a crescent by punching a background-coloured disc out
// of a filled one.
func drawMoonIcon(dst *ebiten.Image, cx, cy, r float32, clr, bg color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, r*0.8, clr, true)
	vector.DrawFilledCircle(dst, cx+r*0.4, cy-r*0.3, r*0.65, bg, true)
}

// drawApertureIcon draws the camera-aperture brand mark.
func drawApertureIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeCircle(dst, cx, cy, r, 2, clr, true)
	blades := 6
	for i := 0; i < blades; i++ {
		a0 := float64(i) * 2 * math.Pi / float64(blades)
		a1 := a0 + math.Pi/2.2
		x0 := cx + r*float32(math.Cos(a0))
		y0 := cy + r*float32(math.Sin(a0))
		x1 := cx + r*0.45*float32(math.Cos(a1))
		y1 := cy + r*0.45*float32(math.Sin(a1))
		vector.StrokeLine(dst, x0, y0, x1, y1, 1.5, clr, true)
	}
}

// drawArrowIcon draws a small right-pointing arrow, used on call-to-action buttons.
func drawArrowIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx-r, cy, cx+r, cy, 1.8, clr, true)
	vector.StrokeLine(dst, cx+r*0.3, cy-r*0.6, cx+r, cy, 1.8, clr, true)
	vector.StrokeLine(dst, cx+r*0.3, cy+r*0.6, cx+r, cy, 1.8, clr, true)
}

// drawButton draws a call-to-action button. Filled when primary or hovered.
func drawButton(dst *ebiten.Image, pal Palette, label string, x, y, w, h float64, primary, hovered bool) {
	fill := primary || hovered
	if fill {
		bg := pal.Primary
		if hovered && primary {
			bg = pal.PrimaryDark
		} else if hovered {
			bg = pal.SurfaceHover
		}
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), bg, false)
	}
	if !primary {
		vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, pal.Primary, false)
	}
	fg := pal.Text
	if primary {
		fg = pal.Background
	}
	tw, th := MeasureHeading(label, FontSizeBody)
	total := tw + 28
	lx := x + (w-total)/2
	DrawHeading(dst, label, lx, y+(h-th)/2, FontSizeBody, fg)
	drawArrowIcon(dst, float32(lx+tw+18), float32(y+h/2), 7, fg)
}
