package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// StatusDisplay draws a form status line with a dismiss button.
// Store one per form, call Draw each frame and HandleClick in Update.
type StatusDisplay struct {
	dismissRect ButtonRect
}

// ButtonRect is the hit area of a drawn button.
type ButtonRect struct {
	X, Y, W, H float64
}

func (r ButtonRect) contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Draw renders msg, one line per newline, in the error or success colour and
// returns the height used.
func (sd *StatusDisplay) Draw(dst *ebiten.Image, pal Palette, msg string, isErr bool, x, y float64) float64 {
	if msg == "" {
		sd.dismissRect = ButtonRect{}
		return 0
	}
	clr := pal.Success
	if isErr {
		clr = pal.Error
	}
	lines := strings.Split(msg, "\n")
	lineH := FontSizeSmall * 1.6
	widest := 0.0
	for i, line := range lines {
		DrawText(dst, line, x, y+float64(i)*lineH, FontSizeSmall, clr)
		if w, _ := MeasureText(line, FontSizeSmall); w > widest {
			widest = w
		}
	}

	sd.dismissRect = ButtonRect{X: x + widest + 12, Y: y - 2, W: FontSizeSmall + 6, H: FontSizeSmall + 6}
	DrawTextCentered(dst, "×", sd.dismissRect.X+sd.dismissRect.W/2, sd.dismissRect.Y+sd.dismissRect.H/2, FontSizeBody, pal.TextMuted)

	return float64(len(lines)) * lineH
}

// HandleClick reports whether the dismiss button was clicked.
func (sd *StatusDisplay) HandleClick(p *Pointer) bool {
	return p.Clicked() && sd.dismissRect.contains(p.X, p.Y)
}
