package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/shutterfolio/internal/carousel"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// MarqueeOwner is implemented by screens that host a marquee.
type MarqueeOwner interface {
	Marquee() *carousel.Marquee
}

// DebugLines collects what the overlay shows for the current screen.
func DebugLines(s Screen, frameSubs int) []string {
	lines := []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("frame callbacks: %d", frameSubs),
	}
	if s == nil {
		return lines
	}
	lines = append(lines, "screen: "+s.Name())
	if mo, ok := s.(MarqueeOwner); ok {
		m := mo.Marquee()
		lines = append(lines,
			fmt.Sprintf("marquee: %s  offset %.1f", m.State(), m.Offset()),
			fmt.Sprintf("dragging %v  hovered %d  active %d", m.Dragging(), m.HoveredItem(), m.ActiveIndex()),
		)
	}
	return lines
}

// DrawDebugOverlay draws the debug overlay if visible.
func DrawDebugOverlay(screen *ebiten.Image, pal Palette, lines []string) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
	)

	panelH := float64(len(lines)+1)*lineH + padY*2
	panelW := 380.0
	px := ScreenWidth - panelW - marginR
	py := float64(NavBarHeight + 12)

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), pal.Overlay, false)

	x := px + padX
	y := py + padY
	DrawText(screen, "Debug (F12 to close)", x, y, FontSizeSmall, pal.Primary)
	y += lineH
	for _, line := range lines {
		DrawText(screen, line, x, y, FontSizeSmall, pal.Text)
		y += lineH
	}
}
