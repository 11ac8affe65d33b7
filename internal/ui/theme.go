package ui

import (
	"image/color"
	"sync"
)

// Palette is the set of colours a view draws with.
type Palette struct {
	Background    color.RGBA
	Surface       color.RGBA
	SurfaceHover  color.RGBA
	Primary       color.RGBA
	PrimaryDark   color.RGBA
	Text          color.RGBA
	TextSecondary color.RGBA
	TextMuted     color.RGBA
	FocusBorder   color.RGBA
	Overlay       color.RGBA
	Error         color.RGBA
	Success       color.RGBA
}

// DarkPalette is the default gallery look: near-black with a warm accent.
var DarkPalette = Palette{
	Background:    color.RGBA{R: 0x0C, G: 0x0C, B: 0x0D, A: 0xFF},
	Surface:       color.RGBA{R: 0x18, G: 0x18, B: 0x1A, A: 0xFF},
	SurfaceHover:  color.RGBA{R: 0x24, G: 0x24, B: 0x27, A: 0xFF},
	Primary:       color.RGBA{R: 0xD4, G: 0xA5, B: 0x74, A: 0xFF},
	PrimaryDark:   color.RGBA{R: 0xA8, G: 0x7E, B: 0x52, A: 0xFF},
	Text:          color.RGBA{R: 0xF2, G: 0xEF, B: 0xEA, A: 0xFF},
	TextSecondary: color.RGBA{R: 0xA8, G: 0xA4, B: 0x9E, A: 0xFF},
	TextMuted:     color.RGBA{R: 0x6A, G: 0x67, B: 0x63, A: 0xFF},
	FocusBorder:   color.RGBA{R: 0xD4, G: 0xA5, B: 0x74, A: 0xFF},
	Overlay:       color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0},
	Error:         color.RGBA{R: 0xE0, G: 0x52, B: 0x4A, A: 0xFF},
	Success:       color.RGBA{R: 0x5C, G: 0xB8, B: 0x74, A: 0xFF},
}

var LightPalette = Palette{
	Background:    color.RGBA{R: 0xFA, G: 0xF8, B: 0xF5, A: 0xFF},
	Surface:       color.RGBA{R: 0xEF, G: 0xEC, B: 0xE7, A: 0xFF},
	SurfaceHover:  color.RGBA{R: 0xE4, G: 0xE0, B: 0xD9, A: 0xFF},
	Primary:       color.RGBA{R: 0x9C, G: 0x6B, B: 0x3C, A: 0xFF},
	PrimaryDark:   color.RGBA{R: 0x7A, G: 0x51, B: 0x2B, A: 0xFF},
	Text:          color.RGBA{R: 0x1A, G: 0x18, B: 0x16, A: 0xFF},
	TextSecondary: color.RGBA{R: 0x55, G: 0x51, B: 0x4C, A: 0xFF},
	TextMuted:     color.RGBA{R: 0x8E, G: 0x89, B: 0x82, A: 0xFF},
	FocusBorder:   color.RGBA{R: 0x9C, G: 0x6B, B: 0x3C, A: 0xFF},
	Overlay:       color.RGBA{R: 0xFA, G: 0xF8, B: 0xF5, A: 0xD8},
	Error:         color.RGBA{R: 0xC0, G: 0x39, B: 0x2B, A: 0xFF},
	Success:       color.RGBA{R: 0x2E, G: 0x8B, B: 0x57, A: 0xFF},
}

// Theme holds the current light/dark choice. It is safe for concurrent use;
// the config watcher flips it from its own goroutine.
type Theme struct {
	mu   sync.Mutex
	dark bool
	next int
	subs map[int]func(Palette)
}

func NewTheme(dark bool) *Theme {
	return &Theme{dark: dark, subs: make(map[int]func(Palette))}
}

func (t *Theme) Dark() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dark
}

// Palette returns the colours for the current mode.
func (t *Theme) Palette() Palette {
	if t.Dark() {
		return DarkPalette
	}
	return LightPalette
}

// Toggle flips between dark and light.
func (t *Theme) Toggle() {
	t.SetDark(!t.Dark())
}

// SetDark switches mode and notifies subscribers when it changed.
func (t *Theme) SetDark(dark bool) {
	t.mu.Lock()
	if t.dark == dark {
		t.mu.Unlock()
		return
	}
	t.dark = dark
	subs := make([]func(Palette), 0, len(t.subs))
	for _, fn := range t.subs {
		subs = append(subs, fn)
	}
	t.mu.Unlock()

	p := t.Palette()
	for _, fn := range subs {
		fn(p)
	}
}

// Subscribe registers fn to run after every mode change.
func (t *Theme) Subscribe(fn func(Palette)) (cancel func()) {
	t.mu.Lock()
	id := t.next
	t.next++
	t.subs[id] = fn
	t.mu.Unlock()
	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

// Layout constants
const (
	SectionPadding = 64
	SectionGap     = 120
	SectionTitleH  = 56

	NavBarHeight  = 72
	NavBarPadding = 24

	FontSizeDisplay = 72
	FontSizeTitle   = 40
	FontSizeHeading = 26
	FontSizeBody    = 18
	FontSizeSmall   = 14
	FontSizeCaption = 12

	ScrollAnimSpeed = 0.14

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 80

	MarqueeGap = 24
)

// Logical screen size. Set once at startup from the config.
var (
	ScreenWidth  = 1600.0
	ScreenHeight = 900.0
)

func SetScreenSize(w, h int) {
	if w > 0 {
		ScreenWidth = float64(w)
	}
	if h > 0 {
		ScreenHeight = float64(h)
	}
}

// withAlpha returns c with its alpha scaled by a in 0..1.
func withAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
