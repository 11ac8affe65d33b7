package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/shutterfolio/internal/content"
	"github.com/depeter/shutterfolio/internal/motion"
)

const modalDuration = 450 * time.Millisecond

// ProjectModal shows one project large. It grows out of the tile that was
// clicked and shrinks back into it on close.
type ProjectModal struct {
	theme  *Theme
	images *Images

	flip    *motion.Flip
	project content.Project
	list    []content.Project
	index   int
	panel   motion.Rect
	closeR  motion.Rect
}

func NewProjectModal(theme *Theme, images *Images) *ProjectModal {
	return &ProjectModal{theme: theme, images: images}
}

// Visible reports whether the dialog or its closing animation is on screen.
func (pm *ProjectModal) Visible() bool {
	return pm.flip != nil && !pm.flip.Closed()
}

// Open shows p, growing from the from rect. list is the sequence the arrow
// keys step through.
func (pm *ProjectModal) Open(p content.Project, list []content.Project, from motion.Rect, now time.Time) {
	pm.project = p
	pm.list = list
	pm.index = 0
	for i, lp := range list {
		if lp.ID == p.ID {
			pm.index = i
		}
	}
	pm.flip = motion.NewFlip(from, pm.imageRect(p), modalDuration)
	pm.flip.Open(now)
}

func (pm *ProjectModal) Close(now time.Time) {
	if pm.flip != nil {
		pm.flip.Close(now)
	}
}

// imageRect is where the photo rests while open: left part of the panel.
func (pm *ProjectModal) imageRect(p content.Project) motion.Rect {
	pm.panel = motion.CenteredRect(ScreenWidth, ScreenHeight, ScreenWidth*0.86, ScreenHeight*0.82)
	aspect := pm.images.Aspect(p.Image, gridTileAspect)
	r := motion.FitRect(pm.panel.W*0.6, pm.panel.H, pm.panel.W*0.6, pm.panel.H, aspect)
	r.X += pm.panel.X
	r.Y += pm.panel.Y
	pm.closeR = motion.Rect{X: pm.panel.X + pm.panel.W - 48, Y: pm.panel.Y + 8, W: 40, H: 40}
	return r
}

func (pm *ProjectModal) step(delta int) {
	if len(pm.list) < 2 || pm.flip == nil || pm.flip.Phase() != motion.FlipOpen {
		return
	}
	pm.index = ((pm.index+delta)%len(pm.list) + len(pm.list)) % len(pm.list)
	pm.project = pm.list[pm.index]
	to := pm.imageRect(pm.project)
	pm.flip.To = to
	pm.flip.From = to
}

// Update handles input while visible and reports whether it consumed it.
func (pm *ProjectModal) Update(p *Pointer, now time.Time) bool {
	if !pm.Visible() {
		return false
	}
	if pm.flip.Phase() == motion.FlipClosing {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		pm.Close(now)
		return true
	}
	if inputRepeating(ebiten.KeyArrowRight) {
		pm.step(1)
	}
	if inputRepeating(ebiten.KeyArrowLeft) {
		pm.step(-1)
	}
	if p.Clicked() && (!pm.panel.Contains(p.X, p.Y) || pm.closeR.Contains(p.X, p.Y)) {
		pm.Close(now)
	}
	return true
}

func (pm *ProjectModal) Draw(dst *ebiten.Image, now time.Time) {
	if pm.flip == nil {
		return
	}
	pal := pm.theme.Palette()
	r, eased := pm.flip.Frame(now)
	if pm.flip.Closed() {
		pm.flip = nil
		return
	}

	fillRect(dst, motion.Rect{W: ScreenWidth, H: ScreenHeight}, withAlpha(pal.Overlay, eased))
	fillRect(dst, pm.panel, withAlpha(pal.Surface, eased))

	if img := pm.images.Get(pm.project.Image); img != nil {
		drawCover(dst, img, r, false, 1)
	} else {
		drawPlaceholder(dst, r, pal, pm.project.Title)
	}

	if eased < 0.6 {
		return
	}
	a := (eased - 0.6) / 0.4
	x := pm.panel.X + pm.panel.W*0.6 + 40
	w := pm.panel.W*0.4 - 80
	y := pm.panel.Y + 64

	DrawText(dst, pm.project.Category, x, y, FontSizeSmall, withAlpha(pal.Primary, a))
	y += 28
	for _, line := range wrapLines(pm.project.Title, w, FontSizeTitle) {
		DrawHeading(dst, line, x, y, FontSizeTitle, withAlpha(pal.Text, a))
		y += FontSizeTitle * 1.25
	}
	y += 12

	var meta string
	switch {
	case pm.project.Year > 0 && pm.project.Location != "":
		meta = fmt.Sprintf("%s · %d", pm.project.Location, pm.project.Year)
	case pm.project.Year > 0:
		meta = fmt.Sprint(pm.project.Year)
	default:
		meta = pm.project.Location
	}
	if meta != "" {
		DrawText(dst, meta, x, y, FontSizeBody, withAlpha(pal.TextSecondary, a))
		y += FontSizeBody * 2.5
	}
	if pm.project.Description != "" {
		DrawTextWrapped(dst, pm.project.Description, x, y, w, FontSizeBody, withAlpha(pal.TextSecondary, a))
	}

	if len(pm.list) > 1 {
		counter := fmt.Sprintf("%02d / %02d   ← →", pm.index+1, len(pm.list))
		DrawText(dst, counter, x, pm.panel.Y+pm.panel.H-48, FontSizeSmall, withAlpha(pal.TextMuted, a))
	}
	DrawTextCentered(dst, "×", pm.closeR.X+pm.closeR.W/2, pm.closeR.Y+pm.closeR.H/2, FontSizeTitle, withAlpha(pal.Text, a))
}
