package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/shutterfolio/internal/content"
	"github.com/depeter/shutterfolio/internal/motion"
)

const (
	gridGap         = 24.0
	gridTileAspect  = 4.0 / 5.0
	gridCaptionH    = 56.0
	gridFadeIn      = 500 * time.Millisecond
	gridFadeStagger = 60 * time.Millisecond
)

// PortfolioGrid lays out the filtered projects as photo tiles.
type PortfolioGrid struct {
	theme  *Theme
	images *Images

	Projects []content.Project
	// OnSelect receives the project and the on-screen rect of its tile.
	OnSelect func(p content.Project, from motion.Rect)

	tiles   []motion.Rect
	originX float64
	originY float64
	hovered int
	shownAt time.Time
}

func NewPortfolioGrid(theme *Theme, images *Images) *PortfolioGrid {
	return &PortfolioGrid{theme: theme, images: images, hovered: -1}
}

// SetProjects swaps the visible projects and restarts the fade-in.
func (pg *PortfolioGrid) SetProjects(projects []content.Project, now time.Time) {
	pg.Projects = projects
	pg.hovered = -1
	pg.shownAt = now
}

// Columns is responsive to the window width.
func (pg *PortfolioGrid) Columns() int {
	switch {
	case ScreenWidth >= 1400:
		return 3
	case ScreenWidth >= 800:
		return 2
	default:
		return 1
	}
}

// Layout positions the tiles from (x, y) across width w and returns the
// grid height.
func (pg *PortfolioGrid) Layout(x, y, w float64) float64 {
	pg.originX, pg.originY = x, y
	cols := pg.Columns()
	tileW := (w - gridGap*float64(cols-1)) / float64(cols)
	tileH := tileW / gridTileAspect
	if cap(pg.tiles) < len(pg.Projects) {
		pg.tiles = make([]motion.Rect, len(pg.Projects))
	}
	pg.tiles = pg.tiles[:len(pg.Projects)]
	for i := range pg.Projects {
		row, col := i/cols, i%cols
		pg.tiles[i] = motion.Rect{
			X: x + float64(col)*(tileW+gridGap),
			Y: y + float64(row)*(tileH+gridCaptionH+gridGap),
			W: tileW,
			H: tileH,
		}
	}
	rows := (len(pg.Projects) + cols - 1) / cols
	if rows == 0 {
		return FontSizeBody * 3
	}
	return float64(rows)*(tileH+gridCaptionH+gridGap) - gridGap
}

// Update handles hover and clicks and reports whether a tile was clicked.
func (pg *PortfolioGrid) Update(p *Pointer) bool {
	pg.hovered = -1
	for i, r := range pg.tiles {
		if !r.Contains(p.X, p.Y) {
			continue
		}
		if p.Hovering() {
			pg.hovered = i
		}
		if p.Clicked() && pg.OnSelect != nil {
			pg.OnSelect(pg.Projects[i], r)
			return true
		}
	}
	return false
}

func (pg *PortfolioGrid) Draw(dst *ebiten.Image, now time.Time) {
	pal := pg.theme.Palette()
	if len(pg.tiles) == 0 {
		DrawText(dst, "No projects in this category yet.", pg.originX, pg.originY, FontSizeBody, pal.TextMuted)
		return
	}
	for i, r := range pg.tiles {
		if r.Y > ScreenHeight || r.Y+r.H+gridCaptionH < 0 {
			continue
		}
		alpha := motion.EaseOutCubic(float64(now.Sub(pg.shownAt)-time.Duration(i)*gridFadeStagger) / float64(gridFadeIn))
		if alpha <= 0 {
			continue
		}
		proj := pg.Projects[i]
		hovered := i == pg.hovered

		if img := pg.images.Get(proj.Image); img != nil {
			drawCover(dst, img, r, false, alpha)
		} else {
			drawPlaceholder(dst, r, pal, proj.Title)
		}
		if hovered {
			fillRect(dst, r, withAlpha(pal.Background, 0.35))
			DrawTextCentered(dst, "View project", r.X+r.W/2, r.Y+r.H/2, FontSizeBody, pal.Text)
			strokeRect(dst, r, 2, pal.Primary)
		}

		titleColor := pal.TextSecondary
		if hovered {
			titleColor = pal.Text
		}
		DrawHeading(dst, truncateText(proj.Title, r.W, FontSizeBody), r.X, r.Y+r.H+10, FontSizeBody, withAlpha(titleColor, alpha))
		meta := proj.Category
		if proj.Year > 0 {
			meta = fmt.Sprintf("%s · %d", proj.Category, proj.Year)
		}
		DrawText(dst, meta, r.X, r.Y+r.H+34, FontSizeCaption, withAlpha(pal.Primary, alpha))
	}
}
