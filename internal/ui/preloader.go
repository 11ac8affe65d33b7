package ui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/depeter/shutterfolio/internal/content"
	"github.com/depeter/shutterfolio/internal/motion"
)

// PreloaderMinDuration is the shortest time the counter takes to reach 100.
const PreloaderMinDuration = 2200 * time.Millisecond

const preloaderFadeOut = 350 * time.Millisecond

// PreloaderScreen counts up while content loads, then hands over to the page
// built by NewHome.
type PreloaderScreen struct {
	theme   *Theme
	images  *Images
	source  content.Source
	logger  *zap.Logger
	NewHome func(*content.Catalog) Screen

	progress *motion.Progress
	cancel   context.CancelFunc
	doneAt   time.Time

	mu      sync.Mutex
	catalog *content.Catalog
}

func NewPreloaderScreen(theme *Theme, images *Images, src content.Source, logger *zap.Logger) *PreloaderScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreloaderScreen{
		theme:    theme,
		images:   images,
		source:   src,
		logger:   logger,
		progress: motion.NewProgress(PreloaderMinDuration),
	}
}

func (ps *PreloaderScreen) Name() string { return "Preloader" }

func (ps *PreloaderScreen) OnEnter() {
	if ps.cancel != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	ps.cancel = cancel
	start := time.Now()
	content.LoadAsync(ctx, ps.source, ps.logger, func(c *content.Catalog) {
		ps.logger.Debug("content loaded",
			zap.Int("projects", len(c.Projects)),
			zap.Int("services", len(c.Services)),
			zap.Duration("took", time.Since(start)))
		ps.mu.Lock()
		ps.catalog = c
		ps.mu.Unlock()
	})
}

func (ps *PreloaderScreen) OnExit() {
	if ps.cancel != nil {
		ps.cancel()
	}
}

func (ps *PreloaderScreen) loaded() *content.Catalog {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.catalog
}

func (ps *PreloaderScreen) Update() (*ScreenTransition, error) {
	now := time.Now()
	cat := ps.loaded()
	if cat != nil && !ps.doneAt.IsZero() && now.Sub(ps.doneAt) >= preloaderFadeOut {
		if ps.NewHome == nil {
			return nil, fmt.Errorf("preloader has no home screen")
		}
		return &ScreenTransition{Type: TransitionReplace, Screen: ps.NewHome(cat)}, nil
	}
	if cat != nil && ps.images != nil {
		// Warm the first marquee photos so the page opens with pictures.
		items := cat.MarqueeItems()
		for i := 0; i < len(items) && i < 6; i++ {
			ps.images.Get(items[i].Image)
		}
		ps.progress.Complete()
	}
	if ps.doneAt.IsZero() && ps.progress.Done(now) {
		ps.doneAt = now
	}
	return nil, nil
}

func (ps *PreloaderScreen) Draw(dst *ebiten.Image) {
	now := time.Now()
	pal := ps.theme.Palette()
	v := ps.progress.Value(now)

	alpha := 1.0
	if !ps.doneAt.IsZero() {
		alpha = 1 - motion.EaseOutCubic(float64(now.Sub(ps.doneAt))/float64(preloaderFadeOut))
	}

	cx, cy := ScreenWidth/2, ScreenHeight/2
	drawApertureIcon(dst, float32(cx), float32(cy-90), 28, withAlpha(pal.Primary, alpha))
	DrawTextCentered(dst, fmt.Sprintf("%d", v), cx, cy, FontSizeDisplay, withAlpha(pal.Text, alpha))

	barW := ScreenWidth * 0.25
	bar := motion.Rect{X: cx - barW/2, Y: cy + 60, W: barW, H: 2}
	fillRect(dst, bar, withAlpha(pal.SurfaceHover, alpha))
	bar.W = barW * float64(v) / 100
	fillRect(dst, bar, withAlpha(pal.Primary, alpha))

	DrawTextCentered(dst, "Shutterfolio", cx, cy+100, FontSizeSmall, withAlpha(pal.TextMuted, alpha))
}
