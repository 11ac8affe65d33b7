package app

import (
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/depeter/shutterfolio/internal/config"
	"github.com/depeter/shutterfolio/internal/motion"
	"github.com/depeter/shutterfolio/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Theme   *ui.Theme
	Frames  *motion.FrameLoop
	Screens *ui.ScreenManager
	Logger  *zap.Logger

	Width, Height int

	// cfg is swapped by the config watcher goroutine.
	cfg atomic.Pointer[config.Config]
}

// NewGame creates the Game with all dependencies.
func NewGame(cfg *config.Config, theme *ui.Theme, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		Theme:   theme,
		Frames:  motion.NewFrameLoop(),
		Screens: ui.NewScreenManager(),
		Logger:  logger,
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
	}
	g.cfg.Store(cfg)
	return g
}

// Config returns the settings currently in effect.
func (g *Game) Config() *config.Config {
	return g.cfg.Load()
}

// ApplyConfig takes a reloaded config. Only settings that can change at
// runtime are applied; window size needs a restart.
func (g *Game) ApplyConfig(cfg *config.Config) {
	g.Theme.SetDark(cfg.UI.DarkTheme())
	g.cfg.Store(cfg)
	g.Logger.Debug("config applied", zap.String("theme", cfg.UI.Theme))
}

func (g *Game) Update() error {
	// One display refresh: advance everything subscribed to the frame loop.
	g.Frames.Tick(time.Now())

	kb := g.Config().Keybinds

	// Alt+Enter toggles fullscreen (works everywhere, even while typing)
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if (ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)) && keyJustPressed(kb.Quit) {
		g.Logger.Info("quit requested")
		return ebiten.Termination
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	if !g.Screens.CapturesKeyboard() && !ui.IsModifierPressed() {
		if keyJustPressed(kb.ToggleTheme) {
			g.Theme.Toggle()
		}
		if keyJustPressed(kb.Fullscreen) {
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		}
	}

	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	pal := g.Theme.Palette()
	screen.Fill(pal.Background)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen, pal, ui.DebugLines(g.Screens.Current(), g.Frames.Len()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}
