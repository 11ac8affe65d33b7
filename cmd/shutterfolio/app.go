package main

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/depeter/shutterfolio/assets/icon"
	"github.com/depeter/shutterfolio/internal/app"
	"github.com/depeter/shutterfolio/internal/carousel"
	"github.com/depeter/shutterfolio/internal/config"
	"github.com/depeter/shutterfolio/internal/content"
	"github.com/depeter/shutterfolio/internal/ui"
)

func runApp() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := ui.InitFonts(); err != nil {
		return fmt.Errorf("init fonts: %w", err)
	}
	ui.SetScreenSize(cfg.UI.Width, cfg.UI.Height)

	textures, err := ui.NewTextureCache(imageCacheDir(), logger.Named("images"))
	if err != nil {
		return fmt.Errorf("init image cache: %w", err)
	}
	images := ui.NewImages(textures)

	src, err := buildSource(cfg, logger)
	if err != nil {
		return err
	}
	submitter, err := buildSubmitter(cfg)
	if err != nil {
		return err
	}

	theme := ui.NewTheme(cfg.UI.DarkTheme())
	game := app.NewGame(cfg, theme, logger)

	opts := carousel.Options{
		Speed:        cfg.Carousel.Speed,
		Damping:      cfg.Carousel.Damping,
		TapThreshold: cfg.Carousel.TapThreshold,
	}
	preloader := ui.NewPreloaderScreen(theme, images, src, logger.Named("content"))
	preloader.NewHome = func(cat *content.Catalog) ui.Screen {
		return ui.NewHomeScreen(theme, images, game.Frames, cat, submitter, opts, logger.Named("home"))
	}
	game.Screens.Push(preloader)

	// Theme edits in the config file apply live.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if path := watchPath(); path != "" {
		w, err := config.NewWatcher(path, logger.Named("config"))
		if err != nil {
			logger.Warn("config watcher unavailable", zap.Error(err))
		} else {
			w.OnChange(game.ApplyConfig)
			if err := w.Start(ctx); err != nil {
				logger.Warn("config watcher failed to start", zap.Error(err))
			} else {
				defer w.Stop()
			}
		}
	}

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("Shutterfolio")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	logger.Info("starting",
		zap.String("version", version),
		zap.Int("width", cfg.UI.Width),
		zap.Int("height", cfg.UI.Height),
		zap.String("theme", cfg.UI.Theme))
	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	return nil
}

// watchPath is the config file to watch, or "" when it cannot be resolved.
func watchPath() string {
	if configPath != "" {
		return configPath
	}
	p, err := config.ConfigPath()
	if err != nil {
		return ""
	}
	return p
}
