package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/depeter/shutterfolio/internal/config"
	"github.com/depeter/shutterfolio/internal/content"
	"github.com/depeter/shutterfolio/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local content server",
	Long: `Serves the portfolio content over a Sanity-compatible query endpoint and
accepts contact form posts, so the app can run against a local backend:

  [cms]
  provider = "sanity"
  url = "http://127.0.0.1:3333"

  [contact]
  endpoint = "http://127.0.0.1:3333/api/contact"

The catalog served is whatever the configured source provides, with
bundled content filling the gaps.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := content.Fallback()
	// Serving from our own endpoint would loop.
	if cfg.CMS.Provider != config.ProviderSanity || cfg.CMS.URL == "" {
		src, err := buildSource(cfg, logger)
		if err != nil {
			return err
		}
		loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		catalog = content.Load(loadCtx, src, logger.Named("content"))
		cancel()
	}

	srv := server.New(catalog, cfg.CMS.Dataset, logger.Named("server"))
	logger.Info("serving content",
		zap.String("addr", addr),
		zap.Int("projects", len(catalog.Projects)))
	return server.ListenAndServe(ctx, addr, srv.Routes(), logger.Named("server"))
}
