package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/depeter/shutterfolio/internal/config"
	"github.com/depeter/shutterfolio/internal/contact"
	"github.com/depeter/shutterfolio/internal/content"
	"github.com/depeter/shutterfolio/internal/jellyfin"
)

// buildSource picks the content source named by the config. A nil source
// with a nil error means bundled content only.
func buildSource(cfg *config.Config, logger *zap.Logger) (content.Source, error) {
	if offline {
		logger.Info("offline mode, using bundled content")
		return nil, nil
	}
	switch cfg.CMS.Provider {
	case config.ProviderNone:
		return nil, nil
	case config.ProviderSanity:
		c, err := content.NewSanityClient(content.SanityConfig{
			ProjectID:  cfg.CMS.ProjectID,
			Dataset:    cfg.CMS.Dataset,
			APIVersion: cfg.CMS.APIVersion,
			Token:      cfg.CMS.Token,
			UseCDN:     cfg.CMS.UseCDN,
			BaseURL:    cfg.CMS.URL,
		})
		if errors.Is(err, content.ErrNotConfigured) {
			logger.Warn("sanity provider selected but not configured, using bundled content")
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		logger.Info("content from cms", zap.String("dataset", cfg.CMS.Dataset))
		return c, nil
	case config.ProviderJellyfin:
		if cfg.Jellyfin.URL == "" {
			logger.Warn("jellyfin provider selected without a url, using bundled content")
			return nil, nil
		}
		client := jellyfin.NewClient(cfg.Jellyfin.URL)
		if cfg.Jellyfin.Token != "" {
			client.SetToken(cfg.Jellyfin.Token, cfg.Jellyfin.UserID)
		}
		logger.Info("content from jellyfin", zap.String("server", client.ServerURL()))
		return &content.JellyfinSource{Library: client, LibraryID: cfg.Jellyfin.LibraryID}, nil
	default:
		return nil, fmt.Errorf("unknown cms provider %q", cfg.CMS.Provider)
	}
}

// buildSubmitter posts to the configured endpoint, or simulates a send.
func buildSubmitter(cfg *config.Config) (contact.Submitter, error) {
	if cfg.Contact.Endpoint != "" {
		return contact.NewHTTPSubmitter(cfg.Contact.Endpoint), nil
	}
	d, err := cfg.Contact.Delay()
	if err != nil {
		return nil, err
	}
	return contact.Simulated{Delay: d}, nil
}
