// Package content provides the page's catalog: projects, services and the
// about section. It fetches from a headless CMS when one is configured and
// falls back to a bundled dataset otherwise, so the page is never empty.
package content

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNotConfigured is returned by constructors when the CMS settings are
// incomplete.
var ErrNotConfigured = errors.New("cms not configured")

// Source fetches a catalog from an external content system.
type Source interface {
	Fetch(ctx context.Context) (*Catalog, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (*Catalog, error)

func (f SourceFunc) Fetch(ctx context.Context) (*Catalog, error) { return f(ctx) }

// Load fetches from src and substitutes bundled content for anything that is
// missing. A nil src means no CMS is configured. Failures are logged as
// warnings and never returned: the result is always a usable catalog.
func Load(ctx context.Context, src Source, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	if src == nil {
		logger.Info("no cms configured, using bundled content")
		return Fallback()
	}

	fetched, err := safeFetch(ctx, src)
	if err != nil {
		logger.Warn("cms fetch failed, using bundled content", zap.Error(err))
		return Fallback()
	}
	if fetched == nil {
		logger.Warn("cms returned no catalog, using bundled content")
		return Fallback()
	}
	return merge(fetched, logger)
}

// LoadAsync runs Load on a new goroutine and hands the result to done.
func LoadAsync(ctx context.Context, src Source, logger *zap.Logger, done func(*Catalog)) {
	go func() {
		done(Load(ctx, src, logger))
	}()
}

func safeFetch(ctx context.Context, src Source) (c *Catalog, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cms source panicked: %v", r)
		}
	}()
	return src.Fetch(ctx)
}

// merge fills each empty list of c from the bundled catalog.
func merge(c *Catalog, logger *zap.Logger) *Catalog {
	fb := Fallback()
	out := c.Clone()
	if len(out.Projects) == 0 {
		logger.Warn("cms has no projects, using bundled projects")
		out.Projects = fb.Projects
	}
	if len(out.Services) == 0 {
		logger.Warn("cms has no services, using bundled services")
		out.Services = fb.Services
	}
	if out.About.IsZero() {
		logger.Warn("cms has no about section, using bundled about")
		out.About = fb.About
	}
	return out
}
