// Package slog provides logging decorators for aeo services using log/slog.
package slog

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/aeojs/aeo"
)

// Ensure LoggingSitemapService implements aeo.SitemapService.
var _ aeo.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with logging. Each discovery
// logs the path prefix the crawl is scoped to and whether include or exclude
// patterns applied, so an empty result can be told apart from a filtered one.
type LoggingSitemapService struct {
	next   aeo.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next aeo.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs the outcome. Failures
// are logged at warn since the crawl falls back to link discovery.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, siteURL string, filter *aeo.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "sitemap discovery",
			"site", siteURL,
			"prefix", pathPrefix(siteURL),
			"filtered", filter != nil,
			"pages", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, siteURL, filter)
}

// pathPrefix returns the path sitemap entries must fall under, "/" for a
// site served from its host root.
func pathPrefix(siteURL string) string {
	u, err := url.Parse(siteURL)
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.Path
}
