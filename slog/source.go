package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/aeojs/aeo"
)

// Ensure LoggingPageSource implements aeo.PageSource.
var _ aeo.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with logging.
type LoggingPageSource struct {
	next   aeo.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next aeo.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// Pages delegates to the wrapped source and logs how many pages it found
// and how many of them carry content.
func (s *LoggingPageSource) Pages(ctx context.Context) (pages []*aeo.Page, err error) {
	defer func(begin time.Time) {
		withContent := 0
		for _, p := range pages {
			if p.Content != "" {
				withContent++
			}
		}
		s.logger.Info("page discovery",
			"source", s.next.Name(),
			"count", len(pages),
			"content", withContent,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Pages(ctx)
}

// Name delegates to the wrapped source.
func (s *LoggingPageSource) Name() string {
	return s.next.Name()
}
