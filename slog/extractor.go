package slog

import (
	"log/slog"
	"time"

	"github.com/aeojs/aeo"
)

var (
	_ aeo.Extractor         = (*LoggingExtractor)(nil)
	_ aeo.DocumentExtractor = (*LoggingDocumentExtractor)(nil)
)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   aeo.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next aeo.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

func (e *LoggingExtractor) Extract(html string) (markdown string) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"html_bytes", len(html),
			"markdown_bytes", len(markdown),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(html)
}

// LoggingDocumentExtractor wraps a DocumentExtractor with debug logging.
type LoggingDocumentExtractor struct {
	next   aeo.DocumentExtractor
	logger *slog.Logger
}

// NewLoggingDocumentExtractor creates a new LoggingDocumentExtractor.
func NewLoggingDocumentExtractor(next aeo.DocumentExtractor, logger *slog.Logger) *LoggingDocumentExtractor {
	return &LoggingDocumentExtractor{next: next, logger: logger}
}

func (e *LoggingDocumentExtractor) ExtractDocument(html, pageURL string) (markdown string) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"url", pageURL,
			"html_bytes", len(html),
			"markdown_bytes", len(markdown),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.ExtractDocument(html, pageURL)
}
