package slog

import (
	"log/slog"
	"time"

	"github.com/aeojs/aeo"
)

// Ensure LoggingGenerator implements aeo.ArtifactGenerator.
var _ aeo.ArtifactGenerator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps an ArtifactGenerator with logging.
type LoggingGenerator struct {
	next   aeo.ArtifactGenerator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next aeo.ArtifactGenerator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs artifact counts and
// sizes.
func (g *LoggingGenerator) Generate(cfg *aeo.ResolvedConfig, pages []*aeo.Page) (artifacts []*aeo.Artifact, err error) {
	defer func(begin time.Time) {
		size := 0
		for _, a := range artifacts {
			size += len(a.Content)
		}
		g.logger.Info("generate",
			"generator", g.next.Name(),
			"files", len(artifacts),
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(cfg, pages)
}

// Name delegates to the wrapped generator.
func (g *LoggingGenerator) Name() string {
	return g.next.Name()
}
