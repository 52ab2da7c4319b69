package mock

import (
	"context"

	"github.com/aeojs/aeo"
)

// Compile-time interface verification.
var (
	_ aeo.ArtifactGenerator = (*ArtifactGenerator)(nil)
	_ aeo.ArtifactStore     = (*ArtifactStore)(nil)
)

// ArtifactGenerator is a mock implementation of aeo.ArtifactGenerator.
type ArtifactGenerator struct {
	GenerateFn func(cfg *aeo.ResolvedConfig, pages []*aeo.Page) ([]*aeo.Artifact, error)
	NameFn     func() string
}

func (g *ArtifactGenerator) Generate(cfg *aeo.ResolvedConfig, pages []*aeo.Page) ([]*aeo.Artifact, error) {
	return g.GenerateFn(cfg, pages)
}

func (g *ArtifactGenerator) Name() string {
	return g.NameFn()
}

// ArtifactStore is a mock implementation of aeo.ArtifactStore.
type ArtifactStore struct {
	SaveFn   func(ctx context.Context, artifact *aeo.Artifact) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ArtifactStore) Save(ctx context.Context, artifact *aeo.Artifact) error {
	return s.SaveFn(ctx, artifact)
}

func (s *ArtifactStore) Commit() error {
	return s.CommitFn()
}

func (s *ArtifactStore) Abort() error {
	return s.AbortFn()
}
