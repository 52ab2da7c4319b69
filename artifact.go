package aeo

import (
	"context"
	"path"
	"strings"
)

// Artifact is a generated output file.
type Artifact struct {
	// Path is slash-separated and relative to the output directory.
	Path    string
	Content []byte
}

// Validate returns an error if the artifact contains invalid fields.
func (a *Artifact) Validate() error {
	if a.Path == "" {
		return Errorf(EINVALID, "artifact path required")
	}
	if path.IsAbs(a.Path) || strings.HasPrefix(path.Clean(a.Path), "..") {
		return Errorf(EINVALID, "artifact path must stay inside the output directory: %q", a.Path)
	}
	return nil
}

// TokenCounter reports how many model tokens text costs.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

// ArtifactGenerator renders artifacts from the merged pages of a site.
type ArtifactGenerator interface {
	Generate(cfg *ResolvedConfig, pages []*Page) ([]*Artifact, error)

	// Name identifies the generator in logs (e.g., "robots.txt").
	Name() string
}

// ArtifactStore persists artifacts with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type ArtifactStore interface {
	Save(ctx context.Context, artifact *Artifact) error
	Commit() error
	Abort() error
}
