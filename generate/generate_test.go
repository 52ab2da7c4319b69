package generate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aeojs/aeo"
	"github.com/aeojs/aeo/generate"
	"github.com/aeojs/aeo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func testConfig() *aeo.ResolvedConfig {
	return aeo.ResolveConfig(&aeo.Config{
		Title:       "Acme Docs",
		Description: "Everything about Acme",
		URL:         "https://acme.dev",
	}, aeo.FrameworkInfo{})
}

func testPages() []*aeo.Page {
	return []*aeo.Page{
		{Pathname: "/", Title: "Home", Description: "Welcome", Content: "## Intro\n\nHello world."},
		{Pathname: "/about", Title: "About", Content: "## Team\n\nWe build rockets."},
		{Pathname: "/contact", Title: "Contact"},
	}
}

// generateOne runs g and returns the content of its single artifact.
func generateOne(t *testing.T, g aeo.ArtifactGenerator, cfg *aeo.ResolvedConfig, pages []*aeo.Page) string {
	t.Helper()
	artifacts, err := g.Generate(cfg, pages)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, g.Name(), artifacts[0].Path)
	return string(artifacts[0].Content)
}

func TestAll(t *testing.T) {
	t.Parallel()

	t.Run("returns every generator by default", func(t *testing.T) {
		t.Parallel()

		gens := generate.All(testConfig(), nil)

		var names []string
		for _, g := range gens {
			names = append(names, g.Name())
		}
		assert.Equal(t, []string{
			"robots.txt", "llms.txt", "llms-full.txt", "markdown",
			"docs.json", "sitemap.xml", "ai-index.json",
		}, names)
	})

	t.Run("honors disabled generators", func(t *testing.T) {
		t.Parallel()

		cfg := aeo.ResolveConfig(&aeo.Config{
			Generators: aeo.GeneratorsConfig{
				RobotsTxt:   aeo.Bool(false),
				RawMarkdown: aeo.Bool(false),
				AIIndex:     aeo.Bool(false),
			},
		}, aeo.FrameworkInfo{})

		gens := generate.All(cfg, nil)

		var names []string
		for _, g := range gens {
			names = append(names, g.Name())
		}
		assert.Equal(t, []string{"llms.txt", "llms-full.txt", "docs.json", "sitemap.xml"}, names)
	})
}

func TestWrite(t *testing.T) {
	t.Parallel()

	fixed := func(name string, paths ...string) *mock.ArtifactGenerator {
		return &mock.ArtifactGenerator{
			NameFn: func() string { return name },
			GenerateFn: func(*aeo.ResolvedConfig, []*aeo.Page) ([]*aeo.Artifact, error) {
				var out []*aeo.Artifact
				for _, p := range paths {
					out = append(out, &aeo.Artifact{Path: p, Content: []byte(p)})
				}
				return out, nil
			},
		}
	}

	// recorder stores saved paths and the final store action.
	type recorder struct {
		saved []string
		ended string
	}
	newStore := func(rec *recorder, saveErr error) *mock.ArtifactStore {
		return &mock.ArtifactStore{
			SaveFn: func(_ context.Context, a *aeo.Artifact) error {
				if saveErr != nil {
					return saveErr
				}
				rec.saved = append(rec.saved, a.Path)
				return nil
			},
			CommitFn: func() error { rec.ended = "commit"; return nil },
			AbortFn:  func() error { rec.ended = "abort"; return nil },
		}
	}

	t.Run("saves every artifact then commits", func(t *testing.T) {
		t.Parallel()

		var rec recorder
		gens := []aeo.ArtifactGenerator{fixed("robots", "robots.txt"), fixed("markdown", "index.md", "about.md")}

		written, err := generate.Write(context.Background(), newStore(&rec, nil), testConfig(), testPages(), gens)

		require.NoError(t, err)
		assert.Len(t, written, 3)
		assert.Equal(t, []string{"robots.txt", "index.md", "about.md"}, rec.saved)
		assert.Equal(t, "commit", rec.ended)
	})

	t.Run("aborts when a generator fails", func(t *testing.T) {
		t.Parallel()

		var rec recorder
		broken := &mock.ArtifactGenerator{
			NameFn: func() string { return "sitemap.xml" },
			GenerateFn: func(*aeo.ResolvedConfig, []*aeo.Page) ([]*aeo.Artifact, error) {
				return nil, aeo.Errorf(aeo.EINVALID, "bad site url")
			},
		}

		_, err := generate.Write(context.Background(), newStore(&rec, nil), testConfig(), testPages(),
			[]aeo.ArtifactGenerator{fixed("robots", "robots.txt"), broken})

		require.Error(t, err)
		assert.Equal(t, aeo.EINVALID, aeo.ErrorCode(err))
		assert.Contains(t, err.Error(), "generating sitemap.xml")
		assert.Equal(t, "abort", rec.ended)
	})

	t.Run("aborts when the store rejects an artifact", func(t *testing.T) {
		t.Parallel()

		var rec recorder
		saveErr := errors.New("disk full")

		_, err := generate.Write(context.Background(), newStore(&rec, saveErr), testConfig(), testPages(),
			[]aeo.ArtifactGenerator{fixed("robots", "robots.txt")})

		require.ErrorIs(t, err, saveErr)
		assert.Equal(t, "abort", rec.ended)
	})
}
