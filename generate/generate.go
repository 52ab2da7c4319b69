// Package generate renders AEO artifacts from the merged pages of a site:
// robots.txt, llms.txt, llms-full.txt, sitemap.xml, docs.json,
// ai-index.json and per-page Markdown files.
package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aeojs/aeo"
)

// Artifact file names.
const (
	RobotsFile   = "robots.txt"
	LLMsFile     = "llms.txt"
	LLMsFullFile = "llms-full.txt"
	SitemapFile  = "sitemap.xml"
	ManifestFile = "docs.json"
	AIIndexFile  = "ai-index.json"
)

// SchemaVersion is the version stamped into JSON artifacts.
const SchemaVersion = "1.0"

// Clock returns the current time. Generators stamp artifacts with it.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}

// All returns the generators enabled in cfg, in output order.
func All(cfg *aeo.ResolvedConfig, clock Clock) []aeo.ArtifactGenerator {
	var gens []aeo.ArtifactGenerator
	if cfg.Generators.RobotsTxt {
		gens = append(gens, Robots{})
	}
	if cfg.Generators.LLMsTxt {
		gens = append(gens, LLMs{})
	}
	if cfg.Generators.LLMsFullTxt {
		gens = append(gens, LLMsFull{})
	}
	if cfg.Generators.RawMarkdown {
		gens = append(gens, Markdown{})
	}
	if cfg.Generators.Manifest {
		gens = append(gens, Manifest{Clock: clock})
	}
	if cfg.Generators.Sitemap {
		gens = append(gens, Sitemap{Clock: clock})
	}
	if cfg.Generators.AIIndex {
		gens = append(gens, AIIndex{Clock: clock})
	}
	return gens
}

// Write runs gens over pages and stages their artifacts in store. The store
// is committed when every generator and save succeeds and aborted otherwise,
// so a failed run leaves the previous output in place.
func Write(ctx context.Context, store aeo.ArtifactStore, cfg *aeo.ResolvedConfig, pages []*aeo.Page, gens []aeo.ArtifactGenerator) ([]*aeo.Artifact, error) {
	var written []*aeo.Artifact
	for _, gen := range gens {
		artifacts, err := gen.Generate(cfg, pages)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("generating %s: %w", gen.Name(), err), store.Abort())
		}
		for _, a := range artifacts {
			if err := store.Save(ctx, a); err != nil {
				return nil, errors.Join(fmt.Errorf("saving %s: %w", a.Path, err), store.Abort())
			}
		}
		written = append(written, artifacts...)
	}
	if err := store.Commit(); err != nil {
		return nil, fmt.Errorf("committing artifacts: %w", err)
	}
	return written, nil
}

// siteInfo is the site block shared by JSON artifacts.
type siteInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

func newSiteInfo(cfg *aeo.ResolvedConfig) siteInfo {
	return siteInfo{Title: cfg.Title, Description: cfg.Description, URL: cfg.URL}
}

func jsonArtifact(path string, v any) ([]*aeo.Artifact, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []*aeo.Artifact{{Path: path, Content: data}}, nil
}

func textArtifact(path, content string) []*aeo.Artifact {
	return []*aeo.Artifact{{Path: path, Content: []byte(content)}}
}

// pageTitle returns the page title, falling back to its pathname.
func pageTitle(page *aeo.Page) string {
	if page.Title != "" {
		return page.Title
	}
	return page.Pathname
}
