package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aeojs/aeo"
	"github.com/aeojs/aeo/fs"
	"github.com/aeojs/aeo/generate"
	aeoregexp "github.com/aeojs/aeo/regexp"
	aeoslog "github.com/aeojs/aeo/slog"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	proj, err := loadProject(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aeo.ErrorMessage(err))
		return err
	}
	c.override(proj.Config)

	cfg, err := proj.resolve(deps.Root)
	if err != nil {
		return err
	}

	sources, err := c.sources(deps, cfg, proj.Info)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aeo.ErrorMessage(err))
		return err
	}

	// Sources run to completion before merging; config pages come last so
	// they override discovered pages.
	passes := make([][]*aeo.Page, 0, len(sources)+1)
	for _, src := range sources {
		pages, err := src.Pages(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error scanning %s: %v\n", src.Name(), err)
			return err
		}
		passes = append(passes, pages)
	}
	passes = append(passes, cfg.Pages)

	pages := aeo.ApplySiteDefaults(aeo.MergePages(passes...), cfg.Title, cfg.Description)

	var gens []aeo.ArtifactGenerator
	for _, gen := range generate.All(cfg, deps.Clock) {
		gens = append(gens, aeoslog.NewLoggingGenerator(gen, deps.Logger))
	}
	artifacts, err := generate.Write(deps.Ctx, fs.NewArtifactStore(cfg.OutDir), cfg, pages, gens)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	var fullText []byte
	for _, a := range artifacts {
		if a.Path == generate.LLMsFullFile {
			fullText = a.Content
		}
	}
	fmt.Fprintf(deps.Stdout, "Generated %d files from %d pages in %s\n", len(artifacts), len(pages), relPath(deps.Root, cfg.OutDir))

	if !c.NoWidget {
		n, err := fs.RewriteHTML(deps.Ctx, cfg.BuildDir, func(doc string) string {
			return generate.InjectWidget(generate.InjectDiscoveryTags(doc, cfg), cfg)
		})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error injecting widget: %v\n", err)
			return err
		}
		if n > 0 {
			fmt.Fprintf(deps.Stdout, "Updated %d HTML pages\n", n)
		}
	}

	if deps.TokenCounter != nil && fullText != nil {
		tokens, err := deps.TokenCounter.CountTokens(deps.Ctx, string(fullText))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error counting tokens: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s: %s, %s\n", generate.LLMsFullFile, formatBytes(len(fullText)), formatTokens(tokens))
	}

	return nil
}

// override applies command-line flags over file configuration.
func (c *GenerateCmd) override(cfg *aeo.Config) {
	if c.Out != "" {
		cfg.OutDir = c.Out
	}
	if c.URL != "" {
		cfg.URL = c.URL
	}
	if c.Title != "" {
		cfg.Title = c.Title
	}
	if c.Description != "" {
		cfg.Description = c.Description
	}
	if c.NoWidget {
		cfg.Widget.Enabled = aeo.Bool(false)
	}
}

// sources returns the page sources of the project in merge order.
func (c *GenerateCmd) sources(deps *Dependencies, cfg *aeo.ResolvedConfig, info aeo.FrameworkInfo) ([]aeo.PageSource, error) {
	extractor := aeoslog.NewLoggingExtractor(aeoregexp.NewExtractor(aeoregexp.WithTitleReserved()), deps.Logger)

	sources := []aeo.PageSource{
		&fs.PagesScanner{Dir: cfg.PagesDir},
	}
	if info.Framework == aeo.FrameworkAngular {
		sources = append(sources, &fs.AngularRouteScanner{Dir: filepath.Join(deps.Root, "src", "app")})
	}
	sources = append(sources,
		&fs.ContentScanner{Dir: cfg.ContentDir},
		&fs.BuildScanner{
			Dir:         cfg.BuildDir,
			Extractor:   extractor,
			Meta:        aeoregexp.ReadMeta,
			Concurrency: c.Concurrency,
		},
	)

	if c.Site != "" {
		sites, err := deps.Sites.FindSites(deps.Ctx, aeo.SiteFilter{URL: &c.Site})
		if err != nil {
			return nil, err
		}
		if len(sites) == 0 {
			return nil, aeo.Errorf(aeo.ENOTFOUND, "site %q has not been crawled. Run 'aeo crawl %s' first", c.Site, c.Site)
		}
		sources = append(sources, deps.Pages.Source(sites[0].ID))
	}

	for i, src := range sources {
		sources[i] = aeoslog.NewLoggingPageSource(src, deps.Logger)
	}
	return sources, nil
}

// relPath returns path relative to root when it lies below it.
func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
