package fs

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aeojs/aeo"
	"golang.org/x/sync/errgroup"
)

var _ aeo.PageSource = (*BuildScanner)(nil)

// DefaultConcurrency is the number of HTML files extracted in parallel.
const DefaultConcurrency = 8

// skippedDirs are build output directories holding static assets only.
var skippedDirs = map[string]bool{
	"assets": true,
	"media":  true,
}

// skippedFiles are framework fallback and error pages.
var skippedFiles = map[string]bool{
	"200.html": true,
	"404.html": true,
	"500.html": true,
}

// BuildScanner discovers pages from pre-rendered HTML in a build output
// directory. Each HTML file becomes a page with extracted Markdown content.
type BuildScanner struct {
	Dir string

	// BasePath is prepended to every pathname (e.g., "/docs").
	BasePath string

	Extractor aeo.Extractor

	// Meta reads title and description from raw HTML.
	Meta func(html string) aeo.PageMeta

	Concurrency int
}

func (s *BuildScanner) Name() string { return "build" }

// Pages extracts every HTML page below Dir. A missing directory yields no
// pages. Pages are sorted by pathname.
func (s *BuildScanner) Pages(ctx context.Context) ([]*aeo.Page, error) {
	files, err := s.htmlFiles()
	if err != nil || len(files) == 0 {
		return nil, err
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	pages := make([]*aeo.Page, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, rel := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			page, err := s.readPage(rel)
			if err != nil {
				return err
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(pages, func(i, j int) bool {
		return pages[i].Pathname < pages[j].Pathname
	})
	return pages, nil
}

// htmlFiles returns slash-separated paths of candidate HTML files relative
// to Dir.
func (s *BuildScanner) htmlFiles() ([]string, error) {
	if _, err := os.Stat(s.Dir); os.IsNotExist(err) {
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(s.Dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p != s.Dir && (hiddenName(name) || skippedDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".html") || skippedFiles[name] {
			return nil
		}
		rel, err := filepath.Rel(s.Dir, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	return files, err
}

func (s *BuildScanner) readPage(rel string) (*aeo.Page, error) {
	full := filepath.Join(s.Dir, filepath.FromSlash(rel))
	info, err := os.Stat(full)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, err
	}
	html := string(data)

	page := &aeo.Page{
		Pathname:     BuildPathname(s.BasePath, rel),
		LastModified: info.ModTime(),
	}
	if s.Meta != nil {
		meta := s.Meta(html)
		page.Title = meta.Title
		page.Description = meta.Description
	}
	if s.Extractor != nil {
		page.Content = s.Extractor.Extract(html)
	}
	return page, nil
}

// BuildPathname maps an HTML file path relative to the build directory to
// a page pathname.
// Example: index.html → /, docs/index.html → /docs, about.html → /about
func BuildPathname(basePath, rel string) string {
	dir, file := path.Split(rel)
	if file == "index.html" {
		return joinPathname(basePath, dir)
	}
	return joinPathname(basePath, dir, strings.TrimSuffix(file, ".html"))
}

// joinPathname joins route segments into a rooted pathname without a
// trailing slash.
func joinPathname(segments ...string) string {
	return path.Join(append([]string{"/"}, segments...)...)
}

func hiddenName(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
