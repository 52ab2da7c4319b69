package aeo

import (
	"context"
	"strings"
	"time"
)

// Page represents a single routable page of a site.
type Page struct {
	Pathname    string `json:"pathname" yaml:"pathname"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Content     string `json:"content,omitempty" yaml:"content,omitempty"` // Markdown

	// LastModified is the modification time of the page source, if known.
	LastModified time.Time `json:"-" yaml:"-"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.Pathname == "" {
		return Errorf(EINVALID, "page pathname required")
	}
	if !strings.HasPrefix(p.Pathname, "/") {
		return Errorf(EINVALID, "page pathname must start with \"/\": %q", p.Pathname)
	}
	return nil
}

// PageSource discovers pages of a site. Implementations scan build output,
// source routes, content directories, stored crawls or user configuration.
type PageSource interface {
	// Pages returns every page the source knows about.
	Pages(ctx context.Context) ([]*Page, error)

	// Name identifies the source in logs (e.g., "build", "routes").
	Name() string
}

// MergePages merges pages from several discovery passes into one list keyed
// by pathname. Passes are applied in order: a later page replaces an earlier
// one with the same pathname unless the later page has no content and the
// earlier one does. The result keeps first-seen pathname order.
//
// MergePages must only be called after every source has completed.
func MergePages(passes ...[]*Page) []*Page {
	index := make(map[string]int)
	var merged []*Page

	for _, pass := range passes {
		for _, page := range pass {
			if page == nil || page.Pathname == "" {
				continue
			}
			idx, ok := index[page.Pathname]
			if !ok {
				index[page.Pathname] = len(merged)
				merged = append(merged, page)
				continue
			}
			if page.Content == "" && merged[idx].Content != "" {
				continue
			}
			merged[idx] = page
		}
	}

	return merged
}

// ApplySiteDefaults fills gaps left by discovery: the root page takes the
// site title when it has none, and every page without a description takes
// the site description. Pages are copied, never modified in place.
func ApplySiteDefaults(pages []*Page, title, description string) []*Page {
	out := make([]*Page, 0, len(pages))
	for _, page := range pages {
		p := *page
		if p.Pathname == "/" && p.Title == "" {
			p.Title = title
		}
		if p.Description == "" {
			p.Description = description
		}
		out = append(out, &p)
	}
	return out
}

// PageURL joins a site URL and a page pathname. The root pathname maps to
// the bare site URL.
func PageURL(siteURL, pathname string) string {
	siteURL = strings.TrimSuffix(siteURL, "/")
	if pathname == "" || pathname == "/" {
		return siteURL
	}
	if !strings.HasPrefix(pathname, "/") {
		pathname = "/" + pathname
	}
	return siteURL + pathname
}

// FetchProgress reports progress while pages of a live site are fetched.
type FetchProgress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// FetchProgressFunc is called as pages are processed.
type FetchProgressFunc func(FetchProgress)

// SiteCrawler acquires the pages of a live site. Discover lists the URLs a
// crawl would visit; Crawl fetches and extracts them, reporting each URL
// through progress.
type SiteCrawler interface {
	Discover(ctx context.Context, siteURL string) ([]string, error)
	Crawl(ctx context.Context, siteURL string, progress FetchProgressFunc) ([]*Page, error)
}
