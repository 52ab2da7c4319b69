package mock

import (
	"context"

	"github.com/aeojs/aeo"
)

// Compile-time interface verification.
var (
	_ aeo.PageSource  = (*PageSource)(nil)
	_ aeo.SiteCrawler = (*SiteCrawler)(nil)
)

// PageSource is a mock implementation of aeo.PageSource.
type PageSource struct {
	PagesFn func(ctx context.Context) ([]*aeo.Page, error)
	NameFn  func() string
}

func (s *PageSource) Pages(ctx context.Context) ([]*aeo.Page, error) {
	return s.PagesFn(ctx)
}

func (s *PageSource) Name() string {
	return s.NameFn()
}

// SiteCrawler is a mock implementation of aeo.SiteCrawler.
type SiteCrawler struct {
	DiscoverFn func(ctx context.Context, siteURL string) ([]string, error)
	CrawlFn    func(ctx context.Context, siteURL string, progress aeo.FetchProgressFunc) ([]*aeo.Page, error)
}

func (c *SiteCrawler) Discover(ctx context.Context, siteURL string) ([]string, error) {
	return c.DiscoverFn(ctx, siteURL)
}

func (c *SiteCrawler) Crawl(ctx context.Context, siteURL string, progress aeo.FetchProgressFunc) ([]*aeo.Page, error) {
	return c.CrawlFn(ctx, siteURL, progress)
}
