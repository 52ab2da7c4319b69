// Package crawl acquires pages from a live site: it discovers URLs from
// sitemaps or by following links, fetches them with rate limiting and
// retries, and extracts Markdown content.
package crawl

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"github.com/aeojs/aeo"
	"github.com/aeojs/aeo/bloom"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

var _ aeo.SiteCrawler = (*Crawler)(nil)

// DefaultConcurrency is the number of pages fetched in parallel.
const DefaultConcurrency = 5

// DefaultMaxPages caps how many pages a single crawl processes.
const DefaultMaxPages = 1000

// Crawler orchestrates crawling of a live site.
type Crawler struct {
	Sitemaps    aeo.SitemapService
	Fetcher     aeo.Fetcher
	Links       aeo.LinkExtractor
	Extractor   aeo.DocumentExtractor
	RateLimiter aeo.DomainLimiter
	Filter      *aeo.URLFilter
	Logger      *slog.Logger

	// Meta reads title and description from raw HTML. When nil, titles come
	// from the extracted Markdown.
	Meta func(html string) aeo.PageMeta

	Concurrency int
	MaxPages    int
	RetryDelays Backoff
}

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	page     *aeo.Page
	links    []aeo.DiscoveredLink
	err      error
}

// Crawl discovers and fetches every page of the site at siteURL. Sitemap
// URLs are preferred; without them the crawler follows links from siteURL,
// extracting pages as it goes.
func (c *Crawler) Crawl(ctx context.Context, siteURL string, progress aeo.FetchProgressFunc) ([]*aeo.Page, error) {
	urls, err := c.sitemapURLs(ctx, siteURL)
	if err != nil {
		return nil, err
	}
	if len(urls) > 0 {
		return c.FetchAll(ctx, urls, progress)
	}
	if c.Links == nil {
		return []*aeo.Page{}, nil
	}

	var pages []*aeo.Page
	completed := 0
	err = c.walkFrontier(ctx, siteURL, true, func(res *pageResult) {
		completed++
		if progress != nil {
			progress(aeo.FetchProgress{URL: res.url, Completed: completed, Error: res.err})
		}
		if res.err == nil {
			pages = append(pages, res.page)
		}
	})
	if err != nil {
		return nil, err
	}
	return dedupeContent(pages), ctx.Err()
}

// Discover returns page URLs of the site: sitemap entries when available,
// otherwise URLs reached by following links from siteURL.
func (c *Crawler) Discover(ctx context.Context, siteURL string) ([]string, error) {
	urls, err := c.sitemapURLs(ctx, siteURL)
	if err != nil {
		return nil, err
	}
	if len(urls) > 0 || c.Links == nil {
		return urls, nil
	}

	urls = []string{}
	err = c.walkFrontier(ctx, siteURL, false, func(res *pageResult) {
		if res.err == nil {
			urls = append(urls, res.url)
		}
	})
	if err != nil {
		return nil, err
	}
	return urls, ctx.Err()
}

// sitemapURLs returns sitemap URLs capped at MaxPages. Sitemap failures other
// than cancellation are logged and treated as an empty sitemap.
func (c *Crawler) sitemapURLs(ctx context.Context, siteURL string) ([]string, error) {
	if c.Sitemaps == nil {
		return nil, nil
	}
	urls, err := c.Sitemaps.DiscoverURLs(ctx, siteURL, c.Filter)
	if err != nil {
		if ctx.Err() != nil || aeo.ErrorCode(err) == aeo.EINVALID {
			return nil, err
		}
		c.logger().Warn("sitemap discovery failed, following links instead", "url", siteURL, "err", err)
		return nil, nil
	}
	if max := c.maxPages(); len(urls) > max {
		urls = urls[:max]
	}
	return urls, nil
}

// FetchAll fetches and extracts the given URLs concurrently. Pages are
// returned in input order; URLs that fail are reported through progress and
// left out. Pages whose content duplicates an earlier page are dropped.
func (c *Crawler) FetchAll(ctx context.Context, urls []string, progress aeo.FetchProgressFunc) ([]*aeo.Page, error) {
	resultCh := make(chan pageResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency())

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				res := pageResult{position: i, url: u}
				res.page, _, res.err = c.processURL(gctx, u, false, true)
				resultCh <- res
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]*aeo.Page, len(urls))
	completed := 0
	for res := range resultCh {
		completed++
		if progress != nil {
			progress(aeo.FetchProgress{URL: res.url, Completed: completed, Total: len(urls), Error: res.err})
		}
		if res.err == nil {
			results[res.position] = res.page
		}
	}

	pages := make([]*aeo.Page, 0, len(urls))
	for _, p := range results {
		if p != nil {
			pages = append(pages, p)
		}
	}
	return dedupeContent(pages), ctx.Err()
}

// processURL fetches one URL. With links set it returns the links found on
// the page; with extract set it returns the extracted page.
func (c *Crawler) processURL(ctx context.Context, rawURL string, links, extract bool) (*aeo.Page, []aeo.DiscoveredLink, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, nil, aeo.Errorf(aeo.EINVALID, "invalid URL %q", rawURL)
	}

	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, nil, err
		}
	}

	html, err := c.retryDelays().Fetch(ctx, rawURL, c.Fetcher.Fetch, c.logger())
	if err != nil {
		return nil, nil, err
	}

	var discovered []aeo.DiscoveredLink
	if links && c.Links != nil {
		// Link extraction failures only stop the walk from branching here.
		discovered, _ = c.Links.ExtractLinks(html, rawURL)
	}

	if !extract || c.Extractor == nil {
		return nil, discovered, nil
	}
	return c.buildPage(u, html), discovered, nil
}

func (c *Crawler) buildPage(u *url.URL, html string) *aeo.Page {
	content := c.Extractor.ExtractDocument(html, u.String())

	var meta aeo.PageMeta
	if c.Meta != nil {
		meta = c.Meta(html)
	}
	if meta.Title == "" && content != "" {
		meta.Title = aeo.ExtractTitle(content)
	}

	return &aeo.Page{
		Pathname:    Pathname(u),
		Title:       meta.Title,
		Description: meta.Description,
		Content:     content,
	}
}

// Pathname returns the page pathname for a crawled URL: the URL path without
// a trailing slash, or "/" for the root.
func Pathname(u *url.URL) string {
	p := strings.TrimSuffix(u.Path, "/")
	if p == "" {
		return "/"
	}
	return p
}

// dedupeContent drops pages whose non-empty content matches an earlier
// page, which happens when several URLs serve the same document.
func dedupeContent(pages []*aeo.Page) []*aeo.Page {
	seen := bloom.NewFilter(uint(max(len(pages), 1)), 0.001)
	out := pages[:0]
	for _, p := range pages {
		if p.Content != "" && seen.TestAndAddHash(xxhash.Sum64String(p.Content)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (c *Crawler) concurrency() int {
	if c.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return c.Concurrency
}

func (c *Crawler) maxPages() int {
	if c.MaxPages <= 0 {
		return DefaultMaxPages
	}
	return c.MaxPages
}

func (c *Crawler) retryDelays() Backoff {
	if c.RetryDelays == nil {
		return DefaultBackoff()
	}
	return c.RetryDelays
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// isCanceled reports whether err stems from context cancellation.
func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
