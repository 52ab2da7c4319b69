package mock

import (
	"context"

	"github.com/aeojs/aeo"
)

// Compile-time interface verification.
var (
	_ aeo.Fetcher        = (*Fetcher)(nil)
	_ aeo.SitemapService = (*SitemapService)(nil)
	_ aeo.DomainLimiter  = (*DomainLimiter)(nil)
)

// Fetcher is a mock implementation of aeo.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// SitemapService is a mock implementation of aeo.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, siteURL string, filter *aeo.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, siteURL string, filter *aeo.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, siteURL, filter)
}

// DomainLimiter is a mock implementation of aeo.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
