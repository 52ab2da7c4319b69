package aeo

import (
	"context"
	"regexp"
	"slices"
)

// SitemapService discovers page URLs from a live site's sitemaps.
type SitemapService interface {
	// DiscoverURLs finds all page URLs listed in a site's sitemaps.
	// Sitemap locations come from robots.txt directives, falling back to
	// /sitemap.xml. Sitemap indexes are resolved recursively.
	//
	// A nil filter returns every URL.
	DiscoverURLs(ctx context.Context, siteURL string, filter *URLFilter) ([]string, error)
}

// URLFilter specifies patterns for including/excluding URLs.
type URLFilter struct {
	// Include patterns; when set, a URL must match at least one.
	Include []*regexp.Regexp

	// Exclude patterns; a URL matching any of them is dropped.
	// Exclude is applied after Include.
	Exclude []*regexp.Regexp
}

// NewURLFilter compiles include and exclude patterns into a filter.
// It returns nil when both lists are empty.
func NewURLFilter(include, exclude []string) (*URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}

	compile := func(patterns []string) ([]*regexp.Regexp, error) {
		res := make([]*regexp.Regexp, 0, len(patterns))
		for _, p := range patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, Errorf(EINVALID, "invalid URL pattern %q: %v", p, err)
			}
			res = append(res, re)
		}
		return res, nil
	}

	inc, err := compile(include)
	if err != nil {
		return nil, err
	}
	exc, err := compile(exclude)
	if err != nil {
		return nil, err
	}
	return &URLFilter{Include: inc, Exclude: exc}, nil
}

// Match returns true if the URL passes the filter.
// If the filter is nil, all URLs pass.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	matches := func(re *regexp.Regexp) bool { return re.MatchString(url) }

	if len(f.Include) > 0 && !slices.ContainsFunc(f.Include, matches) {
		return false
	}
	return !slices.ContainsFunc(f.Exclude, matches)
}
