package aeo

import "context"

// LinkPriority orders the crawl frontier. Larger values are visited first.
type LinkPriority int

// Priorities by the region of the page a link was found in.
const (
	PriorityIgnore     LinkPriority = 0
	PriorityFallback   LinkPriority = 10
	PriorityFooter     LinkPriority = 20
	PriorityContent    LinkPriority = 50
	PriorityNavigation LinkPriority = 100
	PrioritySidebar    LinkPriority = 110
)

// DiscoveredLink is a same-site URL found while walking a page.
type DiscoveredLink struct {
	URL      string
	Priority LinkPriority
	Text     string

	// Source names the page region: nav, sidebar, content, footer or fallback.
	Source string
}

// LinkExtractor returns the same-site links of a page, resolved against
// baseURL.
type LinkExtractor interface {
	ExtractLinks(html string, baseURL string) ([]DiscoveredLink, error)
}

// URLFrontier is the queue of a link-following crawl. Push reports false for
// a URL that was queued before; Pop returns the highest priority link.
type URLFrontier interface {
	Push(link DiscoveredLink) bool
	Pop() (DiscoveredLink, bool)
	Len() int
	Seen(url string) bool
}

// DomainLimiter spaces requests per host. Wait returns early with the
// context error when ctx ends.
type DomainLimiter interface {
	Wait(ctx context.Context, domain string) error
}
