package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aeojs/aeo"
)

// Ensure LinkExtractor implements aeo.LinkExtractor at compile time.
var _ aeo.LinkExtractor = (*LinkExtractor)(nil)

// region maps a page region to the crawl priority of its links.
type region struct {
	selector string
	priority aeo.LinkPriority
	source   string
}

// regions use common HTML patterns and class names shared by most sites.
var regions = []region{
	{`aside a[href], .sidebar a[href], .toc a[href], .table-of-contents a[href]`, aeo.PrioritySidebar, "sidebar"},
	{`nav a[href], [role="navigation"] a[href], .nav a[href], .navbar a[href], .menu a[href]`, aeo.PriorityNavigation, "nav"},
	{`main a[href], article a[href], [role="main"] a[href], .content a[href]`, aeo.PriorityContent, "content"},
	{`footer a[href], .footer a[href]`, aeo.PriorityFooter, "footer"},
}

// LinkExtractor extracts same-site links from web pages, prioritized by the
// page region they appear in. Anchors outside known regions are kept with
// fallback priority when they stay under the base URL path.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Links are deduplicated by URL, keeping the highest priority version, in
// order of first occurrence. External links are filtered out.
func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]aeo.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, aeo.Errorf(aeo.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, aeo.Errorf(aeo.EINVALID, "failed to parse HTML: %v", err)
	}

	// Index into links per URL, for in-place priority upgrades.
	seen := make(map[string]int)
	var links []aeo.DiscoveredLink

	add := func(sel *goquery.Selection, priority aeo.LinkPriority, source string, underBase bool) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" || !isSameHost(base, resolved) {
			return
		}
		if underBase && !isUnderPath(base, resolved) {
			return
		}

		link := aeo.DiscoveredLink{
			URL:      resolved,
			Priority: priority,
			Text:     strings.TrimSpace(sel.Text()),
			Source:   source,
		}
		if idx, ok := seen[resolved]; ok {
			if priority > links[idx].Priority {
				links[idx] = link
			}
			return
		}
		seen[resolved] = len(links)
		links = append(links, link)
	}

	for _, r := range regions {
		doc.Find(r.selector).Each(func(_ int, sel *goquery.Selection) {
			add(sel, r.priority, r.source, false)
		})
	}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		add(sel, aeo.PriorityFallback, "fallback", true)
	})

	return links, nil
}

// resolveURL resolves href against base and strips the fragment.
// It returns "" for unparsable or self-referential links.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	self := *base
	self.Fragment = ""
	if resolved.String() == self.String() {
		return ""
	}
	return resolved.String()
}

// isSameHost uses exact host matching; subdomains are different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

func isUnderPath(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return base.Path == "" || strings.HasPrefix(u.Path, base.Path)
}

func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	for _, scheme := range []string{"javascript:", "mailto:", "tel:", "data:"} {
		if strings.HasPrefix(href, scheme) {
			return true
		}
	}
	return false
}
