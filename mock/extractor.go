package mock

import "github.com/aeojs/aeo"

// Compile-time interface verification.
var (
	_ aeo.Extractor         = (*Extractor)(nil)
	_ aeo.DocumentExtractor = (*DocumentExtractor)(nil)
	_ aeo.ContentIsolator   = (*ContentIsolator)(nil)
	_ aeo.LinkExtractor     = (*LinkExtractor)(nil)
)

// Extractor is a mock implementation of aeo.Extractor.
type Extractor struct {
	ExtractFn func(html string) string
}

func (e *Extractor) Extract(html string) string {
	return e.ExtractFn(html)
}

// DocumentExtractor is a mock implementation of aeo.DocumentExtractor.
type DocumentExtractor struct {
	ExtractDocumentFn func(html, pageURL string) string
}

func (e *DocumentExtractor) ExtractDocument(html, pageURL string) string {
	return e.ExtractDocumentFn(html, pageURL)
}

// ContentIsolator is a mock implementation of aeo.ContentIsolator.
type ContentIsolator struct {
	IsolateFn func(html string) (*aeo.IsolatedContent, error)
}

func (i *ContentIsolator) Isolate(html string) (*aeo.IsolatedContent, error) {
	return i.IsolateFn(html)
}

// LinkExtractor is a mock implementation of aeo.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]aeo.DiscoveredLink, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]aeo.DiscoveredLink, error) {
	return e.ExtractLinksFn(html, baseURL)
}
