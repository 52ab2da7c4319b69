package aeo

// HiddenAttr marks elements that a renderer found hidden by computed style.
const HiddenAttr = "data-aeo-hidden"

// Extractor turns rendered HTML into clean Markdown for language models.
// Extraction is total: malformed input yields best-effort output, never an
// error. Implementations must be safe for concurrent use.
type Extractor interface {
	Extract(html string) string
}

// DocumentExtractor walks a page's element tree and renders it as Markdown,
// starting with the page title and meta description. The pageURL resolves
// relative links and images.
type DocumentExtractor interface {
	ExtractDocument(html string, pageURL string) string
}

// IsolatedContent holds the main content located within an HTML page.
type IsolatedContent struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ContentIsolator locates the main content of an HTML page, removing
// boilerplate. It is the first stage of library-backed extraction.
type ContentIsolator interface {
	Isolate(html string) (*IsolatedContent, error)
}

// Converter renders isolated content HTML as Markdown. It is the second
// stage of library-backed extraction.
type Converter interface {
	Convert(html string) (string, error)
}

// PageMeta is the metadata read from an HTML document head.
type PageMeta struct {
	Title       string
	Description string
}

// IgnoreURL adapts an Extractor to a DocumentExtractor that ignores the
// page URL.
func IgnoreURL(e Extractor) DocumentExtractor {
	return urlIgnoringExtractor{e}
}

type urlIgnoringExtractor struct {
	Extractor
}

func (e urlIgnoringExtractor) ExtractDocument(html, _ string) string {
	return e.Extract(html)
}
