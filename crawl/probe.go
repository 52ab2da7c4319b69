package crawl

import (
	"context"

	"github.com/aeojs/aeo"
)

// ContentDiffers reports whether the rendered version of a page carries
// substantially more content than the static version: over 50% more
// extracted Markdown, or any content where the static page has none.
func ContentDiffers(staticHTML, renderedHTML string, extractor aeo.Extractor) bool {
	staticLen := len(extractor.Extract(staticHTML))
	renderedLen := len(extractor.Extract(renderedHTML))

	if staticLen == 0 {
		return renderedLen > 0
	}
	return float64(renderedLen) > float64(staticLen)*1.5
}

// SelectFetcher probes probeURL with both fetchers and returns the one a
// crawl of the site should use. Client-rendered sites need the browser;
// static sites are crawled over plain HTTP.
func SelectFetcher(ctx context.Context, probeURL string, static, rendered aeo.Fetcher, extractor aeo.Extractor) aeo.Fetcher {
	staticHTML, err := static.Fetch(ctx, probeURL)
	if err != nil {
		return rendered
	}

	renderedHTML, err := rendered.Fetch(ctx, probeURL)
	if err != nil {
		return static
	}

	if ContentDiffers(staticHTML, renderedHTML, extractor) {
		return rendered
	}
	return static
}
