package trafilatura

import (
	"bytes"
	"strings"

	"github.com/aeojs/aeo"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Isolator implements aeo.ContentIsolator at compile time.
var _ aeo.ContentIsolator = (*Isolator)(nil)

// Isolator uses go-trafilatura to locate the main content of a page.
type Isolator struct {
	opts trafilatura.Options
}

// NewIsolator creates a new Isolator with fallback extractors enabled.
func NewIsolator() *Isolator {
	return &Isolator{
		opts: trafilatura.Options{
			EnableFallback: true,
			IncludeLinks:   true,
			IncludeImages:  true,
		},
	}
}

// Isolate returns the page title and the main content as HTML.
func (i *Isolator) Isolate(rawHTML string) (*aeo.IsolatedContent, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, aeo.Errorf(aeo.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), i.opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if result.ContentNode != nil {
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
	}

	return &aeo.IsolatedContent{
		Title:       result.Metadata.Title,
		ContentHTML: buf.String(),
	}, nil
}
