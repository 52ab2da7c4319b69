package readability

import (
	"net/url"
	"strings"

	"github.com/aeojs/aeo"
	"github.com/go-shiori/go-readability"
)

// Ensure Isolator implements aeo.ContentIsolator at compile time.
var _ aeo.ContentIsolator = (*Isolator)(nil)

// Isolator uses go-readability to locate the main content of a page.
type Isolator struct {
	pageURL *url.URL
}

// NewIsolator creates a new Isolator. A non-empty pageURL lets readability
// resolve relative links in the isolated content.
func NewIsolator(pageURL string) *Isolator {
	u, _ := url.Parse(pageURL)
	if u != nil && u.Host == "" {
		u = nil
	}
	return &Isolator{pageURL: u}
}

// Isolate returns the article title and content as HTML.
func (i *Isolator) Isolate(rawHTML string) (*aeo.IsolatedContent, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, aeo.Errorf(aeo.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), i.pageURL)
	if err != nil {
		return nil, err
	}

	return &aeo.IsolatedContent{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
