package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/aeojs/aeo"
)

// Ensure Extractor implements aeo.Extractor at compile time.
var _ aeo.Extractor = (*Extractor)(nil)

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// Extractor is a library-backed extraction strategy: an optional
// ContentIsolator locates the main content, html-to-markdown renders it, and
// the shared normalizers clean and truncate the result.
type Extractor struct {
	isolator  aeo.ContentIsolator
	converter aeo.Converter
	maxLength int
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithIsolator sets the content isolator run before conversion.
func WithIsolator(i aeo.ContentIsolator) ExtractorOption {
	return func(e *Extractor) {
		e.isolator = i
	}
}

// WithConverter replaces the default html-to-markdown converter.
func WithConverter(c aeo.Converter) ExtractorOption {
	return func(e *Extractor) {
		e.converter = c
	}
}

// WithMaxLength sets the output cap in characters.
func WithMaxLength(n int) ExtractorOption {
	return func(e *Extractor) {
		e.maxLength = n
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{maxLength: aeo.MaxContentLength}
	for _, opt := range opts {
		opt(e)
	}
	if e.converter == nil {
		e.converter = NewConverter()
	}
	return e
}

// Extract returns cleaned Markdown for html. Isolation or conversion failures
// yield an empty string.
func (e *Extractor) Extract(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	var title string
	content := html
	if e.isolator != nil {
		isolated, err := e.isolator.Isolate(html)
		if err != nil {
			return ""
		}
		title = strings.TrimSpace(isolated.Title)
		content = isolated.ContentHTML
	}

	md, err := e.converter.Convert(content)
	if err != nil && title == "" {
		return ""
	}
	md = aeo.StripEmoji(md)
	md = strings.TrimSpace(blankRunRe.ReplaceAllString(md, "\n\n"))

	if title != "" && !strings.HasPrefix(md, "# ") {
		md = strings.TrimSpace("# " + title + "\n\n" + md)
	}

	return aeo.Truncate(md, e.maxLength)
}
