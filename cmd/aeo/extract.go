package main

import (
	"fmt"
	"os"

	"github.com/aeojs/aeo"
	"github.com/aeojs/aeo/goquery"
	"github.com/aeojs/aeo/htmltomarkdown"
	"github.com/aeojs/aeo/readability"
	aeoregexp "github.com/aeojs/aeo/regexp"
	aeoslog "github.com/aeojs/aeo/slog"
	"github.com/aeojs/aeo/trafilatura"
)

// Library-backed extraction strategies. Anything else uses the regexp
// extractor.
const (
	strategyTrafilatura = "trafilatura"
	strategyReadability = "readability"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, pageURL, err := c.load(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aeo.ErrorMessage(err))
		return err
	}

	var markdown string
	if c.DOM {
		markdown = aeoslog.NewLoggingDocumentExtractor(goquery.NewDocumentExtractor(), deps.Logger).ExtractDocument(html, pageURL)
	} else {
		markdown = aeoslog.NewLoggingExtractor(c.extractor(pageURL), deps.Logger).Extract(html)
	}

	if markdown == "" {
		fmt.Fprintln(deps.Stderr, "No content extracted")
		return nil
	}
	fmt.Fprintln(deps.Stdout, markdown)
	return nil
}

// load returns the HTML of the source and, for URLs, the page URL.
func (c *ExtractCmd) load(deps *Dependencies) (html, pageURL string, err error) {
	if isURL(c.Source) {
		html, err := deps.Fetcher.Fetch(deps.Ctx, c.Source)
		return html, c.Source, err
	}

	data, err := os.ReadFile(c.Source)
	if os.IsNotExist(err) {
		return "", "", aeo.Errorf(aeo.ENOTFOUND, "file not found: %s", c.Source)
	} else if err != nil {
		return "", "", err
	}
	return string(data), "", nil
}

func (c *ExtractCmd) extractor(pageURL string) aeo.Extractor {
	converter := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(pageURL))
	switch c.Strategy {
	case strategyTrafilatura:
		return htmltomarkdown.NewExtractor(
			htmltomarkdown.WithIsolator(trafilatura.NewIsolator()),
			htmltomarkdown.WithConverter(converter),
		)
	case strategyReadability:
		return htmltomarkdown.NewExtractor(
			htmltomarkdown.WithIsolator(readability.NewIsolator(pageURL)),
			htmltomarkdown.WithConverter(converter),
		)
	default:
		return aeoregexp.NewExtractor()
	}
}
