package regexp

import (
	"regexp"
	"strings"

	"github.com/aeojs/aeo"
)

var (
	titleRe       = regexp.MustCompile(`(?i)<title>([^<]*)</title>`)
	descriptionRe = regexp.MustCompile(`(?i)<meta\s+name=["']description["']\s+content=["']([^"']*)["']`)
)

// ReadMeta reads the page title and meta description from an HTML document.
// Site-name suffixes such as "Page | Site" are dropped from the title.
func ReadMeta(html string) aeo.PageMeta {
	var meta aeo.PageMeta
	if m := titleRe.FindStringSubmatch(html); m != nil {
		title, _, _ := strings.Cut(m[1], "|")
		meta.Title = strings.TrimSpace(aeo.DecodeEntities(title))
	}
	if m := descriptionRe.FindStringSubmatch(html); m != nil {
		meta.Description = aeo.DecodeEntities(m[1])
	}
	return meta
}
