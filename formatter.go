package aeo

import (
	"path"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Generator is the name stamped into generated artifacts.
const Generator = "aeo.js"

// GeneratorURL is the home page of the generator.
const GeneratorURL = "https://aeojs.org"

// FormatPageMarkdown formats a page as a standalone Markdown document with
// YAML frontmatter. The page title becomes the only H1, so content headings
// are expected to start at H2.
func FormatPageMarkdown(page *Page, siteURL string) string {
	title := page.Title
	if title == "" {
		title = page.Pathname
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString(quotedFields("title", title, "description", page.Description))
	b.WriteString("url: " + PageURL(siteURL, page.Pathname) + "\n")
	b.WriteString("source: " + page.Pathname + "\n")
	b.WriteString("generated_by: " + Generator + "\n")
	b.WriteString("---\n\n")
	b.WriteString("# " + title + "\n\n")
	if page.Description != "" {
		b.WriteString(page.Description + "\n\n")
	}
	b.WriteString(page.Content)
	return b.String()
}

// quotedFields renders key/value pairs as a YAML mapping with every value
// double-quoted, one pair per line.
func quotedFields(pairs ...string) string {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i+1 < len(pairs); i += 2 {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: pairs[i]},
			&yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: pairs[i+1]},
		)
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		var b strings.Builder
		for i := 0; i+1 < len(pairs); i += 2 {
			b.WriteString(pairs[i] + ": " + strconv.Quote(pairs[i+1]) + "\n")
		}
		return b.String()
	}
	return string(out)
}

// MarkdownPath converts a page pathname to the relative path of its
// Markdown file.
// Example: /docs/api → docs/api.md, / → index.md, /blog/ → blog/index.md
func MarkdownPath(pathname string) string {
	if pathname == "" || pathname == "/" {
		return "index.md"
	}

	p := strings.TrimPrefix(pathname, "/")
	if strings.HasSuffix(p, "/") {
		return p + "index.md"
	}
	return path.Clean(p) + ".md"
}
