package generate

import (
	"strings"

	"github.com/aeojs/aeo"
)

var (
	_ aeo.ArtifactGenerator = LLMs{}
	_ aeo.ArtifactGenerator = LLMsFull{}
)

// LLMs generates llms.txt, a Markdown index of the site for language
// models.
type LLMs struct{}

func (LLMs) Name() string { return LLMsFile }

func (LLMs) Generate(cfg *aeo.ResolvedConfig, pages []*aeo.Page) ([]*aeo.Artifact, error) {
	var b strings.Builder
	b.WriteString("# " + cfg.Title + "\n\n")
	if cfg.Description != "" {
		b.WriteString("> " + cfg.Description + "\n\n")
	}

	if len(pages) > 0 {
		b.WriteString("## Pages\n\n")
		for _, page := range pages {
			b.WriteString("- [" + pageTitle(page) + "](" + aeo.PageURL(cfg.URL, page.Pathname) + ")")
			if page.Description != "" {
				b.WriteString(": " + page.Description)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## AI Resources\n\n")
	b.WriteString("- [Full content](" + aeo.PageURL(cfg.URL, "/"+LLMsFullFile) + "): All page content in one file\n")
	b.WriteString("- [Documentation manifest](" + aeo.PageURL(cfg.URL, "/"+ManifestFile) + "): Page list with metadata\n")
	b.WriteString("- [AI index](" + aeo.PageURL(cfg.URL, "/"+AIIndexFile) + "): Chunked content for retrieval\n")

	return textArtifact(LLMsFile, b.String()), nil
}

// LLMsFull generates llms-full.txt, the concatenated content of every page.
// Content headings are demoted below the "## Page:" heading of their page.
type LLMsFull struct{}

func (LLMsFull) Name() string { return LLMsFullFile }

func (LLMsFull) Generate(cfg *aeo.ResolvedConfig, pages []*aeo.Page) ([]*aeo.Artifact, error) {
	var b strings.Builder
	b.WriteString("# Full Content Export\n\n")
	b.WriteString("> " + cfg.Title)
	if cfg.Description != "" {
		b.WriteString(": " + cfg.Description)
	}
	b.WriteString("\n\n---\n\n")

	base := strings.TrimSuffix(cfg.URL, "/")
	for _, page := range pages {
		b.WriteString("## Page: " + pageTitle(page) + "\n\n")
		b.WriteString("URL: " + base + page.Pathname + "\n\n")
		if page.Content != "" {
			b.WriteString(strings.TrimSpace(aeo.BumpHeadings(page.Content, 2)) + "\n\n")
		} else {
			b.WriteString("[Content not available]\n\n")
		}
		b.WriteString("---\n\n")
	}

	return textArtifact(LLMsFullFile, b.String()), nil
}
