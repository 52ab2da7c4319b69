package generate

import "github.com/aeojs/aeo"

var _ aeo.ArtifactGenerator = Markdown{}

// Markdown generates one Markdown file per page with content, mirroring the
// page's pathname.
type Markdown struct{}

func (Markdown) Name() string { return "markdown" }

// Generate formats each page under its own H1 title. Content that carries
// its own H1 is demoted one level.
func (Markdown) Generate(cfg *aeo.ResolvedConfig, pages []*aeo.Page) ([]*aeo.Artifact, error) {
	var artifacts []*aeo.Artifact
	for _, page := range pages {
		if page.Content == "" {
			continue
		}
		p := *page
		if hasH1(p.Content) {
			p.Content = aeo.BumpHeadings(p.Content, 1)
		}
		artifacts = append(artifacts, &aeo.Artifact{
			Path:    aeo.MarkdownPath(p.Pathname),
			Content: []byte(aeo.FormatPageMarkdown(&p, cfg.URL)),
		})
	}
	return artifacts, nil
}

func hasH1(markdown string) bool {
	for _, s := range aeo.ExtractSections(markdown) {
		if s.Level == 1 {
			return true
		}
	}
	return false
}
