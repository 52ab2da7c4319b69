package generate

import (
	"slices"
	"strconv"
	"strings"

	"github.com/aeojs/aeo"
)

var _ aeo.ArtifactGenerator = Robots{}

// AIUserAgents are the crawlers of AI answer engines and search engines that
// robots.txt grants access explicitly.
var AIUserAgents = []string{
	"GPTBot",
	"ChatGPT-User",
	"CCBot",
	"anthropic-ai",
	"Claude-Web",
	"ClaudeBot",
	"PerplexityBot",
	"Google-Extended",
	"Bingbot",
	"Googlebot",
	"DeepSeekBot",
	"cohere-ai",
}

// Robots generates robots.txt.
type Robots struct{}

func (Robots) Name() string { return RobotsFile }

// Generate writes one group per AI user agent plus a catch-all group, each
// with the configured rules. The sitemap is referenced only when the site
// URL is known.
func (Robots) Generate(cfg *aeo.ResolvedConfig, _ []*aeo.Page) ([]*aeo.Artifact, error) {
	var b strings.Builder

	agents := slices.Concat(AIUserAgents, []string{"*"})
	for _, agent := range agents {
		b.WriteString("User-agent: " + agent + "\n")
		writeRules(&b, cfg.Robots)
		b.WriteString("\n")
	}

	if cfg.URL != "" {
		b.WriteString("Sitemap: " + aeo.PageURL(cfg.URL, "/"+SitemapFile) + "\n\n")
	}

	b.WriteString("# AEO (Answer Engine Optimization) files\n")
	for _, name := range []string{LLMsFile, LLMsFullFile, ManifestFile, AIIndexFile} {
		b.WriteString("# " + aeo.PageURL(cfg.URL, "/"+name) + "\n")
	}

	return textArtifact(RobotsFile, b.String()), nil
}

func writeRules(b *strings.Builder, rules aeo.RobotsConfig) {
	for _, p := range rules.Allow {
		b.WriteString("Allow: " + p + "\n")
	}
	for _, p := range rules.Disallow {
		b.WriteString("Disallow: " + p + "\n")
	}
	if rules.CrawlDelay > 0 {
		b.WriteString("Crawl-delay: " + strconv.Itoa(rules.CrawlDelay) + "\n")
	}
}
