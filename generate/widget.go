package generate

import (
	"encoding/json"
	"html"
	"strings"

	"github.com/aeojs/aeo"
)

// WidgetModule is the module specifier the widget loads from. Its presence in
// a document marks the widget as already injected.
const WidgetModule = "aeo.js/widget"

type widgetBootConfig struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Widget      aeo.Widget `json:"widget"`
}

// WidgetScript returns the script tag that boots the human/AI view toggle
// widget, or "" when the widget is disabled.
func WidgetScript(cfg *aeo.ResolvedConfig) string {
	if !cfg.Widget.Enabled {
		return ""
	}

	// json.Marshal escapes <, > and &, so the config cannot close the tag.
	data, err := json.Marshal(widgetBootConfig{
		Title:       cfg.Title,
		Description: cfg.Description,
		URL:         cfg.URL,
		Widget:      cfg.Widget,
	})
	if err != nil {
		return ""
	}

	return `<script type="module">
import('` + WidgetModule + `').then(({ AeoWidget }) => {
  try {
    new AeoWidget({ config: ` + string(data) + ` });
  } catch (e) {
    console.warn('[aeo.js] Widget initialization failed:', e);
  }
}).catch(() => {});
</script>`
}

// InjectWidget inserts the widget script before the closing body tag.
// Documents that already load the widget or have no body tag are returned
// unchanged.
func InjectWidget(doc string, cfg *aeo.ResolvedConfig) string {
	if strings.Contains(doc, WidgetModule) {
		return doc
	}
	script := WidgetScript(cfg)
	if script == "" {
		return doc
	}
	return insertBefore(doc, "</body>", script+"\n")
}

// DiscoveryTags returns link and meta tags that point answer engines at the
// generated artifacts.
func DiscoveryTags(cfg *aeo.ResolvedConfig) string {
	links := []struct{ typ, file, title string }{
		{"text/plain", LLMsFile, "LLM Summary"},
		{"text/plain", LLMsFullFile, "Full Content for LLMs"},
		{"application/json", ManifestFile, "Documentation Manifest"},
		{"application/json", AIIndexFile, "AI-Optimized Index"},
	}

	var b strings.Builder
	for _, l := range links {
		b.WriteString(`<link rel="alternate" type="` + l.typ + `" href="/` + l.file + `" title="` + l.title + `">` + "\n")
	}
	b.WriteString(`<meta name="aeo:title" content="` + html.EscapeString(cfg.Title) + `">` + "\n")
	b.WriteString(`<meta name="aeo:description" content="` + html.EscapeString(cfg.Description) + `">` + "\n")
	b.WriteString(`<meta name="aeo:url" content="` + html.EscapeString(cfg.URL) + `">` + "\n")
	return b.String()
}

// InjectDiscoveryTags inserts DiscoveryTags before the closing head tag.
// Documents that already reference llms.txt are returned unchanged.
func InjectDiscoveryTags(doc string, cfg *aeo.ResolvedConfig) string {
	if strings.Contains(doc, `href="/`+LLMsFile+`"`) {
		return doc
	}
	return insertBefore(doc, "</head>", DiscoveryTags(cfg))
}

// insertBefore inserts s before the last occurrence of tag, written in
// lower or upper case.
func insertBefore(doc, tag, s string) string {
	i := strings.LastIndex(doc, tag)
	if i < 0 {
		i = strings.LastIndex(doc, strings.ToUpper(tag))
	}
	if i < 0 {
		return doc
	}
	return doc[:i] + s + doc[i:]
}
