package goquery_test

import (
	"testing"

	"github.com/aeojs/aeo/goquery"
	"github.com/stretchr/testify/assert"
)

func TestDocumentExtractor_ExtractDocument(t *testing.T) {
	t.Parallel()

	extract := func(html, pageURL string) string {
		return goquery.NewDocumentExtractor().ExtractDocument(html, pageURL)
	}

	t.Run("emits title description and main content", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Guide</title><meta name="description" content="How to start"></head>` +
			`<body><nav><a href="/pricing">Pricing</a></nav><main><h1>Intro</h1><p>Hello   world</p>` +
			`<ul><li>One</li><li>Two</li></ul></main></body></html>`

		result := extract(html, "")

		assert.Equal(t, "# Guide\n\n> How to start\n\n# Intro\n\nHello world\n\n- One\n- Two", result)
	})

	t.Run("prefers earlier content selectors", func(t *testing.T) {
		t.Parallel()

		html := `<body><div class="wrapper"><p>Wrapper</p></div><article><p>Article</p></article></body>`

		assert.Equal(t, "Article", extract(html, ""))
	})

	t.Run("falls back to body", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Plain", extract(`<body><p>Plain</p></body>`, ""))
	})

	t.Run("appends inline code emphasis and text to current line", func(t *testing.T) {
		t.Parallel()

		html := `<main>Run <code>make</code> then <strong>relax</strong></main>`

		assert.Equal(t, "Run `make` then **relax**", extract(html, ""))
	})

	t.Run("resolves links against page url", func(t *testing.T) {
		t.Parallel()

		html := `<main>See <a href="/docs/intro">the intro</a></main>`

		result := extract(html, "https://example.com/guide")

		assert.Equal(t, "See [the intro](https://example.com/docs/intro)", result)
	})

	t.Run("renders javascript links as text", func(t *testing.T) {
		t.Parallel()

		html := `<main><a href="javascript:void(0)">Click</a></main>`

		assert.Equal(t, "Click", extract(html, ""))
	})

	t.Run("keeps nav with documentation keywords and drops plain footer", func(t *testing.T) {
		t.Parallel()

		html := `<main><nav><a href="/api">API reference</a></nav><footer>Copyright Corp</footer><p>Body</p></main>`

		assert.Equal(t, "[API reference](/api)\n\nBody", extract(html, ""))
	})

	t.Run("skips hidden elements", func(t *testing.T) {
		t.Parallel()

		html := `<main><p style="color: red; display: none">Secret</p><div hidden>Also</div>` +
			`<p data-aeo-hidden="true">Gone</p><p style="visibility:hidden">Invisible</p><p>Shown</p></main>`

		assert.Equal(t, "Shown", extract(html, ""))
	})

	t.Run("skips non-content elements", func(t *testing.T) {
		t.Parallel()

		html := `<main><script>var x</script><noscript>enable js</noscript><iframe src="/x"></iframe><p>Text</p></main>`

		assert.Equal(t, "Text", extract(html, ""))
	})

	t.Run("fences code with language from pre", func(t *testing.T) {
		t.Parallel()

		html := "<main><pre class=\"language-go\"><code>func main() {\n\tprintln(1)\n}</code></pre></main>"

		assert.Equal(t, "```go\nfunc main() {\n\tprintln(1)\n}\n```", extract(html, ""))
	})

	t.Run("fences code with language from code", func(t *testing.T) {
		t.Parallel()

		html := `<main><pre><code class="hljs lang-python">print(1)</code></pre></main>`

		assert.Equal(t, "```python\nprint(1)\n```", extract(html, ""))
	})

	t.Run("fences pre without code", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "```\nls -la\n```", extract(`<main><pre>ls -la</pre></main>`, ""))
	})

	t.Run("numbers ordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<main><ol><li>First</li><li>Second <b>step</b></li></ol></main>`

		assert.Equal(t, "1. First\n2. Second step", extract(html, ""))
	})

	t.Run("visits list items once", func(t *testing.T) {
		t.Parallel()

		html := `<main><ul><li>Item <a href="/x">link</a></li></ul></main>`

		assert.Equal(t, "- Item link", extract(html, ""))
	})

	t.Run("renders tables with separator row", func(t *testing.T) {
		t.Parallel()

		html := `<main><table><tr><th>Name</th><th>Age</th></tr><tr><td>Ann</td><td>30</td></tr></table></main>`

		assert.Equal(t, "| Name | Age |\n| --- | --- |\n| Ann | 30 |", extract(html, ""))
	})

	t.Run("renders images that have alt text", func(t *testing.T) {
		t.Parallel()

		html := `<main><img src="/logo.png" alt="Logo"><img src="/no-alt.png"></main>`

		assert.Equal(t, "![Logo](https://example.com/logo.png)", extract(html, "https://example.com/"))
	})

	t.Run("prefixes each blockquote line", func(t *testing.T) {
		t.Parallel()

		html := "<main><blockquote><p>First</p>\n<p>Second</p></blockquote></main>"

		assert.Equal(t, "> First\n> Second", extract(html, ""))
	})

	t.Run("renders horizontal rules", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "A\n\n---\n\nB", extract(`<main><p>A</p><hr><p>B</p></main>`, ""))
	})

	t.Run("returns empty string for empty document", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extract("", ""))
	})
}
