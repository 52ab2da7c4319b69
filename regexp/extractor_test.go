package regexp_test

import (
	"strings"
	"testing"

	"github.com/aeojs/aeo/regexp"
	"github.com/stretchr/testify/assert"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("keeps main content and drops chrome", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title></head><body><nav>Nav</nav><main><h1>Welcome</h1><p>Hello <strong>world</strong>.</p></main><footer>Foot</footer></body></html>`

		result := regexp.NewExtractor().Extract(html)

		assert.Equal(t, "# Welcome\n\nHello **world**.", result)
		assert.NotContains(t, result, "Nav")
		assert.NotContains(t, result, "Foot")
	})

	t.Run("reserves top heading level for page title", func(t *testing.T) {
		t.Parallel()

		html := `<main><h1>Welcome</h1><h2>Install</h2></main>`

		result := regexp.NewExtractor(regexp.WithTitleReserved()).Extract(html)

		assert.Equal(t, "## Welcome\n\n## Install", result)
	})

	t.Run("removes header nav and footer without main", func(t *testing.T) {
		t.Parallel()

		html := `<body><header>Top</header><nav>Menu</nav><div><h2>About</h2><p>Text &amp; more</p></div><footer>Bottom</footer></body>`

		result := regexp.NewExtractor().Extract(html)

		assert.Equal(t, "## About\n\nText & more", result)
	})

	t.Run("main spans from first open to last close", func(t *testing.T) {
		t.Parallel()

		html := `<nav>skip</nav><main><p>one</p></main><aside>between</aside><main><p>two</p></main><footer>skip</footer>`

		result := regexp.NewExtractor().Extract(html)

		assert.Equal(t, "one\n\nbetween\n\ntwo", result)
	})

	t.Run("uses content root when there is no main", func(t *testing.T) {
		t.Parallel()

		html := `<body><div>Outside</div><app-root><p>Inside</p></app-root></body>`

		result := regexp.NewExtractor(regexp.WithContentRoot("app-root")).Extract(html)

		assert.Equal(t, "Inside", result)
	})

	t.Run("strips scripts styles and svg", func(t *testing.T) {
		t.Parallel()

		html := `<main><script type="module">alert(1)</script><STYLE>.a{color:red}</STYLE><svg viewBox="0 0 1 1"><path d="M0"/></svg><p>Visible</p></main>`

		result := regexp.NewExtractor().Extract(html)

		assert.Equal(t, "Visible", result)
	})

	t.Run("flattens links wrapping block content", func(t *testing.T) {
		t.Parallel()

		html := `<main><a href="/post"><div><h3>Post title</h3><p>Summary text</p></div></a></main>`

		result := regexp.NewExtractor().Extract(html)

		assert.Equal(t, "[Post title Summary text](/post)", result)
	})

	t.Run("caps block link text at 120 characters", func(t *testing.T) {
		t.Parallel()

		html := `<main><a href="/card"><p>` + strings.Repeat("x", 200) + `</p></a></main>`

		result := regexp.NewExtractor().Extract(html)

		assert.Equal(t, "["+strings.Repeat("x", 120)+"](/card)", result)
	})

	t.Run("converts inline links", func(t *testing.T) {
		t.Parallel()

		html := `<main><p>See <a class="x" href='/docs'>the docs</a> now</p></main>`

		result := regexp.NewExtractor().Extract(html)

		assert.Equal(t, "See [the docs](/docs) now", result)
	})

	t.Run("tidies whitespace inside link text", func(t *testing.T) {
		t.Parallel()

		html := "<main><a href=\"/x\">\n   Click\n</a></main>"

		result := regexp.NewExtractor().Extract(html)

		assert.Equal(t, "[Click](/x)", result)
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		html := `<main><ul><li>One</li><li>Two</li></ul></main>`

		result := regexp.NewExtractor().Extract(html)

		assert.Equal(t, "- One\n- Two", result)
	})

	t.Run("converts emphasis quotes rules and breaks", func(t *testing.T) {
		t.Parallel()

		html := `<main><p><em>soft</em> and <b>bold</b></p><blockquote>quoted</blockquote><hr/><p>a<br/>b</p></main>`

		result := regexp.NewExtractor().Extract(html)

		assert.Equal(t, "*soft* and **bold**\n\n> quoted\n\n---\n\na\nb", result)
	})

	t.Run("joins heading marker split from its text", func(t *testing.T) {
		t.Parallel()

		html := "<main><h2>\n   Getting started\n</h2></main>"

		result := regexp.NewExtractor().Extract(html)

		assert.Equal(t, "## Getting started", result)
	})

	t.Run("drops trailing empty heading", func(t *testing.T) {
		t.Parallel()

		html := `<main><p>Body</p><h2> </h2></main>`

		result := regexp.NewExtractor().Extract(html)

		assert.Equal(t, "Body", result)
	})

	t.Run("keeps paragraphs ending in a hash apart", func(t *testing.T) {
		t.Parallel()

		for _, tc := range []struct {
			name string
			ex   *regexp.Extractor
			html string
			want string
		}{
			{"language name", regexp.NewExtractor(), "<p>I write C#</p><p>Next paragraph</p>", "I write C#\n\nNext paragraph"},
			{"bare hash", regexp.NewExtractor(), "<p>Tag #</p><p>Alone</p>", "Tag #\n\nAlone"},
			{"title reserved", regexp.NewExtractor(regexp.WithTitleReserved()), "<p>Learn F##</p><p>Then ship</p>", "Learn F##\n\nThen ship"},
		} {
			assert.Equal(t, tc.want, tc.ex.Extract(tc.html), tc.name)
		}
	})

	t.Run("collapses unicode spaces inside lines", func(t *testing.T) {
		t.Parallel()

		result := regexp.NewExtractor().Extract("<p>a\u00a0\u00a0 b\u2009c</p>")

		assert.Equal(t, "a b c", result)
	})

	t.Run("decodes entities after stripping tags", func(t *testing.T) {
		t.Parallel()

		html := `<main><p>&copy; 2024 &lt;Corp&gt; &quot;quoted&quot; it&#39;s</p></main>`

		result := regexp.NewExtractor().Extract(html)

		assert.Equal(t, `(c) 2024 <Corp> "quoted" it's`, result)
	})

	t.Run("strips emoji", func(t *testing.T) {
		t.Parallel()

		html := `<main><p>Ship it 🚀 ✅</p></main>`

		result := regexp.NewExtractor().Extract(html)

		assert.Equal(t, "Ship it", result)
	})

	t.Run("truncates to max length", func(t *testing.T) {
		t.Parallel()

		html := `<main><p>` + strings.Repeat("x", 50) + `</p></main>`

		result := regexp.NewExtractor(regexp.WithMaxLength(10)).Extract(html)

		assert.Equal(t, strings.Repeat("x", 10), result)
	})

	t.Run("truncates to 8000 characters by default", func(t *testing.T) {
		t.Parallel()

		html := `<main><p>` + strings.Repeat("word ", 3000) + `</p></main>`

		result := regexp.NewExtractor().Extract(html)

		assert.Len(t, result, 8000)
	})

	t.Run("never returns markup", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			``,
			`<script>x</script>`,
			`<main><style>a{}</style><div><span>nested <code>code</code></span></div></main>`,
			`<p>unclosed <b>bold`,
			`<<<>>>`,
			`<main><img src="a.png" alt="a"><input type="text"></main>`,
		}
		e := regexp.NewExtractor()

		for _, in := range inputs {
			result := e.Extract(in)
			assert.NotContains(t, result, "<script")
			assert.NotContains(t, result, "<style")
			assert.NotRegexp(t, `<[a-zA-Z/][^>]*>`, result)
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		html := `<main><h1>A</h1><p>b <i>c</i></p><ul><li>d</li></ul></main>`
		e := regexp.NewExtractor()

		assert.Equal(t, e.Extract(html), e.Extract(html))
	})

	t.Run("returns empty string for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, regexp.NewExtractor().Extract(""))
	})
}

func TestExtractor_Steps(t *testing.T) {
	t.Parallel()

	steps := regexp.NewExtractor().Steps()

	assert.Equal(t, []string{
		"strip-blocks",
		"isolate-content",
		"flatten-block-links",
		"convert-headings",
		"convert-inline",
		"strip-tags",
		"decode-entities",
		"strip-emoji",
		"normalize-whitespace",
		"truncate",
	}, steps)
}
