package generate_test

import (
	"strings"
	"testing"

	"github.com/aeojs/aeo"
	"github.com/aeojs/aeo/generate"
	"github.com/stretchr/testify/assert"
)

func TestLLMs_Generate(t *testing.T) {
	t.Parallel()

	t.Run("lists pages with descriptions", func(t *testing.T) {
		t.Parallel()

		got := generateOne(t, generate.LLMs{}, testConfig(), testPages())

		assert.True(t, strings.HasPrefix(got, "# Acme Docs\n\n> Everything about Acme\n\n## Pages\n\n"))
		assert.Contains(t, got, "- [Home](https://acme.dev): Welcome\n")
		assert.Contains(t, got, "- [About](https://acme.dev/about)\n")
		assert.Contains(t, got, "- [Contact](https://acme.dev/contact)\n")
	})

	t.Run("falls back to pathname for untitled pages", func(t *testing.T) {
		t.Parallel()

		got := generateOne(t, generate.LLMs{}, testConfig(), []*aeo.Page{{Pathname: "/faq"}})

		assert.Contains(t, got, "- [/faq](https://acme.dev/faq)")
	})

	t.Run("links AI resources", func(t *testing.T) {
		t.Parallel()

		got := generateOne(t, generate.LLMs{}, testConfig(), nil)

		assert.NotContains(t, got, "## Pages")
		assert.Contains(t, got, "(https://acme.dev/llms-full.txt)")
		assert.Contains(t, got, "(https://acme.dev/ai-index.json)")
	})
}

func TestLLMsFull_Generate(t *testing.T) {
	t.Parallel()

	t.Run("concatenates page content", func(t *testing.T) {
		t.Parallel()

		got := generateOne(t, generate.LLMsFull{}, testConfig(), testPages())

		assert.True(t, strings.HasPrefix(got, "# Full Content Export\n\n"))
		assert.Contains(t, got, "## Page: Home\n\nURL: https://acme.dev/\n\n")
		assert.Contains(t, got, "## Page: About\n\nURL: https://acme.dev/about\n\n")
		assert.Contains(t, got, "We build rockets.")
	})

	t.Run("marks pages without content", func(t *testing.T) {
		t.Parallel()

		got := generateOne(t, generate.LLMsFull{}, testConfig(), testPages())

		assert.Contains(t, got, "## Page: Contact\n\nURL: https://acme.dev/contact\n\n[Content not available]\n\n---\n\n")
	})

	t.Run("separates pages", func(t *testing.T) {
		t.Parallel()

		got := generateOne(t, generate.LLMsFull{}, testConfig(), testPages())

		assert.Equal(t, 4, strings.Count(got, "---\n\n"))
	})

	t.Run("nests content headings below the page heading", func(t *testing.T) {
		t.Parallel()

		pages := []*aeo.Page{{Pathname: "/guide", Title: "Guide", Content: "# Guide\n\n## Setup\n\nRun it."}}

		got := generateOne(t, generate.LLMsFull{}, testConfig(), pages)

		assert.Contains(t, got, "### Guide\n\n#### Setup\n\nRun it.")
	})
}
