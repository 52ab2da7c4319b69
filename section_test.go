package aeo_test

import (
	"strings"
	"testing"

	"github.com/aeojs/aeo"
	"github.com/stretchr/testify/assert"
)

func TestExtractSections(t *testing.T) {
	t.Parallel()

	fence := "```"
	for _, tc := range []struct {
		name     string
		markdown string
		want     []aeo.Section
	}{
		{
			name:     "levels one through six",
			markdown: "# Acme\n## Plans\n### Team\n#### Seats\n##### Billing\n###### Tax",
			want: []aeo.Section{
				{Level: 1, Title: "Acme", Anchor: "acme"},
				{Level: 2, Title: "Plans", Anchor: "plans"},
				{Level: 3, Title: "Team", Anchor: "team"},
				{Level: 4, Title: "Seats", Anchor: "seats"},
				{Level: 5, Title: "Billing", Anchor: "billing"},
				{Level: 6, Title: "Tax", Anchor: "tax"},
			},
		},
		{
			name:     "anchors drop punctuation and keep hyphens",
			markdown: "## API Reference (v2.0)\n## Self-hosted  Setup!",
			want: []aeo.Section{
				{Level: 2, Title: "API Reference (v2.0)", Anchor: "api-reference-v20"},
				{Level: 2, Title: "Self-hosted  Setup!", Anchor: "self-hosted-setup"},
			},
		},
		{
			name:     "repeated headings get numeric suffixes",
			markdown: "## FAQ\ntext\n## FAQ\n### FAQ",
			want: []aeo.Section{
				{Level: 2, Title: "FAQ", Anchor: "faq"},
				{Level: 2, Title: "FAQ", Anchor: "faq-1"},
				{Level: 3, Title: "FAQ", Anchor: "faq-2"},
			},
		},
		{
			name:     "comments inside code fences are not headings",
			markdown: "# Install\n\n" + fence + "bash\n# add the package\nnpm i aeo.js\n" + fence + "\n\n## Configure",
			want: []aeo.Section{
				{Level: 1, Title: "Install", Anchor: "install"},
				{Level: 2, Title: "Configure", Anchor: "configure"},
			},
		},
		{
			name:     "hash without a space is not a heading",
			markdown: "#launch day\nplain text",
		},
		{
			name: "empty document",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, aeo.ExtractSections(tc.markdown))
		})
	}
}

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	t.Run("prefers first H1", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Guide", aeo.ExtractTitle("intro\n## Sub\n# Guide\n# Other"))
	})

	t.Run("falls back to H2", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Setup", aeo.ExtractTitle("text\n## Setup\nmore"))
	})

	t.Run("falls back to first line", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Plain first line", aeo.ExtractTitle("Plain first line\nsecond"))
	})

	t.Run("caps first line at 100 characters", func(t *testing.T) {
		t.Parallel()

		line := strings.Repeat("w", 150)

		assert.Len(t, aeo.ExtractTitle(line), 100)
	})
}

func TestBumpHeadings(t *testing.T) {
	t.Parallel()

	t.Run("demotes by one level", func(t *testing.T) {
		t.Parallel()

		got := aeo.BumpHeadings("# A\ntext\n## B", 1)

		assert.Equal(t, "## A\ntext\n### B", got)
	})

	t.Run("caps at H6", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "###### Deep", aeo.BumpHeadings("##### Deep", 3))
	})

	t.Run("ignores hashes not followed by space", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "#hashtag", aeo.BumpHeadings("#hashtag", 1))
	})
}
