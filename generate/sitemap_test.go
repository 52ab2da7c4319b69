package generate_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aeojs/aeo"
	"github.com/aeojs/aeo/generate"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemap_Generate(t *testing.T) {
	t.Parallel()

	parse := func(t *testing.T, content string) []*etree.Element {
		t.Helper()
		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromString(content))
		urlset := doc.SelectElement("urlset")
		require.NotNil(t, urlset)
		assert.Equal(t, "http://www.sitemaps.org/schemas/sitemap/0.9", urlset.SelectAttrValue("xmlns", ""))
		return urlset.SelectElements("url")
	}

	t.Run("lists unique sorted URLs including the site root", func(t *testing.T) {
		t.Parallel()

		pages := []*aeo.Page{
			{Pathname: "/zeta"},
			{Pathname: "/about"},
			{Pathname: "/about"},
		}

		got := generateOne(t, generate.Sitemap{Clock: fixedClock}, testConfig(), pages)

		urls := parse(t, got)
		var locs []string
		for _, u := range urls {
			locs = append(locs, u.SelectElement("loc").Text())
		}
		assert.Equal(t, []string{"https://acme.dev", "https://acme.dev/about", "https://acme.dev/zeta"}, locs)
		assert.True(t, strings.HasPrefix(got, `<?xml version="1.0" encoding="UTF-8"?>`))
	})

	t.Run("stamps lastmod changefreq and priority", func(t *testing.T) {
		t.Parallel()

		modified := time.Date(2025, 12, 1, 23, 0, 0, 0, time.UTC)
		pages := []*aeo.Page{{Pathname: "/old", LastModified: modified}}

		got := generateOne(t, generate.Sitemap{Clock: fixedClock}, testConfig(), pages)

		urls := parse(t, got)
		require.Len(t, urls, 2)
		assert.Equal(t, "2026-03-14", urls[0].SelectElement("lastmod").Text())
		assert.Equal(t, "2025-12-01", urls[1].SelectElement("lastmod").Text())
		assert.Equal(t, "weekly", urls[1].SelectElement("changefreq").Text())
		assert.Equal(t, "0.8", urls[1].SelectElement("priority").Text())
	})

	t.Run("escapes special characters", func(t *testing.T) {
		t.Parallel()

		got := generateOne(t, generate.Sitemap{Clock: fixedClock}, testConfig(), []*aeo.Page{{Pathname: "/a&b"}})

		assert.Contains(t, got, "<loc>https://acme.dev/a&amp;b</loc>")
		urls := parse(t, got)
		assert.Equal(t, "https://acme.dev/a&b", urls[1].SelectElement("loc").Text())
	})
}
