package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aeojs/aeo"
	aeohttp "github.com/aeojs/aeo/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const urlset = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">%s</urlset>`

func entries(paths ...string) string {
	var b strings.Builder
	for _, p := range paths {
		b.WriteString("<url><loc>{{BASE}}" + p + "</loc></url>")
	}
	return strings.Replace(urlset, "%s", b.String(), 1)
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("reads sitemaps declared in robots.txt", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/robots.txt": "User-agent: *\nDisallow: /private/\nsitemap: {{BASE}}/a.xml\nSitemap: {{BASE}}/b.xml\n",
			"/a.xml":      entries("/pricing", "/about"),
			"/b.xml":      entries("/about", "/blog"),
		})

		urls, err := aeohttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/pricing", srv.URL + "/about", srv.URL + "/blog"}, urls)
	})

	t.Run("falls back to sitemap.xml", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": entries("/page1"),
		})

		urls, err := aeohttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/page1"}, urls)
	})

	t.Run("resolves sitemap indexes", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>{{BASE}}/sitemap-pages.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/sitemap-posts.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/sitemap.xml</loc></sitemap>
</sitemapindex>`,
			"/sitemap-pages.xml": entries("/about"),
			"/sitemap-posts.xml": entries("/blog/hello"),
		})

		urls, err := aeohttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/about", srv.URL + "/blog/hello"}, urls)
	})

	t.Run("restricts to site path prefix", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": entries("/blog", "/blog/post", "/blogroll", "/about"),
		})

		urls, err := aeohttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL+"/blog/", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/blog", srv.URL + "/blog/post"}, urls)
	})

	t.Run("applies include and exclude filters", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": entries("/docs/intro", "/docs/internal/debug", "/blog/post"),
		})
		filter, err := aeo.NewURLFilter([]string{`/docs/`}, []string{`/internal/`})
		require.NoError(t, err)

		urls, err := aeohttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, filter)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/docs/intro"}, urls)
	})

	t.Run("returns empty slice when no sitemap exists", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{})

		urls, err := aeohttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("reports a declared sitemap that is missing", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/robots.txt": "Sitemap: {{BASE}}/gone.xml\n",
		})

		_, err := aeohttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		assert.Equal(t, aeo.ENOTFOUND, aeo.ErrorCode(err))
	})

	t.Run("rejects invalid site url", func(t *testing.T) {
		t.Parallel()

		_, err := aeohttp.NewSitemapService(nil).DiscoverURLs(context.Background(), "not a url", nil)

		assert.Equal(t, aeo.EINVALID, aeo.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{"/sitemap.xml": entries("/x")})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := aeohttp.NewSitemapService(srv.Client()).DiscoverURLs(ctx, srv.URL, nil)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

// newTestServer serves content by path. Content may contain {{BASE}}, which
// is replaced with the server URL.
func newTestServer(t *testing.T, content map[string]string) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := content[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(strings.ReplaceAll(body, "{{BASE}}", srv.URL)))
	}))
	t.Cleanup(srv.Close)

	return srv
}
