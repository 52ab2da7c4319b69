package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/aeojs/aeo"
	"github.com/aeojs/aeo/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkSavePage compares storing new pages with re-saving unchanged ones,
// the common case when a site is crawled again.
func BenchmarkSavePage(b *testing.B) {
	b.Run("new_pages", func(b *testing.B) {
		benchmarkSavePage(b, false)
	})

	b.Run("unchanged_pages", func(b *testing.B) {
		benchmarkSavePage(b, true)
	})
}

func benchmarkSavePage(b *testing.B, sameContent bool) {
	b.Helper()

	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	ctx := context.Background()
	site := &aeo.Site{URL: "https://example.com"}
	require.NoError(b, sqlite.NewSiteService(db).CreateSite(ctx, site))
	pages := sqlite.NewPageService(db)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n := i
		if sameContent {
			n = 0
		}
		page := &aeo.Page{
			Pathname: fmt.Sprintf("/docs/page%d", n),
			Title:    fmt.Sprintf("Page %d", n),
			Content:  fmt.Sprintf("## Page %d\n\nContent for page %d. Lorem ipsum dolor sit amet, consectetur adipiscing elit.", n, n),
		}
		if _, err := pages.SavePage(ctx, site.ID, page); err != nil {
			b.Fatal(err)
		}
	}
}
