package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/aeojs/aeo"
	"github.com/aeojs/aeo/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier(t *testing.T) {
	t.Parallel()

	t.Run("rejects duplicate URLs", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(1000, 0.01)
		link := aeo.DiscoveredLink{URL: "https://example.com/pricing", Priority: aeo.PriorityNavigation}

		assert.True(t, f.Push(link))
		assert.False(t, f.Push(link))
		assert.Equal(t, 1, f.Len())
	})

	t.Run("treats fragment and trailing slash variants as duplicates", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(1000, 0.01)

		assert.True(t, f.Push(aeo.DiscoveredLink{URL: "https://example.com/blog/"}))
		assert.False(t, f.Push(aeo.DiscoveredLink{URL: "https://example.com/blog#latest"}))
		assert.True(t, f.Seen("https://example.com/blog"))

		link, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, "https://example.com/blog", link.URL)
	})

	t.Run("keeps the root slash", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(1000, 0.01)
		f.Push(aeo.DiscoveredLink{URL: "https://example.com/"})

		link, _ := f.Pop()
		assert.Equal(t, "https://example.com/", link.URL)
	})

	t.Run("pops highest priority first then oldest", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(1000, 0.01)
		f.Push(aeo.DiscoveredLink{URL: "https://example.com/legal", Priority: aeo.PriorityFooter})
		f.Push(aeo.DiscoveredLink{URL: "https://example.com/a", Priority: aeo.PriorityContent})
		f.Push(aeo.DiscoveredLink{URL: "https://example.com/docs", Priority: aeo.PrioritySidebar})
		f.Push(aeo.DiscoveredLink{URL: "https://example.com/b", Priority: aeo.PriorityContent})

		var got []string
		for {
			link, ok := f.Pop()
			if !ok {
				break
			}
			got = append(got, link.URL)
		}

		assert.Equal(t, []string{
			"https://example.com/docs",
			"https://example.com/a",
			"https://example.com/b",
			"https://example.com/legal",
		}, got)
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(1000, 0.01)
		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				f.Push(aeo.DiscoveredLink{URL: fmt.Sprintf("https://example.com/p%d", i%25)})
			}()
		}
		wg.Wait()

		assert.Equal(t, 25, f.Len())
	})
}
