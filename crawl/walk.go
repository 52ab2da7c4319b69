package crawl

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aeojs/aeo"
)

// Frontier sizing for link-following crawls.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// drainTimeout bounds how long the walk waits for in-flight workers after
// it stops dispatching.
const drainTimeout = 5 * time.Second

// walkFrontier follows links from siteURL with a pool of workers. Links are
// kept when they stay on the same host, under the site path and pass the
// crawler filter. handle is called from the coordinating goroutine only.
//
// With extract set, every fetched page is also run through the extractor.
func (c *Crawler) walkFrontier(ctx context.Context, siteURL string, extract bool, handle func(*pageResult)) error {
	site, err := url.Parse(siteURL)
	if err != nil || site.Host == "" {
		return aeo.Errorf(aeo.EINVALID, "invalid site URL: %q", siteURL)
	}
	pathPrefix := site.Path

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(aeo.DiscoveredLink{URL: siteURL, Priority: aeo.PriorityNavigation})

	inScope := func(link aeo.DiscoveredLink) bool {
		u, err := url.Parse(link.URL)
		if err != nil {
			return false
		}
		return u.Host == site.Host && strings.HasPrefix(u.Path, pathPrefix) && c.Filter.Match(link.URL)
	}

	concurrency := c.concurrency()
	workCh := make(chan aeo.DiscoveredLink, concurrency)
	resultCh := make(chan pageResult)

	var wg sync.WaitGroup
	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for link := range workCh {
				res := pageResult{url: link.URL}
				res.page, res.links, res.err = c.processURL(ctx, link.URL, true, extract)
				select {
				case resultCh <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	receive := func(res pageResult) {
		for _, link := range res.links {
			if inScope(link) {
				frontier.Push(link)
			}
		}
		if isCanceled(res.err) {
			return
		}
		handle(&res)
	}

	limit := c.maxPages()
	dispatched := 0
	pending := 0
	var next *aeo.DiscoveredLink
	if link, ok := frontier.Pop(); ok {
		next = &link
	}

loop:
	for {
		if (next == nil || dispatched >= limit) && pending == 0 {
			break
		}
		if ctx.Err() != nil {
			break
		}

		if next != nil && dispatched < limit {
			select {
			case <-ctx.Done():
				break loop
			case workCh <- *next:
				dispatched++
				pending++
				next = nil
			case res := <-resultCh:
				pending--
				receive(res)
			}
		} else {
			select {
			case <-ctx.Done():
				break loop
			case res, ok := <-resultCh:
				if !ok {
					break loop
				}
				pending--
				receive(res)
			}
		}

		if next == nil && dispatched < limit {
			if link, ok := frontier.Pop(); ok {
				next = &link
			}
		}
	}

	close(workCh)

	timeout := time.After(drainTimeout)
drain:
	for {
		select {
		case res, ok := <-resultCh:
			if !ok {
				break drain
			}
			receive(res)
		case <-timeout:
			break drain
		}
	}

	return nil
}
