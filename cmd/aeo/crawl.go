package main

import (
	"fmt"

	"github.com/aeojs/aeo"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	if c.Preview {
		urls, err := deps.Crawler.Discover(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", aeo.ErrorMessage(err))
			return err
		}
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	site, err := c.findOrCreateSite(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aeo.ErrorMessage(err))
		return err
	}

	if c.Force {
		if err := deps.Pages.DeletePagesBySite(deps.Ctx, site.ID); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", aeo.ErrorMessage(err))
			return err
		}
	}

	progress := func(p aeo.FetchProgress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", p.URL, p.Error)
		}
		if p.Total > 0 {
			fmt.Fprintf(deps.Stderr, "\r[%d/%d] %s", p.Completed, p.Total, truncateURL(p.URL, 40))
		} else {
			fmt.Fprintf(deps.Stderr, "\r[%d] %s", p.Completed, truncateURL(p.URL, 40))
		}
	}

	pages, err := deps.Crawler.Crawl(deps.Ctx, c.URL, progress)
	// Clear progress line
	fmt.Fprintf(deps.Stderr, "\r%60s\r", "")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}

	var changed, size int
	for _, page := range pages {
		ok, err := deps.Pages.SavePage(deps.Ctx, site.ID, page)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error saving %s: %s\n", page.Pathname, aeo.ErrorMessage(err))
			return err
		}
		if ok {
			changed++
		}
		size += len(page.Content)

		if page.Pathname == "/" {
			if err := c.updateSite(deps, site, page); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(deps.Stdout, "Saved %d pages (%d changed, %s) for %s\n", len(pages), changed, formatBytes(size), site.URL)
	return nil
}

// findOrCreateSite returns the stored site for the crawl URL, creating it on
// first crawl.
func (c *CrawlCmd) findOrCreateSite(deps *Dependencies) (*aeo.Site, error) {
	sites, err := deps.Sites.FindSites(deps.Ctx, aeo.SiteFilter{URL: &c.URL})
	if err != nil {
		return nil, err
	}
	if len(sites) > 0 {
		return sites[0], nil
	}

	site := &aeo.Site{URL: c.URL}
	if err := deps.Sites.CreateSite(deps.Ctx, site); err != nil {
		return nil, err
	}
	fmt.Fprintf(deps.Stdout, "Added site %s (%s)\n", site.URL, site.ID)
	return site, nil
}

// updateSite copies the home page title and description onto the site.
func (c *CrawlCmd) updateSite(deps *Dependencies, site *aeo.Site, home *aeo.Page) error {
	if home.Title == site.Title && home.Description == site.Description {
		return nil
	}
	updated, err := deps.Sites.UpdateSite(deps.Ctx, site.ID, aeo.SiteUpdate{
		Title:       &home.Title,
		Description: &home.Description,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aeo.ErrorMessage(err))
		return err
	}
	*site = *updated
	return nil
}
