package aeo

import (
	"context"
	"time"
)

// Site represents a live web site whose pages were crawled and stored.
type Site struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "site URL required")
	}
	return nil
}

// SiteService represents a service for managing crawled sites.
type SiteService interface {
	// CreateSite creates a new site.
	CreateSite(ctx context.Context, site *Site) error

	// FindSiteByID retrieves a site by ID.
	// Returns ENOTFOUND if site does not exist.
	FindSiteByID(ctx context.Context, id string) (*Site, error)

	// FindSites retrieves sites matching the filter.
	FindSites(ctx context.Context, filter SiteFilter) ([]*Site, error)

	// UpdateSite updates an existing site.
	// Returns ENOTFOUND if site does not exist.
	UpdateSite(ctx context.Context, id string, upd SiteUpdate) (*Site, error)

	// DeleteSite permanently removes a site and all of its pages.
	// Returns ENOTFOUND if site does not exist.
	DeleteSite(ctx context.Context, id string) error
}

// SiteFilter represents a filter for FindSites.
type SiteFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SiteUpdate represents fields that can be updated on a site.
type SiteUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// PageService represents a service for managing stored pages of a site.
type PageService interface {
	// SavePage stores a page, replacing any page with the same pathname.
	// It reports whether the stored content changed.
	SavePage(ctx context.Context, siteID string, page *Page) (changed bool, err error)

	// FindPages retrieves all pages of a site ordered by pathname.
	FindPages(ctx context.Context, siteID string) ([]*Page, error)

	// DeletePagesBySite removes all pages of a site.
	DeletePagesBySite(ctx context.Context, siteID string) error

	// Source returns a page source serving the stored pages of a site.
	Source(siteID string) PageSource
}
