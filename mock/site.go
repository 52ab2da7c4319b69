package mock

import (
	"context"

	"github.com/aeojs/aeo"
)

// Compile-time interface verification.
var (
	_ aeo.SiteService = (*SiteService)(nil)
	_ aeo.PageService = (*PageService)(nil)
)

// SiteService is a mock implementation of aeo.SiteService.
type SiteService struct {
	CreateSiteFn   func(ctx context.Context, site *aeo.Site) error
	FindSiteByIDFn func(ctx context.Context, id string) (*aeo.Site, error)
	FindSitesFn    func(ctx context.Context, filter aeo.SiteFilter) ([]*aeo.Site, error)
	UpdateSiteFn   func(ctx context.Context, id string, upd aeo.SiteUpdate) (*aeo.Site, error)
	DeleteSiteFn   func(ctx context.Context, id string) error
}

func (s *SiteService) CreateSite(ctx context.Context, site *aeo.Site) error {
	return s.CreateSiteFn(ctx, site)
}

func (s *SiteService) FindSiteByID(ctx context.Context, id string) (*aeo.Site, error) {
	return s.FindSiteByIDFn(ctx, id)
}

func (s *SiteService) FindSites(ctx context.Context, filter aeo.SiteFilter) ([]*aeo.Site, error) {
	return s.FindSitesFn(ctx, filter)
}

func (s *SiteService) UpdateSite(ctx context.Context, id string, upd aeo.SiteUpdate) (*aeo.Site, error) {
	return s.UpdateSiteFn(ctx, id, upd)
}

func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	return s.DeleteSiteFn(ctx, id)
}

// PageService is a mock implementation of aeo.PageService.
type PageService struct {
	SavePageFn          func(ctx context.Context, siteID string, page *aeo.Page) (bool, error)
	FindPagesFn         func(ctx context.Context, siteID string) ([]*aeo.Page, error)
	DeletePagesBySiteFn func(ctx context.Context, siteID string) error
	SourceFn            func(siteID string) aeo.PageSource
}

func (s *PageService) SavePage(ctx context.Context, siteID string, page *aeo.Page) (bool, error) {
	return s.SavePageFn(ctx, siteID, page)
}

func (s *PageService) FindPages(ctx context.Context, siteID string) ([]*aeo.Page, error) {
	return s.FindPagesFn(ctx, siteID)
}

func (s *PageService) DeletePagesBySite(ctx context.Context, siteID string) error {
	return s.DeletePagesBySiteFn(ctx, siteID)
}

func (s *PageService) Source(siteID string) aeo.PageSource {
	return s.SourceFn(siteID)
}
