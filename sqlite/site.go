package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aeojs/aeo"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ aeo.SiteService = (*SiteService)(nil)

// SiteService implements aeo.SiteService using SQLite.
type SiteService struct {
	db *DB
}

// NewSiteService creates a new SiteService.
func NewSiteService(db *DB) *SiteService {
	return &SiteService{db: db}
}

// CreateSite creates a new site. A site URL can be stored only once.
func (s *SiteService) CreateSite(ctx context.Context, site *aeo.Site) error {
	if err := site.Validate(); err != nil {
		return err
	}

	existing, err := s.FindSites(ctx, aeo.SiteFilter{URL: &site.URL, Limit: 1})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return aeo.Errorf(aeo.EINVALID, "site already exists: %s", site.URL)
	}

	site.ID = uuid.New().String()
	now := time.Now().UTC()
	site.CreatedAt = now
	site.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sites (id, url, title, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, site.ID, site.URL, site.Title, site.Description,
		formatTime(site.CreatedAt), formatTime(site.UpdatedAt))

	return err
}

// FindSiteByID retrieves a site by ID.
func (s *SiteService) FindSiteByID(ctx context.Context, id string) (*aeo.Site, error) {
	sites, err := s.FindSites(ctx, aeo.SiteFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(sites) == 0 {
		return nil, aeo.Errorf(aeo.ENOTFOUND, "site not found")
	}
	return sites[0], nil
}

// FindSites retrieves sites matching the filter, newest first.
func (s *SiteService) FindSites(ctx context.Context, filter aeo.SiteFilter) ([]*aeo.Site, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, description, created_at, updated_at FROM sites WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC, url")
	query.WriteString(limitClause(filter.Limit, filter.Offset))

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []*aeo.Site
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}

	return sites, rows.Err()
}

// UpdateSite updates an existing site.
func (s *SiteService) UpdateSite(ctx context.Context, id string, upd aeo.SiteUpdate) (*aeo.Site, error) {
	site, err := s.FindSiteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		site.Title = *upd.Title
	}
	if upd.Description != nil {
		site.Description = *upd.Description
	}
	site.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE sites
		SET title = ?, description = ?, updated_at = ?
		WHERE id = ?
	`, site.Title, site.Description, formatTime(site.UpdatedAt), id)
	if err != nil {
		return nil, err
	}

	return site, nil
}

// DeleteSite permanently removes a site. Its pages are removed by cascade.
func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sites WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return aeo.Errorf(aeo.ENOTFOUND, "site not found")
	}

	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSite(row scanner) (*aeo.Site, error) {
	var site aeo.Site
	var createdAt, updatedAt string

	err := row.Scan(&site.ID, &site.URL, &site.Title, &site.Description, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, aeo.Errorf(aeo.ENOTFOUND, "site not found")
	} else if err != nil {
		return nil, err
	}

	if site.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if site.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &site, nil
}
