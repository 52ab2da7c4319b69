package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/aeojs/aeo"
	"github.com/cespare/xxhash/v2"
)

// Compile-time interface verification.
var (
	_ aeo.PageService = (*PageService)(nil)
	_ aeo.PageSource  = (*pageSource)(nil)
)

// PageService implements aeo.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent returns the hex-encoded xxHash of content.
func hashContent(content string) string {
	return hex.EncodeToString(binary.BigEndian.AppendUint64(nil, xxhash.Sum64String(content)))
}

// SavePage inserts or replaces the page with the same pathname. Content
// changes are detected by comparing content hashes.
func (s *PageService) SavePage(ctx context.Context, siteID string, page *aeo.Page) (bool, error) {
	if err := page.Validate(); err != nil {
		return false, err
	}
	if siteID == "" {
		return false, aeo.Errorf(aeo.EINVALID, "site ID required")
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	hash := hashContent(page.Content)

	var existing string
	err = tx.QueryRowContext(ctx, `
		SELECT content_hash FROM pages WHERE site_id = ? AND pathname = ?
	`, siteID, page.Pathname).Scan(&existing)
	if err != nil && err != sql.ErrNoRows {
		return false, err
	}
	changed := err == sql.ErrNoRows || existing != hash

	var lastModified string
	if !page.LastModified.IsZero() {
		lastModified = formatTime(page.LastModified)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO pages (site_id, pathname, title, description, content, content_hash, last_modified, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (site_id, pathname) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			content = excluded.content,
			content_hash = excluded.content_hash,
			last_modified = excluded.last_modified,
			fetched_at = excluded.fetched_at
	`, siteID, page.Pathname, page.Title, page.Description, page.Content, hash,
		lastModified, formatTime(time.Now()))
	if err != nil {
		if isForeignKeyError(err) {
			return false, aeo.Errorf(aeo.ENOTFOUND, "site not found")
		}
		return false, err
	}

	return changed, tx.Commit()
}

// FindPages retrieves all pages of a site ordered by pathname.
func (s *PageService) FindPages(ctx context.Context, siteID string) ([]*aeo.Page, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT pathname, title, description, content, last_modified
		FROM pages
		WHERE site_id = ?
		ORDER BY pathname
	`, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*aeo.Page
	for rows.Next() {
		var page aeo.Page
		var lastModified string
		if err := rows.Scan(&page.Pathname, &page.Title, &page.Description, &page.Content, &lastModified); err != nil {
			return nil, err
		}
		if lastModified != "" {
			if page.LastModified, err = parseTime(lastModified, "last_modified"); err != nil {
				return nil, err
			}
		}
		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// DeletePagesBySite removes all pages of a site.
func (s *PageService) DeletePagesBySite(ctx context.Context, siteID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE site_id = ?", siteID)
	return err
}

// Source returns a page source serving the stored pages of a site.
func (s *PageService) Source(siteID string) aeo.PageSource {
	return &pageSource{pages: s, siteID: siteID}
}

type pageSource struct {
	pages  *PageService
	siteID string
}

func (s *pageSource) Name() string { return "db" }

func (s *pageSource) Pages(ctx context.Context) ([]*aeo.Page, error) {
	return s.pages.FindPages(ctx, s.siteID)
}
