package fs

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/aeojs/aeo"
)

var _ aeo.PageSource = (*ContentScanner)(nil)

// contentMeta is the frontmatter read from Markdown content files.
type contentMeta struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Description string `yaml:"description" toml:"description" json:"description"`
}

// ContentScanner discovers pages from Markdown and MDX files in a content
// directory. The Markdown body becomes the page content.
type ContentScanner struct {
	Dir string
}

func (s *ContentScanner) Name() string { return "content" }

// Pages reads every .md and .mdx file below Dir. Titles come from
// frontmatter, falling back to the first heading of the body. A missing
// directory yields no pages. Pages are sorted by pathname.
func (s *ContentScanner) Pages(ctx context.Context) ([]*aeo.Page, error) {
	if _, err := os.Stat(s.Dir); os.IsNotExist(err) {
		return nil, nil
	}

	var pages []*aeo.Page
	err := filepath.WalkDir(s.Dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p != s.Dir && (strings.HasPrefix(name, ".") || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		ext := filepath.Ext(name)
		if ext != ".md" && ext != ".mdx" {
			return nil
		}

		rel, err := filepath.Rel(s.Dir, p)
		if err != nil {
			return err
		}
		page, err := readContentPage(p, strings.TrimSuffix(filepath.ToSlash(rel), ext))
		if err != nil {
			return err
		}
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(pages, func(i, j int) bool {
		return pages[i].Pathname < pages[j].Pathname
	})
	return pages, nil
}

func readContentPage(fullPath, route string) (*aeo.Page, error) {
	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, err
	}

	var meta contentMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return nil, aeo.Errorf(aeo.EINVALID, "invalid frontmatter in %s: %v", fullPath, err)
	}
	content := strings.TrimSpace(string(body))

	title := meta.Title
	if title == "" {
		title = aeo.ExtractTitle(content)
	}
	return &aeo.Page{
		Pathname:     ContentPathname(route),
		Title:        title,
		Description:  meta.Description,
		Content:      content,
		LastModified: info.ModTime(),
	}, nil
}

// ContentPathname maps a content file route to a page pathname. Index files
// map to their directory.
// Example: docs/intro → /docs/intro, docs/index → /docs, index → /
func ContentPathname(route string) string {
	if route == "index" {
		return "/"
	}
	return joinPathname(strings.TrimSuffix(route, "/index"))
}
