package fs

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/aeojs/aeo"
)

var (
	_ aeo.PageSource = (*PagesScanner)(nil)
	_ aeo.PageSource = (*AngularRouteScanner)(nil)
)

var (
	routeFileRe  = regexp.MustCompile(`\.(vue|svelte|astro|tsx?|jsx?)$`)
	routePathRe  = regexp.MustCompile(`path:\s*['"]([^'"]*)['"]`)
	routeGroupRe = regexp.MustCompile(`^\(.*\)$`)
)

// PagesScanner discovers pages from a file-based routing directory such as
// Nuxt's pages/ or Next's app/. Pages carry a pathname and a title derived
// from the file name, but no content.
type PagesScanner struct {
	Dir string
}

func (s *PagesScanner) Name() string { return "routes" }

// Pages walks Dir for route components. Files and directories starting with
// "_" and dynamic segments starting with "[" are skipped. A missing
// directory yields no pages.
func (s *PagesScanner) Pages(ctx context.Context) ([]*aeo.Page, error) {
	if _, err := os.Stat(s.Dir); os.IsNotExist(err) {
		return nil, nil
	}

	seen := make(map[string]bool)
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
			if p != s.Dir && (hiddenName(name) || strings.HasPrefix(name, "[")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !routeFileRe.MatchString(name) || strings.HasPrefix(name, "_") || strings.HasPrefix(name, "[") {
			return nil
		}

		rel, err := filepath.Rel(s.Dir, p)
		if err != nil {
			return err
		}
		page := routePage(filepath.ToSlash(rel))
		if !seen[page.Pathname] {
			seen[page.Pathname] = true
			pages = append(pages, page)
		}
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

// routePage maps a route component path to a page. "index" and Next's
// "page" files map to their directory and get no title; route groups like
// "(marketing)" do not contribute a segment.
func routePage(rel string) *aeo.Page {
	dir, file := path.Split(rel)
	name := routeFileRe.ReplaceAllString(file, "")

	var segments []string
	for _, seg := range strings.Split(dir, "/") {
		if seg != "" && !routeGroupRe.MatchString(seg) {
			segments = append(segments, seg)
		}
	}

	if name == "index" || name == "page" {
		return &aeo.Page{Pathname: joinPathname(segments...)}
	}
	return &aeo.Page{
		Pathname: joinPathname(append(segments, name)...),
		Title:    titleCase(name),
	}
}

// AngularRouteScanner discovers pages from the path entries of Angular
// *.routes.ts files under Dir (usually src/app). The root page is always
// included.
type AngularRouteScanner struct {
	Dir string
}

func (s *AngularRouteScanner) Name() string { return "angular-routes" }

// Pages parses route configs for literal paths. Wildcard ("**") routes and
// routes with parameter segments (":id") are skipped.
func (s *AngularRouteScanner) Pages(ctx context.Context) ([]*aeo.Page, error) {
	seen := map[string]bool{"/": true}
	pages := []*aeo.Page{{Pathname: "/"}}

	if _, err := os.Stat(s.Dir); os.IsNotExist(err) {
		return pages, nil
	}

	err := filepath.WalkDir(s.Dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p != s.Dir && (hiddenName(name) || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".routes.ts") {
			return nil
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.Dir, filepath.Dir(p))
		if err != nil {
			return err
		}
		base := filepath.ToSlash(rel)
		if base == "." {
			base = ""
		}

		for _, m := range routePathRe.FindAllStringSubmatch(string(data), -1) {
			route := m[1]
			if route == "**" || strings.Contains("/"+route, "/:") {
				continue
			}
			pathname := "/"
			if route != "" {
				pathname = joinPathname(base, route)
			}
			if seen[pathname] {
				continue
			}
			seen[pathname] = true
			pages = append(pages, &aeo.Page{
				Pathname: pathname,
				Title:    titleCase(path.Base(route)),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pages, nil
}

// titleCase capitalizes a route segment and turns dashes into spaces.
// Example: getting-started → Getting started
func titleCase(segment string) string {
	if segment == "" {
		return ""
	}
	segment = strings.ReplaceAll(segment, "-", " ")
	return strings.ToUpper(segment[:1]) + segment[1:]
}
