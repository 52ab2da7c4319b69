package generate

import (
	"slices"

	"github.com/aeojs/aeo"
	"github.com/beevik/etree"
)

var _ aeo.ArtifactGenerator = Sitemap{}

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Sitemap generates sitemap.xml.
type Sitemap struct {
	Clock Clock
}

func (Sitemap) Name() string { return SitemapFile }

// Generate lists the unique URLs of every page plus the site root, sorted.
// A page's lastmod is its modification time when known, otherwise the
// generation date.
func (s Sitemap) Generate(cfg *aeo.ResolvedConfig, pages []*aeo.Page) ([]*aeo.Artifact, error) {
	today := s.Clock.now().Format("2006-01-02")

	lastmod := map[string]string{aeo.PageURL(cfg.URL, "/"): today}
	for _, page := range pages {
		u := aeo.PageURL(cfg.URL, page.Pathname)
		if !page.LastModified.IsZero() {
			lastmod[u] = page.LastModified.UTC().Format("2006-01-02")
		} else if _, ok := lastmod[u]; !ok {
			lastmod[u] = today
		}
	}

	urls := make([]string, 0, len(lastmod))
	for u := range lastmod {
		urls = append(urls, u)
	}
	slices.Sort(urls)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)
	for _, u := range urls {
		entry := urlset.CreateElement("url")
		entry.CreateElement("loc").SetText(u)
		entry.CreateElement("lastmod").SetText(lastmod[u])
		entry.CreateElement("changefreq").SetText("weekly")
		entry.CreateElement("priority").SetText("0.8")
	}
	doc.Indent(2)

	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, err
	}
	return []*aeo.Artifact{{Path: SitemapFile, Content: data}}, nil
}
