package generate

import (
	"sort"
	"time"

	"github.com/aeojs/aeo"
)

var _ aeo.ArtifactGenerator = Manifest{}

// Manifest generates docs.json, a machine-readable list of the site's
// documents.
type Manifest struct {
	Clock Clock
}

type manifest struct {
	Version   string             `json:"version"`
	Generated string             `json:"generated"`
	Site      siteInfo           `json:"site"`
	Documents []manifestDocument `json:"documents"`
	Metadata  manifestMetadata   `json:"metadata"`
}

type manifestDocument struct {
	URL          string        `json:"url"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	LastModified string        `json:"lastModified,omitempty"`
	Sections     []aeo.Section `json:"sections,omitempty"`
}

type manifestMetadata struct {
	TotalDocuments int    `json:"totalDocuments"`
	Generator      string `json:"generator"`
	GeneratorURL   string `json:"generatorUrl"`
}

func (Manifest) Name() string { return ManifestFile }

// Generate lists every page sorted by URL, with the headings of its
// content as sections.
func (m Manifest) Generate(cfg *aeo.ResolvedConfig, pages []*aeo.Page) ([]*aeo.Artifact, error) {
	docs := make([]manifestDocument, 0, len(pages))
	for _, page := range pages {
		doc := manifestDocument{
			URL:         aeo.PageURL(cfg.URL, page.Pathname),
			Title:       page.Title,
			Description: page.Description,
			Sections:    aeo.ExtractSections(page.Content),
		}
		if doc.Title == "" {
			doc.Title = aeo.ExtractTitle(page.Content)
		}
		if !page.LastModified.IsZero() {
			doc.LastModified = page.LastModified.UTC().Format(time.RFC3339)
		}
		docs = append(docs, doc)
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].URL < docs[j].URL
	})

	return jsonArtifact(ManifestFile, manifest{
		Version:   SchemaVersion,
		Generated: m.Clock.now().Format(time.RFC3339),
		Site:      newSiteInfo(cfg),
		Documents: docs,
		Metadata: manifestMetadata{
			TotalDocuments: len(docs),
			Generator:      aeo.Generator,
			GeneratorURL:   aeo.GeneratorURL,
		},
	})
}
