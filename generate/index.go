package generate

import (
	"time"

	"github.com/aeojs/aeo"
)

var _ aeo.ArtifactGenerator = AIIndex{}

// Embedding model hints published in ai-index.json.
const (
	RecommendedEmbeddingModel = "text-embedding-ada-002"
	EmbeddingDimensions       = 1536
)

// AIIndex generates ai-index.json, page content chunked for retrieval.
type AIIndex struct {
	Clock Clock

	// MaxChunkLength defaults to aeo.DefaultChunkLength.
	MaxChunkLength int
}

type aiIndex struct {
	Version   string            `json:"version"`
	Generated string            `json:"generated"`
	Site      siteInfo          `json:"site"`
	Entries   []*aeo.IndexEntry `json:"entries"`
	Metadata  aiIndexMetadata   `json:"metadata"`
}

type aiIndexMetadata struct {
	TotalEntries int            `json:"totalEntries"`
	Generator    string         `json:"generator"`
	GeneratorURL string         `json:"generatorUrl"`
	Embedding    embeddingHints `json:"embedding"`
}

type embeddingHints struct {
	Recommended string `json:"recommended"`
	Dimensions  int    `json:"dimensions"`
}

func (AIIndex) Name() string { return AIIndexFile }

func (g AIIndex) Generate(cfg *aeo.ResolvedConfig, pages []*aeo.Page) ([]*aeo.Artifact, error) {
	maxLength := g.MaxChunkLength
	if maxLength <= 0 {
		maxLength = aeo.DefaultChunkLength
	}

	entries := aeo.BuildIndexEntries(cfg.URL, pages, maxLength)
	if entries == nil {
		entries = []*aeo.IndexEntry{}
	}

	return jsonArtifact(AIIndexFile, aiIndex{
		Version:   SchemaVersion,
		Generated: g.Clock.now().Format(time.RFC3339),
		Site:      newSiteInfo(cfg),
		Entries:   entries,
		Metadata: aiIndexMetadata{
			TotalEntries: len(entries),
			Generator:    aeo.Generator,
			GeneratorURL: aeo.GeneratorURL,
			Embedding: embeddingHints{
				Recommended: RecommendedEmbeddingModel,
				Dimensions:  EmbeddingDimensions,
			},
		},
	})
}
