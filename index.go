package aeo

import (
	"fmt"
	"sort"
	"strconv"
)

// IndexEntry is one retrievable chunk of a page in the AI index.
type IndexEntry struct {
	ID          string        `json:"id"`
	URL         string        `json:"url"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	Description string        `json:"description,omitempty"`
	Keywords    []string      `json:"keywords"`
	Metadata    IndexMetadata `json:"metadata"`
}

// IndexMetadata locates an entry within its source page.
type IndexMetadata struct {
	ChunkIndex  int    `json:"chunkIndex"`
	TotalChunks int    `json:"totalChunks"`
	SourcePath  string `json:"sourcePath"`
}

// BuildIndexEntries chunks the content of every page and returns one entry
// per chunk, sorted by ID. Pages without content are skipped. Entries of a
// page split into several chunks get a " (Part N)" title suffix; all of them
// share the keywords of the whole page.
func BuildIndexEntries(siteURL string, pages []*Page, maxChunkLength int) []*IndexEntry {
	var entries []*IndexEntry

	for _, page := range pages {
		if page.Content == "" {
			continue
		}

		url := PageURL(siteURL, page.Pathname)
		title := page.Title
		if title == "" {
			title = ExtractTitle(page.Content)
		}
		keywords := ExtractKeywords(page.Content, DefaultKeywordCount)
		if keywords == nil {
			keywords = []string{}
		}

		chunks := ChunkContent(page.Content, maxChunkLength)
		for i, chunk := range chunks {
			entryTitle := title
			if len(chunks) > 1 {
				entryTitle = fmt.Sprintf("%s (Part %d)", title, i+1)
			}
			entries = append(entries, &IndexEntry{
				ID:          MakeID(url + "-" + strconv.Itoa(i)),
				URL:         url,
				Title:       entryTitle,
				Content:     chunk,
				Description: page.Description,
				Keywords:    keywords,
				Metadata: IndexMetadata{
					ChunkIndex:  i,
					TotalChunks: len(chunks),
					SourcePath:  page.Pathname,
				},
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries
}
