package aeo

import (
	"strings"
	"unicode/utf8"
)

// DefaultChunkLength is the target maximum length of a content chunk.
const DefaultChunkLength = 2000

// ContentChunk is one paragraph-aligned piece of an extracted page.
type ContentChunk struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// ChunkContent splits text on blank lines and packs consecutive paragraphs
// into chunks of at most maxLength characters. The limit is a soft target:
// a single paragraph longer than maxLength becomes its own chunk, unsplit.
// A maxLength of zero or less uses DefaultChunkLength.
func ChunkContent(text string, maxLength int) []string {
	if maxLength <= 0 {
		maxLength = DefaultChunkLength
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if chunk := strings.TrimSpace(current.String()); chunk != "" {
			chunks = append(chunks, chunk)
		}
		current.Reset()
		currentLen = 0
	}

	for _, paragraph := range strings.Split(text, "\n\n") {
		n := utf8.RuneCountInString(paragraph)
		if currentLen+n > maxLength && currentLen > 0 {
			flush()
		}
		current.WriteString(paragraph)
		current.WriteString("\n\n")
		currentLen += n + 2
	}
	flush()

	return chunks
}

// Chunk is like ChunkContent but numbers the chunks.
func Chunk(text string, maxLength int) []ContentChunk {
	texts := ChunkContent(text, maxLength)
	chunks := make([]ContentChunk, len(texts))
	for i, t := range texts {
		chunks[i] = ContentChunk{Index: i, Text: t}
	}
	return chunks
}
