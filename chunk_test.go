package aeo_test

import (
	"strings"
	"testing"

	"github.com/aeojs/aeo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkContent(t *testing.T) {
	t.Parallel()

	t.Run("splits at paragraph boundary when limit exceeded", func(t *testing.T) {
		t.Parallel()

		a := strings.Repeat("A", 1500)
		b := strings.Repeat("B", 1500)

		chunks := aeo.ChunkContent(a+"\n\n"+b, 2000)

		require.Len(t, chunks, 2)
		assert.Equal(t, a, chunks[0])
		assert.Equal(t, b, chunks[1])
	})

	t.Run("packs small paragraphs together", func(t *testing.T) {
		t.Parallel()

		chunks := aeo.ChunkContent("one\n\ntwo\n\nthree", 2000)

		require.Len(t, chunks, 1)
		assert.Equal(t, "one\n\ntwo\n\nthree", chunks[0])
	})

	t.Run("keeps oversized paragraph whole", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", 2500)

		chunks := aeo.ChunkContent("intro\n\n"+long+"\n\noutro", 2000)

		require.Len(t, chunks, 3)
		assert.Equal(t, "intro", chunks[0])
		assert.Equal(t, long, chunks[1])
		assert.Equal(t, "outro", chunks[2])
	})

	t.Run("chunks respect limit unless a single paragraph exceeds it", func(t *testing.T) {
		t.Parallel()

		var paragraphs []string
		for i := 0; i < 40; i++ {
			paragraphs = append(paragraphs, strings.Repeat(string(rune('a'+i%26)), 100+i*7))
		}
		text := strings.Join(paragraphs, "\n\n")

		chunks := aeo.ChunkContent(text, 500)

		for _, c := range chunks {
			if len(c) > 500 {
				assert.NotContains(t, c, "\n\n", "only single paragraphs may exceed the limit")
			}
		}
	})

	t.Run("reconstructs input modulo blank-line joins", func(t *testing.T) {
		t.Parallel()

		text := "alpha beta\n\ngamma\n\ndelta epsilon\n\nzeta"

		chunks := aeo.ChunkContent(text, 15)

		assert.Equal(t, text, strings.Join(chunks, "\n\n"))
	})

	t.Run("uses default length when limit is not positive", func(t *testing.T) {
		t.Parallel()

		a := strings.Repeat("A", 1500)

		chunks := aeo.ChunkContent(a+"\n\n"+a, 0)

		assert.Len(t, chunks, 2)
	})

	t.Run("returns no chunks for blank input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, aeo.ChunkContent("", 2000))
		assert.Empty(t, aeo.ChunkContent(" \n\n \n\n", 2000))
	})
}

func TestChunk(t *testing.T) {
	t.Parallel()

	chunks := aeo.Chunk(strings.Repeat("A", 1500)+"\n\n"+strings.Repeat("B", 1500), 2000)

	require.Len(t, chunks, 2)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, 1, chunks[1].Index)
	assert.True(t, strings.HasPrefix(chunks[1].Text, "B"))
}
