package regexp_test

import (
	"testing"

	"github.com/aeojs/aeo/regexp"
	"github.com/stretchr/testify/assert"
)

func TestReadMeta(t *testing.T) {
	t.Parallel()

	t.Run("reads title and description", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>About</title><meta name="description" content="Who we are"></head></html>`

		meta := regexp.ReadMeta(html)

		assert.Equal(t, "About", meta.Title)
		assert.Equal(t, "Who we are", meta.Description)
	})

	t.Run("drops site name suffix from title", func(t *testing.T) {
		t.Parallel()

		meta := regexp.ReadMeta(`<TITLE> Pricing | Acme </TITLE>`)

		assert.Equal(t, "Pricing", meta.Title)
	})

	t.Run("decodes entities", func(t *testing.T) {
		t.Parallel()

		meta := regexp.ReadMeta(`<title>Q&amp;A</title><meta name='description' content='Tips &amp; tricks'>`)

		assert.Equal(t, "Q&A", meta.Title)
		assert.Equal(t, "Tips & tricks", meta.Description)
	})

	t.Run("returns empty meta when absent", func(t *testing.T) {
		t.Parallel()

		meta := regexp.ReadMeta(`<html><body>hi</body></html>`)

		assert.Empty(t, meta.Title)
		assert.Empty(t, meta.Description)
	})
}
