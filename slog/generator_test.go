package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/aeojs/aeo"
	"github.com/aeojs/aeo/mock"
	aeoslog "github.com/aeojs/aeo/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("logs generator name files and bytes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArtifactGenerator{
			GenerateFn: func(cfg *aeo.ResolvedConfig, pages []*aeo.Page) ([]*aeo.Artifact, error) {
				return []*aeo.Artifact{
					{Path: "a.md", Content: []byte("abc")},
					{Path: "b.md", Content: []byte("de")},
				}, nil
			},
			NameFn: func() string { return "markdown" },
		}

		artifacts, err := aeoslog.NewLoggingGenerator(inner, logger).Generate(&aeo.ResolvedConfig{}, nil)

		require.NoError(t, err)
		assert.Len(t, artifacts, 2)
		output := buf.String()
		assert.Contains(t, output, "generator=markdown")
		assert.Contains(t, output, "files=2")
		assert.Contains(t, output, "bytes=5")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArtifactGenerator{
			GenerateFn: func(cfg *aeo.ResolvedConfig, pages []*aeo.Page) ([]*aeo.Artifact, error) {
				return nil, errors.New("boom")
			},
			NameFn: func() string { return "docs.json" },
		}

		_, err := aeoslog.NewLoggingGenerator(inner, logger).Generate(&aeo.ResolvedConfig{}, nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=boom")
	})
}
