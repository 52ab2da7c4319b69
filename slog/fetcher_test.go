package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/aeojs/aeo/mock"
	aeoslog "github.com/aeojs/aeo/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogger returns a text logger writing to the returned buffer.
func captureLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	page := "<html><body><h1>Pricing</h1></body></html>"

	for _, tc := range []struct {
		name     string
		level    slog.Level
		fetchErr error
		want     []string
		silent   bool
	}{
		{
			name:  "debug line carries url and size",
			level: slog.LevelDebug,
			want:  []string{"level=DEBUG", "msg=fetch", "url=https://acme.test/pricing", "bytes=42", "duration="},
		},
		{
			name:   "success is silent above debug",
			level:  slog.LevelInfo,
			silent: true,
		},
		{
			name:     "failure is a warning",
			level:    slog.LevelInfo,
			fetchErr: errors.New("connection reset"),
			want:     []string{"level=WARN", "bytes=0", `err="connection reset"`},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			logger, buf := captureLogger(tc.level)
			fetcher := aeoslog.NewLoggingFetcher(&mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					assert.Equal(t, "https://acme.test/pricing", url)
					if tc.fetchErr != nil {
						return "", tc.fetchErr
					}
					return page, nil
				},
			}, logger)

			html, err := fetcher.Fetch(context.Background(), "https://acme.test/pricing")

			if tc.fetchErr != nil {
				require.ErrorIs(t, err, tc.fetchErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, page, html)
			}
			if tc.silent {
				assert.Empty(t, buf.String())
			}
			for _, s := range tc.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	logger, buf := captureLogger(slog.LevelDebug)
	closeErr := errors.New("browser already gone")
	fetcher := aeoslog.NewLoggingFetcher(&mock.Fetcher{
		CloseFn: func() error { return closeErr },
	}, logger)

	assert.ErrorIs(t, fetcher.Close(), closeErr)
	assert.Empty(t, buf.String())
}
