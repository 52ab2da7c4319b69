package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/aeojs/aeo"
)

// Backoff lists the pauses between fetch attempts. A fetch gets one more
// attempt than there are pauses.
type Backoff []time.Duration

// DefaultBackoff doubles from one second: 1s, 2s, 4s.
func DefaultBackoff() Backoff {
	b := make(Backoff, 3)
	for i := range b {
		b[i] = time.Second << i
	}
	return b
}

// Fetch calls fetch until it succeeds or the pauses run out. Missing pages,
// invalid input and cancellation end the loop early. A non-nil logger gets
// one debug record per retry.
func (b Backoff) Fetch(ctx context.Context, url string, fetch func(context.Context, string) (string, error), logger *slog.Logger) (string, error) {
	html, err := fetch(ctx, url)
	for _, pause := range b {
		if err == nil || !retryable(err) {
			break
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if logger != nil {
			logger.Debug("fetch retry", "url", url, "pause", pause, "err", err)
		}

		timer := time.NewTimer(pause)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
		html, err = fetch(ctx, url)
	}
	if err != nil {
		return "", err
	}
	return html, nil
}

func retryable(err error) bool {
	if isCanceled(err) {
		return false
	}
	code := aeo.ErrorCode(err)
	return code != aeo.ENOTFOUND && code != aeo.EINVALID
}
