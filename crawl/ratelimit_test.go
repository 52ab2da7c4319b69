package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/aeojs/aeo/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("allows the first request immediately", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10)

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("spaces requests to the same host", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10)
		ctx := context.Background()

		start := time.Now()
		for range 3 {
			require.NoError(t, limiter.Wait(ctx, "example.com"))
		}

		assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
	})

	t.Run("limits hosts independently", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1)
		ctx := context.Background()

		require.NoError(t, limiter.Wait(ctx, "a.example.com"))
		start := time.Now()
		require.NoError(t, limiter.Wait(ctx, "b.example.com"))

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("returns error when context is canceled", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0.1)
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "example.com"))
	})

	t.Run("shares a bucket across case and port", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0.1)
		require.NoError(t, limiter.Wait(context.Background(), "Acme.test:8443"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "acme.test."), "second host spelling should wait on the same bucket")
	})
}

func TestDomainLimiter_Interval(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		rps  float64
		want time.Duration
	}{
		{"configured rate", 4, 250 * time.Millisecond},
		{"sub-second rate", 0.5, 2 * time.Second},
		{"zero falls back to default", 0, 200 * time.Millisecond},
		{"negative falls back to default", -1, 200 * time.Millisecond},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, crawl.NewDomainLimiter(tc.rps).Interval())
		})
	}
}
