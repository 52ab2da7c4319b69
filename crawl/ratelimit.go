package crawl

import (
	"context"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/aeojs/aeo"
	"golang.org/x/time/rate"
)

var _ aeo.DomainLimiter = (*DomainLimiter)(nil)

// DefaultRequestsPerSecond is the per-host request rate used when a crawl is
// configured with a non-positive rate.
const DefaultRequestsPerSecond = 5

// DomainLimiter spaces requests to each host with its own token bucket.
// Hosts are keyed case-insensitively and without port, so "Acme.test:443"
// and "acme.test" share a bucket.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each host with no bursting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Limit(rps),
	}
}

// Interval returns the minimum spacing between two requests to one host.
func (d *DomainLimiter) Interval() time.Duration {
	return time.Duration(float64(time.Second) / float64(d.limit))
}

// Wait blocks until a request to host is allowed. It returns the context
// error if ctx ends first.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	return d.bucket(hostKey(host)).Wait(ctx)
}

func (d *DomainLimiter) bucket(key string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buckets[key]
	if !ok {
		b = rate.NewLimiter(d.limit, 1)
		d.buckets[key] = b
	}
	return b
}

func hostKey(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimSuffix(strings.ToLower(host), ".")
}
