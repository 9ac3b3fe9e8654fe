package fetch

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// fallbackBucket absorbs requests whose URL has no parseable host, so even
// malformed targets stay rate-limited.
const fallbackBucket = "?"

// hostLimiters hands out one token bucket per remote host. A burst against
// one board must never starve requests to another, and hosts that differ
// only in case share a bucket.
type hostLimiters struct {
	rps   rate.Limit
	burst int

	mu   sync.RWMutex
	pool map[string]*rate.Limiter
}

func newHostLimiters(reqPerSec float64, burst int) *hostLimiters {
	return &hostLimiters{
		rps:   rate.Limit(reqPerSec),
		burst: burst,
		pool:  make(map[string]*rate.Limiter),
	}
}

func (h *hostLimiters) get(host string) *rate.Limiter {
	h.mu.RLock()
	lim := h.pool[host]
	h.mu.RUnlock()
	if lim != nil {
		return lim
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if lim := h.pool[host]; lim != nil {
		return lim
	}
	lim = rate.NewLimiter(h.rps, h.burst)
	h.pool[host] = lim
	return lim
}

// wait blocks until the bucket for rawURL's host admits one request.
func (h *hostLimiters) wait(ctx context.Context, rawURL string) error {
	host := fallbackBucket
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = strings.ToLower(u.Host)
	}
	return h.get(host).Wait(ctx)
}
