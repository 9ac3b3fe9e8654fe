package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNetwork marks recoverable transport/HTTP failures so callers can sort
// them from parse errors with errors.Is.
var ErrNetwork = errors.New("network failure")

const maxBodyBytes = 4 << 20 // arbitrary pages; don't slurp unbounded

// Page is one fetched document. FinalURL reflects redirects.
type Page struct {
	URL        string
	FinalURL   string
	StatusCode int
	Body       string
}

type Config struct {
	Timeout      time.Duration // per-request; default 15s
	RetryWait    time.Duration // backoff before the single retry; default 2s
	UserAgent    string
	PerHostRate  float64 // requests/sec toward one host
	PerHostBurst int
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	if c.RetryWait <= 0 {
		c.RetryWait = 2 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = "CareerIntel/1.0 (+local)"
	}
	if c.PerHostRate <= 0 {
		c.PerHostRate = 2.0
	}
	if c.PerHostBurst <= 0 {
		c.PerHostBurst = 4
	}
	return c
}

// Client is the shared fetcher. The underlying http.Client (and its
// connection pool) is safe for concurrent use across board tasks.
type Client struct {
	hc        *http.Client
	limiter   *hostLimiters
	ua        string
	retryWait time.Duration
}

func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		hc:        &http.Client{Timeout: cfg.Timeout},
		limiter:   newHostLimiters(cfg.PerHostRate, cfg.PerHostBurst),
		ua:        cfg.UserAgent,
		retryWait: cfg.RetryWait,
	}
}

// Get fetches rawURL with one retry (after a short backoff) on transient
// failure: transport errors, 5xx, and 429. Other 4xx are terminal.
func (c *Client) Get(ctx context.Context, rawURL string) (*Page, error) {
	page, transient, err := c.get(ctx, rawURL)
	if err == nil || !transient {
		return page, err
	}

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %s: %v", ErrNetwork, rawURL, ctx.Err())
	case <-time.After(c.retryWait):
	}

	page, _, err = c.get(ctx, rawURL)
	return page, err
}

func (c *Client) get(ctx context.Context, rawURL string) (*Page, bool, error) {
	if err := c.limiter.wait(ctx, rawURL); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrNetwork, rawURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrNetwork, rawURL, err)
	}
	req.Header.Set("User-Agent", c.ua)
	req.Header.Set("Accept", "text/html,application/json;q=0.9,*/*;q=0.8")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %s: %v", ErrNetwork, rawURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		io.Copy(io.Discard, res.Body)
		transient := res.StatusCode >= 500 || res.StatusCode == http.StatusTooManyRequests
		return nil, transient, fmt.Errorf("%w: %s: status %d", ErrNetwork, rawURL, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, true, fmt.Errorf("%w: %s: read body: %v", ErrNetwork, rawURL, err)
	}

	return &Page{
		URL:        rawURL,
		FinalURL:   res.Request.URL.String(),
		StatusCode: res.StatusCode,
		Body:       string(body),
	}, false, nil
}
