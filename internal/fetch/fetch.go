// Package fetch retrieves remote documents over HTTP so they can be fed
// into detection, generation, and diffing.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Client fetches remote text documents with a bounded body size.
type Client struct {
	httpClient   *http.Client
	maxBodyBytes int64
	userAgent    string
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithTimeout sets the total request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithMaxBodyBytes caps how much of a response body is read.
func WithMaxBodyBytes(n int64) Option {
	return func(c *Client) {
		c.maxBodyBytes = n
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a fetch client.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		maxBodyBytes: 10 << 20,
		userAgent:    "formakit-mcp/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result is the outcome of one fetch.
type Result struct {
	URL         string `json:"url"`
	Status      int    `json:"status"`
	ContentType string `json:"contentType,omitempty"`
	Body        string `json:"body"`
	Truncated   bool   `json:"truncated"`
}

// Fetch performs a GET request against rawURL and returns the response body
// as text. Bodies larger than the configured cap are truncated, not failed.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	start := time.Now()

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported URL scheme %q: only http and https are allowed", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, application/yaml, application/xml, text/*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("HTTP request failed",
			slog.String("url", rawURL),
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	// Read one byte past the cap to tell truncation apart from an exact fit.
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	truncated := int64(len(body)) > c.maxBodyBytes
	if truncated {
		body = body[:c.maxBodyBytes]
	}

	slog.Debug("HTTP request completed",
		slog.String("url", rawURL),
		slog.Int("status", resp.StatusCode),
		slog.Int("body_bytes", len(body)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return &Result{
		URL:         rawURL,
		Status:      resp.StatusCode,
		ContentType: contentType(resp),
		Body:        string(body),
		Truncated:   truncated,
	}, nil
}

// FetchPair retrieves two documents concurrently, typically the two sides
// of a diff. Either failure fails the pair.
func (c *Client) FetchPair(ctx context.Context, urlA, urlB string) (*Result, *Result, error) {
	var a, b *Result

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := c.Fetch(gctx, urlA)
		if err != nil {
			return fmt.Errorf("fetching %s: %w", urlA, err)
		}
		a = res
		return nil
	})
	g.Go(func() error {
		res, err := c.Fetch(gctx, urlB)
		if err != nil {
			return fmt.Errorf("fetching %s: %w", urlB, err)
		}
		b = res
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func contentType(resp *http.Response) string {
	ct := resp.Header.Get("Content-Type")
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}
