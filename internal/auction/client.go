package auction

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mkivimagi/auctionview/internal/logging"
)

// DefaultPageSize is the fixed number of records requested per page.
const DefaultPageSize = 10

// defaultTimeout bounds a single page fetch. The endpoint has no streaming
// semantics, so a request that takes longer than this is considered hung.
const defaultTimeout = 15 * time.Second

// Client fetches auction record pages from the remote endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client, primarily for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client for the given base URL, e.g.
// "https://api.example.com". The path and page segments are appended per
// request.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPage retrieves one page of auction records. The page argument is
// zero-indexed to match the server contract: GET <base>/auction-all/<page>/<size>.
// The response body is a bare JSON array of records with no pagination
// metadata.
func (c *Client) FetchPage(ctx context.Context, page, size int) ([]Record, error) {
	if page < 0 {
		return nil, fmt.Errorf("page must be >= 0, got %d", page)
	}
	if size < 1 {
		return nil, fmt.Errorf("page size must be >= 1, got %d", size)
	}

	url := fmt.Sprintf("%s/auction-all/%d/%d", c.baseURL, page, size)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log := logging.FromContext(ctx)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", page, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching page %d: unexpected status %s", page, resp.Status)
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding page %d: %w", page, err)
	}

	log.Debug().
		Int("page", page).
		Int("size", size).
		Int("records", len(records)).
		Dur("elapsed", time.Since(start)).
		Msg("fetched auction page")

	return records, nil
}
