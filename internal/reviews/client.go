package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"moviematch/internal/config"
)

// ErrNotFound indicates the source has no representative review for the
// entry. Callers score it the same as any fetch failure.
var ErrNotFound = errors.New("no representative review found")

// Fetcher retrieves the representative review text for a catalog entry.
type Fetcher interface {
	Fetch(ctx context.Context, entryID string) (string, error)
}

// Client fetches reviews from the configured source. The review body is read
// out of the JSON-LD metadata block embedded in the entry's title page.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

var _ Fetcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithUserAgent overrides the request user agent.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		if strings.TrimSpace(agent) != "" {
			c.userAgent = agent
		}
	}
}

// NewClient constructs a review fetcher from configuration.
func NewClient(cfg config.Reviews, opts ...Option) *Client {
	timeout := 15 * time.Second
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  "Mozilla/5.0 (compatible; moviematch)",
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Fetch returns the representative review text for the entry, ErrNotFound
// when the page carries none, or a network error.
func (c *Client) Fetch(ctx context.Context, entryID string) (string, error) {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return "", ErrNotFound
	}

	endpoint := fmt.Sprintf("%s/title/%s/", c.baseURL, entryID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build review request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch review page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("review page status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("read review page: %w", err)
	}

	review := extractReviewBody(string(body))
	if review == "" {
		return "", ErrNotFound
	}
	return review, nil
}

// linkedData mirrors the fields of the page's JSON-LD block this client
// cares about.
type linkedData struct {
	Review struct {
		ReviewBody string `json:"reviewBody"`
	} `json:"review"`
}

const (
	ldScriptOpen  = `<script type="application/ld+json">`
	ldScriptClose = `</script>`
)

func extractReviewBody(page string) string {
	start := strings.Index(page, ldScriptOpen)
	if start < 0 {
		return ""
	}
	start += len(ldScriptOpen)
	end := strings.Index(page[start:], ldScriptClose)
	if end < 0 {
		return ""
	}

	var data linkedData
	if err := json.Unmarshal([]byte(page[start:start+end]), &data); err != nil {
		return ""
	}
	return strings.TrimSpace(data.Review.ReviewBody)
}
