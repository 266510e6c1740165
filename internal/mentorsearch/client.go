package mentorsearch

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Client fetches mentor pages from the upstream mentor-search endpoint.
//
// The HTTP client is injected so callers choose the transport policy: the
// gateway passes a plain client (the interactive path never retries), the
// alert runner passes a retrying one. A nil httpClient falls back to
// http.DefaultClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Client for the given upstream base URL, e.g.
// "https://api.ngurra.example". The /mentors path is appended per request.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// FetchPage issues exactly one GET /mentors request for the given filters
// and cursor and returns the normalized page.
func (c *Client) FetchPage(ctx context.Context, filters Filters, cursor string) (*Page, error) {
	reqURL := c.baseURL + "/mentors?" + filters.Values(cursor).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("mentor search returned %d: %s", resp.StatusCode, string(body))
	}

	return NormalizePage(body)
}
