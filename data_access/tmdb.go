package data_access

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// TMDBClient forwards read-only catalog queries to the TMDB API. The
// upstream JSON payload is returned verbatim; callers never see a
// re-modeled version of it.
type TMDBClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewTMDBClient(apiKey, baseURL string) *TMDBClient {
	return &TMDBClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Get performs a GET against the given TMDB endpoint (e.g. "/movie/popular")
// with the API key and extra query parameters attached.
func (c *TMDBClient) Get(ctx context.Context, endpoint string, params map[string]string) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("TMDB API key not configured")
	}

	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return nil, fmt.Errorf("building TMDB URL: %w", err)
	}

	q := u.Query()
	q.Set("api_key", c.apiKey)
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building TMDB request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting TMDB %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading TMDB response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("TMDB %s returned status %d", endpoint, resp.StatusCode)
	}

	return json.RawMessage(body), nil
}
