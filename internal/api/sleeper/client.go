package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public, unauthenticated Sleeper read API.
const DefaultBaseURL = "https://api.sleeper.app/v1"

// Sleeper's published limit is 1000 calls/minute; stay well under it.
const requestsPerMinute = 600

// FetchError is a transport or HTTP-level failure reaching the Sleeper API.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetching %s: %v", e.Op, e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// DataFormatError is a response that arrived but did not have the expected
// shape or required fields.
type DataFormatError struct {
	Op  string
	Err error
}

func (e *DataFormatError) Error() string { return fmt.Sprintf("decoding %s: %v", e.Op, e.Err) }
func (e *DataFormatError) Unwrap() error { return e.Err }

type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a rate-limited Sleeper API client. An empty baseURL falls
// back to DefaultBaseURL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1),
		logger:     logger,
	}
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &FetchError{Op: path, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &FetchError{Op: path, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Op: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &FetchError{Op: path, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &DataFormatError{Op: path, Err: err}
	}

	return nil
}
