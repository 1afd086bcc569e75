package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"
)

const (
	specFetchMaxRetries = 3
	specFetchBackoff    = 2 * time.Second
)

// SpecSourceClient loads the market attribute-spec document from a
// local file or over HTTP. Both sources are optional; Load returns an
// error when neither is configured, which callers treat as "no spec".
type SpecSourceClient struct {
	path        string
	url         string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewSpecSourceClient creates a new market spec source client
func NewSpecSourceClient(path, url string, requestsPerSecond int) *SpecSourceClient {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &SpecSourceClient{
		path:        path,
		url:         url,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
}

// Load reads the spec document, preferring the local file path
func (c *SpecSourceClient) Load(ctx context.Context) ([]byte, error) {
	if c.path != "" {
		data, err := os.ReadFile(c.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read market spec file: %w", err)
		}
		return data, nil
	}
	if c.url != "" {
		return c.fetch(ctx)
	}
	return nil, fmt.Errorf("no market spec source configured")
}

func (c *SpecSourceClient) fetch(ctx context.Context) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < specFetchMaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(specFetchBackoff * time.Duration(attempt)):
			}
		}
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("market spec fetch returned status %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return nil, lastErr
			}
			continue
		}
		return body, nil
	}
	return nil, fmt.Errorf("market spec fetch failed after %d attempts: %w", specFetchMaxRetries, lastErr)
}
