package httpclient

import (
	"context"
	"net/http"
	"time"
)

// Client wraps http.Client with a fixed timeout. The timeout is the only
// resilience the transport layer provides; retry policy lives with callers.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	return c.httpClient.Do(req)
}
