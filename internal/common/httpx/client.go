// internal/common/httpx/client.go
package httpx

import (
	"net/http"
	"time"
)

// DefaultUserAgent identifies the service to upstreams when the caller does
// not configure one.
const DefaultUserAgent = "ToxiScan-StudentProject/1.0"

// Client wraps net/http with a fixed timeout and an identifying User-Agent.
// At least one upstream blocks anonymous automated traffic, so every request
// must carry the header.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

func NewClient(timeout time.Duration, userAgent string) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return c.httpClient.Do(req)
}
