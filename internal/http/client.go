package http

import (
	"context"
	"fmt"
	"io"
	h "net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const userAgent = "accountpagectl"

type ClientOption func(*Client)

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.http.Timeout = timeout
	}
}

func WithVersion(version string) ClientOption {
	return func(c *Client) {
		c.version = version
	}
}

func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithHTTPClient(client *h.Client) ClientOption {
	return func(c *Client) {
		c.http = client
	}
}

// Client talks to the account page REST API. It sends the bearer token
// with every request and never retries.
type Client struct {
	baseURL string
	token   string
	version string
	http    *h.Client
	logger  *zap.Logger
}

func NewClient(baseURL, token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   SanitizeToken(token),
		http:    &h.Client{},
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get requests baseURL/path and returns the status code and body whatever
// the status. Only failures to send or read are errors.
func (c *Client) Get(ctx context.Context, path string) (int, []byte, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, strings.TrimPrefix(path, "/"))

	req, err := h.NewRequestWithContext(ctx, h.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	if c.version != "" {
		req.Header.Set("User-Agent", userAgent+"/"+c.version)
	} else {
		req.Header.Set("User-Agent", userAgent)
	}

	c.logger.Debug("sending request", zap.String("url", url))

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, body, nil
}
