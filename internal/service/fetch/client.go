package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrFetch = errors.New("fetch page failed")

const DefaultUserAgent = "Mozilla/5.0 Gecko/20090715 Firefox/3.5.1"

// Client 拉取页面原文
type Client interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type httpClient struct {
	cli       *http.Client
	userAgent string
	timeout   time.Duration
	headers   map[string]string
}

type Option func(c *httpClient)

func WithTimeout(timeout time.Duration) Option {
	return func(c *httpClient) {
		c.timeout = timeout
	}
}

func WithUserAgent(ua string) Option {
	return func(c *httpClient) {
		c.userAgent = ua
	}
}

func WithHeader(key, value string) Option {
	return func(c *httpClient) {
		c.headers[key] = value
	}
}

func NewClient(opts ...Option) Client {
	c := &httpClient{
		userAgent: DefaultUserAgent,
		timeout:   20 * time.Second,
		headers:   map[string]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cli = &http.Client{Timeout: c.timeout}
	return c
}

func (c *httpClient) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrFetch, err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.cli.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: unexpected status %d from %s", ErrFetch, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", ErrFetch, err)
	}
	return string(body), nil
}
