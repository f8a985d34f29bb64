package ogp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	// Bounded reads so a hostile or broken server cannot exhaust memory.
	maxDocumentBytes = 16 << 20
	maxImageBytes    = 32 << 20
)

// Client fetches documents and preview images over HTTP. Each call is a
// single attempt: no retries, no client-side timeout.
type Client struct {
	http *http.Client
}

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{http: httpClient}
}

// FetchDocument retrieves the page body at url.
func (c *Client) FetchDocument(ctx context.Context, url string) ([]byte, error) {
	body, err := c.get(ctx, url, maxDocumentBytes)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}
	return body, nil
}

// FetchImage retrieves raw image bytes at url.
func (c *Client) FetchImage(ctx context.Context, url string) ([]byte, error) {
	body, err := c.get(ctx, url, maxImageBytes)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, url string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if msg := strings.TrimSpace(string(body)); msg != "" {
			return nil, fmt.Errorf("status %d: %s", resp.StatusCode, msg)
		}
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return data, nil
}
