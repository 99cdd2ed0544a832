// ABOUTME: REST client for the configuration backend's panel, client, and resources endpoints.
// ABOUTME: Wraps name listing, content fetch, manifest fetch, and save calls with per-request IDs and status checking.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/classkit/classdeck/panel"
)

// DefaultTimeout bounds each request when no custom http.Client is supplied.
const DefaultTimeout = 30 * time.Second

// ManifestEntry describes one named resource in a category manifest.
type ManifestEntry struct {
	Value   string `json:"Value"`
	Version int64  `json:"Version"`
}

// Option configures optional Client behavior.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout on the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// Client talks to the backend REST API. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend base URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListNames returns the configuration names available for a category,
// in the order the backend returned them.
func (c *Client) ListNames(ctx context.Context, rt panel.ResourceType) ([]string, error) {
	var names []string
	if err := c.getJSON(ctx, "/api/v1/panel/"+rt.Key(), &names); err != nil {
		return nil, fmt.Errorf("list %s: %w", rt.Key(), err)
	}
	return names, nil
}

// GetContent fetches the raw JSON content of one named resource. The content
// endpoint addresses the category by its singular form with the name as a
// query parameter.
func (c *Client) GetContent(ctx context.Context, rt panel.ResourceType, name string) (json.RawMessage, error) {
	path := "/api/v1/client/" + rt.Singular() + "?name=" + url.QueryEscape(name)
	var raw json.RawMessage
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("get %s %q: %w", rt.Singular(), name, err)
	}
	return raw, nil
}

// GetManifest fetches the manifest for a category: every name mapped to its
// value pointer and version.
func (c *Client) GetManifest(ctx context.Context, rt panel.ResourceType) (map[string]ManifestEntry, error) {
	var manifest map[string]ManifestEntry
	if err := c.getJSON(ctx, "/api/v1/manifest/"+rt.Key(), &manifest); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", rt.Key(), err)
	}
	return manifest, nil
}

// SaveContent posts edited content for one named resource. The body wraps
// the parsed JSON under a "content" key.
func (c *Client) SaveContent(ctx context.Context, rt panel.ResourceType, name string, content json.RawMessage) error {
	body, err := json.Marshal(map[string]json.RawMessage{"content": content})
	if err != nil {
		return fmt.Errorf("encode save body: %w", err)
	}

	u := c.baseURL + "/api/resources/" + rt.Key() + "/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("save %s/%s: %w", rt.Key(), name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("save %s/%s: %w", rt.Key(), name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("save %s/%s: unexpected status %s", rt.Key(), name, resp.Status)
	}
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// getJSON issues a GET against path and decodes the JSON response into out.
// Non-2xx statuses and undecodable bodies are both returned as errors.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
