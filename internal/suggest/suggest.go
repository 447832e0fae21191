// Package suggest asks an external styling service to propose a
// background and shadow for an extracted palette. The service is
// optional: failures are reported, never fatal, and callers keep the
// style they already have.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// EnvURL names the environment variable holding the service endpoint.
const EnvURL = "SHOTFRAME_SUGGEST_URL"

const maxResponseBytes = 1 << 20 // 1 MiB

// Request carries what the service needs to propose a style.
type Request struct {
	Palette  []string `json:"palette"`
	Dominant string   `json:"dominant"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
}

// Proposal is the service's answer: a background spec in the syntax the
// style package parses, plus a shadow intensity.
type Proposal struct {
	Background string  `json:"background"`
	Shadow     float64 `json:"shadow"`
}

// Client talks to the suggestion service.
type Client struct {
	http *retryablehttp.Client
	url  string
}

// New builds a client for the given endpoint. An empty url falls back
// to EnvURL; if neither is set, New returns nil and callers skip the
// consult entirely.
func New(url string) *Client {
	if url == "" {
		url = os.Getenv(EnvURL)
	}
	if url == "" {
		return nil
	}
	c := retryablehttp.NewClient()
	c.RetryMax = 2
	c.HTTPClient.Timeout = 10 * time.Second
	c.Logger = nil // suppress retryablehttp's default logging
	return &Client{http: c, url: url}
}

// Propose posts the palette and waits for a style proposal.
func (c *Client) Propose(ctx context.Context, req Request) (*Proposal, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	hreq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	hreq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(hreq)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("POST %s: status %d", c.url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var p Proposal
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse proposal: %w", err)
	}
	if p.Background == "" {
		return nil, fmt.Errorf("proposal missing background")
	}
	return &p, nil
}
