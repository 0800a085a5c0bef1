// Package client is a typed client for the NetworkHub JSON API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mfreeman451/networkhub/pkg/models"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 512
)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New returns a client for the server at baseURL, e.g. "http://localhost:5000".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", errInvalidBaseURL, baseURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w %q", errInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) do(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := *c.baseURL
	u.Path += path
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()

		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return nil, fmt.Errorf("%w: GET %s returned %d: %s",
			errUnexpectedStatus, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.do(ctx, path, query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return nil
}

// Ping checks /healthz.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, "/healthz", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return fmt.Errorf("failed to read health response: %w", err)
	}

	if strings.TrimSpace(string(body)) != "ok" {
		return fmt.Errorf("%w: %q", errUnexpectedBody, body)
	}

	return nil
}

func (c *Client) NetworkHealth(ctx context.Context) (models.NetworkHealth, error) {
	var out models.NetworkHealth
	err := c.getJSON(ctx, "/api/network-health", nil, &out)

	return out, err
}

func (c *Client) TrafficAnalysis(ctx context.Context) (models.TrafficAnalysis, error) {
	var out models.TrafficAnalysis
	err := c.getJSON(ctx, "/api/traffic-analysis", nil, &out)

	return out, err
}

func (c *Client) Alerts(ctx context.Context) (models.AlertSummary, error) {
	var out models.AlertSummary
	err := c.getJSON(ctx, "/api/alerts", nil, &out)

	return out, err
}

func (c *Client) TraceRoute(ctx context.Context) (models.TraceRoute, error) {
	var out models.TraceRoute
	err := c.getJSON(ctx, "/api/trace-route", nil, &out)

	return out, err
}

func (c *Client) Topology(ctx context.Context) (models.Topology, error) {
	var out models.Topology
	err := c.getJSON(ctx, "/api/network-topology", nil, &out)

	return out, err
}

// BandwidthEstimate queries the calculator. A zero users or empty appType
// leaves the server default in place.
func (c *Client) BandwidthEstimate(ctx context.Context, users int, appType string) (models.BandwidthEstimate, error) {
	q := url.Values{}
	if users > 0 {
		q.Set("users", strconv.Itoa(users))
	}

	if appType != "" {
		q.Set("app_type", appType)
	}

	var out models.BandwidthEstimate
	err := c.getJSON(ctx, "/api/bandwidth-calculator", q, &out)

	return out, err
}
