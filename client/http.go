package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrInvalidBaseURL indicates the HTTP backend was configured with an
// unusable base URL.
var ErrInvalidBaseURL = errors.New("invalid base URL")

// DefaultHTTPTimeout bounds each request when HTTPConfig.Timeout is unset.
const DefaultHTTPTimeout = 15 * time.Second

// HTTPConfig holds HTTP backend settings.
type HTTPConfig struct {
	// BaseURL is the API root, e.g. "https://api.test.local".
	BaseURL string
	// Token, when non-empty, is sent as a bearer token on every request.
	Token string
	// Timeout bounds each request. Defaults to DefaultHTTPTimeout.
	Timeout time.Duration
	// Client overrides the underlying http.Client. Mostly useful in tests.
	Client *http.Client
}

// HTTP is a JSON-over-HTTP backend. It expects successful responses to wrap
// the created record in a {"data": ...} envelope and failures to carry RFC
// 9457 problem details; responses without the envelope are treated as the
// record itself.
type HTTP struct {
	base  string
	token string
	hc    *http.Client
}

// NewHTTP creates an HTTP backend from cfg.
func NewHTTP(cfg HTTPConfig) (*HTTP, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	hc := cfg.Client
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultHTTPTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &HTTP{
		base:  strings.TrimRight(u.String(), "/"),
		token: cfg.Token,
		hc:    hc,
	}, nil
}

// Post sends one JSON POST to endpoint and returns the response's data
// payload. Non-2xx responses become a *Problem when the body decodes as
// problem details, otherwise a plain error carrying the status.
func (c *HTTP) Post(ctx context.Context, endpoint string, body any) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	target := c.base + "/" + strings.TrimLeft(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeProblem(res.StatusCode, raw)
	}

	// Unwrap the {"data": ...} envelope when present.
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	data := json.RawMessage(raw)
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		data = envelope.Data
	}

	return &Response{Status: res.StatusCode, Data: data}, nil
}

// decodeProblem turns an error response body into a *Problem, falling back
// to a generic error when the body is not problem details.
func decodeProblem(status int, raw []byte) error {
	var problem Problem
	if err := json.Unmarshal(raw, &problem); err == nil && problem.Title != "" {
		if problem.Status == 0 {
			problem.Status = status
		}
		return &problem
	}
	return fmt.Errorf("unexpected status %d: %s", status, strings.TrimSpace(string(raw)))
}
