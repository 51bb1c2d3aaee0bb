// Package client is the Go SDK for the um-qura almanac REST API. It wraps the
// backend's envelope protocol, attaches bearer authentication from a
// file-persisted session, and normalizes the snake_case wire records into the
// camelCase domain types.
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
	"sync"
	"time"
)

const apiPrefix = "/api/v1"

// APIError is a non-2xx backend response, carrying the envelope message when
// the backend supplied one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// Client is the HTTP gateway to the almanac backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session

	mu             sync.Mutex
	onUnauthorized func()
	callbackSeq    int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default 10s-timeout transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSessionPath stores the session file somewhere other than the user
// config dir.
func WithSessionPath(path string) Option {
	return func(c *Client) { c.session = newSession(path) }
}

// New builds a Client for the given backend origin (scheme://host[:port],
// without the /api/v1 prefix).
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.session == nil {
		path, err := DefaultSessionPath()
		if err != nil {
			return nil, fmt.Errorf("resolve session path: %w", err)
		}
		c.session = newSession(path)
	}
	return c, nil
}

// Session exposes the session holder (token, profile, Authenticated).
func (c *Client) Session() *Session {
	return c.session
}

// OnUnauthorized registers fn to run whenever a request fails with 401.
// Only one callback is active at a time; registering replaces the previous
// one. The returned func deregisters fn unless it was already replaced.
func (c *Client) OnUnauthorized(fn func()) (deregister func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callbackSeq++
	seq := c.callbackSeq
	c.onUnauthorized = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.callbackSeq == seq {
			c.onUnauthorized = nil
		}
	}
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do performs one request: builds the URL, attaches the bearer token when
// present, unwraps the envelope, and decodes data into out (skipped when out
// is nil). A 401 clears the stored token and fires the unauthorized callback
// exactly once before the error is returned unchanged to the caller.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	// the envelope may be missing on proxy-level errors; fall through to the
	// generic message in that case
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusUnauthorized {
		c.session.clearToken()
		c.fireUnauthorized()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := env.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

func (c *Client) fireUnauthorized() {
	c.mu.Lock()
	fn := c.onUnauthorized
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}
