package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"adminctl/pkg/logging"

	"github.com/google/uuid"
)

const (
	subsystem       = "API"
	defaultTimeout  = 30 * time.Second
	maxResponseSize = 4 << 20
	userAgent       = "adminctl"
)

// TokenSource supplies the bearer token for each request.
type TokenSource interface {
	Token() (string, error)
}

// Client talks to the admin REST API.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests use this to
// point at an httptest server transport).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New creates a client for baseURL, e.g. "https://market.example.com".
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		tokens:     tokens,
		httpClient: &http.Client{},
		timeout:    defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope is the decoded common response body. Payload keys stay raw so
// each endpoint picks its own.
type envelope struct {
	status  int
	success *bool
	message string
	fields  []FieldError
	raw     map[string]json.RawMessage
}

func (e *envelope) payload(keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := e.raw[k]; ok && len(v) > 0 && string(v) != "null" {
			return v, true
		}
	}
	return nil, false
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*envelope, error) {
	if c.baseURL == "" {
		return nil, errors.New("api base URL is not configured")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Debug(subsystem, "%s %s failed after %s: %v", method, path, time.Since(start), err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}
	logging.Debug(subsystem, "%s %s -> %d in %s", method, path, resp.StatusCode, time.Since(start))

	env, decodeErr := decodeEnvelope(resp.StatusCode, data)
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !ok {
		// Error bodies are best effort; an HTML 500 page still yields an *Error.
		return nil, &Error{Status: resp.StatusCode, Message: env.message, Fields: env.fields}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%s %s: decode response: %w", method, path, decodeErr)
	}
	if env.success != nil && !*env.success {
		return nil, &Error{Status: resp.StatusCode, Message: env.message, Fields: env.fields}
	}
	return env, nil
}

func decodeEnvelope(status int, data []byte) (*envelope, error) {
	env := &envelope{status: status, raw: map[string]json.RawMessage{}}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return env, nil
	}
	if err := json.Unmarshal(data, &env.raw); err != nil {
		return env, err
	}
	if v, ok := env.raw["success"]; ok {
		var b bool
		if err := json.Unmarshal(v, &b); err == nil {
			env.success = &b
		}
	}
	if v, ok := env.raw["message"]; ok {
		_ = json.Unmarshal(v, &env.message)
	}
	if v, ok := env.raw["errors"]; ok {
		fields, err := decodeFieldErrors(v)
		if err != nil {
			return env, fmt.Errorf("decode errors: %w", err)
		}
		env.fields = fields
	}
	return env, nil
}

func (c *Client) get(ctx context.Context, path string) (*envelope, error) {
	return c.do(ctx, http.MethodGet, path, nil, "")
}

func (c *Client) postForm(ctx context.Context, path string, fields Fields) (*envelope, error) {
	body, contentType, err := fields.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode form: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, body, contentType)
}

func decodeInto(env *envelope, target any, keys ...string) error {
	raw, ok := env.payload(keys...)
	if !ok {
		return fmt.Errorf("response has none of %v", keys)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode %s: %w", keys[0], err)
	}
	return nil
}
