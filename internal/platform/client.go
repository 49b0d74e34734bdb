// Package platform is the HTTP client for the external Swift Ride platform
// API. It is the only place the front-end talks to the network: every call is
// bounded by the configured timeout, carries the caller's bearer token when
// one exists, and maps failures onto the front-end error taxonomy.
package platform

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

	"swiftride/pkg/logger"
)

const defaultTimeout = 20 * time.Second

// UnauthorizedHook is invoked with the rejected token whenever the platform
// answers 401, before ErrSessionExpired is returned. The session layer uses
// it to purge the dead session.
type UnauthorizedHook func(token string)

type Client struct {
	baseURL        string
	httpClient     *http.Client
	logger         *logger.Logger
	onUnauthorized UnauthorizedHook
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func NewClient(cfg *Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// SetUnauthorizedHook registers the 401 callback. Set once at wiring time.
func (c *Client) SetUnauthorizedHook(hook UnauthorizedHook) {
	c.onUnauthorized = hook
}

// envelope is the platform's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Total   int             `json:"total"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Token   string          `json:"token"`
}

func (e *envelope) errorMessage() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// do issues one request and decodes the envelope. token may be empty for
// public endpoints. The out parameter receives the envelope's data payload
// and may be nil when the caller only needs success/failure.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body any, out any) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("path", path).Warn("Platform request failed")
		return nil, &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: "read " + method + " " + path, Err: err}
	}

	var env envelope
	if len(raw) > 0 {
		// A non-JSON error body is tolerated; the status code still decides.
		_ = json.Unmarshal(raw, &env)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if c.onUnauthorized != nil && token != "" {
			c.onUnauthorized(token)
		}
		return nil, ErrSessionExpired
	case resp.StatusCode == http.StatusNotFound:
		return nil, &NotFoundError{Resource: resourceFromPath(path)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.errorMessage()}
	}

	if !env.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.errorMessage()}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return &env, nil
}

func resourceFromPath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		return "resource"
	}
	return strings.TrimSuffix(parts[0], "s")
}
