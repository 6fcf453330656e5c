// Package gateway is the sole component that talks to the food-court
// backend. It attaches the bearer token, normalizes failures into the
// typed errors in errors.go, and forces a logout on 401. Responses are
// decoded as-is; schema validation stays with the caller.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Session is the slice of the session container the gateway needs: a
// token to attach and a hook to invalidate everything on 401.
type Session interface {
	Token() string
	Invalidate()
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	Session Session
	Logger  *slog.Logger
}

type Client struct {
	baseURL string
	httpc   *http.Client
	session Session
	log     *slog.Logger
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpc:   &http.Client{Timeout: timeout},
		session: cfg.Session,
		log:     log,
	}
}

// Request performs an authenticated call and decodes the JSON response
// into out (out may be nil to discard the body). Body may be nil for
// bodiless methods.
func (c *Client) Request(ctx context.Context, method, path string, body, out any) error {
	return c.do(ctx, method, path, body, out, false)
}

// do is the single request path. public skips the Authorization header
// and the forced logout, so a wrong password on /login surfaces as a
// plain HTTPError instead of tearing down state that does not exist.
func (c *Client) do(ctx context.Context, method, path string, body, out any, public bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if !public {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	requestID := uuid.NewString()
	c.log.Debug("api request", "request_id", requestID, "method", method, "path", path)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error("api transport failure", "request_id", requestID, "path", path, "error", err)
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized && !public {
		// Session is dead server-side; drop it client-side before the
		// caller even sees the error.
		c.session.Invalidate()
		c.log.Warn("api rejected token, session invalidated", "request_id", requestID, "path", path)
		return &AuthError{Message: serverMessage(data)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("api error response", "request_id", requestID, "path", path, "status", resp.StatusCode)
		return &HTTPError{Status: resp.StatusCode, Message: serverMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response from %s: %w", path, err)
		}
	}
	return nil
}

// serverMessage pulls the human-readable message the backend puts
// under "message" or "error".
func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
