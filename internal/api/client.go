// Package api issues authenticated requests against the task backend and
// normalizes their outcomes. It composes the settings and identity stores:
// the stored role decides which shared secret accompanies a request, the
// settings decide where it goes.
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

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aturzone/go-front-connect/internal/auth"
	"github.com/aturzone/go-front-connect/internal/config"
	"github.com/aturzone/go-front-connect/internal/models"
)

const (
	// authHeader is the single fixed header carrying the shared secret.
	// Exactly one secret is attached per authenticated request, never both.
	authHeader = "X-Auth-Key"

	// requestIDHeader tags every outgoing request for log correlation.
	requestIDHeader = "X-Request-Id"
)

// ErrNotConfigured is returned before any network attempt when no
// connection settings are stored. The console reacts by sending the
// operator to the settings form.
var ErrNotConfigured = errors.New("backend connection is not configured")

// APIError is a non-2xx backend response. Body holds the raw response text;
// it is deliberately never re-parsed as JSON on the error path.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Body)
}

// Client dispatches requests. It is stateless per call: each request reads
// the current store snapshots, so a settings or identity change takes
// effect on the next call without rebuilding the client.
type Client struct {
	settings *config.Store
	identity *auth.Store
	http     *http.Client
	log      *zap.Logger
}

// New constructs a Client over the two stores. httpClient may be nil to use
// http.DefaultClient; log may be nil to disable request tracing.
func New(settings *config.Store, identity *auth.Store, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{settings: settings, identity: identity, http: httpClient, log: log}
}

// secret selects the one secret to attach: the owner secret iff the stored
// role is exactly owner, otherwise the user secret. With no identity stored
// this yields the user secret (possibly empty); the backend rejects it, not
// the client.
func (c *Client) secret(cfg *config.Settings) string {
	if c.identity.HasExactRole(auth.RoleOwner) {
		return cfg.OwnerPassword
	}
	return cfg.UserPassword
}

// do performs one request and decodes a successful JSON body into out.
//
// The URL is cfg.BaseURL + path with no normalization. A non-2xx status
// yields an *APIError with the raw body. A 2xx response without a JSON
// content type (e.g. an empty delete response) leaves out untouched. There
// are no retries and no timeouts beyond what ctx and the injected
// http.Client impose.
func (c *Client) do(ctx context.Context, method, path string, body, out any, requireAuth bool) error {
	cfg := c.settings.Read()
	if cfg == nil {
		return ErrNotConfigured
	}

	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, cfg.BaseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)
	if requireAuth {
		req.Header.Set(authHeader, c.secret(cfg))
	}

	c.log.Debug("dispatching request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", reqID),
		zap.Bool("authenticated", requireAuth),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		// Empty structured result; callers must not assume a shape here.
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response: %w", err)
	}
	return nil
}

// Health probes the one endpoint callable without authentication.
func (c *Client) Health(ctx context.Context) (*models.HealthStatus, error) {
	var status models.HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, &status, false); err != nil {
		return nil, err
	}
	return &status, nil
}
