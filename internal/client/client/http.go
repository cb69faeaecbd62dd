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

	"github.com/dmitrijs2005/carpoolea/internal/logging"
	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// HTTPClient performs JSON request/response exchanges against the backend.
// Every request passes through the authenticator installed at construction.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	auth    *authTransport
	log     logging.Logger
}

// Option customises an HTTPClient.
type Option func(*options)

type options struct {
	transport http.RoundTripper
}

// WithTransport replaces the underlying round tripper (default
// http.DefaultTransport). The authenticator still wraps it.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// NewHTTPClient builds a client for baseURL with a fixed per-request timeout.
// creds is read on every request to attach the bearer token.
func NewHTTPClient(baseURL string, timeout time.Duration, creds CredentialReader, log logging.Logger, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}
	if u.Path == "" {
		u.Path = "/"
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	auth := newAuthTransport(o.transport, creds, log)
	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Transport: auth, Timeout: timeout},
		auth:    auth,
		log:     log,
	}, nil
}

// OnUnauthorized registers the session invalidation hook. It is set after
// construction because the session store itself depends on this client.
func (c *HTTPClient) OnUnauthorized(h UnauthorizedHandler) {
	c.auth.setUnauthorizedHandler(h)
}

// Do sends one request. body (if not nil) is sent as JSON; a 2xx response is
// decoded into out (if not nil). Failures are returned as ErrUnavailable
// (no response) or *ServerError (non-2xx). There is no retry.
func (c *HTTPClient) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rdr)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	log := c.log.With("method", method, "path", req.URL.Path, "request_id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug(ctx, "http exchange failed", "duration", time.Since(start), "error", err)
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "http exchange", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		se := newServerError(resp.StatusCode, b)
		switch {
		case resp.StatusCode == http.StatusNotFound:
			log.Warn(ctx, "resource not found", "message", se.Message)
		case resp.StatusCode >= 500:
			log.Error(ctx, "server error", "status", resp.StatusCode, "message", se.Message)
		}
		return se
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, req.URL.Path, err)
	}
	return nil
}

func mapTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("request canceled: %w", err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
