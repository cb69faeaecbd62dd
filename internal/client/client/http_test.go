package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/carpoolea/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/carpoolea/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*************
 * Fake credential store
 *************/

type fakeCreds struct {
	mu     sync.Mutex
	values map[string]string
	err    error
	reads  int
}

func (f *fakeCreds) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.err != nil {
		return "", false, f.err
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeCreds) set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.values == nil {
		f.values = map[string]string{}
	}
	f.values[key] = value
}

func (f *fakeCreds) remove(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
}

type captured struct {
	method string
	path   string
	query  url.Values
	header http.Header
	body   []byte
}

func newServer(t *testing.T, status int, respBody string) (*httptest.Server, *captured) {
	t.Helper()
	c := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.method = r.Method
		c.path = r.URL.Path
		c.query = r.URL.Query()
		c.header = r.Header.Clone()
		c.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

func newClient(t *testing.T, baseURL string, creds CredentialReader) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(baseURL, 2*time.Second, creds, logging.Discard())
	require.NoError(t, err)
	return c
}

/*************
 * Tests
 *************/

func TestNewHTTPClient_RejectsBadBaseURL(t *testing.T) {
	_, err := NewHTTPClient("localhost:3000", time.Second, &fakeCreds{}, logging.Discard())
	require.Error(t, err)

	_, err = NewHTTPClient("://bad", time.Second, &fakeCreds{}, logging.Discard())
	require.Error(t, err)
}

func TestDo_AttachesBearerTokenFromStorage(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{"id": 7}`)
	creds := &fakeCreds{}
	creds.set(metadata.KeyAuthToken, "tok123")

	c := newClient(t, srv.URL, creds)

	var out struct {
		ID int `json:"id"`
	}
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/users/me", nil, nil, &out))

	assert.Equal(t, 7, out.ID)
	assert.Equal(t, "Bearer tok123", got.header.Get("Authorization"))
	assert.NotEmpty(t, got.header.Get(RequestIDHeader))
	assert.Equal(t, "/users/me", got.path)
}

func TestDo_ReadsTokenOnEveryRequest(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{}`)
	creds := &fakeCreds{}
	c := newClient(t, srv.URL, creds)
	ctx := context.Background()

	require.NoError(t, c.Do(ctx, http.MethodGet, "/users/me", nil, nil, nil))
	assert.Empty(t, got.header.Get("Authorization"))

	creds.set(metadata.KeyAuthToken, "fresh")
	require.NoError(t, c.Do(ctx, http.MethodGet, "/users/me", nil, nil, nil))
	assert.Equal(t, "Bearer fresh", got.header.Get("Authorization"))

	creds.remove(metadata.KeyAuthToken)
	require.NoError(t, c.Do(ctx, http.MethodGet, "/users/me", nil, nil, nil))
	assert.Empty(t, got.header.Get("Authorization"))
	assert.Equal(t, 3, creds.reads)
}

func TestDo_NoCredentialSendsUnauthenticated(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `[]`)
	c := newClient(t, srv.URL, &fakeCreds{})

	var out []any
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/trips/search", nil, nil, &out))

	assert.Equal(t, http.MethodGet, got.method)
	_, present := got.header["Authorization"]
	assert.False(t, present, "no Authorization header expected")
}

func TestDo_CredentialReadErrorStillSends(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{}`)
	c := newClient(t, srv.URL, &fakeCreds{err: errors.New("disk gone")})

	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/trips/1", nil, nil, nil))
	assert.Equal(t, "/trips/1", got.path)
	assert.Empty(t, got.header.Get("Authorization"))
}

func TestDo_SendsJSONBodyAndQuery(t *testing.T) {
	srv, got := newServer(t, http.StatusCreated, `{"ok": true}`)
	c := newClient(t, srv.URL, &fakeCreds{})

	body := map[string]any{"tripId": 3, "seatsRequested": 2}
	q := url.Values{"name": {"ana"}}
	require.NoError(t, c.Do(context.Background(), http.MethodPost, "/bookings", q, body, nil))

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "ana", got.query.Get("name"))
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))

	var sent map[string]any
	require.NoError(t, json.Unmarshal(got.body, &sent))
	assert.EqualValues(t, 3, sent["tripId"])
	assert.EqualValues(t, 2, sent["seatsRequested"])
}

func TestDo_BaseURLPathIsPreserved(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{}`)
	c := newClient(t, srv.URL+"/api/", &fakeCreds{})

	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/vehicles/my-vehicles", nil, nil, nil))
	assert.Equal(t, "/api/vehicles/my-vehicles", got.path)
}

func TestDo_LogsAbsolutePathForBareBaseURL(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{}`)
	var buf bytes.Buffer
	c, err := NewHTTPClient(srv.URL, 2*time.Second, &fakeCreds{}, logging.New(&buf, "debug"))
	require.NoError(t, err)

	require.NoError(t, c.Do(context.Background(), http.MethodGet, "users/me", nil, nil, nil))
	assert.Equal(t, "/users/me", got.path)
	assert.Contains(t, buf.String(), "path=/users/me")
}

func TestDo_ServerErrorCarriesStatusAndMessage(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		notFound bool
	}{
		{name: "string message", status: 400, body: `{"message":"Email already registered","statusCode":400,"error":"Bad Request"}`, wantMsg: "Email already registered"},
		{name: "list message", status: 400, body: `{"message":["phone must be a string","email must be an email"],"statusCode":400}`, wantMsg: "phone must be a string; email must be an email"},
		{name: "no message falls back to error", status: 403, body: `{"statusCode":403,"error":"Forbidden"}`, wantMsg: "Forbidden"},
		{name: "not json", status: 502, body: `bad gateway`, wantMsg: "bad gateway"},
		{name: "not found", status: 404, body: `{"message":"Trip not found","statusCode":404}`, wantMsg: "Trip not found", notFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.body)
			c := newClient(t, srv.URL, &fakeCreds{})

			err := c.Do(context.Background(), http.MethodGet, "/trips/9", nil, nil, nil)

			var se *ServerError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.Status)
			assert.Equal(t, tt.wantMsg, se.Message)
			assert.Equal(t, tt.notFound, errors.Is(err, ErrNotFound))
			assert.False(t, errors.Is(err, ErrUnauthorized))
			assert.Equal(t, tt.wantMsg, Message(err))
		})
	}
}

func TestDo_NetworkUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c := newClient(t, addr, &fakeCreds{})
	err := c.Do(context.Background(), http.MethodGet, "/users/me", nil, nil, nil)

	require.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "server unavailable, check your connection", Message(err))
}

func TestDo_CanceledContextIsNotUnavailable(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{}`)
	c := newClient(t, srv.URL, &fakeCreds{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Do(ctx, http.MethodGet, "/users/me", nil, nil, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, ErrUnavailable)
}

func TestDo_DecodeErrorReported(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `not json`)
	c := newClient(t, srv.URL, &fakeCreds{})

	var out map[string]any
	err := c.Do(context.Background(), http.MethodGet, "/users/me", nil, nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode GET /users/me response")
}

func TestDo_UnauthorizedInvokesHandlerBeforeReturning(t *testing.T) {
	srv, _ := newServer(t, http.StatusUnauthorized, `{"message":"Unauthorized","statusCode":401}`)
	creds := &fakeCreds{}
	creds.set(metadata.KeyAuthToken, "stale")
	c := newClient(t, srv.URL, creds)

	invalidated := false
	var rejected string
	c.OnUnauthorized(func(ctx context.Context, token string) error {
		invalidated = true
		rejected = token
		creds.remove(metadata.KeyAuthToken)
		return nil
	})

	err := c.Do(context.Background(), http.MethodGet, "/users/me", nil, nil, nil)

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, invalidated, "handler must run before the error is surfaced")
	assert.Equal(t, "stale", rejected)
	_, ok, _ := creds.Get(context.Background(), metadata.KeyAuthToken)
	assert.False(t, ok)
}

func TestDo_UnauthorizedWithoutCredentialDoesNotInvalidate(t *testing.T) {
	srv, _ := newServer(t, http.StatusUnauthorized, `{"message":"Invalid credentials","statusCode":401}`)
	c := newClient(t, srv.URL, &fakeCreds{})

	called := false
	c.OnUnauthorized(func(ctx context.Context, token string) error {
		called = true
		return nil
	})

	err := c.Do(context.Background(), http.MethodPost, "/auth/login", nil, map[string]string{"email": "a@b.com"}, nil)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", Message(err))
	assert.False(t, called)
}

func TestDo_UnauthorizedHandlerErrorDoesNotMaskResponse(t *testing.T) {
	srv, _ := newServer(t, http.StatusUnauthorized, `{"message":"Unauthorized"}`)
	creds := &fakeCreds{}
	creds.set(metadata.KeyAuthToken, "stale")
	c := newClient(t, srv.URL, creds)
	c.OnUnauthorized(func(ctx context.Context, token string) error { return errors.New("storage locked") })

	err := c.Do(context.Background(), http.MethodGet, "/users/me", nil, nil, nil)

	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Status)
}

func TestDo_OtherStatusesDoNotInvalidate(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError} {
		srv, _ := newServer(t, status, `{}`)
		creds := &fakeCreds{}
		creds.set(metadata.KeyAuthToken, "tok")
		c := newClient(t, srv.URL, creds)

		called := false
		c.OnUnauthorized(func(ctx context.Context, token string) error { called = true; return nil })

		require.Error(t, c.Do(context.Background(), http.MethodGet, "/users/me", nil, nil, nil))
		assert.False(t, called, "status %d must not invalidate", status)
	}
}

func TestMessage(t *testing.T) {
	assert.Empty(t, Message(nil))
	assert.Equal(t, "session expired, please log in again", Message(&ServerError{Status: 401}))
	assert.Equal(t, "boom", Message(errors.New("boom")))
	assert.Equal(t, "server rejected request: 500 Internal Server Error", (&ServerError{Status: 500}).Error())
}
