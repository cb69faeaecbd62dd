package client

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/dmitrijs2005/carpoolea/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/carpoolea/internal/logging"
)

// CredentialReader is the read side of the persistent key/value store.
type CredentialReader interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
}

// UnauthorizedHandler is invoked when a request that carried a credential is
// answered with 401. token is the credential the server rejected. It runs
// before the response reaches the caller.
type UnauthorizedHandler func(ctx context.Context, token string) error

// authTransport attaches the persisted bearer token to outgoing requests and
// reports rejected tokens.
type authTransport struct {
	next           http.RoundTripper
	creds          CredentialReader
	log            logging.Logger
	onUnauthorized atomic.Pointer[UnauthorizedHandler]
}

func newAuthTransport(next http.RoundTripper, creds CredentialReader, log logging.Logger) *authTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &authTransport{next: next, creds: creds, log: log}
}

func (t *authTransport) setUnauthorizedHandler(h UnauthorizedHandler) {
	if h == nil {
		t.onUnauthorized.Store(nil)
		return
	}
	t.onUnauthorized.Store(&h)
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	// Read from storage on every request, not from the session's memory:
	// the session store and the transport are initialised independently.
	token, ok, err := t.creds.Get(ctx, metadata.KeyAuthToken)
	if err != nil {
		t.log.Warn(ctx, "credential lookup failed, sending request unauthenticated", "error", err)
	}

	authenticated := err == nil && ok && token != ""
	if authenticated {
		req = req.Clone(ctx)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && authenticated {
		if h := t.onUnauthorized.Load(); h != nil {
			t.log.Warn(ctx, "credential rejected by server, invalidating session", "path", req.URL.Path)
			if herr := (*h)(ctx, token); herr != nil {
				t.log.Error(ctx, "session invalidation failed", "error", herr)
			}
		}
	}

	return resp, nil
}
