package session

import "errors"

var (
	// ErrInvalidState is returned when an operation is not allowed in the
	// current session state, e.g. UpdateIdentity while logged out.
	ErrInvalidState = errors.New("invalid session state")
	// ErrAlreadyInitialized is returned by a second call to Initialize.
	ErrAlreadyInitialized = errors.New("session already initialized")
	// ErrCorruptSession describes a persisted pair that cannot be restored.
	// Initialize logs it and resolves to unauthenticated instead of failing.
	ErrCorruptSession = errors.New("corrupt persisted session")
	// ErrEmptyCredential is returned when the server issues an empty token.
	ErrEmptyCredential = errors.New("server returned an empty credential")
	// ErrIncompleteIdentity is returned when the server issues a token
	// without a usable identity.
	ErrIncompleteIdentity = errors.New("server returned an incomplete identity")
)
