package store

import "errors"

// Error kinds. Every error returned by Store wraps exactly one of them.
var (
	ErrInvalid        = errors.New("invalid request")
	ErrBadCredentials = errors.New("invalid credentials")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
)

// Error is a domain failure with a message meant for the end user.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func fail(kind error, msg string) error {
	return &Error{Kind: kind, Message: msg}
}
