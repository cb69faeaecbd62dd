package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnavailable means no response was received: connection refused,
	// DNS failure or timeout.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches any ServerError with status 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound matches any ServerError with status 404.
	ErrNotFound = errors.New("not found")
)

// ServerError is returned when the backend answers with a non-2xx status.
// Message carries the server's explanation verbatim.
type ServerError struct {
	Status  int
	Message string
	Reason  string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server rejected request: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("server rejected request: %d %s", e.Status, e.Message)
}

// Is lets callers use errors.Is(err, ErrUnauthorized) and friends.
func (e *ServerError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// errorBody mirrors the backend's error envelope. message is either a
// string or, for validation failures, a list of strings.
type errorBody struct {
	Message    json.RawMessage `json:"message"`
	StatusCode int             `json:"statusCode"`
	Error      string          `json:"error"`
}

func newServerError(status int, body []byte) *ServerError {
	se := &ServerError{Status: status}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		se.Message = strings.TrimSpace(string(body))
		return se
	}
	se.Reason = eb.Error

	var single string
	var list []string
	switch {
	case json.Unmarshal(eb.Message, &single) == nil:
		se.Message = single
	case json.Unmarshal(eb.Message, &list) == nil:
		se.Message = strings.Join(list, "; ")
	}
	if se.Message == "" {
		se.Message = eb.Error
	}
	return se
}

// Message extracts a user-facing explanation from err: the server's message
// for ServerError, a fixed text for known sentinels, err.Error() otherwise.
func Message(err error) string {
	var se *ServerError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &se) && se.Message != "":
		return se.Message
	case errors.Is(err, ErrUnavailable):
		return "server unavailable, check your connection"
	case errors.Is(err, ErrUnauthorized):
		return "session expired, please log in again"
	default:
		return err.Error()
	}
}
