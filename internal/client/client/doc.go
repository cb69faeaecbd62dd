// Package client is the HTTP transport of the carpool client.
//
// # Overview
//
//  1. HTTPClient performs JSON exchanges against the configured base URL with
//     a fixed per-request timeout, tagging each request with X-Request-ID.
//  2. An authenticating round tripper reads the bearer token from persistent
//     storage before every request and attaches it as an Authorization
//     header. When a request that carried a token is answered with 401 it
//     calls the handler registered through OnUnauthorized (the session
//     store's Invalidate) before the response is handed back.
//
// # Error Handling
//
// Failures are returned as a closed set: ErrUnavailable when no response was
// received, and *ServerError (status + server message) for non-2xx answers.
// errors.Is(err, ErrUnauthorized) and errors.Is(err, ErrNotFound) match the
// corresponding statuses. Nothing is retried.
package client
