// Package services is the domain service layer of the carpool client: one
// method per backend operation, each performing exactly one exchange.
//
// Services never cache, merge or retry. On failure they return the
// transport's typed error (see package client) wrapped with the operation
// name, so errors.Is / errors.As keep working.
package services

import (
	"context"
	"net/url"
	"strconv"
)

// Doer performs a single JSON exchange. *client.HTTPClient implements it.
type Doer interface {
	Do(ctx context.Context, method, path string, query url.Values, body, out any) error
}

func idPath(prefix string, id int64, suffix ...string) string {
	p := prefix + "/" + strconv.FormatInt(id, 10)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}
