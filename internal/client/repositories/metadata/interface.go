package metadata

import (
	"context"
)

// Storage keys shared by the session store and the request authenticator.
// Both sides read the same rows, so the names live in one place.
const (
	KeyAuthToken = "@carpoolea:auth_token"
	KeyUserData  = "@carpoolea:user_data"
)

// Repository is a durable string key/value store.
//
// Get reports ok=false (and no error) when the key does not exist.
// SetMany writes all pairs atomically. Delete is idempotent.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
