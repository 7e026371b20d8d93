// Package keyvalue is the persisted string key/value store backing the
// client session. It plays the role localStorage plays in a browser.
package keyvalue

import "context"

// Repository stores flat string values under string keys.
//
// Get reports ok=false for a missing key. Delete removes all given keys as
// one unit and does not fail on missing keys. List returns a copy of every
// stored pair.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]string, error)
}
