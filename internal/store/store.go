// Package store provides the durable key-value boundary used by the
// analytics ledger and optional rule overrides. Values are
// JSON-serializable blobs keyed by string; the backend is pluggable.
package store

import (
	"context"
	"encoding/json"
)

// Store is a string-keyed JSON document store.
type Store interface {
	// Get returns the stored values for the requested keys. Missing keys
	// are simply absent from the result, never an error.
	Get(ctx context.Context, keys ...string) (map[string]json.RawMessage, error)

	// Set merges the given values into the store.
	Set(ctx context.Context, values map[string]json.RawMessage) error
}
