// Package kv holds the durable key-value stores that persisted slices are
// written to. Values are opaque bytes (JSON in practice) addressed by a
// string key; keys never share state with one another.
package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// Store is the durable storage seen by a persisted slice. Implementations must
// return ErrNotFound (possibly wrapped) when the key has never been written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
