// Package storage provides a pluggable durable key-value store: callers
// persist opaque byte values under string keys and read them back on startup.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for a key. It plays the
// same role as a repository-level sentinel: callers check for it with
// `errors.Is()` instead of inspecting driver-specific errors.
var ErrNotFound = errors.New("storage: key not found")

// Store is the durable key-value interface. Implementations must be safe for
// concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
