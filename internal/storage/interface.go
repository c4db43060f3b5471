package storage

import "context"

// Store is a per-installation key-value store.
//
// Get returns model.ErrKeyNotFound when a key has never been set or has
// been removed.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error

	// Close releases any underlying connection
	Close() error
}
