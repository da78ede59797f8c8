package blobs

import "context"

// Repository stores opaque binary media payloads by string key.
// Implementations must accept multi-megabyte values.
type Repository interface {
	// Put stores data under key, replacing any previous value.
	Put(ctx context.Context, key string, data []byte) error

	// Get returns the payload for key, or common.ErrNotFound when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the payload for key. Absence is not an error.
	Delete(ctx context.Context, key string) error
}
