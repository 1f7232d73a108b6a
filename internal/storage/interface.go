package storage

import "context"

// UpdateFunc receives the current value of a key and returns its replacement.
type UpdateFunc func(current string) (string, error)

type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	// Update atomically replaces the value of an existing key with fn's result.
	// A missing key yields common.ErrorNotFound and fn is not called.
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Close() error
}
