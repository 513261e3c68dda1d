// Package kv defines the key-value vault the account book persists into.
// The production implementation is file-backed; the device secure store it
// stands in for is opaque string-keyed storage, so the interface is the
// smallest thing that models it.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been set.
var ErrKeyNotFound = errors.New("kv: key not found")

// Store is string-keyed opaque blob storage. Delete of a missing key is not
// an error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// IsNotFound reports whether err indicates a missing key.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}
