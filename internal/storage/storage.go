// Package storage defines the persistent key-value slot that holds property
// snapshots. Drivers live in the sub-packages.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Slot is a persistent key-value store. Put overwrites any prior value.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
