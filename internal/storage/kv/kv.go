// Package kv is the key-value namespace behind the local profile. Values are
// opaque byte blobs; every write bumps a version that callers can use for
// compare-and-swap.
package kv

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("kv: key not found")
	ErrCorrupt         = errors.New("kv: stored value is corrupt")
	ErrVersionConflict = errors.New("kv: version conflict")
)

// Entry is a stored value. Versions are strictly increasing across the whole
// store, so a key that is deleted and written again never reuses a version.
type Entry struct {
	Value   []byte
	Version int64
}

type Store interface {
	// Get returns ErrNotFound for an absent key.
	Get(ctx context.Context, key string) (Entry, error)
	Put(ctx context.Context, key string, value []byte) error
	// PutAll writes every pair or none of them.
	PutAll(ctx context.Context, values map[string][]byte) error
	// CompareAndSwap writes value only if the key is currently at version.
	// Version 0 means the key must be absent. It returns the new version or
	// ErrVersionConflict.
	CompareAndSwap(ctx context.Context, key string, version int64, value []byte) (int64, error)
	// Delete is a no-op for an absent key.
	Delete(ctx context.Context, key string) error
	Close() error
}
