package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const maxUpdateAttempts = 16

// GetJSON decodes the value under key. An absent key yields ErrNotFound and an
// undecodable one ErrCorrupt.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, int64, error) {
	var v T

	entry, err := s.Get(ctx, key)
	if err != nil {
		return v, 0, err
	}

	if err := json.Unmarshal(entry.Value, &v); err != nil {
		return v, 0, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}

	return v, entry.Version, nil
}

// LoadJSON is GetJSON with the absent key mapped to T's zero value.
func LoadJSON[T any](ctx context.Context, s Store, key string) (T, error) {
	v, _, err := GetJSON[T](ctx, s, key)
	if errors.Is(err, ErrNotFound) {
		return v, nil
	}
	return v, err
}

func SaveJSON[T any](ctx context.Context, s Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Put(ctx, key, data)
}

// UpdateJSON runs a read-modify-write cycle over key with compare-and-swap,
// retrying when another writer got in first. fn starts from the zero value
// when the key is absent; an error from fn aborts the update and is returned
// as is.
func UpdateJSON[T any](ctx context.Context, s Store, key string, fn func(*T) error) (T, error) {
	var zero T

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		v, version, err := GetJSON[T](ctx, s, key)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return zero, err
		}

		if err := fn(&v); err != nil {
			return zero, err
		}

		data, err := json.Marshal(v)
		if err != nil {
			return zero, fmt.Errorf("encode %s: %w", key, err)
		}

		_, err = s.CompareAndSwap(ctx, key, version, data)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return zero, err
		}
	}

	return zero, fmt.Errorf("update %s: %w", key, ErrVersionConflict)
}
