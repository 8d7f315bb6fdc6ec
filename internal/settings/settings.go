// Package settings is the typed port over the durable key-value store.
// Every persisted preference goes through Load/Save so that missing or
// corrupt stored values degrade to built-in defaults at one boundary.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
)

// Storage keys. Filter presets and the default filter share one key;
// the committed theme and layout preferences share the other.
const (
	KeyFilters    = "filters"
	KeyAppearance = "appearance"
)

// Store provides raw durable key-value persistence.
type Store interface {
	// Get returns the stored value, or repository.ErrNotFound when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put inserts or overwrites the value for key.
	Put(ctx context.Context, key string, value []byte) error
}

// Load reads and decodes the value stored under key. A missing key,
// a read failure, or unparsable JSON all yield def: corrupted persisted
// state is treated as absence, never as an error to propagate.
func Load[T any](ctx context.Context, store Store, key string, def T) T {
	data, err := store.Get(ctx, key)
	if err != nil {
		return def
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return def
	}
	return value
}

// Save encodes value as JSON and writes it under key.
func Save[T any](ctx context.Context, store Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}
