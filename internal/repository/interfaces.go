package repository

import (
	"context"

	"github.com/bidboard/bidboard/internal/domain/query"
)

// ProjectRepository manages the project record snapshot.
type ProjectRepository interface {
	// ReplaceAll swaps the stored snapshot wholesale. Records are never
	// updated field-by-field; upstream edits arrive as a fresh snapshot.
	ReplaceAll(ctx context.Context, records []query.ProjectRecord) error
	// List returns the full snapshot in stored order.
	List(ctx context.Context) ([]query.ProjectRecord, error)
}

// SettingsRepository is the durable key-value store behind the settings
// port. Values are opaque JSON blobs.
type SettingsRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
