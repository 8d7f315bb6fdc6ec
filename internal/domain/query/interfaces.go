package query

import "context"

// Repository provides persistence for project record snapshots.
type Repository interface {
	ReplaceAll(ctx context.Context, records []ProjectRecord) error
	List(ctx context.Context) ([]ProjectRecord, error)
}
