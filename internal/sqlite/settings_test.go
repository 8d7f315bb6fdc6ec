package sqlite

import (
	"context"
	"testing"

	"github.com/bidboard/bidboard/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_PutAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "filters", []byte(`{"presets":{}}`)))

	value, err := repo.Get(ctx, "filters")
	require.NoError(t, err)
	require.JSONEq(t, `{"presets":{}}`, string(value))
}

func TestSettingsRepository_GetMissing(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSettingsRepository(db)

	_, err := repo.Get(context.Background(), "nonexistent")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSettingsRepository_PutOverwrites(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "appearance", []byte(`{"v":1}`)))
	require.NoError(t, repo.Put(ctx, "appearance", []byte(`{"v":2}`)))

	value, err := repo.Get(ctx, "appearance")
	require.NoError(t, err)
	require.JSONEq(t, `{"v":2}`, string(value))
}
