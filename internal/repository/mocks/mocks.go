package mocks

import (
	"context"

	"github.com/bidboard/bidboard/internal/domain/query"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for repository.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) ReplaceAll(ctx context.Context, records []query.ProjectRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *ProjectRepository) List(ctx context.Context) ([]query.ProjectRecord, error) {
	args := m.Called(ctx)
	if records, ok := args.Get(0).([]query.ProjectRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

// SettingsRepository is a mock for repository.SettingsRepository.
type SettingsRepository struct {
	mock.Mock
}

func (m *SettingsRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SettingsRepository) Put(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
