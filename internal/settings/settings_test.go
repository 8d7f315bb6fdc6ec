package settings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bidboard/bidboard/internal/repository"
	"github.com/bidboard/bidboard/internal/repository/mocks"
	"github.com/bidboard/bidboard/internal/settings"
)

type prefs struct {
	Collapsed bool   `json:"collapsed"`
	SortKey   string `json:"sort_key"`
}

func TestLoad(t *testing.T) {
	store := &mocks.SettingsRepository{}
	store.On("Get", mock.Anything, "prefs").Return([]byte(`{"collapsed":true,"sort_key":"due"}`), nil)

	got := settings.Load(context.Background(), store, "prefs", prefs{SortKey: "name"})
	require.Equal(t, prefs{Collapsed: true, SortKey: "due"}, got)
}

func TestLoad_MissingKeyYieldsDefault(t *testing.T) {
	store := &mocks.SettingsRepository{}
	store.On("Get", mock.Anything, "prefs").Return(nil, repository.ErrNotFound)

	got := settings.Load(context.Background(), store, "prefs", prefs{SortKey: "name"})
	require.Equal(t, prefs{SortKey: "name"}, got)
}

func TestLoad_CorruptValueYieldsDefault(t *testing.T) {
	store := &mocks.SettingsRepository{}
	store.On("Get", mock.Anything, "prefs").Return([]byte(`{not json`), nil)

	got := settings.Load(context.Background(), store, "prefs", prefs{SortKey: "name"})
	require.Equal(t, prefs{SortKey: "name"}, got)
}

func TestLoad_StoreErrorYieldsDefault(t *testing.T) {
	store := &mocks.SettingsRepository{}
	store.On("Get", mock.Anything, "prefs").Return(nil, errors.New("db closed"))

	got := settings.Load(context.Background(), store, "prefs", prefs{SortKey: "name"})
	require.Equal(t, prefs{SortKey: "name"}, got)
}

func TestSave(t *testing.T) {
	store := &mocks.SettingsRepository{}
	store.On("Put", mock.Anything, "prefs", []byte(`{"collapsed":true,"sort_key":"due"}`)).Return(nil)

	err := settings.Save(context.Background(), store, "prefs", prefs{Collapsed: true, SortKey: "due"})
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestSave_StoreError(t *testing.T) {
	store := &mocks.SettingsRepository{}
	store.On("Put", mock.Anything, "prefs", mock.Anything).Return(errors.New("db closed"))

	err := settings.Save(context.Background(), store, "prefs", prefs{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "prefs")
}
