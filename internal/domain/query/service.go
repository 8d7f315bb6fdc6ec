package query

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/bidboard/bidboard/internal/settings"
)

// Service handles query operations over the project snapshot plus the
// persisted filter presets and default filter.
type Service struct {
	repo     Repository
	store    settings.Store
	logger   *slog.Logger
	pageSize int
	now      func() time.Time
}

// NewService creates a new query service. pageSize <= 0 selects
// DefaultPageSize.
func NewService(repo Repository, store settings.Store, logger *slog.Logger, pageSize int) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		repo:     repo,
		store:    store,
		logger:   logger,
		pageSize: pageSize,
		now:      time.Now,
	}
}

// savedFilters is the durable value stored under the filters settings key.
type savedFilters struct {
	Presets map[string]FilterState `json:"presets"`
	Default *FilterState           `json:"default,omitempty"`
}

// Import coerces upstream wire records and replaces the stored snapshot
// wholesale. Individual malformed rows reject the whole import so a
// partial snapshot never lands.
func (s *Service) Import(ctx context.Context, wire []WireRecord) (int, error) {
	records := make([]ProjectRecord, 0, len(wire))
	for i, w := range wire {
		rec, err := CoerceRecord(w)
		if err != nil {
			return 0, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	if err := s.repo.ReplaceAll(ctx, records); err != nil {
		return 0, fmt.Errorf("replacing snapshot: %w", err)
	}
	s.logger.Info("project snapshot replaced", "count", len(records))
	return len(records), nil
}

// Query loads the full snapshot, applies filter-then-sort, and returns
// the requested page.
func (s *Service) Query(ctx context.Context, state FilterState, spec SortSpec, page int) (Page, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("loading snapshot: %w", err)
	}
	result := FilterThenSort(records, state, spec, s.now())
	return Paginate(result, page, s.pageSize), nil
}

func (s *Service) load(ctx context.Context) savedFilters {
	saved := settings.Load(ctx, s.store, settings.KeyFilters, savedFilters{})
	if saved.Presets == nil {
		saved.Presets = map[string]FilterState{}
	}
	return saved
}

func (s *Service) save(ctx context.Context, saved savedFilters) error {
	return settings.Save(ctx, s.store, settings.KeyFilters, saved)
}

// SavePreset inserts or overwrites a named filter preset.
func (s *Service) SavePreset(ctx context.Context, name string, state FilterState) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyPresetName
	}
	saved := s.load(ctx)
	saved.Presets[name] = state
	if err := s.save(ctx, saved); err != nil {
		return fmt.Errorf("saving preset: %w", err)
	}
	return nil
}

// LoadPreset returns the named preset.
func (s *Service) LoadPreset(ctx context.Context, name string) (FilterState, error) {
	saved := s.load(ctx)
	state, ok := saved.Presets[name]
	if !ok {
		return FilterState{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return state, nil
}

// DeletePreset removes the named preset. Confirmation happens at the
// caller; deletion here is unconditional.
func (s *Service) DeletePreset(ctx context.Context, name string) error {
	saved := s.load(ctx)
	if _, ok := saved.Presets[name]; !ok {
		return fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	delete(saved.Presets, name)
	if err := s.save(ctx, saved); err != nil {
		return fmt.Errorf("deleting preset: %w", err)
	}
	return nil
}

// ListPresets returns the saved preset names, sorted.
func (s *Service) ListPresets(ctx context.Context) []string {
	saved := s.load(ctx)
	names := make([]string, 0, len(saved.Presets))
	for name := range saved.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetDefault persists state as the filter auto-loaded at session start,
// independent of the named preset mapping.
func (s *Service) SetDefault(ctx context.Context, state FilterState) error {
	saved := s.load(ctx)
	saved.Default = &state
	if err := s.save(ctx, saved); err != nil {
		return fmt.Errorf("saving default filter: %w", err)
	}
	return nil
}

// DefaultFilter returns the persisted default filter, or an empty state
// when none is set.
func (s *Service) DefaultFilter(ctx context.Context) (FilterState, bool) {
	saved := s.load(ctx)
	if saved.Default == nil {
		return FilterState{}, false
	}
	return *saved.Default, true
}
