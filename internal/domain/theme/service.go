package theme

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bidboard/bidboard/internal/settings"
)

// Service manages the committed theme selection and layout preferences.
// The derived palette is recomputed from the stored base colors on every
// read; only ThemeColors and Layout are ever persisted.
type Service struct {
	store  settings.Store
	logger *slog.Logger
}

// NewService creates a new theme service.
func NewService(store settings.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

func (s *Service) appearance(ctx context.Context) Appearance {
	def := Appearance{Colors: DefaultColors()}
	appearance := settings.Load(ctx, s.store, settings.KeyAppearance, def)
	// A stored value that no longer derives (hand-edited file, schema
	// drift) counts as absent.
	if _, err := Derive(appearance.Colors); err != nil {
		s.logger.Warn("stored theme is invalid, using default", "error", err)
		appearance.Colors = DefaultColors()
	}
	return appearance
}

// Current returns the committed base colors and their derived palette,
// falling back to the default preset when nothing valid is stored.
func (s *Service) Current(ctx context.Context) (ThemeColors, DerivedTheme) {
	appearance := s.appearance(ctx)
	derived, _ := Derive(appearance.Colors)
	return appearance.Colors, derived
}

// Preview validates and derives a palette without committing anything.
func (s *Service) Preview(colors ThemeColors) (DerivedTheme, error) {
	return Derive(colors)
}

// Apply commits the base colors and pattern to durable storage and
// returns the palette the host should now render with. Layout
// preferences stored alongside the theme are preserved.
func (s *Service) Apply(ctx context.Context, colors ThemeColors) (DerivedTheme, error) {
	derived, err := Derive(colors)
	if err != nil {
		return DerivedTheme{}, err
	}
	appearance := s.appearance(ctx)
	appearance.Colors = colors
	if err := settings.Save(ctx, s.store, settings.KeyAppearance, appearance); err != nil {
		return DerivedTheme{}, fmt.Errorf("applying theme: %w", err)
	}
	s.logger.Info("theme applied", "background", colors.Background, "pattern", colors.Pattern)
	return derived, nil
}

// Reset returns the default preset's colors and palette as a preview.
// It does not commit; the caller applies explicitly.
func (s *Service) Reset() (ThemeColors, DerivedTheme) {
	colors := DefaultColors()
	derived, _ := Derive(colors)
	return colors, derived
}

// Layout returns the persisted layout preferences.
func (s *Service) Layout(ctx context.Context) Layout {
	return s.appearance(ctx).Layout
}

// SaveLayout persists layout preferences, preserving the committed theme.
func (s *Service) SaveLayout(ctx context.Context, layout Layout) error {
	appearance := s.appearance(ctx)
	appearance.Layout = layout
	if err := settings.Save(ctx, s.store, settings.KeyAppearance, appearance); err != nil {
		return fmt.Errorf("saving layout: %w", err)
	}
	return nil
}
