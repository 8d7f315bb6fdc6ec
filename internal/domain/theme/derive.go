package theme

import (
	"fmt"

	"github.com/bidboard/bidboard/internal/colormath"
)

// Text colors are fixed rather than derived so text never lands on a
// low-contrast mid tone.
const (
	darkModeText         = "#e2e8f0"
	lightModeText        = "#212529"
	lightModeSidebarText = "#495057"
)

// patternCatalog maps pattern ids to CSS background-image values.
// PatternNone maps to the empty string.
var patternCatalog = map[PatternID]string{
	PatternNone:     "",
	PatternDots:     "radial-gradient(rgba(128,128,128,0.18) 1px, transparent 1px)",
	PatternGrid:     "linear-gradient(rgba(128,128,128,0.12) 1px, transparent 1px), linear-gradient(90deg, rgba(128,128,128,0.12) 1px, transparent 1px)",
	PatternDiagonal: "repeating-linear-gradient(45deg, rgba(128,128,128,0.10) 0, rgba(128,128,128,0.10) 1px, transparent 1px, transparent 12px)",
	PatternWaves:    "repeating-radial-gradient(circle at 0 0, transparent 0, transparent 9px, rgba(128,128,128,0.08) 10px)",
}

// ResolvePattern returns the background-image value for a pattern id.
func ResolvePattern(id PatternID) (string, error) {
	if id == "" {
		id = PatternNone
	}
	image, ok := patternCatalog[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPattern, id)
	}
	return image, nil
}

// Patterns lists the pattern catalog ids in a fixed order.
func Patterns() []PatternID {
	return []PatternID{PatternNone, PatternDots, PatternGrid, PatternDiagonal, PatternWaves}
}

// Derive expands four base colors and a pattern id into the full palette.
// It is a pure function of its input: equal ThemeColors always produce
// equal DerivedThemes. Validation happens before any channel arithmetic,
// so lighten/darken only ever see well-formed colors.
func Derive(colors ThemeColors) (DerivedTheme, error) {
	background, err := colormath.Parse(colors.Background)
	if err != nil {
		return DerivedTheme{}, fmt.Errorf("background: %w", err)
	}
	lowlight, err := colormath.Parse(colors.Lowlight)
	if err != nil {
		return DerivedTheme{}, fmt.Errorf("lowlight: %w", err)
	}
	highlight, err := colormath.Parse(colors.Highlight)
	if err != nil {
		return DerivedTheme{}, fmt.Errorf("highlight: %w", err)
	}
	if _, err := colormath.Parse(colors.Selected); err != nil {
		return DerivedTheme{}, fmt.Errorf("selected: %w", err)
	}
	image, err := ResolvePattern(colors.Pattern)
	if err != nil {
		return DerivedTheme{}, err
	}

	derived := DerivedTheme{
		Primary:         highlight.Hex(),
		Secondary:       lowlight.Hex(),
		Background:      background.Hex(),
		BackgroundImage: image,
		TextSecondary:   lowlight.Hex(),
	}

	if background.IsDark() {
		derived.Surface = background.Lighten(10).Hex()
		derived.Border = background.Lighten(20).Hex()
		derived.Sidebar = background.Lighten(8).Hex()
		derived.Text = darkModeText
		derived.SidebarText = darkModeText
	} else {
		derived.Surface = background.Darken(5).Hex()
		derived.Border = background.Darken(10).Hex()
		derived.Sidebar = background.Hex()
		derived.Text = lightModeText
		derived.SidebarText = lightModeSidebarText
	}

	return derived, nil
}
