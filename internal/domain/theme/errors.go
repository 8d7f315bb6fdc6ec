package theme

import "errors"

var (
	// ErrUnknownPreset indicates the preset name is not in the catalog.
	ErrUnknownPreset = errors.New("theme preset not found")
	// ErrUnknownPattern indicates the pattern id is not in the catalog.
	ErrUnknownPattern = errors.New("background pattern not found")
)
