package query

import "errors"

var (
	// ErrEmptyPresetName indicates a preset save with a blank name.
	ErrEmptyPresetName = errors.New("preset name required")
	// ErrPresetNotFound indicates a load of an unknown preset name.
	ErrPresetNotFound = errors.New("filter preset not found")
	// ErrInvalidInput indicates malformed query input.
	ErrInvalidInput = errors.New("invalid query input")
)
