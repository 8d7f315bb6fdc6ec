package mcp

import (
	"errors"
	"fmt"

	"github.com/bidboard/bidboard/internal/colormath"
	"github.com/bidboard/bidboard/internal/domain/query"
	"github.com/bidboard/bidboard/internal/domain/theme"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Inputs are either valid
// and processed or rejected with one of these; nothing inside the engines
// is fatal.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, query.ErrEmptyPresetName):
		return &APIError{Code: "VALIDATION_ERROR", Message: "preset name required", RecoveryHint: "Provide a non-empty preset name"}
	case errors.Is(err, query.ErrPresetNotFound):
		return &APIError{Code: "PRESET_NOT_FOUND", Message: "filter preset not found", RecoveryHint: "Call list_filter_presets for saved names"}
	case errors.Is(err, colormath.ErrInvalidColor):
		return &APIError{Code: "VALIDATION_ERROR", Message: err.Error(), RecoveryHint: "Colors must be #rrggbb hex triples"}
	case errors.Is(err, theme.ErrUnknownPreset):
		return &APIError{Code: "THEME_PRESET_NOT_FOUND", Message: "theme preset not found", RecoveryHint: "Call list_theme_presets for catalog names"}
	case errors.Is(err, theme.ErrUnknownPattern):
		return &APIError{Code: "VALIDATION_ERROR", Message: "background pattern not found", RecoveryHint: "Use a pattern id from the catalog"}
	case errors.Is(err, query.ErrInvalidInput):
		return &APIError{Code: "VALIDATION_ERROR", Message: err.Error(), RecoveryHint: "Check the record fields and retry"}
	default:
		return err
	}
}
