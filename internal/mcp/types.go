package mcp

import (
	"fmt"
	"strings"
	"time"

	"github.com/bidboard/bidboard/internal/domain/query"
	"github.com/bidboard/bidboard/internal/domain/theme"
)

// FilterInput is the wire form of a FilterState. Dates travel as strings;
// mapping wire shapes onto engine types happens here, at the host
// boundary, so the engine only ever sees well-typed values.
type FilterInput struct {
	Statuses      []string `json:"statuses,omitempty" jsonschema:"statuses to include (active, draft, submitted, overdue)"`
	Priorities    []int    `json:"priorities,omitempty" jsonschema:"priority levels to include (1-5, 1 is highest)"`
	DocumentTypes []string `json:"document_types,omitempty" jsonschema:"document type codes to include (e.g. RFP)"`
	Agency        string   `json:"agency,omitempty" jsonschema:"case-insensitive agency substring"`
	DueDate       string   `json:"due_date,omitempty" jsonschema:"due-date window: none, overdue, next7days, next20days, custom"`
	CustomStart   string   `json:"custom_start,omitempty" jsonschema:"inclusive start date (YYYY-MM-DD) for the custom window"`
	CustomEnd     string   `json:"custom_end,omitempty" jsonschema:"inclusive end date (YYYY-MM-DD) for the custom window"`
}

func (in FilterInput) toState() (query.FilterState, error) {
	state := query.FilterState{
		Priorities:    in.Priorities,
		DocumentTypes: in.DocumentTypes,
		Agency:        in.Agency,
	}
	for _, s := range in.Statuses {
		switch status := query.Status(strings.ToLower(s)); status {
		case query.StatusActive, query.StatusDraft, query.StatusSubmitted, query.StatusOverdue:
			state.Statuses = append(state.Statuses, status)
		default:
			return query.FilterState{}, fmt.Errorf("%w: unknown status %q", query.ErrInvalidInput, s)
		}
	}
	switch window := query.DateRange(in.DueDate); window {
	case "", query.DateRangeNone:
		state.DueDate = query.DateRangeNone
	case query.DateRangeOverdue, query.DateRangeNext7Days, query.DateRangeNext20Days, query.DateRangeCustom:
		state.DueDate = window
	default:
		return query.FilterState{}, fmt.Errorf("%w: unknown due-date window %q", query.ErrInvalidInput, in.DueDate)
	}
	var err error
	if state.CustomStart, err = parseWireDate(in.CustomStart); err != nil {
		return query.FilterState{}, err
	}
	if state.CustomEnd, err = parseWireDate(in.CustomEnd); err != nil {
		return query.FilterState{}, err
	}
	return state, nil
}

func filterInputFromState(state query.FilterState) FilterInput {
	out := FilterInput{
		Priorities:    state.Priorities,
		DocumentTypes: state.DocumentTypes,
		Agency:        state.Agency,
		DueDate:       string(state.DueDate),
	}
	for _, status := range state.Statuses {
		out.Statuses = append(out.Statuses, string(status))
	}
	if state.CustomStart != nil {
		out.CustomStart = state.CustomStart.Format("2006-01-02")
	}
	if state.CustomEnd != nil {
		out.CustomEnd = state.CustomEnd.Format("2006-01-02")
	}
	return out
}

func parseWireDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: unparsable date %q", query.ErrInvalidInput, s)
}

// SortInput selects the ordering of list results.
type SortInput struct {
	Key   string `json:"key,omitempty" jsonschema:"sort key: name, status, type, owner, agency, created, due, progress, priority, team, health"`
	Order string `json:"order,omitempty" jsonschema:"asc or desc; omit for the key's natural direction"`
}

func (in SortInput) toSpec() (query.SortSpec, error) {
	if in.Key == "" {
		return query.SortSpec{}, nil
	}
	key := query.SortKey(in.Key)
	if !query.ValidSortKey(key) {
		return query.SortSpec{}, fmt.Errorf("%w: unknown sort key %q", query.ErrInvalidInput, in.Key)
	}
	spec := query.SortSpec{Key: key, Order: query.DefaultOrder(key)}
	switch in.Order {
	case "":
	case string(query.Ascending):
		spec.Order = query.Ascending
	case string(query.Descending):
		spec.Order = query.Descending
	default:
		return query.SortSpec{}, fmt.Errorf("%w: unknown sort order %q", query.ErrInvalidInput, in.Order)
	}
	return spec, nil
}

// ColorsInput is the wire form of a ThemeColors value.
type ColorsInput struct {
	Background string `json:"background" jsonschema:"page background base color (#rrggbb)"`
	Lowlight   string `json:"lowlight" jsonschema:"muted/secondary base color (#rrggbb)"`
	Highlight  string `json:"highlight" jsonschema:"accent/primary base color (#rrggbb)"`
	Selected   string `json:"selected" jsonschema:"selection base color (#rrggbb)"`
	Pattern    string `json:"pattern,omitempty" jsonschema:"background pattern id; omit for none"`
}

func (in ColorsInput) toColors() theme.ThemeColors {
	pattern := theme.PatternID(in.Pattern)
	if pattern == "" {
		pattern = theme.PatternNone
	}
	return theme.ThemeColors{
		Background: in.Background,
		Lowlight:   in.Lowlight,
		Highlight:  in.Highlight,
		Selected:   in.Selected,
		Pattern:    pattern,
	}
}

// ImportProjectsInput carries an upstream snapshot for wholesale import.
type ImportProjectsInput struct {
	Projects []query.WireRecord `json:"projects" jsonschema:"full project collection as received from the upstream API"`
}

// ImportProjectsOutput reports how many records the snapshot now holds.
type ImportProjectsOutput struct {
	Imported int `json:"imported"`
}

// ListProjectsInput combines filter, sort, and page selection.
type ListProjectsInput struct {
	Filter FilterInput `json:"filter,omitempty" jsonschema:"filter criteria; empty dimensions impose no constraint"`
	Sort   SortInput   `json:"sort,omitempty" jsonschema:"ordering; omit for snapshot order"`
	Page   int         `json:"page,omitempty" jsonschema:"1-based page number; defaults to 1"`
}

// PresetNameInput names a saved filter preset.
type PresetNameInput struct {
	Name string `json:"name" jsonschema:"preset name"`
}

// SavePresetInput names and captures a filter preset.
type SavePresetInput struct {
	Name   string      `json:"name" jsonschema:"preset name; overwrites an existing preset of the same name"`
	Filter FilterInput `json:"filter" jsonschema:"filter criteria to save"`
}

// PresetListOutput lists saved preset names.
type PresetListOutput struct {
	Presets []string `json:"presets"`
}

// FilterOutput returns a stored filter state.
type FilterOutput struct {
	Filter FilterInput `json:"filter"`
	Exists bool        `json:"exists,omitempty"`
}

// EmptyInput is for tools that take no arguments.
type EmptyInput struct{}

// OKOutput acknowledges a write with no other payload.
type OKOutput struct {
	OK bool `json:"ok"`
}

// ThemeOutput returns base colors plus their derived palette.
type ThemeOutput struct {
	Colors theme.ThemeColors  `json:"colors"`
	Theme  theme.DerivedTheme `json:"theme"`
}

// ThemePresetsOutput lists the built-in theme catalog and patterns.
type ThemePresetsOutput struct {
	Presets  []theme.Preset    `json:"presets"`
	Patterns []theme.PatternID `json:"patterns"`
}

// LayoutInput sets the persisted layout preferences.
type LayoutInput struct {
	SidebarCollapsed bool   `json:"sidebar_collapsed,omitempty" jsonschema:"whether the sidebar starts collapsed"`
	SortKey          string `json:"sort_key,omitempty" jsonschema:"remembered sort key for the projects view"`
	SortOrder        string `json:"sort_order,omitempty" jsonschema:"remembered sort order (asc or desc)"`
}
