package mcp

import (
	"context"

	"github.com/bidboard/bidboard/internal/domain/query"
	"github.com/bidboard/bidboard/internal/domain/theme"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools wires every tool onto the server. Handlers translate wire
// input into engine types, call one service operation, and map domain
// errors onto API error codes.
func registerTools(server *sdkmcp.Server, services Services) {
	registerQueryTools(server, services.Query)
	registerThemeTools(server, services.Theme)
}

func registerQueryTools(server *sdkmcp.Server, svc QueryService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "import_projects",
		Description: "Replace the project snapshot wholesale with records from the upstream API",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ImportProjectsInput) (*sdkmcp.CallToolResult, ImportProjectsOutput, error) {
		count, err := svc.Import(ctx, in.Projects)
		if err != nil {
			return nil, ImportProjectsOutput{}, MapError(err)
		}
		return nil, ImportProjectsOutput{Imported: count}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "Filter, sort, and paginate the project collection",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListProjectsInput) (*sdkmcp.CallToolResult, query.Page, error) {
		state, err := in.Filter.toState()
		if err != nil {
			return nil, query.Page{}, MapError(err)
		}
		spec, err := in.Sort.toSpec()
		if err != nil {
			return nil, query.Page{}, MapError(err)
		}
		page, err := svc.Query(ctx, state, spec, in.Page)
		if err != nil {
			return nil, query.Page{}, MapError(err)
		}
		return nil, page, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "save_filter_preset",
		Description: "Save the given filter criteria under a name, overwriting any existing preset",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SavePresetInput) (*sdkmcp.CallToolResult, OKOutput, error) {
		state, err := in.Filter.toState()
		if err != nil {
			return nil, OKOutput{}, MapError(err)
		}
		if err := svc.SavePreset(ctx, in.Name, state); err != nil {
			return nil, OKOutput{}, MapError(err)
		}
		return nil, OKOutput{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "load_filter_preset",
		Description: "Load a saved filter preset by name",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in PresetNameInput) (*sdkmcp.CallToolResult, FilterOutput, error) {
		state, err := svc.LoadPreset(ctx, in.Name)
		if err != nil {
			return nil, FilterOutput{}, MapError(err)
		}
		return nil, FilterOutput{Filter: filterInputFromState(state), Exists: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_filter_preset",
		Description: "Delete a saved filter preset; callers confirm with the user before invoking",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in PresetNameInput) (*sdkmcp.CallToolResult, OKOutput, error) {
		if err := svc.DeletePreset(ctx, in.Name); err != nil {
			return nil, OKOutput{}, MapError(err)
		}
		return nil, OKOutput{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_filter_presets",
		Description: "List saved filter preset names",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, PresetListOutput, error) {
		return nil, PresetListOutput{Presets: svc.ListPresets(ctx)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_default_filter",
		Description: "Persist filter criteria to auto-load at the next session start",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in FilterInput) (*sdkmcp.CallToolResult, OKOutput, error) {
		state, err := in.toState()
		if err != nil {
			return nil, OKOutput{}, MapError(err)
		}
		if err := svc.SetDefault(ctx, state); err != nil {
			return nil, OKOutput{}, MapError(err)
		}
		return nil, OKOutput{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_default_filter",
		Description: "Get the filter criteria auto-loaded at session start, if any",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, FilterOutput, error) {
		state, ok := svc.DefaultFilter(ctx)
		return nil, FilterOutput{Filter: filterInputFromState(state), Exists: ok}, nil
	})
}

func registerThemeTools(server *sdkmcp.Server, svc ThemeService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_theme",
		Description: "Get the committed theme selection and its derived palette",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, ThemeOutput, error) {
		colors, derived := svc.Current(ctx)
		return nil, ThemeOutput{Colors: colors, Theme: derived}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "preview_theme",
		Description: "Derive the full palette from base colors without committing anything",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in ColorsInput) (*sdkmcp.CallToolResult, ThemeOutput, error) {
		colors := in.toColors()
		derived, err := svc.Preview(colors)
		if err != nil {
			return nil, ThemeOutput{}, MapError(err)
		}
		return nil, ThemeOutput{Colors: colors, Theme: derived}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "apply_theme",
		Description: "Commit base colors and pattern to durable storage and return the derived palette",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ColorsInput) (*sdkmcp.CallToolResult, ThemeOutput, error) {
		colors := in.toColors()
		derived, err := svc.Apply(ctx, colors)
		if err != nil {
			return nil, ThemeOutput{}, MapError(err)
		}
		return nil, ThemeOutput{Colors: colors, Theme: derived}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "reset_theme",
		Description: "Preview the built-in default theme; does not commit until apply_theme",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, ThemeOutput, error) {
		colors, derived := svc.Reset()
		return nil, ThemeOutput{Colors: colors, Theme: derived}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_theme_presets",
		Description: "List the built-in theme presets and background pattern catalog",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, ThemePresetsOutput, error) {
		return nil, ThemePresetsOutput{Presets: theme.Presets(), Patterns: theme.Patterns()}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_layout",
		Description: "Get the persisted layout preferences",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, LayoutInput, error) {
		layout := svc.Layout(ctx)
		return nil, LayoutInput{
			SidebarCollapsed: layout.SidebarCollapsed,
			SortKey:          layout.SortKey,
			SortOrder:        layout.SortOrder,
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_layout",
		Description: "Persist layout preferences (sidebar state, remembered sort)",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in LayoutInput) (*sdkmcp.CallToolResult, OKOutput, error) {
		if in.SortKey != "" && !query.ValidSortKey(query.SortKey(in.SortKey)) {
			return nil, OKOutput{}, &APIError{Code: "VALIDATION_ERROR", Message: "unknown sort key", RecoveryHint: "Use a key accepted by list_projects"}
		}
		layout := theme.Layout{
			SidebarCollapsed: in.SidebarCollapsed,
			SortKey:          in.SortKey,
			SortOrder:        in.SortOrder,
		}
		if err := svc.SaveLayout(ctx, layout); err != nil {
			return nil, OKOutput{}, MapError(err)
		}
		return nil, OKOutput{OK: true}, nil
	})
}
