package functional_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/bidboard/bidboard/internal/testserver"
)

// connect boots a full server and returns an SDK client session over the
// streamable HTTP transport.
func connect(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	ts := testserver.New(t)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	session, err := client.Connect(ctx, &sdkmcp.StreamableClientTransport{
		Endpoint: ts.Server.URL + "/mcp",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return session
}

func callTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) json.RawMessage {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err, "CallTool %s failed", name)
	require.False(t, result.IsError, "Tool %s returned error: %s", name, toolText(result))
	require.NotEmpty(t, result.Content)
	return json.RawMessage(toolText(result))
}

func callToolExpectError(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	require.True(t, result.IsError, "Tool %s unexpectedly succeeded", name)
	return toolText(result)
}

func toolText(result *sdkmcp.CallToolResult) string {
	for _, content := range result.Content {
		if text, ok := content.(*sdkmcp.TextContent); ok {
			return text.Text
		}
	}
	return ""
}

func sampleProjects() []map[string]any {
	return []map[string]any{
		{
			"id": "p1", "title": "Broadband Expansion", "status": "active",
			"priority_level": 1, "document_type": "RFP",
			"agency":   "Department of Commerce",
			"due_date": "2027-01-15", "created_at": "2026-08-01T10:00:00Z",
			"owner":               map[string]any{"id": "u1", "name": "Jordan Reyes"},
			"progress_percentage": 60, "health_status": "green", "team_size": 4,
		},
		{
			"id": "p2", "title": "Airfield Resurfacing", "status": "draft",
			"priority_level": 3, "document_type": "RFI",
			"agency":   "Department of Defense",
			"due_date": "2027-02-01", "created_at": "2026-08-10T10:00:00Z",
			"owner":               map[string]any{"id": "u2", "name": "Casey Moran"},
			"progress_percentage": 10, "health_status": "yellow", "team_size": 2,
		},
		{
			"id": "p3", "title": "Zoning Data Portal", "status": "active",
			"priority_level": 2, "document_type": "RFP",
			"agency":   "Department of Commerce",
			"due_date": "2027-01-20", "created_at": "2026-08-05T10:00:00Z",
			"owner":               map[string]any{"id": "u1", "name": "Jordan Reyes"},
			"progress_percentage": 35, "health_status": "red", "team_size": 6,
		},
	}
}

func TestFunctional_ImportAndQuery(t *testing.T) {
	session := connect(t)

	importResp := callTool(t, session, "import_projects", map[string]any{
		"projects": sampleProjects(),
	})
	var imported struct {
		Imported int `json:"imported"`
	}
	require.NoError(t, json.Unmarshal(importResp, &imported))
	require.Equal(t, 3, imported.Imported)

	listResp := callTool(t, session, "list_projects", map[string]any{
		"filter": map[string]any{"statuses": []string{"active"}},
		"sort":   map[string]any{"key": "name", "order": "asc"},
	})
	var page struct {
		Items []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"items"`
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(listResp, &page))
	require.Equal(t, 2, page.TotalCount)
	require.Equal(t, "p1", page.Items[0].ID)
	require.Equal(t, "p3", page.Items[1].ID)
}

func TestFunctional_ReimportReplacesSnapshot(t *testing.T) {
	session := connect(t)

	callTool(t, session, "import_projects", map[string]any{"projects": sampleProjects()})
	callTool(t, session, "import_projects", map[string]any{
		"projects": sampleProjects()[:1],
	})

	listResp := callTool(t, session, "list_projects", nil)
	var page struct {
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(listResp, &page))
	require.Equal(t, 1, page.TotalCount)
}

func TestFunctional_FilterPresets(t *testing.T) {
	session := connect(t)

	callTool(t, session, "save_filter_preset", map[string]any{
		"name": "commerce-active",
		"filter": map[string]any{
			"statuses": []string{"active"},
			"agency":   "commerce",
		},
	})

	listResp := callTool(t, session, "list_filter_presets", nil)
	var presets struct {
		Presets []string `json:"presets"`
	}
	require.NoError(t, json.Unmarshal(listResp, &presets))
	require.Equal(t, []string{"commerce-active"}, presets.Presets)

	loadResp := callTool(t, session, "load_filter_preset", map[string]any{"name": "commerce-active"})
	var loaded struct {
		Filter struct {
			Statuses []string `json:"statuses"`
			Agency   string   `json:"agency"`
		} `json:"filter"`
	}
	require.NoError(t, json.Unmarshal(loadResp, &loaded))
	require.Equal(t, []string{"active"}, loaded.Filter.Statuses)
	require.Equal(t, "commerce", loaded.Filter.Agency)

	callTool(t, session, "delete_filter_preset", map[string]any{"name": "commerce-active"})

	errText := callToolExpectError(t, session, "load_filter_preset", map[string]any{"name": "commerce-active"})
	require.Contains(t, errText, "PRESET_NOT_FOUND")
}

func TestFunctional_PresetValidation(t *testing.T) {
	session := connect(t)

	errText := callToolExpectError(t, session, "save_filter_preset", map[string]any{
		"name":   "  ",
		"filter": map[string]any{},
	})
	require.Contains(t, errText, "VALIDATION_ERROR")

	errText = callToolExpectError(t, session, "list_projects", map[string]any{
		"sort": map[string]any{"key": "flavor"},
	})
	require.Contains(t, errText, "VALIDATION_ERROR")
}

func TestFunctional_DefaultFilter(t *testing.T) {
	session := connect(t)

	getResp := callTool(t, session, "get_default_filter", nil)
	var def struct {
		Exists bool `json:"exists"`
	}
	require.NoError(t, json.Unmarshal(getResp, &def))
	require.False(t, def.Exists)

	callTool(t, session, "set_default_filter", map[string]any{
		"due_date": "next7days",
	})

	getResp = callTool(t, session, "get_default_filter", nil)
	var after struct {
		Filter struct {
			DueDate string `json:"due_date"`
		} `json:"filter"`
		Exists bool `json:"exists"`
	}
	require.NoError(t, json.Unmarshal(getResp, &after))
	require.True(t, after.Exists)
	require.Equal(t, "next7days", after.Filter.DueDate)
}

func TestFunctional_ThemeWorkflow(t *testing.T) {
	session := connect(t)

	themeResp := callTool(t, session, "get_theme", nil)
	var initial struct {
		Colors struct {
			Background string `json:"background"`
		} `json:"colors"`
		Theme struct {
			Text string `json:"text"`
		} `json:"theme"`
	}
	require.NoError(t, json.Unmarshal(themeResp, &initial))
	require.Equal(t, "#f8f9fa", initial.Colors.Background)

	midnight := map[string]any{
		"background": "#0f172a",
		"lowlight":   "#64748b",
		"highlight":  "#3b82f6",
		"selected":   "#1e40af",
	}

	previewResp := callTool(t, session, "preview_theme", midnight)
	var preview struct {
		Theme struct {
			Text string `json:"text"`
		} `json:"theme"`
	}
	require.NoError(t, json.Unmarshal(previewResp, &preview))
	require.Equal(t, "#e2e8f0", preview.Theme.Text)

	// Preview must not commit.
	themeResp = callTool(t, session, "get_theme", nil)
	require.NoError(t, json.Unmarshal(themeResp, &initial))
	require.Equal(t, "#f8f9fa", initial.Colors.Background)

	callTool(t, session, "apply_theme", midnight)

	themeResp = callTool(t, session, "get_theme", nil)
	require.NoError(t, json.Unmarshal(themeResp, &initial))
	require.Equal(t, "#0f172a", initial.Colors.Background)

	// Reset previews the default without committing.
	resetResp := callTool(t, session, "reset_theme", nil)
	var reset struct {
		Colors struct {
			Background string `json:"background"`
		} `json:"colors"`
	}
	require.NoError(t, json.Unmarshal(resetResp, &reset))
	require.Equal(t, "#f8f9fa", reset.Colors.Background)

	themeResp = callTool(t, session, "get_theme", nil)
	require.NoError(t, json.Unmarshal(themeResp, &initial))
	require.Equal(t, "#0f172a", initial.Colors.Background)
}

func TestFunctional_ThemeValidation(t *testing.T) {
	session := connect(t)

	errText := callToolExpectError(t, session, "preview_theme", map[string]any{
		"background": "red",
		"lowlight":   "#64748b",
		"highlight":  "#3b82f6",
		"selected":   "#1e40af",
	})
	require.Contains(t, errText, "VALIDATION_ERROR")
}

func TestFunctional_ThemePresetCatalog(t *testing.T) {
	session := connect(t)

	resp := callTool(t, session, "list_theme_presets", nil)
	var catalog struct {
		Presets []struct {
			Name   string `json:"name"`
			Colors struct {
				Background string `json:"background"`
			} `json:"colors"`
		} `json:"presets"`
		Patterns []string `json:"patterns"`
	}
	require.NoError(t, json.Unmarshal(resp, &catalog))
	require.Len(t, catalog.Presets, 5)
	require.Equal(t, "daylight", catalog.Presets[0].Name)
	require.Contains(t, catalog.Patterns, "dots")
}

func TestFunctional_Layout(t *testing.T) {
	session := connect(t)

	callTool(t, session, "set_layout", map[string]any{
		"sidebar_collapsed": true,
		"sort_key":          "due",
		"sort_order":        "asc",
	})

	resp := callTool(t, session, "get_layout", nil)
	var layout struct {
		SidebarCollapsed bool   `json:"sidebar_collapsed"`
		SortKey          string `json:"sort_key"`
		SortOrder        string `json:"sort_order"`
	}
	require.NoError(t, json.Unmarshal(resp, &layout))
	require.True(t, layout.SidebarCollapsed)
	require.Equal(t, "due", layout.SortKey)
	require.Equal(t, "asc", layout.SortOrder)

	errText := callToolExpectError(t, session, "set_layout", map[string]any{"sort_key": "flavor"})
	require.Contains(t, errText, "VALIDATION_ERROR")
}

func TestFunctional_ToolDiscovery(t *testing.T) {
	session := connect(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tools.Tools, 15)

	toolMap := make(map[string]*sdkmcp.Tool)
	for _, tool := range tools.Tools {
		toolMap[tool.Name] = tool
		require.NotEmpty(t, tool.Description, "tool %s should have description", tool.Name)
		require.NotNil(t, tool.InputSchema, "tool %s should have inputSchema", tool.Name)
	}
	require.Contains(t, toolMap, "import_projects")
	require.Contains(t, toolMap, "list_projects")
	require.Contains(t, toolMap, "apply_theme")
}
