package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `bidboard serves the derived views of a government-proposal workspace: a
filterable, sortable, paginated project list plus a derivable color theme.

Core concepts:
- Project snapshot: the full collection, replaced wholesale via import_projects.
  Records are never edited in place here; edits happen upstream and arrive as
  the next snapshot.
- Filter: criteria AND across dimensions, OR within a dimension's set. Empty
  dimensions impose no constraint.
- Sort: stable; equal keys keep snapshot order. Each key has a natural
  direction (alphabetical fields ascend, date/priority/progress fields descend).
- Filter preset: a named, saved filter. One filter may separately be marked
  default, auto-loaded at session start.
- Theme: four base colors + a pattern id. The full palette is always derived,
  never stored. preview_theme is free of side effects; only apply_theme commits.

Typical flows:
1) Refresh: import_projects with the upstream collection, then list_projects
   with filter/sort/page.
2) Save a view: save_filter_preset, later load_filter_preset or
   set_default_filter.
3) Retheme: preview_theme while editing, apply_theme to commit, reset_theme to
   preview the default again.

Docs:
- bidboard://docs/filtering (criteria semantics and date windows)
- bidboard://docs/theming (derivation rules and the preset catalog)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "bidboard://docs/filtering",
		Name:        "docs_filtering",
		Title:       "Filtering and sorting semantics",
		Description: "How filter dimensions combine, how date windows resolve, and how sorting breaks ties.",
		Content: `# Filtering and sorting

## Dimensions

statuses, priorities, and document_types are set-valued: a record passes when
its field is in the set, and an empty set passes everything. agency is a
case-insensitive substring match. Dimensions combine with AND.

## Due-date windows

- overdue: due date strictly before today
- next7days / next20days: today through today+7 / today+20, inclusive
- custom: [custom_start, custom_end], both inclusive; an absent bound is
  unconstrained on that side

## Sorting

Sorting is stable: records that compare equal keep the order they had in the
imported snapshot. Selecting the same key again flips the direction; selecting
a new key starts from that key's natural direction.
`,
	},
	{
		URI:         "bidboard://docs/theming",
		Name:        "docs_theming",
		Title:       "Theme derivation",
		Description: "How the four base colors expand into the full palette.",
		Content: `# Theme derivation

The palette is a pure function of four base colors plus a pattern id.

- primary = highlight, secondary = text_secondary = lowlight
- Dark backgrounds (brightness < 128): surface, border, and sidebar are
  progressively lightened copies of the background; text is fixed light.
- Light backgrounds: surface and border are slightly darkened; the sidebar
  keeps the background color; text is fixed dark.

Lighten/darken are linear channel shifts of round(2.55 x percent), clamped to
[0, 255]. Channel clamping makes pure black and pure white safe inputs.

Presets ship with a hand-tuned full palette for one-click use; selecting a
preset in an editor seeds only its four base colors.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
