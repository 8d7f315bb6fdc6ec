package theme

import "fmt"

// Preset is a named, read-only theme in the built-in catalog. The full
// palette ships with the preset for one-click application; selecting a
// preset in the editor seeds only the four base colors so the user can
// customize from that starting point.
type Preset struct {
	Name   string       `json:"name"`
	Label  string       `json:"label"`
	Colors ThemeColors  `json:"colors"`
	Theme  DerivedTheme `json:"theme"`
}

// DefaultPresetName is the preset applied on reset and on first run.
const DefaultPresetName = "daylight"

var presetOrder = []string{"daylight", "midnight", "slate", "forest", "contrast"}

var presetCatalog = map[string]Preset{
	"daylight": {
		Name:  "daylight",
		Label: "Daylight",
		Colors: ThemeColors{
			Background: "#f8f9fa",
			Lowlight:   "#6c757d",
			Highlight:  "#0d6efd",
			Selected:   "#cfe2ff",
			Pattern:    PatternNone,
		},
		Theme: DerivedTheme{
			Primary:       "#0d6efd",
			Secondary:     "#6c757d",
			Background:    "#f8f9fa",
			Surface:       "#ebeced",
			Text:          "#212529",
			TextSecondary: "#6c757d",
			Border:        "#dedfe0",
			Sidebar:       "#f8f9fa",
			SidebarText:   "#495057",
		},
	},
	"midnight": {
		Name:  "midnight",
		Label: "Midnight",
		Colors: ThemeColors{
			Background: "#0f172a",
			Lowlight:   "#94a3b8",
			Highlight:  "#38bdf8",
			Selected:   "#1e3a5f",
			Pattern:    PatternNone,
		},
		Theme: DerivedTheme{
			Primary:       "#38bdf8",
			Secondary:     "#94a3b8",
			Background:    "#0f172a",
			Surface:       "#293144",
			Text:          "#e2e8f0",
			TextSecondary: "#94a3b8",
			Border:        "#424a5d",
			Sidebar:       "#232b3e",
			SidebarText:   "#e2e8f0",
		},
	},
	"slate": {
		Name:  "slate",
		Label: "Slate",
		Colors: ThemeColors{
			Background: "#1e293b",
			Lowlight:   "#94a3b8",
			Highlight:  "#818cf8",
			Selected:   "#334155",
			Pattern:    PatternNone,
		},
		Theme: DerivedTheme{
			Primary:       "#818cf8",
			Secondary:     "#94a3b8",
			Background:    "#1e293b",
			Surface:       "#384355",
			Text:          "#e2e8f0",
			TextSecondary: "#94a3b8",
			Border:        "#515c6e",
			Sidebar:       "#323d4f",
			SidebarText:   "#e2e8f0",
		},
	},
	"forest": {
		Name:  "forest",
		Label: "Forest",
		Colors: ThemeColors{
			Background: "#f4f9f4",
			Lowlight:   "#5f7161",
			Highlight:  "#2e7d32",
			Selected:   "#c8e6c9",
			Pattern:    PatternNone,
		},
		Theme: DerivedTheme{
			Primary:       "#2e7d32",
			Secondary:     "#5f7161",
			Background:    "#f4f9f4",
			Surface:       "#e7ece7",
			Text:          "#212529",
			TextSecondary: "#5f7161",
			Border:        "#dadfda",
			Sidebar:       "#f4f9f4",
			SidebarText:   "#495057",
		},
	},
	"contrast": {
		Name:  "contrast",
		Label: "High Contrast",
		Colors: ThemeColors{
			Background: "#ffffff",
			Lowlight:   "#343a40",
			Highlight:  "#d63384",
			Selected:   "#ffe3f1",
			Pattern:    PatternNone,
		},
		Theme: DerivedTheme{
			Primary:       "#d63384",
			Secondary:     "#343a40",
			Background:    "#ffffff",
			Surface:       "#f2f2f2",
			Text:          "#212529",
			TextSecondary: "#343a40",
			Border:        "#e5e5e5",
			Sidebar:       "#ffffff",
			SidebarText:   "#495057",
		},
	},
}

// Presets returns the built-in catalog in display order.
func Presets() []Preset {
	out := make([]Preset, 0, len(presetOrder))
	for _, name := range presetOrder {
		out = append(out, presetCatalog[name])
	}
	return out
}

// LookupPreset returns a catalog preset by name.
func LookupPreset(name string) (Preset, error) {
	preset, ok := presetCatalog[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return preset, nil
}

// DefaultColors returns the base colors of the default preset.
func DefaultColors() ThemeColors {
	return presetCatalog[DefaultPresetName].Colors
}
