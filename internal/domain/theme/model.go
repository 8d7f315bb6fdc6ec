package theme

// PatternID identifies a background pattern from the fixed catalog.
type PatternID string

const (
	PatternNone     PatternID = "none"
	PatternDots     PatternID = "dots"
	PatternGrid     PatternID = "grid"
	PatternDiagonal PatternID = "diagonal"
	PatternWaves    PatternID = "waves"
)

// ThemeColors holds the four user-chosen base colors plus the selected
// background pattern. It is the only persisted theme state; the full
// palette is always recomputed from it.
type ThemeColors struct {
	Background string    `json:"background"`
	Lowlight   string    `json:"lowlight"`
	Highlight  string    `json:"highlight"`
	Selected   string    `json:"selected"`
	Pattern    PatternID `json:"pattern"`
}

// DerivedTheme is the complete palette computed from a ThemeColors value.
// It drives rendering and is never persisted independently.
type DerivedTheme struct {
	Primary         string `json:"primary"`
	Secondary       string `json:"secondary"`
	Background      string `json:"background"`
	BackgroundImage string `json:"background_image,omitempty"`
	Surface         string `json:"surface"`
	Text            string `json:"text"`
	TextSecondary   string `json:"text_secondary"`
	Border          string `json:"border"`
	Sidebar         string `json:"sidebar"`
	SidebarText     string `json:"sidebar_text"`
}

// Layout holds the persisted layout preferences that share the appearance
// storage key with the committed theme.
type Layout struct {
	SidebarCollapsed bool   `json:"sidebar_collapsed"`
	SortKey          string `json:"sort_key,omitempty"`
	SortOrder        string `json:"sort_order,omitempty"`
}

// Appearance is the durable value stored under the appearance settings key.
type Appearance struct {
	Colors ThemeColors `json:"colors"`
	Layout Layout      `json:"layout"`
}
