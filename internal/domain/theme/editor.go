package theme

// ColorSlot names one of the four editable base colors.
type ColorSlot string

const (
	SlotBackground ColorSlot = "background"
	SlotLowlight   ColorSlot = "lowlight"
	SlotHighlight  ColorSlot = "highlight"
	SlotSelected   ColorSlot = "selected"
)

// Editor implements the preview/commit protocol over a working copy of
// ThemeColors. Every edit recomputes the preview palette; nothing touches
// the committed state until the caller persists the working copy through
// the Service. A rejected edit leaves the working copy and preview as
// they were.
type Editor struct {
	committed ThemeColors
	working   ThemeColors
	preview   DerivedTheme
}

// NewEditor starts an editing session from the committed selection.
func NewEditor(committed ThemeColors) (*Editor, error) {
	preview, err := Derive(committed)
	if err != nil {
		return nil, err
	}
	return &Editor{committed: committed, working: committed, preview: preview}, nil
}

// SetColor updates one base color and recomputes the preview. Malformed
// hex input is rejected without disturbing the current preview.
func (e *Editor) SetColor(slot ColorSlot, hex string) error {
	next := e.working
	switch slot {
	case SlotBackground:
		next.Background = hex
	case SlotLowlight:
		next.Lowlight = hex
	case SlotHighlight:
		next.Highlight = hex
	case SlotSelected:
		next.Selected = hex
	}
	return e.update(next)
}

// SetPattern updates the background pattern and recomputes the preview.
func (e *Editor) SetPattern(id PatternID) error {
	next := e.working
	next.Pattern = id
	return e.update(next)
}

// ApplyPreset seeds the working copy with a catalog preset's base colors,
// keeping the currently selected pattern.
func (e *Editor) ApplyPreset(name string) error {
	preset, err := LookupPreset(name)
	if err != nil {
		return err
	}
	next := preset.Colors
	next.Pattern = e.working.Pattern
	return e.update(next)
}

// Reset reverts the working copy to the default preset and recomputes the
// preview. It does not commit.
func (e *Editor) Reset() {
	// The default preset always derives cleanly.
	e.working = DefaultColors()
	e.preview, _ = Derive(e.working)
}

// Cancel discards all edits, restoring the committed selection.
func (e *Editor) Cancel() {
	e.working = e.committed
	e.preview, _ = Derive(e.committed)
}

// Working returns the current (uncommitted) base color selection.
func (e *Editor) Working() ThemeColors {
	return e.working
}

// Preview returns the palette derived from the working copy.
func (e *Editor) Preview() DerivedTheme {
	return e.preview
}

func (e *Editor) update(next ThemeColors) error {
	preview, err := Derive(next)
	if err != nil {
		return err
	}
	e.working = next
	e.preview = preview
	return nil
}
