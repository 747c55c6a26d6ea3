// Package ui provides the GridCut application UI components.
//
// This file defines a compact Fyne theme whose light/dark variant follows the
// user's preference.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// GridCutTheme wraps the default Fyne theme with compact sizing overrides.
// A nil variant follows the system setting.
type GridCutTheme struct {
	base    fyne.Theme
	variant *fyne.ThemeVariant
}

// NewGridCutTheme creates a GridCutTheme for a preference name:
// "light", "dark", anything else follows the system.
func NewGridCutTheme(preference string) *GridCutTheme {
	t := &GridCutTheme{base: theme.DefaultTheme()}
	t.SetPreference(preference)
	return t
}

// SetPreference updates the variant from a preference name.
func (t *GridCutTheme) SetPreference(preference string) {
	var v fyne.ThemeVariant
	switch preference {
	case "light":
		v = theme.VariantLight
	case "dark":
		v = theme.VariantDark
	default:
		t.variant = nil
		return
	}
	t.variant = &v
}

// Color delegates to the base theme, forcing the stored variant if any.
func (t *GridCutTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.variant != nil {
		variant = *t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *GridCutTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *GridCutTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *GridCutTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
