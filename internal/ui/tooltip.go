// Package ui provides the GridCut application UI components.
//
// This file provides tooltip-enabled button helpers using the fyne-tooltip library.

package ui

import (
	"fyne.io/fyne/v2"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// newButtonWithTooltip creates a labelled icon button with a tooltip that appears on hover.
func newButtonWithTooltip(label string, icon fyne.Resource, tooltip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon(label, icon, tapped)
	btn.SetToolTip(tooltip)
	return btn
}
