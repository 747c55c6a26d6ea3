package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/GridCut/internal/model"
	"github.com/piwi3910/GridCut/internal/project"
	"github.com/piwi3910/GridCut/internal/session"
	"github.com/piwi3910/GridCut/internal/ui/widgets"
)

// App holds the editing session and UI references for one window.
type App struct {
	app        fyne.App
	window     fyne.Window
	config     model.AppConfig
	configPath string
	theme      *GridCutTheme

	session *session.Session
	surface *widgets.GridSurface
	gallery *widgets.Gallery
	status  *widget.Label
}

// NewApp creates the UI for a fresh session using the grid layout in config.
// The layout must already be validated. Theme changes are saved to configPath.
func NewApp(application fyne.App, window fyne.Window, config model.AppConfig, configPath string) *App {
	a := &App{
		app:        application,
		window:     window,
		config:     config,
		configPath: configPath,
		theme:      NewGridCutTheme(config.Theme),
		session:    session.New(config.GridConfig()),
		status:     widget.NewLabel(""),
	}
	application.Settings().SetTheme(a.theme)

	a.session.On(session.EventCutsChanged, func(any) { a.refreshStatus() })
	a.session.On(session.EventExtractionsChanged, func(any) { a.refreshStatus() })
	a.refreshStatus()
	return a
}

// Session returns the editing session driven by this window.
func (a *App) Session() *session.Session {
	return a.session
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Clear All Cuts", func() {
			a.session.ClearCuts()
		}),
		fyne.NewMenuItem("Remove Selected Extraction", func() {
			a.removeSelected()
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Light Theme", func() { a.setTheme("light") }),
		fyne.NewMenuItem("Dark Theme", func() { a.setTheme("dark") }),
		fyne.NewMenuItem("System Theme", func() { a.setTheme("system") }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu))
}

// SetupKeyboard routes Delete and Backspace to the session.
func (a *App) SetupKeyboard() {
	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if key := keyFromName(ev.Name); key != session.KeyOther {
			a.session.KeyPressed(key)
		}
	})
}

func keyFromName(name fyne.KeyName) session.Key {
	switch name {
	case fyne.KeyDelete:
		return session.KeyDelete
	case fyne.KeyBackspace:
		return session.KeyBackspace
	default:
		return session.KeyOther
	}
}

func (a *App) showAboutDialog() {
	cfg := a.session.Geometry().Config()
	dialog.ShowInformation(
		"About GridCut",
		fmt.Sprintf("GridCut: matrix region extractor\n\n"+
			"Click the top or left margin to toggle cut lines.\n"+
			"Drag across the grid to extract a region; hold Shift to snap to cuts.\n"+
			"Delete removes the hovered cut or the selected extraction.\n\n"+
			"Grid: %d × %d, session %s", cfg.Rows, cfg.Cols, a.session.ID()),
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.surface = widgets.NewGridSurface(a.session)
	a.gallery = widgets.NewGallery(a.session)

	toolbar := container.NewHBox(
		newButtonWithTooltip("Clear cuts", theme.ContentClearIcon(), "Remove every row and column cut", func() {
			a.session.ClearCuts()
		}),
		newButtonWithTooltip("Remove selected", theme.DeleteIcon(), "Remove the extraction selected in the gallery", func() {
			a.removeSelected()
		}),
	)

	editor := container.NewBorder(
		toolbar, a.status, nil, nil,
		container.NewScroll(container.NewCenter(a.surface)),
	)

	galleryHeader := widget.NewLabel("Extracted")
	galleryHeader.TextStyle = fyne.TextStyle{Bold: true}
	galleryPanel := container.NewBorder(galleryHeader, nil, nil, nil, a.gallery.Content())

	split := container.NewHSplit(editor, galleryPanel)
	split.Offset = 0.75

	return fynetooltip.AddWindowToolTipLayer(split, a.window.Canvas())
}

func (a *App) removeSelected() {
	id, ok := a.session.SelectedExtraction()
	if !ok {
		dialog.ShowInformation("Nothing Selected", "Tap an extraction in the gallery first.", a.window)
		return
	}
	a.session.RemoveExtraction(id)
}

func (a *App) setTheme(preference string) {
	a.theme.SetPreference(preference)
	a.app.Settings().SetTheme(a.theme)

	a.config.Theme = preference
	if err := project.SaveAppConfig(a.configPath, a.config); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save preferences: %w", err), a.window)
	}
}

func (a *App) refreshStatus() {
	cuts := a.session.Cuts()
	a.status.SetText(fmt.Sprintf(
		"Cuts: %d row, %d column | Extractions: %d",
		len(cuts.Rows()), len(cuts.Columns()), len(a.session.Extractions()),
	))
}
