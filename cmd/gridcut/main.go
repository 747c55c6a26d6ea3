// GridCut: interactive matrix region extractor
//
// Shows a rows x cols grid of cells. Clicking the top or left margin toggles
// row and column cut lines; dragging across the grid extracts a rectangular
// sub-matrix into the gallery. Holding Shift while dragging snaps the
// selection to the surrounding cuts.
//
// Build:
//   go build -o gridcut ./cmd/gridcut

package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/GridCut/internal/model"
	"github.com/piwi3910/GridCut/internal/project"
	"github.com/piwi3910/GridCut/internal/ui"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := project.DefaultConfigPath()
	cfg, err := project.EnsureAppConfig(configPath)
	if err != nil {
		log.Printf("config: %v; using defaults", err)
		cfg = model.DefaultAppConfig()
	}
	if err := cfg.GridConfig().Validate(); err != nil {
		log.Printf("config: %v; using default grid", err)
		def := model.DefaultGridConfig()
		cfg.Rows, cfg.Cols = def.Rows, def.Cols
		cfg.CellSize, cfg.GutterSize, cfg.Padding = def.CellSize, def.GutterSize, def.Padding
	}

	application := app.NewWithID("com.piwi3910.gridcut")
	window := application.NewWindow("GridCut")

	appUI := ui.NewApp(application, window, cfg, configPath)
	appUI.SetupMenus()
	appUI.SetupKeyboard()
	window.SetContent(appUI.Build())
	window.SetTitle(fmt.Sprintf("GridCut (%d × %d) [%s]", cfg.Rows, cfg.Cols, appUI.Session().ID()))
	window.Resize(fyne.NewSize(1100, 760))
	window.CenterOnScreen()

	log.Printf("session %s started: %d x %d grid", appUI.Session().ID(), cfg.Rows, cfg.Cols)
	window.ShowAndRun()
}
