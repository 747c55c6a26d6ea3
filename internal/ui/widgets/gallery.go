package widgets

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/GridCut/internal/model"
	"github.com/piwi3910/GridCut/internal/session"
)

// Miniature preview sizing.
const (
	previewWidth     = 120
	previewMinHeight = 90
	previewCellPx    = 14
)

var (
	colorPreviewCell   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorPreviewStroke = color.NRGBA{R: 229, G: 231, B: 235, A: 255}
	colorPreviewBorder = color.NRGBA{R: 156, G: 163, B: 175, A: 255}
	colorCardSelected  = color.NRGBA{R: 37, G: 99, B: 235, A: 50}
)

// previewSize returns the preview box and the per-cell size for data with the
// given dimensions.
func previewSize(rows, cols int) (w, h, cellW, cellH float32) {
	w = previewWidth
	h = float32(math.Max(previewMinHeight, float64(rows*previewCellPx)))
	if rows == 0 || cols == 0 {
		return w, h, 0, 0
	}
	cellW = float32(math.Floor(float64(w) / float64(cols)))
	cellH = float32(math.Floor(float64(h) / float64(rows)))
	return w, h, cellW, cellH
}

// MiniPreview renders an extraction's shape as a small grid. Tapping it calls
// OnTapped.
type MiniPreview struct {
	widget.BaseWidget
	extraction model.Extraction
	OnTapped   func()
}

// NewMiniPreview creates a preview for one extraction.
func NewMiniPreview(e model.Extraction, tapped func()) *MiniPreview {
	mp := &MiniPreview{extraction: e, OnTapped: tapped}
	mp.ExtendBaseWidget(mp)
	return mp
}

// Tapped implements fyne.Tappable.
func (mp *MiniPreview) Tapped(*fyne.PointEvent) {
	if mp.OnTapped != nil {
		mp.OnTapped()
	}
}

func (mp *MiniPreview) CreateRenderer() fyne.WidgetRenderer {
	r := &miniPreviewRenderer{mp: mp}
	r.rebuild()
	return r
}

type miniPreviewRenderer struct {
	mp      *MiniPreview
	objects []fyne.CanvasObject
}

func (r *miniPreviewRenderer) rebuild() {
	r.objects = nil

	data := r.mp.extraction.Data
	rows, cols := data.Rows(), data.Cols()
	_, _, cellW, cellH := previewSize(rows, cols)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := canvas.NewRectangle(colorPreviewCell)
			cell.StrokeColor = colorPreviewStroke
			cell.StrokeWidth = 1
			cell.Resize(fyne.NewSize(cellW, cellH))
			cell.Move(fyne.NewPos(float32(col)*cellW, float32(row)*cellH))
			r.objects = append(r.objects, cell)
		}
	}

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = colorPreviewBorder
	border.StrokeWidth = 1.2
	border.Resize(fyne.NewSize(float32(cols)*cellW, float32(rows)*cellH))
	r.objects = append(r.objects, border)
}

func (r *miniPreviewRenderer) Layout(size fyne.Size)        {}
func (r *miniPreviewRenderer) Refresh()                     { r.rebuild() }
func (r *miniPreviewRenderer) Destroy()                     {}
func (r *miniPreviewRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *miniPreviewRenderer) MinSize() fyne.Size {
	data := r.mp.extraction.Data
	w, h, _, _ := previewSize(data.Rows(), data.Cols())
	return fyne.NewSize(w, h)
}

// Gallery lists a session's extractions as cards in creation order. Each card
// shows the rectangle's label and a miniature; tapping selects it and the
// remove button deletes it.
type Gallery struct {
	session *session.Session
	list    *fyne.Container
	scroll  *container.Scroll
}

// NewGallery creates the gallery and subscribes it to extraction changes.
func NewGallery(s *session.Session) *Gallery {
	g := &Gallery{
		session: s,
		list:    container.NewVBox(),
	}
	g.scroll = container.NewVScroll(g.list)
	s.On(session.EventExtractionsChanged, func(any) { g.Refresh() })
	g.Refresh()
	return g
}

// Content returns the scrollable gallery container.
func (g *Gallery) Content() fyne.CanvasObject {
	return g.scroll
}

// Refresh rebuilds all cards from the session.
func (g *Gallery) Refresh() {
	g.list.RemoveAll()

	extractions := g.session.Extractions()
	if len(extractions) == 0 {
		g.list.Add(widget.NewLabel("Drag across the grid to extract a region.\nHold Shift to snap to cuts."))
		g.list.Refresh()
		return
	}

	selected, _ := g.session.SelectedExtraction()
	for _, e := range extractions {
		g.list.Add(g.buildCard(e, e.ID == selected))
	}
	g.list.Refresh()
}

func (g *Gallery) buildCard(e model.Extraction, selected bool) fyne.CanvasObject {
	id := e.ID

	heading := widget.NewLabel(e.Rect.Label())
	heading.TextStyle = fyne.TextStyle{Bold: true}

	remove := ttwidget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		g.session.RemoveExtraction(id)
	})
	remove.SetToolTip("Remove this extraction")
	remove.Importance = widget.LowImportance

	preview := NewMiniPreview(e, func() {
		g.session.SelectExtraction(id)
	})

	body := container.NewVBox(
		container.NewBorder(nil, nil, nil, remove, heading),
		container.NewHBox(preview),
	)

	bg := canvas.NewRectangle(color.Transparent)
	if selected {
		bg.FillColor = colorCardSelected
	}
	return container.NewStack(bg, container.NewPadded(body))
}
