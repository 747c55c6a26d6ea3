package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/GridCut/internal/model"
	"github.com/piwi3910/GridCut/internal/session"
)

var (
	colorCellFill     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorCellStroke   = color.NRGBA{R: 229, G: 231, B: 235, A: 255} // light grey grid
	colorBorder       = color.NRGBA{R: 156, G: 163, B: 175, A: 255}
	colorCut          = color.NRGBA{R: 17, G: 24, B: 39, A: 255}   // near-black cut lines
	colorHover        = color.NRGBA{R: 37, G: 99, B: 235, A: 255}  // blue dashed-look hover
	colorSelectFill   = color.NRGBA{R: 37, G: 99, B: 235, A: 40}   // translucent blue
	colorSelectStroke = color.NRGBA{R: 37, G: 99, B: 235, A: 255}
)

// GridSurface draws a session's grid with its gutters, cuts, hover line and
// live selection, and forwards pointer input to the session.
//
// Widget coordinates are surface coordinates: (0,0) is the top-left of the
// outer padding.
type GridSurface struct {
	widget.BaseWidget
	session *session.Session

	lastDrag fyne.Position
}

var (
	_ desktop.Hoverable = (*GridSurface)(nil)
	_ desktop.Mouseable = (*GridSurface)(nil)
	_ fyne.Draggable    = (*GridSurface)(nil)
	_ fyne.Tappable     = (*GridSurface)(nil)
)

// NewGridSurface creates the surface and subscribes it to the session events
// it draws.
func NewGridSurface(s *session.Session) *GridSurface {
	gs := &GridSurface{session: s}
	gs.ExtendBaseWidget(gs)

	redraw := func(any) { gs.Refresh() }
	s.On(session.EventHoverChanged, redraw)
	s.On(session.EventCutsChanged, redraw)
	s.On(session.EventSelectionChanged, redraw)
	return gs
}

func (gs *GridSurface) CreateRenderer() fyne.WidgetRenderer {
	return newGridSurfaceRenderer(gs)
}

// MouseIn implements desktop.Hoverable.
func (gs *GridSurface) MouseIn(ev *desktop.MouseEvent) {
	gs.session.PointerMoved(float64(ev.Position.X), float64(ev.Position.Y))
}

// MouseMoved implements desktop.Hoverable.
func (gs *GridSurface) MouseMoved(ev *desktop.MouseEvent) {
	x, y := float64(ev.Position.X), float64(ev.Position.Y)
	gs.session.PointerMoved(x, y)
	gs.session.DragMoved(x, y, hasShift(ev.Modifier))
}

// MouseOut implements desktop.Hoverable.
func (gs *GridSurface) MouseOut() {
	gs.session.PointerLeft()
}

// MouseDown implements desktop.Mouseable.
func (gs *GridSurface) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	gs.lastDrag = ev.Position
	gs.session.PointerDown(float64(ev.Position.X), float64(ev.Position.Y), hasShift(ev.Modifier))
}

// MouseUp implements desktop.Mouseable.
func (gs *GridSurface) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	gs.session.PointerUp(float64(ev.Position.X), float64(ev.Position.Y), hasShift(ev.Modifier))
}

// Dragged keeps receiving positions after the pointer leaves the widget, so
// the selection can extend to the grid edge.
func (gs *GridSurface) Dragged(ev *fyne.DragEvent) {
	gs.lastDrag = ev.Position
	gs.session.DragMoved(float64(ev.Position.X), float64(ev.Position.Y), shiftHeld())
}

// DragEnd finishes the drag at the last known position. It is a no-op if
// MouseUp already finished it.
func (gs *GridSurface) DragEnd() {
	gs.session.PointerUp(float64(gs.lastDrag.X), float64(gs.lastDrag.Y), shiftHeld())
}

// Tapped toggles the cut under the pointer when the tap is in a gutter.
func (gs *GridSurface) Tapped(ev *fyne.PointEvent) {
	gs.session.PointerMoved(float64(ev.Position.X), float64(ev.Position.Y))
	gs.session.Click()
}

func (gs *GridSurface) MinSize() fyne.Size {
	cfg := gs.session.Geometry().Config()
	return fyne.NewSize(float32(cfg.SurfaceWidth()), float32(cfg.SurfaceHeight()))
}

func hasShift(m fyne.KeyModifier) bool {
	return m&fyne.KeyModifierShift != 0
}

// shiftHeld reads the live modifier state; drag events carry none.
func shiftHeld() bool {
	app := fyne.CurrentApp()
	if app == nil {
		return false
	}
	if drv, ok := app.Driver().(desktop.Driver); ok {
		return hasShift(drv.CurrentKeyModifiers())
	}
	return false
}

type gridSurfaceRenderer struct {
	gs      *GridSurface
	static  []fyne.CanvasObject // cells and border, built once
	overlay []fyne.CanvasObject // cuts, hover, selection
	objects []fyne.CanvasObject
}

func newGridSurfaceRenderer(gs *GridSurface) *gridSurfaceRenderer {
	r := &gridSurfaceRenderer{gs: gs}
	r.buildStatic()
	r.rebuild()
	return r
}

func (r *gridSurfaceRenderer) buildStatic() {
	cfg := r.gs.session.Geometry().Config()
	origin := float32(cfg.Origin())
	cell := float32(cfg.CellSize)

	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			rect := canvas.NewRectangle(colorCellFill)
			rect.StrokeColor = colorCellStroke
			rect.StrokeWidth = 1
			rect.Resize(fyne.NewSize(cell, cell))
			rect.Move(fyne.NewPos(origin+float32(col)*cell, origin+float32(row)*cell))
			r.static = append(r.static, rect)
		}
	}

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = colorBorder
	border.StrokeWidth = 1.5
	border.Resize(fyne.NewSize(float32(cfg.GridWidth()), float32(cfg.GridHeight())))
	border.Move(fyne.NewPos(origin, origin))
	r.static = append(r.static, border)
}

func (r *gridSurfaceRenderer) rebuild() {
	r.overlay = nil

	s := r.gs.session
	g := s.Geometry()
	cfg := g.Config()
	origin := float32(cfg.Origin())
	gutter := float32(cfg.GutterSize)
	gridW := float32(cfg.GridWidth())
	gridH := float32(cfg.GridHeight())

	// Cut lines span the grid body only
	for _, c := range s.Cuts().Columns() {
		x := origin + float32(g.BoundaryOffset(c)) + 0.5
		r.overlay = append(r.overlay, newLine(colorCut, 2.5, x, origin, x, origin+gridH))
	}
	for _, c := range s.Cuts().Rows() {
		y := origin + float32(g.BoundaryOffset(c)) + 0.5
		r.overlay = append(r.overlay, newLine(colorCut, 2.5, origin, y, origin+gridW, y))
	}

	// Hover line reaches back into its gutter
	switch h := s.Hover(); h.Kind {
	case session.HoverColumn:
		x := origin + float32(g.BoundaryOffset(h.Index)) + 0.5
		r.overlay = append(r.overlay, newLine(colorHover, 1.5, x, origin-gutter, x, origin+gridH))
	case session.HoverRow:
		y := origin + float32(g.BoundaryOffset(h.Index)) + 0.5
		r.overlay = append(r.overlay, newLine(colorHover, 1.5, origin-gutter, y, origin+gridW, y))
	}

	if sel, ok := s.Selection(); ok {
		r.overlay = append(r.overlay, r.selectionRect(sel))
	}

	r.objects = append(append(make([]fyne.CanvasObject, 0, len(r.static)+len(r.overlay)), r.static...), r.overlay...)
}

// selectionRect draws the selection inset by half a pixel so it sits inside
// the cell strokes.
func (r *gridSurfaceRenderer) selectionRect(sel model.Rect) fyne.CanvasObject {
	g := r.gs.session.Geometry()
	origin := float32(g.Config().Origin())
	x, y, w, h := g.CellBounds(sel)

	rect := canvas.NewRectangle(colorSelectFill)
	rect.StrokeColor = colorSelectStroke
	rect.StrokeWidth = 1.5
	rect.Resize(fyne.NewSize(float32(w)-1, float32(h)-1))
	rect.Move(fyne.NewPos(origin+float32(x)+0.5, origin+float32(y)+0.5))
	return rect
}

func newLine(c color.Color, width, x1, y1, x2, y2 float32) *canvas.Line {
	l := canvas.NewLine(c)
	l.StrokeWidth = width
	l.Position1 = fyne.NewPos(x1, y1)
	l.Position2 = fyne.NewPos(x2, y2)
	return l
}

func (r *gridSurfaceRenderer) Layout(size fyne.Size)        {}
func (r *gridSurfaceRenderer) Refresh()                     { r.rebuild() }
func (r *gridSurfaceRenderer) Destroy()                     {}
func (r *gridSurfaceRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *gridSurfaceRenderer) MinSize() fyne.Size           { return r.gs.MinSize() }
