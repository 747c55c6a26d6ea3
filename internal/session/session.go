// Package session owns the mutable state of one grid editing surface and
// drives it from pointer and keyboard input.
//
// Hover and drag are independent axes: either, neither, or both may be active.
// All methods are meant to be called from the single UI event goroutine and
// never block; invalid input (a click outside a gutter, a move without a
// drag, an unknown id) is silently ignored.
package session

import (
	"log"

	"github.com/google/uuid"

	"github.com/piwi3910/GridCut/internal/geometry"
	"github.com/piwi3910/GridCut/internal/model"
)

// Key is a keyboard key relevant to the editor.
type Key int

const (
	KeyOther Key = iota
	KeyDelete
	KeyBackspace
)

// Session holds the matrix, cuts, interaction state and extractions for one
// editing surface.
type Session struct {
	id     string
	geom   geometry.Geometry
	matrix model.Matrix

	cuts        *model.CutSet
	hover       Hover
	drag        Drag
	selection   model.Rect
	extractions *model.ExtractionStore

	listeners map[EventType][]Listener
}

// New creates a session over a generated rows x cols matrix.
func New(cfg model.GridConfig) *Session {
	return NewWithMatrix(cfg, model.NewMatrix(cfg.Rows, cfg.Cols))
}

// NewWithMatrix creates a session over an existing matrix. The matrix must
// match the configured dimensions; it is sliced but never modified.
func NewWithMatrix(cfg model.GridConfig, m model.Matrix) *Session {
	return &Session{
		id:          uuid.New().String()[:8],
		geom:        geometry.New(cfg),
		matrix:      m,
		cuts:        model.NewCutSet(),
		extractions: model.NewExtractionStore(),
		listeners:   make(map[EventType][]Listener),
	}
}

func (s *Session) ID() string                      { return s.id }
func (s *Session) Geometry() geometry.Geometry     { return s.geom }
func (s *Session) Matrix() model.Matrix            { return s.matrix }
func (s *Session) Cuts() *model.CutSet             { return s.cuts }
func (s *Session) Hover() Hover                    { return s.hover }
func (s *Session) Drag() Drag                      { return s.drag }
func (s *Session) Extractions() []model.Extraction { return s.extractions.List() }

// Selection returns the live selection rectangle while a drag is active.
func (s *Session) Selection() (model.Rect, bool) {
	return s.selection, s.drag.Active
}

// SelectedExtraction returns the id selected in the gallery, if any.
func (s *Session) SelectedExtraction() (string, bool) {
	return s.extractions.Selected()
}

// ─── Gutters ───────────────────────────────────────────────

// PointerMoved updates the hovered boundary from a surface point. Points
// outside both gutters clear the hover.
func (s *Session) PointerMoved(x, y float64) {
	s.setHover(hoverAt(s.geom, x, y))
}

// PointerLeft clears the hover, e.g. when the pointer leaves the surface.
func (s *Session) PointerLeft() {
	s.setHover(Hover{})
}

// Click toggles the cut at the hovered boundary.
func (s *Session) Click() {
	switch s.hover.Kind {
	case HoverRow:
		s.cuts.ToggleRow(s.hover.Index)
	case HoverColumn:
		s.cuts.ToggleColumn(s.hover.Index)
	default:
		return
	}
	s.emit(EventCutsChanged, nil)
	s.emit(EventHoverChanged, s.hover)
}

// KeyPressed handles Delete and Backspace. A hovered cut is removed (never
// added back), and the extraction selected in the gallery is removed.
func (s *Session) KeyPressed(key Key) {
	if key != KeyDelete && key != KeyBackspace {
		return
	}

	removed := false
	switch s.hover.Kind {
	case HoverRow:
		removed = s.cuts.RemoveRow(s.hover.Index)
	case HoverColumn:
		removed = s.cuts.RemoveColumn(s.hover.Index)
	}
	if removed {
		s.emit(EventCutsChanged, nil)
		s.emit(EventHoverChanged, s.hover)
	}

	if id, ok := s.extractions.Selected(); ok && s.extractions.RemoveSelected() {
		log.Printf("session %s: removed %s", s.id, id)
		s.emit(EventExtractionsChanged, nil)
	}
}

// ClearCuts removes every row and column cut.
func (s *Session) ClearCuts() {
	if s.cuts.Len() == 0 {
		return
	}
	s.cuts.Clear()
	s.emit(EventCutsChanged, nil)
}

func (s *Session) setHover(h Hover) {
	if h == s.hover {
		return
	}
	s.hover = h
	s.emit(EventHoverChanged, h)
}

// ─── Drag selection ────────────────────────────────────────

// PointerDown starts a drag when the point is inside the grid body. snap is
// the Shift state at press time. Returns whether a drag started.
func (s *Session) PointerDown(x, y float64, snap bool) bool {
	if s.geom.RegionAt(x, y) != geometry.RegionGrid {
		return false
	}
	cell := s.geom.CellFromPoint(x, y)
	s.drag = startDrag(cell, snap)
	s.selection = model.RectFromCells(cell, cell)
	s.emit(EventSelectionChanged, s.selection)
	return true
}

// DragMoved extends the active drag to the cell under the point. The point
// may lie anywhere; it is clamped to the grid. snap is the live Shift state.
func (s *Session) DragMoved(x, y float64, snap bool) {
	if !s.drag.Active {
		return
	}
	s.drag, s.selection = stepDrag(s.drag, s.geom, s.cuts, s.geom.CellFromPoint(x, y), snap)
	s.emit(EventSelectionChanged, s.selection)
}

// PointerUp finishes the active drag and extracts the final rectangle.
// Returns false when no drag was active.
func (s *Session) PointerUp(x, y float64, snap bool) (model.Extraction, bool) {
	if !s.drag.Active {
		return model.Extraction{}, false
	}
	_, rect := stepDrag(s.drag, s.geom, s.cuts, s.geom.CellFromPoint(x, y), snap)

	e := s.extractions.Extract(rect, s.matrix)
	log.Printf("session %s: extracted %s %s", s.id, e.ID, rect.Label())
	s.emit(EventExtractionsChanged, nil)

	s.drag = Drag{}
	s.selection = model.Rect{}
	s.emit(EventSelectionChanged, nil)
	return e, true
}

// ─── Gallery ───────────────────────────────────────────────

// SelectExtraction marks id as selected. The id is not validated.
func (s *Session) SelectExtraction(id string) {
	s.extractions.Select(id)
	s.emit(EventExtractionsChanged, nil)
}

// RemoveExtraction deletes an extraction by id. Unknown ids are ignored.
func (s *Session) RemoveExtraction(id string) {
	if !s.extractions.Remove(id) {
		return
	}
	log.Printf("session %s: removed %s", s.id, id)
	s.emit(EventExtractionsChanged, nil)
}
