package session

import (
	"github.com/piwi3910/GridCut/internal/geometry"
	"github.com/piwi3910/GridCut/internal/model"
)

// HoverKind tells which gutter the pointer is over.
type HoverKind int

const (
	HoverNone   HoverKind = iota
	HoverRow              // Left gutter, Index is a row boundary
	HoverColumn           // Top gutter, Index is a column boundary
)

func (k HoverKind) String() string {
	switch k {
	case HoverRow:
		return "row"
	case HoverColumn:
		return "col"
	default:
		return "none"
	}
}

// Hover is the boundary nearest to the pointer while it is inside a gutter.
// Index is meaningless when Kind is HoverNone.
type Hover struct {
	Kind  HoverKind
	Index int
}

// Active reports whether a boundary is hovered.
func (h Hover) Active() bool {
	return h.Kind != HoverNone
}

// Drag tracks a rubber-band selection between pointer-down and pointer-up.
type Drag struct {
	Active  bool
	Anchor  model.Cell
	Current model.Cell
	Snap    bool // Snap-to-cuts requested (Shift held)
}

// Rect returns the rectangle spanned by anchor and current, unnormalized.
func (d Drag) Rect() model.Rect {
	return model.RectFromCells(d.Anchor, d.Current)
}

// hoverAt computes the hover value for a surface point. Only the point's
// position matters, never the current cuts. An axis with a single cell has no
// interior boundary and never hovers.
func hoverAt(g geometry.Geometry, x, y float64) Hover {
	cfg := g.Config()
	switch g.RegionAt(x, y) {
	case geometry.RegionTopGutter:
		if cfg.Cols < 2 {
			return Hover{}
		}
		return Hover{Kind: HoverColumn, Index: g.BoundaryFromTopGutter(x)}
	case geometry.RegionLeftGutter:
		if cfg.Rows < 2 {
			return Hover{}
		}
		return Hover{Kind: HoverRow, Index: g.BoundaryFromLeftGutter(y)}
	default:
		return Hover{}
	}
}

// startDrag begins a drag with anchor and current on the same cell.
func startDrag(cell model.Cell, snap bool) Drag {
	return Drag{Active: true, Anchor: cell, Current: cell, Snap: snap}
}

// stepDrag moves the drag to cell and returns the rectangle to publish.
//
// When snapping applies, anchor and current are replaced by the corners of the
// snapped rectangle, so later moves grow from the snapped box rather than the
// original press point.
func stepDrag(d Drag, g geometry.Geometry, cuts *model.CutSet, cell model.Cell, snap bool) (Drag, model.Rect) {
	d.Current = cell
	d.Snap = snap

	rect := geometry.NormalizedRect(d.Rect())
	if !snap {
		return d, rect
	}
	rect = g.SnapRectToCuts(rect, cuts)
	d.Anchor = rect.TopLeft()
	d.Current = rect.BottomRight()
	return d, rect
}
