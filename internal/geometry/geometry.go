// Package geometry converts between surface pixels and grid cells/boundaries
// and snaps selection rectangles to cut lines.
//
// Every function is pure: results depend only on the grid configuration and
// the arguments. Out-of-range input is clamped, never rejected.
package geometry

import (
	"math"

	"github.com/piwi3910/GridCut/internal/model"
)

// Region classifies a surface point.
type Region int

const (
	RegionNone       Region = iota // Padding or the top-left corner
	RegionTopGutter                // Column boundaries are toggled here
	RegionLeftGutter               // Row boundaries are toggled here
	RegionGrid                     // Cell body, where drags start
)

func (r Region) String() string {
	switch r {
	case RegionTopGutter:
		return "TopGutter"
	case RegionLeftGutter:
		return "LeftGutter"
	case RegionGrid:
		return "Grid"
	default:
		return "None"
	}
}

// Geometry holds the fixed layout used by all conversions.
type Geometry struct {
	cfg model.GridConfig
}

// New creates a Geometry for the given layout.
func New(cfg model.GridConfig) Geometry {
	return Geometry{cfg: cfg}
}

// Config returns the layout this Geometry was built from.
func (g Geometry) Config() model.GridConfig {
	return g.cfg
}

// CellFromPoint returns the cell under a surface point, clamped to the grid.
func (g Geometry) CellFromPoint(x, y float64) model.Cell {
	gx := x - g.cfg.Origin()
	gy := y - g.cfg.Origin()
	return model.Cell{
		Row: clamp(int(math.Floor(gy/g.cfg.CellSize)), 0, g.cfg.Rows-1),
		Col: clamp(int(math.Floor(gx/g.cfg.CellSize)), 0, g.cfg.Cols-1),
	}
}

// BoundaryFromTopGutter returns the column boundary nearest to x, in [1, Cols-1].
func (g Geometry) BoundaryFromTopGutter(x float64) int {
	t := (x - g.cfg.Origin()) / g.cfg.CellSize
	return clamp(round(t), 1, g.cfg.Cols-1)
}

// BoundaryFromLeftGutter returns the row boundary nearest to y, in [1, Rows-1].
func (g Geometry) BoundaryFromLeftGutter(y float64) int {
	t := (y - g.cfg.Origin()) / g.cfg.CellSize
	return clamp(round(t), 1, g.cfg.Rows-1)
}

// RegionAt reports which interactive area contains the point. Extents are
// half-open so adjacent areas never overlap.
func (g Geometry) RegionAt(x, y float64) Region {
	pad := g.cfg.Padding
	origin := g.cfg.Origin()
	right := origin + g.cfg.GridWidth()
	bottom := origin + g.cfg.GridHeight()

	inCols := x >= origin && x < right
	inRows := y >= origin && y < bottom

	switch {
	case inCols && inRows:
		return RegionGrid
	case inCols && y >= pad && y < origin:
		return RegionTopGutter
	case inRows && x >= pad && x < origin:
		return RegionLeftGutter
	default:
		return RegionNone
	}
}

// BoundaryOffset is the pixel offset of boundary i from the grid origin.
func (g Geometry) BoundaryOffset(i int) float64 {
	return float64(i) * g.cfg.CellSize
}

// CellBounds returns the pixel box of a normalized rectangle, relative to the
// grid origin.
func (g Geometry) CellBounds(r model.Rect) (x, y, w, h float64) {
	cs := g.cfg.CellSize
	return float64(r.C0) * cs, float64(r.R0) * cs, float64(r.Cols()) * cs, float64(r.Rows()) * cs
}

// NormalizedRect orders the corners so that R0 <= R1 and C0 <= C1.
func NormalizedRect(r model.Rect) model.Rect {
	return model.Rect{
		R0: min(r.R0, r.R1),
		C0: min(r.C0, r.C1),
		R1: max(r.R0, r.R1),
		C1: max(r.C0, r.C1),
	}
}

// EdgeArrays returns the snap targets on each axis: the cuts in ascending
// order framed by the outer edges 0 and N.
func (g Geometry) EdgeArrays(cuts *model.CutSet) (rows, cols []int) {
	rows = append(append([]int{0}, cuts.Rows()...), g.cfg.Rows)
	cols = append(append([]int{0}, cuts.Columns()...), g.cfg.Cols)
	return rows, cols
}

// SnapRectToCuts moves each edge of r to the nearest edge array entry.
// Edges are measured as boundaries: top=R0, bottom=R1+1, left=C0, right=C1+1.
// When both edges of an axis land on the same boundary the leading edge is
// pulled back one cell so the selection stays on one side of the cut.
func (g Geometry) SnapRectToCuts(r model.Rect, cuts *model.CutSet) model.Rect {
	rows, cols := g.EdgeArrays(cuts)

	top, bottom := nearest(r.R0, rows), nearest(r.R1+1, rows)
	left, right := nearest(r.C0, cols), nearest(r.C1+1, cols)

	if left == right {
		left--
	}
	if top == bottom {
		top--
	}

	return model.Rect{
		R0: clamp(top, 0, g.cfg.Rows-1),
		C0: clamp(left, 0, g.cfg.Cols-1),
		R1: clamp(bottom-1, 0, g.cfg.Rows-1),
		C1: clamp(right-1, 0, g.cfg.Cols-1),
	}
}

// nearest returns the entry of edges closest to v. Ties keep the earlier entry.
func nearest(v int, edges []int) int {
	best := edges[0]
	for _, e := range edges[1:] {
		if abs(e-v) < abs(best-v) {
			best = e
		}
	}
	return best
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// round rounds half up, so 2.5 -> 3 and -0.5 -> 0.
func round(t float64) int {
	return int(math.Floor(t + 0.5))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
