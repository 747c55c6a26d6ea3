package geometry

import (
	"testing"

	"github.com/piwi3910/GridCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testGrid is 20 rows x 25 columns of 20px cells with the grid origin at 40px.
func testGrid() Geometry {
	return New(model.GridConfig{Rows: 20, Cols: 25, CellSize: 20, GutterSize: 24, Padding: 16})
}

func cuts(rows, cols []int) *model.CutSet {
	c := model.NewCutSet()
	for _, r := range rows {
		c.ToggleRow(r)
	}
	for _, col := range cols {
		c.ToggleColumn(col)
	}
	return c
}

func TestCellFromPoint_Inside(t *testing.T) {
	g := testGrid()

	assert.Equal(t, model.Cell{Row: 0, Col: 0}, g.CellFromPoint(40, 40))
	assert.Equal(t, model.Cell{Row: 0, Col: 0}, g.CellFromPoint(59.9, 59.9))
	assert.Equal(t, model.Cell{Row: 1, Col: 2}, g.CellFromPoint(40+2*20+5, 40+20))
	assert.Equal(t, model.Cell{Row: 19, Col: 24}, g.CellFromPoint(40+25*20-1, 40+20*20-1))
}

func TestCellFromPoint_ClampsFarPoints(t *testing.T) {
	g := testGrid()

	assert.Equal(t, model.Cell{Row: 0, Col: 0}, g.CellFromPoint(-1e6, -1e6))
	assert.Equal(t, model.Cell{Row: 19, Col: 24}, g.CellFromPoint(1e6, 1e6))
	assert.Equal(t, model.Cell{Row: 19, Col: 0}, g.CellFromPoint(0, 1e6))
	assert.Equal(t, model.Cell{Row: 0, Col: 24}, g.CellFromPoint(1e6, 0))
}

func TestCellFromPoint_AlwaysInBounds(t *testing.T) {
	g := testGrid()
	for x := -200.0; x <= 800; x += 7.3 {
		for y := -200.0; y <= 700; y += 11.1 {
			c := g.CellFromPoint(x, y)
			require.GreaterOrEqual(t, c.Row, 0)
			require.Less(t, c.Row, 20)
			require.GreaterOrEqual(t, c.Col, 0)
			require.Less(t, c.Col, 25)
		}
	}
}

func TestBoundaryFromGutters_RoundsToNearest(t *testing.T) {
	g := testGrid()

	// 5.4 cells in -> boundary 5, 5.5 cells in -> boundary 6
	assert.Equal(t, 5, g.BoundaryFromTopGutter(40+5.4*20))
	assert.Equal(t, 6, g.BoundaryFromTopGutter(40+5.5*20))
	assert.Equal(t, 3, g.BoundaryFromLeftGutter(40+2.6*20))
}

func TestBoundaryFromGutters_ClampsToInterior(t *testing.T) {
	g := testGrid()

	assert.Equal(t, 1, g.BoundaryFromTopGutter(0), "boundary 0 is not reachable")
	assert.Equal(t, 24, g.BoundaryFromTopGutter(1e6), "boundary N is not reachable")
	assert.Equal(t, 1, g.BoundaryFromLeftGutter(-50))
	assert.Equal(t, 19, g.BoundaryFromLeftGutter(1e6))
}

func TestRegionAt(t *testing.T) {
	g := testGrid()

	assert.Equal(t, RegionGrid, g.RegionAt(50, 50))
	assert.Equal(t, RegionTopGutter, g.RegionAt(100, 20))
	assert.Equal(t, RegionLeftGutter, g.RegionAt(20, 100))
	assert.Equal(t, RegionNone, g.RegionAt(20, 20), "corner between gutters")
	assert.Equal(t, RegionNone, g.RegionAt(5, 100), "outer padding")
	assert.Equal(t, RegionNone, g.RegionAt(40+500, 100), "right edge is exclusive")
	assert.Equal(t, RegionGrid, g.RegionAt(40, 40), "origin is inclusive")
}

func TestNormalizedRect_SwapsAndIsIdempotent(t *testing.T) {
	inputs := []model.Rect{
		{R0: 5, C0: 7, R1: 2, C1: 1},
		{R0: 0, C0: 0, R1: 0, C1: 0},
		{R0: 3, C0: 9, R1: 8, C1: 2},
		{R0: 1, C0: 1, R1: 4, C1: 4},
	}
	for _, in := range inputs {
		once := NormalizedRect(in)
		twice := NormalizedRect(once)
		assert.Equal(t, once, twice)
		assert.LessOrEqual(t, once.R0, once.R1)
		assert.LessOrEqual(t, once.C0, once.C1)
	}

	assert.Equal(t, model.Rect{R0: 2, C0: 1, R1: 5, C1: 7}, NormalizedRect(inputs[0]))
}

func TestNormalizedRect_DoesNotClamp(t *testing.T) {
	r := NormalizedRect(model.Rect{R0: 50, C0: -3, R1: 40, C1: 2})
	assert.Equal(t, model.Rect{R0: 40, C0: -3, R1: 50, C1: 2}, r)
}

func TestEdgeArrays(t *testing.T) {
	g := testGrid()

	rows, cols := g.EdgeArrays(model.NewCutSet())
	assert.Equal(t, []int{0, 20}, rows)
	assert.Equal(t, []int{0, 25}, cols)

	rows, cols = g.EdgeArrays(cuts([]int{12, 3, 7}, []int{24, 1}))
	assert.Equal(t, []int{0, 3, 7, 12, 20}, rows)
	assert.Equal(t, []int{0, 1, 24, 25}, cols)

	for _, arr := range [][]int{rows, cols} {
		for i := 1; i < len(arr); i++ {
			assert.Less(t, arr[i-1], arr[i], "edges must be strictly ascending")
		}
	}
}

func TestSnapRectToCuts_NoCutsSnapsToOuterEdges(t *testing.T) {
	g := testGrid()

	// Near the top-left corner everything falls to 0, then the guard kicks in
	r := g.SnapRectToCuts(model.Rect{R0: 2, C0: 2, R1: 3, C1: 3}, model.NewCutSet())
	assert.Equal(t, model.Rect{R0: 0, C0: 0, R1: 0, C1: 0}, r)

	// A rectangle covering most of the grid snaps to the whole grid
	r = g.SnapRectToCuts(model.Rect{R0: 1, C0: 1, R1: 18, C1: 23}, model.NewCutSet())
	assert.Equal(t, model.Rect{R0: 0, C0: 0, R1: 19, C1: 24}, r)
}

func TestSnapRectToCuts_StaysOnOneSideOfColumnCut(t *testing.T) {
	g := testGrid()
	c := cuts(nil, []int{5})

	r := g.SnapRectToCuts(model.Rect{R0: 2, C0: 2, R1: 2, C1: 8}, c)
	spansCut := r.C0 < 5 && r.C1 >= 5
	assert.False(t, spansCut, "rect %+v spans boundary 5", r)
	assert.Equal(t, 0, r.C0)
	assert.Equal(t, 4, r.C1)
}

func TestSnapRectToCuts_TieKeepsEarlierEdge(t *testing.T) {
	g := testGrid()
	c := cuts(nil, []int{4, 8})

	// left=6 is equidistant from 4 and 8; the earlier edge (4) wins
	r := g.SnapRectToCuts(model.Rect{R0: 5, C0: 6, R1: 15, C1: 10}, c)
	assert.Equal(t, 4, r.C0)
}

func TestSnapRectToCuts_DegenerateGuardWithAdjacentCuts(t *testing.T) {
	g := testGrid()
	c := cuts([]int{10}, []int{10})

	// Both column edges (c0=9 -> 10, right=11 -> 10) collapse onto boundary 10
	r := g.SnapRectToCuts(model.Rect{R0: 9, C0: 9, R1: 10, C1: 10}, c)
	assert.Equal(t, model.Rect{R0: 9, C0: 9, R1: 9, C1: 9}, r)
	assert.LessOrEqual(t, r.R0, r.R1)
	assert.LessOrEqual(t, r.C0, r.C1)
}

func TestSnapRectToCuts_DegenerateAtFarEdge(t *testing.T) {
	g := testGrid()

	// Both edges snap to N; the guard pulls the leading edge back to N-1
	r := g.SnapRectToCuts(model.Rect{R0: 19, C0: 24, R1: 19, C1: 24}, model.NewCutSet())
	assert.Equal(t, model.Rect{R0: 19, C0: 24, R1: 19, C1: 24}, r)
}

func TestSnapRectToCuts_NeverInverted(t *testing.T) {
	g := testGrid()
	c := cuts([]int{1, 2, 3, 10, 18, 19}, []int{1, 5, 6, 12, 23, 24})

	for r0 := 0; r0 < 20; r0 += 3 {
		for r1 := r0; r1 < 20; r1 += 4 {
			for c0 := 0; c0 < 25; c0 += 3 {
				for c1 := c0; c1 < 25; c1 += 5 {
					got := g.SnapRectToCuts(model.Rect{R0: r0, C0: c0, R1: r1, C1: c1}, c)
					require.LessOrEqual(t, got.R0, got.R1, "rows inverted for %d,%d,%d,%d", r0, c0, r1, c1)
					require.LessOrEqual(t, got.C0, got.C1, "cols inverted for %d,%d,%d,%d", r0, c0, r1, c1)
					require.GreaterOrEqual(t, got.R0, 0)
					require.Less(t, got.R1, 20)
					require.GreaterOrEqual(t, got.C0, 0)
					require.Less(t, got.C1, 25)
				}
			}
		}
	}
}

func TestCellBoundsAndBoundaryOffset(t *testing.T) {
	g := testGrid()

	x, y, w, h := g.CellBounds(model.Rect{R0: 1, C0: 2, R1: 3, C1: 2})
	assert.InDelta(t, 40.0, x, 0.001)
	assert.InDelta(t, 20.0, y, 0.001)
	assert.InDelta(t, 20.0, w, 0.001)
	assert.InDelta(t, 60.0, h, 0.001)
	assert.InDelta(t, 100.0, g.BoundaryOffset(5), 0.001)
}
