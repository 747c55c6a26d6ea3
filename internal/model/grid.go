package model

import "fmt"

// GridConfig describes the fixed layout of the drawing surface.
// All sizes are in surface pixels.
type GridConfig struct {
	Rows       int     `json:"rows"`
	Cols       int     `json:"cols"`
	CellSize   float64 `json:"cell_size"`
	GutterSize float64 `json:"gutter_size"` // Width of the top/left cut gutters
	Padding    float64 `json:"padding"`     // Outer padding around gutters and grid
}

// DefaultGridConfig returns a 20 x 25 grid.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Rows:       20,
		Cols:       25,
		CellSize:   24,
		GutterSize: 24,
		Padding:    16,
	}
}

// Validate reports the first invalid field, if any.
func (g GridConfig) Validate() error {
	// Cuts live on interior boundaries, so each axis needs at least one.
	if g.Rows < 2 || g.Cols < 2 {
		return fmt.Errorf("grid must have at least two rows and columns, got %dx%d", g.Rows, g.Cols)
	}
	if g.CellSize <= 0 {
		return fmt.Errorf("cell size must be > 0, got %g", g.CellSize)
	}
	if g.GutterSize < 0 || g.Padding < 0 {
		return fmt.Errorf("gutter and padding must be >= 0, got %g and %g", g.GutterSize, g.Padding)
	}
	return nil
}

// Origin returns the surface offset of cell (0,0) on both axes.
func (g GridConfig) Origin() float64 {
	return g.Padding + g.GutterSize
}

// GridWidth returns the pixel width of the cell area.
func (g GridConfig) GridWidth() float64 {
	return float64(g.Cols) * g.CellSize
}

// GridHeight returns the pixel height of the cell area.
func (g GridConfig) GridHeight() float64 {
	return float64(g.Rows) * g.CellSize
}

// SurfaceWidth returns the total width including gutter and padding.
func (g GridConfig) SurfaceWidth() float64 {
	return g.Padding + g.GutterSize + g.GridWidth() + g.Padding
}

// SurfaceHeight returns the total height including gutter and padding.
func (g GridConfig) SurfaceHeight() float64 {
	return g.Padding + g.GutterSize + g.GridHeight() + g.Padding
}

// Cell addresses a single matrix entry, 0-indexed.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Rect is an inclusive cell range. After normalization R0 <= R1 and C0 <= C1.
type Rect struct {
	R0 int `json:"r0"`
	C0 int `json:"c0"`
	R1 int `json:"r1"`
	C1 int `json:"c1"`
}

// RectFromCells builds a rectangle spanning two corner cells, unnormalized.
func RectFromCells(a, b Cell) Rect {
	return Rect{R0: a.Row, C0: a.Col, R1: b.Row, C1: b.Col}
}

// Rows returns the number of rows covered by a normalized rectangle.
func (r Rect) Rows() int {
	return r.R1 - r.R0 + 1
}

// Cols returns the number of columns covered by a normalized rectangle.
func (r Rect) Cols() int {
	return r.C1 - r.C0 + 1
}

// TopLeft returns the (R0, C0) corner.
func (r Rect) TopLeft() Cell {
	return Cell{Row: r.R0, Col: r.C0}
}

// BottomRight returns the (R1, C1) corner.
func (r Rect) BottomRight() Cell {
	return Cell{Row: r.R1, Col: r.C1}
}

// Label is the gallery heading, e.g. "r2–5, c0–4 (4×5)".
func (r Rect) Label() string {
	return fmt.Sprintf("r%d–%d, c%d–%d (%d×%d)", r.R0, r.R1, r.C0, r.C1, r.Rows(), r.Cols())
}

// Matrix is a rectangular 2-D array of values addressed [row][col].
type Matrix [][]int

// NewMatrix creates a rows x cols matrix filled row-major with 1..rows*cols.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := 0; i < rows; i++ {
		row := make([]int, cols)
		for j := 0; j < cols; j++ {
			row[j] = i*cols + j + 1
		}
		m[i] = row
	}
	return m
}

// Rows returns the row count.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the column count, 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// At returns the value at (r, c).
func (m Matrix) At(r, c int) int {
	return m[r][c]
}

// Slice returns an independent copy of the inclusive range covered by rect.
// The rectangle must be normalized and inside the matrix.
func (m Matrix) Slice(rect Rect) Matrix {
	out := make(Matrix, 0, rect.Rows())
	for r := rect.R0; r <= rect.R1; r++ {
		row := make([]int, rect.Cols())
		copy(row, m[r][rect.C0:rect.C1+1])
		out = append(out, row)
	}
	return out
}
