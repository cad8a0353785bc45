// Package canvas rasterizes the game figures onto terminal cells and maps
// terminal positions back into scene units.
package canvas

import "math"

// CellAspect is how many times taller a terminal cell is than it is wide.
const CellAspect = 2.0

// Point is a position in scene units.
type Point struct {
	X, Y float64
}

// Viewport maps a SceneW×SceneH scene onto Cols×Rows cells.
type Viewport struct {
	Cols, Rows     int
	SceneW, SceneH float64
}

// NewViewport fits the scene to cols columns, choosing rows so the figure
// keeps its proportions on screen.
func NewViewport(cols int, sceneW, sceneH float64) Viewport {
	if cols < 1 {
		cols = 1
	}
	rows := int(math.Round(float64(cols) * sceneH / sceneW / CellAspect))
	if rows < 1 {
		rows = 1
	}
	return Viewport{Cols: cols, Rows: rows, SceneW: sceneW, SceneH: sceneH}
}

// ToCell returns the cell containing scene point p. The result may fall
// outside the grid.
func (v Viewport) ToCell(p Point) (col, row int) {
	col = int(math.Floor(p.X / v.SceneW * float64(v.Cols)))
	row = int(math.Floor(p.Y / v.SceneH * float64(v.Rows)))
	return col, row
}

// ToScene returns the scene point at the center of a cell.
func (v Viewport) ToScene(col, row int) Point {
	return Point{
		X: (float64(col) + 0.5) * v.SceneW / float64(v.Cols),
		Y: (float64(row) + 0.5) * v.SceneH / float64(v.Rows),
	}
}

// Contains reports whether the cell lies on the grid.
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}

// CellWidth is the scene width of one column.
func (v Viewport) CellWidth() float64 { return v.SceneW / float64(v.Cols) }

// CellHeight is the scene height of one row.
func (v Viewport) CellHeight() float64 { return v.SceneH / float64(v.Rows) }
