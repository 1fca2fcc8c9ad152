// Package ascramp loads ESRI ASCII grids, masks their no-data cells, and maps
// values to colors through matplotlib-compatible piecewise-linear color ramps.
package ascramp

import "math"

// DefaultNoData is the sentinel used when the header omits nodata_value.
const DefaultNoData = -9999.0

// Grid is a decoded ASCII grid.
// Values are stored row-major, northernmost row first: Values[row*Cols + col].
type Grid struct {
	Path        string // source name, for diagnostics
	Rows, Cols  int
	XLLCorner   float64 // lower-left corner, map units
	YLLCorner   float64
	CellSize    float64
	NoDataValue float64
	HasNoData   bool // header declared nodata_value
	Values      []float64
}

// Dims returns the number of rows and columns.
func (g *Grid) Dims() (rows, cols int) { return g.Rows, g.Cols }

// At returns the raw value at (row, col). It panics when out of range.
func (g *Grid) At(row, col int) float64 {
	return g.Values[row*g.Cols+col]
}

// yTop is the map y coordinate of the grid's upper edge.
func (g *Grid) yTop() float64 {
	return g.YLLCorner + float64(g.Rows)*g.CellSize
}

// CellAt maps a map coordinate to the cell containing it.
// Row 0 is the top (north) row. ok is false outside the grid extent.
func (g *Grid) CellAt(x, y float64) (row, col int, ok bool) {
	fc := math.Floor((x - g.XLLCorner) / g.CellSize)
	fr := math.Floor((g.yTop() - y) / g.CellSize)
	if math.IsNaN(fc) || math.IsNaN(fr) ||
		fc < 0 || fc >= float64(g.Cols) || fr < 0 || fr >= float64(g.Rows) {
		return 0, 0, false
	}
	return int(fr), int(fc), true
}

// CellCenter returns the map coordinate of the center of (row, col).
func (g *Grid) CellCenter(row, col int) (x, y float64) {
	x = g.XLLCorner + (float64(col)+0.5)*g.CellSize
	y = g.yTop() - (float64(row)+0.5)*g.CellSize
	return
}

// Lookup returns the raw value of the cell containing (x, y).
// Returns math.NaN() if the point falls outside the grid.
func (g *Grid) Lookup(x, y float64) float64 {
	row, col, ok := g.CellAt(x, y)
	if !ok {
		return math.NaN()
	}
	return g.At(row, col)
}
