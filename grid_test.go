package ascramp

import (
	"math"
	"testing"
)

// testGrid is 2 rows x 3 cols of 10 m cells with its lower-left corner at
// (100, 200), so the extent is x 100..130, y 200..220.
func testGrid() *Grid {
	return &Grid{
		Path: "mem", Rows: 2, Cols: 3,
		XLLCorner: 100, YLLCorner: 200, CellSize: 10,
		NoDataValue: -9999,
		Values:      []float64{1, 2, 3, 4, 5, 6},
	}
}

func TestCellAt(t *testing.T) {
	g := testGrid()
	tests := []struct {
		x, y     float64
		row, col int
		ok       bool
	}{
		{100, 220, 0, 0, true}, // upper-left corner belongs to the first cell
		{105, 215, 0, 0, true},
		{129.9, 200.1, 1, 2, true},
		{115, 210, 1, 1, true},  // interior corner falls to the lower/right cell
		{130, 210, 0, 0, false}, // right edge is exclusive
		{110, 200, 0, 0, false}, // bottom edge is exclusive
		{99.9, 210, 0, 0, false},
		{110, 220.1, 0, 0, false},
		{math.NaN(), 210, 0, 0, false},
	}
	for _, tt := range tests {
		row, col, ok := g.CellAt(tt.x, tt.y)
		if ok != tt.ok || (ok && (row != tt.row || col != tt.col)) {
			t.Errorf("CellAt(%g, %g) = (%d, %d, %v), want (%d, %d, %v)",
				tt.x, tt.y, row, col, ok, tt.row, tt.col, tt.ok)
		}
	}
}

func TestCellCenterRoundTrip(t *testing.T) {
	g := testGrid()
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			x, y := g.CellCenter(row, col)
			r, c, ok := g.CellAt(x, y)
			if !ok || r != row || c != col {
				t.Errorf("CellAt(CellCenter(%d, %d)) = (%d, %d, %v)", row, col, r, c, ok)
			}
		}
	}
	x, y := g.CellCenter(0, 0)
	if x != 105 || y != 215 {
		t.Errorf("CellCenter(0, 0) = (%g, %g), want (105, 215)", x, y)
	}
}

func TestGridLookup(t *testing.T) {
	g := testGrid()
	if v := g.Lookup(125, 205); v != 6 {
		t.Errorf("Lookup(125, 205) = %g, want 6", v)
	}
	if v := g.Lookup(0, 0); !math.IsNaN(v) {
		t.Errorf("Lookup outside extent = %g, want NaN", v)
	}
}
