package ascramp

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Cell is one masked grid sample. A cell with Valid == false is NoData and
// its Value is meaningless.
type Cell struct {
	Value float64
	Valid bool
}

// MaskedGrid is a read-only view of a Grid with its sentinel cells removed.
type MaskedGrid struct {
	grid   *Grid
	valid  []bool
	nodata int
}

// Mask classifies every cell of g. A cell is NoData iff its raw value equals
// g.NoDataValue exactly; no tolerance is applied.
func Mask(g *Grid) *MaskedGrid {
	m := &MaskedGrid{grid: g, valid: make([]bool, len(g.Values))}
	for i, v := range g.Values {
		if v == g.NoDataValue {
			m.nodata++
			continue
		}
		m.valid[i] = true
	}
	return m
}

// Grid returns the underlying raw grid.
func (m *MaskedGrid) Grid() *Grid { return m.grid }

// Dims returns the number of rows and columns.
func (m *MaskedGrid) Dims() (rows, cols int) { return m.grid.Rows, m.grid.Cols }

// At returns the cell at (row, col). It panics when out of range.
func (m *MaskedGrid) At(row, col int) Cell {
	i := row*m.grid.Cols + col
	if !m.valid[i] {
		return Cell{}
	}
	return Cell{Value: m.grid.Values[i], Valid: true}
}

// Value returns the value at (row, col), or NaN for NoData.
func (m *MaskedGrid) Value(row, col int) float64 {
	c := m.At(row, col)
	if !c.Valid {
		return math.NaN()
	}
	return c.Value
}

// NoDataCount returns the number of NoData cells.
func (m *MaskedGrid) NoDataCount() int { return m.nodata }

// ValidCount returns the number of valid cells.
func (m *MaskedGrid) ValidCount() int { return len(m.valid) - m.nodata }

// ValidValues returns the valid values in row-major order.
func (m *MaskedGrid) ValidValues() []float64 {
	out := make([]float64, 0, m.ValidCount())
	for i, ok := range m.valid {
		if ok {
			out = append(out, m.grid.Values[i])
		}
	}
	return out
}

// Range returns the minimum and maximum valid values. ok is false when every
// cell is NoData.
func (m *MaskedGrid) Range() (min, max float64, ok bool) {
	vals := m.ValidValues()
	if len(vals) == 0 {
		return 0, 0, false
	}
	return floats.Min(vals), floats.Max(vals), true
}

// Stats summarises the valid cells of a grid.
type Stats struct {
	Count  int
	NoData int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Stats computes summary statistics over the valid cells. All float fields
// are NaN when there are no valid cells.
func (m *MaskedGrid) Stats() Stats {
	vals := m.ValidValues()
	s := Stats{Count: len(vals), NoData: m.nodata}
	if len(vals) == 0 {
		nan := math.NaN()
		s.Min, s.Max, s.Mean, s.StdDev = nan, nan, nan, nan
		return s
	}
	s.Min, s.Max = floats.Min(vals), floats.Max(vals)
	s.Mean, s.StdDev = stat.MeanStdDev(vals, nil)
	if len(vals) == 1 {
		s.StdDev = 0
	}
	return s
}
