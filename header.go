package ascramp

import (
	"math"
	"strconv"
	"strings"
)

// Header keys, compared case-insensitively.
const (
	keyNCols     = "ncols"
	keyNRows     = "nrows"
	keyXLLCorner = "xllcorner"
	keyYLLCorner = "yllcorner"
	keyXLLCenter = "xllcenter"
	keyYLLCenter = "yllcenter"
	keyCellSize  = "cellsize"
	keyNoData    = "nodata_value"
)

// headerLines is the maximum number of key/value lines before the matrix.
const headerLines = 6

// Input sanity limits, well above any raster that fits in memory.
const (
	// maxGridDim caps nrows and ncols individually.
	maxGridDim = 1_000_000

	// maxCells caps nrows*ncols so a forged header cannot trigger a huge
	// allocation before the data is read.
	maxCells = 1 << 28
)

// parseReal parses a finite number written in decimal or scientific
// notation. Hex floats, infinities and NaN are rejected even though
// strconv accepts them.
func parseReal(tok string) (float64, bool) {
	if strings.ContainsAny(tok, "xX") {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// header collects the raw key/value pairs of a grid header.
type header struct {
	vals map[string]float64
	line map[string]int // line each key was read from
}

func newHeader() *header {
	return &header{vals: make(map[string]float64, headerLines), line: make(map[string]int, headerLines)}
}

// isHeaderLine reports whether fields look like a "<key> <value>" line rather
// than data: the first token is not a number.
func isHeaderLine(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(fields[0], 64)
	return err != nil
}

// parseLine records one "<key> <value>" header line.
func (h *header) parseLine(path string, lineNo int, fields []string) error {
	key := strings.ToLower(fields[0])
	switch key {
	case keyNCols, keyNRows, keyXLLCorner, keyYLLCorner, keyXLLCenter, keyYLLCenter, keyCellSize, keyNoData:
	default:
		return newError(KindHeader, path, lineNo, "unknown header key %q", fields[0])
	}
	if _, dup := h.vals[key]; dup {
		return newError(KindHeader, path, lineNo, "duplicate header key %q (first on line %d)", fields[0], h.line[key])
	}
	if len(fields) < 2 {
		return newError(KindHeader, path, lineNo, "header key %q has no value", fields[0])
	}
	if len(fields) > 2 {
		return newError(KindHeader, path, lineNo, "header key %q: unexpected trailing %q", fields[0], strings.Join(fields[2:], " "))
	}
	v, ok := parseReal(fields[1])
	if !ok {
		return newError(KindHeader, path, lineNo, "header key %q: value %q is not a decimal number", fields[0], fields[1])
	}
	h.vals[key] = v
	h.line[key] = lineNo
	return nil
}

// grid validates the collected header and returns a Grid with no values yet.
func (h *header) grid(path string) (*Grid, error) {
	ncols, err := h.dim(path, keyNCols)
	if err != nil {
		return nil, err
	}
	nrows, err := h.dim(path, keyNRows)
	if err != nil {
		return nil, err
	}
	if int64(ncols)*int64(nrows) > maxCells {
		return nil, newError(KindHeader, path, 0, "grid %dx%d exceeds %d cells", nrows, ncols, maxCells)
	}

	cell, ok := h.vals[keyCellSize]
	if !ok {
		return nil, newError(KindHeader, path, 0, "missing required key %q", keyCellSize)
	}
	if !(cell > 0) || math.IsInf(cell, 1) {
		return nil, newError(KindHeader, path, h.line[keyCellSize], "%s must be positive and finite, got %g", keyCellSize, cell)
	}

	xll, err := h.corner(path, keyXLLCorner, keyXLLCenter, cell)
	if err != nil {
		return nil, err
	}
	yll, err := h.corner(path, keyYLLCorner, keyYLLCenter, cell)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		Path:        path,
		Rows:        nrows,
		Cols:        ncols,
		XLLCorner:   xll,
		YLLCorner:   yll,
		CellSize:    cell,
		NoDataValue: DefaultNoData,
	}
	if nd, ok := h.vals[keyNoData]; ok {
		g.NoDataValue = nd
		g.HasNoData = true
	}
	return g, nil
}

// dim returns a required positive integer dimension.
func (h *header) dim(path, key string) (int, error) {
	v, ok := h.vals[key]
	if !ok {
		return 0, newError(KindHeader, path, 0, "missing required key %q", key)
	}
	if !(v >= 1 && v <= maxGridDim) {
		return 0, newError(KindHeader, path, h.line[key], "%s=%g out of valid range [1, %d]", key, v, maxGridDim)
	}
	if v != math.Trunc(v) {
		return 0, newError(KindHeader, path, h.line[key], "%s must be an integer, got %g", key, v)
	}
	return int(v), nil
}

// corner returns the lower-left corner coordinate, accepting either the
// corner key or the center key (converted by half a cell).
func (h *header) corner(path, cornerKey, centerKey string, cell float64) (float64, error) {
	c, hasCorner := h.vals[cornerKey]
	m, hasCenter := h.vals[centerKey]
	switch {
	case hasCorner && hasCenter:
		return 0, newError(KindHeader, path, h.line[centerKey], "both %q and %q given", cornerKey, centerKey)
	case hasCorner:
		return c, nil
	case hasCenter:
		return m - cell/2, nil
	}
	return 0, newError(KindHeader, path, 0, "missing required key %q", cornerKey)
}
