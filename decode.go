package ascramp

import (
	"bufio"
	"io"
	"strings"
)

// maxLineBytes bounds a single text line; one row of a maximal-width grid
// fits comfortably.
const maxLineBytes = 256 << 20

// initialValues caps the up-front allocation; the header alone is not trusted
// to size the value slice.
const initialValues = 1 << 16

// Decode parses an ASCII grid from r. name identifies the source in errors.
// It never returns a partially populated Grid: on failure the Grid is nil and
// the error is an *Error or *DimensionError.
func Decode(r io.Reader, name string) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	h := newHeader()
	lineNo := 0
	nKeys := 0

	// Header: key/value lines until the first numeric line or six keys.
	var pending []string
	pendingLine := 0
	for nKeys < headerLines && sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if !isHeaderLine(fields) {
			pending, pendingLine = fields, lineNo
			break
		}
		if err := h.parseLine(name, lineNo, fields); err != nil {
			return nil, err
		}
		nKeys++
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{Kind: KindIO, Path: name, Line: lineNo, Msg: "reading header", Err: err}
	}

	g, err := h.grid(name)
	if err != nil {
		return nil, err
	}

	// Data: whitespace-separated reals, row-major. Values past the declared
	// count are only counted so the mismatch can be reported.
	want := g.Rows * g.Cols
	vals := make([]float64, 0, min(want, initialValues))
	var got int64
	shape := lineShape{}

	consume := func(fields []string, line int) error {
		shape.add(len(fields))
		for _, tok := range fields {
			v, ok := parseReal(tok)
			if !ok {
				return newError(KindValue, name, line, "value %d: %q is not a decimal number", got+1, tok)
			}
			if len(vals) < want {
				vals = append(vals, v)
			}
			got++
		}
		return nil
	}

	if pending != nil {
		if err := consume(pending, pendingLine); err != nil {
			return nil, err
		}
	}
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if err := consume(fields, lineNo); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{Kind: KindIO, Path: name, Line: lineNo, Msg: "reading data", Err: err}
	}

	if got != int64(want) {
		de := &DimensionError{Path: name, WantRows: g.Rows, WantCols: g.Cols, Got: got}
		de.GotRows, de.GotCols = shape.dims()
		return nil, de
	}

	g.Values = vals
	return g, nil
}

// lineShape tracks the number of non-empty data lines and whether they all
// have the same number of values.
type lineShape struct {
	lines  int
	cols   int
	ragged bool
}

func (s *lineShape) add(n int) {
	if s.lines == 0 {
		s.cols = n
	} else if n != s.cols {
		s.ragged = true
	}
	s.lines++
}

func (s *lineShape) dims() (rows, cols int) {
	if s.ragged || s.lines == 0 {
		return 0, 0
	}
	return s.lines, s.cols
}
