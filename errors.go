package ascramp

import (
	"errors"
	"fmt"
)

// Kind classifies a loader or ramp failure.
type Kind int

const (
	KindIO                Kind = iota + 1 // source missing or unreadable
	KindHeader                            // malformed or missing header field
	KindValue                             // non-numeric token in the data matrix
	KindDimensionMismatch                 // declared shape disagrees with the data
	KindDegenerateRamp                    // a channel has fewer than two control points
	KindUnorderedRamp                     // positions decrease or miss an endpoint
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "IOError"
	case KindHeader:
		return "HeaderParseError"
	case KindValue:
		return "ValueParseError"
	case KindDimensionMismatch:
		return "DimensionMismatch"
	case KindDegenerateRamp:
		return "DegenerateRamp"
	case KindUnorderedRamp:
		return "UnorderedRamp"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinels for errors.Is. Every *Error and *DimensionError matches the
// sentinel of its kind.
var (
	ErrIO                = errors.New("io error")
	ErrHeader            = errors.New("header parse error")
	ErrValue             = errors.New("value parse error")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrDegenerateRamp    = errors.New("degenerate ramp")
	ErrUnorderedRamp     = errors.New("unordered ramp")
)

func (k Kind) sentinel() error {
	switch k {
	case KindIO:
		return ErrIO
	case KindHeader:
		return ErrHeader
	case KindValue:
		return ErrValue
	case KindDimensionMismatch:
		return ErrDimensionMismatch
	case KindDegenerateRamp:
		return ErrDegenerateRamp
	case KindUnorderedRamp:
		return ErrUnorderedRamp
	}
	return nil
}

// Error is the tagged failure returned by the loader and by ramp validation.
// Path is the grid source name or the ramp name; Line is 1-based and zero
// when not applicable.
type Error struct {
	Kind Kind
	Path string
	Line int
	Msg  string
	Err  error // underlying cause, if any
}

func (e *Error) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	if loc == "" {
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s: %s", loc, e.Kind, msg)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newError(kind Kind, path string, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, Path: path, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// DimensionError reports a grid whose value count disagrees with the header.
// GotRows/GotCols describe the data lines when they form a rectangle and are
// zero otherwise.
type DimensionError struct {
	Path     string
	WantRows int
	WantCols int
	Got      int64 // number of values actually present
	GotRows  int
	GotCols  int
}

func (e *DimensionError) Error() string {
	shape := ""
	if e.GotRows > 0 && e.GotCols > 0 {
		shape = fmt.Sprintf(" in shape (%d, %d)", e.GotRows, e.GotCols)
	}
	return fmt.Sprintf("%s: %s: data has %d values%s, header declares (%d, %d) = %d",
		e.Path, KindDimensionMismatch, e.Got, shape,
		e.WantRows, e.WantCols, int64(e.WantRows)*int64(e.WantCols))
}

// Is makes errors.Is(err, ErrDimensionMismatch) hold.
func (e *DimensionError) Is(target error) bool { return target == ErrDimensionMismatch }

// ErrorKind returns the Kind carried by err, or 0 when err is not one of
// this package's errors.
func ErrorKind(err error) Kind {
	var de *DimensionError
	if errors.As(err, &de) {
		return KindDimensionMismatch
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
