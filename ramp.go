package ascramp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ControlPoint is one (position, value) anchor of a ramp channel.
type ControlPoint struct {
	Pos   float64
	Value float64
}

// Channel is an ordered list of control points for one color component.
// Positions must be non-decreasing, starting at 0 and ending at 1. A repeated
// position encodes a hard break: the earlier point's value applies at the
// break itself and the later point's value strictly after it.
type Channel []ControlPoint

// Eval returns the channel value at pos.
//
// pos is clamped to [0, 1]. The segment is located the way matplotlib's
// lookup table builder does (first point with Pos >= pos), the value is
// linearly interpolated with the same operation order, and the result is
// clipped to [0, 1]. Outside the first/last point the endpoint value is held.
func (c Channel) Eval(pos float64) float64 {
	n := len(c)
	if n == 0 {
		return 0
	}
	pos = clamp01(pos)
	if pos >= c[n-1].Pos {
		return clamp01(c[n-1].Value)
	}
	k := sort.Search(n, func(i int) bool { return c[i].Pos >= pos })
	if k == 0 {
		return clamp01(c[0].Value)
	}
	// c[k-1].Pos < pos <= c[k].Pos, so the segment is never empty.
	p0, p1 := c[k-1], c[k]
	frac := (pos - p0.Pos) / (p1.Pos - p0.Pos)
	return clamp01(frac*(p1.Value-p0.Value) + p0.Value)
}

// validate checks the point count and ordering of a channel.
func (c Channel) validate(ramp, name string) error {
	if len(c) < 2 {
		return newError(KindDegenerateRamp, ramp, 0, "%s channel has %d control points, need at least 2", name, len(c))
	}
	if c[0].Pos != 0 || c[len(c)-1].Pos != 1 {
		return newError(KindUnorderedRamp, ramp, 0, "%s channel must start at 0 and end at 1, got %g..%g",
			name, c[0].Pos, c[len(c)-1].Pos)
	}
	for i := 1; i < len(c); i++ {
		if c[i].Pos < c[i-1].Pos {
			return newError(KindUnorderedRamp, ramp, 0, "%s channel position %d (%g) is before position %d (%g)",
				name, i, c[i].Pos, i-1, c[i-1].Pos)
		}
	}
	return nil
}

// Ramp is a piecewise-linear colormap defined per channel. Alpha is optional;
// when present it is evaluated like the color channels.
type Ramp struct {
	Name  string
	Red   Channel
	Green Channel
	Blue  Channel
	Alpha Channel
}

// Validate reports a DegenerateRamp error when a channel has fewer than two
// control points and an UnorderedRamp error when positions decrease or the
// endpoints 0 and 1 are not covered.
func (r Ramp) Validate() error {
	names := []string{"red", "green", "blue", "alpha"}
	for i, c := range []Channel{r.Red, r.Green, r.Blue, r.Alpha} {
		if c == nil && i == 3 {
			continue
		}
		if err := c.validate(r.Name, names[i]); err != nil {
			return err
		}
	}
	return nil
}

// Sample returns the RGB color at pos in [0, 1]. Any alpha channel is ignored.
func (r Ramp) Sample(pos float64) colorful.Color {
	return colorful.Color{R: r.Red.Eval(pos), G: r.Green.Eval(pos), B: r.Blue.Eval(pos)}
}

// SampleRGBA returns the RGB color and alpha at pos. Alpha is 1 when the
// ramp has no alpha channel.
func (r Ramp) SampleRGBA(pos float64) (colorful.Color, float64) {
	a := 1.0
	if r.Alpha != nil {
		a = r.Alpha.Eval(pos)
	}
	return r.Sample(pos), a
}

// Stop is one entry of a position/color stop list.
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// FromStops builds a Ramp from a stop list, one channel per component, as
// matplotlib's LinearSegmentedColormap.from_list does.
func FromStops(name string, stops []Stop) Ramp {
	r := Ramp{
		Name:  name,
		Red:   make(Channel, len(stops)),
		Green: make(Channel, len(stops)),
		Blue:  make(Channel, len(stops)),
	}
	for i, s := range stops {
		r.Red[i] = ControlPoint{s.Pos, s.Color.R}
		r.Green[i] = ControlPoint{s.Pos, s.Color.G}
		r.Blue[i] = ControlPoint{s.Pos, s.Color.B}
	}
	return r
}

// EvenStops spaces colors evenly over [0, 1].
func EvenStops(colors ...colorful.Color) []Stop {
	pos := Linspace(len(colors))
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		stops[i] = Stop{Pos: pos[i], Color: c}
	}
	return stops
}

// ParseStops parses "#rrggbb:pos" arguments into a stop list. When no
// argument carries a position, the colors are spaced evenly.
func ParseStops(args []string) ([]Stop, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("need at least 2 color stops, got %d", len(args))
	}
	stops := make([]Stop, len(args))
	withPos := 0
	for i, a := range args {
		hex, posStr, hasPos := strings.Cut(a, ":")
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("stop %d: invalid color %q: %w", i, hex, err)
		}
		stops[i].Color = c
		if hasPos {
			p, err := strconv.ParseFloat(posStr, 64)
			if err != nil {
				return nil, fmt.Errorf("stop %d: invalid position %q: %w", i, posStr, err)
			}
			if p < 0 || p > 1 {
				return nil, fmt.Errorf("stop %d: position %g outside [0, 1]", i, p)
			}
			stops[i].Pos = p
			withPos++
		}
	}
	switch withPos {
	case 0:
		pos := Linspace(len(stops))
		for i := range stops {
			stops[i].Pos = pos[i]
		}
	case len(stops):
	default:
		return nil, fmt.Errorf("either all or none of the stops must carry a position")
	}
	return stops, nil
}
