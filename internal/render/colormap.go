// Package render draws masked grids through a color ramp: PNG heatmaps with a
// color bar via gonum/plot and interactive HTML heatmaps via go-echarts.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/geal-ai/ascramp"
	"gonum.org/v1/plot/palette"
)

// RampColorMap evaluates a ramp on demand for values in [Min, Max]. It
// implements gonum's palette.ColorMap, so plotter.ColorBar can draw it.
type RampColorMap struct {
	ramp     ascramp.Ramp
	min, max float64
	alpha    float64
}

var _ palette.ColorMap = (*RampColorMap)(nil)

// NewRampColorMap returns a fully opaque color map over [min, max].
func NewRampColorMap(r ascramp.Ramp, min, max float64) *RampColorMap {
	return &RampColorMap{ramp: r, min: min, max: max, alpha: 1}
}

// At returns the ramp color for v. Values outside [Min, Max] and NaN return
// the palette package's range errors.
func (m *RampColorMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < m.min:
		return nil, palette.ErrUnderflow
	case v > m.max:
		return nil, palette.ErrOverflow
	}
	t := 0.0
	if m.max > m.min {
		t = (v - m.min) / (m.max - m.min)
	}
	return m.color(t), nil
}

func (m *RampColorMap) color(t float64) color.Color {
	c, a := m.ramp.SampleRGBA(t)
	a *= m.alpha
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

func (m *RampColorMap) Max() float64     { return m.max }
func (m *RampColorMap) Min() float64     { return m.min }
func (m *RampColorMap) SetMax(v float64) { m.max = v }
func (m *RampColorMap) SetMin(v float64) { m.min = v }
func (m *RampColorMap) Alpha() float64   { return m.alpha }

// SetAlpha sets the opacity. It panics when a is outside [0, 1], as the
// palette.ColorMap contract requires.
func (m *RampColorMap) SetAlpha(a float64) {
	if a < 0 || a > 1 {
		panic(fmt.Sprintf("render: alpha %g outside [0, 1]", a))
	}
	m.alpha = a
}

// Palette bakes n colors spanning the ramp.
func (m *RampColorMap) Palette(n int) palette.Palette {
	cs := make(colorList, 0, n)
	for _, t := range ascramp.Linspace(n) {
		cs = append(cs, m.color(t))
	}
	return cs
}

type colorList []color.Color

func (c colorList) Colors() []color.Color { return c }
