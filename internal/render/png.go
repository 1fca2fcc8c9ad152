package render

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/geal-ai/ascramp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Options controls a rendering.
type Options struct {
	Title   string              // default: "Heatmap of '<file>'" plus the colormap name
	Norm    *ascramp.Normalizer // clamp range; nil means the grid's valid range
	Samples int                 // palette size, default ascramp.DefaultSamples
	Width   vg.Length           // default 10 inches
	Height  vg.Length           // default 8 inches
}

// colorBarWidth is the strip reserved on the right for the color bar.
const colorBarWidth = 1.4 * vg.Inch

func (o Options) withDefaults(m *ascramp.MaskedGrid, r ascramp.Ramp) (Options, error) {
	if o.Title == "" {
		o.Title = fmt.Sprintf("Heatmap of '%s'\nColormap: '%s'", filepath.Base(m.Grid().Path), r.Name)
	}
	var norm ascramp.Normalizer
	if o.Norm != nil {
		norm = *o.Norm
	} else {
		n, ok := ascramp.AutoRange(m)
		if !ok {
			return o, fmt.Errorf("render %s: grid has no valid cells", m.Grid().Path)
		}
		norm = n
	}
	// Color bars and heat map indexing need a non-empty range.
	if !(norm.Max > norm.Min) {
		norm.Max = norm.Min + 1
	}
	o.Norm = &norm
	if o.Samples <= 1 {
		o.Samples = ascramp.DefaultSamples
	}
	if o.Width <= 0 {
		o.Width = 10 * vg.Inch
	}
	if o.Height <= 0 {
		o.Height = 8 * vg.Inch
	}
	return o, nil
}

// gridXYZ adapts a MaskedGrid to plotter.GridXYZ. Row index r counts from the
// south edge so the image is north-up; coordinates are cell centers in map
// units and NoData cells are NaN, which the heat map leaves unpainted.
type gridXYZ struct {
	m        *ascramp.MaskedGrid
	min, max float64
}

func (g gridXYZ) Dims() (c, r int) {
	rows, cols := g.m.Dims()
	return cols, rows
}

func (g gridXYZ) Z(c, r int) float64 {
	rows, _ := g.m.Dims()
	return g.m.Value(rows-1-r, c)
}

func (g gridXYZ) X(c int) float64 {
	x, _ := g.m.Grid().CellCenter(0, c)
	return x
}

func (g gridXYZ) Y(r int) float64 {
	rows, _ := g.m.Dims()
	_, y := g.m.Grid().CellCenter(rows-1-r, 0)
	return y
}

func (g gridXYZ) Min() float64 { return g.min }
func (g gridXYZ) Max() float64 { return g.max }

// PNG draws m through ramp r as a heat map with a vertical color bar and
// writes the image to w in PNG format.
func PNG(w io.Writer, m *ascramp.MaskedGrid, r ascramp.Ramp, opts Options) error {
	opts, err := opts.withDefaults(m, r)
	if err != nil {
		return err
	}
	table, err := ascramp.Bake(r, opts.Samples)
	if err != nil {
		return fmt.Errorf("render %s: %w", m.Grid().Path, err)
	}

	heat := plot.New()
	heat.Title.Text = opts.Title
	heat.X.Label.Text = "Easting"
	heat.Y.Label.Text = "Northing"

	h := plotter.NewHeatMap(gridXYZ{m: m, min: opts.Norm.Min, max: opts.Norm.Max}, table)
	h.Min, h.Max = opts.Norm.Min, opts.Norm.Max
	h.Underflow = table[0]
	h.Overflow = table[len(table)-1]
	heat.Add(h)

	bar := plot.New()
	bar.HideX()
	bar.Y.Label.Text = "Scalar Value"
	bar.Add(&plotter.ColorBar{
		ColorMap: NewRampColorMap(r, opts.Norm.Min, opts.Norm.Max),
		Vertical: true,
		Colors:   opts.Samples,
	})

	img := vgimg.New(opts.Width, opts.Height)
	dc := draw.New(img)
	heat.Draw(draw.Crop(dc, 0, -colorBarWidth, 0, 0))
	bar.Draw(draw.Crop(dc, opts.Width-colorBarWidth, 0, 0, 0))

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("render %s: writing png: %w", m.Grid().Path, err)
	}
	return nil
}
