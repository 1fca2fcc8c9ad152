package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/geal-ai/ascramp"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// maxHTMLAxis caps the cells per axis in an HTML heat map; larger grids are
// subsampled with a uniform stride.
const maxHTMLAxis = 200

// visualMapColors is the number of table colors handed to the visual map.
const visualMapColors = 16

// HTML writes an interactive go-echarts heat map of m colored by ramp r.
// NoData cells are left out of the series.
func HTML(w io.Writer, m *ascramp.MaskedGrid, r ascramp.Ramp, o Options) error {
	o, err := o.withDefaults(m, r)
	if err != nil {
		return err
	}
	table, err := ascramp.Bake(r, visualMapColors)
	if err != nil {
		return fmt.Errorf("render %s: %w", m.Grid().Path, err)
	}
	hex := make([]string, len(table))
	for i, c := range table {
		hex[i] = c.Hex()
	}

	rows, cols := m.Dims()
	stride := max((rows+maxHTMLAxis-1)/maxHTMLAxis, (cols+maxHTMLAxis-1)/maxHTMLAxis, 1)

	var xs []string
	for c := 0; c < cols; c += stride {
		xs = append(xs, strconv.Itoa(c))
	}
	// Category 0 is the bottom of the chart, so rows are listed south first.
	var ys []string
	var rowIdx []int
	for row := rows - 1; row >= 0; row -= stride {
		ys = append(ys, strconv.Itoa(row))
		rowIdx = append(rowIdx, row)
	}

	data := make([]opts.HeatMapData, 0, len(xs)*len(ys))
	for yi, row := range rowIdx {
		for xi := range xs {
			cell := m.At(row, xi*stride)
			if !cell.Valid {
				continue
			}
			data = append(data, opts.HeatMapData{Value: []interface{}{xi, yi, cell.Value}})
		}
	}

	title := filepath.Base(m.Grid().Path)
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "800px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("colormap=%s stride=%d", r.Name, stride)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ys, Name: "Rows"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(o.Norm.Min),
			Max:        float32(o.Norm.Max),
			InRange:    &opts.VisualMapInRange{Color: hex},
		}),
	)
	hm.SetXAxis(xs).AddSeries("values", data)

	if err := hm.Render(w); err != nil {
		return fmt.Errorf("render %s: html: %w", m.Grid().Path, err)
	}
	return nil
}
