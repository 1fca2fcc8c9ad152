package render

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/geal-ai/ascramp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
)

func testGrid(t *testing.T) *ascramp.MaskedGrid {
	t.Helper()
	src := `ncols 4
nrows 3
xllcorner 500000
yllcorner 4000000
cellsize 30
nodata_value -9999
1 2 3 4
5 -9999 7 8
9 10 11 12
`
	g, err := ascramp.Decode(strings.NewReader(src), "dem.asc")
	require.NoError(t, err)
	return ascramp.Mask(g)
}

func TestRampColorMap(t *testing.T) {
	cm := NewRampColorMap(ascramp.Gray, 0, 10)

	c, err := cm.At(5)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 255}, c)

	c, err = cm.At(10)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, c)

	_, err = cm.At(-1)
	assert.ErrorIs(t, err, palette.ErrUnderflow)
	_, err = cm.At(11)
	assert.ErrorIs(t, err, palette.ErrOverflow)
	_, err = cm.At(math.NaN())
	assert.ErrorIs(t, err, palette.ErrNaN)

	cm.SetAlpha(0.5)
	c, _ = cm.At(0)
	assert.Equal(t, uint8(128), c.(color.NRGBA).A)
	assert.Panics(t, func() { cm.SetAlpha(2) })

	cm.SetMin(2)
	cm.SetMax(4)
	assert.Equal(t, 2.0, cm.Min())
	assert.Equal(t, 4.0, cm.Max())

	assert.Len(t, cm.Palette(7).Colors(), 7)
}

func TestGridXYZNorthUp(t *testing.T) {
	m := testGrid(t)
	g := gridXYZ{m: m}
	c, r := g.Dims()
	assert.Equal(t, 4, c)
	assert.Equal(t, 3, r)
	// r = 0 is the southern row.
	assert.Equal(t, 9.0, g.Z(0, 0))
	assert.Equal(t, 4.0, g.Z(3, 2))
	assert.True(t, math.IsNaN(g.Z(1, 1)))
	assert.Equal(t, 500015.0, g.X(0))
	assert.Equal(t, 4000015.0, g.Y(0))
	assert.Equal(t, 4000075.0, g.Y(2))
}

func TestPNG(t *testing.T) {
	m := testGrid(t)
	var buf bytes.Buffer
	err := PNG(&buf, m, ascramp.GistEarth, Options{Width: 4 * vg.Inch, Height: 3 * vg.Inch})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 0)
	assert.Greater(t, img.Bounds().Dy(), 0)
}

func TestPNGManualRange(t *testing.T) {
	m := testGrid(t)
	var buf bytes.Buffer
	norm := ascramp.ManualRange(0, 100)
	opts := Options{Norm: &norm, Samples: 16, Width: 3 * vg.Inch, Height: 3 * vg.Inch}
	require.NoError(t, PNG(&buf, m, ascramp.Jet, opts))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestRenderAllNoData(t *testing.T) {
	g, err := ascramp.Decode(strings.NewReader("ncols 1\nnrows 1\nxllcorner 0\nyllcorner 0\ncellsize 1\nnodata_value 0\n0\n"), "empty.asc")
	require.NoError(t, err)
	m := ascramp.Mask(g)

	var buf bytes.Buffer
	assert.Error(t, PNG(&buf, m, ascramp.Gray, Options{}))
	assert.Error(t, HTML(&buf, m, ascramp.Gray, Options{}))

	// A manual range still renders an all-blank map.
	norm := ascramp.ManualRange(0, 1)
	assert.NoError(t, PNG(&buf, m, ascramp.Gray, Options{Norm: &norm, Width: 2 * vg.Inch, Height: 2 * vg.Inch}))
}

func TestHTML(t *testing.T) {
	m := testGrid(t)
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, m, ascramp.Terrain, Options{}))
	out := buf.String()
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "dem.asc")
	assert.Contains(t, out, "heatmap")
	assert.Contains(t, out, "colormap=terrain")
}

func TestDefaultTitle(t *testing.T) {
	m := testGrid(t)
	o, err := Options{}.withDefaults(m, ascramp.Jet)
	require.NoError(t, err)
	assert.Equal(t, "Heatmap of 'dem.asc'\nColormap: 'jet'", o.Title)
	assert.Equal(t, 1.0, o.Norm.Min)
	assert.Equal(t, 12.0, o.Norm.Max)
	assert.Equal(t, ascramp.DefaultSamples, o.Samples)
}

func TestManualRangeIsKept(t *testing.T) {
	m := testGrid(t)

	// A manual range equal to the zero value must not fall back to the grid range.
	zero := ascramp.ManualRange(0, 0)
	o, err := Options{Norm: &zero}.withDefaults(m, ascramp.Gray)
	require.NoError(t, err)
	assert.Equal(t, ascramp.Normalizer{Min: 0, Max: 1}, *o.Norm)
	assert.Equal(t, ascramp.Normalizer{}, zero, "caller's range modified")

	narrow := ascramp.ManualRange(5, 6)
	o, err = Options{Norm: &narrow}.withDefaults(m, ascramp.Gray)
	require.NoError(t, err)
	assert.Equal(t, narrow, *o.Norm)
}
