package ascramp

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixture(t *testing.T) {
	for _, name := range []string{"testdata/dem_small.asc", "testdata/dem_small.asc.gz"} {
		t.Run(filepath.Base(name), func(t *testing.T) {
			g, err := Load(name)
			require.NoError(t, err)
			assert.Equal(t, name, g.Path)
			assert.Equal(t, 4, g.Rows)
			assert.Equal(t, 5, g.Cols)
			assert.Equal(t, 1000.0, g.XLLCorner)
			assert.Equal(t, 2000.0, g.YLLCorner)
			assert.Equal(t, 10.0, g.CellSize)

			m := Mask(g)
			assert.Equal(t, 2, m.NoDataCount())
			assert.False(t, m.At(1, 1).Valid)
			assert.False(t, m.At(3, 0).Valid)
			assert.Equal(t, 20.0, m.At(3, 4).Value)

			s := m.Stats()
			assert.Equal(t, 18, s.Count)
			assert.Equal(t, 1.0, s.Min)
			assert.Equal(t, 20.0, s.Max)
			assert.InDelta(t, 187.0/18, s.Mean, 1e-12)
		})
	}
}

func TestLoadCenterFixture(t *testing.T) {
	g, err := Load("testdata/center.asc")
	require.NoError(t, err)
	assert.Equal(t, 0.0, g.XLLCorner)
	assert.Equal(t, 0.0, g.YLLCorner)
	assert.False(t, g.HasNoData)
	assert.Equal(t, DefaultNoData, g.NoDataValue)
	assert.Equal(t, []float64{0.5, 1.5, 2.5, -1.25, -9999, 1000}, g.Values)
	assert.Equal(t, 1, Mask(g).NoDataCount())
}

func TestLoadMissingFile(t *testing.T) {
	g, err := Load(filepath.Join(t.TempDir(), "nope.asc"))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, KindIO, ErrorKind(err))
}

func TestLoadBadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.asc.gz")
	require.NoError(t, os.WriteFile(path, []byte("ncols 1\n"), 0o644))
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrIO)
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"grids/a.asc": {Data: []byte("ncols 1\nnrows 1\nxllcorner 0\nyllcorner 0\ncellsize 1\n42\n")},
		"grids/b.asc": {Data: []byte("ncols 2\nnrows 1\nxllcorner 0\nyllcorner 0\ncellsize 1\n42\n")},
	}
	g, err := LoadFS(fsys, "grids/a.asc")
	require.NoError(t, err)
	assert.Equal(t, []float64{42}, g.Values)

	_, err = LoadFS(fsys, "grids/b.asc")
	assert.True(t, errors.Is(err, ErrDimensionMismatch))

	_, err = LoadFS(fsys, "grids/c.asc")
	assert.ErrorIs(t, err, ErrIO)
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.asc", "a.ASC", "c.asc.gz", "notes.txt", "d.asc.bak"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.asc"), 0o755))

	names, err := ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.ASC", "b.asc", "c.asc.gz"}, names)

	_, err = ScanDir(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, ErrIO)
}
