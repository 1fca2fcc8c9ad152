package ascramp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsValid(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{
		"bwr", "gist_earth", "gray", "inferno", "jet",
		"magma", "plasma", "terrain", "turbo", "viridis",
	}, names)
	for _, n := range names {
		r, ok := Lookup(n)
		require.True(t, ok, n)
		assert.Equal(t, n, r.Name)
		assert.NoError(t, r.Validate(), n)
	}
}

func TestLookupAliases(t *testing.T) {
	tests := map[string]string{
		"gist_earth":  "gist_earth",
		"Gist Earth":  "gist_earth",
		"GIST-EARTH":  "gist_earth",
		"Grayscale":   "gray",
		"grey":        "gray",
		"Blue to Red": "bwr",
		" terrain ":   "terrain",
		"Turbo":       "turbo",
		"VIRIDIS":     "viridis",
	}
	for in, want := range tests {
		r, ok := Lookup(in)
		if assert.True(t, ok, in) {
			assert.Equal(t, want, r.Name, in)
		}
	}
	_, ok := Lookup("cividis")
	assert.False(t, ok)
}

func TestGistEarthKnownValues(t *testing.T) {
	// Endpoints are the first and last segment values.
	c0 := GistEarth.Sample(0)
	assert.Equal(t, 0.0, c0.R)
	assert.Equal(t, 0.0, c0.G)
	assert.Equal(t, 0.0, c0.B)
	c1 := GistEarth.Sample(1)
	assert.Equal(t, 0.9922, c1.R)
	assert.Equal(t, 0.9843, c1.G)
	assert.Equal(t, 0.9843, c1.B)

	mid := GistEarth.Sample(0.5)
	assert.InDelta(t, 0.362981, mid.R, 5e-7)
	assert.InDelta(t, 0.627266, mid.G, 5e-7)
	assert.InDelta(t, 0.294211, mid.B, 5e-7)
}

func TestJetKnownValues(t *testing.T) {
	c := Jet.Sample(0.25)
	assert.InDelta(t, 0.0, c.R, 1e-12)
	assert.InDelta(t, 0.5, c.G, 1e-12)
	assert.InDelta(t, 1.0, c.B, 1e-12)

	c = Jet.Sample(0.5)
	assert.InDelta(t, 0.483871, c.R, 5e-7)
	assert.InDelta(t, 1.0, c.G, 1e-12)
	assert.InDelta(t, 0.483871, c.B, 5e-7)
}

func TestBWRMidpointWhite(t *testing.T) {
	c := BWR.Sample(0.5)
	assert.Equal(t, 1.0, c.R)
	assert.Equal(t, 1.0, c.G)
	assert.Equal(t, 1.0, c.B)
}

func TestViewerColormapsBuiltIn(t *testing.T) {
	require.Len(t, ViewerColormaps, 10)
	seen := map[string]bool{}
	for _, label := range ViewerColormaps {
		r, ok := Lookup(label)
		require.True(t, ok, label)
		assert.False(t, seen[r.Name], "%s listed twice", r.Name)
		seen[r.Name] = true
	}
	assert.Len(t, seen, len(Names()))
}

func TestSampledMapsEndpoints(t *testing.T) {
	tests := []struct {
		r          Ramp
		first, end [3]uint8
	}{
		{Viridis, [3]uint8{68, 1, 84}, [3]uint8{253, 231, 37}},
		{Plasma, [3]uint8{13, 8, 135}, [3]uint8{240, 249, 33}},
		{Inferno, [3]uint8{0, 0, 4}, [3]uint8{252, 255, 164}},
		{Magma, [3]uint8{0, 0, 4}, [3]uint8{252, 253, 191}},
	}
	for _, tt := range tests {
		for pos, want := range map[float64][3]uint8{0: tt.first, 1: tt.end} {
			c := tt.r.Sample(pos)
			assert.Equal(t, rgb8(want[0], want[1], want[2]), c, "%s at %g", tt.r.Name, pos)
		}
	}
}

func TestTurboShape(t *testing.T) {
	require.NoError(t, Turbo.Validate())
	assert.Len(t, Turbo.Red, turboStops)

	// Blue in the low quarter, red in the high quarter, green in the middle.
	lo, mid, hi := Turbo.Sample(0.125), Turbo.Sample(0.5), Turbo.Sample(0.875)
	assert.Greater(t, lo.B, lo.R)
	assert.Greater(t, hi.R, hi.B)
	assert.Greater(t, mid.G, 0.9)
	for _, p := range Linspace(101) {
		c := Turbo.Sample(p)
		for _, v := range []float64{c.R, c.G, c.B} {
			assert.True(t, v >= 0 && v <= 1, "turbo(%g) = %v", p, c)
		}
	}
}
