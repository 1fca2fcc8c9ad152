package ascramp

import (
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Built-in ramps. Segment data is copied from matplotlib's _cm.py; the stop
// lists go through FromStops exactly as matplotlib's from_list does.

// GistEarth is matplotlib's gist_earth (segment data).
var GistEarth = Ramp{
	Name: "gist_earth",
	Red: Channel{
		{0.0, 0.0},
		{0.2824, 0.1882},
		{0.4588, 0.2714},
		{0.5490, 0.4719},
		{0.6980, 0.7176},
		{0.7882, 0.7553},
		{1.0000, 0.9922},
	},
	Green: Channel{
		{0.0, 0.0},
		{0.0275, 0.0000},
		{0.1098, 0.1893},
		{0.1647, 0.3035},
		{0.2078, 0.3841},
		{0.2824, 0.5020},
		{0.5216, 0.6397},
		{0.6980, 0.7171},
		{0.7882, 0.6392},
		{0.7922, 0.6413},
		{0.8000, 0.6447},
		{0.8078, 0.6481},
		{0.8157, 0.6549},
		{0.8667, 0.6991},
		{0.8745, 0.7103},
		{0.8824, 0.7216},
		{0.8902, 0.7323},
		{0.8980, 0.7430},
		{0.9412, 0.8275},
		{0.9569, 0.8635},
		{0.9647, 0.8816},
		{0.9961, 0.9733},
		{1.0000, 0.9843},
	},
	Blue: Channel{
		{0.0, 0.0},
		{0.0039, 0.1684},
		{0.0078, 0.2212},
		{0.0275, 0.4329},
		{0.0314, 0.4549},
		{0.2824, 0.5004},
		{0.4667, 0.2748},
		{0.5451, 0.3205},
		{0.7843, 0.3961},
		{0.8941, 0.6651},
		{1.0000, 0.9843},
	},
}

// Terrain is matplotlib's terrain (stop list).
var Terrain = FromStops("terrain", []Stop{
	{0.00, colorful.Color{R: 0.2, G: 0.2, B: 0.6}},
	{0.15, colorful.Color{R: 0.0, G: 0.6, B: 1.0}},
	{0.25, colorful.Color{R: 0.0, G: 0.8, B: 0.4}},
	{0.50, colorful.Color{R: 1.0, G: 1.0, B: 0.6}},
	{0.75, colorful.Color{R: 0.5, G: 0.36, B: 0.33}},
	{1.00, colorful.Color{R: 1.0, G: 1.0, B: 1.0}},
})

// Gray is matplotlib's gray.
var Gray = Ramp{
	Name:  "gray",
	Red:   Channel{{0, 0}, {1, 1}},
	Green: Channel{{0, 0}, {1, 1}},
	Blue:  Channel{{0, 0}, {1, 1}},
}

// Jet is matplotlib's jet (segment data).
var Jet = Ramp{
	Name:  "jet",
	Red:   Channel{{0, 0}, {0.35, 0}, {0.66, 1}, {0.89, 1}, {1, 0.5}},
	Green: Channel{{0, 0}, {0.125, 0}, {0.375, 1}, {0.64, 1}, {0.91, 0}, {1, 0}},
	Blue:  Channel{{0, 0.5}, {0.11, 1}, {0.34, 1}, {0.65, 0}, {1, 0}},
}

// BWR is matplotlib's bwr, blue through white to red (evenly spaced stops).
var BWR = FromStops("bwr", EvenStops(
	colorful.Color{R: 0, G: 0, B: 1},
	colorful.Color{R: 1, G: 1, B: 1},
	colorful.Color{R: 1, G: 0, B: 0},
))

// rgb8 converts an 8-bit RGB triple to a color.
func rgb8(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Viridis, Plasma, Inferno and Magma are evenly spaced samples of the
// matplotlib perceptually uniform maps.
var (
	Viridis = FromStops("viridis", EvenStops(
		rgb8(68, 1, 84), rgb8(72, 35, 116), rgb8(64, 67, 135), rgb8(52, 94, 141),
		rgb8(41, 120, 142), rgb8(32, 144, 140), rgb8(34, 167, 132), rgb8(68, 190, 112),
		rgb8(121, 209, 81), rgb8(189, 222, 38), rgb8(253, 231, 37),
	))
	Plasma = FromStops("plasma", EvenStops(
		rgb8(13, 8, 135), rgb8(75, 3, 161), rgb8(125, 3, 168), rgb8(168, 34, 150),
		rgb8(203, 70, 121), rgb8(229, 107, 93), rgb8(248, 148, 65), rgb8(253, 195, 40),
		rgb8(240, 249, 33),
	))
	Inferno = FromStops("inferno", EvenStops(
		rgb8(0, 0, 4), rgb8(40, 11, 84), rgb8(101, 21, 110), rgb8(159, 42, 99),
		rgb8(212, 72, 66), rgb8(245, 125, 21), rgb8(250, 193, 39), rgb8(252, 255, 164),
	))
	Magma = FromStops("magma", EvenStops(
		rgb8(0, 0, 4), rgb8(28, 16, 68), rgb8(79, 18, 123), rgb8(129, 37, 129),
		rgb8(181, 54, 122), rgb8(229, 80, 100), rgb8(251, 135, 97), rgb8(254, 194, 135),
		rgb8(252, 253, 191),
	))
)

// turboCoeffs are the quintic fits of Google's Turbo colormap per channel,
// lowest order first.
var turboCoeffs = [3][6]float64{
	{0.13572138, 4.61539260, -42.66032258, 132.13108234, -152.94239396, 59.28637943},
	{0.09140261, 2.19418839, 4.84296658, -14.18503333, 4.27729857, 2.82956604},
	{0.10667330, 12.64194608, -60.58204836, 110.36276771, -89.90310912, 27.34824973},
}

// turboStops is the number of evenly spaced stops Turbo is sampled into.
const turboStops = 33

// turboPoly evaluates one channel of the Turbo fit at x, clipped to [0, 1].
func turboPoly(k [6]float64, x float64) float64 {
	x2 := x * x
	x3 := x2 * x
	lo := k[0] + x*k[1] + x2*k[2] + x3*k[3]
	hi := x2*x2*k[4] + x3*x2*k[5]
	return clamp01(lo + hi)
}

func turbo() Ramp {
	pos := Linspace(turboStops)
	colors := make([]colorful.Color, len(pos))
	for i, x := range pos {
		colors[i] = colorful.Color{
			R: turboPoly(turboCoeffs[0], x),
			G: turboPoly(turboCoeffs[1], x),
			B: turboPoly(turboCoeffs[2], x),
		}
	}
	return FromStops("turbo", EvenStops(colors...))
}

// Turbo is Google's rainbow replacement for jet.
var Turbo = turbo()

var builtin = map[string]Ramp{
	"gist_earth": GistEarth,
	"terrain":    Terrain,
	"gray":       Gray,
	"jet":        Jet,
	"bwr":        BWR,
	"turbo":      Turbo,
	"viridis":    Viridis,
	"plasma":     Plasma,
	"inferno":    Inferno,
	"magma":      Magma,
}

// ViewerColormaps are the viewer's colormap labels in menu order.
var ViewerColormaps = []string{
	"Blue-to-Red", "Grayscale", "Jet", "Turbo", "Viridis",
	"Plasma", "Inferno", "Magma", "Gist Earth", "Terrain",
}

// aliases maps the viewer's display labels (normalised) to ramp names.
var aliases = map[string]string{
	"grayscale":   "gray",
	"grey":        "gray",
	"greyscale":   "gray",
	"blue_to_red": "bwr",
}

// normName lowercases name and folds spaces and hyphens to underscores, so
// "Gist Earth" and "gist_earth" are the same.
func normName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(name)
}

// Lookup returns the built-in ramp called name. Matching is
// case-insensitive and accepts the viewer's display labels.
func Lookup(name string) (Ramp, bool) {
	n := normName(name)
	if a, ok := aliases[n]; ok {
		n = a
	}
	r, ok := builtin[n]
	return r, ok
}

// Names returns the built-in ramp names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
