package ascramp

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultSamples is the table size used by the viewer's shaders.
const DefaultSamples = 256

// ColorTable is a baked ramp: entry i is the ramp sampled at i/(N-1).
type ColorTable []colorful.Color

// Bake samples r at n evenly spaced positions over [0, 1]. n == 1 samples
// position 0 only. The result depends only on (r, n).
func Bake(r Ramp, n int) (ColorTable, error) {
	if err := checkBake(r, n); err != nil {
		return nil, err
	}
	pos := Linspace(n)
	t := make(ColorTable, n)
	for i, p := range pos {
		t[i] = r.Sample(p)
	}
	return t, nil
}

// BakeParallel is Bake computed by up to shards goroutines, each owning a
// contiguous index range. The output is identical to Bake.
func BakeParallel(r Ramp, n, shards int) (ColorTable, error) {
	if err := checkBake(r, n); err != nil {
		return nil, err
	}
	if shards < 1 {
		shards = 1
	}
	if shards > n {
		shards = n
	}
	pos := Linspace(n)
	t := make(ColorTable, n)
	per := (n + shards - 1) / shards

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += per {
		hi := min(lo+per, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				t[i] = r.Sample(pos[i])
			}
		}(lo, hi)
	}
	wg.Wait()
	return t, nil
}

func checkBake(r Ramp, n int) error {
	if n < 1 {
		return fmt.Errorf("bake %q: sample count must be positive, got %d", r.Name, n)
	}
	return r.Validate()
}

// Colors implements gonum's palette.Palette.
func (t ColorTable) Colors() []color.Color {
	out := make([]color.Color, len(t))
	for i, c := range t {
		out[i] = c
	}
	return out
}

// Index returns the table index for a normalized value, binning [0, 1] into
// len(t) equal intervals as matplotlib does; 1.0 maps to the last entry and
// values outside [0, 1] are clamped.
func (t ColorTable) Index(v float64) int {
	n := len(t)
	v = clamp01(v)
	i := int(v * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Lookup returns the table color for a normalized value in O(1).
func (t ColorTable) Lookup(v float64) colorful.Color {
	return t[t.Index(v)]
}

// Rounded returns a copy with every component rounded to six decimals.
func (t ColorTable) Rounded() ColorTable {
	out := make(ColorTable, len(t))
	for i, c := range t {
		out[i] = colorful.Color{R: round6(c.R), G: round6(c.G), B: round6(c.B)}
	}
	return out
}
