package ascramp

import "math"

// clamp01 limits v to [0, 1]. NaN maps to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Linspace returns n evenly spaced positions over [0, 1], both ends
// included. It follows numpy.linspace arithmetic (i * step, last forced to
// exactly 1) so baked tables match matplotlib bit for bit. n == 1 yields [0].
func Linspace(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	step := 1.0 / float64(n-1)
	for i := range out {
		out[i] = float64(i) * step
	}
	out[n-1] = 1
	return out
}

// round6 rounds v to six decimal places, the precision tables are reported at.
func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
