package ascramp

import "math"

// Normalizer maps grid values onto ramp positions in [0, 1] using a clamp
// range. Values below Min map to 0 and above Max to 1.
type Normalizer struct {
	Min, Max float64
}

// AutoRange returns a Normalizer spanning the valid values of m. ok is false
// when m has no valid cells.
func AutoRange(m *MaskedGrid) (n Normalizer, ok bool) {
	lo, hi, ok := m.Range()
	if !ok {
		return Normalizer{}, false
	}
	return Normalizer{Min: lo, Max: hi}, true
}

// ManualRange returns a Normalizer for the given clamp range, swapping the
// bounds if they are reversed.
func ManualRange(lo, hi float64) Normalizer {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Normalizer{Min: lo, Max: hi}
}

// Normalize returns the ramp position for v. ok is false for NaN. A
// degenerate range (Min == Max) maps every value to 0.
func (n Normalizer) Normalize(v float64) (t float64, ok bool) {
	if math.IsNaN(v) {
		return 0, false
	}
	span := n.Max - n.Min
	if !(span > 0) {
		return 0, true
	}
	return clamp01((v - n.Min) / span), true
}

// Cell returns the ramp position for a masked cell; ok is false for NoData.
func (n Normalizer) Cell(c Cell) (t float64, ok bool) {
	if !c.Valid {
		return 0, false
	}
	return n.Normalize(c.Value)
}
