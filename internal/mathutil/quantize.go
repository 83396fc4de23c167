// Package mathutil provides the numeric helpers used for compact spline storage.
package mathutil

import (
	"math"
)

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Quantize maps v from [lo, hi] onto the full uint16 range, rounding to the
// nearest step. Values outside the interval saturate. A degenerate interval
// (hi <= lo) always quantizes to 0.
func Quantize(v, lo, hi float64) uint16 {
	if hi <= lo {
		return 0
	}
	frac := (Clamp(v, lo, hi) - lo) / (hi - lo)
	return uint16(math.Round(frac * MaxQuantized))
}

// Dequantize is the inverse of Quantize.
func Dequantize(q uint16, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + float64(q)*(hi-lo)/MaxQuantized
}

// QuantumSize returns the width of one quantization step over [lo, hi].
func QuantumSize(lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return (hi - lo) / MaxQuantized
}

// QuantizeStep returns round(v / step) and reports whether it fits in a uint16.
// Negative or non-finite inputs never fit.
func QuantizeStep(v, step float64) (uint16, bool) {
	if step <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	q := math.Round(v / step)
	if q < 0 || q > MaxQuantized {
		return 0, false
	}
	return uint16(q), true
}
