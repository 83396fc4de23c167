package mathutil

import "math"

// Quantization limits
const (
	// MaxQuantized is the largest stored step for 16-bit node fields.
	MaxQuantized = float64(math.MaxUint16)
)
