// Package simdops bundles the tphakala/simd float64 kernels used by the
// mixer, the meter and the WAV writer behind one table.
package simdops

import "github.com/tphakala/simd/f64"

// Ops provides SIMD-accelerated float64 operations.
type Ops struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []float64) float64

	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []float64)

	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)
}

var ops64 = Ops{
	DotProductUnsafe: f64.DotProductUnsafe,
	Interleave2:      f64.Interleave2,
	Sum:              f64.Sum,
	Scale:            f64.Scale,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}
