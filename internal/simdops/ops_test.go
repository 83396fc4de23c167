package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/simd/f64"
)

func TestFloat64Ops(t *testing.T) {
	ops := Float64Ops()
	assert.Same(t, ops, Float64Ops())

	a := []float64{1, 2, 3, 4}
	b := []float64{0.5, 0.5, 0.5, 0.5}
	assert.InDelta(t, 5.0, ops.DotProductUnsafe(a, b), 1e-12)
	assert.InDelta(t, 10.0, ops.Sum(a), 1e-12)

	dst := make([]float64, 4)
	ops.Scale(dst, a, 2)
	assert.Equal(t, []float64{2, 4, 6, 8}, dst)

	inter := make([]float64, 8)
	ops.Interleave2(inter, a, b)
	assert.Equal(t, []float64{1, 0.5, 2, 0.5, 3, 0.5, 4, 0.5}, inter)
}

// BenchmarkDirectF64DotProduct measures direct SIMD call overhead.
func BenchmarkDirectF64DotProduct(b *testing.B) {
	a, c := ramp64(64)
	b.ReportAllocs()
	for b.Loop() {
		_ = f64.DotProductUnsafe(a, c)
	}
}

// BenchmarkIndirectF64DotProduct measures indirect call through Ops struct.
func BenchmarkIndirectF64DotProduct(b *testing.B) {
	ops := Float64Ops()
	a, c := ramp64(64)
	b.ReportAllocs()
	for b.Loop() {
		_ = ops.DotProductUnsafe(a, c)
	}
}

func BenchmarkIndirectF64Sum(b *testing.B) {
	ops := Float64Ops()
	a, _ := ramp64(1024)
	b.ReportAllocs()
	for b.Loop() {
		_ = ops.Sum(a)
	}
}

func ramp64(n int) (a, c []float64) {
	a = make([]float64, n)
	c = make([]float64, n)
	for i := range a {
		a[i] = float64(i) * 0.01
		c[i] = float64(i) * 0.02
	}
	return a, c
}
