package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestQuantize tests Quantize against known steps.
func TestQuantize(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		lo, hi   float64
		expected uint16
	}{
		{"Low end", 0, 0, 1, 0},
		{"High end", 1, 0, 1, math.MaxUint16},
		{"Midpoint rounds", 0.5, 0, 1, 32768},
		{"Below range saturates", -3, 0, 1, 0},
		{"Above range saturates", 7, 0, 1, math.MaxUint16},
		{"Negative interval", -1, -2, 0, 32768},
		{"Degenerate interval", 5, 5, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Quantize(tt.v, tt.lo, tt.hi))
		})
	}
}

// TestQuantize_RoundTrip tests that a round trip stays within half a quantum.
func TestQuantize_RoundTrip(t *testing.T) {
	lo, hi := -3.0, 11.0
	half := QuantumSize(lo, hi) / 2

	for v := lo; v <= hi; v += 0.0137 {
		got := Dequantize(Quantize(v, lo, hi), lo, hi)
		assert.InDelta(t, v, got, half+1e-12, "round trip of %v", v)
	}
}

// TestDequantize_Degenerate tests the degenerate interval.
func TestDequantize_Degenerate(t *testing.T) {
	assert.Equal(t, 4.0, Dequantize(1234, 4, 4))
	assert.Equal(t, 0.0, QuantumSize(4, 4))
}

// TestQuantizeStep tests granularity quantization and its overflow checks.
func TestQuantizeStep(t *testing.T) {
	q, ok := QuantizeStep(1.0, 1.0/256)
	assert.True(t, ok)
	assert.Equal(t, uint16(256), q)

	q, ok = QuantizeStep(0.0049, 0.01)
	assert.True(t, ok)
	assert.Equal(t, uint16(0), q)

	_, ok = QuantizeStep(-0.5, 0.01)
	assert.False(t, ok, "negative positions are not representable")

	_, ok = QuantizeStep(MaxQuantized+1, 1)
	assert.False(t, ok, "overflow must be reported")

	_, ok = QuantizeStep(math.NaN(), 1)
	assert.False(t, ok)

	_, ok = QuantizeStep(1, 0)
	assert.False(t, ok, "zero step")
}

// TestClamp tests Clamp at and beyond the bounds.
func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 1))
	assert.Equal(t, 1.0, Clamp(1, 0, 1))
}
