// Package testutil provides reusable assertions for spline and render tests.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
)

// QuantizeTolerance bounds the error introduced by uint16 node quantization.
const QuantizeTolerance = 1e-4

// TestingT is the subset of *testing.T the assertions need.
type TestingT interface {
	assert.TestingT
	Helper()
}

// Curve is anything that can be sampled directly at a position.
type Curve interface {
	Evaluate(x float64) float64
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t TestingT, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("found NaN: s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("found Inf: s[%d] is %f", i, v), msgAndArgs...)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t TestingT, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, fmt.Sprintf("value out of range: s[%d]=%f is outside [%f, %f]",
				i, v, minVal, maxVal), msgAndArgs...)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically increasing.
func AssertMonotonic(t TestingT, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not monotonic: s[%d]=%f < s[%d]=%f",
				i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t TestingT, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, fmt.Sprintf("value out of range: %f is outside [%f, %f]",
			value, minVal, maxVal), msgAndArgs...)
	}
	return true
}

// AssertSamplesMatch verifies that ys[i] equals c evaluated at x0 + i*step.
func AssertSamplesMatch(t TestingT, c Curve, x0, step float64, ys []float64, tolerance float64) bool {
	t.Helper()
	for i, y := range ys {
		x := x0 + float64(i)*step
		if !assert.InDelta(t, c.Evaluate(x), y, tolerance, "sample %d at x=%f", i, x) {
			return false
		}
	}
	return true
}
