package cubic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-12

func TestCubicInit_HermiteEndpoints(t *testing.T) {
	tests := []struct {
		name string
		init Init
	}{
		{"Flat", Init{StartY: 1, EndY: 1, WidthX: 1}},
		{"Ramp", Init{StartY: 0, StartDerivative: 1, EndY: 1, EndDerivative: 1, WidthX: 1}},
		{"EaseInOut", Init{StartY: 0, EndY: 1, WidthX: 2}},
		{"Overshoot", Init{StartY: -0.5, StartDerivative: 4, EndY: 0.25, EndDerivative: -3, WidthX: 0.75}},
		{"WideSegment", Init{StartY: 10, StartDerivative: -0.01, EndY: 2, EndDerivative: 0.02, WidthX: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.init)
			w := tt.init.WidthX

			assert.InDelta(t, tt.init.StartY, c.Evaluate(0), tolerance, "start value")
			assert.InDelta(t, tt.init.EndY, c.Evaluate(w), 1e-9, "end value")
			assert.InDelta(t, tt.init.StartDerivative, c.Derivative(0), tolerance, "start slope")
			assert.InDelta(t, tt.init.EndDerivative, c.Derivative(w), 1e-9, "end slope")
		})
	}
}

func TestCubicInit_ZeroWidthIsConstant(t *testing.T) {
	c := New(Init{StartY: 3, StartDerivative: 5, EndY: 7, EndDerivative: 1, WidthX: 0})

	for _, x := range []float64{-1, 0, 0.5, 10} {
		assert.Equal(t, 3.0, c.Evaluate(x))
		assert.Equal(t, 0.0, c.Derivative(x))
	}
}

func TestCubic_ZeroValue(t *testing.T) {
	var c Cubic
	assert.Equal(t, 0.0, c.Evaluate(1.5))
	assert.Equal(t, 0.0, c.Derivative(1.5))
	assert.Equal(t, 0.0, c.SecondDerivative(1.5))
}

func TestCubic_DerivativesMatchCoefficients(t *testing.T) {
	c := New(Init{StartY: 1, StartDerivative: -2, EndY: 4, EndDerivative: 0.5, WidthX: 1.5})
	k := c.Coeffs()

	for _, x := range []float64{0, 0.3, 0.9, 1.5} {
		want := k[0] + k[1]*x + k[2]*x*x + k[3]*x*x*x
		assert.InDelta(t, want, c.Evaluate(x), tolerance)

		wantD := k[1] + 2*k[2]*x + 3*k[3]*x*x
		assert.InDelta(t, wantD, c.Derivative(x), tolerance)

		wantDD := 2*k[2] + 6*k[3]*x
		assert.InDelta(t, wantDD, c.SecondDerivative(x), tolerance)
	}

	for i := range numCoeffs {
		assert.Equal(t, k[i], c.Coeff(i))
	}
}

func TestCubic_ReinitReplacesCoefficients(t *testing.T) {
	c := New(Init{StartY: 0, EndY: 1, WidthX: 1})
	before := c.Coeffs()

	c.Init(Init{StartY: 5, EndY: 5, WidthX: 1})
	assert.NotEqual(t, before, c.Coeffs())
	assert.Equal(t, [numCoeffs]float64{5, 0, 0, 0}, c.Coeffs())
}
