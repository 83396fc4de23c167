// Package cubic implements the local cubic polynomial that approximates one
// spline segment.
package cubic

// Init holds the Hermite parameters of one segment: the value and slope at
// both ends and the segment width. The cubic built from it is parameterized
// by the offset from the segment start, t in [0, WidthX].
type Init struct {
	StartY          float64
	StartDerivative float64
	EndY            float64
	EndDerivative   float64
	WidthX          float64
}

// Cubic is c3*t^3 + c2*t^2 + c1*t + c0.
// The zero value evaluates to 0 everywhere.
type Cubic struct {
	coeff [numCoeffs]float64
}

// New returns the cubic that interpolates init.
func New(init Init) Cubic {
	var c Cubic
	c.Init(init)
	return c
}

// Init recomputes the coefficients so that the cubic starts at
// (0, StartY) with slope StartDerivative and ends at (WidthX, EndY) with
// slope EndDerivative. A non-positive width yields the constant StartY.
func (c *Cubic) Init(init Init) {
	if init.WidthX <= 0 {
		c.coeff = [numCoeffs]float64{init.StartY, 0, 0, 0}
		return
	}

	// Hermite form solved for the power basis:
	//   c2 = (3*m - 2*s0 - s1) / w
	//   c3 = (s0 + s1 - 2*m) / w^2
	// where m is the secant slope (y1 - y0) / w.
	w := init.WidthX
	m := (init.EndY - init.StartY) / w
	s0 := init.StartDerivative
	s1 := init.EndDerivative

	c.coeff[0] = init.StartY
	c.coeff[1] = s0
	c.coeff[2] = (hermiteSecantWeight*m - hermiteStartWeight*s0 - s1) / w
	c.coeff[3] = (s0 + s1 - hermiteStartWeight*m) / (w * w)
}

// Evaluate returns the value at offset t.
func (c Cubic) Evaluate(t float64) float64 {
	return ((c.coeff[3]*t+c.coeff[2])*t+c.coeff[1])*t + c.coeff[0]
}

// Derivative returns the first derivative at offset t.
func (c Cubic) Derivative(t float64) float64 {
	return (derivCubicFactor*c.coeff[3]*t+derivSquareFactor*c.coeff[2])*t + c.coeff[1]
}

// SecondDerivative returns the second derivative at offset t.
func (c Cubic) SecondDerivative(t float64) float64 {
	return secondDerivCubicFactor*c.coeff[3]*t + derivSquareFactor*c.coeff[2]
}

// Coeff returns the coefficient of t^i.
func (c Cubic) Coeff(i int) float64 {
	return c.coeff[i]
}

// Coeffs returns all four coefficients, lowest order first.
func (c Cubic) Coeffs() [numCoeffs]float64 {
	return c.coeff
}
