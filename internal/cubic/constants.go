package cubic

// Polynomial layout
const (
	// Coefficients of a degree-3 polynomial
	numCoeffs = 4
)

// Hermite fit weights
// Formula: c2 = (3*m - 2*s0 - s1) / w, c3 = (s0 + s1 - 2*m) / w^2
const (
	hermiteSecantWeight = 3.0
	hermiteStartWeight  = 2.0
)

// Derivative factors from the power rule
const (
	derivCubicFactor       = 3.0 // d/dt t^3 = 3t^2
	derivSquareFactor      = 2.0 // d/dt t^2 = 2t
	secondDerivCubicFactor = 6.0 // d2/dt2 t^3 = 6t
)
