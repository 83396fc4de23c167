package spline

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// FitMethod selects how node derivatives are estimated from sample points.
type FitMethod int

const (
	// FitAkima uses Akima's local method. Resistant to overshoot near
	// outliers.
	FitAkima FitMethod = iota

	// FitFritschButland preserves monotonicity of the input data.
	FitFritschButland

	// FitNatural uses a natural cubic spline (zero curvature at both ends).
	FitNatural
)

// String returns the method name used in curve files.
func (m FitMethod) String() string {
	switch m {
	case FitAkima:
		return "akima"
	case FitFritschButland:
		return "fritsch-butland"
	case FitNatural:
		return "natural"
	default:
		return fmt.Sprintf("FitMethod(%d)", int(m))
	}
}

// ParseFitMethod maps a curve-file name to a FitMethod.
// The empty string selects FitAkima.
func ParseFitMethod(name string) (FitMethod, error) {
	switch name {
	case "", "akima":
		return FitAkima, nil
	case "fritsch-butland", "monotone":
		return FitFritschButland, nil
	case "natural":
		return FitNatural, nil
	default:
		return 0, fmt.Errorf("unknown fit method %q", name)
	}
}

// derivativePredictor is the part of gonum's fitted interpolators used here.
type derivativePredictor interface {
	Fit(xs, ys []float64) error
	PredictDerivative(x float64) float64
}

func newPredictor(method FitMethod) (derivativePredictor, error) {
	switch method {
	case FitAkima:
		return &interp.AkimaSpline{}, nil
	case FitFritschButland:
		return &interp.FritschButland{}, nil
	case FitNatural:
		return &interp.NaturalCubic{}, nil
	default:
		return nil, fmt.Errorf("unsupported fit method %v", method)
	}
}

// Fit builds a spline through the points (xs[i], ys[i]), estimating the node
// derivatives with the given method. xs must be increasing and non-negative.
// Two points produce a straight segment.
func Fit(xs, ys []float64, method FitMethod) (*CompactSpline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d positions for %d values", ErrTooFewPoints, len(xs), len(ys))
	}
	if len(xs) < nodesPerSegment {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrTooFewPoints, len(xs), nodesPerSegment)
	}

	derivatives, err := estimateDerivatives(xs, ys, method)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, len(xs))
	for i := range xs {
		nodes[i] = Node{X: xs[i], Y: ys[i], Derivative: derivatives[i]}
	}
	return FromNodes(nodes)
}

func estimateDerivatives(xs, ys []float64, method FitMethod) ([]float64, error) {
	out := make([]float64, len(xs))

	if len(xs) < minInterpolatorPoints {
		secant := (ys[1] - ys[0]) / (xs[1] - xs[0])
		for i := range out {
			out[i] = secant
		}
		return out, nil
	}

	p, err := newPredictor(method)
	if err != nil {
		return nil, err
	}
	if err := p.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("%s fit failed: %w", method, err)
	}
	for i, x := range xs {
		out[i] = p.PredictDerivative(x)
	}
	return out, nil
}
