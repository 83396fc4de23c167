package bulkspline

import (
	"github.com/tphakala/go-bulk-spline/internal/spline"
)

// CompactSpline is the built-in Source: a piecewise Hermite cubic with
// quantized nodes.
type CompactSpline = spline.CompactSpline

// Node is one uncompressed spline node.
type Node = spline.Node

// FitMethod selects how FitSpline estimates node derivatives.
type FitMethod = spline.FitMethod

// Derivative estimation methods for FitSpline.
const (
	FitAkima          = spline.FitAkima
	FitFritschButland = spline.FitFritschButland
	FitNatural        = spline.FitNatural
)

// Errors returned while building splines.
var (
	ErrInvalidRange       = spline.ErrInvalidRange
	ErrInvalidGranularity = spline.ErrInvalidGranularity
	ErrNodeOrder          = spline.ErrNodeOrder
	ErrOutOfRange         = spline.ErrOutOfRange
	ErrTooFewPoints       = spline.ErrTooFewPoints
)

// NewCompactSpline creates an empty spline whose node values lie in yRange
// and whose node positions are multiples of xGranularity. Add nodes with
// AddNode before attaching it.
//
// Example:
//
//	s, err := bulkspline.NewCompactSpline(bulkspline.Range{Min: 0, Max: 1}, 1.0/256)
//	if err != nil {
//	    return err
//	}
//	_ = s.AddNode(0, 0, 0)
//	_ = s.AddNode(1, 1, 0)
func NewCompactSpline(yRange Range, xGranularity float64) (*CompactSpline, error) {
	return spline.New(yRange, xGranularity)
}

// SplineFromNodes builds a spline from explicit nodes, deriving the value
// range and position granularity from them.
func SplineFromNodes(nodes []Node) (*CompactSpline, error) {
	return spline.FromNodes(nodes)
}

// FitSpline builds a spline through the points (xs[i], ys[i]), estimating
// the slope at each point with method.
func FitSpline(xs, ys []float64, method FitMethod) (*CompactSpline, error) {
	return spline.Fit(xs, ys, method)
}

// ParseFitMethod maps "akima", "fritsch-butland" (or "monotone") and
// "natural" to a FitMethod. The empty string selects FitAkima.
func ParseFitMethod(name string) (FitMethod, error) {
	return spline.ParseFitMethod(name)
}

// AttachAll attaches s to every index in indices, all starting at startX.
func (e *BulkEvaluator) AttachAll(indices []Index, s Source, startX float64) {
	for _, index := range indices {
		e.AttachSpline(index, s, startX)
	}
}

// Sample returns the values of s at positions x0, x0+step, ... (n samples)
// by driving a single-index evaluator. Useful for previews and tests.
func Sample(s Source, x0, step float64, n int) []float64 {
	e := NewBulkEvaluator(1)
	out := make([]float64, 0, n)
	if n <= 0 {
		return out
	}

	e.AttachSpline(0, s, x0)
	e.JumpToX(0, x0)
	out = append(out, e.Y(0))
	for len(out) < n {
		e.Advance(step)
		out = append(out, e.Y(0))
	}
	return out
}
