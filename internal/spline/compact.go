// Package spline implements CompactSpline, a segment-based spline whose nodes
// are stored in quantized form.
package spline

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/tphakala/go-bulk-spline/internal/cubic"
	"github.com/tphakala/go-bulk-spline/internal/mathutil"
	"gonum.org/v1/gonum/floats"
)

// SegmentID identifies one segment: segment i runs from node i to node i+1.
type SegmentID int

// Common errors returned while building splines.
var (
	// ErrInvalidRange indicates a y-range with Min > Max or NaN bounds.
	ErrInvalidRange = errors.New("invalid spline range")

	// ErrInvalidGranularity indicates a non-positive x granularity.
	ErrInvalidGranularity = errors.New("invalid x granularity")

	// ErrNodeOrder indicates a node whose quantized x does not increase.
	ErrNodeOrder = errors.New("spline nodes must have increasing x")

	// ErrOutOfRange indicates a node that cannot be represented.
	ErrOutOfRange = errors.New("spline node out of range")

	// ErrTooFewPoints indicates fitting input with fewer than two points.
	ErrTooFewPoints = errors.New("too few points to fit spline")
)

// Node is one uncompressed spline node.
type Node struct {
	X          float64
	Y          float64
	Derivative float64
}

// node is the stored form: x in granularity steps, y in quantized steps of
// the y-range.
type node struct {
	x          uint16
	y          uint16
	derivative float32
}

// CompactSpline is a piecewise Hermite cubic. Positions start at 0 and are
// multiples of the x granularity.
//
// Splines are read-only once attached to an evaluator; AddNode must not be
// called while any evaluator index samples the spline.
type CompactSpline struct {
	yRange       Range
	xGranularity float64
	nodes        []node
}

// New creates an empty spline whose node values lie in yRange and whose node
// positions are multiples of xGranularity.
func New(yRange Range, xGranularity float64) (*CompactSpline, error) {
	if !yRange.Valid() || math.IsInf(yRange.Min, 0) || math.IsInf(yRange.Max, 0) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, yRange.Min, yRange.Max)
	}
	if !(xGranularity > 0) || math.IsInf(xGranularity, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGranularity, xGranularity)
	}

	return &CompactSpline{
		yRange:       yRange,
		xGranularity: xGranularity,
	}, nil
}

// FromNodes builds a spline from uncompressed nodes. The y-range is the span
// of the node values and the granularity is the finest one that holds the
// largest node position.
func FromNodes(nodes []Node) (*CompactSpline, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrTooFewPoints)
	}

	xs := make([]float64, len(nodes))
	ys := make([]float64, len(nodes))
	for i, n := range nodes {
		xs[i] = n.X
		ys[i] = n.Y
	}

	s, err := New(spanOf(ys), granularityFor(floats.Max(xs)))
	if err != nil {
		return nil, err
	}
	for i, n := range nodes {
		if err := s.AddNode(n.X, n.Y, n.Derivative); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
	}
	return s, nil
}

// AddNode appends a node. x must quantize to a position after the previous
// node; y must lie in the y-range (values within one quantum outside it are
// clamped).
func (s *CompactSpline) AddNode(x, y, derivative float64) error {
	qx, ok := mathutil.QuantizeStep(x, s.xGranularity)
	if !ok {
		return fmt.Errorf("%w: x=%v not representable with granularity %v", ErrOutOfRange, x, s.xGranularity)
	}
	if n := len(s.nodes); n > 0 && qx <= s.nodes[n-1].x {
		return fmt.Errorf("%w: x=%v after x=%v", ErrNodeOrder, x, s.NodeX(n-1))
	}

	quantum := mathutil.QuantumSize(s.yRange.Min, s.yRange.Max)
	if math.IsNaN(y) || y < s.yRange.Min-quantum || y > s.yRange.Max+quantum {
		return fmt.Errorf("%w: y=%v outside [%v, %v]", ErrOutOfRange, y, s.yRange.Min, s.yRange.Max)
	}
	if math.IsNaN(derivative) || math.IsInf(derivative, 0) {
		return fmt.Errorf("%w: derivative=%v", ErrOutOfRange, derivative)
	}

	s.nodes = append(s.nodes, node{
		x:          qx,
		y:          mathutil.Quantize(y, s.yRange.Min, s.yRange.Max),
		derivative: float32(derivative),
	})
	return nil
}

// NumNodes returns the number of nodes.
func (s *CompactSpline) NumNodes() int {
	return len(s.nodes)
}

// NumSegments returns the number of segments. A single-node spline has one
// zero-width segment; an empty spline has none.
func (s *CompactSpline) NumSegments() int {
	switch n := len(s.nodes); n {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return n - 1
	}
}

// XGranularity returns the node position step.
func (s *CompactSpline) XGranularity() float64 {
	return s.xGranularity
}

// YRange returns the range node values are quantized into.
func (s *CompactSpline) YRange() Range {
	return s.yRange
}

// NodeX returns the position of node i.
func (s *CompactSpline) NodeX(i int) float64 {
	return float64(s.nodes[i].x) * s.xGranularity
}

// NodeY returns the value of node i.
func (s *CompactSpline) NodeY(i int) float64 {
	return mathutil.Dequantize(s.nodes[i].y, s.yRange.Min, s.yRange.Max)
}

// NodeDerivative returns the slope at node i.
func (s *CompactSpline) NodeDerivative(i int) float64 {
	return float64(s.nodes[i].derivative)
}

// StartX returns the position of the first node.
func (s *CompactSpline) StartX() float64 {
	if len(s.nodes) == 0 {
		return 0
	}
	return s.NodeX(0)
}

// EndX returns the position of the last node.
func (s *CompactSpline) EndX() float64 {
	if len(s.nodes) == 0 {
		return 0
	}
	return s.NodeX(len(s.nodes) - 1)
}

// SegmentForX returns the segment whose [start, end) interval holds x.
// Positions before the first node, and NaN, map to the first segment;
// positions at or after the last node map to the last one.
//
// hint is checked first, then hint+1, before falling back to a binary
// search, so forward playback resolves in constant time. Any hint, including
// an out-of-range one, gives the correct answer.
func (s *CompactSpline) SegmentForX(x float64, hint SegmentID) SegmentID {
	if len(s.nodes) < nodesPerSegment {
		return 0
	}

	last := s.lastSegment()
	switch {
	case math.IsNaN(x), x < s.StartX():
		return 0
	case x >= s.EndX():
		return last
	case s.segmentHolds(hint, x):
		return hint
	case s.segmentHolds(hint+1, x):
		return hint + 1
	}

	// First node strictly after x ends the segment; the node before it
	// starts it.
	i, found := slices.BinarySearchFunc(s.nodes, x, func(n node, target float64) int {
		return cmp.Compare(float64(n.x)*s.xGranularity, target)
	})
	if found {
		return SegmentID(i)
	}
	return SegmentID(i - 1)
}

// SegmentRange returns the x interval covered by segment id.
func (s *CompactSpline) SegmentRange(id SegmentID) Range {
	switch len(s.nodes) {
	case 0:
		return Range{}
	case 1:
		x := s.NodeX(0)
		return Range{Min: x, Max: x}
	}

	i := s.clampSegment(id)
	return Range{Min: s.NodeX(i), Max: s.NodeX(i + 1)}
}

// CubicInit returns the Hermite parameters of segment id.
func (s *CompactSpline) CubicInit(id SegmentID) cubic.Init {
	switch len(s.nodes) {
	case 0:
		return cubic.Init{}
	case 1:
		y, d := s.NodeY(0), s.NodeDerivative(0)
		return cubic.Init{StartY: y, StartDerivative: d, EndY: y, EndDerivative: d}
	}

	i := s.clampSegment(id)
	return cubic.Init{
		StartY:          s.NodeY(i),
		StartDerivative: s.NodeDerivative(i),
		EndY:            s.NodeY(i + 1),
		EndDerivative:   s.NodeDerivative(i + 1),
		WidthX:          s.NodeX(i+1) - s.NodeX(i),
	}
}

// Evaluate computes the spline value at x directly, clamping x to the
// spline's domain. It rebuilds the segment cubic on every call; use a
// bulk evaluator to sample many positions.
func (s *CompactSpline) Evaluate(x float64) float64 {
	c, t := s.cubicAt(x)
	return c.Evaluate(t)
}

// Derivative computes the spline slope at x directly.
func (s *CompactSpline) Derivative(x float64) float64 {
	c, t := s.cubicAt(x)
	return c.Derivative(t)
}

// Nodes returns the dequantized nodes.
func (s *CompactSpline) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	for i := range s.nodes {
		out[i] = Node{X: s.NodeX(i), Y: s.NodeY(i), Derivative: s.NodeDerivative(i)}
	}
	return out
}

func (s *CompactSpline) cubicAt(x float64) (cubic.Cubic, float64) {
	id := s.SegmentForX(x, 0)
	r := s.SegmentRange(id)
	return cubic.New(s.CubicInit(id)), r.Clamp(x) - r.Min
}

func (s *CompactSpline) lastSegment() SegmentID {
	return SegmentID(max(len(s.nodes)-nodesPerSegment, 0))
}

func (s *CompactSpline) clampSegment(id SegmentID) int {
	return int(min(max(id, 0), s.lastSegment()))
}

func (s *CompactSpline) segmentHolds(id SegmentID, x float64) bool {
	if id < 0 || id > s.lastSegment() {
		return false
	}
	i := int(id)
	return s.NodeX(i) <= x && x < s.NodeX(i+1)
}

// spanOf returns the closed interval covering vs.
func spanOf(vs []float64) Range {
	return Range{Min: floats.Min(vs), Max: floats.Max(vs)}
}

// granularityFor returns the finest step that still represents maxX.
func granularityFor(maxX float64) float64 {
	return max(maxX/maxStepsX, minGranularity)
}
