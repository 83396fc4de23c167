package bulkspline

import (
	"fmt"
	"log/slog"
)

// domain is the sample position of one index and the interval its cubic
// covers.
type domain struct {
	x float64
	r Range
}

// source is the spline feeding one index and the segment currently loaded
// into its cubic. resolved is false until the first lookup after attaching.
type source struct {
	spline   Source
	segment  SegmentID
	resolved bool
}

// BulkEvaluator advances and samples many splines in lockstep.
//
// Per-index state lives in four parallel slices of equal length. Advance
// walks the domain slice once to move positions and re-derive cubics for
// indices that crossed a segment boundary, then walks the cubic slice once to
// evaluate every index.
//
// A BulkEvaluator is not safe for concurrent use.
type BulkEvaluator struct {
	cubics  []Cubic
	domains []domain
	sources []source
	results []Result

	stats  Stats
	logger *slog.Logger
}

// NewBulkEvaluator creates an evaluator with capacity unattached indices.
func NewBulkEvaluator(capacity int) *BulkEvaluator {
	e := &BulkEvaluator{logger: slog.New(slog.DiscardHandler)}
	e.SetCapacity(capacity)
	return e
}

// New creates an evaluator from a validated configuration.
func New(config *Config) (*BulkEvaluator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	e := NewBulkEvaluator(0)
	if config.Logger != nil {
		e.logger = config.Logger
	}
	e.SetCapacity(config.Capacity)
	return e, nil
}

// SetCapacity resizes all per-index state to n indices. Indices below
// min(n, Capacity()) keep their state; new indices are unattached.
func (e *BulkEvaluator) SetCapacity(n int) {
	old := len(e.domains)
	e.cubics = resize(e.cubics, n)
	e.domains = resize(e.domains, n)
	e.sources = resize(e.sources, n)
	e.results = resize(e.results, n)

	if old != n {
		e.logger.Debug("evaluator capacity changed", "from", old, "to", n)
	}
}

// Capacity returns the number of indices.
func (e *BulkEvaluator) Capacity() int {
	return len(e.domains)
}

// RelocateIndex copies the complete state of oldIndex onto newIndex,
// overwriting it. oldIndex is left unchanged.
func (e *BulkEvaluator) RelocateIndex(oldIndex, newIndex Index) {
	e.cubics[newIndex] = e.cubics[oldIndex]
	e.domains[newIndex] = e.domains[oldIndex]
	e.sources[newIndex] = e.sources[oldIndex]
	e.results[newIndex] = e.results[oldIndex]
}

// ClearIndex returns index to the unattached zero state.
func (e *BulkEvaluator) ClearIndex(index Index) {
	e.cubics[index] = Cubic{}
	e.domains[index] = domain{}
	e.sources[index] = source{}
	e.results[index] = Result{}
}

// AttachSpline makes index sample s starting at startX. The segment holding
// startX is resolved and evaluated before returning, so the result is valid
// immediately. startX is stored as given; a position outside the spline is
// clamped by the next Advance.
//
// A nil s returns index to the unattached zero state.
func (e *BulkEvaluator) AttachSpline(index Index, s Source, startX float64) {
	if s == nil {
		e.ClearIndex(index)
		e.logger.Debug("spline detached", "index", index)
		return
	}

	e.domains[index] = domain{x: startX}
	e.sources[index] = source{spline: s}

	e.initCubic(index)
	e.evaluateIndex(index)

	e.logger.Debug("spline attached", "index", index, "start_x", startX)
}

// JumpToX moves index to the absolute position x, re-deriving its cubic if x
// lies in another segment, and re-evaluates it.
func (e *BulkEvaluator) JumpToX(index Index, x float64) {
	d := &e.domains[index]
	d.x = x
	if !d.r.Contains(x) {
		e.initCubic(index)
	}
	d.x = d.r.Clamp(d.x)
	e.evaluateIndex(index)
}

// Advance moves every index forward by deltaX and re-evaluates all of them.
func (e *BulkEvaluator) Advance(deltaX float64) {
	e.stats.Advances++

	// Update x. Walks the domains linearly; sources and cubics are touched
	// only for indices that left their segment.
	for index := range e.domains {
		d := &e.domains[index]
		d.x += deltaX

		if !d.r.Contains(d.x) {
			e.initCubic(index)
		}
		d.x = d.r.Clamp(d.x)
	}

	e.Evaluate()
}

// Evaluate recomputes every result from the current cubic and position
// without moving anything. Calling it repeatedly gives identical results.
func (e *BulkEvaluator) Evaluate() {
	for index := range e.cubics {
		e.evaluateIndex(index)
	}
}

// IsValid reports whether index is in bounds and attached to a spline.
func (e *BulkEvaluator) IsValid(index Index) bool {
	return 0 <= index && index < len(e.sources) && e.sources[index].spline != nil
}

// Y returns the last computed value of index.
func (e *BulkEvaluator) Y(index Index) float64 {
	return e.results[index].Y
}

// Derivative returns the last computed slope of index.
func (e *BulkEvaluator) Derivative(index Index) float64 {
	return e.results[index].Derivative
}

// Result returns the last computed sample of index.
func (e *BulkEvaluator) Result(index Index) Result {
	return e.results[index]
}

// X returns the current position of index.
func (e *BulkEvaluator) X(index Index) float64 {
	return e.domains[index].x
}

// Range returns the interval of the segment loaded for index.
func (e *BulkEvaluator) Range(index Index) Range {
	return e.domains[index].r
}

// Cubic returns a copy of the cubic loaded for index.
func (e *BulkEvaluator) Cubic(index Index) Cubic {
	return e.cubics[index]
}

// Segment returns the segment loaded for index. ok is false while no segment
// has been resolved, which is always the case for unattached indices.
func (e *BulkEvaluator) Segment(index Index) (id SegmentID, ok bool) {
	s := e.sources[index]
	return s.segment, s.resolved
}

// Spline returns the source attached to index, or nil.
func (e *BulkEvaluator) Spline(index Index) Source {
	return e.sources[index].spline
}

// Ys copies every index's value into dst, growing it if needed, and returns
// it.
func (e *BulkEvaluator) Ys(dst []float64) []float64 {
	dst = resize(dst, len(e.results))
	for i := range e.results {
		dst[i] = e.results[i].Y
	}
	return dst
}

// Derivatives copies every index's slope into dst, growing it if needed, and
// returns it.
func (e *BulkEvaluator) Derivatives(dst []float64) []float64 {
	dst = resize(dst, len(e.results))
	for i := range e.results {
		dst[i] = e.results[i].Derivative
	}
	return dst
}

// Stats returns the work counters.
func (e *BulkEvaluator) Stats() Stats {
	return e.stats
}

// initCubic loads the segment holding the index's position. Unattached
// indices and lookups that land on the cached segment leave the cubic alone.
func (e *BulkEvaluator) initCubic(index Index) {
	s := &e.sources[index]
	if s.spline == nil {
		return
	}

	hint := firstSegmentHint
	if s.resolved {
		hint = s.segment + hintStride
	}

	d := &e.domains[index]
	id := s.spline.SegmentForX(d.x, hint)
	if s.resolved && id == s.segment {
		return
	}

	s.segment = id
	s.resolved = true
	d.r = s.spline.SegmentRange(id)
	e.cubics[index].Init(s.spline.CubicInit(id))
	e.stats.CubicInits++
}

// evaluateIndex samples the cubic at the offset of x into its segment.
func (e *BulkEvaluator) evaluateIndex(index Index) {
	t := e.domains[index].x - e.domains[index].r.Min
	c := &e.cubics[index]
	e.results[index] = Result{
		Y:          c.Evaluate(t),
		Derivative: c.Derivative(t),
	}
}

// resize returns s with length n. Elements past the old length are zeroed,
// and elements dropped by a shrink are cleared so no spline stays reachable.
func resize[T any](s []T, n int) []T {
	if n <= len(s) {
		clear(s[n:])
		return s[:n]
	}
	old := len(s)
	if n > cap(s) {
		grown := make([]T, n)
		copy(grown, s)
		return grown
	}
	s = s[:n]
	clear(s[old:])
	return s
}
