// Package bulkspline evaluates many piecewise-cubic curves in lockstep.
//
// Each index of a [BulkEvaluator] follows one spline: it holds a sample
// position, the segment of the spline that position lies in, a local cubic
// for that segment, and the last computed value and slope. Every frame the
// caller calls [BulkEvaluator.Advance], which moves all positions, rebuilds
// the cubic only for indices that crossed into another segment, and then
// evaluates every index.
//
// # Quick Start
//
//	curve, err := bulkspline.FitSpline(
//	    []float64{0, 0.5, 1, 2},
//	    []float64{0, 1, 0.6, 0},
//	    bulkspline.FitAkima,
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	e := bulkspline.NewBulkEvaluator(64)
//	for i := range 64 {
//	    e.AttachSpline(i, curve, float64(i)/64) // staggered starts
//	}
//
//	for range frames {
//	    e.Advance(1.0 / 60)
//	    for i := range 64 {
//	        apply(i, e.Y(i), e.Derivative(i))
//	    }
//	}
//
// # Data Layout
//
// Per-index state is kept in four parallel slices (cubics, domains, sources,
// results) instead of one slice of records. Advance makes two full linear
// passes: the first over positions, the second over cubics and results. The
// segment lookup and cubic rebuild of the first pass run only for indices
// that left their segment; lookups are hinted with the next segment, so
// forward playback resolves in constant time.
//
// # Sources
//
// Any type implementing [Source] can feed an index. [CompactSpline] is the
// built-in implementation: nodes store their position in granularity steps
// and their value quantized into a fixed range, 16 bits each. Splines can be
// assembled node by node ([NewCompactSpline]), from explicit nodes
// ([SplineFromNodes]), or fitted through sample points ([FitSpline]), where
// node slopes are estimated with gonum's Akima, Fritsch-Butland or natural
// cubic interpolators.
//
// Sources are borrowed. The evaluator never mutates them, and callers must
// not add nodes to a spline while any index samples it.
//
// # Unattached Indices
//
// Indices without a spline take part in both passes of Advance but never
// resolve a segment. Their range is empty at 0, so their position stays at 0,
// and they evaluate the zero cubic, so their result stays {0, 0}. Use
// [BulkEvaluator.IsValid] to tell them apart.
//
// # Thread Safety
//
// A BulkEvaluator is owned by one goroutine. No method may run concurrently
// with Advance or AttachSpline; callers that share an evaluator must
// synchronize externally.
package bulkspline
