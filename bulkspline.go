package bulkspline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tphakala/go-bulk-spline/internal/cubic"
	"github.com/tphakala/go-bulk-spline/internal/spline"
)

// Index identifies one spline-following slot in a BulkEvaluator.
// Indices are dense, start at 0 and are reused by the caller.
type Index = int

// SegmentID identifies one segment of a Source.
type SegmentID = spline.SegmentID

// Range is a closed interval [Min, Max].
type Range = spline.Range

// CubicInit holds the Hermite parameters a Source hands out per segment.
type CubicInit = cubic.Init

// Cubic is the local polynomial an index samples between segment crossings.
type Cubic = cubic.Cubic

// Source is the contract between the evaluator and the splines it samples.
//
// Sources are borrowed: the evaluator keeps a reference but never mutates it,
// and the caller must not mutate a Source while any index is attached to it.
type Source interface {
	// SegmentForX returns the segment that covers x. hint is the segment the
	// caller expects (the previous one plus one); a wrong hint must still
	// give the right answer.
	SegmentForX(x float64, hint SegmentID) SegmentID

	// SegmentRange returns the x interval over which the segment's cubic is
	// valid.
	SegmentRange(id SegmentID) Range

	// CubicInit returns the parameters of the segment's local cubic. The
	// cubic is evaluated at the offset from SegmentRange(id).Min.
	CubicInit(id SegmentID) CubicInit
}

var _ Source = (*CompactSpline)(nil)

// Result is the last sample computed for an index.
type Result struct {
	Y          float64
	Derivative float64
}

// Stats counts evaluator work since construction.
type Stats struct {
	// Advances is the number of Advance calls.
	Advances uint64

	// CubicInits is the number of cubic reconstructions, from both
	// attachments and segment crossings.
	CubicInits uint64
}

// Config holds evaluator construction options.
type Config struct {
	// Capacity is the initial number of indices.
	Capacity int

	// Logger receives debug records for capacity changes and attachments.
	// Nothing is logged from Advance. Nil discards all records.
	Logger *slog.Logger
}

// Common errors returned by the evaluator constructors.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid evaluator configuration")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative (got %d)", ErrInvalidConfig, c.Capacity)
	}
	if c.Capacity > maxCapacity {
		return fmt.Errorf("%w: capacity too large (max %d)", ErrInvalidConfig, maxCapacity)
	}
	return nil
}
