package spline

import "github.com/tphakala/go-bulk-spline/internal/mathutil"

// Segment layout
const (
	// Nodes needed to form one segment
	nodesPerSegment = 2

	// Points needed before derivatives are estimated by an interpolator;
	// two points use the secant slope instead.
	minInterpolatorPoints = 3
)

// Granularity defaults
const (
	// maxStepsX is the number of x steps a uint16 node position can hold.
	maxStepsX = mathutil.MaxQuantized

	// minGranularity keeps a derived granularity positive for splines
	// whose nodes all sit at x = 0.
	minGranularity = 1e-9
)
