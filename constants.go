package bulkspline

// Capacity limits
const (
	// maxCapacity is the largest accepted Config.Capacity.
	maxCapacity = 1 << 24
)

// Segment resolution
const (
	// firstSegmentHint is the lookup hint for an index whose segment has not
	// been resolved yet.
	firstSegmentHint SegmentID = 0

	// hintStride is added to the cached segment to form the lookup hint;
	// playback usually moves to the next segment.
	hintStride SegmentID = 1
)
