package curvefile

// Defaults applied to omitted fields.
const (
	DefaultSampleRate = 48000
	DefaultGain       = 1.0
)

// Node tuple layout: [x, y, derivative].
const (
	nodeX = iota
	nodeY
	nodeDerivative
)

// Point tuple layout: [x, y].
const (
	pointX = iota
	pointY
)
