package main

// Default configuration values
const (
	defaultFPS   = 60
	defaultSpeed = 1.0
)

// Plot range padding added around the spline value ranges.
const yPadding = 0.05

// eventQueueSize is the buffer of the terminal event channel.
const eventQueueSize = 16

const exitFailure = 1
