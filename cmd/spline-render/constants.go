package main

// Default configuration values
const (
	defaultOutput   = "out.wav"
	defaultBitDepth = 16
)

// Exit codes
const (
	exitFailure = 1
)
