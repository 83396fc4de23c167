package render

// Bit depths accepted by WriteWAV.
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
)

// Full-scale sample values per bit depth.
const (
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

const (
	// wavFormatPCM is the WAVE format tag for integer PCM.
	wavFormatPCM = 1

	// stereoChannels selects the SIMD interleave path.
	stereoChannels = 2

	// fullScale is the clip level of normalized samples.
	fullScale = 1.0
)

// UnityGain leaves the mixed channels unscaled.
const UnityGain = 1.0
