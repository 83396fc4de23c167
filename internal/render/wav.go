package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/go-bulk-spline/internal/simdops"
)

// ErrInvalidBitDepth is returned for bit depths other than 16, 24 and 32.
var ErrInvalidBitDepth = errors.New("unsupported bit depth")

// WriteWAV encodes planar samples in [-1, 1] as integer PCM. Samples
// outside that range are clipped. All channels must have equal length.
func WriteWAV(w io.WriteSeeker, planar [][]float64, sampleRate, bitDepth int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	maxVal, err := maxValue(bitDepth)
	if err != nil {
		return err
	}
	if len(planar) == 0 {
		return fmt.Errorf("%w: no channels", ErrInvalidMix)
	}
	frames := len(planar[0])
	for c, ch := range planar {
		if len(ch) != frames {
			return fmt.Errorf("%w: channel %d has %d frames, want %d", ErrInvalidMix, c, len(ch), frames)
		}
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: len(planar), SampleRate: sampleRate},
		Data:           quantize(interleave(planar), maxVal),
		SourceBitDepth: bitDepth,
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, len(planar), wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return nil
}

// interleave flattens planar channels frame by frame.
func interleave(planar [][]float64) []float64 {
	channels := len(planar)
	frames := len(planar[0])
	out := make([]float64, frames*channels)

	if channels == stereoChannels {
		simdops.Float64Ops().Interleave2(out, planar[0], planar[1])
		return out
	}
	for i := range frames {
		for c := range channels {
			out[i*channels+c] = planar[c][i]
		}
	}
	return out
}

func quantize(samples []float64, maxVal float64) []int {
	out := make([]int, len(samples))
	for i, v := range samples {
		v = min(max(v, -fullScale), fullScale)
		out[i] = int(math.Round(v * maxVal))
	}
	return out
}

// maxValue returns the full-scale sample value for bitDepth.
func maxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidBitDepth, bitDepth)
	}
}

// ErrInvalidWAV is returned by ReadWAV for input that is not a WAVE file.
var ErrInvalidWAV = errors.New("invalid WAV file")

// ReadWAV decodes integer PCM back into planar samples in [-1, 1] and
// returns them with the file's sample rate and bit depth.
func ReadWAV(r io.ReadSeeker) (planar [][]float64, sampleRate, bitDepth int, err error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, 0, ErrInvalidWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to decode samples: %w", err)
	}

	bitDepth = int(dec.BitDepth)
	maxVal, err := maxValue(bitDepth)
	if err != nil {
		return nil, 0, 0, err
	}

	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	planar = make([][]float64, channels)
	for c := range planar {
		planar[c] = make([]float64, frames)
	}
	inv := 1 / maxVal
	for i := range frames {
		for c := range channels {
			planar[c][i] = float64(buf.Data[i*channels+c]) * inv
		}
	}
	return planar, buf.Format.SampleRate, bitDepth, nil
}
