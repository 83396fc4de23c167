package render

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-bulk-spline/internal/simdops"
)

// ErrInvalidSampleRate is returned for a non-positive sample rate.
var ErrInvalidSampleRate = errors.New("invalid sample rate")

// Evaluator is the part of a bulk evaluator the renderer drives.
type Evaluator interface {
	Capacity() int
	Advance(deltaX float64)
	Ys(dst []float64) []float64
}

// Mixer folds evaluator values into output channels one frame at a time.
type Mixer struct {
	ops  *simdops.Ops
	mix  Mix
	gain float64
	ys   []float64
}

// NewMixer validates mix against capacity and prepares a reusable mixer.
func NewMixer(mix Mix, capacity int) (*Mixer, error) {
	if err := mix.Validate(capacity); err != nil {
		return nil, err
	}
	return &Mixer{
		ops:  simdops.Float64Ops(),
		mix:  mix,
		gain: mix.Gain,
		ys:   make([]float64, 0, capacity),
	}, nil
}

// Frame samples e and writes one value per channel into dst, which must
// have NumChannels elements. It fails with ErrInvalidMix when e no longer
// has the capacity the mixer was built for.
func (m *Mixer) Frame(e Evaluator, dst []float64) error {
	m.ys = e.Ys(m.ys)
	if len(m.ys) != len(m.mix.Channels[0]) {
		return fmt.Errorf("%w: mixer spans %d indices, evaluator has %d",
			ErrInvalidMix, len(m.mix.Channels[0]), len(m.ys))
	}
	for c, row := range m.mix.Channels {
		dst[c] = m.ops.DotProductUnsafe(row, m.ys)
	}
	m.ops.Scale(dst, dst, m.gain)
	return nil
}

// NumChannels returns the number of output channels.
func (m *Mixer) NumChannels() int {
	return m.mix.NumChannels()
}

// Render produces frames samples per channel, advancing e by 1/sampleRate
// after each frame. The first frame is the evaluator's current state. The
// result is planar: out[c][i] is channel c at frame i.
func Render(e Evaluator, mix Mix, frames, sampleRate int) ([][]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	m, err := NewMixer(mix, e.Capacity())
	if err != nil {
		return nil, err
	}

	frames = max(frames, 0)
	out := make([][]float64, m.NumChannels())
	for c := range out {
		out[c] = make([]float64, frames)
	}

	dt := 1 / float64(sampleRate)
	frame := make([]float64, m.NumChannels())
	for i := range frames {
		if err := m.Frame(e, frame); err != nil {
			return nil, err
		}
		for c, v := range frame {
			out[c][i] = v
		}
		e.Advance(dt)
	}
	return out, nil
}
