// Package stream plays evaluator output through beep.
package stream

import (
	"errors"
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/tphakala/go-bulk-spline/internal/render"
)

// ErrChannelLayout is returned for mixes that are neither mono nor stereo.
var ErrChannelLayout = errors.New("stream needs a mono or stereo mix")

const (
	monoChannels   = 1
	stereoChannels = 2
)

// Streamer is a beep.Streamer that advances an evaluator by one sample
// period per sample. A mono mix is played on both sides.
type Streamer struct {
	e     render.Evaluator
	mixer *render.Mixer
	dt    float64

	total int
	pos   int
	frame []float64
	err   error
}

var _ beep.Streamer = (*Streamer)(nil)

// New creates a streamer that plays duration worth of samples at rate.
func New(e render.Evaluator, mix render.Mix, rate beep.SampleRate, duration time.Duration) (*Streamer, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", render.ErrInvalidSampleRate, rate)
	}
	if n := mix.NumChannels(); n != monoChannels && n != stereoChannels {
		return nil, fmt.Errorf("%w: got %d channels", ErrChannelLayout, n)
	}
	m, err := render.NewMixer(mix, e.Capacity())
	if err != nil {
		return nil, err
	}

	return &Streamer{
		e:     e,
		mixer: m,
		dt:    1 / float64(rate),
		total: rate.N(duration),
		frame: make([]float64, m.NumChannels()),
	}, nil
}

// Stream fills samples until the duration is exhausted. It stops early,
// recording the error for Err, when the evaluator no longer fits the mix.
func (s *Streamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.err != nil {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return n, n > 0
		}

		if err := s.mixer.Frame(s.e, s.frame); err != nil {
			s.err = err
			return n, n > 0
		}
		samples[i][0] = s.frame[0]
		samples[i][1] = s.frame[len(s.frame)-1]
		s.e.Advance(s.dt)

		s.pos++
		n++
	}
	return n, true
}

// Err returns the error that stopped streaming, if any.
func (s *Streamer) Err() error {
	return s.err
}

// Len returns the total number of samples the streamer produces.
func (s *Streamer) Len() int {
	return s.total
}

// Position returns the number of samples streamed so far.
func (s *Streamer) Position() int {
	return s.pos
}
