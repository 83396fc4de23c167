// Package render turns evaluator output into audio: channel mix-down,
// offline rendering and WAV encoding.
package render

import (
	"errors"
	"fmt"
)

// ErrInvalidMix is returned when a Mix does not fit the evaluator it is
// applied to.
var ErrInvalidMix = errors.New("invalid mix")

// Mix describes output channels as weight rows over evaluator indices:
// channel c at a frame is Gain * sum_i Channels[c][i] * y_i. A zero Gain
// mutes every channel; use UnityGain for an unscaled mix.
type Mix struct {
	Channels [][]float64
	Gain     float64
}

// Identity returns a mix with one channel per index.
func Identity(capacity int) Mix {
	rows := make([][]float64, capacity)
	for i := range rows {
		rows[i] = make([]float64, capacity)
		rows[i][i] = 1
	}
	return Mix{Channels: rows, Gain: UnityGain}
}

// NumChannels returns the number of output channels.
func (m Mix) NumChannels() int {
	return len(m.Channels)
}

// Validate checks that every weight row spans capacity indices.
func (m Mix) Validate(capacity int) error {
	if len(m.Channels) == 0 {
		return fmt.Errorf("%w: no output channels", ErrInvalidMix)
	}
	for c, row := range m.Channels {
		if len(row) != capacity {
			return fmt.Errorf("%w: channel %d has %d weights, evaluator has %d indices",
				ErrInvalidMix, c, len(row), capacity)
		}
	}
	return nil
}
