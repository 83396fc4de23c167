package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, planar [][]float64, rate, depth int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteWAV(f, planar, rate, depth))
	require.NoError(t, f.Close())
	return path
}

func readBack(t *testing.T, path string) ([][]float64, int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	planar, rate, depth, err := ReadWAV(f)
	require.NoError(t, err)
	return planar, rate, depth
}

func TestWriteWAV_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		channels int
		depth    int
		tol      float64
	}{
		{"mono 16-bit", 1, 16, 1.0 / maxInt16},
		{"stereo 16-bit", 2, 16, 1.0 / maxInt16},
		{"stereo 24-bit", 2, 24, 1.0 / maxInt24},
		{"quad 16-bit", 4, 16, 1.0 / maxInt16},
		{"mono 32-bit", 1, 32, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const frames = 64
			planar := make([][]float64, tt.channels)
			for c := range planar {
				planar[c] = make([]float64, frames)
				for i := range frames {
					planar[c][i] = float64(i-frames/2)/frames + float64(c)*0.1
				}
			}

			got, rate, depth := readBack(t, writeTemp(t, planar, 8000, tt.depth))
			assert.Equal(t, 8000, rate)
			assert.Equal(t, tt.depth, depth)
			require.Len(t, got, tt.channels)
			for c := range planar {
				require.Len(t, got[c], frames)
				for i := range frames {
					assert.InDelta(t, planar[c][i], got[c][i], tt.tol, "channel %d frame %d", c, i)
				}
			}
		})
	}
}

func TestWriteWAV_Clips(t *testing.T) {
	got, _, _ := readBack(t, writeTemp(t, [][]float64{{2, -3, 0.5}}, 8000, 16))
	require.Len(t, got[0], 3)
	assert.InDelta(t, 1.0, got[0][0], 1e-9)
	assert.InDelta(t, -1.0, got[0][1], 1e-9)
	assert.InDelta(t, 0.5, got[0][2], 1.0/maxInt16)
}

func TestWriteWAV_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.ErrorIs(t, WriteWAV(f, [][]float64{{0}}, 8000, 12), ErrInvalidBitDepth)
	require.ErrorIs(t, WriteWAV(f, [][]float64{{0}}, 0, 16), ErrInvalidSampleRate)
	require.ErrorIs(t, WriteWAV(f, nil, 8000, 16), ErrInvalidMix)
	require.ErrorIs(t, WriteWAV(f, [][]float64{{0, 1}, {0}}, 8000, 16), ErrInvalidMix)
}

func TestReadWAV_Invalid(t *testing.T) {
	_, _, _, err := ReadWAV(bytes.NewReader([]byte("not a wav file")))
	require.ErrorIs(t, err, ErrInvalidWAV)
}

func TestInterleave(t *testing.T) {
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, interleave([][]float64{{1, 2, 3}, {4, 5, 6}}))
	assert.Equal(t, []float64{1, 3, 5, 2, 4, 6}, interleave([][]float64{{1, 2}, {3, 4}, {5, 6}}))
}
