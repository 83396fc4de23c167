package render

import (
	"math"

	"github.com/tphakala/go-bulk-spline/internal/simdops"
)

// Level summarizes one rendered channel.
type Level struct {
	Mean float64
	RMS  float64
	Peak float64
}

// Measure returns the level of every channel in planar.
func Measure(planar [][]float64) []Level {
	ops := simdops.Float64Ops()
	levels := make([]Level, len(planar))
	for c, ch := range planar {
		if len(ch) == 0 {
			continue
		}
		n := float64(len(ch))
		levels[c] = Level{
			Mean: ops.Sum(ch) / n,
			RMS:  math.Sqrt(ops.DotProductUnsafe(ch, ch) / n),
			Peak: peak(ch),
		}
	}
	return levels
}

func peak(s []float64) float64 {
	var p float64
	for _, v := range s {
		p = max(p, math.Abs(v))
	}
	return p
}
