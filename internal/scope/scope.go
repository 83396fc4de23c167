// Package scope plots recent evaluator values on a terminal screen.
package scope

import (
	"errors"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/tphakala/go-bulk-spline/internal/spline"
)

// ErrNoTraces is returned when a scope is created without indices.
var ErrNoTraces = errors.New("scope needs at least one index")

// Sampler reports the current value of an index.
type Sampler interface {
	Y(index int) float64
}

// Trace is one plotted index.
type Trace struct {
	Index int
	Glyph rune
	Style tcell.Style
}

var (
	defaultGlyphs = []rune{'*', '+', 'o', 'x', '#', '@'}
	defaultColors = []tcell.Color{
		tcell.ColorGreen, tcell.ColorYellow, tcell.ColorAqua,
		tcell.ColorFuchsia, tcell.ColorRed, tcell.ColorWhite,
	}
	axisStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Scope draws one column per sample, newest on the right, for each trace.
type Scope struct {
	screen  tcell.Screen
	traces  []Trace
	history []*History
	yRange  spline.Range
}

// New creates a scope plotting indices within yRange. Each index gets its
// own glyph and color.
func New(screen tcell.Screen, indices []int, yRange spline.Range) (*Scope, error) {
	if len(indices) == 0 {
		return nil, ErrNoTraces
	}
	if !yRange.Valid() || yRange.Width() == 0 {
		return nil, fmt.Errorf("%w: %v", spline.ErrInvalidRange, yRange)
	}

	width, _ := screen.Size()
	s := &Scope{screen: screen, yRange: yRange}
	for i, index := range indices {
		s.traces = append(s.traces, Trace{
			Index: index,
			Glyph: defaultGlyphs[i%len(defaultGlyphs)],
			Style: tcell.StyleDefault.Foreground(defaultColors[i%len(defaultColors)]),
		})
		s.history = append(s.history, NewHistory(width))
	}
	return s, nil
}

// Traces returns the plotted indices with their glyphs.
func (s *Scope) Traces() []Trace {
	return s.traces
}

// Sample records the current value of every trace.
func (s *Scope) Sample(e Sampler) {
	width, _ := s.screen.Size()
	for i, tr := range s.traces {
		s.history[i].Resize(width)
		s.history[i].Push(e.Y(tr.Index))
	}
}

// Draw renders the traces and the zero line, then shows the screen.
func (s *Scope) Draw() {
	s.screen.Clear()
	width, height := s.screen.Size()
	if width == 0 || height == 0 {
		return
	}

	if s.yRange.Contains(0) {
		row := s.Row(0, height)
		for x := range width {
			s.screen.SetContent(x, row, '-', nil, axisStyle)
		}
	}

	for i, tr := range s.traces {
		h := s.history[i]
		offset := width - h.Len()
		for k := range h.Len() {
			y := h.At(k)
			if math.IsNaN(y) {
				continue
			}
			s.screen.SetContent(offset+k, s.Row(y, height), tr.Glyph, nil, tr.Style)
		}
	}
	s.screen.Show()
}

// Row maps y to a screen row: yRange.Max is row 0 and yRange.Min the last
// row. Values outside the range are pinned to the edges.
func (s *Scope) Row(y float64, height int) int {
	y = s.yRange.Clamp(y)
	frac := (s.yRange.Max - y) / s.yRange.Width()
	return int(math.Round(frac * float64(height-1)))
}

// Reset drops all recorded samples.
func (s *Scope) Reset() {
	for _, h := range s.history {
		h.Clear()
	}
}
