// Package curvefile reads curve scenes from JSON and turns them into a
// ready-to-run evaluator.
//
// A scene lists curves, each given either as explicit nodes
// ([x, y, derivative] triples) or as points ([x, y] pairs) that are fitted
// with one of the spline fit methods. x is measured in seconds. An optional
// channel matrix maps curves to output channels; without it every curve
// gets its own channel.
//
//	{
//	  "sample_rate": 48000,
//	  "duration": 2,
//	  "curves": [
//	    {"name": "sweep", "points": [[0, -1], [1, 1], [2, -1]], "fit": "monotone"},
//	    {"name": "hold", "nodes": [[0, 0.5, 0], [2, 0.5, 0]], "start": 0.5}
//	  ],
//	  "channels": [[1, 0], [0, 1]]
//	}
package curvefile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	bulkspline "github.com/tphakala/go-bulk-spline"
	"github.com/tphakala/go-bulk-spline/internal/render"
)

// ErrInvalidCurve is returned for scenes that cannot be built.
var ErrInvalidCurve = errors.New("invalid curve file")

// File is the JSON document.
type File struct {
	SampleRate int         `json:"sample_rate,omitzero"`
	Duration   float64     `json:"duration,omitzero"`
	Gain       float64     `json:"gain,omitzero"`
	Curves     []Curve     `json:"curves"`
	Channels   [][]float64 `json:"channels,omitempty"`
}

// Curve is one spline of the scene.
type Curve struct {
	Name   string       `json:"name,omitempty"`
	Start  float64      `json:"start,omitzero"`
	Nodes  [][3]float64 `json:"nodes,omitempty"`
	Points [][2]float64 `json:"points,omitempty"`
	Fit    string       `json:"fit,omitempty"`
}

// Scene is a built curve file: one evaluator index per curve, attached at
// the curve's start.
type Scene struct {
	Evaluator  *bulkspline.BulkEvaluator
	Splines    []*bulkspline.CompactSpline
	Names      []string
	Mix        render.Mix
	SampleRate int
	Duration   float64
}

// Frames returns the number of samples covering the scene duration.
func (s *Scene) Frames() int {
	return int(math.Round(s.Duration * float64(s.SampleRate)))
}

// Read decodes a curve file. Unknown members are rejected.
func Read(r io.Reader) (*File, error) {
	var f File
	dec := jsontext.NewDecoder(r)
	if err := json.UnmarshalDecode(dec, &f, json.RejectUnknownMembers(true)); err != nil {
		return nil, fmt.Errorf("failed to decode curve file: %w", err)
	}
	return &f, nil
}

// Load reads the curve file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open curve file: %w", err)
	}
	defer fh.Close()

	return Read(fh)
}

// Write encodes f as indented JSON.
func Write(w io.Writer, f *File) error {
	if err := json.MarshalWrite(w, f, jsontext.WithIndent("  ")); err != nil {
		return fmt.Errorf("failed to encode curve file: %w", err)
	}
	return nil
}

// Validate checks the document without building splines.
func (f *File) Validate() error {
	if len(f.Curves) == 0 {
		return fmt.Errorf("%w: no curves", ErrInvalidCurve)
	}
	if f.SampleRate < 0 {
		return fmt.Errorf("%w: sample_rate %d", ErrInvalidCurve, f.SampleRate)
	}
	if f.Duration < 0 {
		return fmt.Errorf("%w: duration %v", ErrInvalidCurve, f.Duration)
	}

	for i, c := range f.Curves {
		if (len(c.Nodes) == 0) == (len(c.Points) == 0) {
			return fmt.Errorf("%w: curve %d (%q) needs exactly one of nodes or points", ErrInvalidCurve, i, c.Name)
		}
		if len(c.Nodes) > 0 && c.Fit != "" {
			return fmt.Errorf("%w: curve %d (%q) sets fit on explicit nodes", ErrInvalidCurve, i, c.Name)
		}
		if _, err := bulkspline.ParseFitMethod(c.Fit); err != nil {
			return fmt.Errorf("%w: curve %d (%q): %w", ErrInvalidCurve, i, c.Name, err)
		}
	}

	if f.Channels != nil {
		mix := render.Mix{Channels: f.Channels}
		if err := mix.Validate(len(f.Curves)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCurve, err)
		}
	}
	return nil
}

// Build validates f, builds every spline and attaches them to a fresh
// evaluator. logger may be nil.
func (f *File) Build(logger *slog.Logger) (*Scene, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	e, err := bulkspline.New(&bulkspline.Config{Capacity: len(f.Curves), Logger: logger})
	if err != nil {
		return nil, err
	}

	scene := &Scene{
		Evaluator:  e,
		Splines:    make([]*bulkspline.CompactSpline, len(f.Curves)),
		Names:      make([]string, len(f.Curves)),
		SampleRate: f.SampleRate,
		Duration:   f.Duration,
	}
	if scene.SampleRate == 0 {
		scene.SampleRate = DefaultSampleRate
	}

	var longest float64
	for i, c := range f.Curves {
		s, err := c.spline()
		if err != nil {
			return nil, fmt.Errorf("%w: curve %d (%q): %w", ErrInvalidCurve, i, c.Name, err)
		}
		scene.Splines[i] = s
		scene.Names[i] = c.name(i)
		e.AttachSpline(i, s, c.Start)
		e.JumpToX(i, c.Start)
		longest = max(longest, s.EndX()-e.X(i))
	}
	if scene.Duration == 0 {
		scene.Duration = longest
	}

	scene.Mix = render.Identity(len(f.Curves))
	if f.Channels != nil {
		scene.Mix.Channels = f.Channels
	}
	scene.Mix.Gain = f.Gain
	if scene.Mix.Gain == 0 {
		scene.Mix.Gain = DefaultGain
	}
	return scene, nil
}

func (c Curve) spline() (*bulkspline.CompactSpline, error) {
	if len(c.Nodes) > 0 {
		nodes := make([]bulkspline.Node, len(c.Nodes))
		for i, n := range c.Nodes {
			nodes[i] = bulkspline.Node{X: n[nodeX], Y: n[nodeY], Derivative: n[nodeDerivative]}
		}
		return bulkspline.SplineFromNodes(nodes)
	}

	method, err := bulkspline.ParseFitMethod(c.Fit)
	if err != nil {
		return nil, err
	}
	xs := make([]float64, len(c.Points))
	ys := make([]float64, len(c.Points))
	for i, p := range c.Points {
		xs[i], ys[i] = p[pointX], p[pointY]
	}
	return bulkspline.FitSpline(xs, ys, method)
}

func (c Curve) name(i int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("curve%d", i)
}
