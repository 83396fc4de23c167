// Command spline-scope animates the curves of a curve file in the terminal.
//
// Every frame advances all curves by Speed/FPS seconds and plots the newest
// value of each curve in the rightmost column. Press Esc, q or Ctrl-C to
// quit, space to pause, r to restart.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fulldump/goconfig"
	"github.com/gdamore/tcell/v2"
	bulkspline "github.com/tphakala/go-bulk-spline"
	"github.com/tphakala/go-bulk-spline/internal/curvefile"
	"github.com/tphakala/go-bulk-spline/internal/scope"
)

var errNoInput = errors.New("no input file, use -input")

// Config holds the command-line configuration.
type Config struct {
	Input string  `usage:"curve file to animate (JSON)"`
	FPS   int     `usage:"frames per second"`
	Speed float64 `usage:"curve seconds per wall-clock second"`
	Loop  bool    `usage:"restart curves when they all reach their end"`
}

func defaultConfig() Config {
	return Config{FPS: defaultFPS, Speed: defaultSpeed, Loop: true}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "spline-scope: %v\n", err)
		os.Exit(exitFailure)
	}
}

func run() error {
	c := defaultConfig()
	goconfig.Read(&c)
	if c.Input == "" {
		return errNoInput
	}
	if c.FPS <= 0 {
		c.FPS = defaultFPS
	}

	f, err := curvefile.Load(c.Input)
	if err != nil {
		return err
	}
	scene, err := f.Build(slog.New(slog.DiscardHandler))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer screen.Fini()

	p, err := newPlayer(screen, scene, c)
	if err != nil {
		return err
	}
	p.run()
	return nil
}

// player owns the evaluator and the scope for one terminal session.
type player struct {
	screen tcell.Screen
	scene  *curvefile.Scene
	scope  *scope.Scope
	starts []float64
	step   float64
	fps    int
	loop   bool
	paused bool
}

func newPlayer(screen tcell.Screen, scene *curvefile.Scene, c Config) (*player, error) {
	e := scene.Evaluator
	indices := make([]int, e.Capacity())
	starts := make([]float64, e.Capacity())
	for i := range indices {
		indices[i] = i
		starts[i] = e.X(i)
	}

	sc, err := scope.New(screen, indices, plotRange(scene.Splines))
	if err != nil {
		return nil, err
	}
	return &player{
		screen: screen,
		scene:  scene,
		scope:  sc,
		starts: starts,
		step:   c.Speed / float64(c.FPS),
		fps:    c.FPS,
		loop:   c.Loop,
	}, nil
}

// run draws frames until the user quits.
func (p *player) run() {
	ticker := time.NewTicker(time.Second / time.Duration(p.fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, eventQueueSize)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(p.screen, events, done)

	for {
		select {
		case ev := <-events:
			if !p.handle(ev) {
				return
			}
		case <-ticker.C:
			p.frame()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// frame advances the curves one step and redraws.
func (p *player) frame() {
	if !p.paused {
		e := p.scene.Evaluator
		e.Advance(p.step)
		if p.loop && p.finished() {
			p.restart()
		}
		p.scope.Sample(e)
	}
	p.scope.Draw()
}

// handle reacts to one terminal event and reports whether to keep running.
func (p *player) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				p.paused = !p.paused
			case 'r':
				p.restart()
			}
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

// finished reports whether every curve sits at its last node.
func (p *player) finished() bool {
	e := p.scene.Evaluator
	for i, s := range p.scene.Splines {
		if e.X(i) < s.EndX() {
			return false
		}
	}
	return true
}

// restart moves every curve back to its starting position.
func (p *player) restart() {
	e := p.scene.Evaluator
	for i, x := range p.starts {
		e.JumpToX(i, x)
	}
	p.scope.Reset()
}

// plotRange spans the value ranges of all splines, slightly padded.
func plotRange(splines []*bulkspline.CompactSpline) bulkspline.Range {
	r := splines[0].YRange()
	for _, s := range splines[1:] {
		yr := s.YRange()
		r.Min = min(r.Min, yr.Min)
		r.Max = max(r.Max, yr.Max)
	}
	pad := max(r.Width()*yPadding, yPadding)
	return bulkspline.Range{Min: r.Min - pad, Max: r.Max + pad}
}
