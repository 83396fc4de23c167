package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-bulk-spline/internal/curvefile"
)

const testScene = `{
  "curves": [
    {"name": "rise", "nodes": [[0, 0, 1], [1, 1, 1]]},
    {"name": "fall", "nodes": [[0, 1, -1], [1, 0, -1]]}
  ]
}`

func newTestPlayer(t *testing.T, c Config) (*player, tcell.SimulationScreen) {
	t.Helper()
	f, err := curvefile.Read(strings.NewReader(testScene))
	require.NoError(t, err)
	scene, err := f.Build(nil)
	require.NoError(t, err)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 10)

	p, err := newPlayer(screen, scene, c)
	require.NoError(t, err)
	return p, screen
}

func TestPlayer_FrameAdvancesAndDraws(t *testing.T) {
	p, screen := newTestPlayer(t, Config{FPS: 10, Speed: 1})

	p.frame()
	assert.InDelta(t, 0.1, p.scene.Evaluator.X(0), 1e-9)

	traces := p.scope.Traces()
	row := p.scope.Row(p.scene.Evaluator.Y(0), 10)
	r, _, _, _ := screen.GetContent(19, row)
	assert.Equal(t, traces[0].Glyph, r)
}

func TestPlayer_PauseAndRestart(t *testing.T) {
	p, _ := newTestPlayer(t, Config{FPS: 10, Speed: 1})
	e := p.scene.Evaluator

	p.frame()
	assert.True(t, p.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	p.frame()
	assert.InDelta(t, 0.1, e.X(0), 1e-9, "paused player must not advance")

	assert.True(t, p.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	assert.InDelta(t, 0.0, e.X(0), 1e-9)
}

func TestPlayer_LoopsAtEnd(t *testing.T) {
	p, _ := newTestPlayer(t, Config{FPS: 1, Speed: 0.75, Loop: true})
	e := p.scene.Evaluator

	p.frame()
	assert.InDelta(t, 0.75, e.X(0), 1e-9)
	p.frame()
	assert.InDelta(t, 0.0, e.X(0), 1e-9, "reaching the end restarts")

	p.loop = false
	for range 8 {
		p.frame()
	}
	assert.InDelta(t, p.scene.Splines[0].EndX(), e.X(0), 1e-9)
}

func TestPlayer_QuitKeys(t *testing.T) {
	p, _ := newTestPlayer(t, defaultConfig())

	assert.False(t, p.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, p.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, p.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, p.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}

func TestPlotRange(t *testing.T) {
	p, _ := newTestPlayer(t, defaultConfig())
	r := plotRange(p.scene.Splines)
	assert.InDelta(t, -0.05, r.Min, 1e-9)
	assert.InDelta(t, 1.05, r.Max, 1e-9)
}

func TestPollEvents_StopsWhenDone(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	events := make(chan tcell.Event)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		pollEvents(screen, events, done)
		close(exited)
	}()

	// Nobody receives, so the forwarder blocks on this key until done closes.
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	close(done)

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("event forwarder did not stop after done was closed")
	}
}

func TestPollEvents_StopsOnFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())

	events := make(chan tcell.Event, 1)
	exited := make(chan struct{})
	go func() {
		pollEvents(screen, events, make(chan struct{}))
		close(exited)
	}()

	screen.Fini()

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("event forwarder did not stop after the screen was finalized")
	}
}
