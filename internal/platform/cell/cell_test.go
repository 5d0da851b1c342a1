package cell

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/echo-arena/internal/core"
)

type fakeGame struct {
	frames []core.InputFrame
	state  core.GameState
	err    error
}

func (g *fakeGame) ID() string { return "fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.state = core.GameState{Run: 1}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state, Err: g.err}
}

func (g *fakeGame) Render(s *core.Screen) {
	s.Clear()
	s.DrawTextColored(0, 0, "fake", core.ColorRed)
}

func (g *fakeGame) State() core.GameState { return g.state }

func newSimRunner(t *testing.T, g *fakeGame) (*Runner, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(40, 12)
	return NewRunner(sim, g, core.RuntimeConfig{TickRate: 30, Seed: 1}, nil), sim
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		ev       *tcell.EventKey
		expected core.Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.ActionUp},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.ActionLeft},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionQuit},
		{runeKey('s'), core.ActionDown},
		{runeKey('l'), core.ActionRight},
		{runeKey('r'), core.ActionRestart},
		{runeKey('p'), core.ActionPause},
		{runeKey('q'), core.ActionQuit},
		{runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		if got := keyAction(tt.ev); got != tt.expected {
			t.Errorf("keyAction(%s) = %v, expected %v", tt.ev.Name(), got, tt.expected)
		}
	}
}

func TestStyleOf(t *testing.T) {
	if styleOf(core.ColorDefault) != tcell.StyleDefault {
		t.Error("default color should map to the default style")
	}
	want := tcell.StyleDefault.Foreground(tcell.PaletteColor(208))
	if styleOf(core.ColorOrange) != want {
		t.Error("orange should map to palette color 208")
	}
}

func TestRunnerHeadingAndStop(t *testing.T) {
	g := &fakeGame{}
	r, _ := newSimRunner(t, g)

	r.handleEvent(runeKey('w'))
	mustTick(t, r)
	mustTick(t, r)
	r.handleEvent(runeKey(' '))
	mustTick(t, r)

	if len(g.frames) != 3 {
		t.Fatalf("steps = %d, expected 3", len(g.frames))
	}
	if g.frames[1].Movement() != core.ActionUp {
		t.Errorf("second frame moves %v, expected Up", g.frames[1].Movement())
	}
	if g.frames[2].Movement() != core.ActionNone {
		t.Errorf("frame after stop moves %v", g.frames[2].Movement())
	}
}

func TestRunnerPauseAndQuit(t *testing.T) {
	g := &fakeGame{}
	r, _ := newSimRunner(t, g)

	r.handleEvent(runeKey('p'))
	mustTick(t, r)
	if len(g.frames) != 0 {
		t.Errorf("steps while paused = %d, expected 0", len(g.frames))
	}
	r.handleEvent(runeKey('p'))
	mustTick(t, r)
	if len(g.frames) != 1 {
		t.Errorf("steps after resume = %d, expected 1", len(g.frames))
	}

	if r.handleEvent(runeKey('q')) {
		t.Error("handleEvent(q) = true, expected false")
	}
}

func TestRunnerSurfacesSimulationError(t *testing.T) {
	g := &fakeGame{err: errors.New("broken tape")}
	r, _ := newSimRunner(t, g)
	if err := r.Tick(); err == nil {
		t.Error("Tick() error = nil, expected simulation error")
	}
}

func TestBlitCopiesCells(t *testing.T) {
	g := &fakeGame{}
	r, sim := newSimRunner(t, g)
	r.draw()

	mainc, _, style, _ := sim.GetContent(0, 0)
	if mainc != 'f' {
		t.Errorf("cell (0,0) = %q, expected 'f'", mainc)
	}
	if style != styleOf(core.ColorRed) {
		t.Error("cell (0,0) style does not carry the game color")
	}
}

func mustTick(t *testing.T, r *Runner) {
	t.Helper()
	if err := r.Tick(); err != nil {
		t.Fatalf("Tick() error: %v", err)
	}
}
