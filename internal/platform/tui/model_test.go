package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/echo-arena/internal/core"
)

type fakeGame struct {
	frames []core.InputFrame
	state  core.GameState
	err    error
	titled int
}

func (g *fakeGame) ID() string { return "fake" }

func (g *fakeGame) Title() string {
	g.titled++
	return "Fake"
}

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.frames = nil
	g.state = core.GameState{Run: 1}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if in.Has(core.ActionRestart) && g.state.GameOver {
		g.state = core.GameState{Run: g.state.Run + 1, Best: g.state.Best}
	}
	return core.StepResult{State: g.state, Err: g.err}
}

func (g *fakeGame) Render(s *core.Screen) {
	s.Clear()
	s.DrawTextColored(0, 0, "fake arena", core.ColorDefault)
}

func (g *fakeGame) State() core.GameState { return g.state }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(g *fakeGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 30, Seed: 1}, nil, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runes("w"), core.ActionUp},
		{runes("j"), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runes("d"), core.ActionRight},
		{runes("r"), core.ActionRestart},
		{runes("p"), core.ActionPause},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("x"), core.ActionNone},
		{runes("z"), core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.expected {
			t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestModelHeadingPersistsAcrossTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, runes("a"))
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})
	m = update(t, m, runes("x"))
	m = update(t, m, TickMsg{})

	if len(g.frames) != 3 {
		t.Fatalf("steps = %d, expected 3", len(g.frames))
	}
	for i := 0; i < 2; i++ {
		if !g.frames[i].Has(core.ActionLeft) {
			t.Errorf("frame %d missing Left", i)
		}
	}
	if g.frames[2].Movement() != core.ActionNone {
		t.Errorf("frame after stop moves %v", g.frames[2].Movement())
	}
}

func TestModelPauseSkipsSteps(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, runes("p"))
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})
	if len(g.frames) != 0 {
		t.Errorf("steps while paused = %d, expected 0", len(g.frames))
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view missing PAUSED")
	}

	m = update(t, m, runes("p"))
	update(t, m, TickMsg{})
	if len(g.frames) != 1 {
		t.Errorf("steps after resume = %d, expected 1", len(g.frames))
	}
}

func TestModelRestartIsOneShot(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	g.state.GameOver = true
	m.state.GameOver = true
	firstRun := m.runID

	m = update(t, m, runes("d"))
	m = update(t, m, runes("r"))
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if !g.frames[0].Has(core.ActionRestart) {
		t.Error("first frame missing Restart")
	}
	if g.frames[1].Has(core.ActionRestart) {
		t.Error("restart repeated on the next tick")
	}
	if m.state.Run != 2 {
		t.Errorf("Run = %d, expected 2", m.state.Run)
	}
	if m.runID == firstRun {
		t.Error("run id not renewed after restart")
	}
	if g.frames[1].Movement() != core.ActionNone {
		t.Errorf("heading survived restart: %v", g.frames[1].Movement())
	}
}

func TestModelStopsOnSimulationError(t *testing.T) {
	g := &fakeGame{err: errors.New("broken tape")}
	m := newTestModel(g)

	next, cmd := m.Update(TickMsg{})
	nm := next.(Model)
	if nm.Err() == nil {
		t.Fatal("Err() = nil, expected simulation error")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if nm.View() != "" {
		t.Error("view not cleared after quit")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, expected 60x19", m.screen.Width(), m.screen.Height())
	}
	if len(g.frames) != 1 {
		t.Errorf("resize reset the game: %d frames", len(g.frames))
	}
	if !strings.Contains(m.View(), "fake arena") {
		t.Error("view missing game output")
	}
}

func TestModelInitSetsTitle(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() returned no command")
	}
	if g.titled != 1 {
		t.Errorf("Title() calls = %d, expected 1", g.titled)
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected %q", cfg.Address, ":23234")
	}
	if cfg.TickRate != core.DefaultConfig().TickRate {
		t.Errorf("TickRate = %d, expected %d", cfg.TickRate, core.DefaultConfig().TickRate)
	}
	if cfg.IdleTimeout <= 0 {
		t.Errorf("IdleTimeout = %v, expected positive", cfg.IdleTimeout)
	}
}
