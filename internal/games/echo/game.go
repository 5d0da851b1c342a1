package echo

import (
	"math/rand"

	"github.com/vovakirdan/echo-arena/internal/config"
	"github.com/vovakirdan/echo-arena/internal/core"
)

// Game is the Playing/GameOver machine around a Run. It lives for a whole
// session and keeps the session best across restarts.
type Game struct {
	cfg    config.EchoConfig
	tuning Tuning
	seeds  *rand.Rand
	run    *Run
	runNo  int
	best   int
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.EchoConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "echo"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Echo"
}

// Reset starts a new session. Runs within the session derive their seeds
// from rt.Seed, so a session replays exactly given the same inputs.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.tuning = NewTuning(g.cfg, rt.TickRate)
	g.seeds = rand.New(rand.NewSource(rt.Seed))
	g.runNo = 0
	g.best = 0
	g.startRun()
}

func (g *Game) startRun() {
	g.runNo++
	g.run = NewRun(g.tuning, g.seeds.Int63())
}

// Step advances one tick. While the run is over only a restart is
// accepted; it begins a fresh run and consumes the tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if over, _ := g.run.Over(); over {
		if !in.Has(core.ActionRestart) {
			return core.StepResult{State: g.State()}
		}
		prev := g.run.Score()
		g.startRun()
		return core.StepResult{
			State: g.State(),
			Events: []core.Event{{
				Name:  "restart",
				Attrs: []any{"run", g.runNo, "previous_score", prev},
			}},
		}
	}

	err := g.run.Step(DirectionFrom(in.Movement()))
	g.best = max(g.best, g.run.Score())

	var events []core.Event
	if evs := g.run.Events(); len(evs) > 0 {
		events = append(events, evs...)
	}
	return core.StepResult{
		State:  g.State(),
		Events: events,
		Err:    err,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	over, cause := g.run.Over()
	return core.GameState{
		Score:    g.run.Score(),
		Best:     g.best,
		Run:      g.runNo,
		GameOver: over,
		Cause:    cause,
	}
}

// Render draws the current snapshot onto the screen.
func (g *Game) Render(s *core.Screen) {
	RenderSnapshot(g.Snapshot(), s)
}
