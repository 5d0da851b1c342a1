package echo

import (
	"math"

	"github.com/vovakirdan/echo-arena/internal/core"
)

// Phase is the state of the game machine.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// EchoView is the render-facing state of one echo.
type EchoView struct {
	ID       int
	Pos      core.Vec
	Playback int
	Frozen   bool
	Harmless bool // still inside its spawn grace
	Palette  int
}

// PlayerView is the render-facing state of the player.
type PlayerView struct {
	Pos        core.Vec
	Radius     float64
	Shrunk     bool
	Invincible bool
}

// PowerupView describes the active powerup for the timer bar.
type PowerupView struct {
	Kind      Kind
	Remaining int
	Duration  int
}

// Snapshot captures the complete game state after a tick. Frontends only
// read snapshots; it is also used for determinism testing.
type Snapshot struct {
	Tick       uint64
	TickRate   int
	Phase      Phase
	Cause      string
	Run        int
	Score      int
	Best       int
	Kills      int
	ArenaW     float64
	ArenaH     float64
	Player     PlayerView
	Echoes     []EchoView
	Items      []Item
	Pickups    []Pickup
	Powerup    *PowerupView
	NextEchoIn int // ticks
	HistoryLen int
}

// Elapsed returns the run time in seconds.
func (s Snapshot) Elapsed() float64 {
	if s.TickRate <= 0 {
		return 0
	}
	return float64(s.Tick) / float64(s.TickRate)
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	r := g.run
	phase := PhasePlaying
	if r.over {
		phase = PhaseGameOver
	}

	snap := Snapshot{
		Tick:     r.tick,
		TickRate: r.tuning.TickRate,
		Phase:    phase,
		Cause:    r.cause,
		Run:      g.runNo,
		Score:    r.score,
		Best:     g.best,
		Kills:    r.kills,
		ArenaW:   r.tuning.ArenaW,
		ArenaH:   r.tuning.ArenaH,
		Player: PlayerView{
			Pos:        r.player.Pos,
			Radius:     r.player.Radius,
			Shrunk:     r.player.Radius < r.player.BaseRadius,
			Invincible: r.player.Invincible,
		},
		Echoes:     make([]EchoView, 0, len(r.echoes)),
		Items:      append([]Item(nil), r.items...),
		Pickups:    append([]Pickup(nil), r.pickups...),
		NextEchoIn: r.NextEchoIn(),
		HistoryLen: r.history.Len(),
	}
	for _, e := range r.echoes {
		snap.Echoes = append(snap.Echoes, EchoView{
			ID:       e.ID,
			Pos:      e.Pos(),
			Playback: e.Playback(),
			Frozen:   e.Frozen(),
			Harmless: e.Playback() < r.tuning.EchoGrace,
			Palette:  e.Palette,
		})
	}
	if p := r.player.Powerup; p != nil {
		snap.Powerup = &PowerupView{Kind: p.Kind, Remaining: p.Remaining, Duration: p.Duration}
	}
	return snap
}

// Hash folds every snapshot field into a single value for cheap equality
// checks. TickRate and the arena size come from the config and are left out.
func (s Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) { h = h*31 + v }
	vec := func(v core.Vec) {
		mix(math.Float64bits(v.X))
		mix(math.Float64bits(v.Y))
	}
	flag := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}
	str := func(v string) {
		mix(uint64(len(v)))
		for i := 0; i < len(v); i++ {
			mix(uint64(v[i]))
		}
	}

	mix(s.Tick)
	str(string(s.Phase))
	str(s.Cause)
	mix(uint64(s.Run))
	mix(uint64(s.Score))
	mix(uint64(s.Best))
	mix(uint64(s.Kills))
	mix(uint64(s.NextEchoIn))
	mix(uint64(s.HistoryLen))

	vec(s.Player.Pos)
	mix(math.Float64bits(s.Player.Radius))
	flag(s.Player.Shrunk)
	flag(s.Player.Invincible)

	mix(uint64(len(s.Echoes)))
	for _, e := range s.Echoes {
		mix(uint64(e.ID))
		mix(uint64(e.Playback))
		vec(e.Pos)
		flag(e.Frozen)
		flag(e.Harmless)
		mix(uint64(e.Palette))
	}
	mix(uint64(len(s.Items)))
	for _, it := range s.Items {
		mix(uint64(it.ID))
		mix(uint64(it.Value))
		vec(it.Pos)
	}
	mix(uint64(len(s.Pickups)))
	for _, p := range s.Pickups {
		mix(uint64(p.ID))
		mix(uint64(p.Kind))
		vec(p.Pos)
	}
	if s.Powerup != nil {
		mix(uint64(s.Powerup.Kind) + 1)
		mix(uint64(s.Powerup.Remaining))
		mix(uint64(s.Powerup.Duration))
	} else {
		mix(0)
	}
	return h
}
