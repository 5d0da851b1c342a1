package echo

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/echo-arena/internal/config"
	"github.com/vovakirdan/echo-arena/internal/core"
)

// Run is the state of one continuous play from start to game over.
// Every field belongs to the run; a restart builds a new Run.
type Run struct {
	tuning     Tuning
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	tick  uint64 // ticks processed so far
	score int
	kills int

	history *History
	player  Player
	echoes  []*Echo
	items   []Item
	pickups []Pickup

	nextEchoTick uint64
	echoCount    int
	itemTimer    int
	pickupTimer  int
	nextID       int

	over  bool
	cause string

	events []core.Event
}

// NewRun starts a run with the player at the arena center. The first item
// appears on the first tick.
func NewRun(t Tuning, seed int64) *Run {
	r := &Run{
		tuning:       t,
		rng:          rand.New(rand.NewSource(seed)),
		difficulty:   config.NewDifficultyManager(t.Difficulty),
		history:      NewHistory(t.EchoInterval * 4),
		player:       newPlayer(t),
		nextEchoTick: uint64(t.EchoInterval),
		itemTimer:    1,
	}
	r.pickupTimer = r.nextPickupDelay()
	return r
}

// Step advances the run by one tick. It does nothing once the run is over.
// An error means the history bookkeeping broke and the run cannot continue.
func (r *Run) Step(move Direction) error {
	r.events = r.events[:0]
	if r.over {
		return nil
	}

	r.player.Invincible = r.tick < uint64(r.tuning.StartGrace)
	r.player.move(move, r.tuning.PlayerStep, r.tuning.ArenaW, r.tuning.ArenaH)
	r.history.Append(r.player.Pos)

	for _, e := range r.echoes {
		if err := e.Advance(); err != nil {
			return fmt.Errorf("tick %d: %w", r.tick, err)
		}
	}
	if r.tick == r.nextEchoTick {
		if err := r.spawnEcho(); err != nil {
			return fmt.Errorf("tick %d: %w", r.tick, err)
		}
		r.nextEchoTick += uint64(r.tuning.EchoInterval)
	}

	r.tickSpawners()
	r.tickPowerup()
	r.resolveCollisions()
	r.expireSpentPowerup()

	r.tick++
	return nil
}

func (r *Run) spawnEcho() error {
	r.nextID++
	e, err := newEcho(r.nextID, r.tick, r.echoCount, r.history, r.freezeActive())
	if err != nil {
		return err
	}
	r.echoCount++
	r.echoes = append(r.echoes, e)
	r.emit("echo spawned", "echo", e.ID, "live", len(r.echoes))
	return nil
}

func (r *Run) end(cause string, attrs ...any) {
	r.over = true
	r.cause = cause
	r.emit("game over", append([]any{"cause", cause, "score", r.score}, attrs...)...)
}

func (r *Run) emit(name string, attrs ...any) {
	r.events = append(r.events, core.Event{Name: name, Tick: r.tick, Attrs: attrs})
}

// Tick returns the number of processed ticks.
func (r *Run) Tick() uint64 { return r.tick }

// Score returns the run score.
func (r *Run) Score() int { return r.score }

// Kills returns the number of echoes eaten.
func (r *Run) Kills() int { return r.kills }

// Over reports whether the run has ended, and why.
func (r *Run) Over() (bool, string) { return r.over, r.cause }

// History returns the read-only movement log.
func (r *Run) History() Tape { return r.history }

// Player returns a copy of the player state.
func (r *Run) Player() Player {
	p := r.player
	if p.Powerup != nil {
		pu := *p.Powerup
		p.Powerup = &pu
	}
	return p
}

// Echoes returns the live echoes. Callers must not modify them.
func (r *Run) Echoes() []*Echo { return r.echoes }

// Items returns the live items.
func (r *Run) Items() []Item { return r.items }

// Pickups returns the live pickups.
func (r *Run) Pickups() []Pickup { return r.pickups }

// NextEchoIn returns the ticks left until the next echo spawns.
func (r *Run) NextEchoIn() int {
	return int(r.nextEchoTick - r.tick)
}

// Events returns what happened during the last Step.
func (r *Run) Events() []core.Event { return r.events }
