package echo

import (
	"fmt"

	"github.com/vovakirdan/echo-arena/internal/core"
)

// Echo replays the player's history from the start, lagging by its own age.
// It keeps its own playback counter so time spent frozen is not skipped.
type Echo struct {
	ID        int
	SpawnTick uint64
	Palette   int // spawn order, used by renderers to pick a color

	tape      Tape
	playback  int
	frozen    bool
	destroyed bool
	pos       core.Vec
}

func newEcho(id int, spawnTick uint64, palette int, tape Tape, frozen bool) (*Echo, error) {
	e := &Echo{
		ID:        id,
		SpawnTick: spawnTick,
		Palette:   palette,
		tape:      tape,
		frozen:    frozen,
	}
	if err := e.resolve(); err != nil {
		return nil, err
	}
	return e, nil
}

// Advance moves the playback cursor one tick forward unless the echo is
// frozen or destroyed.
func (e *Echo) Advance() error {
	if e.frozen || e.destroyed {
		return nil
	}
	e.playback++
	return e.resolve()
}

// resolve reads the position for the current playback index. The index is
// clamped to the last recorded entry; an empty tape is an error.
func (e *Echo) resolve() error {
	idx := min(e.playback, e.tape.Len()-1)
	p, err := e.tape.At(idx)
	if err != nil {
		return fmt.Errorf("echo %d at playback %d: %w", e.ID, e.playback, err)
	}
	e.pos = p
	return nil
}

// Pos returns the echo's current position.
func (e *Echo) Pos() core.Vec { return e.pos }

// Playback returns the number of unfrozen ticks since spawn.
func (e *Echo) Playback() int { return e.playback }

// Frozen reports whether Time Freeze holds the echo in place.
func (e *Echo) Frozen() bool { return e.frozen }

// Destroyed reports whether the echo was eaten.
func (e *Echo) Destroyed() bool { return e.destroyed }

func (e *Echo) setFrozen(f bool) { e.frozen = f }

func (e *Echo) destroy() { e.destroyed = true }

func (e *Echo) hitbox(radius float64) core.Circle {
	return core.Circle{Center: e.pos, Radius: radius}
}
