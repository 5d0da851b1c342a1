package echo

import "github.com/vovakirdan/echo-arena/internal/core"

// Direction is the movement intent for one tick.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// DirectionFrom maps a movement action to a direction.
func DirectionFrom(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// Delta returns the unit displacement for d. Y grows downward.
func (d Direction) Delta() core.Vec {
	switch d {
	case DirUp:
		return core.V(0, -1)
	case DirDown:
		return core.V(0, 1)
	case DirLeft:
		return core.V(-1, 0)
	case DirRight:
		return core.V(1, 0)
	default:
		return core.Vec{}
	}
}

// Player is the user-controlled agent.
type Player struct {
	Pos        core.Vec
	Radius     float64 // current hitbox radius
	BaseRadius float64
	Powerup    *PowerupState
	Invincible bool
}

func newPlayer(t Tuning) Player {
	return Player{
		Pos:        core.V(t.ArenaW/2, t.ArenaH/2),
		Radius:     t.PlayerRadius,
		BaseRadius: t.PlayerRadius,
	}
}

// move steps the player, keeping the baseline hitbox inside the arena
// even while shrunk.
func (p *Player) move(d Direction, step, w, h float64) {
	if d == DirNone {
		return
	}
	next := p.Pos.Add(d.Delta().Scale(step))
	p.Pos = core.V(
		core.ClampF(next.X, p.BaseRadius, w-p.BaseRadius),
		core.ClampF(next.Y, p.BaseRadius, h-p.BaseRadius),
	)
}

// Has reports whether the given powerup is active.
func (p *Player) Has(k Kind) bool {
	return p.Powerup != nil && p.Powerup.Kind == k
}

func (p *Player) hitbox() core.Circle {
	return core.Circle{Center: p.Pos, Radius: p.Radius}
}
