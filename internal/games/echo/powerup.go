package echo

import "math/rand"

// Kind identifies a powerup.
type Kind int

const (
	KindGhostEater Kind = iota // Touching echoes destroys them
	KindTimeFreeze             // Echoes stop replaying
	KindShrink                 // Player hitbox shrinks
	kindCount                  // Sentinel for counting kinds
)

// String returns the name of the powerup kind.
func (k Kind) String() string {
	switch k {
	case KindGhostEater:
		return "Ghost Eater"
	case KindTimeFreeze:
		return "Time Freeze"
	case KindShrink:
		return "Shrink"
	default:
		return "?"
	}
}

// Glyph returns the display character for a pickup of this kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindGhostEater:
		return 'G'
	case KindTimeFreeze:
		return 'F'
	case KindShrink:
		return 'S'
	default:
		return '?'
	}
}

// PowerupState is the active timed effect on the player.
type PowerupState struct {
	Kind      Kind
	Remaining int // ticks left
	Duration  int // ticks at pickup
}

// Progress returns the remaining fraction of the effect in [0, 1].
func (s PowerupState) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Remaining) / float64(s.Duration)
}

// effect is the kind-specific behavior of a powerup.
type effect struct {
	apply  func(r *Run)
	expire func(r *Run)
}

// Ghost Eater changes no state; the collision pass checks the active kind.
var effects = [kindCount]effect{
	KindGhostEater: {
		apply:  func(*Run) {},
		expire: func(*Run) {},
	},
	KindTimeFreeze: {
		apply:  func(r *Run) { r.setFrozen(true) },
		expire: func(r *Run) { r.setFrozen(false) },
	},
	KindShrink: {
		apply:  func(r *Run) { r.player.Radius = r.tuning.ShrinkRadius },
		expire: func(r *Run) { r.player.Radius = r.player.BaseRadius },
	},
}

// installPowerup starts k with full duration. An active effect is
// expired first, so effects never stack.
func (r *Run) installPowerup(k Kind) {
	if r.player.Powerup != nil {
		r.expirePowerup()
	}
	r.player.Powerup = &PowerupState{
		Kind:      k,
		Remaining: r.tuning.PowerupDuration,
		Duration:  r.tuning.PowerupDuration,
	}
	effects[k].apply(r)
	r.emit("powerup started", "kind", k.String(), "ticks", r.tuning.PowerupDuration)
}

func (r *Run) expirePowerup() {
	p := r.player.Powerup
	if p == nil {
		return
	}
	effects[p.Kind].expire(r)
	r.player.Powerup = nil
	r.emit("powerup expired", "kind", p.Kind.String())
}

// tickPowerup counts the active effect down. An effect installed at tick P
// reaches zero on tick P+D and still applies to that tick's collisions.
func (r *Run) tickPowerup() {
	if p := r.player.Powerup; p != nil {
		p.Remaining--
	}
}

// expireSpentPowerup reverts an effect whose countdown reached zero. It runs
// at the end of the tick, before the next tick advances echoes.
func (r *Run) expireSpentPowerup() {
	if p := r.player.Powerup; p != nil && p.Remaining <= 0 {
		r.expirePowerup()
	}
}

func (r *Run) freezeActive() bool {
	return r.player.Has(KindTimeFreeze)
}

func (r *Run) setFrozen(f bool) {
	for _, e := range r.echoes {
		e.setFrozen(f)
	}
}

// rollKind selects a kind by relative weight.
func rollKind(rng *rand.Rand, weights [kindCount]int) Kind {
	total := 0
	for _, w := range weights {
		total += max(w, 0)
	}
	if total <= 0 {
		return KindTimeFreeze
	}

	roll := rng.Intn(total)
	cumulative := 0
	for k, w := range weights {
		cumulative += max(w, 0)
		if roll < cumulative {
			return Kind(k)
		}
	}
	return KindTimeFreeze
}
