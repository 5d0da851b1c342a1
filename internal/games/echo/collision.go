package echo

import "github.com/vovakirdan/echo-arena/internal/core"

// CauseCaught is the game-over cause when an echo reaches the player.
const CauseCaught = "caught by echo"

// resolveCollisions runs the player-vs-echo, player-vs-item and
// player-vs-pickup passes in that order. A fatal echo hit ends the run
// and skips the remaining passes.
func (r *Run) resolveCollisions() {
	if r.collideEchoes() {
		return
	}
	r.collectItems()
	r.collectPickups()
}

// collideEchoes returns true when the run ended.
func (r *Run) collideEchoes() bool {
	hit := r.player.hitbox()
	eaten := false

	for _, e := range r.echoes {
		if e.Destroyed() || !hit.Intersects(e.hitbox(r.tuning.EchoRadius)) {
			continue
		}
		switch {
		case r.player.Has(KindGhostEater):
			e.destroy()
			eaten = true
			r.score += r.tuning.KillBonus
			r.kills++
			r.emit("echo eaten", "echo", e.ID, "bonus", r.tuning.KillBonus)
		case r.player.Invincible || e.Playback() < r.tuning.EchoGrace:
			// Grace overrides the normal hit: the start-of-run window and an
			// echo's first echoes.grace seconds of playback. Both are 0 for
			// strict contact.
		default:
			r.end(CauseCaught, "echo", e.ID)
			return true
		}
	}

	if eaten {
		live := r.echoes[:0]
		for _, e := range r.echoes {
			if !e.Destroyed() {
				live = append(live, e)
			}
		}
		clear(r.echoes[len(live):])
		r.echoes = live
	}
	return false
}

func (r *Run) collectItems() {
	hit := r.player.hitbox()
	for i := 0; i < len(r.items); {
		it := r.items[i]
		if !hit.Intersects(core.Circle{Center: it.Pos, Radius: r.tuning.ItemRadius}) {
			i++
			continue
		}
		r.score += it.Value
		r.items = append(r.items[:i], r.items[i+1:]...)
		r.emit("item collected", "item", it.ID, "value", it.Value, "score", r.score)
	}
}

func (r *Run) collectPickups() {
	hit := r.player.hitbox()
	for i := 0; i < len(r.pickups); {
		p := r.pickups[i]
		if !hit.Intersects(core.Circle{Center: p.Pos, Radius: r.tuning.PickupRadius}) {
			i++
			continue
		}
		r.pickups = append(r.pickups[:i], r.pickups[i+1:]...)
		r.installPowerup(p.Kind)
	}
}
