package echo

import (
	"math/rand"

	"github.com/vovakirdan/echo-arena/internal/core"
)

// Item is a collectible worth points.
type Item struct {
	ID    int
	Pos   core.Vec
	Value int
}

// Pickup is a collectible that starts a powerup.
type Pickup struct {
	ID   int
	Pos  core.Vec
	Kind Kind
}

// tickSpawners counts down the item and pickup timers and spawns when they fire.
func (r *Run) tickSpawners() {
	r.itemTimer--
	if r.itemTimer <= 0 {
		r.spawnItem()
		r.itemTimer = r.nextItemDelay()
	}

	r.pickupTimer--
	if r.pickupTimer <= 0 {
		r.spawnPickup()
		r.pickupTimer = r.nextPickupDelay()
	}
}

func (r *Run) nextItemDelay() int {
	base := randBetween(r.rng, r.tuning.ItemMin, r.tuning.ItemMax)
	return r.difficulty.ItemInterval(base, r.score, r.tuning.Seconds(r.tick))
}

func (r *Run) nextPickupDelay() int {
	base := randBetween(r.rng, r.tuning.PickupMin, r.tuning.PickupMax)
	return r.difficulty.PowerupInterval(base, r.score, r.tuning.Seconds(r.tick))
}

func (r *Run) spawnItem() {
	if len(r.items) >= r.tuning.ItemMaxLive {
		return
	}
	pos, ok := r.findSpot(r.tuning.ItemRadius, r.tuning.ItemMargin)
	if !ok {
		r.emit("spawn skipped", "entity", "item")
		return
	}
	r.nextID++
	r.items = append(r.items, Item{ID: r.nextID, Pos: pos, Value: r.tuning.ItemPoints})
}

func (r *Run) spawnPickup() {
	if len(r.pickups) >= r.tuning.PickupMaxLive {
		return
	}
	pos, ok := r.findSpot(r.tuning.PickupRadius, r.tuning.PickupMargin)
	if !ok {
		r.emit("spawn skipped", "entity", "pickup")
		return
	}
	kind := rollKind(r.rng, r.tuning.Weights)
	r.nextID++
	r.pickups = append(r.pickups, Pickup{ID: r.nextID, Pos: pos, Kind: kind})
	r.emit("pickup spawned", "kind", kind.String())
}

// findSpot draws up to MaxAttempts uniform positions inside the margins and
// returns the first that overlaps no live entity.
func (r *Run) findSpot(radius, margin float64) (core.Vec, bool) {
	w := r.tuning.ArenaW - 2*margin
	h := r.tuning.ArenaH - 2*margin
	for i := 0; i < r.tuning.MaxAttempts; i++ {
		pos := core.V(margin+r.rng.Float64()*w, margin+r.rng.Float64()*h)
		if r.isClear(core.Circle{Center: pos, Radius: radius + r.tuning.Clearance}) {
			return pos, true
		}
	}
	return core.Vec{}, false
}

func (r *Run) isClear(c core.Circle) bool {
	if c.Intersects(r.player.hitbox()) {
		return false
	}
	for _, e := range r.echoes {
		if c.Intersects(e.hitbox(r.tuning.EchoRadius)) {
			return false
		}
	}
	for _, it := range r.items {
		if c.Intersects(core.Circle{Center: it.Pos, Radius: r.tuning.ItemRadius}) {
			return false
		}
	}
	for _, p := range r.pickups {
		if c.Intersects(core.Circle{Center: p.Pos, Radius: r.tuning.PickupRadius}) {
			return false
		}
	}
	return true
}

// randBetween returns a uniform integer in [lo, hi].
func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
