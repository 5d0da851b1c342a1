// Package echo implements the Echo arena: the player's path is recorded
// tick by tick and replayed by echoes that hunt the player.
package echo

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/echo-arena/internal/core"
)

// ErrOutOfRange is returned when a history index is negative or not yet recorded.
var ErrOutOfRange = errors.New("history index out of range")

// Tape is the read-only view of a History that echoes replay from.
type Tape interface {
	At(i int) (core.Vec, error)
	Len() int
}

// History is the append-only log of player positions, one entry per tick
// of the current run. Index i holds the position after tick i.
type History struct {
	points []core.Vec
}

// NewHistory creates an empty log with room for sizeHint entries.
func NewHistory(sizeHint int) *History {
	return &History{points: make([]core.Vec, 0, max(sizeHint, 0))}
}

// Append records the position for the next tick.
func (h *History) Append(p core.Vec) {
	h.points = append(h.points, p)
}

// At returns the position recorded at tick i.
func (h *History) At(i int) (core.Vec, error) {
	if i < 0 || i >= len(h.points) {
		return core.Vec{}, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, len(h.points))
	}
	return h.points[i], nil
}

// Len returns the number of recorded ticks.
func (h *History) Len() int {
	return len(h.points)
}
