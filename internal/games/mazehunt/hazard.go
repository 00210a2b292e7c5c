package mazehunt

import (
	"github.com/mazehunt/mazehunt/internal/core"
)

// hazardMoveDelay is the default cadence between hazard steps, in ticks.
const hazardMoveDelay = 60

// Hazard is an obstacle that rolls in a straight line through the maze
// interior, reversing when it runs into a wall or the perimeter. Hazards are
// owned and stepped by the World and live until the level is replaced.
type Hazard struct {
	pos core.Point
	dir core.Point // axis unit vector

	moveDelay int
	moveTimer int
}

// newHazard creates a hazard at the given cell heading in dir.
func newHazard(pos, dir core.Point) *Hazard {
	return &Hazard{
		pos:       pos,
		dir:       dir,
		moveDelay: hazardMoveDelay,
	}
}

// Pos returns the hazard's current grid coordinate.
func (h *Hazard) Pos() core.Point {
	return h.pos
}

// Dir returns the hazard's current direction.
func (h *Hazard) Dir() core.Point {
	return h.dir
}

// step advances the hazard by one tick. On cadence it attempts one cell of
// movement: the destination must be strictly inside the non-perimeter
// interior and must not be a Wall cell. Hazards roll over obstacles, relics,
// the exit, and each other. A rejected step reverses the direction in the
// same tick; the reversed heading is tried on the next cadence tick.
func (h *Hazard) step(w *World) {
	h.moveTimer++
	if h.moveTimer < h.moveDelay {
		return
	}
	h.moveTimer = 0

	next := h.pos.Add(h.dir.X, h.dir.Y)

	interior := next.X > 0 && next.X < w.Width()-1 &&
		next.Y > 0 && next.Y < w.Height()-1
	if interior && w.CellAt(next.X, next.Y) != CellWall {
		h.pos = next
	} else {
		h.dir = core.P(-h.dir.X, -h.dir.Y)
	}
}
