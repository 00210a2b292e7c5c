package mazehunt

import (
	"github.com/mazehunt/mazehunt/internal/core"
)

// World owns the cell grid, the relic and exit bookkeeping, and the moving
// hazards. It is the single mutable game surface: the player and the hunter
// only consume its read-only queries, while mutation happens through the
// generator, TryCollect, and StepHazards.
//
// Cells are stored in row-major order: index = y*width + x.
type World struct {
	width  int
	height int
	cells  []Cell

	relics  map[core.Point]struct{}
	exit    core.Point
	hazards []*Hazard // stepped in insertion order
}

// newWorld creates an all-empty world. The generator populates it.
func newWorld(width, height int) *World {
	return &World{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		relics: make(map[core.Point]struct{}),
	}
}

// Width returns the grid width in cells.
func (w *World) Width() int {
	return w.width
}

// Height returns the grid height in cells.
func (w *World) Height() int {
	return w.height
}

// InBounds returns true if (x, y) is a valid grid coordinate.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

// CellAt returns the cell type at (x, y).
// Out-of-bounds coordinates read as Wall, matching the blocked-query policy.
func (w *World) CellAt(x, y int) Cell {
	if !w.InBounds(x, y) {
		return CellWall
	}
	return w.cells[y*w.width+x]
}

func (w *World) setCell(x, y int, c Cell) {
	if w.InBounds(x, y) {
		w.cells[y*w.width+x] = c
	}
}

// IsBlocked reports whether (x, y) cannot be entered. It fails closed: any
// out-of-bounds coordinate is blocked. Otherwise a coordinate is blocked iff
// its cell is Wall or Obstacle, or a hazard currently occupies it.
// Blocked-ness is derived on every call, never stored.
func (w *World) IsBlocked(x, y int) bool {
	if !w.InBounds(x, y) {
		return true
	}

	switch w.CellAt(x, y) {
	case CellWall, CellObstacle:
		return true
	}

	for _, h := range w.hazards {
		if h.pos.X == x && h.pos.Y == y {
			return true
		}
	}
	return false
}

// TryCollect removes the relic at (x, y) if one is there, clearing the cell,
// and returns true. Repeated calls at an already-collected coordinate return
// false and have no effect.
func (w *World) TryCollect(x, y int) bool {
	p := core.P(x, y)
	if _, ok := w.relics[p]; !ok {
		return false
	}
	delete(w.relics, p)
	w.setCell(x, y, CellEmpty)
	return true
}

// IsVictory reports whether standing at (x, y) wins the level: the
// coordinate must be the exit AND every relic must already be collected.
func (w *World) IsVictory(x, y int) bool {
	return w.exit.X == x && w.exit.Y == y && len(w.relics) == 0
}

// RelicsLeft returns the number of uncollected relics.
func (w *World) RelicsLeft() int {
	return len(w.relics)
}

// Exit returns the exit coordinate.
func (w *World) Exit() core.Point {
	return w.exit
}

// StepHazards advances every owned hazard by one tick, in insertion order.
// Hazards never block each other, but the fixed ordering keeps the
// simulation reproducible.
func (w *World) StepHazards() {
	for _, h := range w.hazards {
		h.step(w)
	}
}

// HazardPositions returns the current coordinates of all hazards.
func (w *World) HazardPositions() []core.Point {
	positions := make([]core.Point, len(w.hazards))
	for i, h := range w.hazards {
		positions[i] = h.pos
	}
	return positions
}

// HazardAt reports whether any hazard currently occupies (x, y).
func (w *World) HazardAt(x, y int) bool {
	for _, h := range w.hazards {
		if h.pos.X == x && h.pos.Y == y {
			return true
		}
	}
	return false
}
