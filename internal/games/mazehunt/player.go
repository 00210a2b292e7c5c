package mazehunt

import (
	"github.com/mazehunt/mazehunt/internal/core"
)

// Player is the player-controlled runner. It carries no timer: every move
// command is eligible immediately, the platform layer decides how often
// commands arrive.
type Player struct {
	pos core.Point
}

// NewPlayer creates a player at the given spawn cell.
func NewPlayer(spawn core.Point) *Player {
	return &Player{pos: spawn}
}

// Pos returns the player's current grid coordinate.
func (p *Player) Pos() core.Point {
	return p.pos
}

// AttemptMove tries to move the player by (dx, dy), each in {-1, 0, 1}.
// The move applies only if the destination is in bounds and not blocked;
// otherwise the position is unchanged and false is returned.
func (p *Player) AttemptMove(dx, dy int, w *World) bool {
	nx := p.pos.X + dx
	ny := p.pos.Y + dy

	if !w.InBounds(nx, ny) || w.IsBlocked(nx, ny) {
		return false
	}

	p.pos = core.P(nx, ny)
	return true
}
