package mazehunt

import "github.com/mazehunt/mazehunt/internal/core"

// Snapshot is a read-only capture of one tick's state. It contains
// everything a caller needs to compare two runs or drive a display
// without reaching into the game's internals.
type Snapshot struct {
	Tick         uint64
	Score        int
	Level        int
	Runner       core.Point
	Hunter       core.Point
	HunterState  HunterState
	HunterDelay  int
	HunterRange  float64
	Hazards      []core.Point
	RelicsLeft   int
	GameOver     bool
	LevelCleared bool
}

// Snapshot captures the current state of the game.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         g.tick,
		Score:        g.score,
		Level:        g.level,
		GameOver:     g.gameOver,
		LevelCleared: g.levelCleared,
	}
	if g.world == nil {
		return s
	}
	s.Runner = g.player.Pos()
	s.Hunter = g.hunter.Pos()
	s.HunterState = g.hunter.State()
	s.HunterDelay = g.hunter.MoveDelay()
	s.HunterRange = g.hunter.ChaseRange()
	s.Hazards = g.world.HazardPositions()
	s.RelicsLeft = g.world.RelicsLeft()
	return s
}

// World returns the current maze, or nil before the first Reset.
func (g *Game) World() *World {
	return g.world
}
