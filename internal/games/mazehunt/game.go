// Package mazehunt implements a grid-based pursuit game. The runner
// navigates a generated maze, collecting relics and reaching the exit
// while a hunter gives chase and hazards roll across the floor.
//
// Two variants are registered: "mazehunt" pits the runner against a
// stalker hunter that waits for the first move, "mazehunt_patrol" against
// a patroller that walks a fixed route until the runner comes close.
package mazehunt

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/mazehunt/mazehunt/internal/config"
	"github.com/mazehunt/mazehunt/internal/core"
	"github.com/mazehunt/mazehunt/internal/registry"
)

// Game implements the mazehunt game.
type Game struct {
	behavior Behavior
	cfg      config.MazehuntConfig
	rng      *rand.Rand
	tick     uint64
	score    int
	level    int

	world  *World
	player *Player
	hunter *Hunter

	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver     bool
	paused       bool
	tooSmall     bool
	levelCleared bool
	genFailed    bool

	// Level clear animation
	levelClearTicks int
}

// Package-level variables for config/difficulty (like breakout pattern)
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level. 0 means use the configured default.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a new mazehunt game with the stalker hunter.
func New() *Game {
	return &Game{
		behavior: BehaviorStalker,
	}
}

// NewPatrol creates a new mazehunt game with the patroller hunter.
func NewPatrol() *Game {
	return &Game{
		behavior: BehaviorPatrol,
	}
}

func init() {
	registry.Register("mazehunt", func() registry.Game {
		return New()
	})
	registry.Register("mazehunt_patrol", func() registry.Game {
		return NewPatrol()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.behavior == BehaviorPatrol {
		return "mazehunt_patrol"
	}
	return "mazehunt"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.behavior == BehaviorPatrol {
		return "Mazehunt (Patrol)"
	}
	return "Mazehunt"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadMazehunt(configPath)
	if err != nil {
		loaded = config.DefaultMazehuntConfig()
	}
	config.ApplyMazehuntPreset(&loaded, config.DifficultyPreset(difficultyPreset))
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tooSmall = false
	g.levelCleared = false
	g.genFailed = false
	g.levelClearTicks = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	g.level = g.cfg.Gameplay.StartLevel
	if selectedStartLevel > 0 {
		g.level = selectedStartLevel
		selectedStartLevel = 0 // Reset after use
	}

	g.loadLevel()
}

// loadLevel generates the maze for the current level and places the actors.
func (g *Game) loadLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	world, err := Generate(g.cfg.Grid.Width, g.cfg.Grid.Height, g.level, g.rng)
	if err != nil {
		g.genFailed = true
		g.gameOver = true
		return
	}
	g.world = world
	g.player = NewPlayer(PlayerStart)

	spawn := g.hunterSpawn()
	if g.behavior == BehaviorPatrol {
		g.hunter = NewPatroller(spawn, g.world)
	} else {
		g.hunter = NewStalker(spawn, g.player.Pos(), g.level)
	}

	// Check if screen is too small
	requiredW := g.world.Width() + 2
	requiredH := g.world.Height() + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// Center the map
	g.mapOffsetX = (g.screenW - g.world.Width()) / 2
	g.mapOffsetY = g.hudHeight
}

// hunterSpawn picks the unblocked interior cell closest to the grid
// center, scanning in reading order so the choice is deterministic.
// The runner's start corner is excluded.
func (g *Game) hunterSpawn() core.Point {
	center := core.P(g.world.Width()/2, g.world.Height()/2)
	best := center
	bestDist := math.MaxFloat64
	for y := 1; y < g.world.Height()-1; y++ {
		for x := 1; x < g.world.Width()-1; x++ {
			p := core.P(x, y)
			if p == PlayerStart || g.world.IsBlocked(x, y) {
				continue
			}
			if d := p.Dist(center); d < bestDist {
				best = p
				bestDist = d
			}
		}
	}
	return best
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle level cleared animation
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= g.cfg.Gameplay.LevelClearTicks {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Runner moves first
	if dx, dy := input.LastMove.Move(); dx != 0 || dy != 0 {
		g.player.AttemptMove(dx, dy, g.world)
	}

	// Hazards roll, then the hunter reacts to the runner's new position
	g.world.StepHazards()
	g.hunter.Update(g.world, g.player.Pos())

	// Capture ends the tick immediately, even on the exit cell
	if g.caught() {
		g.gameOver = true
		return core.StepResult{
			State:   g.State(),
			Outcome: core.OutcomeCaught,
		}
	}

	result := core.StepResult{Outcome: core.OutcomeNone}
	pos := g.player.Pos()
	if g.world.TryCollect(pos.X, pos.Y) {
		g.score += g.cfg.Gameplay.RelicAward
		result.Outcome = core.OutcomeCollected
		result.ScoreDelta = g.cfg.Gameplay.RelicAward
	}

	if g.world.IsVictory(pos.X, pos.Y) {
		g.levelCleared = true
		g.levelClearTicks = 0
		result.Outcome = core.OutcomeVictory
	}

	result.State = g.State()
	return result
}

// caught reports whether the hunter or a hazard occupies the runner's cell.
func (g *Game) caught() bool {
	pos := g.player.Pos()
	if g.hunter.Pos() == pos {
		return true
	}
	return g.world.HazardAt(pos.X, pos.Y)
}

// advanceLevel regenerates the maze, keeping the score.
func (g *Game) advanceLevel() {
	if g.cfg.Difficulty.Progression {
		g.level++
	}
	g.loadLevel()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.genFailed {
		g.renderOverlay(dst, "Level generation failed", "Press R to retry")
		return
	}

	g.renderWorld(dst)
	g.renderActors(dst)

	switch {
	case g.levelCleared:
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.level), fmt.Sprintf("Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Caught!", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	relics := 0
	if g.world != nil {
		relics = g.world.RelicsLeft()
	}
	hud := fmt.Sprintf(" %s | Score: %d  Level: %d  Relics left: %d", g.Title(), g.score, g.level, relics)

	for x := 0; x < dst.Width() && x < len(hud); x++ {
		dst.Set(x, 0, rune(hud[x]))
	}
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderWorld draws the maze cells.
func (g *Game) renderWorld(dst *core.Screen) {
	if g.world == nil {
		return
	}
	for y := 0; y < g.world.Height(); y++ {
		for x := 0; x < g.world.Width(); x++ {
			sx := g.mapOffsetX + x
			sy := g.mapOffsetY + y
			if sx < 0 || sx >= dst.Width() || sy < 0 || sy >= dst.Height() {
				continue
			}
			switch g.world.CellAt(x, y) {
			case CellWall:
				dst.SetCell(sx, sy, '#', core.ColorGray)
			case CellObstacle:
				dst.SetCell(sx, sy, '%', core.ColorWhite)
			case CellRelic:
				dst.SetCell(sx, sy, '*', core.ColorYellow)
			case CellExit:
				dst.SetCell(sx, sy, 'O', core.ColorGreen)
			}
		}
	}
}

// renderActors draws hazards, the hunter, and the runner on top of the maze.
func (g *Game) renderActors(dst *core.Screen) {
	for _, p := range g.world.HazardPositions() {
		g.setCell(dst, p, 'o', core.ColorCyan)
	}

	hunterColor := core.ColorRed
	if g.hunter.State() == StateChase {
		hunterColor = core.ColorBrightRed
	}
	g.setCell(dst, g.hunter.Pos(), '&', hunterColor)

	g.setCell(dst, g.player.Pos(), '@', core.ColorBrightGreen)
}

func (g *Game) setCell(dst *core.Screen, p core.Point, r rune, c core.Color) {
	sx := g.mapOffsetX + p.X
	sy := g.mapOffsetY + p.Y
	if sx >= 0 && sx < dst.Width() && sy >= 0 && sy < dst.Height() {
		dst.SetCell(sx, sy, r, c)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Level returns the current level number.
func (g *Game) Level() int {
	return g.level
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Level: %d\n", g.tick, g.score, g.level))
	if g.world != nil {
		p := g.player.Pos()
		h := g.hunter.Pos()
		b.WriteString(fmt.Sprintf("Runner: (%d, %d), Hunter: (%d, %d) %s\n", p.X, p.Y, h.X, h.Y, g.hunter.State()))
		b.WriteString(fmt.Sprintf("Relics left: %d, Hazards: %d\n", g.world.RelicsLeft(), len(g.world.HazardPositions())))
	}
	b.WriteString(fmt.Sprintf("GameOver: %v, Paused: %v\n", g.gameOver, g.paused))
	return b.String()
}
