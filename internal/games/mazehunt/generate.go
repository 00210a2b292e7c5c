package mazehunt

import (
	"fmt"
	"math/rand"

	"github.com/mazehunt/mazehunt/internal/core"
)

// Minimum playable grid: room for the perimeter, the exit corner, and a
// start corner separated from it. Smaller requests are a configuration
// error, the only fail-fast condition in the core.
const (
	minGridWidth  = 8
	minGridHeight = 8
)

// PlayerStart is the fixed spawn corner for the player.
var PlayerStart = core.P(1, 1)

// Placement retry budgets. Every placement step gives up silently when its
// budget runs out: a sparser level is preferred over a generation failure,
// so level generation can never block game start.
const (
	wallAttempts      = 50
	furnitureAttempts = 30
	relicAttempts     = 100
	hazardAttempts    = 50
	obstacleAttempts  = 50
)

var hazardDirections = []core.Point{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// Generate procedurally populates a new World for the given level number.
// All randomness flows through the injected rng, so a fixed seed yields an
// identical level.
//
// Placement runs in a strict order; later steps only consider cells that are
// still empty, so they never overwrite earlier placements:
// perimeter, scattered walls, furniture blocks, relics, exit, hazards, and
// (above level 2) static obstacles.
func Generate(width, height, level int, rng *rand.Rand) (*World, error) {
	if width < minGridWidth || height < minGridHeight {
		return nil, fmt.Errorf("mazehunt: grid %dx%d too small, need at least %dx%d",
			width, height, minGridWidth, minGridHeight)
	}
	if level < 1 {
		return nil, fmt.Errorf("mazehunt: level number %d must be >= 1", level)
	}

	w := newWorld(width, height)

	stampPerimeter(w)
	addScatteredWalls(w, level, rng)
	addFurniture(w, level, rng)
	addRelics(w, level, rng)
	addExit(w)
	addHazards(w, level, rng)
	addObstacles(w, level, rng)

	return w, nil
}

// stampPerimeter walls off the outer ring of the grid.
func stampPerimeter(w *World) {
	for x := 0; x < w.width; x++ {
		w.setCell(x, 0, CellWall)
		w.setCell(x, w.height-1, CellWall)
	}
	for y := 0; y < w.height; y++ {
		w.setCell(0, y, CellWall)
		w.setCell(w.width-1, y, CellWall)
	}
}

// startExclusion is the no-placement box around the player's start corner.
func startExclusion() core.Rect {
	return core.NewRect(0, 0, 4, 4)
}

// exitExclusion is the no-placement box around the exit corner.
func exitExclusion(w *World) core.Rect {
	return core.NewRect(w.width-4, w.height-4, 4, 4)
}

// addScatteredWalls places min(8+level, 20) single-cell walls at random
// interior coordinates, skipping the start and exit exclusion boxes.
func addScatteredWalls(w *World, level int, rng *rand.Rand) {
	count := core.Min(8+level, 20)
	placeScattered(w, level, rng, count, wallAttempts, CellWall)
}

// addObstacles places static obstacles once the level number passes 2,
// with the same exclusion and retry policy as scattered walls.
func addObstacles(w *World, level int, rng *rand.Rand) {
	if level <= 2 {
		return
	}
	count := core.Min((level-2)*2, 8)
	placeScattered(w, level, rng, count, obstacleAttempts, CellObstacle)
}

func placeScattered(w *World, level int, rng *rand.Rand, count, attempts int, cell Cell) {
	spanX := w.width - 4
	spanY := w.height - 4
	if spanX <= 0 || spanY <= 0 {
		return
	}

	startBox := startExclusion()
	exitBox := exitExclusion(w)

	for i := 0; i < count; i++ {
		for try := 0; try < attempts; try++ {
			x := 2 + rng.Intn(spanX)
			y := 2 + rng.Intn(spanY)

			if startBox.Contains(x, y) || exitBox.Contains(x, y) {
				continue
			}
			if w.CellAt(x, y) == CellEmpty {
				w.setCell(x, y, cell)
				break
			}
		}
	}
}

// addFurniture places min(2+level/2, 4) rectangular wall blocks. A block
// lands only if its entire footprint is still empty.
func addFurniture(w *World, level int, rng *rand.Rand) {
	count := core.Min(2+level/2, 4)

	for i := 0; i < count; i++ {
		for try := 0; try < furnitureAttempts; try++ {
			fw := 2 + rng.Intn(3) // width in [2,4]
			fh := 2 + rng.Intn(2) // height in [2,3]

			spanX := w.width - fw - 5
			spanY := w.height - fh - 5
			if spanX <= 0 || spanY <= 0 {
				continue
			}
			x := 3 + rng.Intn(spanX)
			y := 3 + rng.Intn(spanY)

			if !footprintEmpty(w, x, y, fw, fh) {
				continue
			}
			for fy := 0; fy < fh; fy++ {
				for fx := 0; fx < fw; fx++ {
					w.setCell(x+fx, y+fy, CellWall)
				}
			}
			break
		}
	}
}

func footprintEmpty(w *World, x, y, fw, fh int) bool {
	for fy := 0; fy < fh; fy++ {
		for fx := 0; fx < fw; fx++ {
			if w.CellAt(x+fx, y+fy) != CellEmpty {
				return false
			}
		}
	}
	return true
}

// addRelics scatters 3+level relics on empty interior cells outside the
// small start exclusion box. The exit corner is skipped so the later exit
// placement never has to displace a relic.
func addRelics(w *World, level int, rng *rand.Rand) {
	count := 3 + level
	startBox := core.NewRect(0, 0, 3, 3)
	exitCorner := core.P(w.width-2, w.height-2)

	for i := 0; i < count; i++ {
		for try := 0; try < relicAttempts; try++ {
			x := 1 + rng.Intn(w.width-2)
			y := 1 + rng.Intn(w.height-2)
			p := core.P(x, y)

			if w.CellAt(x, y) != CellEmpty {
				continue
			}
			if _, taken := w.relics[p]; taken {
				continue
			}
			if startBox.Contains(x, y) || p == exitCorner {
				continue
			}

			w.relics[p] = struct{}{}
			w.setCell(x, y, CellRelic)
			break
		}
	}
}

// addExit marks exactly one exit at the corner opposite the player start.
// Exit placement is never probabilistic and never fails: a wall at the exit
// cell is forced empty first.
func addExit(w *World) {
	x := w.width - 2
	y := w.height - 2

	if w.CellAt(x, y) == CellWall {
		w.setCell(x, y, CellEmpty)
	}
	w.exit = core.P(x, y)
	w.setCell(x, y, CellExit)
}

// addHazards spawns min(level/2, 3) rolling hazards on empty cells that are
// neither relics nor the exit, each heading in a uniformly random axis
// direction.
func addHazards(w *World, level int, rng *rand.Rand) {
	count := core.Min(level/2, 3)

	spanX := w.width - 6
	spanY := w.height - 6
	if spanX <= 0 || spanY <= 0 {
		return
	}

	for i := 0; i < count; i++ {
		for try := 0; try < hazardAttempts; try++ {
			x := 3 + rng.Intn(spanX)
			y := 3 + rng.Intn(spanY)
			p := core.P(x, y)

			if w.CellAt(x, y) != CellEmpty {
				continue
			}
			if _, taken := w.relics[p]; taken {
				continue
			}
			if p == w.exit {
				continue
			}

			dir := hazardDirections[rng.Intn(len(hazardDirections))]
			w.hazards = append(w.hazards, newHazard(p, dir))
			break
		}
	}
}
