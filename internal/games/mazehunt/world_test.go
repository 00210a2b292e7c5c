package mazehunt

import (
	"testing"

	"github.com/mazehunt/mazehunt/internal/core"
)

// openWorld builds a walled-perimeter world with an empty interior.
func openWorld(width, height int) *World {
	w := newWorld(width, height)
	stampPerimeter(w)
	return w
}

// placeRelic drops a relic directly, keeping the set and the grid in sync.
func placeRelic(w *World, x, y int) {
	w.relics[core.P(x, y)] = struct{}{}
	w.setCell(x, y, CellRelic)
}

// placeExit marks the exit directly.
func placeExit(w *World, x, y int) {
	w.exit = core.P(x, y)
	w.setCell(x, y, CellExit)
}

func TestIsBlockedFailsClosed(t *testing.T) {
	w := openWorld(10, 10)

	outside := []core.Point{
		{X: -1, Y: 5},
		{X: 10, Y: 5},
		{X: 5, Y: -1},
		{X: 5, Y: 10},
		{X: -3, Y: -3},
	}
	for _, p := range outside {
		if !w.IsBlocked(p.X, p.Y) {
			t.Errorf("expected out-of-bounds (%d,%d) to be blocked", p.X, p.Y)
		}
	}
}

func TestIsBlockedByCellType(t *testing.T) {
	w := openWorld(10, 10)
	w.setCell(3, 3, CellWall)
	w.setCell(4, 4, CellObstacle)
	placeRelic(w, 5, 5)
	placeExit(w, 6, 6)

	tests := []struct {
		name    string
		x, y    int
		blocked bool
	}{
		{"wall", 3, 3, true},
		{"obstacle", 4, 4, true},
		{"empty", 2, 2, false},
		{"relic", 5, 5, false},
		{"exit", 6, 6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.IsBlocked(tt.x, tt.y); got != tt.blocked {
				t.Errorf("IsBlocked(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.blocked)
			}
		})
	}
}

func TestIsBlockedByHazard(t *testing.T) {
	w := openWorld(10, 10)
	w.hazards = append(w.hazards, newHazard(core.P(4, 4), core.P(1, 0)))

	if !w.IsBlocked(4, 4) {
		t.Error("expected hazard-occupied cell to be blocked")
	}

	// Move the hazard and the old cell opens up again
	w.hazards[0].pos = core.P(5, 4)
	if w.IsBlocked(4, 4) {
		t.Error("expected vacated cell to be unblocked")
	}
	if !w.IsBlocked(5, 4) {
		t.Error("expected new hazard cell to be blocked")
	}
}

func TestTryCollectIdempotent(t *testing.T) {
	w := openWorld(10, 10)
	placeRelic(w, 3, 3)

	if w.RelicsLeft() != 1 {
		t.Fatalf("expected 1 relic, got %d", w.RelicsLeft())
	}
	if !w.TryCollect(3, 3) {
		t.Fatal("expected first collect to succeed")
	}
	if w.CellAt(3, 3) != CellEmpty {
		t.Error("expected collected cell to be empty")
	}
	if w.RelicsLeft() != 0 {
		t.Errorf("expected 0 relics left, got %d", w.RelicsLeft())
	}

	// Second collect at the same coordinate is a no-op
	if w.TryCollect(3, 3) {
		t.Error("expected repeated collect to fail")
	}
	if w.TryCollect(2, 2) {
		t.Error("expected collect on empty cell to fail")
	}
}

func TestIsVictoryRequiresAllRelics(t *testing.T) {
	w := openWorld(10, 10)
	placeRelic(w, 3, 3)
	placeExit(w, 8, 8)

	if w.IsVictory(8, 8) {
		t.Error("expected no victory while a relic remains")
	}

	w.TryCollect(3, 3)
	if !w.IsVictory(8, 8) {
		t.Error("expected victory at exit with all relics collected")
	}
	if w.IsVictory(7, 8) {
		t.Error("expected no victory away from the exit")
	}
}

func TestStepHazardsInsertionOrder(t *testing.T) {
	w := openWorld(12, 12)
	first := newHazard(core.P(3, 3), core.P(1, 0))
	second := newHazard(core.P(6, 6), core.P(0, 1))
	w.hazards = append(w.hazards, first, second)

	// Put both on the cadence boundary so one StepHazards moves both.
	first.moveTimer = first.moveDelay - 1
	second.moveTimer = second.moveDelay - 1
	w.StepHazards()

	got := w.HazardPositions()
	want := []core.Point{{X: 4, Y: 3}, {X: 6, Y: 7}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("hazard %d at %v, want %v", i, got[i], want[i])
		}
	}
}
