package mazehunt

import (
	"testing"

	"github.com/mazehunt/mazehunt/internal/core"
)

// fireHunter advances a hunter straight to its next cadence tick.
func fireHunter(h *Hunter, w *World, target core.Point) {
	h.moveTimer = h.moveDelay - 1
	h.Update(w, target)
}

func TestStalkerIdlesUntilTargetMoves(t *testing.T) {
	w := openWorld(12, 12)
	start := core.P(1, 1)
	h := NewStalker(core.P(6, 6), start, 1)

	// Target has not moved: stay idle through several cadences
	for i := 0; i < 3; i++ {
		fireHunter(h, w, start)
	}
	if h.State() != StateIdle {
		t.Fatalf("expected idle hunter, got %v", h.State())
	}
	if h.Pos() != core.P(6, 6) {
		t.Fatalf("idle hunter moved to %v", h.Pos())
	}

	// First target movement latches the chase but does not move the hunter
	// on the same cadence tick
	fireHunter(h, w, core.P(2, 1))
	if h.State() != StateChase {
		t.Fatalf("expected chase after target moved, got %v", h.State())
	}
	if h.Pos() != core.P(6, 6) {
		t.Errorf("hunter moved on the latch tick to %v", h.Pos())
	}

	// From the next cadence on, the hunter closes in
	fireHunter(h, w, core.P(2, 1))
	if h.Pos() != core.P(5, 5) {
		t.Errorf("expected hunter at (5,5), got %v", h.Pos())
	}
}

func TestStalkerLatchIsOneWay(t *testing.T) {
	w := openWorld(12, 12)
	start := core.P(1, 1)
	h := NewStalker(core.P(6, 6), start, 1)

	fireHunter(h, w, core.P(2, 1))
	if h.State() != StateChase {
		t.Fatalf("expected chase, got %v", h.State())
	}

	// Returning to the starting cell does not reset the machine
	fireHunter(h, w, start)
	if h.State() != StateChase {
		t.Errorf("expected chase to persist, got %v", h.State())
	}
}

func TestStalkerCadenceShortensWithLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 40},
		{5, 32},
		{11, 20},
		{30, 20}, // speedup capped
	}
	for _, tt := range tests {
		h := NewStalker(core.P(5, 5), core.P(1, 1), tt.level)
		if h.MoveDelay() != tt.want {
			t.Errorf("level %d: delay %d, want %d", tt.level, h.MoveDelay(), tt.want)
		}
	}
}

func TestNextStepPrefersDiagonal(t *testing.T) {
	w := openWorld(12, 12)
	h := NewStalker(core.P(5, 5), core.P(1, 1), 1)

	dx, dy := h.NextStep(w, core.P(8, 8), true)
	if dx != 1 || dy != 1 {
		t.Errorf("expected diagonal (1,1), got (%d,%d)", dx, dy)
	}

	dx, dy = h.NextStep(w, core.P(2, 8), true)
	if dx != -1 || dy != 1 {
		t.Errorf("expected diagonal (-1,1), got (%d,%d)", dx, dy)
	}
}

func TestNextStepFallbackOrder(t *testing.T) {
	w := openWorld(12, 12)
	h := NewStalker(core.P(5, 5), core.P(1, 1), 1)
	target := core.P(8, 8)

	// Diagonal blocked: take the pure-x step
	w.setCell(6, 6, CellWall)
	if dx, dy := h.NextStep(w, target, true); dx != 1 || dy != 0 {
		t.Errorf("expected pure-x (1,0), got (%d,%d)", dx, dy)
	}

	// Diagonal and pure-x blocked: take the pure-y step
	w.setCell(6, 5, CellWall)
	if dx, dy := h.NextStep(w, target, true); dx != 0 || dy != 1 {
		t.Errorf("expected pure-y (0,1), got (%d,%d)", dx, dy)
	}
}

func TestNextStepEscapeScan(t *testing.T) {
	w := openWorld(12, 12)
	h := NewStalker(core.P(5, 5), core.P(1, 1), 1)
	target := core.P(8, 8)

	// All greedy steps blocked
	w.setCell(6, 6, CellWall)
	w.setCell(6, 5, CellWall)
	w.setCell(5, 6, CellWall)

	// Escape scans down, up, right, left; down (5,6) is walled, so up
	// (5,4) is the first open neighbor
	if dx, dy := h.NextStep(w, target, true); dx != 0 || dy != -1 {
		t.Errorf("expected escape step (0,-1), got (%d,%d)", dx, dy)
	}

	// Without the escape scan the hunter stays put
	if dx, dy := h.NextStep(w, target, false); dx != 0 || dy != 0 {
		t.Errorf("expected (0,0) without escape, got (%d,%d)", dx, dy)
	}
}

func TestNextStepOnTarget(t *testing.T) {
	w := openWorld(12, 12)
	h := NewStalker(core.P(5, 5), core.P(1, 1), 1)

	if dx, dy := h.NextStep(w, core.P(5, 5), true); dx != 0 || dy != 0 {
		t.Errorf("expected (0,0) on target, got (%d,%d)", dx, dy)
	}
}

func TestPatrollerRouteRectangle(t *testing.T) {
	w := openWorld(12, 12)
	h := NewPatroller(core.P(4, 4), w)

	want := []core.Point{{X: 7, Y: 4}, {X: 7, Y: 7}, {X: 4, Y: 7}, {X: 4, Y: 4}}
	got := h.Route()
	if len(got) != len(want) {
		t.Fatalf("route has %d waypoints, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("waypoint %d is %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPatrollerRouteFiltersBlockedWaypoints(t *testing.T) {
	w := openWorld(10, 10)

	// Spawn near the far corner: the offset waypoints land out of bounds
	h := NewPatroller(core.P(8, 8), w)
	route := h.Route()
	if len(route) != 1 || route[0] != core.P(8, 8) {
		t.Errorf("expected single-point route at spawn, got %v", route)
	}

	// Walls on every candidate collapse the route to the spawn fallback
	w2 := openWorld(12, 12)
	for _, p := range []core.Point{{X: 7, Y: 4}, {X: 7, Y: 7}, {X: 4, Y: 7}, {X: 4, Y: 4}} {
		w2.setCell(p.X, p.Y, CellWall)
	}
	h2 := NewPatroller(core.P(4, 4), w2)
	if got := h2.Route(); len(got) != 1 || got[0] != core.P(4, 4) {
		t.Errorf("expected spawn fallback route, got %v", got)
	}
}

func TestPatrollerWalksRoute(t *testing.T) {
	w := openWorld(14, 14)
	h := NewPatroller(core.P(4, 4), w)
	far := core.P(12, 12) // outside sensing range throughout

	// Three cadences reach the first waypoint (7,4)
	for i := 0; i < 3; i++ {
		fireHunter(h, w, far)
	}
	if h.Pos() != core.P(7, 4) {
		t.Fatalf("expected hunter at first waypoint (7,4), got %v", h.Pos())
	}
	if h.State() != StatePatrol {
		t.Fatalf("expected patrol state, got %v", h.State())
	}

	// Next cadence heads for the second waypoint
	fireHunter(h, w, far)
	if h.Pos() != core.P(7, 5) {
		t.Errorf("expected hunter at (7,5), got %v", h.Pos())
	}
}

func TestPatrollerChasesOnProximity(t *testing.T) {
	w := openWorld(14, 14)
	h := NewPatroller(core.P(5, 5), w)

	// Euclidean distance 3 is inside the sensing range of 4. The switch to
	// chase costs the cadence tick, so the hunter does not move yet.
	fireHunter(h, w, core.P(8, 5))
	if h.State() != StateChase {
		t.Fatalf("expected chase, got %v", h.State())
	}
	if h.Pos() != core.P(5, 5) {
		t.Errorf("hunter moved on the transition tick to %v", h.Pos())
	}

	fireHunter(h, w, core.P(8, 5))
	if h.Pos() != core.P(6, 5) {
		t.Errorf("expected hunter at (6,5), got %v", h.Pos())
	}
}

func TestPatrollerIgnoresDistantTarget(t *testing.T) {
	w := openWorld(14, 14)
	h := NewPatroller(core.P(5, 5), w)

	// Distance 5 exceeds the sensing range of 4
	fireHunter(h, w, core.P(10, 5))
	if h.State() != StatePatrol {
		t.Errorf("expected patrol, got %v", h.State())
	}
}

func TestPatrollerReturnsHomeAfterLostTrail(t *testing.T) {
	w := openWorld(14, 14)
	h := NewPatroller(core.P(5, 5), w)
	h.state = StateChase
	h.lastKnown = core.P(6, 5)
	far := core.P(12, 12)

	// Reaching the last-known position with the target out of range flips
	// to return on the same cadence tick
	fireHunter(h, w, far)
	if h.Pos() != core.P(6, 5) {
		t.Fatalf("expected hunter at last-known (6,5), got %v", h.Pos())
	}
	if h.State() != StateReturn {
		t.Fatalf("expected return state, got %v", h.State())
	}

	// Walking home resumes the patrol
	fireHunter(h, w, far)
	if h.Pos() != core.P(5, 5) {
		t.Fatalf("expected hunter home at (5,5), got %v", h.Pos())
	}
	if h.State() != StatePatrol {
		t.Errorf("expected patrol after homecoming, got %v", h.State())
	}
}

func TestHunterMovesOnCadenceOnly(t *testing.T) {
	w := openWorld(12, 12)
	h := NewStalker(core.P(6, 6), core.P(1, 1), 1)
	h.state = StateChase

	target := core.P(1, 1)
	for i := 0; i < h.MoveDelay()-1; i++ {
		h.Update(w, target)
		if h.Pos() != core.P(6, 6) {
			t.Fatalf("hunter moved on off-cadence tick %d", i+1)
		}
	}
	h.Update(w, target)
	if h.Pos() != core.P(5, 5) {
		t.Errorf("expected hunter at (5,5) after cadence tick, got %v", h.Pos())
	}
}
