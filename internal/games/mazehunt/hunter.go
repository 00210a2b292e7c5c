package mazehunt

import (
	"github.com/mazehunt/mazehunt/internal/core"
)

// Behavior selects which pursuit state machine a hunter runs. The two
// variants are deliberately kept separate rather than merged: they play
// differently, and a run is scored under the variant it was started with.
type Behavior int

const (
	// BehaviorStalker waits motionless until the player first moves, then
	// chases forever.
	BehaviorStalker Behavior = iota
	// BehaviorPatrol walks a fixed route, chases on proximity, and returns
	// home after losing the trail.
	BehaviorPatrol
)

// String returns a human-readable name for the behavior.
func (b Behavior) String() string {
	switch b {
	case BehaviorStalker:
		return "stalker"
	case BehaviorPatrol:
		return "patrol"
	default:
		return "unknown"
	}
}

// HunterState is the hunter's current behavior state.
type HunterState int

const (
	StateIdle HunterState = iota
	StatePatrol
	StateChase
	StateReturn
)

// String returns a human-readable name for the state.
func (s HunterState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	case StateReturn:
		return "return"
	default:
		return "unknown"
	}
}

// Stalker variant tuning. The hunter speeds up with the level number by
// shaving its cadence, bottoming out at stalkerMinDelay ticks per step.
const (
	stalkerBaseDelay  = 40
	stalkerMinDelay   = 8
	stalkerChaseRange = 20
)

// Patrol variant tuning.
const (
	patrolMoveDelay  = 30
	patrolChaseRange = 4
	patrolSpan       = 3 // side length of the rectangular route
)

// escapeOrder is the fixed neighbor scan the stalker falls back to when
// every greedy step is blocked: down, up, right, left. The order is part of
// the movement contract, not an accident.
var escapeOrder = []core.Point{
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: -1, Y: 0},
}

// Hunter is the adversary. It senses the player by grid distance, decides a
// step with a greedy directional heuristic, and moves on a fixed cadence.
// State transitions are evaluated only on ticks where the cadence fires.
type Hunter struct {
	behavior Behavior
	pos      core.Point
	state    HunterState

	moveDelay int
	moveTimer int

	// chaseRange is the sensing distance. For the stalker it is carried but
	// does not gate the idle-to-chase latch, preserving the variant's
	// observed behavior.
	chaseRange float64

	lastKnown core.Point // last-known target position

	// Patrol variant memory.
	home     core.Point
	route    []core.Point
	routeIdx int
}

// NewStalker creates a Variant A hunter at spawn. targetStart is the
// player's initial coordinate: the hunter idles until the target's position
// first differs from it, then latches into chase permanently. The cadence
// shortens with the level number.
func NewStalker(spawn, targetStart core.Point, level int) *Hunter {
	speedup := core.Min(level-1, 10)
	return &Hunter{
		behavior:   BehaviorStalker,
		pos:        spawn,
		state:      StateIdle,
		moveDelay:  core.Max(stalkerBaseDelay-2*speedup, stalkerMinDelay),
		chaseRange: stalkerChaseRange,
		lastKnown:  targetStart,
	}
}

// NewPatroller creates a Variant B hunter at spawn. Its rectangular patrol
// route is computed once here, relative to spawn, keeping only in-bounds
// non-wall waypoints and falling back to a single-point route at spawn when
// none survive the filter.
func NewPatroller(spawn core.Point, w *World) *Hunter {
	return &Hunter{
		behavior:   BehaviorPatrol,
		pos:        spawn,
		state:      StatePatrol,
		moveDelay:  patrolMoveDelay,
		chaseRange: patrolChaseRange,
		lastKnown:  spawn,
		home:       spawn,
		route:      patrolRoute(spawn, w),
	}
}

// patrolRoute builds the rectangular waypoint loop for a patroller.
func patrolRoute(spawn core.Point, w *World) []core.Point {
	candidates := []core.Point{
		spawn.Add(patrolSpan, 0),
		spawn.Add(patrolSpan, patrolSpan),
		spawn.Add(0, patrolSpan),
		spawn,
	}

	route := make([]core.Point, 0, len(candidates))
	for _, p := range candidates {
		if w.InBounds(p.X, p.Y) && w.CellAt(p.X, p.Y) != CellWall {
			route = append(route, p)
		}
	}
	if len(route) == 0 {
		route = []core.Point{spawn}
	}
	return route
}

// Pos returns the hunter's current grid coordinate.
func (h *Hunter) Pos() core.Point {
	return h.pos
}

// State returns the hunter's current behavior state.
func (h *Hunter) State() HunterState {
	return h.state
}

// Behavior returns which variant this hunter runs.
func (h *Hunter) Behavior() Behavior {
	return h.behavior
}

// MoveDelay returns the cadence in ticks between hunter actions.
func (h *Hunter) MoveDelay() int {
	return h.moveDelay
}

// ChaseRange returns the sensing distance in grid units.
func (h *Hunter) ChaseRange() float64 {
	return h.chaseRange
}

// Route returns the patrol waypoints (nil for the stalker variant).
func (h *Hunter) Route() []core.Point {
	return h.route
}

// CanSense reports whether the target is within the hunter's sensing range.
func (h *Hunter) CanSense(target core.Point) bool {
	return h.pos.Dist(target) <= h.chaseRange
}

// Update advances the hunter by one tick with the target's current
// coordinate. Both state transitions and movement are gated by the cadence:
// nothing happens on off-cadence ticks.
func (h *Hunter) Update(w *World, target core.Point) {
	h.moveTimer++
	if h.moveTimer < h.moveDelay {
		return
	}
	h.moveTimer = 0

	switch h.behavior {
	case BehaviorStalker:
		h.updateStalker(w, target)
	case BehaviorPatrol:
		h.updatePatroller(w, target)
	}
}

// updateStalker runs the {Idle, Chase} machine. The idle-to-chase latch is
// one-way: once the target has moved from its initial position the hunter
// never goes idle again, even if the target returns there.
func (h *Hunter) updateStalker(w *World, target core.Point) {
	switch h.state {
	case StateIdle:
		if target != h.lastKnown {
			h.lastKnown = target
			h.state = StateChase
		}

	case StateChase:
		// Sensing refreshes the memory but does not gate the chase: the
		// stalker always pursues the target's current coordinate.
		if h.CanSense(target) {
			h.lastKnown = target
		}
		h.stepToward(w, target, true)
	}
}

// updatePatroller runs the {Patrol, Chase, Return} machine.
func (h *Hunter) updatePatroller(w *World, target core.Point) {
	switch h.state {
	case StatePatrol:
		if h.CanSense(target) {
			h.lastKnown = target
			h.state = StateChase
			return
		}

		waypoint := h.route[h.routeIdx]
		h.stepToward(w, waypoint, false)
		if h.pos == waypoint {
			h.routeIdx = (h.routeIdx + 1) % len(h.route)
		}

	case StateChase:
		// Refresh memory while the target is visible; keep walking to the
		// last-known position after losing sight of it.
		if h.CanSense(target) {
			h.lastKnown = target
		}
		h.stepToward(w, h.lastKnown, false)
		if h.pos == h.lastKnown {
			h.state = StateReturn
		}

	case StateReturn:
		h.stepToward(w, h.home, false)
		if h.pos == h.home {
			h.state = StatePatrol
		}
	}
}

// stepToward applies one greedy step toward target, if any is available.
func (h *Hunter) stepToward(w *World, target core.Point, escape bool) {
	dx, dy := h.NextStep(w, target, escape)
	if dx == 0 && dy == 0 {
		return
	}
	h.pos = h.pos.Add(dx, dy)
}

// NextStep computes the greedy step from the hunter's position toward
// target. The tie-break order is fixed: the diagonal combining both axis
// signs, then the pure-x step, then the pure-y step. With escape enabled a
// fully blocked hunter scans its four neighbors in escapeOrder and takes the
// first open one; otherwise it stays put for this tick.
func (h *Hunter) NextStep(w *World, target core.Point, escape bool) (int, int) {
	dx := core.Sign(target.X - h.pos.X)
	dy := core.Sign(target.Y - h.pos.Y)

	if dx == 0 && dy == 0 {
		return 0, 0
	}

	if !w.IsBlocked(h.pos.X+dx, h.pos.Y+dy) {
		return dx, dy
	}
	if !w.IsBlocked(h.pos.X+dx, h.pos.Y) {
		return dx, 0
	}
	if !w.IsBlocked(h.pos.X, h.pos.Y+dy) {
		return 0, dy
	}

	if escape {
		for _, m := range escapeOrder {
			if !w.IsBlocked(h.pos.X+m.X, h.pos.Y+m.Y) {
				return m.X, m.Y
			}
		}
	}
	return 0, 0
}
