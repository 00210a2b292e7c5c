package mazehunt

import (
	"math/rand"
	"testing"

	"github.com/mazehunt/mazehunt/internal/core"
)

func testRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestGenerateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		level         int
	}{
		{"narrow", 7, 10, 1},
		{"short", 10, 7, 1},
		{"tiny", 4, 4, 1},
		{"zero level", 10, 10, 0},
		{"negative level", 10, 10, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(tt.width, tt.height, tt.level, testRNG(1)); err == nil {
				t.Errorf("Generate(%d, %d, level %d) succeeded, want error",
					tt.width, tt.height, tt.level)
			}
		})
	}
}

func TestGeneratePerimeter(t *testing.T) {
	w, err := Generate(20, 15, 3, testRNG(42))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for x := 0; x < w.Width(); x++ {
		if w.CellAt(x, 0) != CellWall || w.CellAt(x, w.Height()-1) != CellWall {
			t.Fatalf("perimeter breached in column %d", x)
		}
	}
	for y := 0; y < w.Height(); y++ {
		if w.CellAt(0, y) != CellWall || w.CellAt(w.Width()-1, y) != CellWall {
			t.Fatalf("perimeter breached in row %d", y)
		}
	}
}

func TestGenerateExactlyOneExit(t *testing.T) {
	w, err := Generate(20, 15, 5, testRNG(7))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := core.P(w.Width()-2, w.Height()-2)
	if w.Exit() != want {
		t.Errorf("exit at %v, want %v", w.Exit(), want)
	}

	count := 0
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			if w.CellAt(x, y) == CellExit {
				count++
			}
		}
	}
	if count != 1 {
		t.Errorf("found %d exit cells, want exactly 1", count)
	}
}

func TestGenerateRelicCount(t *testing.T) {
	for level := 1; level <= 5; level++ {
		w, err := Generate(20, 15, level, testRNG(int64(level)*100))
		if err != nil {
			t.Fatalf("Generate failed at level %d: %v", level, err)
		}
		if got, want := w.RelicsLeft(), 3+level; got != want {
			t.Errorf("level %d: %d relics, want %d", level, got, want)
		}
	}
}

func TestGenerateRelicSetMatchesGrid(t *testing.T) {
	w, err := Generate(20, 15, 4, testRNG(99))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	gridRelics := 0
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			if w.CellAt(x, y) == CellRelic {
				gridRelics++
				if _, ok := w.relics[core.P(x, y)]; !ok {
					t.Errorf("relic cell (%d,%d) missing from relic set", x, y)
				}
			}
		}
	}
	if gridRelics != w.RelicsLeft() {
		t.Errorf("%d relic cells vs %d tracked relics", gridRelics, w.RelicsLeft())
	}
}

func TestGenerateHazardCount(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 0},
		{2, 1},
		{5, 2},
		{6, 3},
		{12, 3}, // capped
	}
	for _, tt := range tests {
		w, err := Generate(20, 15, tt.level, testRNG(int64(tt.level)))
		if err != nil {
			t.Fatalf("Generate failed at level %d: %v", tt.level, err)
		}
		if got := len(w.HazardPositions()); got != tt.want {
			t.Errorf("level %d: %d hazards, want %d", tt.level, got, tt.want)
		}
	}
}

func TestGenerateObstaclesOnlyAboveLevelTwo(t *testing.T) {
	countObstacles := func(w *World) int {
		n := 0
		for y := 0; y < w.Height(); y++ {
			for x := 0; x < w.Width(); x++ {
				if w.CellAt(x, y) == CellObstacle {
					n++
				}
			}
		}
		return n
	}

	for _, level := range []int{1, 2} {
		w, err := Generate(20, 15, level, testRNG(5))
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if n := countObstacles(w); n != 0 {
			t.Errorf("level %d: %d obstacles, want 0", level, n)
		}
	}

	w, err := Generate(20, 15, 3, testRNG(5))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if n := countObstacles(w); n != 2 {
		t.Errorf("level 3: %d obstacles, want 2", n)
	}
}

func TestGenerateStartCornerOpen(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		w, err := Generate(20, 15, 8, testRNG(seed))
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if w.IsBlocked(PlayerStart.X, PlayerStart.Y) {
			t.Errorf("seed %d: player start is blocked", seed)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	a, err := Generate(20, 15, 6, testRNG(12345))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(20, 15, 6, testRNG(12345))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.CellAt(x, y) != b.CellAt(x, y) {
				t.Fatalf("cell (%d,%d) differs: %v vs %v", x, y, a.CellAt(x, y), b.CellAt(x, y))
			}
		}
	}

	ha, hb := a.HazardPositions(), b.HazardPositions()
	if len(ha) != len(hb) {
		t.Fatalf("hazard count differs: %d vs %d", len(ha), len(hb))
	}
	for i := range ha {
		if ha[i] != hb[i] {
			t.Errorf("hazard %d differs: %v vs %v", i, ha[i], hb[i])
		}
		if a.hazards[i].dir != b.hazards[i].dir {
			t.Errorf("hazard %d direction differs", i)
		}
	}
}
