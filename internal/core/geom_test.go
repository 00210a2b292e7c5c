package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		val, expected int
	}{
		{5, 1},
		{-3, -1},
		{0, 0},
		{1, 1},
		{-1, -1},
	}

	for _, tc := range tests {
		if result := Sign(tc.val); result != tc.expected {
			t.Errorf("Sign(%d) = %d, expected %d", tc.val, result, tc.expected)
		}
	}
}

func TestPointDist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected float64
	}{
		{"same point", P(3, 3), P(3, 3), 0},
		{"horizontal", P(0, 0), P(4, 0), 4},
		{"vertical", P(2, 1), P(2, 6), 5},
		{"pythagorean", P(0, 0), P(3, 4), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if d := tc.a.Dist(tc.b); d != tc.expected {
				t.Errorf("Dist() = %f, expected %f", d, tc.expected)
			}
			// Distance is symmetric
			if d := tc.b.Dist(tc.a); d != tc.expected {
				t.Errorf("Dist() (reversed) = %f, expected %f", d, tc.expected)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	p := P(5, 5).Add(-1, 1)
	if p.X != 4 || p.Y != 6 {
		t.Errorf("Add() = (%d, %d), expected (4, 6)", p.X, p.Y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
