package world

import (
	"testing"
)

func TestWrapX_TableDriven(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		width int
		want  int
	}{
		{"in range", 5, 80, 5},
		{"zero", 0, 80, 0},
		{"just past right edge", 80, 80, 0},
		{"negative wraps", -1, 80, 79},
		{"large negative", -161, 80, 79},
		{"multiple widths", 245, 80, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WrapX(tc.x, tc.width); got != tc.want {
				t.Errorf("WrapX(%d, %d) = %d, want %d", tc.x, tc.width, got, tc.want)
			}
		})
	}
}

func TestWrapX_MatchesModuloIdentity(t *testing.T) {
	const width = 80
	for x := -200; x <= 200; x++ {
		want := ((x % width) + width) % width
		if got := WrapX(x, width); got != want {
			t.Fatalf("WrapX(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestClampY_NeverWraps(t *testing.T) {
	tests := []struct {
		y, height, want int
	}{
		{-5, 50, 0},
		{0, 50, 0},
		{49, 50, 49},
		{50, 50, 49},
		{500, 50, 49},
	}
	for _, tc := range tests {
		if got := ClampY(tc.y, tc.height); got != tc.want {
			t.Errorf("ClampY(%d, %d) = %d, want %d", tc.y, tc.height, got, tc.want)
		}
	}
}

func TestWrappedDeltaX_TakesShorterWay(t *testing.T) {
	if got := WrappedDeltaX(1, 78, 80); got != 3 {
		t.Errorf("expected wrapped delta 3, got %d", got)
	}
	if got := WrappedDeltaX(10, 20, 80); got != 10 {
		t.Errorf("expected direct delta 10, got %d", got)
	}
}

func TestDistance_WrappedManhattan(t *testing.T) {
	a := Position{X: 0, Y: 10}
	b := Position{X: 79, Y: 12}
	if got := Distance(a, b, 80); got != 3 {
		t.Errorf("Distance = %d, want 3 (wrapped dx 1 + dy 2)", got)
	}
}

func TestAdjacent_WrapsAroundSeam(t *testing.T) {
	a := Position{X: 0, Y: 10}
	b := Position{X: 79, Y: 10}
	if !Adjacent(a, b, 80) {
		t.Error("tiles across the horizontal seam should be adjacent")
	}
	if Adjacent(a, a, 80) {
		t.Error("a position is not adjacent to itself")
	}
	far := Position{X: 2, Y: 10}
	if Adjacent(a, far, 80) {
		t.Error("distance-2 tiles are not adjacent")
	}
}

func TestNormalize_ClampsAndWraps(t *testing.T) {
	p := Position{X: -1, Y: 60}.Normalize(80, 50)
	if p.X != 79 || p.Y != 49 {
		t.Errorf("Normalize = %+v, want {79 49}", p)
	}
}
