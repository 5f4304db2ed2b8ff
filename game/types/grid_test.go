package types

import (
	"errors"
	"testing"
)

func TestNewGridDefaults(t *testing.T) {
	g, err := NewGrid(Width, Height, CellSize, 1)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	cols, rows := g.Dimensions()
	if cols != 25 || rows != 25 {
		t.Errorf("Expected 25x25 cells, got %dx%d", cols, rows)
	}
}

func TestNewGridRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name                    string
		width, height, cellSize int
		want                    error
	}{
		{"uneven width", 510, 500, 20, ErrUnevenGrid},
		{"uneven height", 500, 505, 20, ErrUnevenGrid},
		{"zero cell", 500, 500, 0, ErrInvalidSize},
		{"negative width", -20, 500, 20, ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.width, tt.height, tt.cellSize, 1)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	g, _ := NewGrid(100, 60, 20, 1) // 5x3

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{4, 2}, true},
		{Point{5, 0}, false},
		{Point{0, 3}, false},
		{Point{-1, 0}, false},
		{Point{0, -1}, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.p); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRandomCellStaysInBounds(t *testing.T) {
	g, _ := NewGrid(100, 60, 20, 7)
	seen := make(map[Point]bool)
	for i := 0; i < 2000; i++ {
		p := g.RandomCell()
		if !g.InBounds(p) {
			t.Fatalf("RandomCell returned out-of-bounds %v", p)
		}
		seen[p] = true
	}
	// 15 cells, 2000 draws: every cell shows up.
	if len(seen) != 15 {
		t.Errorf("Expected all 15 cells to be drawn, got %d", len(seen))
	}
}

func TestRandomCellDeterministicForSeed(t *testing.T) {
	a, _ := NewGrid(Width, Height, CellSize, 42)
	b, _ := NewGrid(Width, Height, CellSize, 42)
	for i := 0; i < 50; i++ {
		if pa, pb := a.RandomCell(), b.RandomCell(); pa != pb {
			t.Fatalf("draw %d differs: %v vs %v", i, pa, pb)
		}
	}
}

func TestCellOrigin(t *testing.T) {
	x, y := CellOrigin(Point{X: 3, Y: 7}, CellSize)
	if x != 60 || y != 140 {
		t.Errorf("Expected (60,140), got (%d,%d)", x, y)
	}
}

func TestDirectionOpposites(t *testing.T) {
	for _, d := range []Direction{UP, RIGHT, DOWN, LEFT} {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: double opposite is %v", d, d.Opposite().Opposite())
		}
		sum := d.ToPoint().Add(d.Opposite().ToPoint())
		if sum != (Point{}) {
			t.Errorf("%v and its opposite do not cancel: %v", d, sum)
		}
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("%v: left then right is %v", d, d.TurnLeft().TurnRight())
		}
	}
	if NONE.Valid() || !LEFT.Valid() {
		t.Error("Valid() misclassifies directions")
	}
}
