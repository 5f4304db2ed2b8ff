package types

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

var (
	ErrInvalidSize = errors.New("grid: board and cell sizes must be positive")
	ErrUnevenGrid  = errors.New("grid: board size is not a multiple of the cell size")
)

// Grid is the board geometry in cells. Cols and Rows are derived from the
// board size and the cell size and never change for the session.
type Grid struct {
	Width    int // board width in board units
	Height   int // board height in board units
	CellSize int
	Cols     int
	Rows     int

	rng *rand.Rand
}

// NewGrid derives the cell dimensions of a width x height board. Both sides
// must divide evenly by cellSize. A zero seed picks one from the clock.
func NewGrid(width, height, cellSize int, seed uint64) (Grid, error) {
	if width <= 0 || height <= 0 || cellSize <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d cell %d", ErrInvalidSize, width, height, cellSize)
	}
	if width%cellSize != 0 || height%cellSize != 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d cell %d", ErrUnevenGrid, width, height, cellSize)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return Grid{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		Cols:     width / cellSize,
		Rows:     height / cellSize,
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

// Dimensions returns the grid size in cells.
func (g Grid) Dimensions() (cols, rows int) {
	return g.Cols, g.Rows
}

// InBounds reports whether p lies on the grid.
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Cols && p.Y >= 0 && p.Y < g.Rows
}

// RandomCell returns a uniformly random cell on the grid. It knows nothing
// about what occupies the cell.
func (g Grid) RandomCell() Point {
	return Point{
		X: g.rng.Intn(g.Cols),
		Y: g.rng.Intn(g.Rows),
	}
}
