package game

import (
	"errors"
	"fmt"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// Config fixes the board, the pace and the starting position of a game.
// It is set once at startup.
type Config struct {
	Width    int // board width in board units
	Height   int // board height in board units
	CellSize int

	InitialSpeed time.Duration
	SpeedStep    time.Duration
	MinSpeed     time.Duration

	InitialSnake     []types.Point // head first
	InitialFood      types.Point
	InitialDirection types.Direction

	// Seed drives food placement. Zero seeds from the clock.
	Seed uint64
}

// DefaultConfig returns the classic 25x25 board.
func DefaultConfig() Config {
	return Config{
		Width:            types.Width,
		Height:           types.Height,
		CellSize:         types.CellSize,
		InitialSpeed:     types.InitialSpeed,
		SpeedStep:        types.SpeedStep,
		MinSpeed:         types.MinSpeed,
		InitialSnake:     []types.Point{{X: 2, Y: 2}},
		InitialFood:      types.Point{X: 5, Y: 5},
		InitialDirection: types.RIGHT,
	}
}

// validate checks everything that does not depend on the grid.
func (c Config) validate() error {
	switch {
	case c.MinSpeed <= 0:
		return fmt.Errorf("config: min speed must be positive, got %v", c.MinSpeed)
	case c.SpeedStep < 0:
		return fmt.Errorf("config: speed step must not be negative, got %v", c.SpeedStep)
	case c.InitialSpeed < c.MinSpeed:
		return fmt.Errorf("config: initial speed %v is below min speed %v", c.InitialSpeed, c.MinSpeed)
	case len(c.InitialSnake) == 0:
		return errors.New("config: initial snake is empty")
	case !c.InitialDirection.Valid():
		return fmt.Errorf("config: invalid initial direction %v", c.InitialDirection)
	}
	return nil
}

// validatePlacement checks the starting position against the grid.
func (c Config) validatePlacement(grid types.Grid) error {
	for _, p := range c.InitialSnake {
		if !grid.InBounds(p) {
			return fmt.Errorf("config: initial snake segment %v is off the %dx%d grid", p, grid.Cols, grid.Rows)
		}
	}
	if !entity.NewSnake(c.InitialSnake...).Distinct() {
		return errors.New("config: initial snake overlaps itself")
	}
	if !grid.InBounds(c.InitialFood) {
		return fmt.Errorf("config: initial food %v is off the %dx%d grid", c.InitialFood, grid.Cols, grid.Rows)
	}
	return nil
}
