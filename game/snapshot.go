package game

import (
	"time"

	"gridsnake/game/types"
)

// Snapshot is a read-only copy of the game state. Its slices are not shared
// with the engine.
type Snapshot struct {
	SessionID string
	Snake     []types.Point // head first
	Food      types.Point
	Direction types.Direction
	Pending   types.Direction
	Speed     time.Duration
	Score     int
	Status    types.Status
	Steps     int
	Collision types.CollisionType

	Cols, Rows int
	CellSize   int
}

func (s Snapshot) Head() types.Point {
	return s.Snake[0]
}

// FoodUnderSnake reports whether the food was placed on a body cell.
// Placement never checks the body, so this can happen after eating.
func (s Snapshot) FoodUnderSnake() bool {
	for _, p := range s.Snake {
		if p == s.Food {
			return true
		}
	}
	return false
}
