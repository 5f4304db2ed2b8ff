package manager

import "gridsnake/game/types"

// FoodManager owns the single food cell.
type FoodManager struct {
	grid types.Grid
	food types.Point
}

func NewFoodManager(grid types.Grid, initial types.Point) *FoodManager {
	return &FoodManager{
		grid: grid,
		food: initial,
	}
}

// GenerateFood moves the food to a random cell and returns it. The snake's
// body is not consulted, so food can land under a segment.
func (fm *FoodManager) GenerateFood() types.Point {
	fm.food = fm.grid.RandomCell()
	return fm.food
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

func (fm *FoodManager) SetFood(food types.Point) {
	fm.food = food
}
