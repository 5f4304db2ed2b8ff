package game

import "gridsnake/game/types"

// Autopilot steers the snake with a greedy look-ahead of one cell: of the
// three moves that are not a reversal it keeps the safe ones, then prefers
// the one closest to the food, then the one with the most free exits.
type Autopilot struct {
	game *Game
}

func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{game: g}
}

// Choose returns the direction to request before the next tick. With no safe
// move left it keeps going straight.
func (a *Autopilot) Choose() types.Direction {
	g := a.game
	current := g.direction
	head := g.snake.GetHead()
	food := g.foodMgr.GetFood()

	best := current
	bestDist, bestExits := -1, -1
	for _, d := range []types.Direction{current, current.TurnLeft(), current.TurnRight()} {
		next := head.Add(d.ToPoint())
		if g.collisionMgr.IsDanger(next, g.snake) {
			continue
		}
		dist := manhattanDistance(next, food)
		exits := a.freeExits(next, d)
		if bestDist < 0 || dist < bestDist || (dist == bestDist && exits > bestExits) {
			best, bestDist, bestExits = d, dist, exits
		}
	}
	return best
}

// freeExits counts the safe cells reachable from p on the following tick,
// treating the current body as fixed.
func (a *Autopilot) freeExits(p types.Point, heading types.Direction) int {
	g := a.game
	n := 0
	for _, d := range []types.Direction{heading, heading.TurnLeft(), heading.TurnRight()} {
		next := p.Add(d.ToPoint())
		if !g.collisionMgr.IsDanger(next, g.snake) && next != g.snake.GetHead() {
			n++
		}
	}
	return n
}

func manhattanDistance(p1, p2 types.Point) int {
	return abs(p1.X-p2.X) + abs(p1.Y-p2.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
