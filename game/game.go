package game

import (
	"fmt"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
)

// TickResult describes what a single Tick did. A tick that was skipped
// because the game is paused or over returns the zero value.
type TickResult struct {
	Moved        bool
	Ate          bool
	SpeedChanged bool
	Collision    types.CollisionType
}

// Game is the authoritative state of one snake session. All methods run to
// completion and are meant to be called from a single goroutine.
type Game struct {
	cfg  Config
	grid types.Grid

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	speedMgr     *manager.SpeedManager

	direction types.Direction // committed
	pending   types.Direction // applied on the next tick
	score     int
	status    types.Status
	steps     int
	collision types.CollisionType
	sessionID string
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	grid, err := types.NewGrid(cfg.Width, cfg.Height, cfg.CellSize, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validatePlacement(grid); err != nil {
		return nil, err
	}

	cfg.InitialSnake = append([]types.Point(nil), cfg.InitialSnake...)
	g := &Game{
		cfg:          cfg,
		grid:         grid,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, cfg.InitialFood),
		speedMgr:     manager.NewSpeedManager(cfg.InitialSpeed, cfg.SpeedStep, cfg.MinSpeed),
	}
	g.Reset()
	return g, nil
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) SessionID() string {
	return g.sessionID
}

func (g *Game) Status() types.Status {
	return g.status
}

func (g *Game) Speed() time.Duration {
	return g.speedMgr.GetSpeed()
}

// SetDirection buffers d for the next tick unless it reverses the committed
// direction. Rejected requests are dropped silently. It is accepted in any
// status; a paused or finished game simply does not move.
func (g *Game) SetDirection(d types.Direction) {
	if !d.Valid() || d == g.direction.Opposite() {
		return
	}
	g.pending = d
}

// Tick advances the snake one cell.
func (g *Game) Tick() TickResult {
	if g.status != types.Running {
		return TickResult{}
	}

	g.direction = g.pending
	newHead := g.snake.GetHead().Add(g.direction.ToPoint())

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != types.NoCollision {
		g.status = types.GameOver
		g.collision = collision
		return TickResult{Collision: collision}
	}

	g.snake.Move(newHead)
	g.steps++
	result := TickResult{Moved: true}

	if g.collisionMgr.IsFoodCollision(newHead, g.foodMgr.GetFood()) {
		g.score++
		g.foodMgr.GenerateFood()
		result.Ate = true
		result.SpeedChanged = g.speedMgr.Accelerate()
	} else {
		g.snake.RemoveTail()
	}
	return result
}

// TogglePause flips between running and paused. A finished game stays over.
func (g *Game) TogglePause() {
	switch g.status {
	case types.Running:
		g.status = types.Paused
	case types.Paused:
		g.status = types.Running
	}
}

// Reset restores the starting position from any status and opens a new
// session id.
func (g *Game) Reset() {
	g.snake = entity.NewSnake(g.cfg.InitialSnake...)
	g.foodMgr.SetFood(g.cfg.InitialFood)
	g.speedMgr.Reset()
	g.direction = g.cfg.InitialDirection
	g.pending = g.cfg.InitialDirection
	g.score = 0
	g.steps = 0
	g.status = types.Running
	g.collision = types.NoCollision
	g.sessionID = uuid.New().String()
}

// Snapshot returns a copy of the state for rendering.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		SessionID: g.sessionID,
		Snake:     g.snake.Cells(),
		Food:      g.foodMgr.GetFood(),
		Direction: g.direction,
		Pending:   g.pending,
		Speed:     g.speedMgr.GetSpeed(),
		Score:     g.score,
		Status:    g.status,
		Steps:     g.steps,
		Collision: g.collision,
		Cols:      g.grid.Cols,
		Rows:      g.grid.Rows,
		CellSize:  g.grid.CellSize,
	}
}
