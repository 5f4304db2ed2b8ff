package ui

import (
	"gridsnake/game/types"
	"gridsnake/session"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudHeight     = 40 // Space above the board for score and hints
	borderPadding = 10
)

var (
	boardColor = rl.LightGray
	snakeColor = rl.Green
	headColor  = rl.DarkGreen
	foodColor  = rl.Red
)

// Renderer draws frames into the raylib window. The board is laid out in
// board units and multiplied by scale.
type Renderer struct {
	scale   int32
	offsetX int32
	offsetY int32
}

func NewRenderer(scale int) *Renderer {
	if scale < 1 {
		scale = 1
	}
	return &Renderer{
		scale:   int32(scale),
		offsetX: borderPadding,
		offsetY: borderPadding + hudHeight,
	}
}

// WindowSize returns the window size needed for a board of width x height.
func (r *Renderer) WindowSize(width, height int) (int32, int32) {
	return int32(width)*r.scale + borderPadding*2, int32(height)*r.scale + hudHeight + borderPadding*2
}

func (r *Renderer) Draw(f session.Frame) {
	snap := f.Snapshot
	cellSize := int32(snap.CellSize) * r.scale
	boardW := int32(snap.Cols) * cellSize
	boardH := int32(snap.Rows) * cellSize

	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, boardW+2, boardH+2, rl.Black)
	rl.DrawRectangle(r.offsetX, r.offsetY, boardW, boardH, boardColor)

	for i, p := range snap.Snake {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		x, y := r.cellOrigin(p, snap.CellSize)
		rl.DrawRectangle(x, y, cellSize, cellSize, color)
	}
	if len(snap.Snake) > 0 {
		r.drawHeading(snap.Snake[0], snap.Direction, snap.CellSize)
	}

	fx, fy := r.cellOrigin(snap.Food, snap.CellSize)
	rl.DrawRectangle(fx, fy, cellSize, cellSize, foodColor)

	r.drawHUD(f, boardW, boardH)
	rl.EndDrawing()
}

// cellOrigin maps p to window pixels.
func (r *Renderer) cellOrigin(p types.Point, cellSize int) (int32, int32) {
	x, y := types.CellOrigin(p, cellSize)
	return r.offsetX + int32(x)*r.scale, r.offsetY + int32(y)*r.scale
}

// drawHeading marks the head with a triangle pointing where it is going.
func (r *Renderer) drawHeading(head types.Point, dir types.Direction, boardCell int) {
	headX, headY := r.cellOrigin(head, boardCell)
	cellSize := int32(boardCell) * r.scale
	halfCell := cellSize / 2
	switch dir {
	case types.RIGHT:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + cellSize)},
			rl.Yellow)
	case types.LEFT:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + cellSize)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Yellow)
	case types.DOWN:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + cellSize)},
			rl.Vector2{X: float32(headX + cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Yellow)
	case types.UP:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) drawHUD(f session.Frame, boardW, boardH int32) {
	hud := f.HUD()
	fontSize := int32(20)

	rl.DrawText(hud.Score, r.offsetX, borderPadding, fontSize, rl.Black)
	bestWidth := rl.MeasureText(hud.Best, fontSize/2)
	rl.DrawText(hud.Best, r.offsetX+boardW-bestWidth, borderPadding, fontSize/2, rl.DarkGray)

	hintWidth := rl.MeasureText(hud.Hint, fontSize/2)
	rl.DrawText(hud.Hint, r.offsetX+(boardW-hintWidth)/2, borderPadding+fontSize+2, fontSize/2, rl.DarkGray)

	if hud.Banner != "" {
		bannerSize := fontSize * 2
		textWidth := rl.MeasureText(hud.Banner, bannerSize)
		rl.DrawText(hud.Banner,
			r.offsetX+(boardW-textWidth)/2,
			r.offsetY+(boardH-bannerSize)/2,
			bannerSize, rl.Maroon)
	}
}
