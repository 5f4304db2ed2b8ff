// Package term draws the game in a terminal with tcell.
package term

import (
	"gridsnake/game/types"
	"gridsnake/session"

	"github.com/gdamore/tcell/v2"
)

// Screen is the part of tcell.Screen the renderer draws through.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

const (
	cellWidth = 2 // terminal columns per grid cell
	boardTop  = 3 // rows reserved for the HUD
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	snakeStyle  = tcell.StyleDefault.Background(tcell.ColorGreen)
	headStyle   = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorYellow)
	foodStyle   = tcell.StyleDefault.Background(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var headGlyphs = map[types.Direction]rune{
	types.UP:    '^',
	types.DOWN:  'v',
	types.LEFT:  '<',
	types.RIGHT: '>',
}

// Renderer draws one grid cell as cellWidth terminal columns inside a
// one-character border.
type Renderer struct {
	screen Screen
}

func NewRenderer(screen Screen) *Renderer {
	return &Renderer{screen: screen}
}

// BoardSize returns the terminal size the board needs, border and HUD
// included.
func BoardSize(cols, rows int) (width, height int) {
	return cols*cellWidth + 2, rows + boardTop + 2
}

func (r *Renderer) Draw(f session.Frame) {
	snap := f.Snapshot
	r.screen.Clear()

	hud := f.HUD()
	r.text(0, 0, hud.Score, textStyle)
	r.text(0, 1, hud.Best, textStyle)
	r.text(0, 2, hud.Hint, borderStyle)

	r.border(snap.Cols, snap.Rows)
	r.fill(snap.Food, ' ', foodStyle)
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.fill(snap.Snake[i], headGlyphs[snap.Direction], headStyle)
			continue
		}
		r.fill(snap.Snake[i], ' ', snakeStyle)
	}

	if hud.Banner != "" {
		width, height := BoardSize(snap.Cols, snap.Rows)
		r.text((width-len(hud.Banner))/2, boardTop+(height-boardTop)/2, hud.Banner, bannerStyle)
	}
	r.screen.Show()
}

// fill paints cell p. The glyph goes in the first column of the cell.
func (r *Renderer) fill(p types.Point, glyph rune, style tcell.Style) {
	x := 1 + p.X*cellWidth
	y := boardTop + 1 + p.Y
	r.screen.SetContent(x, y, glyph, nil, style)
	for i := 1; i < cellWidth; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

func (r *Renderer) border(cols, rows int) {
	right := cols*cellWidth + 1
	bottom := boardTop + rows + 1
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, boardTop, '─', nil, borderStyle)
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := boardTop + 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, borderStyle)
		r.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	r.screen.SetContent(0, boardTop, '┌', nil, borderStyle)
	r.screen.SetContent(right, boardTop, '┐', nil, borderStyle)
	r.screen.SetContent(0, bottom, '└', nil, borderStyle)
	r.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
