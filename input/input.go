// Package input maps front-end commands onto engine operations.
package input

import "gridsnake/game/types"

// Command is a front-end independent user intent.
type Command int

const (
	None Command = iota
	Up
	Down
	Left
	Right
	TogglePause
	Reset
	Autopilot
	Quit
)

var commandNames = map[Command]string{
	None:        "none",
	Up:          "up",
	Down:        "down",
	Left:        "left",
	Right:       "right",
	TogglePause: "pause",
	Reset:       "reset",
	Autopilot:   "autopilot",
	Quit:        "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Direction returns the grid direction a movement command asks for, or
// types.NONE for any other command.
func (c Command) Direction() types.Direction {
	switch c {
	case Up:
		return types.UP
	case Down:
		return types.DOWN
	case Left:
		return types.LEFT
	case Right:
		return types.RIGHT
	default:
		return types.NONE
	}
}

// Engine is the subset of the game engine a command can drive.
type Engine interface {
	SetDirection(types.Direction)
	TogglePause()
	Reset()
}

// Apply forwards c to e and reports whether c was an engine command.
// Reversal filtering is left to the engine.
func Apply(e Engine, c Command) bool {
	if d := c.Direction(); d != types.NONE {
		e.SetDirection(d)
		return true
	}
	switch c {
	case TogglePause:
		e.TogglePause()
	case Reset:
		e.Reset()
	default:
		return false
	}
	return true
}
