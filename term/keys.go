package term

import (
	"gridsnake/input"

	"github.com/gdamore/tcell/v2"
)

// KeyCommand maps a terminal key press to a command. r is only consulted
// for tcell.KeyRune.
func KeyCommand(key tcell.Key, r rune) input.Command {
	switch key {
	case tcell.KeyUp:
		return input.Up
	case tcell.KeyDown:
		return input.Down
	case tcell.KeyLeft:
		return input.Left
	case tcell.KeyRight:
		return input.Right
	case tcell.KeyEnter:
		return input.Reset
	case tcell.KeyTab:
		return input.Autopilot
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit
	case tcell.KeyRune:
		return runeCommand(r)
	}
	return input.None
}

func runeCommand(r rune) input.Command {
	switch r {
	case 'w', 'W':
		return input.Up
	case 's', 'S':
		return input.Down
	case 'a', 'A':
		return input.Left
	case 'd', 'D':
		return input.Right
	case ' ':
		return input.TogglePause
	case 'r', 'R':
		return input.Reset
	case 'q', 'Q':
		return input.Quit
	}
	return input.None
}
