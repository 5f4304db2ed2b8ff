package ui

import (
	"gridsnake/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyBindings = []struct {
	key int32
	cmd input.Command
}{
	{rl.KeyUp, input.Up},
	{rl.KeyW, input.Up},
	{rl.KeyDown, input.Down},
	{rl.KeyS, input.Down},
	{rl.KeyLeft, input.Left},
	{rl.KeyA, input.Left},
	{rl.KeyRight, input.Right},
	{rl.KeyD, input.Right},
	{rl.KeySpace, input.TogglePause},
	{rl.KeyR, input.Reset},
	{rl.KeyEnter, input.Reset},
	{rl.KeyTab, input.Autopilot},
	{rl.KeyQ, input.Quit},
}

// PollCommands returns the commands for keys pressed since the last frame,
// in binding order.
func PollCommands() []input.Command {
	var cmds []input.Command
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}
