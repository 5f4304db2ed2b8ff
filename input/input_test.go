package input

import (
	"testing"

	"gridsnake/game/types"
)

type recorder struct {
	directions []types.Direction
	pauses     int
	resets     int
}

func (r *recorder) SetDirection(d types.Direction) { r.directions = append(r.directions, d) }
func (r *recorder) TogglePause()                   { r.pauses++ }
func (r *recorder) Reset()                         { r.resets++ }

func TestApplyDirections(t *testing.T) {
	tests := []struct {
		cmd  Command
		want types.Direction
	}{
		{Up, types.UP},
		{Down, types.DOWN},
		{Left, types.LEFT},
		{Right, types.RIGHT},
	}
	for _, tt := range tests {
		r := &recorder{}
		if !Apply(r, tt.cmd) {
			t.Errorf("%v: expected engine command", tt.cmd)
		}
		if len(r.directions) != 1 || r.directions[0] != tt.want {
			t.Errorf("%v: expected SetDirection(%v), got %v", tt.cmd, tt.want, r.directions)
		}
	}
}

func TestApplyControlCommands(t *testing.T) {
	r := &recorder{}
	Apply(r, TogglePause)
	Apply(r, Reset)
	Apply(r, TogglePause)

	if r.pauses != 2 || r.resets != 1 {
		t.Errorf("Expected 2 pauses and 1 reset, got %d and %d", r.pauses, r.resets)
	}
}

func TestApplyIgnoresFrontEndCommands(t *testing.T) {
	for _, c := range []Command{None, Quit, Autopilot} {
		r := &recorder{}
		if Apply(r, c) {
			t.Errorf("%v: must not reach the engine", c)
		}
		if len(r.directions) != 0 || r.pauses != 0 || r.resets != 0 {
			t.Errorf("%v: engine was called", c)
		}
	}
}

func TestCommandString(t *testing.T) {
	if Up.String() != "up" || Command(99).String() != "unknown" {
		t.Errorf("unexpected names %q %q", Up.String(), Command(99).String())
	}
}
