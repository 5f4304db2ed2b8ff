package session

import (
	"fmt"

	"gridsnake/game/types"
)

// HUD holds the texts every front end shows next to the board.
type HUD struct {
	Score  string
	Best   string
	Banner string // empty while playing
	Hint   string
}

func (f Frame) HUD() HUD {
	snap := f.Snapshot
	h := HUD{
		Score: fmt.Sprintf("Score: %d", snap.Score),
		Best: fmt.Sprintf("Best: %d  Avg: %.1f  Median: %.1f  Games: %d",
			f.HighScore, f.AverageScore, f.MedianScore, f.Games),
	}
	switch snap.Status {
	case types.GameOver:
		h.Banner = "Game Over!"
		h.Hint = "R: Restart"
	case types.Paused:
		h.Banner = "Paused"
		h.Hint = "Space: Resume"
	default:
		h.Hint = "Space: Pause"
	}
	if f.Autopilot {
		h.Hint += "  [autopilot]"
	}
	return h
}
