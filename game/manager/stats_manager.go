package manager

import (
	"sort"
	"time"
)

// MaxRecords caps the number of finished games kept in memory.
const MaxRecords = 100

// GameRecord describes one finished game.
type GameRecord struct {
	SessionID string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Steps     int
}

// Duration returns how long the game lasted.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StatsManager keeps the per-session history of finished games. It is not
// safe for concurrent use; its Session is the only caller.
type StatsManager struct {
	games     []GameRecord
	highScore int
	total     int
}

func NewStatsManager() *StatsManager {
	return &StatsManager{
		games: make([]GameRecord, 0),
	}
}

// AddGame records a finished game.
func (sm *StatsManager) AddGame(record GameRecord) {
	if len(sm.games) >= MaxRecords {
		sm.games = sm.games[1:]
	}
	sm.games = append(sm.games, record)
	sm.total++
	if record.Score > sm.highScore {
		sm.highScore = record.Score
	}
}

// LastGame returns the most recently recorded game.
func (sm *StatsManager) LastGame() (GameRecord, bool) {
	if len(sm.games) == 0 {
		return GameRecord{}, false
	}
	return sm.games[len(sm.games)-1], true
}

// GetHighScore returns the best score of the session, including games that
// have rolled out of the retained history.
func (sm *StatsManager) GetHighScore() int {
	return sm.highScore
}

// GetTotalGames counts every game recorded this session.
func (sm *StatsManager) GetTotalGames() int {
	return sm.total
}

// GetAverageScore averages the retained records.
func (sm *StatsManager) GetAverageScore() float64 {
	if len(sm.games) == 0 {
		return 0
	}
	sum := 0
	for _, g := range sm.games {
		sum += g.Score
	}
	return float64(sum) / float64(len(sm.games))
}

// GetMedianScore returns the median of the retained records.
func (sm *StatsManager) GetMedianScore() float64 {
	if len(sm.games) == 0 {
		return 0
	}
	scores := make([]int, len(sm.games))
	for i, g := range sm.games {
		scores[i] = g.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}
