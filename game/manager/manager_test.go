package manager

import (
	"testing"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

func newGrid(t *testing.T) types.Grid {
	t.Helper()
	g, err := types.NewGrid(types.Width, types.Height, types.CellSize, 99)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(newGrid(t))
	snake := entity.NewSnake(
		types.Point{X: 3, Y: 3},
		types.Point{X: 3, Y: 4},
		types.Point{X: 3, Y: 5},
	)

	tests := []struct {
		name string
		pos  types.Point
		want types.CollisionType
	}{
		{"free cell", types.Point{X: 3, Y: 2}, types.NoCollision},
		{"left wall", types.Point{X: -1, Y: 3}, types.WallCollision},
		{"bottom wall", types.Point{X: 3, Y: 25}, types.WallCollision},
		{"neck", types.Point{X: 3, Y: 4}, types.SelfCollision},
		{"tail", types.Point{X: 3, Y: 5}, types.SelfCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.CheckCollision(tt.pos, snake); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFoodManagerIgnoresSnake(t *testing.T) {
	grid := newGrid(t)
	fm := NewFoodManager(grid, types.Point{X: 5, Y: 5})
	if fm.GetFood() != (types.Point{X: 5, Y: 5}) {
		t.Fatalf("Expected initial food (5,5), got %v", fm.GetFood())
	}
	for i := 0; i < 200; i++ {
		food := fm.GenerateFood()
		if !grid.InBounds(food) {
			t.Fatalf("Food out of bounds: %v", food)
		}
		if fm.GetFood() != food {
			t.Fatalf("GetFood %v does not match generated %v", fm.GetFood(), food)
		}
	}
}

func TestSpeedManagerFloor(t *testing.T) {
	sm := NewSpeedManager(types.InitialSpeed, types.SpeedStep, types.MinSpeed)

	if !sm.Accelerate() || sm.GetSpeed() != 190*time.Millisecond {
		t.Fatalf("Expected 190ms after one food, got %v", sm.GetSpeed())
	}
	for i := 0; i < 100; i++ {
		sm.Accelerate()
	}
	if sm.GetSpeed() != types.MinSpeed {
		t.Errorf("Expected floor %v, got %v", types.MinSpeed, sm.GetSpeed())
	}
	if sm.Accelerate() {
		t.Error("Accelerate at the floor must report no change")
	}

	sm.Reset()
	if sm.GetSpeed() != types.InitialSpeed {
		t.Errorf("Expected %v after reset, got %v", types.InitialSpeed, sm.GetSpeed())
	}
}

func TestSpeedManagerClampsUnevenStep(t *testing.T) {
	sm := NewSpeedManager(65*time.Millisecond, 10*time.Millisecond, 50*time.Millisecond)
	sm.Accelerate()
	sm.Accelerate()
	if sm.GetSpeed() != 50*time.Millisecond {
		t.Errorf("Expected 50ms, got %v", sm.GetSpeed())
	}
}

func TestStatsManager(t *testing.T) {
	sm := NewStatsManager()
	if sm.GetAverageScore() != 0 || sm.GetMedianScore() != 0 {
		t.Fatal("Empty stats must report zero")
	}
	if _, ok := sm.LastGame(); ok {
		t.Fatal("Empty stats must have no last game")
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, score := range []int{3, 9, 1, 5} {
		sm.AddGame(GameRecord{Score: score, StartTime: start, EndTime: start.Add(time.Minute)})
	}

	if sm.GetHighScore() != 9 {
		t.Errorf("Expected high score 9, got %d", sm.GetHighScore())
	}
	if sm.GetAverageScore() != 4.5 {
		t.Errorf("Expected average 4.5, got %v", sm.GetAverageScore())
	}
	if sm.GetMedianScore() != 4 {
		t.Errorf("Expected median 4, got %v", sm.GetMedianScore())
	}
	last, ok := sm.LastGame()
	if !ok || last.Score != 5 {
		t.Fatalf("Expected last game with score 5, got %+v ok=%v", last, ok)
	}
	if d := last.Duration(); d != time.Minute {
		t.Errorf("Expected 1m duration, got %v", d)
	}
}

func TestStatsManagerCapsHistory(t *testing.T) {
	sm := NewStatsManager()
	sm.AddGame(GameRecord{Score: 1000})
	for i := 0; i < MaxRecords; i++ {
		sm.AddGame(GameRecord{Score: 1})
	}

	// The 1000-point game has rolled out of the history.
	if avg := sm.GetAverageScore(); avg != 1 {
		t.Errorf("Expected average 1 over the retained records, got %v", avg)
	}
	if sm.GetTotalGames() != MaxRecords+1 {
		t.Errorf("Expected %d total games, got %d", MaxRecords+1, sm.GetTotalGames())
	}
	if sm.GetHighScore() != 1000 {
		t.Errorf("High score must survive eviction, got %d", sm.GetHighScore())
	}
}
