package manager

import "time"

// SpeedManager tracks the tick interval. Every food eaten shortens it by a
// fixed step until it reaches the floor.
type SpeedManager struct {
	initial time.Duration
	step    time.Duration
	min     time.Duration
	current time.Duration
}

func NewSpeedManager(initial, step, min time.Duration) *SpeedManager {
	return &SpeedManager{
		initial: initial,
		step:    step,
		min:     min,
		current: initial,
	}
}

// Accelerate applies one food's worth of speed-up and reports whether the
// interval changed.
func (sm *SpeedManager) Accelerate() bool {
	next := sm.current - sm.step
	if next < sm.min {
		next = sm.min
	}
	changed := next != sm.current
	sm.current = next
	return changed
}

func (sm *SpeedManager) GetSpeed() time.Duration {
	return sm.current
}

func (sm *SpeedManager) Reset() {
	sm.current = sm.initial
}
