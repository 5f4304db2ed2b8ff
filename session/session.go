// Package session drives a game: it owns the tick schedule, dispatches user
// commands and records finished games.
package session

import (
	"context"
	"log"
	"time"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/input"
)

// Clock provides the current time. Tests swap in a fixed clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures a Session. The zero value is usable.
type Options struct {
	Logger    *log.Logger
	Clock     Clock
	Autopilot bool
}

// Frame is what a renderer needs to draw one screen.
type Frame struct {
	Snapshot     game.Snapshot
	HighScore    int
	AverageScore float64
	MedianScore  float64
	Games        int
	Autopilot    bool
}

// Session is the single mutator of its game. It is not safe for concurrent
// use; Run serializes ticks and commands on one goroutine.
type Session struct {
	game   *game.Game
	pilot  *game.Autopilot
	stats  *manager.StatsManager
	clock  Clock
	logger *log.Logger

	autopilot bool
	armed     bool
	deadline  time.Time
	started   time.Time
}

func New(g *game.Game, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	s := &Session{
		game:      g,
		pilot:     game.NewAutopilot(g),
		stats:     manager.NewStatsManager(),
		clock:     opts.Clock,
		logger:    opts.Logger,
		autopilot: opts.Autopilot,
	}
	now := s.clock.Now()
	s.started = now
	s.arm(now)
	s.logger.Printf("session %s: started, tick every %v", g.SessionID(), g.Speed())
	return s
}

func (s *Session) Stats() *manager.StatsManager {
	return s.stats
}

func (s *Session) Autopilot() bool {
	return s.autopilot
}

// Frame captures the current state for drawing.
func (s *Session) Frame() Frame {
	return Frame{
		Snapshot:     s.game.Snapshot(),
		HighScore:    s.stats.GetHighScore(),
		AverageScore: s.stats.GetAverageScore(),
		MedianScore:  s.stats.GetMedianScore(),
		Games:        s.stats.GetTotalGames(),
		Autopilot:    s.autopilot,
	}
}

// Deadline returns when the next tick is due. ok is false while the game is
// paused or over.
func (s *Session) Deadline() (deadline time.Time, ok bool) {
	return s.deadline, s.armed
}

// Handle applies one command and reports whether the user asked to quit.
func (s *Session) Handle(cmd input.Command) (quit bool) {
	now := s.clock.Now()
	switch cmd {
	case input.Quit:
		return true
	case input.Autopilot:
		s.autopilot = !s.autopilot
		s.logger.Printf("session %s: autopilot %v", s.game.SessionID(), s.autopilot)
	case input.Reset:
		s.abandon(now)
		input.Apply(s.game, cmd)
		s.started = now
		s.arm(now)
		s.logger.Printf("session %s: reset", s.game.SessionID())
	case input.TogglePause:
		input.Apply(s.game, cmd)
		if s.game.Status() == types.Running {
			s.arm(now)
		} else {
			s.armed = false
		}
	default:
		input.Apply(s.game, cmd)
	}
	return false
}

// Advance ticks the game if a tick is due at now. The next tick is scheduled
// one interval after now, using the speed the tick left behind.
func (s *Session) Advance(now time.Time) (game.TickResult, bool) {
	if !s.armed || now.Before(s.deadline) {
		return game.TickResult{}, false
	}
	if s.game.Status() != types.Running {
		s.armed = false
		return game.TickResult{}, false
	}

	if s.autopilot {
		s.game.SetDirection(s.pilot.Choose())
	}
	res := s.game.Tick()

	if res.Collision != types.NoCollision {
		s.armed = false
		rec := s.record(s.game.Snapshot(), now)
		s.logger.Printf("session %s: game over (%s collision), score %d after %d steps in %v; avg %.1f, median %.1f over %d games",
			rec.SessionID, res.Collision, rec.Score, rec.Steps, rec.Duration().Round(time.Millisecond),
			s.stats.GetAverageScore(), s.stats.GetMedianScore(), s.stats.GetTotalGames())
		return res, true
	}
	if res.SpeedChanged {
		s.logger.Printf("session %s: speed now %v", s.game.SessionID(), s.game.Speed())
	}
	s.arm(now)
	return res, true
}

// Run drives the session from a timer until the context ends, the command
// channel closes, or a Quit arrives. draw is called after the initial state
// and after every command and tick, from Run's goroutine.
func (s *Session) Run(ctx context.Context, cmds <-chan input.Command, draw func(Frame)) error {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	reschedule := func() {
		timer.Stop()
		if deadline, ok := s.Deadline(); ok {
			wait := deadline.Sub(s.clock.Now())
			if wait < 0 {
				wait = 0
			}
			timer.Reset(wait)
		}
	}

	reschedule()
	draw(s.Frame())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-cmds:
			if !ok {
				return nil
			}
			if s.Handle(cmd) {
				return nil
			}
		case <-timer.C:
			s.Advance(s.clock.Now())
		}
		reschedule()
		draw(s.Frame())
	}
}

func (s *Session) arm(now time.Time) {
	s.armed = true
	s.deadline = now.Add(s.game.Speed())
}

// abandon records a game that is being reset before it ended.
func (s *Session) abandon(now time.Time) {
	snap := s.game.Snapshot()
	if snap.Status == types.GameOver || snap.Steps == 0 {
		return
	}
	s.record(snap, now)
}

func (s *Session) record(snap game.Snapshot, now time.Time) manager.GameRecord {
	rec := manager.GameRecord{
		SessionID: snap.SessionID,
		StartTime: s.started,
		EndTime:   now,
		Score:     snap.Score,
		Steps:     snap.Steps,
	}
	s.stats.AddGame(rec)
	return rec
}
