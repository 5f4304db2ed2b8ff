package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gridsnake/game"
	"gridsnake/session"
	"gridsnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = random)")
	autopilot := flag.Bool("autopilot", false, "Let the computer steer")
	scale := flag.Int("scale", 1, "Window pixels per board unit")
	fps := flag.Int("fps", 60, "Render frames per second")
	flag.Parse()

	cfg := game.DefaultConfig()
	cfg.Seed = *seed
	g, err := game.NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(os.Stderr, "snake: ", log.LstdFlags)
	s := session.New(g, session.Options{Logger: logger, Autopilot: *autopilot})

	renderer := ui.NewRenderer(*scale)
	w, h := renderer.WindowSize(cfg.Width, cfg.Height)
	rl.InitWindow(w, h, "Snake Game")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(*fps))

	for !rl.WindowShouldClose() {
		for _, cmd := range ui.PollCommands() {
			if s.Handle(cmd) {
				return
			}
		}
		s.Advance(time.Now())
		renderer.Draw(s.Frame())
	}
}
