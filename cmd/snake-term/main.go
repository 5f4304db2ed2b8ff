package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gridsnake/game"
	"gridsnake/input"
	"gridsnake/session"
	"gridsnake/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = random)")
	autopilot := flag.Bool("autopilot", false, "Let the computer steer")
	logFile := flag.String("log", "", "Write session log to this file")
	flag.Parse()

	if err := run(*seed, *autopilot, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
}

func run(seed uint64, autopilot bool, logFile string) error {
	cfg := game.DefaultConfig()
	cfg.Seed = seed
	g, err := game.NewGame(cfg)
	if err != nil {
		return err
	}

	// The screen owns the terminal, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "snake: ", log.LstdFlags)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	cols, rows := g.Grid().Dimensions()
	bw, bh := term.BoardSize(cols, rows)
	if w, h := screen.Size(); w < bw || h < bh {
		logger.Printf("terminal %dx%d is smaller than the %dx%d board", w, h, bw, bh)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmds := make(chan input.Command, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			var cmd input.Command
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd = term.KeyCommand(ev.Key(), ev.Rune())
			case *tcell.EventResize:
				screen.Sync()
				continue
			default:
				continue
			}
			if cmd == input.None {
				continue
			}
			select {
			case cmds <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}()

	s := session.New(g, session.Options{Logger: logger, Autopilot: autopilot})
	renderer := term.NewRenderer(screen)
	err = s.Run(ctx, cmds, renderer.Draw)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
