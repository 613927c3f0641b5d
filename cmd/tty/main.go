package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/wvoliveira/tennis/configs"
	"github.com/wvoliveira/tennis/game"
	"github.com/wvoliveira/tennis/input"
	"github.com/wvoliveira/tennis/render"
	"github.com/wvoliveira/tennis/scene"
)

func main() {
	if err := run(); err != nil {
		slog.Error("error to run game", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configs.Load()
	if err != nil {
		return err
	}

	// O stderr é a tela; sem arquivo, o log é descartado.
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := cfg.NewLogger(logOut)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	sim := game.NewSimulator(game.NewRand(cfg.RandSeed()), game.WithMaxStep(cfg.MaxStep), game.WithLogger(logger))
	state := sim.NewState()
	clock := game.NewClock()
	term := render.NewTerminal(screen)

	_, rows := screen.Size()
	in := input.NewTerminal(rows)

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	tick := time.NewTicker(cfg.Tick)
	defer tick.Stop()

	// Eventos se acumulam entre ticks e entram todos no próximo passo.
	var pending []game.Event
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				_, rows := screen.Size()
				in.Resize(rows)
				screen.Sync()
			}
			pending = append(pending, in.Translate(ev, state.Status())...)

		case <-tick.C:
			if sim.Advance(&state, clock.Tick(), pending) {
				logger.Info("bye", "score", state.Score, "status", state.Status())
				return nil
			}
			pending = pending[:0]

			term.Draw(scene.Compose(&state))
			term.Present()
		}
	}
}
