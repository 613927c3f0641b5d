package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wvoliveira/tennis/configs"
	"github.com/wvoliveira/tennis/game"
	"github.com/wvoliveira/tennis/input"
	"github.com/wvoliveira/tennis/scene"
	"github.com/wvoliveira/tennis/window"
)

// Game roda a partida inteira no mesmo processo: entrada, passo, cena.
type Game struct {
	cfg   configs.Config
	sim   *game.Simulator
	state game.State
	clock *game.Clock
	input *window.Input
	view  *window.Renderer
}

func (g *Game) Update() error {
	// Eventos do quadro primeiro, depois um único passo.
	events := g.input.Poll(g.state.Status())
	if g.sim.Advance(&g.state, g.clock.Tick(), events) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen, scene.Compose(&g.state))
	g.view.Help(screen, input.Hint(g.state.Status(), g.state.Ball.InFlight))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

func main() {
	cfg, err := configs.Load()
	if err != nil {
		slog.Error("error to load config", "error", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger(os.Stderr)

	sim := game.NewSimulator(game.NewRand(cfg.RandSeed()), game.WithMaxStep(cfg.MaxStep), game.WithLogger(logger))
	g := &Game{
		cfg:   cfg,
		sim:   sim,
		state: sim.NewState(),
		clock: game.NewClock(),
		input: window.NewInput(cfg.ScreenHeight),
		view:  window.NewRenderer(cfg.ScreenWidth, cfg.ScreenHeight),
	}

	window.Setup(cfg)
	if err := ebiten.RunGame(g); err != nil {
		slog.Error("error to run game", "error", err)
		os.Exit(1)
	}
	slog.Info("bye", "score", g.state.Score, "status", g.state.Status())
}
