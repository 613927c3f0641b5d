package main

import (
	"log/slog"
	"os"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wvoliveira/tennis/configs"
	"github.com/wvoliveira/tennis/game"
	"github.com/wvoliveira/tennis/input"
	"github.com/wvoliveira/tennis/wire"
	"github.com/wvoliveira/tennis/window"
)

// Game só desenha o último quadro recebido e repassa a entrada; a partida
// roda no servidor.
type Game struct {
	ws    *websocket.Conn
	cfg   configs.Config
	input *window.Input
	view  *window.Renderer

	mu    sync.Mutex
	frame wire.Frame
}

func (g *Game) latest() wire.Frame {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.frame
}

func (g *Game) store(f wire.Frame) {
	g.mu.Lock()
	defer g.mu.Unlock()
	// Quadro atrasado não substitui um mais novo.
	if f.Seq > g.frame.Seq {
		g.frame = f
	}
}

func (g *Game) Update() error {
	frame := g.latest()
	events := g.input.Poll(frame.Status)

	quit := false
	for _, ev := range events {
		if ev.Type == game.EventQuit {
			quit = true
		}
		data, err := wire.Encode(wire.Input{Event: ev})
		if err != nil {
			slog.Error("error to encode input", "error", err)
			continue
		}
		if err := g.ws.WriteMessage(websocket.BinaryMessage, data); err != nil {
			return err
		}
	}
	if quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.latest()
	g.view.Draw(screen, frame.Rects)

	if frame.Seq == 0 {
		g.view.Help(screen, "waiting for server...")
		return
	}
	g.view.Help(screen, input.Hint(frame.Status, frame.InFlight))
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
	cfg.NewLogger(os.Stderr)
	serverURL := cfg.ServerURL()

	// Conecta ao servidor
	ws, _, err := websocket.DefaultDialer.Dial(serverURL, nil)
	if err != nil {
		slog.Error("error to connect", "url", serverURL, "error", err)
		os.Exit(1)
	}

	defer ws.Close()

	g := &Game{
		ws:    ws,
		cfg:   cfg,
		input: window.NewInput(cfg.ScreenHeight),
		view:  window.NewRenderer(cfg.ScreenWidth, cfg.ScreenHeight),
	}

	// Goroutine para receber atualizações do servidor
	go func() {
		for {
			msgType, msgData, err := ws.ReadMessage()
			if err != nil {
				slog.Info("disconnected from server", "error", err)
				return
			}
			if msgType != websocket.BinaryMessage {
				continue
			}
			var frame wire.Frame
			if err := wire.Decode(msgData, &frame); err != nil {
				slog.Debug("dropping bad frame", "error", err)
				continue
			}
			g.store(frame)
		}
	}()

	window.Setup(cfg)
	if err := ebiten.RunGame(g); err != nil {
		slog.Error("error to run game", "error", err)
		os.Exit(1)
	}
}
