package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wvoliveira/tennis/configs"
	"github.com/wvoliveira/tennis/game"
	"github.com/wvoliveira/tennis/wire"
)

// Eventos que o Game Loop aceita
type EventType int

const (
	EventInput EventType = iota
	EventJoin
	EventLeave
)

type GameEvent struct {
	Type   EventType
	Client *client
	Input  game.Event
}

// Quadros pendentes por cliente antes de ele ser derrubado (~1s a 60Hz).
const sendBuffer = 64

// Cada conexão tem seu canal de saída; o loop nunca escreve direto no socket.
type client struct {
	ws   *websocket.Conn
	send chan []byte
}

// hub é o conjunto de clientes; só o gameLoop mexe nele.
type hub struct {
	clients map[*client]int
	nextID  int
	log     *slog.Logger
}

func newHub(log *slog.Logger) *hub {
	return &hub{clients: make(map[*client]int), log: log}
}

func (h *hub) join(c *client) {
	h.nextID++
	h.clients[c] = h.nextID
	h.log.Info("player joined", "player", h.nextID, "total", len(h.clients))
}

// drop fecha o canal de saída, o que encerra o writePump do cliente.
func (h *hub) drop(c *client) {
	if id, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		h.log.Info("player left", "player", id, "total", len(h.clients))
	}
}

// broadcast enfileira msg para todos; cliente com fila cheia é derrubado.
func (h *hub) broadcast(msg []byte) {
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.drop(c)
		}
	}
}

func (h *hub) closeAll() {
	for c := range h.clients {
		h.drop(c)
	}
}

type server struct {
	cfg      configs.Config
	sim      *game.Simulator
	log      *slog.Logger
	events   chan GameEvent
	done     chan struct{} // fechado quando o gameLoop termina
	upgrader websocket.Upgrader
}

func newServer(cfg configs.Config, sim *game.Simulator, log *slog.Logger) *server {
	return &server{
		cfg:    cfg,
		sim:    sim,
		log:    log,
		events: make(chan GameEvent, 100),
		done:   make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func main() {
	cfg, err := configs.Load()
	if err != nil {
		slog.Error("error to load config", "error", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger(os.Stderr)

	sim := game.NewSimulator(game.NewRand(cfg.RandSeed()), game.WithMaxStep(cfg.MaxStep), game.WithLogger(logger))
	srv := newServer(cfg, sim, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go srv.gameLoop(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleConnections)
	httpServer := &http.Server{Addr: ":" + cfg.ServerPort, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("error to shutdown server", "error", err)
		}
	}()

	logger.Info("Server running at :" + cfg.ServerPort)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("error to listen", "error", err)
		os.Exit(1)
	}
}

func (s *server) handleConnections(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("error to upgrade to websocket", "error", err)
		return
	}

	defer ws.Close()

	c := &client{ws: ws, send: make(chan []byte, sendBuffer)}
	go writePump(c)

	// Envia evento de "Join" para a fila
	if !s.post(GameEvent{Type: EventJoin, Client: c}) {
		close(c.send)
		return
	}

	for {
		messageType, messageData, err := ws.ReadMessage()
		if err != nil {
			// Envia evento de "Leave" para a fila
			s.post(GameEvent{Type: EventLeave, Client: c})
			break
		}

		if messageType != websocket.BinaryMessage {
			continue
		}

		// Decodifica sempre num valor novo: gob não sobrescreve campos zerados.
		var in wire.Input
		if err := wire.Decode(messageData, &in); err != nil {
			s.log.Debug("dropping bad input", "error", err)
			continue
		}
		// Apenas repassa; quem aplica é o loop, no próximo tick.
		if !s.post(GameEvent{Type: EventInput, Client: c, Input: in.Event}) {
			return
		}
	}
}

// post entrega evt ao loop; devolve false se o loop já terminou.
func (s *server) post(evt GameEvent) bool {
	select {
	case s.events <- evt:
		return true
	case <-s.done:
		return false
	}
}

// writePump termina quando o loop fecha o canal de saída do cliente.
func writePump(c *client) {
	defer c.ws.Close()
	for msg := range c.send {
		if err := c.ws.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			return
		}
	}
}

func (s *server) gameLoop(ctx context.Context) {
	defer close(s.done)

	state := s.sim.NewState()
	clock := game.NewClock()
	clients := newHub(s.log)

	var (
		pending []game.Event
		seq     uint64
	)

	ticker := time.NewTicker(s.cfg.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			clients.closeAll()
			return

		// 1. Processa Eventos da Fila (Inputs, Conexões)
		case evt := <-s.events:
			switch evt.Type {
			case EventJoin:
				clients.join(evt.Client)

			case EventLeave:
				clients.drop(evt.Client)

			case EventInput:
				if _, ok := clients.clients[evt.Client]; !ok {
					continue
				}
				pending = append(pending, evt.Input)
			}

		// 2. Passagem do Tempo (Física)
		case <-ticker.C:
			// Quit de qualquer jogador encerra a partida compartilhada e
			// começa outra; o servidor continua de pé.
			if s.sim.Advance(&state, clock.Tick(), pending) {
				s.log.Info("session restarted", "score", state.Score, "status", state.Status())
				state = s.sim.NewState()
			}
			pending = pending[:0]

			if len(clients.clients) == 0 {
				continue
			}

			seq++
			msg, err := wire.Encode(wire.NewFrame(seq, &state))
			if err != nil {
				s.log.Error("error to encode frame", "error", err)
				continue
			}
			clients.broadcast(msg)
		}
	}
}
