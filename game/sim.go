package game

import (
	"log/slog"
	"math"
)

const (
	// DefaultMaxStep limita cada fatia de integração; a bola anda no máximo
	// ~0.02 por fatia, menos que a faixa de colisão de 0.06.
	DefaultMaxStep float32 = 1.0 / 120
	// Travadas maiores que isso (arrastar a janela, breakpoint) são descartadas.
	maxElapsed float32 = 0.25
)

// Simulator avança o State. Guarda só os colaboradores (aleatório, log);
// o estado em si é passado por referência a cada chamada.
type Simulator struct {
	rng     Rand
	maxStep float32
	log     *slog.Logger
}

type Option func(*Simulator)

// WithMaxStep troca o tamanho máximo da fatia de integração. Zero desliga o
// fatiamento e o corte de elapsed: um único passo de Euler por quadro.
func WithMaxStep(step float32) Option {
	return func(s *Simulator) {
		s.maxStep = step
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		s.log = l
	}
}

func NewSimulator(rng Rand, opts ...Option) *Simulator {
	s := &Simulator{
		rng:     rng,
		maxStep: DefaultMaxStep,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewState começa uma partida usando a fonte aleatória do simulador.
func (s *Simulator) NewState() State {
	return NewState(s.rng)
}

// Advance aplica os eventos do quadro e depois a física de elapsed segundos.
// Devolve true se houve pedido de saída; nesse caso nada mais é processado.
func (s *Simulator) Advance(st *State, elapsed float32, events []Event) bool {
	for _, ev := range events {
		if ev.Type == EventQuit {
			return true
		}
	}
	for _, ev := range events {
		s.apply(st, ev)
	}

	if !st.Ball.InFlight || st.Status() != Playing {
		return false
	}

	// NaN e negativos viram zero.
	if !(elapsed > 0) {
		elapsed = 0
	}

	steps, dt := 1, elapsed
	if s.maxStep > 0 {
		elapsed = min(elapsed, maxElapsed)
		if elapsed > s.maxStep {
			steps = int(math.Ceil(float64(elapsed / s.maxStep)))
			dt = elapsed / float32(steps)
		} else {
			dt = elapsed
		}
	}

	for i := 0; i < steps && st.Ball.InFlight && st.Status() == Playing; i++ {
		s.step(st, dt)
	}
	return false
}

func (s *Simulator) apply(st *State, ev Event) {
	if st.Status() != Playing {
		return
	}
	switch ev.Type {
	case EventCursorMoved:
		st.Paddle.Pos.Y = ev.Y
	case EventLaunch:
		if st.Ball.InFlight {
			return
		}
		st.Ball.Vel = Vec2{X: LaunchSpeed, Y: s.rng.Float32()*2*LaunchSpeed - LaunchSpeed}
		st.Ball.InFlight = true
		s.log.Debug("ball launched", "vx", st.Ball.Vel.X, "vy", st.Ball.Vel.Y)
	}
}

// step é um passo de Euler seguido das colisões. A ordem dos testes importa
// nas bordas: alvo, raquete, parede esquerda, fundo (perda), teto e chão.
// Os testes são independentes; depois de um reset a bola está na origem e
// nenhum dos seguintes dispara.
func (s *Simulator) step(st *State, dt float32) {
	b := &st.Ball
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	// Alvo
	if b.Pos.X <= -CollisionX && abs(b.Pos.Y-st.Target.Pos.Y) <= st.Target.Size/2+TargetMargin {
		s.hitTarget(st)
	}

	// Raquete
	offset := b.Pos.Y - st.Paddle.Pos.Y
	if b.Pos.X >= CollisionX && abs(offset) <= PaddleReach {
		b.Vel.X = -b.Vel.X
		b.Vel.Y = ReturnGain * offset / PaddleHalfHeight
	}

	// Parede esquerda (bola passou raspando o alvo)
	if b.Pos.X < -1 {
		b.Vel.X = abs(b.Vel.X)
	}

	// Passou da raquete
	if b.Pos.X > 1 {
		s.miss(st)
	}

	// Teto/Chão
	if b.Pos.Y < -1 {
		b.Vel.Y = abs(b.Vel.Y)
	}
	if b.Pos.Y > 1 {
		b.Vel.Y = -abs(b.Vel.Y)
	}
}

func (s *Simulator) hitTarget(st *State) {
	if st.Score < MaxScore {
		st.Score++
	}
	resetBall(&st.Ball)

	st.Target.Size = max(st.Target.Size*TargetShrink, TargetMinSize)
	st.Target.Pos = Vec2{X: -1, Y: rollTargetY(st.Target.Size, s.rng)}

	s.log.Debug("target hit", "score", st.Score, "target_size", st.Target.Size)
	if st.Status() == Won {
		s.log.Info("game won", "score", st.Score)
	}
}

func (s *Simulator) miss(st *State) {
	if st.Lives > 0 {
		st.Lives--
	}
	resetBall(&st.Ball)

	s.log.Debug("ball missed", "lives", st.Lives)
	if st.Status() == Lost {
		s.log.Info("game lost", "score", st.Score)
	}
}

func resetBall(b *Ball) {
	b.Pos = Vec2{}
	b.Vel = Vec2{}
	b.InFlight = false
}
