package game

import "math/rand/v2"

// Regras fixas da quadra.
const (
	MaxScore = 99
	MaxLives = 3

	// Linha a partir da qual a bola pode tocar o alvo (-x) ou a raquete (+x).
	CollisionX = 0.94

	PaddleHalfHeight = 0.15
	// Alcance da raquete: meia altura mais o raio da bola.
	PaddleReach  = 0.17
	BallHalfSize = 0.02

	LaunchSpeed = 1.5
	// Ganho vertical do rebote em função da distância ao centro da raquete.
	ReturnGain = 1.5

	TargetStartSize = 1.2
	TargetShrink    = 0.9
	TargetMinSize   = 0.05
	TargetMargin    = 0.02
)

// Status é derivado de Score e Lives; Won e Lost são terminais.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Rand é a fonte uniforme em [0,1). *rand.Rand de math/rand/v2 serve.
type Rand interface {
	Float32() float32
}

// NewRand devolve um gerador PCG com a semente dada.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

type Ball struct {
	Pos      Vec2
	Vel      Vec2
	InFlight bool
}

type Paddle struct {
	Pos Vec2
}

// Target fica colado na parede esquerda; Size é a altura total.
type Target struct {
	Pos  Vec2
	Size float32
}

// State é o agregado de entidades de uma partida. Só o Simulator escreve nele.
type State struct {
	Ball   Ball
	Paddle Paddle
	Target Target
	Score  int
	Lives  int
}

// NewState monta o início da partida, sorteando a altura do alvo.
func NewState(rng Rand) State {
	return State{
		Paddle: Paddle{Pos: Vec2{X: 1}},
		Target: Target{
			Pos:  Vec2{X: -1, Y: rollTargetY(TargetStartSize, rng)},
			Size: TargetStartSize,
		},
		Lives: MaxLives,
	}
}

func (s *State) Status() Status {
	switch {
	case s.Score >= MaxScore:
		return Won
	case s.Lives <= 0:
		return Lost
	default:
		return Playing
	}
}

// rollTargetY sorteia o centro do alvo deixando size/2 de margem nas duas
// paredes, então o alvo nunca sai da quadra.
func rollTargetY(size float32, rng Rand) float32 {
	return rng.Float32()*(2-size) + size/2 - 1
}
