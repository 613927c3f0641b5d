package game

import "math"

// Vec2 é um ponto (ou velocidade) nas coordenadas da quadra, [-1,1]x[-1,1]
// com y crescendo para cima.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func abs(f float32) float32 {
	return float32(math.Abs(float64(f)))
}
