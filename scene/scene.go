// Package scene traduz o estado do jogo na lista de retângulos de um quadro.
package scene

import (
	"image/color"

	"github.com/wvoliveira/tennis/game"
	"github.com/wvoliveira/tennis/glyph"
)

type Rect = glyph.Rect

const (
	paddleWidth = 0.04
	targetWidth = 0.04
)

// Compose monta a cena inteira a partir do zero; não guarda nada entre
// quadros e não altera st. A ordem de saída é a ordem de desenho.
func Compose(st *game.State) []Rect {
	switch status := st.Status(); status {
	case game.Won, game.Lost:
		out := glyph.Banner(status == game.Won)
		return append(out, glyph.Score(st.Score, glyph.StyleBanner)...)
	}

	p, b, t := st.Paddle.Pos, st.Ball.Pos, st.Target.Pos
	half := st.Target.Size / 2

	out := make([]Rect, 0, 32)
	out = append(out,
		box(p.X-paddleWidth, p.Y-game.PaddleHalfHeight, p.X, p.Y+game.PaddleHalfHeight, glyph.Blue),
		box(b.X-game.BallHalfSize, b.Y-game.BallHalfSize, b.X+game.BallHalfSize, b.Y+game.BallHalfSize, glyph.Red),
		box(t.X, t.Y-half, t.X+targetWidth, t.Y+half, glyph.Green),
	)
	out = append(out, glyph.Lives(st.Lives)...)
	out = append(out, glyph.Score(st.Score, glyph.StyleHUD)...)
	return out
}

func box(x0, y0, x1, y1 float32, c color.RGBA) Rect {
	return Rect{Min: game.Vec2{X: x0, Y: y0}, Max: game.Vec2{X: x1, Y: y1}, Color: c}
}
