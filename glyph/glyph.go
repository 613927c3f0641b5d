// Package glyph guarda os desenhos de placar, vidas e faixas de fim de jogo
// como conjuntos de retângulos em coordenadas da quadra. O renderizador só
// sabe pintar retângulos cheios, então os dígitos são de sete segmentos.
package glyph

import (
	"image/color"
	"slices"

	"github.com/wvoliveira/tennis/game"
)

var (
	Blue  = color.RGBA{0x00, 0x00, 0xff, 0xff}
	Red   = color.RGBA{0xff, 0x00, 0x00, 0xff}
	Green = color.RGBA{0x00, 0xff, 0x00, 0xff}
)

// Rect é um retângulo cheio dado por dois cantos opostos (Min embaixo à
// esquerda, Max em cima à direita).
type Rect struct {
	Min, Max game.Vec2
	Color    color.RGBA
}

type Style int

const (
	StyleHUD    Style = iota // placar pequeno no canto, durante o jogo
	StyleBanner              // placar grande abaixo de WIN/LOSS
)

type Slot int

const (
	Tens Slot = iota
	Units
)

// Digit devolve os segmentos do dígito d (0-9). Fora da faixa devolve nil.
func Digit(d int, style Style, slot Slot) []Rect {
	if d < 0 || d > 9 || style < StyleHUD || style > StyleBanner || slot < Tens || slot > Units {
		return nil
	}
	return slices.Clone(digits[style][slot][d])
}

// Score devolve dezenas e depois unidades de um placar 0-99.
func Score(score int, style Style) []Rect {
	if score < 0 || score > 99 {
		return nil
	}
	return append(Digit(score/10, style, Tens), Digit(score%10, style, Units)...)
}

// Lives devolve o ícone de vidas (0-3), desenhado no canto superior direito.
func Lives(n int) []Rect {
	if n < 0 || n >= len(lives) {
		return nil
	}
	return slices.Clone(lives[n])
}

// Banner devolve as letras de WIN (verde) ou LOSS (vermelho).
func Banner(won bool) []Rect {
	if won {
		return slices.Clone(winBanner)
	}
	return slices.Clone(lossBanner)
}
