// Package render pinta a cena composta numa janela (ebiten) ou num
// terminal (tcell). Os dois só conhecem retângulos já prontos.
package render

import (
	"math"

	"github.com/wvoliveira/tennis/scene"
)

// Viewport mapeia a quadra [-1,1]x[-1,1] (y para cima) numa superfície de
// Width x Height com origem no canto superior esquerdo.
type Viewport struct {
	Width, Height float32
}

// ToScreen devolve canto superior esquerdo, largura e altura de r.
func (v Viewport) ToScreen(r scene.Rect) (x, y, w, h float32) {
	x = (r.Min.X + 1) / 2 * v.Width
	y = (1 - r.Max.Y) / 2 * v.Height
	w = (r.Max.X - r.Min.X) / 2 * v.Width
	h = (r.Max.Y - r.Min.Y) / 2 * v.Height
	return x, y, w, h
}

// Cells devolve o intervalo [x0,x1)x[y0,y1) de células tocadas por r,
// recortado à superfície. Todo retângulo dentro dela pinta ao menos uma
// célula, senão os segmentos finos dos dígitos somem no terminal.
func (v Viewport) Cells(r scene.Rect) (x0, y0, x1, y1 int) {
	x, y, w, h := v.ToScreen(r)
	x0 = int(math.Floor(float64(x)))
	y0 = int(math.Floor(float64(y)))
	x1 = max(int(math.Ceil(float64(x+w))), x0+1)
	y1 = max(int(math.Ceil(float64(y+h))), y0+1)

	cols, rows := int(v.Width), int(v.Height)
	return min(max(x0, 0), cols), min(max(y0, 0), rows), min(max(x1, 0), cols), min(max(y1, 0), rows)
}
