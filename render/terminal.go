package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/wvoliveira/tennis/scene"
)

// Terminal pinta cada retângulo como células com fundo colorido.
type Terminal struct {
	screen     tcell.Screen
	background tcell.Style
}

func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:     screen,
		background: tcell.StyleDefault.Background(tcell.ColorBlack),
	}
}

// Draw redesenha o quadro inteiro no buffer; Present o mostra.
func (t *Terminal) Draw(rects []scene.Rect) {
	cols, rows := t.screen.Size()
	view := Viewport{Width: float32(cols), Height: float32(rows)}

	t.screen.Fill(' ', t.background)
	for _, r := range rects {
		style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r.Color.R), int32(r.Color.G), int32(r.Color.B)))
		x0, y0, x1, y1 := view.Cells(r)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				t.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

func (t *Terminal) Present() {
	t.screen.Show()
}
