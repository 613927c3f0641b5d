// Package window liga o jogo ao ebiten: pinta a cena composta e lê mouse e
// teclado uma vez por quadro.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/wvoliveira/tennis/configs"
	"github.com/wvoliveira/tennis/game"
	"github.com/wvoliveira/tennis/input"
	"github.com/wvoliveira/tennis/render"
	"github.com/wvoliveira/tennis/scene"
)

// Setup aplica título, tamanho e sincronia de tela. Update roda uma vez por
// quadro exibido e o cursor fica escondido sobre a quadra.
func Setup(cfg configs.Config) {
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetWindowClosingHandled(true)
}

// Renderer desenha retângulos da quadra numa imagem do ebiten. Não guarda
// nada entre quadros; a troca de buffers fica com o próprio ebiten.
type Renderer struct {
	view render.Viewport
	face text.Face
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		view: render.Viewport{Width: float32(width), Height: float32(height)},
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, rects []scene.Rect) {
	screen.Fill(color.Black)
	for _, rc := range rects {
		x, y, w, h := r.view.ToScreen(rc)
		vector.FillRect(screen, x, y, w, h, rc.Color, false)
	}
}

// Help escreve uma linha de ajuda no rodapé.
func (r *Renderer) Help(screen *ebiten.Image, msg string) {
	if msg == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, float64(r.view.Height)-20)
	op.ColorScale.ScaleWithColor(color.Gray{0xa0})
	text.Draw(screen, msg, r.face, op)
}

// Input lê o ebiten e devolve os comandos do quadro.
type Input struct {
	cursor *input.Cursor
}

func NewInput(height int) *Input {
	return &Input{cursor: input.NewCursor(height)}
}

func (in *Input) Poll(status game.Status) []game.Event {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return []game.Event{game.QuitRequested}
	}

	var events []game.Event
	_, y := ebiten.CursorPosition()
	if ev, ok := in.cursor.Move(y); ok {
		events = append(events, ev)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, input.Click(status))
	}
	return events
}
