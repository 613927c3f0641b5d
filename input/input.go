// Package input traduz eventos de janela e de terminal nos comandos
// abstratos do jogo (cursor, lançar, sair).
package input

import "github.com/wvoliveira/tennis/game"

// Click é o botão principal: saca durante a partida e sai depois do fim.
func Click(status game.Status) game.Event {
	if status == game.Playing {
		return game.LaunchRequested
	}
	return game.QuitRequested
}

// Cursor converte a linha do ponteiro em evento só quando ela muda, como
// um evento de movimento do sistema de janelas.
type Cursor struct {
	height float32
	lastY  int
	seen   bool
}

func NewCursor(height int) *Cursor {
	return &Cursor{height: float32(height)}
}

func (c *Cursor) Move(y int) (game.Event, bool) {
	if c.seen && y == c.lastY {
		return game.Event{}, false
	}
	c.seen, c.lastY = true, y
	return game.CursorMoved(game.CursorToCourt(float32(y), c.height)), true
}

// Hint é a linha de ajuda mostrada pelas janelas.
func Hint(status game.Status, inFlight bool) string {
	switch {
	case status != game.Playing:
		return "click or esc to quit"
	case !inFlight:
		return "click to serve  |  esc to quit"
	default:
		return ""
	}
}
