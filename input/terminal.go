package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/wvoliveira/tennis/game"
)

// Terminal traduz eventos do tcell; precisa do número de linhas atual para
// converter a linha do mouse em y da quadra.
type Terminal struct {
	rows    int
	pressed bool
}

func NewTerminal(rows int) *Terminal {
	return &Terminal{rows: rows}
}

func (in *Terminal) Resize(rows int) {
	in.rows = rows
}

func (in *Terminal) Translate(ev tcell.Event, status game.Status) []game.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC || (e.Key() == tcell.KeyRune && e.Rune() == 'q') {
			return []game.Event{game.QuitRequested}
		}
		if e.Key() == tcell.KeyRune && e.Rune() == ' ' {
			return []game.Event{Click(status)}
		}
	case *tcell.EventMouse:
		_, y := e.Position()
		events := []game.Event{game.CursorMoved(game.CursorToCourt(float32(y), float32(in.rows)))}

		// tcell repete o botão enquanto ele está apertado; só a borda conta.
		down := e.Buttons()&tcell.Button1 != 0
		if down && !in.pressed {
			events = append(events, Click(status))
		}
		in.pressed = down
		return events
	}
	return nil
}
