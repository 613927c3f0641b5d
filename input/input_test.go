package input

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/wvoliveira/tennis/game"
)

func TestClick(t *testing.T) {
	tests := []struct {
		name   string
		status game.Status
		want   game.Event
	}{
		{"Serve while playing", game.Playing, game.LaunchRequested},
		{"Leave after win", game.Won, game.QuitRequested},
		{"Leave after loss", game.Lost, game.QuitRequested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Click(tt.status); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want.Type, got.Type)
			}
		})
	}
}

func TestCursorOnlyOnChange(t *testing.T) {
	in := NewCursor(640)

	ev, ok := in.Move(0)
	if !ok || ev.Type != game.EventCursorMoved || math.Abs(float64(ev.Y-(1-1.0/640))) > 1e-5 {
		t.Fatalf("Expected first cursor event near the top, got %+v ok=%v", ev, ok)
	}
	if _, ok := in.Move(0); ok {
		t.Error("Expected no event for unchanged row")
	}
	if ev, ok := in.Move(320); !ok || ev.Y >= 0 {
		t.Errorf("Expected event below center, got %+v ok=%v", ev, ok)
	}
}

func TestTerminalTranslate(t *testing.T) {
	in := NewTerminal(24)

	quit := in.Translate(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.Playing)
	if len(quit) != 1 || quit[0] != game.QuitRequested {
		t.Errorf("Expected quit on Esc, got %+v", quit)
	}

	press := in.Translate(tcell.NewEventMouse(10, 6, tcell.Button1, tcell.ModNone), game.Playing)
	if len(press) != 2 || press[0].Type != game.EventCursorMoved || press[1] != game.LaunchRequested {
		t.Fatalf("Expected cursor and launch, got %+v", press)
	}
	if want := game.CursorToCourt(6, 24); press[0].Y != want {
		t.Errorf("Expected y %v, got %v", want, press[0].Y)
	}

	held := in.Translate(tcell.NewEventMouse(10, 7, tcell.Button1, tcell.ModNone), game.Playing)
	if len(held) != 1 {
		t.Errorf("Expected only a cursor event while held, got %+v", held)
	}

	in.Translate(tcell.NewEventMouse(10, 7, tcell.ButtonNone, tcell.ModNone), game.Playing)
	again := in.Translate(tcell.NewEventMouse(10, 7, tcell.Button1, tcell.ModNone), game.Lost)
	if len(again) != 2 || again[1] != game.QuitRequested {
		t.Errorf("Expected quit on click after loss, got %+v", again)
	}

	if got := in.Translate(tcell.NewEventResize(80, 24), game.Playing); got != nil {
		t.Errorf("Expected nothing for resize, got %+v", got)
	}
}

func TestHint(t *testing.T) {
	if Hint(game.Playing, true) != "" {
		t.Error("Expected no hint during a rally")
	}
	if Hint(game.Playing, false) == "" || Hint(game.Won, false) == "" {
		t.Error("Expected hints while waiting for input")
	}
}
