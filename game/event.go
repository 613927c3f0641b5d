package game

// Comandos abstratos que a camada de entrada entrega a cada quadro.
type EventType int

const (
	EventCursorMoved EventType = iota
	EventLaunch
	EventQuit
)

func (t EventType) String() string {
	switch t {
	case EventCursorMoved:
		return "cursor_moved"
	case EventLaunch:
		return "launch"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

type Event struct {
	Type EventType
	// Y em coordenadas da quadra, só para EventCursorMoved.
	Y float32
}

var (
	LaunchRequested = Event{Type: EventLaunch}
	QuitRequested   = Event{Type: EventQuit}
)

func CursorMoved(y float32) Event {
	return Event{Type: EventCursorMoved, Y: y}
}

// CursorToCourt converte a linha do cursor (pixels, 0 no topo) para y da
// quadra. Não limita: cursor fora da janela vira y fora de [-1,1].
func CursorToCourt(pixelY, height float32) float32 {
	return (pixelY+0.5)/height*-2 + 1
}
