// Package wire define as mensagens trocadas entre servidor e clientes pelo
// websocket, codificadas em gob.
package wire

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/wvoliveira/tennis/game"
	"github.com/wvoliveira/tennis/scene"
)

// Frame é um quadro completo: o cliente descarta o anterior e desenha este.
type Frame struct {
	Seq      uint64
	Status   game.Status
	Score    int
	Lives    int
	InFlight bool
	Rects    []scene.Rect
}

// Input é um comando do cliente; o servidor o entrega ao simulador no
// próximo tick.
type Input struct {
	Event game.Event
}

func NewFrame(seq uint64, st *game.State) Frame {
	return Frame{
		Seq:      seq,
		Status:   st.Status(),
		Score:    st.Score,
		Lives:    st.Lives,
		InFlight: st.Ball.InFlight,
		Rects:    scene.Compose(st),
	}
}

func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	return buf.Bytes(), nil
}

func Decode(data []byte, v any) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
		return fmt.Errorf("decode %T: %w", v, err)
	}
	return nil
}
