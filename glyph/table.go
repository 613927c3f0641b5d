package glyph

import (
	"image/color"

	"github.com/wvoliveira/tennis/game"
)

type segment uint8

const (
	segUpperLeft segment = 1 << iota
	segLowerLeft
	segBottom
	segLowerRight
	segUpperRight
	segTop
	segMiddle
)

// Caixa de cada segmento numa grade 4x7; a ordem aqui é a ordem de desenho.
var segments = [...]struct {
	seg            segment
	x0, y0, x1, y1 float64
}{
	{segUpperLeft, 0, 4, 1, 6},
	{segLowerLeft, 0, 1, 1, 3},
	{segBottom, 1, 0, 3, 1},
	{segLowerRight, 3, 1, 4, 3},
	{segUpperRight, 3, 4, 4, 6},
	{segTop, 1, 6, 3, 7},
	{segMiddle, 1, 3, 3, 4},
}

const segAll = segUpperLeft | segLowerLeft | segBottom | segLowerRight | segUpperRight | segTop | segMiddle

var digitSegments = [10]segment{
	0: segAll &^ segMiddle,
	1: segLowerRight | segUpperRight,
	2: segLowerLeft | segBottom | segUpperRight | segTop | segMiddle,
	3: segBottom | segLowerRight | segUpperRight | segTop | segMiddle,
	4: segUpperLeft | segLowerRight | segUpperRight | segMiddle,
	5: segUpperLeft | segBottom | segLowerRight | segTop | segMiddle,
	6: segAll &^ segUpperRight,
	7: segLowerRight | segUpperRight | segTop,
	8: segAll,
	9: segAll &^ segLowerLeft,
}

// placement posiciona a grade: unit é o lado de uma célula, (x, y) o canto
// inferior esquerdo.
type placement struct {
	unit, x, y float64
}

var slotPlacement = [2][2]placement{
	StyleHUD: {
		Tens:  {unit: 0.01, x: -0.99, y: 0.92},
		Units: {unit: 0.01, x: -0.94, y: 0.92},
	},
	StyleBanner: {
		Tens:  {unit: 0.1, x: -0.5, y: -0.7},
		Units: {unit: 0.1, x: 0.1, y: -0.7},
	},
}

var livesPlacement = placement{unit: 0.01, x: 0.95, y: 0.92}

// Tabelas montadas uma vez no init; só leitura depois disso.
var (
	digits [2][2][10][]Rect
	lives  [4][]Rect
)

func init() {
	for style, slots := range slotPlacement {
		for slot, p := range slots {
			for d, segs := range digitSegments {
				digits[style][slot][d] = layout(segs, p, Blue)
			}
		}
	}
	for n := range lives {
		lives[n] = layout(digitSegments[n], livesPlacement, Red)
	}
}

func layout(segs segment, p placement, c color.RGBA) []Rect {
	var out []Rect
	for _, s := range segments {
		if segs&s.seg == 0 {
			continue
		}
		out = append(out, Rect{
			Min:   game.Vec2{X: float32(p.x + s.x0*p.unit), Y: float32(p.y + s.y0*p.unit)},
			Max:   game.Vec2{X: float32(p.x + s.x1*p.unit), Y: float32(p.y + s.y1*p.unit)},
			Color: c,
		})
	}
	return out
}

func r(x0, y0, x1, y1 float32, c color.RGBA) Rect {
	return Rect{Min: game.Vec2{X: x0, Y: y0}, Max: game.Vec2{X: x1, Y: y1}, Color: c}
}

var winBanner = []Rect{
	// W
	r(-0.45, 0.3, -0.35, 0.7, Green),
	r(-0.55, 0.2, -0.45, 0.3, Green),
	r(-0.65, 0.3, -0.55, 0.5, Green),
	r(-0.75, 0.2, -0.65, 0.3, Green),
	r(-0.85, 0.3, -0.75, 0.7, Green),
	// I
	r(-0.25, 0.6, 0.25, 0.7, Green),
	r(-0.05, 0.3, 0.05, 0.6, Green),
	r(-0.25, 0.2, 0.25, 0.3, Green),
	// N
	r(0.35, 0.2, 0.45, 0.6, Green),
	r(0.45, 0.6, 0.55, 0.7, Green),
	r(0.55, 0.3, 0.65, 0.6, Green),
	r(0.65, 0.2, 0.75, 0.3, Green),
	r(0.75, 0.3, 0.85, 0.7, Green),
}

var lossBanner = []Rect{
	// L
	r(-0.87, 0.2, -0.55, 0.28, Red),
	r(-0.95, 0.28, -0.87, 0.6, Red),
	// O
	r(-0.37, 0.2, -0.12, 0.28, Red),
	r(-0.37, 0.52, -0.12, 0.6, Red),
	r(-0.45, 0.28, -0.37, 0.52, Red),
	r(-0.12, 0.28, -0.05, 0.52, Red),
	// S
	r(0.13, 0.2, 0.37, 0.28, Red),
	r(0.13, 0.36, 0.37, 0.44, Red),
	r(0.13, 0.52, 0.37, 0.6, Red),
	r(0.05, 0.44, 0.13, 0.52, Red),
	r(0.37, 0.28, 0.45, 0.36, Red),
	// S
	r(0.63, 0.2, 0.87, 0.28, Red),
	r(0.63, 0.36, 0.87, 0.44, Red),
	r(0.63, 0.52, 0.87, 0.6, Red),
	r(0.55, 0.44, 0.63, 0.52, Red),
	r(0.87, 0.28, 0.95, 0.36, Red),
}
