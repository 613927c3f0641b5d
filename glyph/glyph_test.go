package glyph

import (
	"image/color"
	"math"
	"testing"

	"github.com/wvoliveira/tennis/game"
)

var (
	blue = Blue
	red  = Red
)

func rect(x0, y0, x1, y1 float32, c color.RGBA) Rect {
	return Rect{Min: game.Vec2{X: x0, Y: y0}, Max: game.Vec2{X: x1, Y: y1}, Color: c}
}

func sameRects(t *testing.T, got, want []Rect) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d rects, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		g, w := got[i], want[i]
		if !nearVec(g.Min, w.Min) || !nearVec(g.Max, w.Max) || g.Color != w.Color {
			t.Errorf("rect %d: expected %+v, got %+v", i, w, g)
		}
	}
}

func nearVec(a, b game.Vec2) bool {
	return math.Abs(float64(a.X-b.X)) < 1e-6 && math.Abs(float64(a.Y-b.Y)) < 1e-6
}

func TestDigitSevenHUDUnits(t *testing.T) {
	want := []Rect{
		rect(-0.91, 0.93, -0.90, 0.95, blue),
		rect(-0.91, 0.96, -0.90, 0.98, blue),
		rect(-0.93, 0.98, -0.91, 0.99, blue),
	}
	sameRects(t, Digit(7, StyleHUD, Units), want)
	// Mesma resposta em qualquer chamada.
	sameRects(t, Digit(7, StyleHUD, Units), want)
}

func TestDigitFixtures(t *testing.T) {
	tests := []struct {
		name  string
		digit int
		style Style
		slot  Slot
		want  []Rect
	}{
		{"Zero HUD tens", 0, StyleHUD, Tens, []Rect{
			rect(-0.99, 0.96, -0.98, 0.98, blue),
			rect(-0.99, 0.93, -0.98, 0.95, blue),
			rect(-0.98, 0.92, -0.96, 0.93, blue),
			rect(-0.96, 0.93, -0.95, 0.95, blue),
			rect(-0.96, 0.96, -0.95, 0.98, blue),
			rect(-0.98, 0.98, -0.96, 0.99, blue),
		}},
		{"Four HUD units", 4, StyleHUD, Units, []Rect{
			rect(-0.94, 0.96, -0.93, 0.98, blue),
			rect(-0.91, 0.93, -0.90, 0.95, blue),
			rect(-0.91, 0.96, -0.90, 0.98, blue),
			rect(-0.93, 0.95, -0.91, 0.96, blue),
		}},
		{"Two banner tens", 2, StyleBanner, Tens, []Rect{
			rect(-0.5, -0.6, -0.4, -0.4, blue),
			rect(-0.4, -0.7, -0.2, -0.6, blue),
			rect(-0.2, -0.3, -0.1, -0.1, blue),
			rect(-0.4, -0.1, -0.2, 0.0, blue),
			rect(-0.4, -0.4, -0.2, -0.3, blue),
		}},
		{"Nine banner units", 9, StyleBanner, Units, []Rect{
			rect(0.1, -0.3, 0.2, -0.1, blue),
			rect(0.2, -0.7, 0.4, -0.6, blue),
			rect(0.4, -0.6, 0.5, -0.4, blue),
			rect(0.4, -0.3, 0.5, -0.1, blue),
			rect(0.2, -0.1, 0.4, 0.0, blue),
			rect(0.2, -0.4, 0.4, -0.3, blue),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sameRects(t, Digit(tt.digit, tt.style, tt.slot), tt.want)
		})
	}
}

func TestDigitSegmentCounts(t *testing.T) {
	want := [10]int{6, 2, 5, 5, 4, 5, 6, 3, 7, 6}
	for _, style := range []Style{StyleHUD, StyleBanner} {
		for _, slot := range []Slot{Tens, Units} {
			for d, n := range want {
				if got := len(Digit(d, style, slot)); got != n {
					t.Errorf("digit %d style %d slot %d: expected %d segments, got %d", d, style, slot, n, got)
				}
			}
		}
	}
}

func TestDigitSlotsShareShape(t *testing.T) {
	for _, style := range []Style{StyleHUD, StyleBanner} {
		tens, units := Digit(8, style, Tens), Digit(8, style, Units)
		dx := units[0].Min.X - tens[0].Min.X
		for i := range tens {
			moved := Rect{
				Min:   game.Vec2{X: tens[i].Min.X + dx, Y: tens[i].Min.Y},
				Max:   game.Vec2{X: tens[i].Max.X + dx, Y: tens[i].Max.Y},
				Color: tens[i].Color,
			}
			if !nearVec(moved.Min, units[i].Min) || !nearVec(moved.Max, units[i].Max) {
				t.Errorf("style %d segment %d: tens shifted %+v, units %+v", style, i, moved, units[i])
			}
		}
	}
}

func TestLives(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  []Rect
	}{
		{"None", 0, []Rect{
			rect(0.95, 0.96, 0.96, 0.98, red),
			rect(0.95, 0.93, 0.96, 0.95, red),
			rect(0.96, 0.92, 0.98, 0.93, red),
			rect(0.98, 0.93, 0.99, 0.95, red),
			rect(0.98, 0.96, 0.99, 0.98, red),
			rect(0.96, 0.98, 0.98, 0.99, red),
		}},
		{"One", 1, []Rect{
			rect(0.98, 0.93, 0.99, 0.95, red),
			rect(0.98, 0.96, 0.99, 0.98, red),
		}},
		{"Two", 2, []Rect{
			rect(0.95, 0.93, 0.96, 0.95, red),
			rect(0.96, 0.92, 0.98, 0.93, red),
			rect(0.98, 0.96, 0.99, 0.98, red),
			rect(0.96, 0.98, 0.98, 0.99, red),
			rect(0.96, 0.95, 0.98, 0.96, red),
		}},
		{"Three", 3, []Rect{
			rect(0.96, 0.92, 0.98, 0.93, red),
			rect(0.98, 0.93, 0.99, 0.95, red),
			rect(0.98, 0.96, 0.99, 0.98, red),
			rect(0.96, 0.98, 0.98, 0.99, red),
			rect(0.96, 0.95, 0.98, 0.96, red),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sameRects(t, Lives(tt.count), tt.want)
		})
	}
}

func TestBanner(t *testing.T) {
	tests := []struct {
		name  string
		won   bool
		count int
		color color.RGBA
	}{
		{"Win", true, 13, Green},
		{"Loss", false, 16, Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Banner(tt.won)
			if len(got) != tt.count {
				t.Fatalf("Expected %d rects, got %d", tt.count, len(got))
			}
			for i, r := range got {
				if r.Color != tt.color {
					t.Errorf("rect %d: expected color %v, got %v", i, tt.color, r.Color)
				}
				// Faixa fica acima do placar grande.
				if r.Min.Y < 0.2 || r.Max.Y > 0.7 {
					t.Errorf("rect %d outside banner band: %+v", i, r)
				}
			}
		})
	}
}

func TestScore(t *testing.T) {
	got := Score(42, StyleHUD)
	want := append(Digit(4, StyleHUD, Tens), Digit(2, StyleHUD, Units)...)
	sameRects(t, got, want)

	if Score(100, StyleHUD) != nil || Score(-1, StyleBanner) != nil {
		t.Error("Expected nil for out of range score")
	}
}

func TestOutOfRange(t *testing.T) {
	if Digit(10, StyleHUD, Units) != nil || Digit(-1, StyleHUD, Tens) != nil {
		t.Error("Expected nil for digit out of range")
	}
	if Digit(1, Style(5), Tens) != nil || Digit(1, StyleHUD, Slot(2)) != nil {
		t.Error("Expected nil for unknown style or slot")
	}
	if Lives(4) != nil || Lives(-1) != nil {
		t.Error("Expected nil for lives out of range")
	}
}

func TestTableIsImmutable(t *testing.T) {
	got := Digit(3, StyleBanner, Tens)
	got[0].Min.X = 5
	if Digit(3, StyleBanner, Tens)[0].Min.X == 5 {
		t.Error("Expected table to be unaffected by caller edits")
	}

	b := Banner(true)
	b[0].Color = Red
	if Banner(true)[0].Color != Green {
		t.Error("Expected banner to be unaffected by caller edits")
	}
}

func TestAllInsideCourt(t *testing.T) {
	var all []Rect
	for d := 0; d <= 9; d++ {
		for _, style := range []Style{StyleHUD, StyleBanner} {
			all = append(all, Digit(d, style, Tens)...)
			all = append(all, Digit(d, style, Units)...)
		}
	}
	for n := 0; n <= 3; n++ {
		all = append(all, Lives(n)...)
	}
	all = append(all, Banner(true)...)
	all = append(all, Banner(false)...)

	for i, r := range all {
		if r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y {
			t.Errorf("rect %d has inverted corners: %+v", i, r)
		}
		if r.Min.X < -1 || r.Max.X > 1 || r.Min.Y < -1 || r.Max.Y > 1 {
			t.Errorf("rect %d leaves the court: %+v", i, r)
		}
	}
}
