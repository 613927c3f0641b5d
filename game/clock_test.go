package game

import (
	"testing"
	"time"
)

func TestClockTick(t *testing.T) {
	base := time.Unix(1000, 0)
	times := []time.Time{
		base,
		base.Add(16 * time.Millisecond),
		base.Add(50 * time.Millisecond),
		base.Add(40 * time.Millisecond),
	}
	i := 0
	c := newClock(func() time.Time {
		now := times[i]
		i++
		return now
	})

	want := []float32{0.016, 0.034, 0}
	for n, w := range want {
		if got := c.Tick(); !near(got, w) {
			t.Errorf("tick %d: expected %v, got %v", n, w, got)
		}
	}
}
