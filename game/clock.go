package game

import "time"

// Clock mede o tempo de parede entre quadros consecutivos.
type Clock struct {
	now  func() time.Time
	prev time.Time
}

func NewClock() *Clock {
	return newClock(time.Now)
}

func newClock(now func() time.Time) *Clock {
	return &Clock{now: now, prev: now()}
}

// Tick devolve os segundos desde o Tick anterior (ou desde a criação).
func (c *Clock) Tick() float32 {
	t := c.now()
	d := t.Sub(c.prev)
	c.prev = t
	if d < 0 {
		return 0
	}
	return float32(d.Seconds())
}
