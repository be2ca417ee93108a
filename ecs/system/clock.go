package system

import (
	"time"

	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
)

// ClockSystem advances the session clock by one frame delta.
type ClockSystem struct {
	step func() time.Duration
}

func NewClockSystem(step func() time.Duration) *ClockSystem {
	return &ClockSystem{step: step}
}

// NewFixedClockSystem advances by d every tick.
func NewFixedClockSystem(d time.Duration) *ClockSystem {
	return NewClockSystem(func() time.Duration { return d })
}

// NewTickClockSystem advances by one tick of a tps ticks-per-second loop.
// Deltas are taken between exact tick positions n*second/tps, so k ticks
// always sum to k/tps seconds truncated by under a nanosecond, and to the
// exact duration whenever that is a whole number of nanoseconds.
func NewTickClockSystem(tps int) *ClockSystem {
	var n int64
	return NewClockSystem(func() time.Duration {
		if tps <= 0 {
			return 0
		}
		prev := n * int64(time.Second) / int64(tps)
		n++
		next := n * int64(time.Second) / int64(tps)
		if n == int64(tps) {
			n = 0
		}
		return time.Duration(next - prev)
	})
}

// NewWallClockSystem advances by the real time elapsed between ticks.
func NewWallClockSystem() *ClockSystem {
	var last time.Time
	return NewClockSystem(func() time.Duration {
		now := time.Now()
		if last.IsZero() {
			last = now
			return 0
		}
		d := now.Sub(last)
		last = now
		return d
	})
}

func (s *ClockSystem) Update(w *ecs.World) {
	if w == nil || s.step == nil {
		return
	}
	d := s.step()
	if d < 0 {
		d = 0
	}
	ecs.ForEach(w, component.ClockComponent.Kind(), func(_ ecs.Entity, c *component.Clock) {
		c.Delta = d
		c.Elapsed += d
		c.Frames++
	})
}
