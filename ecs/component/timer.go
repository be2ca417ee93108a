package component

import "time"

type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer is a retriggerable countdown. Durations are integer nanoseconds so
// that summing fixed frame deltas is exact.
type Timer struct {
	Duration time.Duration
	Mode     TimerMode

	elapsed  time.Duration
	finished bool
}

func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{Duration: d, Mode: mode}
}

// Tick advances the timer. A once timer saturates and keeps reporting true
// until Reset; a repeating timer reports true only on ticks that cross a
// period boundary and carries the remainder into the next period.
func (t *Timer) Tick(d time.Duration) bool {
	if t == nil {
		return false
	}
	if d < 0 {
		d = 0
	}
	switch t.Mode {
	case TimerRepeating:
		t.finished = false
		if t.Duration <= 0 {
			t.finished = true
			return true
		}
		t.elapsed += d
		if t.elapsed >= t.Duration {
			t.elapsed %= t.Duration
			t.finished = true
		}
	default:
		if t.finished {
			return true
		}
		t.elapsed += d
		if t.elapsed >= t.Duration {
			t.elapsed = t.Duration
			t.finished = true
		}
	}
	return t.finished
}

func (t *Timer) Reset() {
	if t == nil {
		return
	}
	t.elapsed = 0
	t.finished = false
}

func (t *Timer) Finished() bool {
	return t != nil && t.finished
}

func (t *Timer) Elapsed() time.Duration {
	if t == nil {
		return 0
	}
	return t.elapsed
}
