// Package sfx synthesizes the game's sound effects. Every effect is a
// short beep stream; front-ends either play the stream directly through
// the beep speaker or render it to PCM for another audio backend.
package sfx

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const SampleRate = beep.SampleRate(44100)

type Name string

const (
	Eat      Name = "eat"
	Expire   Name = "expire"
	Spawn    Name = "spawn"
	GameOver Name = "game_over"
)

// Names lists every effect in a stable order.
func Names() []Name {
	return []Name{Eat, Expire, Spawn, GameOver}
}

// Streamer builds a fresh stream for the named effect.
func Streamer(name Name) (beep.Streamer, error) {
	switch name {
	case Eat:
		return volume(beep.Seq(
			newTone(660, 660, 80*time.Millisecond, false),
			newTone(880, 880, 120*time.Millisecond, false),
		), 0.6), nil
	case Expire:
		return volume(newTone(120, 110, 150*time.Millisecond, true), 0.5), nil
	case Spawn:
		return volume(newTone(520, 620, 40*time.Millisecond, false), 0.3), nil
	case GameOver:
		return volume(beep.Seq(
			newTone(440, 330, 250*time.Millisecond, true),
			beep.Silence(SampleRate.N(50*time.Millisecond)),
			newTone(330, 220, 400*time.Millisecond, true),
		), 0.6), nil
	default:
		return nil, fmt.Errorf("sfx: unknown effect %q", name)
	}
}

func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// tone is a sine sweep from one frequency to another with a short attack
// and a linear release over its last third. Buzz adds odd harmonics.
type tone struct {
	from, to float64
	total    int
	pos      int
	phase    float64
	buzz     bool
}

func newTone(from, to float64, d time.Duration, buzz bool) *tone {
	return &tone{from: from, to: to, total: SampleRate.N(d), buzz: buzz}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	attack := SampleRate.N(5 * time.Millisecond)
	releaseStart := t.total - t.total/3

	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress

		v := math.Sin(2 * math.Pi * t.phase)
		if t.buzz {
			v = 0.6*v + 0.25*math.Sin(6*math.Pi*t.phase) + 0.15*math.Sin(10*math.Pi*t.phase)
		}

		env := 1.0
		if t.pos < attack {
			env = float64(t.pos) / float64(attack)
		} else if t.pos >= releaseStart {
			env = float64(t.total-t.pos) / float64(t.total-releaseStart)
		}
		v *= env

		samples[i][0] = v
		samples[i][1] = v

		t.phase += freq / float64(SampleRate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
